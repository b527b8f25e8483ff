package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/yigit/coursecraft/internal/app/models/dto"
)

// DescriptionForm is the course description form
type DescriptionForm struct {
	Description string `json:"description" validate:"required,min=1"`
}

// UpdateDescription validates and saves a course description. A rejected
// form returns a *ValidationError and sends nothing.
func (c *Client) UpdateDescription(ctx context.Context, courseID string, form DescriptionForm) (*dto.CourseResponse, error) {
	if err := c.check(form); err != nil {
		return nil, err
	}

	done, err := c.begin("description:" + courseID)
	if err != nil {
		return nil, err
	}
	defer done()

	var course dto.CourseResponse
	if err := c.do(ctx, http.MethodPatch, coursePath(courseID), form, &course); err != nil {
		return nil, c.fail(err)
	}

	c.notify(SuccessNotice(MsgCourseUpdated))
	c.refresh()
	return &course, nil
}

// CreateCourse creates a course with a title
func (c *Client) CreateCourse(ctx context.Context, title string) (*dto.CourseResponse, error) {
	form := dto.CreateCourseRequest{Title: title}
	if err := c.check(titleForm{Title: title}); err != nil {
		return nil, err
	}

	var course dto.CourseResponse
	if err := c.do(ctx, http.MethodPost, "/courses", form, &course); err != nil {
		return nil, c.fail(err)
	}
	return &course, nil
}

// GetCourse fetches a course with its chapters
func (c *Client) GetCourse(ctx context.Context, courseID string) (*dto.CourseResponse, error) {
	var course dto.CourseResponse
	if err := c.do(ctx, http.MethodGet, coursePath(courseID), nil, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// ListCourses fetches one page of the caller's courses
func (c *Client) ListCourses(ctx context.Context, page, size int) (*dto.CourseListResponse, error) {
	q := url.Values{}
	q.Set("page", fmt.Sprint(page))
	q.Set("size", fmt.Sprint(size))

	var list dto.CourseListResponse
	if err := c.do(ctx, http.MethodGet, "/courses?"+q.Encode(), nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// CoursePreview fetches the rendered course description
func (c *Client) CoursePreview(ctx context.Context, courseID string) (*dto.PreviewResponse, error) {
	var preview dto.PreviewResponse
	if err := c.do(ctx, http.MethodGet, coursePath(courseID)+"/preview", nil, &preview); err != nil {
		return nil, err
	}
	return &preview, nil
}

func coursePath(courseID string) string {
	return "/courses/" + url.PathEscape(courseID)
}
