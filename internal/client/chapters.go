package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/yigit/coursecraft/internal/app/models/dto"
)

type titleForm struct {
	Title string `json:"title" validate:"required,min=1"`
}

// CreateChapter adds a chapter to the end of the course
func (c *Client) CreateChapter(ctx context.Context, courseID, title string) (*dto.ChapterResponse, error) {
	form := titleForm{Title: title}
	if err := c.check(form); err != nil {
		return nil, err
	}

	done, err := c.begin("chapters-create:" + courseID)
	if err != nil {
		return nil, err
	}
	defer done()

	var chapter dto.ChapterResponse
	if err := c.do(ctx, http.MethodPost, coursePath(courseID)+"/chapters", form, &chapter); err != nil {
		return nil, c.fail(err)
	}

	c.notify(SuccessNotice(MsgChapterCreated))
	c.refresh()
	return &chapter, nil
}

// ReorderChapters sends the new positions. Success is silent; on failure
// the generic notice is shown and the view refreshed to the server order.
func (c *Client) ReorderChapters(ctx context.Context, courseID string, list []dto.ReorderItem) error {
	done, err := c.begin("chapters-reorder:" + courseID)
	if err != nil {
		return err
	}
	defer done()

	if err := c.do(ctx, http.MethodPut, coursePath(courseID)+"/chapters/reorder", dto.ReorderChaptersRequest{List: list}, nil); err != nil {
		c.notify(ErrorNotice(MsgSomethingWentWrong))
		c.refresh()
		return err
	}
	return nil
}

// TogglePublish unpublishes a published chapter and publishes an unpublished one
func (c *Client) TogglePublish(ctx context.Context, courseID, chapterID string, isPublished bool) (*dto.ChapterStateResponse, error) {
	done, err := c.begin(chapterActionKey(chapterID))
	if err != nil {
		return nil, err
	}
	defer done()

	action, msg := "/publish", MsgChapterPublished
	if isPublished {
		action, msg = "/unpublish", MsgChapterUnpublished
	}

	var state dto.ChapterStateResponse
	if err := c.do(ctx, http.MethodPatch, chapterPath(courseID, chapterID)+action, nil, &state); err != nil {
		return nil, c.fail(err)
	}

	c.notify(SuccessNotice(msg))
	c.refresh()
	return &state, nil
}

// DeleteChapter deletes a chapter and navigates back to the course
func (c *Client) DeleteChapter(ctx context.Context, courseID, chapterID string) (*dto.ChapterStateResponse, error) {
	done, err := c.begin(chapterActionKey(chapterID))
	if err != nil {
		return nil, err
	}
	defer done()

	var state dto.ChapterStateResponse
	if err := c.do(ctx, http.MethodDelete, chapterPath(courseID, chapterID), nil, &state); err != nil {
		return nil, c.fail(err)
	}

	c.notify(SuccessNotice(MsgChapterDeleted))
	c.refresh()
	c.navigate(CoursePath(courseID))
	return &state, nil
}

// ChapterPreview fetches the rendered chapter description
func (c *Client) ChapterPreview(ctx context.Context, courseID, chapterID string) (*dto.PreviewResponse, error) {
	var preview dto.PreviewResponse
	if err := c.do(ctx, http.MethodGet, chapterPath(courseID, chapterID)+"/preview", nil, &preview); err != nil {
		return nil, err
	}
	return &preview, nil
}

// publish, unpublish and delete of one chapter share a loading flag
func chapterActionKey(chapterID string) string {
	return "chapter-actions:" + chapterID
}

func chapterPath(courseID, chapterID string) string {
	return coursePath(courseID) + "/chapters/" + url.PathEscape(chapterID)
}
