package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursecraft/internal/app/services"
	"github.com/yigit/coursecraft/internal/middleware"
)

// PreviewController serves read-only renderings of rich text
type PreviewController struct {
	previewService services.PreviewService
}

// NewPreviewController creates a new PreviewController
func NewPreviewController(previewService services.PreviewService) *PreviewController {
	return &PreviewController{previewService: previewService}
}

// CoursePreview godoc
// @Summary Preview a course description
// @Description Sanitized HTML and plain text of the course description
// @Tags preview
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.PreviewResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /courses/{courseId}/preview [get]
func (c *PreviewController) CoursePreview(ctx *gin.Context) {
	preview, err := c.previewService.CoursePreview(ctx, middleware.CurrentUserID(ctx), ctx.Param("courseId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, preview)
}

// ChapterPreview godoc
// @Summary Preview a chapter description
// @Description Sanitized HTML and plain text of the chapter description
// @Tags preview
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param chapterId path string true "Chapter ID"
// @Success 200 {object} dto.APIResponse{data=dto.PreviewResponse}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /courses/{courseId}/chapters/{chapterId}/preview [get]
func (c *PreviewController) ChapterPreview(ctx *gin.Context) {
	preview, err := c.previewService.ChapterPreview(ctx, middleware.CurrentUserID(ctx), ctx.Param("courseId"), ctx.Param("chapterId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, preview)
}
