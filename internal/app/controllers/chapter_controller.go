package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/coursecraft/internal/app/models/dto"
	"github.com/yigit/coursecraft/internal/app/services"
	"github.com/yigit/coursecraft/internal/middleware"
)

// ChapterController handles chapter operations of a course
type ChapterController struct {
	chapterService services.ChapterService
}

// NewChapterController creates a new ChapterController
func NewChapterController(chapterService services.ChapterService) *ChapterController {
	return &ChapterController{chapterService: chapterService}
}

// CreateChapter godoc
// @Summary Create a chapter
// @Description Append an unpublished chapter after the course's last chapter
// @Tags chapters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param request body dto.CreateChapterRequest true "Chapter title"
// @Success 201 {object} dto.APIResponse{data=dto.ChapterResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /courses/{courseId}/chapters [post]
func (c *ChapterController) CreateChapter(ctx *gin.Context) {
	var req dto.CreateChapterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	chapter, err := c.chapterService.CreateChapter(ctx, middleware.CurrentUserID(ctx), ctx.Param("courseId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusCreated, chapter)
}

// GetChapter godoc
// @Summary Get a chapter
// @Tags chapters
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param chapterId path string true "Chapter ID"
// @Success 200 {object} dto.APIResponse{data=dto.ChapterResponse}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /courses/{courseId}/chapters/{chapterId} [get]
func (c *ChapterController) GetChapter(ctx *gin.Context) {
	chapter, err := c.chapterService.GetChapter(ctx, middleware.CurrentUserID(ctx), ctx.Param("courseId"), ctx.Param("chapterId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, chapter)
}

// UpdateChapter godoc
// @Summary Update a chapter
// @Description Update the fields present in the body. Publish state is unchanged.
// @Tags chapters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param chapterId path string true "Chapter ID"
// @Param request body dto.UpdateChapterRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=dto.ChapterResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /courses/{courseId}/chapters/{chapterId} [patch]
func (c *ChapterController) UpdateChapter(ctx *gin.Context) {
	var req dto.UpdateChapterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	chapter, err := c.chapterService.UpdateChapter(ctx, middleware.CurrentUserID(ctx), ctx.Param("courseId"), ctx.Param("chapterId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, chapter)
}

// ReorderChapters godoc
// @Summary Reorder chapters
// @Description Apply every (id, position) pair in one transaction
// @Tags chapters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param request body dto.ReorderChaptersRequest true "New positions"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 409 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /courses/{courseId}/chapters/reorder [put]
func (c *ChapterController) ReorderChapters(ctx *gin.Context) {
	var req dto.ReorderChaptersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	if err := c.chapterService.ReorderChapters(ctx, middleware.CurrentUserID(ctx), ctx.Param("courseId"), &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, dto.SuccessResponse{Message: "Success"})
}

// PublishChapter godoc
// @Summary Publish a chapter
// @Description Requires title, description and videoUrl
// @Tags chapters
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param chapterId path string true "Chapter ID"
// @Success 200 {object} dto.APIResponse{data=dto.ChapterStateResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail} "Missing required fields"
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /courses/{courseId}/chapters/{chapterId}/publish [patch]
func (c *ChapterController) PublishChapter(ctx *gin.Context) {
	state, err := c.chapterService.PublishChapter(ctx, middleware.CurrentUserID(ctx), ctx.Param("courseId"), ctx.Param("chapterId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, state)
}

// UnpublishChapter godoc
// @Summary Unpublish a chapter
// @Description Unpublishes the course too when no published chapter remains
// @Tags chapters
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param chapterId path string true "Chapter ID"
// @Success 200 {object} dto.APIResponse{data=dto.ChapterStateResponse}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /courses/{courseId}/chapters/{chapterId}/unpublish [patch]
func (c *ChapterController) UnpublishChapter(ctx *gin.Context) {
	state, err := c.chapterService.UnpublishChapter(ctx, middleware.CurrentUserID(ctx), ctx.Param("courseId"), ctx.Param("chapterId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, state)
}

// DeleteChapter godoc
// @Summary Delete a chapter
// @Description Unpublishes the course when no published chapter remains
// @Tags chapters
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param chapterId path string true "Chapter ID"
// @Success 200 {object} dto.APIResponse{data=dto.ChapterStateResponse}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /courses/{courseId}/chapters/{chapterId} [delete]
func (c *ChapterController) DeleteChapter(ctx *gin.Context) {
	state, err := c.chapterService.DeleteChapter(ctx, middleware.CurrentUserID(ctx), ctx.Param("courseId"), ctx.Param("chapterId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, state)
}

// UploadChapterVideo godoc
// @Summary Upload a chapter video
// @Tags chapters
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Param chapterId path string true "Chapter ID"
// @Param file formData file true "Video file (mp4, webm, ogg, quicktime)"
// @Success 200 {object} dto.APIResponse{data=dto.ChapterResponse}
// @Failure 400 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 403 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Failure 404 {object} dto.APIResponse{error=dto.ErrorDetail}
// @Router /courses/{courseId}/chapters/{chapterId}/video [post]
func (c *ChapterController) UploadChapterVideo(ctx *gin.Context) {
	file, err := ctx.FormFile("file")
	if err != nil {
		middleware.HandleBindingError(ctx, err)
		return
	}

	chapter, err := c.chapterService.UploadChapterVideo(ctx, middleware.CurrentUserID(ctx), ctx.Param("courseId"), ctx.Param("chapterId"), file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	respond(ctx, http.StatusOK, chapter)
}
