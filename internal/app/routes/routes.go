package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/coursecraft/internal/app/controllers"
	"github.com/yigit/coursecraft/internal/middleware"
	"github.com/yigit/coursecraft/internal/pkg/websocket"
)

// Controllers groups every HTTP handler the router mounts
type Controllers struct {
	Course  *controllers.CourseController
	Chapter *controllers.ChapterController
	Preview *controllers.PreviewController
	Event   *controllers.EventController
	User    *controllers.UserController
	Health  *controllers.HealthController
}

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	ctrls Controllers,
	liveHandler *websocket.Handler,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/ping", ctrls.Health.Ping)

	api := router.Group("/api")
	api.GET("/health", ctrls.Health.Health)

	// --- Event function endpoint (signed, not user-authenticated) ---
	fns := api.Group("/inngest")
	{
		fns.GET("", ctrls.Event.ListFunctions)
		fns.POST("", ctrls.Event.DeliverEvent)
		fns.PUT("", ctrls.Event.SyncFunctions)
	}

	// --- Authenticated Routes Group ---
	authenticated := api.Group("")
	authenticated.Use(authMiddleware.JWTAuth())

	authenticated.GET("/users/me", ctrls.User.GetMe)
	authenticated.GET("/events/runs", ctrls.Event.ListRuns)

	courses := authenticated.Group("/courses")
	{
		courses.POST("", ctrls.Course.CreateCourse)
		courses.GET("", ctrls.Course.ListCourses)
		courses.GET("/:courseId", ctrls.Course.GetCourse)
		courses.PATCH("/:courseId", ctrls.Course.UpdateCourse)
		courses.DELETE("/:courseId", ctrls.Course.DeleteCourse)
		courses.PATCH("/:courseId/publish", ctrls.Course.PublishCourse)
		courses.PATCH("/:courseId/unpublish", ctrls.Course.UnpublishCourse)
		courses.POST("/:courseId/image", ctrls.Course.UploadCourseImage)
		courses.GET("/:courseId/preview", ctrls.Preview.CoursePreview)
		courses.GET("/:courseId/live", liveHandler.HandleConnection)

		chapters := courses.Group("/:courseId/chapters")
		{
			chapters.POST("", ctrls.Chapter.CreateChapter)
			chapters.PUT("/reorder", ctrls.Chapter.ReorderChapters)
			chapters.GET("/:chapterId", ctrls.Chapter.GetChapter)
			chapters.PATCH("/:chapterId", ctrls.Chapter.UpdateChapter)
			chapters.DELETE("/:chapterId", ctrls.Chapter.DeleteChapter)
			chapters.PATCH("/:chapterId/publish", ctrls.Chapter.PublishChapter)
			chapters.PATCH("/:chapterId/unpublish", ctrls.Chapter.UnpublishChapter)
			chapters.POST("/:chapterId/video", ctrls.Chapter.UploadChapterVideo)
			chapters.GET("/:chapterId/preview", ctrls.Preview.ChapterPreview)
		}
	}
}
