package websocket

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

// CourseViewer decides whether a user may watch a course's live channel
type CourseViewer interface {
	CheckCourseOwnership(ctx context.Context, userID, courseID string) error
}

// ErrorWriter renders an error response, normally middleware.HandleAPIError
type ErrorWriter func(c *gin.Context, err error)

// Handler upgrades authenticated requests to live course channels
type Handler struct {
	hub      *Hub
	viewer   CourseViewer
	writeErr ErrorWriter
	upgrader websocket.Upgrader
	logger   zerolog.Logger
}

// NewHandler creates a new WebSocket handler. An empty allowedOrigins list
// accepts any origin.
func NewHandler(hub *Hub, viewer CourseViewer, writeErr ErrorWriter, allowedOrigins []string, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:      hub,
		viewer:   viewer,
		writeErr: writeErr,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
		logger: logger,
	}
}

func originChecker(allowed []string) func(r *http.Request) bool {
	if len(allowed) == 0 {
		return func(*http.Request) bool { return true }
	}
	set := make(map[string]struct{}, len(allowed))
	for _, o := range allowed {
		set[o] = struct{}{}
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		_, ok := set[origin]
		return ok
	}
}

// HandleConnection godoc
// @Summary Subscribe to live course changes
// @Description Upgrades to a WebSocket that receives a notice every time the course or one of its chapters changes
// @Tags courses
// @Security BearerAuth
// @Param courseId path string true "Course ID"
// @Success 101 {string} string "Switching Protocols"
// @Failure 401 {object} dto.APIResponse
// @Failure 403 {object} dto.APIResponse
// @Failure 404 {object} dto.APIResponse
// @Router /courses/{courseId}/live [get]
func (h *Handler) HandleConnection(c *gin.Context) {
	courseID := c.Param("courseId")
	userID := c.GetString("userID")

	if err := h.viewer.CheckCourseOwnership(c.Request.Context(), userID, courseID); err != nil {
		h.writeErr(c, err)
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn().Err(err).Str("courseID", courseID).Msg("Failed to upgrade connection to WebSocket")
		return
	}

	client := &Client{
		hub:      h.hub,
		conn:     conn,
		send:     make(chan []byte, sendBuffer),
		userID:   userID,
		courseID: courseID,
		logger:   h.logger,
	}
	select {
	case h.hub.register <- client:
	case <-h.hub.done:
		_ = conn.Close()
		return
	}

	go client.writePump()
	go client.readPump()
}
