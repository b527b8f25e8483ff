package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursecraft/internal/app/models/dto"
	"github.com/yigit/coursecraft/internal/pkg/apperrors"
	"github.com/yigit/coursecraft/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type errorBody struct {
	Error struct {
		Code    string      `json:"code"`
		Message string      `json:"message"`
		Field   string      `json:"field"`
		Details interface{} `json:"details"`
	} `json:"error"`
}

type recordingReporter struct {
	errs []error
}

func (r *recordingReporter) Message(string, string) {}

func (r *recordingReporter) RequestError(_ *http.Request, err error, _ map[string]interface{}) {
	r.errs = append(r.errs, err)
}

func serveError(t *testing.T, err error) (*httptest.ResponseRecorder, errorBody) {
	t.Helper()
	router := gin.New()
	router.GET("/", func(c *gin.Context) { HandleAPIError(c, err) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	var body errorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
		wantMsg    string
	}{
		{"missing fields", apperrors.NewMissingFieldsError("videoUrl"), 400, dto.ErrorCodeMissingFields, "Missing required fields"},
		{"bad request message", apperrors.NewBadRequestError("Positions start at 1"), 400, dto.ErrorCodeInvalidRequest, "Positions start at 1"},
		{"duplicate reorder", apperrors.ErrDuplicateReorderEntry, 400, dto.ErrorCodeInvalidRequest, "Reorder list contains a chapter or position twice"},
		{"signature", apperrors.ErrInvalidSignature, 401, dto.ErrorCodeBadSignature, "Invalid signature"},
		{"unauthorized", apperrors.ErrUnauthorized, 401, dto.ErrorCodeUnauthorized, "Authentication required"},
		{"expired jwt", auth.ErrExpiredToken, 401, dto.ErrorCodeExpiredToken, "Token expired"},
		{"forbidden", apperrors.NewForbiddenError("You do not own this course"), 403, dto.ErrorCodeForbidden, "You do not own this course"},
		{"wrapped course not found", fmt.Errorf("loading: %w", apperrors.ErrCourseNotFound), 404, dto.ErrorCodeResourceNotFound, "Course not found"},
		{"chapter not in course", apperrors.ErrChapterNotInCourse, 404, dto.ErrorCodeResourceNotFound, "Chapter does not belong to this course"},
		{"unknown event", fmt.Errorf("%w: x", apperrors.ErrUnknownEvent), 404, dto.ErrorCodeResourceNotFound, "No function subscribed to event"},
		{"conflict", apperrors.NewConflictError("Chapter positions collide"), 409, dto.ErrorCodeConflict, "Chapter positions collide"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := serveError(t, tt.err)
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, string(tt.wantCode), body.Error.Code)
			assert.Equal(t, tt.wantMsg, body.Error.Message)
		})
	}
}

func TestHandleAPIError_MissingFieldsDetails(t *testing.T) {
	_, body := serveError(t, apperrors.NewMissingFieldsError("description", "videoUrl"))
	details, ok := body.Error.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{"description", "videoUrl"}, details["fields"])
}

func TestHandleAPIError_UnexpectedIsReported(t *testing.T) {
	reporter := &recordingReporter{}
	SetErrorReporter(reporter)
	defer SetErrorReporter(nil)

	w, body := serveError(t, errors.New("connection reset"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", body.Error.Message)
	require.Len(t, reporter.errs, 1)

	serveError(t, apperrors.ErrCourseNotFound)
	assert.Len(t, reporter.errs, 1)
}

type describeRequest struct {
	Description *string `json:"description" binding:"omitnil,min=1"`
	Title       string  `json:"title" binding:"required"`
}

func TestHandleBindingError_UsesJSONFieldNames(t *testing.T) {
	RegisterValidation()
	router := gin.New()
	router.POST("/", func(c *gin.Context) {
		var req describeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleBindingError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	})

	tests := []struct {
		name    string
		body    string
		status  int
		message string
	}{
		{"empty description", `{"title":"t","description":""}`, 400, "Description is required"},
		{"missing title", `{"description":"d"}`, 400, "Title is required"},
		{"malformed json", `{`, 400, "Invalid request format"},
		{"absent description is fine", `{"title":"t"}`, 204, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.message != "" {
				var body errorBody
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.message, body.Error.Message)
			}
		})
	}
}

func TestJWTAuth(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret", AccessTokenExp: time.Hour, TokenIssuer: "test"})
	expiredService := auth.NewJWTService(auth.JWTConfig{SecretKey: "secret", AccessTokenExp: -time.Hour, TokenIssuer: "test"})
	m := NewAuthMiddleware(jwtService)

	router := gin.New()
	router.GET("/me", m.JWTAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, CurrentUserID(c))
	})

	valid, _, err := jwtService.GenerateAccessToken("user_1", "a@b.test")
	require.NoError(t, err)
	expired, _, err := expiredService.GenerateAccessToken("user_1", "a@b.test")
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		query    string
		status   int
		wantCode dto.ErrorCode
	}{
		{"bearer header", "Bearer " + valid, "", 200, ""},
		{"query token", "", valid, 200, ""},
		{"missing", "", "", 401, dto.ErrorCodeUnauthorized},
		{"garbage", "Bearer abc", "", 401, dto.ErrorCodeInvalidToken},
		{"expired", "Bearer " + expired, "", 401, dto.ErrorCodeExpiredToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/me"
			if tt.query != "" {
				target += "?token=" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, "user_1", w.Body.String())
				return
			}
			var body errorBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, string(tt.wantCode), body.Error.Code)
		})
	}
}
