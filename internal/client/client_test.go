package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/coursecraft/internal/app/models/dto"
	"github.com/yigit/coursecraft/internal/pkg/events"
)

type recorder struct {
	mu        sync.Mutex
	notices   []Notice
	refreshes int
	paths     []string
}

func (r *recorder) hooks() Hooks {
	return Hooks{
		Notify: func(n Notice) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.notices = append(r.notices, n)
		},
		Refresh: func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.refreshes++
		},
		Navigate: func(path string) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.paths = append(r.paths, path)
		},
	}
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeData(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, dto.APIResponse{Data: data, Timestamp: time.Now()})
}

func writeError(w http.ResponseWriter, status int, code dto.ErrorCode, msg string) {
	writeJSON(w, status, dto.APIResponse{Error: dto.NewErrorDetail(code, msg), Timestamp: time.Now()})
}

func newTestClient(t *testing.T, mux *http.ServeMux) (*Client, *recorder) {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	rec := &recorder{}
	c := New(Options{BaseURL: srv.URL + "/api", Token: "test-token", Hooks: rec.hooks()})
	return c, rec
}

func TestUpdateDescription_RejectsEmptyWithoutRequest(t *testing.T) {
	var calls int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/courses/c1", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
	})
	c, rec := newTestClient(t, mux)

	_, err := c.UpdateDescription(context.Background(), "c1", DescriptionForm{})

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "description", verr.Field)
	assert.Equal(t, "Description is required", verr.Message)
	assert.Zero(t, atomic.LoadInt32(&calls))
	assert.Empty(t, rec.notices)
}

func TestUpdateDescription_Success(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /api/courses/c1", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "this course is about...", body["description"])

		desc := body["description"]
		writeData(w, http.StatusOK, dto.CourseResponse{ID: "c1", Title: "Go", Description: &desc})
	})
	c, rec := newTestClient(t, mux)

	course, err := c.UpdateDescription(context.Background(), "c1", DescriptionForm{Description: "this course is about..."})
	require.NoError(t, err)
	require.NotNil(t, course.Description)
	assert.Equal(t, "this course is about...", *course.Description)
	assert.Equal(t, []Notice{SuccessNotice(MsgCourseUpdated)}, rec.notices)
	assert.Equal(t, 1, rec.refreshes)
}

func TestUpdateDescription_ServerErrorShowsGenericNotice(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /api/courses/c1", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusForbidden, dto.ErrorCodeForbidden, "You do not own this course")
	})
	c, rec := newTestClient(t, mux)

	_, err := c.UpdateDescription(context.Background(), "c1", DescriptionForm{Description: "x"})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.Status)
	assert.Equal(t, dto.ErrorCodeForbidden, apiErr.Code)
	assert.Equal(t, []Notice{ErrorNotice(MsgSomethingWentWrong)}, rec.notices)
	assert.Zero(t, rec.refreshes)
}

func TestCreateChapter(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/courses/c1/chapters", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeData(w, http.StatusCreated, dto.ChapterResponse{ID: "ch1", CourseID: "c1", Title: body["title"], Position: 1})
	})
	c, rec := newTestClient(t, mux)

	t.Run("blank title", func(t *testing.T) {
		_, err := c.CreateChapter(context.Background(), "c1", "")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Title is required", verr.Message)
	})

	t.Run("created", func(t *testing.T) {
		chapter, err := c.CreateChapter(context.Background(), "c1", "Introduction")
		require.NoError(t, err)
		assert.Equal(t, "Introduction", chapter.Title)
		assert.Equal(t, 1, chapter.Position)
		assert.Equal(t, []Notice{SuccessNotice(MsgChapterCreated)}, rec.notices)
		assert.Equal(t, 1, rec.refreshes)
	})
}

func TestReorderChapters(t *testing.T) {
	var fail atomic.Bool
	var got dto.ReorderChaptersRequest
	mux := http.NewServeMux()
	mux.HandleFunc("PUT /api/courses/c1/chapters/reorder", func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			writeError(w, http.StatusNotFound, dto.ErrorCodeResourceNotFound, "Chapter not found in course")
			return
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		writeData(w, http.StatusOK, dto.SuccessResponse{Message: "Success"})
	})
	c, rec := newTestClient(t, mux)

	list := []dto.ReorderItem{{ID: "b", Position: 1}, {ID: "a", Position: 2}}
	require.NoError(t, c.ReorderChapters(context.Background(), "c1", list))
	assert.Equal(t, list, got.List)
	assert.Empty(t, rec.notices)
	assert.Zero(t, rec.refreshes)

	fail.Store(true)
	err := c.ReorderChapters(context.Background(), "c1", list)
	require.Error(t, err)
	assert.Equal(t, []Notice{ErrorNotice(MsgSomethingWentWrong)}, rec.notices)
	assert.Equal(t, 1, rec.refreshes)
}

func TestTogglePublish(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /api/courses/c1/chapters/ch1/publish", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, http.StatusOK, dto.ChapterStateResponse{Chapter: &dto.ChapterResponse{ID: "ch1", IsPublished: true}})
	})
	mux.HandleFunc("PATCH /api/courses/c1/chapters/ch1/unpublish", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, http.StatusOK, dto.ChapterStateResponse{Chapter: &dto.ChapterResponse{ID: "ch1"}, CourseUnpublished: true})
	})
	c, rec := newTestClient(t, mux)

	state, err := c.TogglePublish(context.Background(), "c1", "ch1", false)
	require.NoError(t, err)
	assert.True(t, state.Chapter.IsPublished)

	state, err = c.TogglePublish(context.Background(), "c1", "ch1", true)
	require.NoError(t, err)
	assert.False(t, state.Chapter.IsPublished)
	assert.True(t, state.CourseUnpublished)

	assert.Equal(t, []Notice{
		SuccessNotice(MsgChapterPublished),
		SuccessNotice(MsgChapterUnpublished),
	}, rec.notices)
	assert.Equal(t, 2, rec.refreshes)
}

func TestTogglePublish_MissingFields(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /api/courses/c1/chapters/ch1/publish", func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusBadRequest, dto.ErrorCodeMissingFields, "Missing required fields")
	})
	c, rec := newTestClient(t, mux)

	_, err := c.TogglePublish(context.Background(), "c1", "ch1", false)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "Missing required fields", apiErr.Message)
	assert.Equal(t, []Notice{ErrorNotice(MsgSomethingWentWrong)}, rec.notices)
}

func TestDeleteChapter_NavigatesToCourse(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("DELETE /api/courses/c1/chapters/ch1", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, http.StatusOK, dto.ChapterStateResponse{CourseUnpublished: true})
	})
	c, rec := newTestClient(t, mux)

	state, err := c.DeleteChapter(context.Background(), "c1", "ch1")
	require.NoError(t, err)
	assert.True(t, state.CourseUnpublished)
	assert.Equal(t, []Notice{SuccessNotice(MsgChapterDeleted)}, rec.notices)
	assert.Equal(t, []string{"/teacher/courses/c1"}, rec.paths)
}

func TestChapterActions_RejectDuplicateInFlight(t *testing.T) {
	release := make(chan struct{})
	mux := http.NewServeMux()
	mux.HandleFunc("PATCH /api/courses/c1/chapters/ch1/publish", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.Copy(io.Discard, r.Body)
		<-release
		writeData(w, http.StatusOK, dto.ChapterStateResponse{Chapter: &dto.ChapterResponse{ID: "ch1", IsPublished: true}})
	})
	c, _ := newTestClient(t, mux)

	errCh := make(chan error, 1)
	go func() {
		_, err := c.TogglePublish(context.Background(), "c1", "ch1", false)
		errCh <- err
	}()

	require.Eventually(t, func() bool { return c.InFlight(chapterActionKey("ch1")) }, time.Second, 5*time.Millisecond)

	_, err := c.DeleteChapter(context.Background(), "c1", "ch1")
	assert.ErrorIs(t, err, ErrRequestInFlight)

	close(release)
	require.NoError(t, <-errCh)
	assert.False(t, c.InFlight(chapterActionKey("ch1")))
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "/dashboard/teacher/courses/c1/chapters/ch1", EditChapterPath("c1", "ch1"))
	assert.Equal(t, "/teacher/courses/c1", CoursePath("c1"))
}

func TestSendEvent_SignsBody(t *testing.T) {
	const key = "signing-secret"
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/inngest", func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		if events.VerifySignature([]byte(key), body, r.Header.Get(events.SignatureHeader)) != nil {
			writeError(w, http.StatusUnauthorized, dto.ErrorCodeBadSignature, "Invalid signature")
			return
		}

		var evt dto.EventRequest
		require.NoError(t, json.Unmarshal(body, &evt))
		writeData(w, http.StatusOK, dto.EventDeliveryResponse{
			Event:   evt.Name,
			Results: []dto.FunctionResult{{FunctionID: "hello-world", Status: "completed", Output: map[string]string{"message": "Hello a@b.c!"}}},
		})
	})
	c, _ := newTestClient(t, mux)

	out, err := c.SendEvent(context.Background(), key, "test/hello.world", json.RawMessage(`{"email":"a@b.c"}`))
	require.NoError(t, err)
	assert.Equal(t, "test/hello.world", out.Event)
	require.Len(t, out.Results, 1)
	assert.Equal(t, "completed", out.Results[0].Status)

	_, err = c.SendEvent(context.Background(), "wrong-key", "test/hello.world", nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)
}
