package services

import (
	"context"
	"mime/multipart"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/yigit/coursecraft/internal/app/models"
	"github.com/yigit/coursecraft/internal/pkg/apperrors"
	"github.com/yigit/coursecraft/internal/pkg/websocket"
)

// store is an in-memory stand-in for the courses and chapters tables
type store struct {
	mu       sync.Mutex
	courses  map[string]*models.Course
	chapters map[string]*models.Chapter
	users    map[string]*models.User
}

func newStore() *store {
	return &store{
		courses:  make(map[string]*models.Course),
		chapters: make(map[string]*models.Chapter),
		users:    make(map[string]*models.User),
	}
}

type fakeCourseRepo struct{ s *store }

func (r fakeCourseRepo) Create(_ context.Context, c *models.Course) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c.ID = uuid.NewString()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	cp := *c
	r.s.courses[c.ID] = &cp
	return nil
}

func (r fakeCourseRepo) GetByID(_ context.Context, id string) (*models.Course, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	cp := *c
	cp.Chapters = nil
	return &cp, nil
}

func (r fakeCourseRepo) ListByOwner(_ context.Context, userID string, offset, limit int) ([]*models.Course, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var all []*models.Course
	for _, c := range r.s.courses {
		if c.UserID == userID {
			cp := *c
			all = append(all, &cp)
		}
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Title < all[j].Title })
	total := int64(len(all))
	if offset >= len(all) {
		return []*models.Course{}, total, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], total, nil
}

func (r fakeCourseRepo) Update(_ context.Context, c *models.Course) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.courses[c.ID]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	existing.Title = c.Title
	existing.Description = c.Description
	existing.ImageURL = c.ImageURL
	existing.Price = c.Price
	existing.CategoryID = c.CategoryID
	existing.UpdatedAt = time.Now()
	return nil
}

func (r fakeCourseRepo) SetPublished(_ context.Context, id string, published bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c, ok := r.s.courses[id]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	c.IsPublished = published
	return nil
}

func (r fakeCourseRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(r.s.courses, id)
	for chID, ch := range r.s.chapters {
		if ch.CourseID == id {
			delete(r.s.chapters, chID)
		}
	}
	return nil
}

type fakeChapterRepo struct{ s *store }

func (r fakeChapterRepo) Create(_ context.Context, ch *models.Chapter) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.courses[ch.CourseID]; !ok {
		return apperrors.ErrCourseNotFound
	}
	max := 0
	for _, other := range r.s.chapters {
		if other.CourseID == ch.CourseID && other.Position > max {
			max = other.Position
		}
	}
	ch.ID = uuid.NewString()
	ch.Position = max + 1
	ch.CreatedAt = time.Now()
	ch.UpdatedAt = ch.CreatedAt
	cp := *ch
	r.s.chapters[ch.ID] = &cp
	return nil
}

func (r fakeChapterRepo) GetByID(_ context.Context, courseID, chapterID string) (*models.Chapter, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ch, ok := r.s.chapters[chapterID]
	if !ok || ch.CourseID != courseID {
		return nil, apperrors.ErrChapterNotFound
	}
	cp := *ch
	return &cp, nil
}

func (r fakeChapterRepo) ListByCourse(_ context.Context, courseID string) ([]*models.Chapter, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.listLocked(courseID), nil
}

func (r fakeChapterRepo) listLocked(courseID string) []*models.Chapter {
	out := make([]*models.Chapter, 0)
	for _, ch := range r.s.chapters {
		if ch.CourseID == courseID {
			cp := *ch
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out
}

func (r fakeChapterRepo) Update(_ context.Context, ch *models.Chapter) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	existing, ok := r.s.chapters[ch.ID]
	if !ok || existing.CourseID != ch.CourseID {
		return apperrors.ErrChapterNotFound
	}
	existing.Title = ch.Title
	existing.Description = ch.Description
	existing.VideoURL = ch.VideoURL
	existing.IsFree = ch.IsFree
	return nil
}

func (r fakeChapterRepo) Reorder(_ context.Context, courseID string, list []models.ChapterPosition) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, item := range list {
		ch, ok := r.s.chapters[item.ID]
		if !ok || ch.CourseID != courseID {
			return apperrors.ErrChapterNotInCourse
		}
	}
	for _, item := range list {
		r.s.chapters[item.ID].Position = item.Position
	}
	return nil
}

func (r fakeChapterRepo) SetPublished(_ context.Context, courseID, chapterID string, published bool) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ch, ok := r.s.chapters[chapterID]
	if !ok || ch.CourseID != courseID {
		return false, apperrors.ErrChapterNotFound
	}
	ch.IsPublished = published
	if published {
		return false, nil
	}
	return r.unpublishCourseIfEmptyLocked(courseID), nil
}

func (r fakeChapterRepo) Delete(_ context.Context, courseID, chapterID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	ch, ok := r.s.chapters[chapterID]
	if !ok || ch.CourseID != courseID {
		return false, apperrors.ErrChapterNotFound
	}
	delete(r.s.chapters, chapterID)
	for _, other := range r.s.chapters {
		if other.CourseID == courseID && other.Position > ch.Position {
			other.Position--
		}
	}
	return r.unpublishCourseIfEmptyLocked(courseID), nil
}

func (r fakeChapterRepo) unpublishCourseIfEmptyLocked(courseID string) bool {
	for _, ch := range r.s.chapters {
		if ch.CourseID == courseID && ch.IsPublished {
			return false
		}
	}
	c := r.s.courses[courseID]
	if c == nil || !c.IsPublished {
		return false
	}
	c.IsPublished = false
	return true
}

type fakeUserRepo struct{ s *store }

func (r fakeUserRepo) Upsert(_ context.Context, u *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if existing, ok := r.s.users[u.ID]; ok {
		u.CreatedAt = existing.CreatedAt
	} else {
		u.CreatedAt = time.Now()
	}
	u.UpdatedAt = time.Now()
	cp := *u
	r.s.users[u.ID] = &cp
	return nil
}

func (r fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

// recordingNotifier keeps every published notice
type recordingNotifier struct {
	mu      sync.Mutex
	notices []websocket.Notice
}

func (n *recordingNotifier) Publish(notice websocket.Notice) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, notice)
}

func (n *recordingNotifier) types() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]string, 0, len(n.notices))
	for _, nt := range n.notices {
		out = append(out, nt.Type)
	}
	return out
}

// memoryStorage pretends to store files
type memoryStorage struct {
	mu      sync.Mutex
	saved   []string
	deleted []string
}

func (m *memoryStorage) SaveFile(fh *multipart.FileHeader, subPath string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	url := "/uploads/" + subPath + "/" + fh.Filename
	m.saved = append(m.saved, url)
	return url, nil
}

func (m *memoryStorage) DeleteFile(url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.deleted = append(m.deleted, url)
	return nil
}
