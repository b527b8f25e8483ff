package models

// EventRunStatus is the terminal state of a function invocation.
type EventRunStatus string

const (
	EventRunCompleted EventRunStatus = "COMPLETED"
	EventRunFailed    EventRunStatus = "FAILED"
)

// ChangeType names the kind of mutation pushed to live clients.
type ChangeType string

const (
	ChangeCourseUpdated      ChangeType = "course.updated"
	ChangeCoursePublished    ChangeType = "course.published"
	ChangeCourseUnpublished  ChangeType = "course.unpublished"
	ChangeCourseDeleted      ChangeType = "course.deleted"
	ChangeChapterCreated     ChangeType = "chapter.created"
	ChangeChapterUpdated     ChangeType = "chapter.updated"
	ChangeChaptersReordered  ChangeType = "chapters.reordered"
	ChangeChapterPublished   ChangeType = "chapter.published"
	ChangeChapterUnpublished ChangeType = "chapter.unpublished"
	ChangeChapterDeleted     ChangeType = "chapter.deleted"
)
