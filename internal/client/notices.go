package client

import "fmt"

// Notice messages shown after an action
const (
	MsgCourseUpdated      = "course updated"
	MsgChapterCreated     = "chapter created"
	MsgChapterPublished   = "chapter published"
	MsgChapterUnpublished = "chapter unpublished"
	MsgChapterDeleted     = "chapter deleted"
	MsgSomethingWentWrong = "something went wrong"
)

// NoticeKind tells success and error notices apart
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is the toast-style message that follows an action
type Notice struct {
	Kind    NoticeKind
	Message string
}

// SuccessNotice builds a success notice
func SuccessNotice(msg string) Notice { return Notice{Kind: NoticeSuccess, Message: msg} }

// ErrorNotice builds an error notice
func ErrorNotice(msg string) Notice { return Notice{Kind: NoticeError, Message: msg} }

// EditChapterPath is where editing a chapter navigates
func EditChapterPath(courseID, chapterID string) string {
	return fmt.Sprintf("/dashboard/teacher/courses/%s/chapters/%s", courseID, chapterID)
}

// CoursePath is where deleting a chapter navigates
func CoursePath(courseID string) string {
	return fmt.Sprintf("/teacher/courses/%s", courseID)
}
