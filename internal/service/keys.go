package service

import (
	"strconv"

	"github.com/edtrack/edtrack-go/internal/query"
)

// Query keys for every resource family. Mutations invalidate by these
// keys or their prefixes, so key construction lives in one place.

// CoursesKey addresses the course listing.
func CoursesKey() query.Key { return query.K("courses") }

// CourseKey addresses one course and, as a prefix, its subresources.
func CourseKey(id string) query.Key { return query.K("courses", id) }

// LessonsKey addresses the lessons of one course.
func LessonsKey(courseID string) query.Key { return query.K("courses", courseID, "lessons") }

// TestsKey addresses the tests of one course.
func TestsKey(courseID string) query.Key { return query.K("courses", courseID, "tests") }

// TestKey addresses one test and, as a prefix, its questions.
func TestKey(id string) query.Key { return query.K("tests", id) }

// QuestionsKey addresses the questions of one test.
func QuestionsKey(testID string) query.Key { return query.K("tests", testID, "questions") }

// UsersKey addresses the user listing.
func UsersKey() query.Key { return query.K("users") }

// UserKey addresses one user.
func UserKey(id string) query.Key { return query.K("users", id) }

// DepartmentsKey addresses the department listing.
func DepartmentsKey() query.Key { return query.K("departments") }

// PositionsKey addresses the position listing.
func PositionsKey() query.Key { return query.K("positions") }

// ReportKey addresses one report family with its filter fingerprint.
func ReportKey(report string, parts ...string) query.Key {
	return query.K(append([]string{"reports", report}, parts...)...)
}

// AuditKey addresses a page of the audit log.
func AuditKey(page int) query.Key { return query.K("audit", strconv.Itoa(page)) }

// FeedbackKey addresses the feedback listing.
func FeedbackKey() query.Key { return query.K("feedback") }
