package model

import "time"

// Enrollment registers a student into a subject for a semester and group.
// The student/subject name fields are denormalized snapshots taken at
// enrollment time; they are never synchronized afterwards.
type Enrollment struct {
	ID                 string    `json:"id"`
	SubjectID          string    `json:"subjectId"`
	StudentID          string    `json:"studentId"`
	Group              string    `json:"group"`
	EnrollmentSemester int       `json:"enrollmentSemester"`
	StudentNames       string    `json:"studentNames"`
	StudentSurnames    string    `json:"studentSurnames"`
	StudentEmail       string    `json:"studentEmail"`
	SubjectName        string    `json:"subjectName"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}
