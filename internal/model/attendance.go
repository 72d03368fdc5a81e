package model

import "time"

// AttendanceSession is one class meeting of a subject. Records maps a
// student document number to whether the student was present. Partial
// updates merge into the map; keys are never dropped implicitly.
type AttendanceSession struct {
	ID          string          `json:"id"`
	SubjectID   string          `json:"subjectId"`
	SubjectCode string          `json:"subjectCode"`
	SubjectName string          `json:"subjectName"`
	Date        string          `json:"date"`
	StartTime   string          `json:"startTime"`
	EndTime     string          `json:"endTime"`
	Semester    int             `json:"semester"`
	Records     map[string]bool `json:"records"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
