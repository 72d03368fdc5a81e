package model

import "time"

// Subject is a course offered by a department. Its key is the caller-supplied
// subject code (e.g. "PROG004"), exposed as `id` like every other entity.
type Subject struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Semester     int       `json:"semester"`
	Credits      int       `json:"credits"`
	DepartmentID string    `json:"departmentId"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
