package model

import "time"

// StudentStatusActive is the default status assigned at creation.
const StudentStatusActive = "Active"

// Student is keyed by its national document number; ID and DocumentNumber
// always carry the same value.
type Student struct {
	ID               string    `json:"id"`
	DocumentNumber   string    `json:"documentNumber"`
	DocumentType     string    `json:"documentType"`
	FirstName        string    `json:"firstName"`
	SecondName       string    `json:"secondName,omitempty"`
	FirstSurname     string    `json:"firstSurname"`
	SecondSurname    string    `json:"secondSurname,omitempty"`
	Faculty          string    `json:"faculty"`
	Program          string    `json:"program,omitempty"`
	BirthDate        string    `json:"birthDate,omitempty"`
	Gender           string    `json:"gender,omitempty"`
	Semester         int       `json:"semester,omitempty"`
	Average          float64   `json:"average,omitempty"`
	Email            string    `json:"email,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	Address          string    `json:"address,omitempty"`
	Status           string    `json:"status"`
	EnrolledSubjects []string  `json:"enrolledSubjects,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// StudentSummary is the identity projection returned when listing the
// candidate roster of an attendance session.
type StudentSummary struct {
	ID             string `json:"id"`
	DocumentNumber string `json:"documentNumber"`
	FirstName      string `json:"firstName"`
	SecondName     string `json:"secondName,omitempty"`
	FirstSurname   string `json:"firstSurname"`
	SecondSurname  string `json:"secondSurname,omitempty"`
}
