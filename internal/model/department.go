package model

import "time"

// Department is an academic department. The ID is chosen by the caller at
// creation time and doubles as the document key.
type Department struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Director    string    `json:"director"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
