// File: internal/model/job_post.go
package model

import "time"

type JobStatus string

const (
	JobStatusOpen       JobStatus = "open"
	JobStatusInProgress JobStatus = "in_progress"
	JobStatusClosed     JobStatus = "closed"
)

func (s JobStatus) Valid() bool {
	switch s {
	case JobStatusOpen, JobStatusInProgress, JobStatusClosed:
		return true
	}
	return false
}

type JobPost struct {
	ID          int       `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	DateStart   time.Time `db:"date_start" json:"date_start"`
	DateEnd     time.Time `db:"date_end" json:"date_end"`
	Status      JobStatus `db:"status" json:"status"`
	HourlyRate  float64   `db:"hourly_rate" json:"hourly_rate"`
	EmployerID  int       `db:"employer_id" json:"employer_id"`
	PetID       *int      `db:"pet_id" json:"pet_id,omitempty"`
}
