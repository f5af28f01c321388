package api

import (
	"time"

	"jobboard/internal/model"
)

// swagger:model api.JobPostResponse
type JobPostResponse struct {
	ID          int       `json:"id" example:"1"`
	Title       string    `json:"title" example:"Walk my dog"`
	Description string    `json:"description" example:"Two walks a day"`
	DateStart   time.Time `json:"date_start"`
	DateEnd     time.Time `json:"date_end"`
	Status      string    `json:"status" example:"open"`
	HourlyRate  float64   `json:"hourly_rate" example:"25"`
	EmployerID  int       `json:"employer_id" example:"1"`
	PetID       *int      `json:"pet_id,omitempty" example:"3"`
}

func NewJobPostResponse(p model.JobPost) JobPostResponse {
	return JobPostResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		DateStart:   p.DateStart,
		DateEnd:     p.DateEnd,
		Status:      string(p.Status),
		HourlyRate:  p.HourlyRate,
		EmployerID:  p.EmployerID,
		PetID:       p.PetID,
	}
}
