package store

import (
	"context"
	"errors"
	"fmt"

	"jobboard/internal/database"
	"jobboard/internal/model"

	"github.com/jackc/pgx/v5"
)

const (
	jobPostColumns = `id, title, description, date_start, date_end, status, hourly_rate, employer_id, pet_id`

	listJobPostsSQL = `SELECT ` + jobPostColumns + `
		 FROM job_post WHERE status = $1
		 ORDER BY date_start, id`

	selectJobPostSQL = `SELECT ` + jobPostColumns + `
		 FROM job_post WHERE id = $1`
)

func ListJobPosts(ctx context.Context, db database.DB, status model.JobStatus) ([]model.JobPost, error) {
	rows, err := db.Query(ctx, listJobPostsSQL, string(status))
	if err != nil {
		return nil, fmt.Errorf("ListJobPosts: %w", err)
	}
	defer rows.Close()

	posts := []model.JobPost{}
	for rows.Next() {
		var p model.JobPost
		if err := scanJobPost(rows, &p); err != nil {
			return nil, fmt.Errorf("ListJobPosts: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListJobPosts: %w", err)
	}
	return posts, nil
}

func GetJobPostByID(ctx context.Context, db database.DB, id int) (*model.JobPost, error) {
	p := &model.JobPost{}
	if err := scanJobPost(db.QueryRow(ctx, selectJobPostSQL, id), p); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("GetJobPostByID: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetJobPostByID: %w", err)
	}
	return p, nil
}

// internal helper
func scanJobPost(row pgx.Row, p *model.JobPost) error {
	var status string
	if err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.DateStart,
		&p.DateEnd,
		&status,
		&p.HourlyRate,
		&p.EmployerID,
		&p.PetID,
	); err != nil {
		return err
	}
	p.Status = model.JobStatus(status)
	return nil
}
