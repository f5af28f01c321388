package store

import (
	"context"
	"errors"
	"fmt"

	"jobboard/internal/database"
	"jobboard/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	insertUserSQL = `INSERT INTO app_user (name, email, password_hash, type, location)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`

	insertEmployerSQL = `INSERT INTO employer (user_id, budget) VALUES ($1, $2)`

	insertFreelancerSQL = `INSERT INTO freelancer (user_id, bio, profile_picture) VALUES ($1, $2, $3)`

	selectUserByEmailSQL = `SELECT id, name, email, password_hash, type, location, created_at
		 FROM app_user WHERE email = $1`

	touchLastLoginSQL = `UPDATE app_user SET last_login_at = now() WHERE id = $1`
)

// CreateUser 在同一交易中建立 app_user 與對應角色資料列
// 雇主預算預設 0，自由工作者使用預設大頭貼
func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	if !u.Type.Valid() {
		return nil, fmt.Errorf("CreateUser: %w", model.ErrUnknownUserType)
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("CreateUser: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, insertUserSQL,
		u.Name,
		u.Email,
		u.PasswordHash,
		string(u.Type),
		u.Location,
	)
	if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("CreateUser: %w", ErrEmailTaken)
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}

	switch u.Type {
	case model.UserTypeEmployer:
		_, err = tx.Exec(ctx, insertEmployerSQL, u.ID, 0)
	case model.UserTypeFreelancer:
		_, err = tx.Exec(ctx, insertFreelancerSQL, u.ID, "", model.DefaultProfilePicture)
	}
	if err != nil {
		return nil, fmt.Errorf("CreateUser: insert %s: %w", u.Type, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("CreateUser: commit: %w", err)
	}
	return u, nil
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx, selectUserByEmailSQL, email)
	u := &model.User{}
	var userType string
	if err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&userType,
		&u.Location,
		&u.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("GetUserByEmail: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetUserByEmail: %w", err)
	}
	u.Type = model.UserType(userType)
	return u, nil
}

// TouchLastLogin 記錄最後登入時間，由 worker pool 非同步呼叫
func TouchLastLogin(ctx context.Context, db database.DB, userID int) error {
	if _, err := db.Exec(ctx, touchLastLoginSQL, userID); err != nil {
		return fmt.Errorf("TouchLastLogin: %w", err)
	}
	return nil
}
