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
	selectEmployerProfileSQL = `SELECT a.name, a.location, e.budget
		 FROM app_user a
		 INNER JOIN employer e ON a.id = e.user_id
		 WHERE a.id = $1`

	selectFreelancerProfileSQL = `SELECT a.name, a.location, f.bio, f.profile_picture
		 FROM app_user a
		 INNER JOIN freelancer f ON a.id = f.user_id
		 WHERE a.id = $1`

	updateEmployerBudgetSQL = `UPDATE employer
		 SET budget = COALESCE($1, budget)
		 WHERE user_id = $2`

	updateFreelancerSQL = `UPDATE freelancer
		 SET bio = COALESCE($1, bio), profile_picture = COALESCE($2, profile_picture)
		 WHERE user_id = $3`

	updateAppUserSQL = `UPDATE app_user
		 SET name = COALESCE($1, name), location = COALESCE($2, location)
		 WHERE id = $3`
)

// GetProfile 依使用者類型 join employer 或 freelancer，回傳共用欄位與角色資料
func GetProfile(ctx context.Context, db database.DB, userID int, userType model.UserType) (*model.Profile, error) {
	p := &model.Profile{}
	var err error
	switch userType {
	case model.UserTypeEmployer:
		var e model.EmployerProfile
		err = db.QueryRow(ctx, selectEmployerProfileSQL, userID).Scan(&p.Name, &p.Location, &e.Budget)
		p.Role = e
	case model.UserTypeFreelancer:
		var f model.FreelancerProfile
		err = db.QueryRow(ctx, selectFreelancerProfileSQL, userID).Scan(&p.Name, &p.Location, &f.Bio, &f.ProfilePicture)
		p.Role = f
	default:
		return nil, fmt.Errorf("GetProfile: %w: %q", model.ErrUnknownUserType, userType)
	}
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("GetProfile: user %d: %w", userID, ErrNotFound)
		}
		return nil, fmt.Errorf("GetProfile: %w", err)
	}
	return p, nil
}

// UpdateProfile 在單一交易內先更新角色資料表，再更新 app_user
// nil 欄位沿用現值；有提供的 budget 直接寫入 (含 0)。角色資料列不存在時回傳 ErrNotFound，任何失敗皆整筆回滾
func UpdateProfile(ctx context.Context, db database.DB, userID int, userType model.UserType, ch model.ProfileChanges) error {
	if !userType.Valid() {
		return fmt.Errorf("UpdateProfile: %w: %q", model.ErrUnknownUserType, userType)
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("UpdateProfile: begin: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	switch userType {
	case model.UserTypeEmployer:
		if err := execOne(ctx, tx, updateEmployerBudgetSQL, ch.Budget, userID); err != nil {
			return fmt.Errorf("UpdateProfile: employer: %w", err)
		}
	case model.UserTypeFreelancer:
		if err := execOne(ctx, tx, updateFreelancerSQL, ch.Bio, ch.ProfilePicture, userID); err != nil {
			return fmt.Errorf("UpdateProfile: freelancer: %w", err)
		}
	}

	if err := execOne(ctx, tx, updateAppUserSQL, ch.Name, ch.Location, userID); err != nil {
		return fmt.Errorf("UpdateProfile: app_user: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("UpdateProfile: commit: %w", err)
	}
	return nil
}

// execOne 執行 UPDATE，沒有影響任何列時回傳 ErrNotFound
func execOne(ctx context.Context, tx pgx.Tx, sql string, args ...any) error {
	tag, err := tx.Exec(ctx, sql, args...)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
