package store

import "errors"

var (
	// ErrNotFound 查無資料列，或更新時沒有任何列被影響
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken app_user.email 唯一鍵衝突
	ErrEmailTaken = errors.New("email already registered")
)

// uniqueViolation 為 Postgres unique_violation 錯誤碼
const uniqueViolation = "23505"
