package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"jobboard/internal/api"
	"jobboard/internal/cache"
	"jobboard/internal/database"
	"jobboard/internal/middleware"
	"jobboard/internal/service"
	"jobboard/internal/store"
	"jobboard/internal/worker"

	"github.com/labstack/echo/v4"
)

// SessionTTL session 與 token 的有效時間
const SessionTTL = 24 * time.Hour

var (
	getUserByEmail    = store.GetUserByEmail
	authenticateUser  = service.AuthenticateUser
	createSession     = service.CreateSession
	destroySession    = service.DestroySession
	issueSessionToken = service.IssueSessionToken
	touchLastLogin    = store.TouchLastLogin
)

// LoginHandler 使用 Email/Password 驗證，建立 session 並回傳 JWT
// @Summary     登入使用者
// @Description 驗證成功後設定 session cookie，並回傳存取令牌與到期時間
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       email    formData string true "Email"
// @Param       password formData string true "使用者密碼"
// @Success     200      {object} api.LoginResponse
// @Failure     400      {object} api.ErrorResponse
// @Failure     401      {object} api.ErrorResponse
// @Failure     500      {object} api.ErrorResponse
// @Router      /login [post]
func LoginHandler(db database.DB, sessions cache.Cache, pool worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		ctx := c.Request().Context()

		user, err := getUserByEmail(ctx, db, strings.ToLower(strings.TrimSpace(req.Email)))
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
			}
			c.Logger().Errorf("get user by email: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to load user"})
		}
		if err := authenticateUser(ctx, *user, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}

		sid, err := createSession(ctx, sessions, service.Session{
			UserID:   user.ID,
			UserType: user.Type,
			Email:    user.Email,
		}, SessionTTL)
		if err != nil {
			c.Logger().Errorf("create session: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create session"})
		}

		token, expiresAt, err := issueSessionToken(sid, user.ID, SessionTTL)
		if err != nil {
			_ = destroySession(ctx, sessions, sid)
			c.Logger().Errorf("issue token: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}

		userID := user.ID
		submitted := pool.Submit(func(ctx context.Context) error {
			if err := touchLastLogin(ctx, db, userID); err != nil {
				return fmt.Errorf("touch last login for user %d: %w", userID, err)
			}
			return nil
		})
		if !submitted {
			c.Logger().Warnf("last login update for user %d dropped", userID)
		}

		c.SetCookie(&http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    token,
			Path:     "/",
			Expires:  expiresAt,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return c.JSON(http.StatusOK, api.LoginResponse{
			AccessToken: token,
			ExpiresAt:   expiresAt,
			UserType:    string(user.Type),
		})
	}
}
