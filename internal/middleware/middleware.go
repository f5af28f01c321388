package middleware

import (
	"errors"
	"net/http"
	"strings"

	"jobboard/internal/cache"
	"jobboard/internal/service"

	"github.com/labstack/echo/v4"
)

const (
	// ContextSessionKey 為 echo.Context 中存放 *service.Session 的鍵
	ContextSessionKey = "session"

	// SessionCookieName 登入後設定的 cookie 名稱
	SessionCookieName = "session"
)

var (
	verifySessionToken = service.VerifySessionToken
	loadSession        = service.LoadSession
)

// extractToken 先讀 session cookie，沒有時改讀 Authorization: Bearer
func extractToken(c echo.Context) (string, error) {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "You are not logged in")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	return parts[1], nil
}

// RequireSession 驗證 token 並載入 session，失敗一律 401，不會進入 handler
func RequireSession(store cache.Cache) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := extractToken(c)
			if err != nil {
				return err
			}
			claims, err := verifySessionToken(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session token")
			}
			sess, err := loadSession(c.Request().Context(), store, claims.SessionID)
			if err != nil {
				if !errors.Is(err, service.ErrSessionNotFound) {
					c.Logger().Errorf("load session: %v", err)
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "session expired")
			}
			c.Set(ContextSessionKey, sess)
			return next(c)
		}
	}
}

// SessionFrom 取出 RequireSession 放入的身分；未經驗證時回傳 nil
func SessionFrom(c echo.Context) *service.Session {
	sess, ok := c.Get(ContextSessionKey).(*service.Session)
	if !ok || sess == nil || sess.UserID == 0 {
		return nil
	}
	return sess
}
