package auth

import (
	"net/http"

	"jobboard/internal/api"
	"jobboard/internal/cache"
	"jobboard/internal/middleware"

	"github.com/labstack/echo/v4"
)

// LogoutHandler 刪除 Redis 中的 session 並清除 cookie
// @Summary     登出
// @Tags        auth
// @Success     204
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    SessionCookie
// @Router      /logout [post]
func LogoutHandler(sessions cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.SessionFrom(c)
		if sess == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "not logged in"})
		}
		if err := destroySession(c.Request().Context(), sessions, sess.ID); err != nil {
			c.Logger().Errorf("destroy session: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to logout"})
		}
		c.SetCookie(&http.Cookie{
			Name:     middleware.SessionCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		return c.NoContent(http.StatusNoContent)
	}
}
