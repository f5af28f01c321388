package handler

import (
	"net/http"
	"time"

	"jobboard/internal/api"
	"jobboard/internal/cache"
	"jobboard/internal/database"

	"github.com/labstack/echo/v4"
)

const pingKey = "ping"

// PingHandler 健康檢查
// @Summary     Health Check
// @Description 回傳 pong，並檢查資料庫與 Redis 連線是否正常
// @Tags        health
// @Produce     json
// @Success     200 {object} api.PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB, c cache.Cache) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		reqCtx := ctx.Request().Context()
		if err := db.Ping(reqCtx); err != nil {
			ctx.Logger().Errorf("ping database: %v", err)
			return ctx.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		if err := c.Set(reqCtx, pingKey, "pong", time.Minute).Err(); err != nil {
			ctx.Logger().Errorf("ping cache: %v", err)
			return ctx.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "cache unhealthy"})
		}
		return ctx.JSON(http.StatusOK, api.PingResponse{Message: "pong"})
	}
}
