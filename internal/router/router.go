package router

import (
	"jobboard/internal/cache"
	"jobboard/internal/database"
	"jobboard/internal/handler"
	"jobboard/internal/handler/auth"
	"jobboard/internal/handler/jobs"
	"jobboard/internal/handler/profile"
	"jobboard/internal/middleware"
	"jobboard/internal/worker"

	"github.com/labstack/echo/v4"
)

// Setup 註冊所有路由與中介層
func Setup(e *echo.Echo, db database.DB, sessions cache.Cache, pool worker.Pool) {
	requireSession := middleware.RequireSession(sessions)

	// 健康檢查
	e.GET("/ping", handler.PingHandler(db, sessions))

	// 帳號
	e.POST("/register", auth.RegisterHandler(db))
	e.POST("/login", auth.LoginHandler(db, sessions, pool))
	e.POST("/logout", auth.LogoutHandler(sessions), requireSession)

	// 個人資料（需登入）
	e.GET("/edit-profile", profile.GetEditProfileHandler(db), requireSession)
	e.POST("/edit-profile", profile.UpdateEditProfileHandler(db), requireSession)

	// 職缺
	e.GET("/jobs", jobs.ListJobsHandler(db))
	e.GET("/jobs/:id", jobs.GetJobHandler(db))
}
