package auth

import (
	"errors"
	"net/http"
	"strings"

	"jobboard/internal/api"
	"jobboard/internal/database"
	"jobboard/internal/model"
	"jobboard/internal/service"
	"jobboard/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	hashPassword = service.HashPassword
	createUser   = store.CreateUser
)

// RegisterHandler 建立新帳號與對應的角色資料
// @Summary     Register
// @Description 建立 employer 或 freelancer 帳號 (Email 會自動轉小寫)
// @Tags        auth
// @Accept      application/x-www-form-urlencoded
// @Produce     json
// @Param       name     formData string true  "姓名"
// @Param       email    formData string true  "Email"
// @Param       password formData string true  "密碼"
// @Param       type     formData string true  "employer 或 freelancer"
// @Param       location formData string false "所在地"
// @Success     201      {object} api.UserResponse
// @Failure     400      {object} api.ErrorResponse
// @Failure     409      {object} api.ErrorResponse
// @Failure     500      {object} api.ErrorResponse
// @Router      /register [post]
func RegisterHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}
		userType, err := model.ParseUserType(req.Type)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		hash, err := hashPassword(req.Password)
		if err != nil {
			c.Logger().Errorf("hash password: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}

		u, err := createUser(c.Request().Context(), db, &model.User{
			Name:         strings.TrimSpace(req.Name),
			Email:        strings.ToLower(strings.TrimSpace(req.Email)),
			PasswordHash: hash,
			Type:         userType,
			Location:     strings.TrimSpace(req.Location),
		})
		if err != nil {
			if errors.Is(err, store.ErrEmailTaken) {
				return c.JSON(http.StatusConflict, api.ErrorResponse{Message: "email already registered"})
			}
			c.Logger().Errorf("create user: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to create user"})
		}
		return c.JSON(http.StatusCreated, api.NewUserResponse(u))
	}
}
