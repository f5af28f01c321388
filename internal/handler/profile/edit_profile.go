package profile

import (
	"net/http"
	"strings"

	"jobboard/internal/api"
	"jobboard/internal/database"
	"jobboard/internal/middleware"
	"jobboard/internal/store"

	"github.com/labstack/echo/v4"
)

// TemplateName 編輯頁面使用的模板名稱
const TemplateName = "edit-profile"

const updatedScript = `<script>alert('Profile updated successfully'); setTimeout(function() { window.location.href = '/edit-profile'; }, 500);</script>`

var (
	getProfile    = store.GetProfile
	updateProfile = store.UpdateProfile
)

func wantsJSON(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}

// GetEditProfileHandler 顯示目前登入者的個人資料
// @Summary     取得個人資料
// @Description Accept 為 application/json 時回傳 JSON，否則回傳 HTML 編輯頁
// @Tags        profile
// @Produce     json,html
// @Success     200 {object} api.EditProfileView
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    SessionCookie
// @Router      /edit-profile [get]
func GetEditProfileHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.SessionFrom(c)
		if sess == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "authentication required"})
		}

		p, err := getProfile(c.Request().Context(), db, sess.UserID, sess.UserType)
		if err != nil {
			c.Logger().Errorf("get profile for user %d: %v", sess.UserID, err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "error fetching profile data"})
		}

		view := api.NewEditProfileView(p, sess.Email)
		if wantsJSON(c) {
			return c.JSON(http.StatusOK, view)
		}
		return c.Render(http.StatusOK, TemplateName, view)
	}
}

// UpdateEditProfileHandler 更新目前登入者的個人資料；未提供的欄位保持原值
// @Summary     更新個人資料
// @Tags        profile
// @Accept      application/x-www-form-urlencoded,json
// @Produce     html
// @Param       name            formData string false "姓名"
// @Param       location        formData string false "所在地"
// @Param       budget          formData number false "預算 (employer)"
// @Param       bio             formData string false "自我介紹 (freelancer)"
// @Param       profile_picture formData string false "大頭貼網址 (freelancer)"
// @Success     200 {string} string "success script"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    SessionCookie
// @Router      /edit-profile [post]
func UpdateEditProfileHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess := middleware.SessionFrom(c)
		if sess == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "authentication required"})
		}

		var req api.UpdateProfileRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid form data"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		if err := updateProfile(c.Request().Context(), db, sess.UserID, sess.UserType, req.Changes()); err != nil {
			c.Logger().Errorf("update profile for user %d: %v", sess.UserID, err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "error updating profile"})
		}
		return c.HTML(http.StatusOK, updatedScript)
	}
}
