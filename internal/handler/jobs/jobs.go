package jobs

import (
	"errors"
	"net/http"
	"strconv"

	"jobboard/internal/api"
	"jobboard/internal/database"
	"jobboard/internal/model"
	"jobboard/internal/store"

	"github.com/labstack/echo/v4"
)

var (
	listJobPosts   = store.ListJobPosts
	getJobPostByID = store.GetJobPostByID
)

// ListJobsHandler 依狀態列出職缺
// @Summary     List job posts
// @Tags        jobs
// @Produce     json
// @Param       status query string false "open, in_progress 或 closed (預設 open)"
// @Success     200 {array}  api.JobPostResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /jobs [get]
func ListJobsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		status := model.JobStatusOpen
		if s := c.QueryParam("status"); s != "" {
			status = model.JobStatus(s)
		}
		if !status.Valid() {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid status"})
		}

		posts, err := listJobPosts(c.Request().Context(), db, status)
		if err != nil {
			c.Logger().Errorf("list job posts: %v", err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "error fetching job posts"})
		}
		resp := make([]api.JobPostResponse, 0, len(posts))
		for _, p := range posts {
			resp = append(resp, api.NewJobPostResponse(p))
		}
		return c.JSON(http.StatusOK, resp)
	}
}

// GetJobHandler 取得單一職缺
// @Summary     Get a job post
// @Tags        jobs
// @Produce     json
// @Param       id path int true "職缺 ID"
// @Success     200 {object} api.JobPostResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /jobs/{id} [get]
func GetJobHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil || id <= 0 {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid job id"})
		}
		p, err := getJobPostByID(c.Request().Context(), db, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "job post not found"})
			}
			c.Logger().Errorf("get job post %d: %v", id, err)
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "error fetching job post"})
		}
		return c.JSON(http.StatusOK, api.NewJobPostResponse(*p))
	}
}
