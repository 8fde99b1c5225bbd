package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/anbelova/mathblitz/internal/progress"
)

type ProgressHandler struct {
	ledger *progress.Service
}

func RegisterProgressRoutes(e *echo.Echo, svc *progress.Service) {
	h := &ProgressHandler{ledger: svc}
	e.POST("/save-result", h.SaveResult)
	e.GET("/profile/:id", h.GetProfile)
	e.POST("/update-achievement", h.UpdateAchievement)
}

type saveResultRequest struct {
	UserID *uint `json:"user_id"`
	Score  *int  `json:"score"`
}

func (h *ProgressHandler) SaveResult(c echo.Context) error {
	var req saveResultRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}
	if req.Score == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid score")
	}

	if err := h.ledger.SaveResult(req.UserID, *req.Score); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

func (h *ProgressHandler) GetProfile(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user ID")
	}

	view, err := h.ledger.GetProfile(uint(id))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}

type updateAchievementRequest struct {
	UserID   uint   `json:"user_id"`
	Name     string `json:"name"`
	Progress *int   `json:"progress"`
}

func (h *ProgressHandler) UpdateAchievement(c echo.Context) error {
	var req updateAchievementRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}
	if req.Progress == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "missing required fields")
	}

	if err := h.ledger.UpdateAchievement(req.UserID, req.Name, *req.Progress); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}
