package v1

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/anbelova/mathblitz/internal/user"
)

type UserHandler struct {
	users *user.Service
}

func RegisterUserRoutes(e *echo.Echo, svc *user.Service) {
	h := &UserHandler{users: svc}
	e.POST("/register", h.Register)
	e.POST("/login", h.Login)
}

func (h *UserHandler) Register(c echo.Context) error {
	var creds user.Credentials
	if err := c.Bind(&creds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}

	id, err := h.users.Register(creds.Username, creds.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "user_id": id})
}

func (h *UserHandler) Login(c echo.Context) error {
	var creds user.Credentials
	if err := c.Bind(&creds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}

	id, err := h.users.Login(creds.Username, creds.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true, "user_id": id})
}
