package v1

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/anbelova/mathblitz/internal/problems"
)

type ProblemsHandler struct {
	generator *problems.Generator
}

func RegisterProblemRoutes(e *echo.Echo, g *problems.Generator) {
	h := &ProblemsHandler{generator: g}
	e.POST("/generate-examples", h.GenerateExamples)
}

type generateRequest struct {
	Mode   string `json:"mode"`
	Number any    `json:"number"`
}

func (h *ProblemsHandler) GenerateExamples(c echo.Context) error {
	var req generateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request")
	}

	set := h.generator.Generate(req.Mode == "on", parseNumber(req.Number))
	return c.JSON(http.StatusOK, set)
}

// parseNumber tolerates numeric and string payloads; anything malformed
// falls back to the smallest table.
func parseNumber(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		parsed, err := strconv.Atoi(n)
		if err != nil {
			return 2
		}
		return parsed
	default:
		return 2
	}
}
