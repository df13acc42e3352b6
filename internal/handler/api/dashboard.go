package api

import (
	"errors"
	"net/http"

	reqdto "innkeeper/internal/handler/dto/request"
	"innkeeper/internal/pkg/errs"
	"innkeeper/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	queries queries.DashboardQueries
}

func NewDashboardHandler(qrs queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{queries: qrs}
}

// @Summary Dashboard overview
// @Description Occupancy summary, today's arrivals and departures, reservation pipeline
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} queries.DashboardView
// @Failure 401 {object} map[string]string
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	view, err := h.queries.GetDashboard(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Revenue report
// @Description Sum frozen payment totals, optionally over a check-in window
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Param from query string false "Window start (RFC 3339, inclusive)"
// @Param to query string false "Window end (RFC 3339, exclusive)"
// @Success 200 {object} queries.RevenueView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /dashboard/revenue [get]
func (h *DashboardHandler) GetRevenue(c *gin.Context) {
	var req reqdto.RevenueRequest
	if bindErr := c.ShouldBindQuery(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	view, err := h.queries.GetRevenue(c.Request.Context(), req.From, req.To)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidStayRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Window end must be after window start",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, view)
}
