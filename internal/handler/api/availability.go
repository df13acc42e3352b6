package api

import (
	"errors"
	"net/http"

	reqdto "innkeeper/internal/handler/dto/request"
	"innkeeper/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	queries queries.AvailabilityQueries
}

func NewAvailabilityHandler(qrs queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{queries: qrs}
}

// @Summary Check availability
// @Description Probe whether a stay conflicts with reservations or maintenance
// @Tags availability
// @Produce json
// @Param room_type query string true "Room type name"
// @Param check_in query string true "Check-in (RFC 3339)"
// @Param check_out query string true "Check-out (RFC 3339)"
// @Success 200 {object} queries.AvailabilityView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /availability [get]
func (h *AvailabilityHandler) Check(c *gin.Context) {
	var req reqdto.CheckAvailabilityRequest
	if bindErr := c.ShouldBindQuery(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	view, err := h.queries.Check(c.Request.Context(), req.RoomTypeName, req.CheckIn, req.CheckOut)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRoomTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room type not found",
			})
		case errors.Is(err, queries.ErrInvalidStayRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Check-out must be after check-in",
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

// @Summary Quote a stay
// @Description Price a stay without creating a reservation
// @Tags availability
// @Produce json
// @Param room_type query string true "Room type name"
// @Param check_in query string true "Check-in (RFC 3339)"
// @Param check_out query string true "Check-out (RFC 3339)"
// @Param guests query int true "Guest count"
// @Success 200 {object} queries.QuoteView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /availability/quote [get]
func (h *AvailabilityHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if bindErr := c.ShouldBindQuery(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	view, err := h.queries.Quote(c.Request.Context(), req.RoomTypeName, req.CheckIn, req.CheckOut, req.Guests)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrRoomTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room type not found",
			})
		case errors.Is(err, queries.ErrInvalidStayRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid stay or guest count",
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
