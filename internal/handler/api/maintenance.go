package api

import (
	"errors"
	"net/http"

	"innkeeper/internal/domain/maintenance"
	reqdto "innkeeper/internal/handler/dto/request"
	resdto "innkeeper/internal/handler/dto/response"
	"innkeeper/internal/pkg/errs"
	"innkeeper/internal/usecase/commands"
	"innkeeper/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type MaintenanceHandler struct {
	commands commands.MaintenanceCommands
	queries  queries.MaintenanceQueries
}

func NewMaintenanceHandler(cmds commands.MaintenanceCommands, qrs queries.MaintenanceQueries) *MaintenanceHandler {
	return &MaintenanceHandler{
		commands: cmds,
		queries:  qrs,
	}
}

// @Summary List maintenance windows
// @Description List maintenance windows, optionally filtered by status
// @Tags maintenance
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status" Enums(pending, in-progress, completed)
// @Success 200 {array} queries.MaintenanceView
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /maintenance [get]
func (h *MaintenanceHandler) ListMaintenance(c *gin.Context) {
	var status *string
	if s := c.Query("status"); s != "" {
		status = &s
	}

	views, err := h.queries.ListMaintenance(c.Request.Context(), status)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDomainValidation):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid status filter",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, views)
}

// @Summary Schedule maintenance
// @Description Block a room type for maintenance over a range, a due date, or today
// @Tags maintenance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ScheduleMaintenanceRequest true "Maintenance window"
// @Success 201 {object} resdto.MaintenanceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /maintenance [post]
func (h *MaintenanceHandler) ScheduleMaintenance(c *gin.Context) {
	var req reqdto.ScheduleMaintenanceRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	w, err := h.commands.ScheduleMaintenance(c.Request.Context(), commands.ScheduleMaintenanceParams{
		RoomTypeName: req.RoomTypeName,
		Issue:        req.Issue,
		Priority:     maintenance.Priority(req.Priority),
		Start:        req.Start,
		End:          req.End,
		DueDate:      req.DueDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room type not found",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid maintenance details",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromMaintenanceWindow(w))
}

// @Summary Update maintenance status
// @Description Advance a maintenance window (pending, in-progress, completed)
// @Tags maintenance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Maintenance window ID"
// @Param request body reqdto.UpdateMaintenanceStatusRequest true "Target status"
// @Success 200 {object} resdto.MaintenanceResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /maintenance/{id}/status [patch]
func (h *MaintenanceHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid maintenance ID format",
		})
		return
	}

	var req reqdto.UpdateMaintenanceStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	target := maintenance.Status(req.Status)
	if !target.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Unknown maintenance status",
		})
		return
	}

	w, err := h.commands.UpdateStatus(c.Request.Context(), id, target)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrMaintenanceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Maintenance window not found",
			})
		case errors.Is(err, commands.ErrInvalidTransition):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Status transition not allowed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromMaintenanceWindow(w))
}

// @Summary Delete maintenance window
// @Description Remove a maintenance window
// @Tags maintenance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Maintenance window ID"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /maintenance/{id} [delete]
func (h *MaintenanceHandler) DeleteMaintenance(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid maintenance ID format",
		})
		return
	}

	if err := h.commands.DeleteMaintenance(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrMaintenanceNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Maintenance window not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
