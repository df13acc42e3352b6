package api

import (
	"errors"
	"net/http"

	"innkeeper/internal/domain/room"
	reqdto "innkeeper/internal/handler/dto/request"
	resdto "innkeeper/internal/handler/dto/response"
	"innkeeper/internal/pkg/errs"
	"innkeeper/internal/usecase/commands"
	"innkeeper/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type RoomHandler struct {
	commands commands.RoomTypeCommands
	queries  queries.RoomTypeQueries
}

func NewRoomHandler(cmds commands.RoomTypeCommands, qrs queries.RoomTypeQueries) *RoomHandler {
	return &RoomHandler{
		commands: cmds,
		queries:  qrs,
	}
}

// @Summary List room types
// @Description List the bookable room catalog
// @Tags rooms
// @Produce json
// @Success 200 {array} queries.RoomTypeView
// @Router /rooms [get]
func (h *RoomHandler) ListRoomTypes(c *gin.Context) {
	views, err := h.queries.ListRoomTypes(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Get room type
// @Description Get one room type by name
// @Tags rooms
// @Produce json
// @Param name path string true "Room type name"
// @Success 200 {object} queries.RoomTypeView
// @Failure 404 {object} map[string]string
// @Router /rooms/{name} [get]
func (h *RoomHandler) GetRoomType(c *gin.Context) {
	view, err := h.queries.GetRoomType(c.Request.Context(), c.Param("name"))
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrRoomTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room type not found",
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

// @Summary List room statuses
// @Description List room types with their live occupancy and maintenance flags
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Success 200 {array} queries.RoomStatusView
// @Failure 401 {object} map[string]string
// @Router /rooms/status [get]
func (h *RoomHandler) ListRoomStatuses(c *gin.Context) {
	views, err := h.queries.ListRoomStatuses(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	c.JSON(http.StatusOK, views)
}

// @Summary Create room type
// @Description Add a room type to the catalog
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateRoomTypeRequest true "Room type"
// @Success 201 {object} resdto.RoomTypeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rooms [post]
func (h *RoomHandler) CreateRoomType(c *gin.Context) {
	var req reqdto.CreateRoomTypeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rt, err := h.commands.CreateRoomType(c.Request.Context(), commands.CreateRoomTypeParams{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		NightlyRate: req.NightlyRate,
		Capacity:    req.Capacity,
		PricingMode: room.PricingMode(req.PricingMode),
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrDuplicateRoom):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Room type already exists",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid room type details",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRoomType(rt))
}

// @Summary Update room type
// @Description Partially update rate, capacity, description or image
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param name path string true "Room type name"
// @Param request body reqdto.UpdateRoomTypeRequest true "Fields to update"
// @Success 200 {object} resdto.RoomTypeResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /rooms/{name} [patch]
func (h *RoomHandler) UpdateRoomType(c *gin.Context) {
	var req reqdto.UpdateRoomTypeRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	rt, err := h.commands.UpdateRoomType(c.Request.Context(), commands.UpdateRoomTypeParams{
		Name:        c.Param("name"),
		Description: req.Description,
		Image:       req.Image,
		NightlyRate: req.NightlyRate,
		Capacity:    req.Capacity,
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room type not found",
			})
		case errors.Is(err, commands.ErrDomainValidation):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Invalid room type details",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRoomType(rt))
}

// @Summary Delete room type
// @Description Remove a room type from the catalog
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param name path string true "Room type name"
// @Success 204
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /rooms/{name} [delete]
func (h *RoomHandler) DeleteRoomType(c *gin.Context) {
	if err := h.commands.DeleteRoomType(c.Request.Context(), c.Param("name")); err != nil {
		switch {
		case errors.Is(err, commands.ErrRoomTypeNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Room type not found",
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
