package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prabal/classhub/internal/app/models/dto"
	"github.com/prabal/classhub/internal/app/services"
	"github.com/prabal/classhub/internal/middleware"
)

// RoomController handles room registry endpoints.
type RoomController struct {
	roomService services.RoomService
}

// NewRoomController creates a new RoomController.
func NewRoomController(roomService services.RoomService) *RoomController {
	return &RoomController{roomService: roomService}
}

// CreateRoom handles room creation
// @Summary Create a room
// @Description Registers a room and returns its generated code.
// @Tags rooms
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Room metadata"
// @Success 201 {object} dto.CreateRoomResponse "Generated room code"
// @Failure 400 {object} dto.ErrorResponse "Missing field"
// @Failure 500 {object} dto.ErrorResponse "Store error"
// @Router /rooms [post]
func (c *RoomController) CreateRoom(ctx *gin.Context) {
	var req dto.CreateRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Title, teacher and description are required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	response, err := c.roomService.CreateRoom(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, response)
}

// GetRoom handles fetching room metadata
// @Summary Get room metadata
// @Description Returns the title, teacher and description of a room.
// @Tags rooms
// @Produce json
// @Param code path string true "Room code"
// @Success 200 {object} dto.RoomResponse "Room metadata"
// @Failure 404 {object} dto.ErrorResponse "Room not found"
// @Failure 500 {object} dto.ErrorResponse "Store error"
// @Router /rooms/{code} [get]
func (c *RoomController) GetRoom(ctx *gin.Context) {
	code := ctx.Param("code")

	room, err := c.roomService.GetRoom(ctx.Request.Context(), code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, room)
}
