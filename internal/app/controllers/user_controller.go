package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prabal/classhub/internal/app/models/dto"
	"github.com/prabal/classhub/internal/app/services"
	"github.com/prabal/classhub/internal/middleware"
)

// UserController handles user and membership related endpoints.
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController.
func NewUserController(userService services.UserService) *UserController {
	return &UserController{userService: userService}
}

// AddUser handles creating a user record
// @Summary Add a user
// @Description Creates a user record with an empty room membership set. Re-adding an existing username is a no-op.
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.AddUserRequest true "Username"
// @Success 201 {object} dto.SuccessResponse "User added"
// @Failure 400 {object} dto.ErrorResponse "Missing username"
// @Failure 500 {object} dto.ErrorResponse "Store error"
// @Router /users [post]
func (c *UserController) AddUser(ctx *gin.Context) {
	var req dto.AddUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Username is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.userService.AddUser(ctx.Request.Context(), req.Username); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SuccessResponse{Message: "User added"})
}

// JoinRoom handles adding a room to the caller's membership set
// @Summary Join a room
// @Description Adds the room code to the caller's own membership set. The username in the body must match the authenticated identity.
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.JoinRoomRequest true "Username and room code"
// @Success 200 {object} dto.SuccessResponse "Joined room"
// @Failure 400 {object} dto.ErrorResponse "Missing field"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Identity mismatch"
// @Failure 500 {object} dto.ErrorResponse "Store error"
// @Router /rooms/join [post]
func (c *UserController) JoinRoom(ctx *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.JoinRoomRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Username and room code are required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.userService.JoinRoom(ctx.Request.Context(), principal, req.Username, req.Code); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Joined room"})
}

// ListRooms handles listing the rooms a user has joined
// @Summary List a user's rooms
// @Description Resolves the user's joined room codes to room metadata. Codes that no longer resolve are omitted.
// @Tags users
// @Produce json
// @Param uname path string true "Username"
// @Success 200 {array} dto.RoomResponse "Joined rooms"
// @Failure 404 {object} dto.ErrorResponse "Unknown user"
// @Failure 500 {object} dto.ErrorResponse "Store error"
// @Router /users/{uname}/rooms [get]
func (c *UserController) ListRooms(ctx *gin.Context) {
	username := ctx.Param("uname")

	rooms, err := c.userService.ListRoomsOf(ctx.Request.Context(), username)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, rooms)
}
