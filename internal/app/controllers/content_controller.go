package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prabal/classhub/internal/app/models/dto"
	"github.com/prabal/classhub/internal/app/services"
	"github.com/prabal/classhub/internal/middleware"
)

// ContentController handles the per-room post and announcement ledgers.
type ContentController struct {
	contentService services.ContentService
}

// NewContentController creates a new ContentController.
func NewContentController(contentService services.ContentService) *ContentController {
	return &ContentController{contentService: contentService}
}

// CreatePost handles writing a post, optionally with an attached file
// @Summary Write a post
// @Description Appends a post to the room's ledger. Requires membership in the room. An attached file is stored first; the post is only written after the file is durably saved.
// @Tags content
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param code path string true "Room code"
// @Param content formData string true "Post content"
// @Param file formData file false "Attachment"
// @Success 201 {object} dto.SuccessResponse "Post uploaded"
// @Failure 400 {object} dto.ErrorResponse "Missing field"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not a member"
// @Failure 500 {object} dto.ErrorResponse "Store or attachment error"
// @Router /rooms/{code}/posts [post]
func (c *ContentController) CreatePost(ctx *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	code := ctx.Param("code")

	var req dto.CreatePostRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Content is required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	// The file part is optional.
	attachment, err := ctx.FormFile("file")
	if err != nil {
		attachment = nil
	}

	if err := c.contentService.WritePost(ctx.Request.Context(), principal, code, req.Content, attachment); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SuccessResponse{Message: "Post uploaded"})
}

// ListPosts handles reading a room's posts
// @Summary List posts
// @Description Returns all posts in the room, newest first. Requires membership in the room.
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param code path string true "Room code"
// @Success 200 {array} dto.PostResponse "Posts, newest first"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not a member"
// @Failure 500 {object} dto.ErrorResponse "Store error"
// @Router /rooms/{code}/posts [get]
func (c *ContentController) ListPosts(ctx *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	code := ctx.Param("code")

	posts, err := c.contentService.ListPosts(ctx.Request.Context(), principal, code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, posts)
}

// CreateAnnouncement handles writing an announcement
// @Summary Write an announcement
// @Description Appends an announcement to the room's announcement ledger. Requires membership in the room.
// @Tags content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param code path string true "Room code"
// @Param request body dto.CreateAnnouncementRequest true "Announcement"
// @Success 201 {object} dto.SuccessResponse "Announcement created"
// @Failure 400 {object} dto.ErrorResponse "Missing field"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not a member"
// @Failure 500 {object} dto.ErrorResponse "Store error"
// @Router /rooms/{code}/announcements [post]
func (c *ContentController) CreateAnnouncement(ctx *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	code := ctx.Param("code")

	var req dto.CreateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Title and description are required")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.contentService.WriteAnnouncement(ctx.Request.Context(), principal, code, &req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SuccessResponse{Message: "Announcement created"})
}

// ListAnnouncements handles reading a room's announcements
// @Summary List announcements
// @Description Returns all announcements in the room, newest first. Requires membership in the room.
// @Tags content
// @Produce json
// @Security BearerAuth
// @Param code path string true "Room code"
// @Success 200 {array} dto.AnnouncementResponse "Announcements, newest first"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Failure 403 {object} dto.ErrorResponse "Not a member"
// @Failure 500 {object} dto.ErrorResponse "Store error"
// @Router /rooms/{code}/announcements [get]
func (c *ContentController) ListAnnouncements(ctx *gin.Context) {
	principal, ok := middleware.PrincipalFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	code := ctx.Param("code")

	announcements, err := c.contentService.ListAnnouncements(ctx.Request.Context(), principal, code)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, announcements)
}
