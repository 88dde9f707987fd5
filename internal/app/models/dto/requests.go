package dto

// AddUserRequest is the body for creating a user record.
type AddUserRequest struct {
	Username string `json:"uname" binding:"required"`
}

// CreateRoomRequest is the body for creating a room.
type CreateRoomRequest struct {
	Title       string `json:"title" binding:"required"`
	Teacher     string `json:"teacher" binding:"required"`
	Description string `json:"description" binding:"required"`
}

// JoinRoomRequest is the body for joining a room. The username must match
// the authenticated principal; it is cross-checked, never trusted.
type JoinRoomRequest struct {
	Username string `json:"uname" binding:"required"`
	Code     string `json:"code" binding:"required"`
}

// CreatePostRequest is the multipart form for writing a post. The file
// part, when present, is handled separately by the controller.
type CreatePostRequest struct {
	Content string `form:"content" binding:"required"`
}

// CreateAnnouncementRequest is the body for writing an announcement.
type CreateAnnouncementRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
}
