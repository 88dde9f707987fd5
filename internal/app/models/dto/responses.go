package dto

import "time"

// SuccessResponse represents a standard success response for API endpoints.
type SuccessResponse struct {
	Message string `json:"message"`
}

// CreateRoomResponse carries the generated code of a new room.
type CreateRoomResponse struct {
	Code string `json:"code"`
}

// RoomResponse carries room metadata.
type RoomResponse struct {
	Code        string `json:"code,omitempty"`
	Title       string `json:"title"`
	Teacher     string `json:"teacher"`
	Description string `json:"description"`
}

// PostResponse represents a single post ledger entry.
type PostResponse struct {
	ID        int64     `json:"id"`
	Content   string    `json:"content"`
	FileURL   *string   `json:"fileUrl,omitempty"`
	Author    string    `json:"author"`
	Timestamp time.Time `json:"timestamp"`
}

// AnnouncementResponse represents a single announcement ledger entry.
type AnnouncementResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Author      string    `json:"author"`
	Timestamp   time.Time `json:"timestamp"`
}
