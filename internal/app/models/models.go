package models

import "time"

// User defines the user model based on the 'users' table. The username is
// the primary key and equals the verified principal identity. Rooms holds
// the codes of rooms the user has joined; it only ever grows.
type User struct {
	Username string   `json:"uname" db:"username"`
	Rooms    []string `json:"rooms" db:"rooms"`
}

// Room defines the room model based on the 'rooms' table. The code is
// system-generated and rooms are immutable after creation.
type Room struct {
	Code        string    `json:"code" db:"code"`
	Title       string    `json:"title" db:"title"`
	Teacher     string    `json:"teacher" db:"teacher"`
	Description string    `json:"description" db:"description"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
}

// Post defines a single entry in a room's post ledger. Entries are
// append-only; the timestamp is assigned by the server at write time.
type Post struct {
	ID        int64     `json:"id" db:"id"`
	RoomCode  string    `json:"roomCode" db:"room_code"`
	Content   string    `json:"content" db:"content"`
	FileURL   *string   `json:"fileUrl,omitempty" db:"file_url"`
	Author    string    `json:"author" db:"author"`
	Timestamp time.Time `json:"timestamp" db:"created_at"`
}

// Announcement defines a single entry in a room's announcement ledger,
// kept separate from posts.
type Announcement struct {
	ID          int64     `json:"id" db:"id"`
	RoomCode    string    `json:"roomCode" db:"room_code"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Author      string    `json:"author" db:"author"`
	Timestamp   time.Time `json:"timestamp" db:"created_at"`
}
