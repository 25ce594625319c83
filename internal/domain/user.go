package domain

import "time"

// User Model
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`                                                    // Primary key
	Username  string    `gorm:"size:100;unique;not null" json:"username"`                                // Unique username
	Password  string    `gorm:"size:255;not null" json:"-"`                                              // Hashed password, never serialized
	CreatedAt time.Time `json:"created_at"`                                                              // Timestamp of creation
	Bookings  []Booking `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"bookings,omitempty"` // Bookings owned by this user
}
