package domain

import "time"

// Booking status values
const (
	StatusBooked    = "booked"    // Initial status on creation
	StatusCompleted = "completed" // Terminal: rental finished
	StatusCancelled = "cancelled" // Terminal: may never become completed
)

// Booking Model
type Booking struct {
	ID         uint      `gorm:"primaryKey" json:"id"`                                                                     // Primary key
	UserID     uint      `gorm:"not null;index" json:"user_id"`                                                            // Foreign key to the owning User
	CarName    string    `gorm:"size:100;not null" json:"car_name"`                                                        // Name of the rented car
	Days       int       `gorm:"not null;default:1" json:"days"`                                                           // Rental duration in days
	RentPerDay float64   `gorm:"not null" json:"rent_per_day"`                                                             // Daily rate
	Status     string    `gorm:"not null;default:booked;check:status IN ('booked','completed','cancelled')" json:"status"` // Booking status
	CreatedAt  time.Time `json:"created_at"`                                                                               // Timestamp of creation
}

// TotalCost computes the derived cost of the booking (not stored as a column)
func (b *Booking) TotalCost() float64 {
	return float64(b.Days) * b.RentPerDay // Days times daily rate
}
