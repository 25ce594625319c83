package domain_test

import (
	"testing"

	"rental_booking/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestBookingTotalCost(t *testing.T) {
	b := domain.Booking{Days: 3, RentPerDay: 50}
	assert.Equal(t, float64(150), b.TotalCost())

	// Fractional daily rates multiply exactly
	b = domain.Booking{Days: 7, RentPerDay: 99.5}
	assert.Equal(t, float64(696.5), b.TotalCost())

	b = domain.Booking{}
	assert.Zero(t, b.TotalCost())
}
