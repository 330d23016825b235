package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShowTime(t *testing.T) {
	st := NewShowTime("Monday", "18:30")

	assert.Equal(t, "Monday", st.Day)
	assert.Equal(t, "18:30", st.Time)
	require.Len(t, st.Seats, TotalSeatCount)
	assert.Equal(t, "Day: Monday, Time: 18:30", st.Info())
}

func TestAvailableByType(t *testing.T) {
	st := NewShowTime("Friday", "20:00")

	assert.Equal(t, StandardSeatCount, st.AvailableByType(SeatStandard))
	assert.Equal(t, PremiumSeatCount, st.AvailableByType(SeatPremium))
	assert.Equal(t, VIPSeatCount, st.AvailableByType(SeatVIP))

	st.Seats[0].Reserve()
	st.Seats[80].Reserve()

	assert.Equal(t, StandardSeatCount-1, st.AvailableByType(SeatStandard))
	assert.Equal(t, VIPSeatCount-1, st.AvailableByType(SeatVIP))
}

func TestMarkBooked(t *testing.T) {
	st := NewShowTime("Friday", "20:00")

	st.MarkBooked(82)
	assert.False(t, st.Seats[82].Available)

	// Out-of-range indices from stale history must be ignored.
	st.MarkBooked(-1)
	st.MarkBooked(TotalSeatCount)
	assert.Equal(t, TotalSeatCount-1,
		st.AvailableByType(SeatStandard)+st.AvailableByType(SeatPremium)+st.AvailableByType(SeatVIP))
}

func TestHasSeat(t *testing.T) {
	st := NewShowTime("Friday", "20:00")

	assert.True(t, st.HasSeat(st.Seats[42]))
	assert.False(t, st.HasSeat(nil))

	// A seat from another showtime's layout does not belong here even if
	// its index is in range.
	foreign := NewShowTime("Saturday", "20:00").Seats[42]
	assert.False(t, st.HasSeat(foreign))
}
