package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bungalowparadise/storefront/internal/model"
)

func day(d int) time.Time {
	return time.Date(2026, time.September, d, 0, 0, 0, 0, time.UTC)
}

func window(in, out int) model.StayWindow {
	return model.StayWindow{CheckIn: day(in), CheckOut: day(out)}
}

func TestIsAvailable_NoReservedRanges(t *testing.T) {
	assert.True(t, IsAvailable(window(1, 5), nil))
	assert.True(t, IsAvailable(window(1, 5), []model.DateRange{}))
}

func TestIsAvailable_BackToBackOnCheckoutDay(t *testing.T) {
	// A stay ending the day another begins is fine in both directions.
	reserved := []model.DateRange{{CheckIn: day(5), CheckOut: day(8)}}
	assert.True(t, IsAvailable(window(1, 5), reserved))
	assert.True(t, IsAvailable(window(8, 10), reserved))
}

func TestIsAvailable_PartialOverlap(t *testing.T) {
	reserved := []model.DateRange{{CheckIn: day(3), CheckOut: day(6)}}
	assert.False(t, IsAvailable(window(1, 4), reserved), "overlap at the tail")
	assert.False(t, IsAvailable(window(5, 9), reserved), "overlap at the head")
	assert.False(t, IsAvailable(window(4, 5), reserved), "fully inside")
	assert.False(t, IsAvailable(window(1, 9), reserved), "fully covering")
}

func TestIsAvailable_UnsortedRanges(t *testing.T) {
	reserved := []model.DateRange{
		{CheckIn: day(20), CheckOut: day(25)},
		{CheckIn: day(2), CheckOut: day(4)},
	}
	assert.True(t, IsAvailable(window(4, 10), reserved))
	assert.False(t, IsAvailable(window(4, 21), reserved))
}

func TestFilter_Matches(t *testing.T) {
	room := model.Room{
		ID:    7,
		Type:  model.RoomTypeDouble,
		Price: 120,
		ReservedDateRanges: []model.DateRange{
			{CheckIn: day(10), CheckOut: day(12)},
		},
	}

	stay := window(1, 3)
	f := Filter{MinPrice: 0, MaxPrice: 1000, Type: TypeAll, Stay: &stay}
	assert.True(t, f.Matches(room))

	f.Type = model.RoomTypeSuite
	assert.False(t, f.Matches(room), "type mismatch")

	f.Type = model.RoomTypeDouble
	f.MaxPrice = 100
	assert.False(t, f.Matches(room), "price above range")

	f.MaxPrice = 1000
	conflicting := window(11, 14)
	f.Stay = &conflicting
	assert.False(t, f.Matches(room), "overlapping stay")
}

func TestFilter_ApplyPreservesOrder(t *testing.T) {
	rooms := []model.Room{
		{ID: 1, Price: 50, Type: model.RoomTypeSingle},
		{ID: 2, Price: 500, Type: model.RoomTypeSuite},
		{ID: 3, Price: 80, Type: model.RoomTypeSingle},
	}
	f := Filter{MinPrice: 0, MaxPrice: 100, Type: TypeAll}
	got := f.Apply(rooms)
	assert.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestFilter_NoStayMeansNoAvailabilityCheck(t *testing.T) {
	room := model.Room{
		ID:    9,
		Price: 90,
		ReservedDateRanges: []model.DateRange{
			{CheckIn: day(1), CheckOut: day(30)},
		},
	}
	f := Filter{MinPrice: 0, MaxPrice: 100, Type: TypeAll}
	assert.True(t, f.Matches(room), "without dates only price/type apply")
}
