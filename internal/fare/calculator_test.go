package fare_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/toll-plaza/internal/domain"
	"github.com/pkordes/toll-plaza/internal/fare"
)

const cents = 0.001

func at(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.UTC)
}

func TestCalculator_Price_OddPlateOnTuesday(t *testing.T) {
	c := fare.NewCalculator(time.UTC)

	got, err := c.Price("Ph4 Interchange", "Bahria Interchange",
		at(2024, 2, 20, 7), at(2024, 2, 20, 12), "ABC123")

	require.NoError(t, err)
	assert.Equal(t, 24, got.Distance)
	assert.InDelta(t, 20, got.BaseRate, cents)
	assert.InDelta(t, 4.8, got.DistanceCost, cents)
	assert.InDelta(t, 24.8, got.SubTotal, cents)
	assert.InDelta(t, 22.32, got.Total, cents)
	assert.InDelta(t, 2.48, got.Discount, cents)
	assert.True(t, got.SpecialDiscount)
	assert.False(t, got.Weekend)
	assert.False(t, got.Holiday)
}

func TestCalculator_Price_EvenPlateOnMonday(t *testing.T) {
	c := fare.NewCalculator(time.UTC)

	got, err := c.Price("Ph4 Interchange", "Bahria Interchange",
		at(2024, 2, 19, 7), at(2024, 2, 19, 12), "ABC122")

	require.NoError(t, err)
	assert.InDelta(t, 22.32, got.Total, cents)
}

func TestCalculator_Price_ParityMismatchPaysFull(t *testing.T) {
	c := fare.NewCalculator(time.UTC)

	got, err := c.Price("Ph4 Interchange", "Bahria Interchange",
		at(2024, 2, 19, 7), at(2024, 2, 19, 12), "ABC123")

	require.NoError(t, err)
	assert.False(t, got.SpecialDiscount)
	assert.InDelta(t, 24.8, got.Total, cents)
	assert.InDelta(t, 0, got.Discount, cents)
}

func TestCalculator_Price_Holiday(t *testing.T) {
	c := fare.NewCalculator(time.UTC)

	// 23 March 2024 is also a Saturday: the holiday rule must win.
	got, err := c.Price("Zero Point", "Bahria Interchange",
		at(2024, 3, 23, 7), at(2024, 3, 23, 12), "ABC123")

	require.NoError(t, err)
	assert.True(t, got.Holiday)
	assert.True(t, got.Weekend)
	assert.InDelta(t, 26.8, got.SubTotal, cents)
	assert.InDelta(t, 13.40, got.Total, cents)
	assert.InDelta(t, 13.40, got.Discount, cents)
	assert.Equal(t, "holiday", got.Regime())
}

func TestCalculator_Price_HolidayIgnoresSpecialDiscount(t *testing.T) {
	c := fare.NewCalculator(time.UTC)

	// Enters on Tuesday 13 August with an odd plate, exits on the 14th.
	got, err := c.Price("Ph4 Interchange", "Bahria Interchange",
		at(2024, 8, 13, 22), at(2024, 8, 14, 1), "ABC123")

	require.NoError(t, err)
	assert.True(t, got.SpecialDiscount)
	assert.InDelta(t, got.SubTotal*(1-fare.HolidayDiscount), got.Total, cents)
	assert.InDelta(t, 12.40, got.Total, cents)
}

func TestCalculator_Price_HolidayOnSameInterchange(t *testing.T) {
	c := fare.NewCalculator(time.UTC)

	got, err := c.Price("Bahria Interchange", "Bahria Interchange",
		at(2024, 3, 23, 7), at(2024, 3, 23, 12), "ABC123")

	require.NoError(t, err)
	assert.InDelta(t, 10, got.Total, cents)
}

func TestCalculator_Price_WeekendOnlyScalesDistance(t *testing.T) {
	c := fare.NewCalculator(time.UTC)

	got, err := c.Price("Zero Point", "Bahria Interchange",
		at(2024, 2, 18, 7), at(2024, 2, 18, 12), "ABC123")

	require.NoError(t, err)
	assert.True(t, got.Weekend)
	assert.InDelta(t, 26.8, got.SubTotal, cents)
	assert.InDelta(t, 6.8*fare.WeekendMultiplier+fare.BaseTollRate, got.Total, cents)
	assert.InDelta(t, 30.2, got.Total, cents)
	assert.InDelta(t, -3.4, got.Discount, cents, "surcharge shows up as a negative discount")
}

func TestCalculator_Price_WeekendExitWithSpecialEntry(t *testing.T) {
	c := fare.NewCalculator(time.UTC)

	// Thursday entry with odd plate, Saturday exit.
	got, err := c.Price("Zero Point", "Bahria Interchange",
		at(2024, 2, 22, 7), at(2024, 2, 24, 12), "ABC129")

	require.NoError(t, err)
	assert.Equal(t, "weekend_special_day", got.Regime())
	assert.InDelta(t, 27.18, got.Total, cents)
}

func TestCalculator_Price_UsesTariffLocation(t *testing.T) {
	pkt := time.FixedZone("PKT", 5*60*60)
	c := fare.NewCalculator(pkt)

	// 22 March 21:00 UTC is already 23 March in PKT.
	got, err := c.Price("Zero Point", "Zero Point",
		time.Date(2024, 3, 22, 21, 0, 0, 0, time.UTC),
		time.Date(2024, 3, 22, 21, 30, 0, 0, time.UTC), "ABC120")

	require.NoError(t, err)
	assert.True(t, got.Holiday)
}

func TestCalculator_Price_UnknownInterchange(t *testing.T) {
	c := fare.NewCalculator(nil)

	_, err := c.Price("Zero Point", "Nowhere", at(2024, 2, 20, 7), at(2024, 2, 20, 8), "ABC123")

	assert.ErrorIs(t, err, domain.ErrUnknownInterchange)
}

func TestCalculator_Price_InvalidPlate(t *testing.T) {
	c := fare.NewCalculator(nil)

	_, err := c.Price("Zero Point", "NS Interchange", at(2024, 2, 20, 7), at(2024, 2, 20, 8), "ABCXYZ")

	assert.ErrorIs(t, err, domain.ErrInvalidPlate)
}
