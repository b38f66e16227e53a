package fare

import (
	"fmt"
	"math"
	"time"

	"github.com/pkordes/toll-plaza/internal/domain"
)

// Tariff constants. These are fixed by the toll operator and are not read
// from configuration.
const (
	BaseTollRate       = 20.0
	DistanceRate       = 0.2
	WeekendMultiplier  = 1.5
	HolidayDiscount    = 0.5
	SpecialDayDiscount = 0.1
)

// Calculator prices trips on a Route. Weekdays and holiday dates are read in
// the tariff location, so a timestamp stored in UTC still lands on the local
// calendar day.
type Calculator struct {
	route Route
	loc   *time.Location
}

// NewCalculator returns a Calculator for the default route.
// A nil loc means UTC.
func NewCalculator(loc *time.Location) *Calculator {
	if loc == nil {
		loc = time.UTC
	}
	return &Calculator{route: DefaultRoute(), loc: loc}
}

// Route returns the route the calculator prices against.
func (c *Calculator) Route() Route {
	return c.route
}

// Price computes the fare for a trip.
//
// Holiday pricing takes the whole subtotal at HolidayDiscount off and ignores
// every other rule. Otherwise the distance component is multiplied by
// WeekendMultiplier when either end of the trip is on a weekend, and the
// result gets SpecialDayDiscount off when the entry day and plate parity match.
func (c *Calculator) Price(entryPoint, exitPoint string, entryTime, exitTime time.Time, plate string) (domain.Fare, error) {
	distance, err := c.route.Distance(entryPoint, exitPoint)
	if err != nil {
		return domain.Fare{}, fmt.Errorf("fare.Calculator.Price: %w", err)
	}

	entry := entryTime.In(c.loc)
	exit := exitTime.In(c.loc)

	special, err := SpecialDiscount(entry.Weekday(), plate)
	if err != nil {
		return domain.Fare{}, fmt.Errorf("fare.Calculator.Price: %w", err)
	}

	f := domain.Fare{
		Distance:        distance,
		Holiday:         IsHoliday(entry) || IsHoliday(exit),
		Weekend:         IsWeekend(entry) || IsWeekend(exit),
		SpecialDiscount: special,
	}

	distanceCost := float64(distance) * DistanceRate

	var total float64
	if f.Holiday {
		total = (distanceCost + BaseTollRate) * (1 - HolidayDiscount)
	} else {
		multiplier := 1.0
		if f.Weekend {
			multiplier = WeekendMultiplier
		}
		total = distanceCost*multiplier + BaseTollRate
		if f.SpecialDiscount {
			total *= 1 - SpecialDayDiscount
		}
	}

	f.BaseRate = BaseTollRate
	f.DistanceCost = RoundCents(distanceCost)
	f.SubTotal = RoundCents(f.BaseRate + f.DistanceCost)
	f.Total = RoundCents(total)
	f.Discount = RoundCents(f.SubTotal - f.Total)
	return f, nil
}

// RoundCents rounds an amount to two decimals, halves away from zero.
func RoundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
