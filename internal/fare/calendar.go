package fare

import (
	"fmt"
	"time"

	"github.com/pkordes/toll-plaza/internal/domain"
)

// Parity is the plate-digit parity a discount day requires.
type Parity int

const (
	Even Parity = iota
	Odd
)

// Matches reports whether digit has parity p.
func (p Parity) Matches(digit int) bool {
	if p == Even {
		return digit%2 == 0
	}
	return digit%2 != 0
}

type dayMonth struct {
	day   int
	month time.Month
}

// nationalHolidays are fixed calendar dates, any year.
var nationalHolidays = map[dayMonth]struct{}{
	{23, time.March}:    {},
	{14, time.August}:   {},
	{25, time.December}: {},
}

// discountDays maps a weekday to the plate parity that earns the special discount.
var discountDays = map[time.Weekday]Parity{
	time.Monday:    Even,
	time.Tuesday:   Odd,
	time.Wednesday: Even,
	time.Thursday:  Odd,
}

// IsHoliday reports whether t falls on a national holiday.
// t is read in its own location; callers convert to the tariff zone first.
func IsHoliday(t time.Time) bool {
	_, ok := nationalHolidays[dayMonth{t.Day(), t.Month()}]
	return ok
}

// IsWeekend reports whether t falls on a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// PlateDigit returns the trailing digit of a number plate.
// Returns domain.ErrInvalidPlate if the last character is not 0-9.
func PlateDigit(plate string) (int, error) {
	if plate == "" {
		return 0, fmt.Errorf("%w: empty plate", domain.ErrInvalidPlate)
	}
	last := plate[len(plate)-1]
	if last < '0' || last > '9' {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidPlate, plate)
	}
	return int(last - '0'), nil
}

// SpecialDiscount reports whether a trip entering on day with plate earns the
// plate-parity discount. The plate is always validated, even on days without
// a discount, so a bad plate fails the same way every day of the week.
func SpecialDiscount(day time.Weekday, plate string) (bool, error) {
	digit, err := PlateDigit(plate)
	if err != nil {
		return false, err
	}
	parity, ok := discountDays[day]
	if !ok {
		return false, nil
	}
	return parity.Matches(digit), nil
}
