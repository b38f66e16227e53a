package domain

// Fare is the priced breakdown of a closed trip. All amounts are rounded to cents.
//
// Discount is SubTotal minus Total. It is a catch-all adjustment figure: it is
// negative when the weekend surcharge outweighs any discount.
type Fare struct {
	BaseRate     float64
	DistanceCost float64
	SubTotal     float64
	Discount     float64
	Total        float64

	// Classification of the trip, kept for metrics and events.
	Distance        int
	Holiday         bool
	Weekend         bool
	SpecialDiscount bool
}

// Regime names the pricing rule that decided the fare.
// Holiday pricing overrides everything else.
func (f Fare) Regime() string {
	switch {
	case f.Holiday:
		return "holiday"
	case f.Weekend && f.SpecialDiscount:
		return "weekend_special_day"
	case f.Weekend:
		return "weekend"
	case f.SpecialDiscount:
		return "special_day"
	default:
		return "standard"
	}
}
