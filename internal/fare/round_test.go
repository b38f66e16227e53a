package fare

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Halves that are exact in binary round away from zero, not to even.
func TestRoundCents_HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 0.13, RoundCents(0.125))
	assert.Equal(t, 2.13, RoundCents(2.125))
	assert.Equal(t, 0.38, RoundCents(0.375))
	assert.Equal(t, -0.13, RoundCents(-0.125))
}

func TestRoundCents_CleansFloatNoise(t *testing.T) {
	assert.Equal(t, 4.8, RoundCents(24*DistanceRate))
	assert.Equal(t, 22.32, RoundCents((24*DistanceRate+BaseTollRate)*0.9))
	assert.Equal(t, 13.4, RoundCents((34*DistanceRate+BaseTollRate)*HolidayDiscount))
}
