package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateKeyIsUTC(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	late := time.Date(2026, 3, 9, 22, 30, 0, 0, est)
	assert.Equal(t, "2026-03-10", DateKey(late))
}

func TestSeedStableWithinADay(t *testing.T) {
	morning := time.Date(2026, 10, 18, 0, 5, 0, 0, time.UTC)
	night := time.Date(2026, 10, 18, 23, 55, 0, 0, time.UTC)
	assert.Equal(t, Seed(morning, "salt"), Seed(night, "salt"))
}

func TestSeedVaries(t *testing.T) {
	day := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)
	assert.NotEqual(t, Seed(day, "salt"), Seed(day.AddDate(0, 0, 1), "salt"))
	assert.NotEqual(t, Seed(day, "salt"), Seed(day, "pepper"))
}
