package limiter_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/lakeward/discordhook/pkg/limiter"
)

func TestDurationLimiterWithinLimit(t *testing.T) {
	t.Parallel()

	l := limiter.NewDurationLimiter(3, time.Minute)

	start := time.Now()
	l.Lock()
	l.Lock()
	l.Lock()

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, int32(0), l.Available())
}

func TestDurationLimiterBlocksWhenExhausted(t *testing.T) {
	t.Parallel()

	window := 150 * time.Millisecond
	l := limiter.NewDurationLimiter(1, window)

	l.Lock()

	start := time.Now()
	l.Lock()

	assert.GreaterOrEqual(t, time.Since(start), window/2)
}

func TestDurationLimiterReset(t *testing.T) {
	t.Parallel()

	l := limiter.NewDurationLimiter(2, time.Minute)

	l.Lock()
	assert.Equal(t, int32(1), l.Available())

	l.Reset()
	assert.Equal(t, int32(1), l.Available())
}
