package promo

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCountdownRestartsAfterZero(t *testing.T) {
	c := NewCountdown(2, true)
	assert.Equal(t, int64(1), c.Tick())
	assert.Equal(t, int64(0), c.Tick())
	assert.Equal(t, int64(2), c.Tick())
	assert.Equal(t, 2*time.Second, c.Remaining())
}

func TestCountdownStopsAtZero(t *testing.T) {
	c := NewCountdown(1, false)
	assert.Equal(t, int64(0), c.Tick())
	assert.Equal(t, int64(0), c.Tick())
	assert.Equal(t, int64(0), c.Seconds())
}

func TestCountdownConcurrentTicks(t *testing.T) {
	c := NewCountdown(FlashSaleSeconds, true)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Tick()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(FlashSaleSeconds-800), c.Seconds())
}

func TestClock(t *testing.T) {
	c := NewCountdown(HeroSeconds, false)
	clock := c.Clock()
	assert.Equal(t, Clock{Hours: 8, Minutes: 34, Seconds: 52}, clock)
	assert.Equal(t, "08:34:52", clock.String())
	assert.Equal(t, "24:00:00", NewCountdown(FlashSaleSeconds, true).Clock().String())
}
