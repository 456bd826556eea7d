// Package promo drives the cosmetic countdowns shown next to promotions.
package promo

import (
	"fmt"
	"sync/atomic"
	"time"
)

const (
	// FlashSaleSeconds is the flash-sale window; the countdown restarts from it after reaching zero.
	FlashSaleSeconds = 86400
	// HeroSeconds is where the hero banner countdown starts (8h34m52s). It stops at zero.
	HeroSeconds = 8*3600 + 34*60 + 52
)

// Countdown is a seconds counter advanced by Tick, safe for concurrent use.
type Countdown struct {
	start   int64
	restart bool
	left    atomic.Int64
}

// NewCountdown starts at seconds. With restart, a tick at zero goes back to seconds; otherwise
// the countdown stays at zero.
func NewCountdown(seconds int64, restart bool) *Countdown {
	c := &Countdown{start: seconds, restart: restart}
	c.left.Store(seconds)
	return c
}

// Tick advances the countdown by one second and returns the seconds left.
func (c *Countdown) Tick() int64 {
	for {
		cur := c.left.Load()
		next := cur - 1
		if cur <= 0 {
			if !c.restart {
				return 0
			}
			next = c.start
		}
		if c.left.CompareAndSwap(cur, next) {
			return next
		}
	}
}

func (c *Countdown) Seconds() int64 {
	return c.left.Load()
}

func (c *Countdown) Remaining() time.Duration {
	return time.Duration(c.Seconds()) * time.Second
}

// Clock is a countdown split for display.
type Clock struct {
	Hours   int64 `json:"hours"`
	Minutes int64 `json:"minutes"`
	Seconds int64 `json:"seconds"`
}

func (c *Countdown) Clock() Clock {
	s := c.Seconds()
	return Clock{Hours: s / 3600, Minutes: s % 3600 / 60, Seconds: s % 60}
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hours, c.Minutes, c.Seconds)
}

var (
	FlashSale = NewCountdown(FlashSaleSeconds, true)
	Hero      = NewCountdown(HeroSeconds, false)
)

// TickAll advances the package countdowns; the cron scheduler calls it every second.
func TickAll(...string) {
	FlashSale.Tick()
	Hero.Tick()
}
