// Package jobs registers the storefront's built-in cron jobs. Import it for side effects.
package jobs

import (
	"storefront.GO/cron"
	"storefront.GO/promo"
)

const PromoCountdown = "promo:countdown"

func init() {
	cron.Register(PromoCountdown, "@every 1s", "advance the flash-sale and hero countdowns", promo.TickAll)
}
