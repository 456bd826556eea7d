// Package checkout simulates placing an order: a fixed delay, then success and the ordered
// lines leave the cart.
package checkout

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront.GO/cart"
)

// SuccessMessage is shown once the simulated order is placed.
const SuccessMessage = "Order placed successfully!"

var ErrEmptyCart = errors.New("cart is empty")

// Order is the receipt of a simulated checkout.
type Order struct {
	ID         string      `json:"orderId"`
	Items      []cart.Line `json:"items"`
	TotalItems int         `json:"totalItems"`
	TotalPrice float64     `json:"totalPrice"`
	PlacedAt   time.Time   `json:"placedAt"`
	Message    string      `json:"message"`
}

type Service struct {
	delay time.Duration
	sleep func(time.Duration)
	now   func() time.Time
	log   *zap.Logger
}

func NewService(delay time.Duration, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{delay: delay, sleep: time.Sleep, now: time.Now, log: log.Named("checkout")}
}

// Checkout waits out the submission delay, then takes the ordered lines out of the cart and
// returns the order. Items added while the order is submitted stay in the cart. The delay is not
// cut short by ctx; there is nothing to roll back.
func (s *Service) Checkout(ctx context.Context, store *cart.Store) (*Order, error) {
	snap := store.Snapshot()
	if snap.Empty() {
		return nil, ErrEmptyCart
	}
	s.sleep(s.delay)

	order := &Order{
		ID:         uuid.NewString(),
		Items:      snap.Items,
		TotalItems: snap.TotalItems,
		TotalPrice: snap.TotalPrice(),
		PlacedAt:   s.now(),
		Message:    SuccessMessage,
	}
	store.Dispatch(ctx, cart.Subtract{Lines: snap.Items})
	s.log.Info("order placed",
		zap.String("order", order.ID),
		zap.Int("items", order.TotalItems),
		zap.Float64("total", order.TotalPrice))
	return order, nil
}
