// Package contact simulates sending the contact form.
package contact

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"go.uber.org/zap"
)

const SuccessMessage = "Message sent successfully!"

var (
	ErrMissingField = errors.New("missing field")
	ErrInvalidEmail = errors.New("invalid email")
)

// Message is the contact form.
type Message struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}

// Validate trims every field and checks they are all present.
func (m *Message) Validate() error {
	fields := []struct {
		name  string
		value *string
	}{
		{"firstName", &m.FirstName},
		{"lastName", &m.LastName},
		{"email", &m.Email},
		{"subject", &m.Subject},
		{"message", &m.Message},
	}
	for _, f := range fields {
		*f.value = strings.TrimSpace(*f.value)
		if *f.value == "" {
			return fmt.Errorf("%w: %s", ErrMissingField, f.name)
		}
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidEmail, m.Email)
	}
	return nil
}

type Receipt struct {
	ID      string    `json:"id"`
	SentAt  time.Time `json:"sentAt"`
	Message string    `json:"message"`
}

type Service struct {
	delay time.Duration
	sleep func(time.Duration)
	now   func() time.Time
	newID func() string
	log   *zap.Logger
}

func NewService(delay time.Duration, newID func() string, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{delay: delay, sleep: time.Sleep, now: time.Now, newID: newID, log: log.Named("contact")}
}

// Send validates m, waits out the submission delay and reports success. Nothing is delivered.
func (s *Service) Send(m Message) (*Receipt, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	s.sleep(s.delay)
	r := &Receipt{ID: s.newID(), SentAt: s.now(), Message: SuccessMessage}
	s.log.Info("contact message accepted", zap.String("id", r.ID), zap.String("subject", m.Subject))
	return r, nil
}
