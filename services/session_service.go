package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"event-ease/models"
	"event-ease/monitoring"
	"event-ease/store"
)

// State is the explicit workflow position. Booking and Paying are guarded:
// they are unreachable without a selected concert (and, for Paying, a built
// intent). A violated precondition drops the session back to the nearest
// valid earlier state instead of failing destructively.
type State string

const (
	StateLoggedOut State = "logged_out"
	StateBrowsing  State = "browsing"
	StateBooking   State = "booking"
	StatePaying    State = "paying"
)

var (
	ErrInvalidTransition = errors.New("invalid session transition")
	ErrOperationInFlight = errors.New("operation already in flight")
	ErrMissingLogin      = errors.New("email and password are required")
	ErrConcertNotFound   = errors.New("concert not found")
)

// Session is the per-profile workflow controller. One instance per running
// process: the process is the "profile", so a single account is active at a
// time.
type Session struct {
	store     store.Store
	booking   *BookingService
	processor PaymentProcessor
	issuance  *IssuanceService

	loginDelay time.Duration

	mu       sync.Mutex
	state    State
	account  *models.Account
	selected *models.Concert
	intent   *models.BookingIntent
	busy     bool
}

func NewSession(st store.Store, booking *BookingService, processor PaymentProcessor, issuance *IssuanceService, loginDelay time.Duration) *Session {
	return &Session{
		store:      st,
		booking:    booking,
		processor:  processor,
		issuance:   issuance,
		loginDelay: loginDelay,
		state:      StateLoggedOut,
	}
}

// Restore picks up a previously saved account so a restarted process lands
// in Browsing instead of asking for login again.
func (s *Session) Restore(ctx context.Context) error {
	account, err := s.store.GetAccount(ctx)
	if err != nil {
		return err
	}
	if account == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = account
	s.state = StateBrowsing
	return nil
}

// Login simulates an authentication round trip. No password verification
// happens; the account is derived from the email. While the delay runs the
// session refuses further submissions, which is the only duplicate-login
// protection there is.
func (s *Session) Login(ctx context.Context, email, password string) (*models.Account, error) {
	if email == "" || password == "" {
		return nil, ErrMissingLogin
	}

	if err := s.beginExclusive(StateLoggedOut); err != nil {
		return nil, err
	}
	defer s.endExclusive()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.loginDelay):
	}

	account := models.NewAccount(email)
	if err := s.store.SaveAccount(ctx, account); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.account = &account
	s.state = StateBrowsing
	s.mu.Unlock()

	monitoring.TrackLogin()
	return &account, nil
}

// Logout clears the stored account and resets the workflow. Idempotent.
func (s *Session) Logout(ctx context.Context) error {
	if err := s.store.ClearAccount(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.account = nil
	s.selected = nil
	s.intent = nil
	s.state = StateLoggedOut
	return nil
}

// SelectConcert moves Browsing -> Booking with the chosen catalog item.
func (s *Session) SelectConcert(ctx context.Context, concertID string) (*models.Concert, error) {
	s.mu.Lock()
	if s.state != StateBrowsing {
		state := s.fallbackLocked()
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: cannot select concert from %s", ErrInvalidTransition, state)
	}
	s.mu.Unlock()

	catalog, err := s.store.GetCatalog(ctx)
	if err != nil {
		return nil, err
	}

	for _, c := range catalog {
		if c.ID == concertID {
			concert := c
			s.mu.Lock()
			s.selected = &concert
			s.state = StateBooking
			s.mu.Unlock()
			return &concert, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrConcertNotFound, concertID)
}

// SubmitBooking builds the priced intent and moves Booking -> Paying.
func (s *Session) SubmitBooking(tier string, quantity int) (*models.BookingIntent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateBooking || s.selected == nil {
		state := s.fallbackLocked()
		return nil, fmt.Errorf("%w: cannot submit booking from %s", ErrInvalidTransition, state)
	}

	intent, err := s.booking.BuildIntent(*s.selected, tier, quantity)
	if err != nil {
		return nil, err
	}

	s.intent = &intent
	s.state = StatePaying

	monitoring.TrackBookingIntent(tier)
	return &intent, nil
}

// ConfirmPayment runs the mock processor, then issuance. On success the
// intent is consumed and the session returns to Browsing. If issuance fails
// mid-batch the session stays in Paying and the error reports how far the
// batch got; the caller must not show a confirmation.
func (s *Session) ConfirmPayment(ctx context.Context, card models.CardDetails) ([]models.Ticket, error) {
	if err := s.beginExclusive(StatePaying); err != nil {
		return nil, err
	}
	defer s.endExclusive()

	s.mu.Lock()
	if s.intent == nil || s.selected == nil || s.account == nil {
		state := s.fallbackLocked()
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: payment preconditions unmet, fell back to %s", ErrInvalidTransition, state)
	}
	intent := *s.intent
	concert := *s.selected
	account := *s.account
	s.mu.Unlock()

	amount := s.booking.Quote(intent)

	started := time.Now()
	confirmation, err := s.processor.Process(ctx, card, amount)
	if err != nil {
		return nil, err
	}
	monitoring.TrackPaymentDuration(time.Since(started))

	tickets, err := s.issuance.Issue(ctx, intent, account, concert, *confirmation)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.intent = nil
	s.selected = nil
	s.state = StateBrowsing
	s.mu.Unlock()

	return tickets, nil
}

// Back reverses one step, discarding the state being backed out of.
func (s *Session) Back() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StatePaying:
		s.intent = nil
		s.state = StateBooking
	case StateBooking:
		s.selected = nil
		s.state = StateBrowsing
	}
	return s.state
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Session) Account() *models.Account {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.account == nil {
		return nil
	}
	account := *s.account
	return &account
}

func (s *Session) Selected() *models.Concert {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		return nil
	}
	concert := *s.selected
	return &concert
}

func (s *Session) Intent() *models.BookingIntent {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.intent == nil {
		return nil
	}
	intent := *s.intent
	return &intent
}

// fallbackLocked repairs a session whose state lost its preconditions,
// settling on the nearest valid earlier state. Caller holds s.mu.
func (s *Session) fallbackLocked() State {
	if s.account == nil {
		s.selected = nil
		s.intent = nil
		s.state = StateLoggedOut
		return s.state
	}
	if s.selected == nil {
		s.intent = nil
		s.state = StateBrowsing
		return s.state
	}
	if s.intent == nil && s.state == StatePaying {
		s.state = StateBooking
	}
	return s.state
}

// beginExclusive gates the delayed operations (login, payment): only one may
// run at a time, and only from the expected state.
func (s *Session) beginExclusive(from State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.busy {
		return ErrOperationInFlight
	}
	if s.state != from {
		return fmt.Errorf("%w: expected %s, in %s", ErrInvalidTransition, from, s.state)
	}
	s.busy = true
	return nil
}

func (s *Session) endExclusive() {
	s.mu.Lock()
	s.busy = false
	s.mu.Unlock()
}
