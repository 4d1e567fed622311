package vending

import (
	"context"
	"sync"

	"github.com/Azure/go-vending/flcore"
	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

// Session is one customer transaction on a vending machine.
//
// Session applies actions one by one on an immutable Fsm,
// invalid actions are rejected and leave the balance untouched.
// Finish pays back the remaining balance as change.
//
//	s := NewSession(Create(prices))
//	_ = s.Apply(ctx, Insert(25))
//	_ = s.Apply(ctx, Vend("gum"))
//	change, err := s.Finish(ctx)
type Session struct {
	ID    uuid.UUID
	Clock clock.Clock // Clock for span and unit test
	Span  Span

	fsm     *Fsm
	balance Cents
	history []Action // accepted actions
	tries   int      // attempted actions, accepted or not
	open    bool     // whether Span has started and not ended
	mu      sync.RWMutex
}

// NewSession starts a transaction on m, with the balance of m.Start.
func NewSession(m *Fsm) *Session {
	s := &Session{
		ID:    uuid.New(),
		Clock: clock.New(),
		fsm:   m,
	}
	if m != nil {
		s.balance = m.Start
	}
	return s
}

// Balance returns the money currently held for this transaction.
func (s *Session) Balance() Cents {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.balance
}

// History returns the accepted actions since the session started or last finished.
func (s *Session) History() []Action {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Action(nil), s.history...)
}

// Apply performs one action, returns ErrInvalidTransition if it's illegal at the current balance.
func (s *Session) Apply(ctx context.Context, action Action) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	logger := flcore.FromContext(ctx).With("session", s.ID.String())
	if !s.open {
		s.Span = Span{}
		s.Span.StartSpan(s.Clock)
		s.open = true
	}
	next, ok := s.fsm.Next(s.balance, action)
	if !ok {
		err := ErrInvalidTransition{Step: s.tries, Balance: s.balance, Action: action}
		s.tries++
		logger.WarnContext(ctx, "action rejected", "action", action.String(), "balance", uint32(s.balance))
		return err
	}
	logger.DebugContext(ctx, "action accepted", "action", action.String(), "from", uint32(s.balance), "to", uint32(next))
	s.tries++
	s.balance = next
	s.history = append(s.history, action)
	return nil
}

// ApplyAll applies actions in order, stops at the first rejected one.
func (s *Session) ApplyAll(ctx context.Context, actions ...Action) error {
	for _, a := range actions {
		if err := s.Apply(ctx, a); err != nil {
			return err
		}
	}
	return nil
}

// Finish ends the transaction: the whole balance is paid back as change,
// and the session is reset to the start balance for the next customer.
//
// If the balance cannot be paid with the accepted coins, Finish returns ErrUnrepresentableChange
// and the session is left untouched, with the balance still held.
func (s *Session) Finish(ctx context.Context) ([]Cents, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	logger := flcore.FromContext(ctx).With("session", s.ID.String())
	change, err := ExactChange(s.balance)
	if err != nil {
		logger.WarnContext(ctx, "cannot pay back balance", "balance", uint32(s.balance), "error", err)
		return nil, err
	}
	if !s.open {
		s.Span = Span{}
		s.Span.StartSpan(s.Clock)
	}
	s.Span.EndSpan(s.Clock)
	s.open = false
	logger.InfoContext(ctx, "session finished",
		"actions", len(s.history),
		"change", uint32(TotalValue(change)),
		"duration", s.Span.Duration(),
	)
	s.balance = 0
	if s.fsm != nil {
		s.balance = s.fsm.Start
	}
	s.history = nil
	s.tries = 0
	return change, nil
}
