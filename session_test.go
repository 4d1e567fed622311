package vending_test

import (
	"context"
	"testing"
	"time"

	vending "github.com/Azure/go-vending"
	"github.com/Azure/go-vending/flcore"
	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession(t *testing.T) {
	m := vending.Create(map[string]vending.Cents{"soda": 75, "gum": 25})
	newSession := func(t *testing.T) (*vending.Session, *clock.Mock, context.Context) {
		mockClock := clock.NewMock()
		s := vending.NewSession(m)
		s.Clock = mockClock
		return s, mockClock, flcore.NewContext(context.Background(), flcore.NewTestLogger(t))
	}

	t.Run("should have an id", func(t *testing.T) {
		s, _, _ := newSession(t)
		assert.NotEqual(t, uuid.Nil, s.ID)
		assert.NotEqual(t, s.ID, vending.NewSession(m).ID)
	})
	t.Run("should apply valid actions", func(t *testing.T) {
		s, _, ctx := newSession(t)
		require.NoError(t, s.ApplyAll(ctx, quarter, quarter, quarter, quarter, soda))
		assert.Equal(t, vending.Cents(25), s.Balance())
		assert.Equal(t, []vending.Action{quarter, quarter, quarter, quarter, soda}, s.History())
	})
	t.Run("should reject invalid action and keep balance", func(t *testing.T) {
		s, _, ctx := newSession(t)
		require.NoError(t, s.Apply(ctx, quarter))
		err := s.Apply(ctx, soda)
		assert.Equal(t, vending.ErrInvalidTransition{Step: 1, Balance: 25, Action: soda}, err)
		assert.Equal(t, vending.Cents(25), s.Balance())
		require.NoError(t, s.Apply(ctx, vending.Vend("gum")))
		assert.Equal(t, vending.Cents(0), s.Balance())
	})
	t.Run("should stop ApplyAll at first invalid action", func(t *testing.T) {
		s, _, ctx := newSession(t)
		err := s.ApplyAll(ctx, quarter, soda, quarter)
		assert.Error(t, err)
		assert.Equal(t, vending.Cents(25), s.Balance())
		assert.Equal(t, []vending.Action{quarter}, s.History())
	})
	t.Run("should agree with Evaluate", func(t *testing.T) {
		s, _, ctx := newSession(t)
		actions := []vending.Action{dime, quarter, quarter, nickel, quarter, soda, dime}
		require.NoError(t, s.ApplyAll(ctx, actions...))
		balance, err := vending.Evaluate(m, actions)
		require.NoError(t, err)
		assert.Equal(t, balance, s.Balance())
	})
	t.Run("should pay back change and reset on finish", func(t *testing.T) {
		s, mockClock, ctx := newSession(t)
		require.NoError(t, s.ApplyAll(ctx, quarter, quarter, quarter, quarter))
		mockClock.Add(3 * time.Second)
		require.NoError(t, s.Apply(ctx, soda))
		mockClock.Add(2 * time.Second)
		change, err := s.Finish(ctx)
		require.NoError(t, err)
		assert.Equal(t, []vending.Cents{25}, change)
		assert.Equal(t, 5*time.Second, s.Span.Duration())
		assert.Equal(t, vending.Cents(0), s.Balance())
		assert.Empty(t, s.History())

		t.Run("should start a new span for next customer", func(t *testing.T) {
			mockClock.Add(time.Minute)
			require.NoError(t, s.Apply(ctx, dime))
			assert.Equal(t, mockClock.Now(), s.Span.Start)
			change, err := s.Finish(ctx)
			require.NoError(t, err)
			assert.Equal(t, []vending.Cents{10}, change)
			assert.Equal(t, time.Duration(0), s.Span.Duration())
		})
	})
	t.Run("should finish without actions", func(t *testing.T) {
		s, _, ctx := newSession(t)
		change, err := s.Finish(ctx)
		assert.NoError(t, err)
		assert.Empty(t, change)
		assert.Equal(t, time.Duration(0), s.Span.Duration())
	})
	t.Run("should keep balance when it cannot be paid back", func(t *testing.T) {
		odd := vending.Create(map[string]vending.Cents{"soda": 73})
		s := vending.NewSession(odd)
		ctx := flcore.NewContext(context.Background(), flcore.NewTestLogger(t))
		require.NoError(t, s.ApplyAll(ctx, quarter, quarter, quarter, soda))
		assert.Equal(t, vending.Cents(2), s.Balance())

		change, err := s.Finish(ctx)
		assert.Nil(t, change)
		assert.Equal(t, vending.ErrUnrepresentableChange{Amount: 2, Remainder: 2}, err)
		assert.Equal(t, vending.Cents(2), s.Balance())
		assert.Len(t, s.History(), 4)
	})
	t.Run("should count rejected actions in step", func(t *testing.T) {
		s, _, ctx := newSession(t)
		err := s.Apply(ctx, soda)
		assert.Equal(t, vending.ErrInvalidTransition{Step: 0, Balance: 0, Action: soda}, err)
		err = s.Apply(ctx, soda)
		assert.Equal(t, vending.ErrInvalidTransition{Step: 1, Balance: 0, Action: soda}, err)
		require.NoError(t, s.Apply(ctx, quarter))
		err = s.Apply(ctx, soda)
		assert.Equal(t, vending.ErrInvalidTransition{Step: 3, Balance: 25, Action: soda}, err)

		_, err = s.Finish(ctx)
		require.NoError(t, err)
		err = s.Apply(ctx, soda)
		assert.Equal(t, vending.ErrInvalidTransition{Step: 0, Balance: 0, Action: soda}, err)
	})
	t.Run("should work without logger in context", func(t *testing.T) {
		s := vending.NewSession(m)
		assert.NoError(t, s.Apply(context.Background(), quarter))
		assert.Error(t, s.Apply(context.Background(), soda))
	})
	t.Run("should reset to custom start", func(t *testing.T) {
		custom := vending.Create(nil)
		custom.Start = 100
		s := vending.NewSession(custom)
		assert.Equal(t, vending.Cents(100), s.Balance())
		change, err := s.Finish(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []vending.Cents{25, 25, 25, 25}, change)
		assert.Equal(t, vending.Cents(100), s.Balance())
	})
}

func TestSpan(t *testing.T) {
	mockClock := clock.NewMock()
	var span vending.Span
	assert.Equal(t, time.Duration(0), span.Duration())
	span.StartSpan(mockClock)
	mockClock.Add(time.Second)
	span.EndSpan(mockClock)
	assert.Equal(t, time.Second, span.Duration())
}
