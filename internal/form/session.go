package form

import (
	"context"
	"math/big"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"swapform/internal/amm"
	"swapform/internal/apperrors"
	"swapform/internal/asset"
	"swapform/internal/quote"
)

// trigger captures the identity of the independent value that started a
// recomputation. A result is accepted only while the form still shows
// exactly this value: staleness is value identity, not sequence counters,
// so retyping an equal value keeps an outstanding quote current.
type trigger struct {
	side   quote.Side
	raw    string
	amount *big.Int
	in     asset.Ref
	out    asset.Ref
}

// Session owns a form State and drives quote recomputation through the
// router. It is the single writer: actions apply strictly in dispatch order
// and late results that no longer match the current independent value are
// dropped.
type Session struct {
	mu       sync.Mutex
	machine  Machine
	state    State
	quoteErr error

	router *quote.Router
	book   asset.Book
	log    logrus.FieldLogger

	wg sync.WaitGroup
}

// NewSession creates a session seeded from defaults.
func NewSession(d Defaults, router *quote.Router, book asset.Book, log logrus.FieldLogger) *Session {
	if log == nil {
		log = logrus.StandardLogger()
	}
	m := NewMachine(d)
	return &Session{
		machine: m,
		state:   m.Initial(),
		router:  router,
		book:    book,
		log:     log,
	}
}

// State returns a copy of the current form state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// QuoteErr returns the error attached to the independent field by the last
// recomputation, if any.
func (s *Session) QuoteErr() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quoteErr
}

// Wait blocks until all in-flight recomputations have completed.
func (s *Session) Wait() {
	s.wg.Wait()
}

// Dispatch applies the action and, when it changes the independent value or
// the trade direction, starts an asynchronous recomputation keyed to the new
// value.
func (s *Session) Dispatch(ctx context.Context, a Action) {
	s.mu.Lock()
	prev := s.state
	s.state = s.machine.Reduce(s.state, a)

	trig, ok := s.triggerLocked(prev, a)
	s.mu.Unlock()
	if !ok {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.recompute(ctx, trig)
	}()
}

// triggerLocked decides whether the applied action requires a fresh quote
// and builds the trigger for it. Must be called with the mutex held.
func (s *Session) triggerLocked(prev State, a Action) (trigger, bool) {
	switch a.(type) {
	case UpdateIndependent, FlipIndependent, SelectCurrency:
	default:
		return trigger{}, false
	}
	if s.state == prev {
		// Idempotent edit: an in-flight quote for this value stays valid.
		return trigger{}, false
	}

	if s.state.Input == nil || s.state.Output == nil {
		s.quoteErr = nil
		return trigger{}, false
	}
	if s.state.IndependentValue == "" {
		s.quoteErr = nil
		return trigger{}, false
	}

	in, out := *s.state.Input, *s.state.Output
	dec := in.Decimals
	if s.state.Independent == quote.SideOutput {
		dec = out.Decimals
	}
	amount, err := amm.ParseAmount(s.state.IndependentValue, dec)
	if err != nil {
		s.quoteErr = err
		return trigger{}, false
	}

	s.quoteErr = nil
	return trigger{
		side:   s.state.Independent,
		raw:    s.state.IndependentValue,
		amount: amount,
		in:     in,
		out:    out,
	}, true
}

func (s *Session) recompute(ctx context.Context, trig trigger) {
	variant, ok := s.book.Classify(&trig.in, &trig.out)
	if !ok {
		return
	}

	outcome, err := s.router.Quote(ctx, quote.Request{
		Variant: variant,
		Side:    trig.side,
		Amount:  trig.amount,
		In:      trig.in,
		Out:     trig.out,
		Bridge:  s.book.Bridge,
		OnBridgeLeg: func(leg quote.BridgeLeg) {
			// The synchronous pool leg lands before any external leg, so
			// rate comparisons work even if the second leg stalls.
			s.apply(trig, UpdateSlippageLegs{In: leg.In, Out: leg.Out})
		},
	})
	if err != nil {
		s.fail(trig, err)
		return
	}
	s.apply(trig, UpdateDependent{Amount: outcome.Dependent})
}

// apply commits a computed result unless the triggering value has been
// superseded since the request was issued.
func (s *Session) apply(trig trigger, a Action) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.staleLocked(trig); err != nil {
		s.log.WithFields(logrus.Fields{
			"side": trig.side.String(),
			"raw":  trig.raw,
		}).Debug("dropping superseded quote result")
		return
	}
	s.state = s.machine.Reduce(s.state, a)
}

// fail records a liquidity failure on the independent field and clears the
// dependent value and bridging pair rather than showing a stale number.
func (s *Session) fail(trig trigger, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if serr := s.staleLocked(trig); serr != nil {
		return
	}
	s.quoteErr = err
	s.state = s.machine.Reduce(s.state, UpdateDependent{Amount: nil})
	s.state = s.machine.Reduce(s.state, UpdateSlippageLegs{In: nil, Out: nil})
}

func (s *Session) staleLocked(trig trigger) error {
	if s.state.Independent != trig.side || s.state.IndependentValue != trig.raw {
		return errors.Wrap(apperrors.ErrQuoteStale, "independent value changed")
	}
	if s.state.Input == nil || s.state.Output == nil ||
		s.state.Input.Addr != trig.in.Addr || s.state.Output.Addr != trig.out.Addr {
		return errors.Wrap(apperrors.ErrQuoteStale, "currency selection changed")
	}
	return nil
}
