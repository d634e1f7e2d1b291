package form

import (
	"math/big"

	"swapform/internal/asset"
	"swapform/internal/quote"
)

// State is the session record of the two-sided swap form. The independent
// field holds raw user text; the dependent value is engine-computed. The
// bridging-leg pair is the last pool-leg pricing used for market-rate
// comparison.
//
// Invariant: Input and Output are never the same asset while both are set.
type State struct {
	Independent      quote.Side
	IndependentValue string
	DependentValue   *big.Int

	Input  *asset.Ref
	Output *asset.Ref

	BridgeLegIn  *big.Int
	BridgeLegOut *big.Int
}

// Defaults seeds the initial state, typically from deep-link parameters.
type Defaults struct {
	Independent      quote.Side
	IndependentValue string
	Input            *asset.Ref
	Output           *asset.Ref
}

// Action mutates the form state through the reducer. The concrete types
// below are the only recognized actions.
type Action interface {
	isAction()
}

// FlipIndependent swaps which side is independent and swaps the selected
// assets; the dependent value is recomputed against the new direction.
type FlipIndependent struct{}

// SelectCurrency sets the named field's asset. If the selection would make
// input and output equal, the other side is cleared instead.
type SelectCurrency struct {
	Field quote.Side
	Asset asset.Ref
}

// UpdateIndependent sets the independent field's raw text and marks that
// field independent.
type UpdateIndependent struct {
	Field quote.Side
	Raw   string
}

// UpdateDependent sets the computed dependent value.
type UpdateDependent struct {
	Amount *big.Int
}

// UpdateSlippageLegs records the bridging-leg pair for market-rate
// comparison.
type UpdateSlippageLegs struct {
	In  *big.Int
	Out *big.Int
}

func (FlipIndependent) isAction()    {}
func (SelectCurrency) isAction()     {}
func (UpdateIndependent) isAction()  {}
func (UpdateDependent) isAction()    {}
func (UpdateSlippageLegs) isAction() {}

// Machine is the reducer together with its initial state. It has no hidden
// state; Reduce is pure.
type Machine struct {
	initial State
}

// NewMachine derives the initial state from externally supplied defaults.
func NewMachine(d Defaults) Machine {
	return Machine{initial: State{
		Independent:      d.Independent,
		IndependentValue: d.IndependentValue,
		Input:            d.Input,
		Output:           d.Output,
	}}
}

// Initial returns the machine's initial state.
func (m Machine) Initial() State {
	return m.initial
}

// Reduce applies one action to the state. Unrecognized actions reset to the
// initial state.
func (m Machine) Reduce(s State, a Action) State {
	switch act := a.(type) {
	case FlipIndependent:
		s.Independent = s.Independent.Other()
		s.Input, s.Output = s.Output, s.Input
		s.DependentValue = nil
		return s

	case SelectCurrency:
		ref := act.Asset
		if act.Field == quote.SideInput {
			s.Input = &ref
			if s.Output != nil && s.Output.Addr == ref.Addr {
				s.Output = nil
			}
		} else {
			s.Output = &ref
			if s.Input != nil && s.Input.Addr == ref.Addr {
				s.Input = nil
			}
		}
		return s

	case UpdateIndependent:
		// Retyping the same value must not discard an in-flight quote.
		if s.Independent == act.Field && s.IndependentValue == act.Raw {
			return s
		}
		s.Independent = act.Field
		s.IndependentValue = act.Raw
		s.DependentValue = nil
		return s

	case UpdateDependent:
		s.DependentValue = act.Amount
		return s

	case UpdateSlippageLegs:
		s.BridgeLegIn = act.In
		s.BridgeLegOut = act.Out
		return s

	default:
		return m.initial
	}
}
