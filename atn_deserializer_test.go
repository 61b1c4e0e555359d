// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildRoundTripATN constructs a small but structurally varied ATN by hand:
// two rules (the second a precedence rule), a decision with two alternatives
// joined by a rule transition, an atom transition, and a token-start mode
// entry -- enough surface to exercise every field Serialize/Deserialize move.
func buildRoundTripATN() *ATN {
	atn := NewATN(0, 50)

	modeStart := NewTokensStartState()
	atn.addState(modeStart)
	atn.modeToStartState = append(atn.modeToStartState, modeStart)

	rule0Start := NewRuleStartState()
	rule0Start.SetRuleIndex(0)
	atn.addState(rule0Start)
	rule0Stop := NewRuleStopState()
	rule0Stop.SetRuleIndex(0)
	atn.addState(rule0Stop)

	rule1Start := NewRuleStartState()
	rule1Start.SetRuleIndex(1)
	rule1Start.isPrecedenceRule = true
	atn.addState(rule1Start)
	rule1Stop := NewRuleStopState()
	rule1Stop.SetRuleIndex(1)
	atn.addState(rule1Stop)

	decision := NewBlockStartState()
	atn.addState(decision)
	atn.defineDecisionState(decision)

	// Every edge out of decision is epsilon-only -- AddTransition panics if
	// a state mixes epsilon and non-epsilon transitions, so each
	// alternative's real match (atom or rule call) lives one state further
	// out, the same shape parser_atn_simulator_test.go's decision builder
	// uses.

	// Alt 1: a plain atom match.
	altStart := NewBasicState()
	atn.addState(altStart)
	decision.AddTransition(NewEpsilonTransition(altStart, -1))
	altEnd := NewBasicState()
	atn.addState(altEnd)
	altStart.AddTransition(NewAtomTransition(altEnd, 'a'))

	// Alt 2: a call into rule1.
	altCall := NewBasicState()
	atn.addState(altCall)
	decision.AddTransition(NewEpsilonTransition(altCall, -1))

	callSite := NewBasicState()
	atn.addState(callSite)
	altCall.AddTransition(NewRuleTransition(rule1Start, 1, 0, callSite))

	rule0Start.AddTransition(NewEpsilonTransition(decision, -1))
	rule1Start.AddTransition(NewAtomTransition(rule1Stop, 'x'))
	modeStart.AddTransition(NewEpsilonTransition(rule0Start, -1))

	atn.ruleToStartState = []*RuleStartState{rule0Start, rule1Start}
	atn.ruleToStopState = []*RuleStopState{rule0Stop, rule1Stop}
	atn.ruleToTokenType = []int{1, 2}

	return atn
}

func TestATNSerializeDeserializeRoundTripsStateCount(t *testing.T) {
	original := buildRoundTripATN()
	data := Serialize(original)

	got := NewATNDeserializer().Deserialize(data)

	require.Equal(t, original.grammarType, got.grammarType)
	require.Equal(t, original.maxTokenType, got.maxTokenType)
	require.Equal(t, len(original.states), len(got.states))
}

func TestATNSerializeDeserializeRoundTripsStateKindsAndRuleIndex(t *testing.T) {
	original := buildRoundTripATN()
	got := NewATNDeserializer().Deserialize(Serialize(original))

	for i, s := range original.states {
		gs := got.states[i]
		require.Equal(t, s.GetStateType(), gs.GetStateType(), "state %d kind", i)
		require.Equal(t, s.GetRuleIndex(), gs.GetRuleIndex(), "state %d rule index", i)
	}
}

func TestATNSerializeDeserializeRoundTripsPrecedenceFlags(t *testing.T) {
	original := buildRoundTripATN()
	got := NewATNDeserializer().Deserialize(Serialize(original))

	gotRule1Start := got.ruleToStartState[1]
	require.True(t, gotRule1Start.isPrecedenceRule)

	gotRule0Start := got.ruleToStartState[0]
	require.False(t, gotRule0Start.isPrecedenceRule)
}

func TestATNSerializeDeserializeRoundTripsRuleAndModeTables(t *testing.T) {
	original := buildRoundTripATN()
	got := NewATNDeserializer().Deserialize(Serialize(original))

	require.Equal(t, len(original.ruleToStartState), len(got.ruleToStartState))
	for i := range original.ruleToStartState {
		require.Equal(t, original.ruleToStartState[i].GetStateNumber(), got.ruleToStartState[i].GetStateNumber())
		require.Equal(t, original.ruleToStopState[i].GetStateNumber(), got.ruleToStopState[i].GetStateNumber())
	}
	require.Equal(t, original.ruleToTokenType, got.ruleToTokenType)

	require.Equal(t, len(original.modeToStartState), len(got.modeToStartState))
	for i := range original.modeToStartState {
		require.Equal(t, original.modeToStartState[i].GetStateNumber(), got.modeToStartState[i].GetStateNumber())
	}
}

func TestATNSerializeDeserializeRoundTripsTransitions(t *testing.T) {
	original := buildRoundTripATN()
	got := NewATNDeserializer().Deserialize(Serialize(original))

	for i, s := range original.states {
		gs := got.states[i]
		origTs := s.GetTransitions()
		gotTs := gs.GetTransitions()
		require.Equal(t, len(origTs), len(gotTs), "state %d transition count", i)
		for j, ot := range origTs {
			gt := gotTs[j]
			require.Equal(t, ot.getSerializationType(), gt.getSerializationType(), "state %d transition %d kind", i, j)
			require.Equal(t, ot.getTarget().GetStateNumber(), gt.getTarget().GetStateNumber(), "state %d transition %d target", i, j)
		}
	}

	// Spot check the atom transition's label and the rule transition's
	// follow state survived the round trip, not just their kind tags.
	// altStart is state 6 (atom transition to altEnd), altCall is state 8
	// (rule transition into rule1), per buildRoundTripATN's construction
	// order.
	origAltStartTs := original.states[6].GetTransitions()
	gotAltStartTs := got.states[6].GetTransitions()
	require.IsType(t, &AtomTransition{}, gotAltStartTs[0])
	require.Equal(t, origAltStartTs[0].(*AtomTransition).label, gotAltStartTs[0].(*AtomTransition).label)

	origRuleT := original.states[8].GetTransitions()[0].(*RuleTransition)
	gotRuleT := got.states[8].GetTransitions()[0].(*RuleTransition)
	require.Equal(t, origRuleT.ruleIndex, gotRuleT.ruleIndex)
	require.Equal(t, origRuleT.precedence, gotRuleT.precedence)
	require.Equal(t, origRuleT.followState.GetStateNumber(), gotRuleT.followState.GetStateNumber())
}

func TestATNSerializeDeserializeRoundTripsDecisions(t *testing.T) {
	original := buildRoundTripATN()
	got := NewATNDeserializer().Deserialize(Serialize(original))

	require.Equal(t, len(original.DecisionToState), len(got.DecisionToState))
	for i := range original.DecisionToState {
		require.Equal(t, original.DecisionToState[i].GetStateNumber(), got.DecisionToState[i].GetStateNumber())
		require.Equal(t, i, got.DecisionToState[i].getDecision())
	}
}

func TestATNDeserializeRejectsUnsupportedVersion(t *testing.T) {
	data := []int32{2, 0, 50, 0, 0, 0, 0, 0}
	require.Panics(t, func() {
		NewATNDeserializer().Deserialize(data)
	})
}
