// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newDecisionState(decision int) *BlockStartState {
	s := NewBlockStartState()
	s.SetStateNumber(decision)
	s.setDecision(decision)
	return s
}

func TestDFAAddStateCanonicalizesByConfigSetEquality(t *testing.T) {
	d := NewDFA(newDecisionState(0), 0)
	st := newNumberedBasicState(1)

	cs1 := NewATNConfigSet(false)
	cs1.add(configAt(st, 1), nil)
	target1 := NewDFAState(-1, cs1)

	cs2 := NewATNConfigSet(false)
	cs2.add(configAt(st, 1), nil)
	target2 := NewDFAState(-1, cs2)

	installed1 := d.addState(target1)
	installed2 := d.addState(target2)

	require.Same(t, installed1, installed2)
	require.Equal(t, 1, d.numStates())
	require.True(t, installed1.configs.IsReadOnly())
}

func TestDFAAddStateDistinctConfigsGetDistinctStates(t *testing.T) {
	d := NewDFA(newDecisionState(0), 0)
	st := newNumberedBasicState(1)

	cs1 := NewATNConfigSet(false)
	cs1.add(configAt(st, 1), nil)
	cs2 := NewATNConfigSet(false)
	cs2.add(configAt(st, 2), nil)

	installed1 := d.addState(NewDFAState(-1, cs1))
	installed2 := d.addState(NewDFAState(-1, cs2))

	require.NotSame(t, installed1, installed2)
	require.Equal(t, 2, d.numStates())
	require.NotEqual(t, installed1.stateNumber, installed2.stateNumber)
}

func TestDFAAddStateBucketsOnHashCollisionInsteadOfEvicting(t *testing.T) {
	// ATNConfigSet.Hash only folds in each config's own hash, but Equals
	// also compares uniqueAlt -- so two config sets built from the exact
	// same configs, one with uniqueAlt resolved and one without, hash
	// identically while being distinct states. A single-slot map keyed by
	// hash would let the second addState silently overwrite the first.
	d := NewDFA(newDecisionState(0), 0)
	st := newNumberedBasicState(1)

	cs1 := NewATNConfigSet(false)
	cs1.add(configAt(st, 1), nil)
	target1 := NewDFAState(-1, cs1)

	cs2 := NewATNConfigSet(false)
	cs2.add(configAt(st, 1), nil)
	cs2.uniqueAlt = 1
	target2 := NewDFAState(-1, cs2)

	require.Equal(t, cs1.Hash(), cs2.Hash())
	require.False(t, cs1.Equals(cs2))

	installed1 := d.addState(target1)
	installed2 := d.addState(target2)

	require.NotSame(t, installed1, installed2)
	require.Equal(t, 2, d.numStates())

	// The first state must still be reachable by its own config set after
	// the colliding second insert -- a bucket holds both, it doesn't
	// replace one with the other.
	cs1Again := NewATNConfigSet(false)
	cs1Again.add(configAt(st, 1), nil)
	reinstalled := d.addState(NewDFAState(-1, cs1Again))
	require.Same(t, installed1, reinstalled)
}

func TestDFANotPrecedenceByDefault(t *testing.T) {
	d := NewDFA(newDecisionState(0), 0)
	require.False(t, d.IsPrecedenceDfa())
	require.Nil(t, d.getS0())
}

func TestDFAPrecedenceDfaInstallsNonAcceptingSentinel(t *testing.T) {
	entry := NewStarLoopEntryState()
	entry.SetStateNumber(0)
	entry.isPrecedenceDecision = true

	d := NewDFA(entry, 0)
	require.True(t, d.IsPrecedenceDfa())
	require.NotNil(t, d.getS0())
	require.False(t, d.getS0().isAcceptState)
}

func TestDFAPrecedenceStartStatePerLevel(t *testing.T) {
	entry := NewStarLoopEntryState()
	entry.SetStateNumber(0)
	entry.isPrecedenceDecision = true
	d := NewDFA(entry, 0)

	require.Nil(t, d.getPrecedenceStartState(5))

	st := newNumberedBasicState(1)
	cs := NewATNConfigSet(false)
	cs.add(configAt(st, 1), nil)
	level5 := NewDFAState(-1, cs)
	d.setPrecedenceStartState(5, level5)

	require.Same(t, level5, d.getPrecedenceStartState(5))
	require.Nil(t, d.getPrecedenceStartState(6))
}

func TestDFASetPrecedenceStartStatePanicsWhenNotPrecedenceDfa(t *testing.T) {
	d := NewDFA(newDecisionState(0), 0)
	require.Panics(t, func() {
		d.setPrecedenceStartState(0, NewDFAState(-1, nil))
	})
}

func TestDFAStateEdgeReadWriteBySymbolPlusOne(t *testing.T) {
	s := NewDFAState(0, nil)
	require.Nil(t, s.getEdge(-1))

	target := NewDFAState(1, nil)
	s.setEdge(-1, target)
	s.setEdge(3, target)

	require.Same(t, target, s.getEdge(-1))
	require.Same(t, target, s.getEdge(3))
	require.Nil(t, s.getEdge(1))
}

func TestDFAStateGetAltThatMatchedDecisionSymbol(t *testing.T) {
	s := NewDFAState(0, nil)
	require.Equal(t, ATNInvalidAltNumber, s.getAltThatMatchedDecisionSymbol())

	s.isAcceptState = true
	s.prediction = 4
	require.Equal(t, 4, s.getAltThatMatchedDecisionSymbol())

	s.predicates = []*PredPrediction{NewPredPrediction(SemanticContextNone, 4)}
	require.Equal(t, ATNInvalidAltNumber, s.getAltThatMatchedDecisionSymbol())
}

func TestDFASortedStatesOrderedByInsertionID(t *testing.T) {
	d := NewDFA(newDecisionState(0), 0)
	for alt := 1; alt <= 3; alt++ {
		st := newNumberedBasicState(alt)
		cs := NewATNConfigSet(false)
		cs.add(configAt(st, alt), nil)
		d.addState(NewDFAState(-1, cs))
	}

	sorted := d.sortedStates()
	require.Len(t, sorted, 3)
	for i := 1; i < len(sorted); i++ {
		require.Less(t, sorted[i-1].stateNumber, sorted[i].stateNumber)
	}
}
