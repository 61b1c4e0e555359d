// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func configAt(state ATNState, alt int) *ATNConfig {
	return NewATNConfig(state, alt, BasePredictionContextEMPTY, SemanticContextNone)
}

func TestGetUniqueAltReturnsSoleAlternative(t *testing.T) {
	s := NewATNConfigSet(false)
	st := newNumberedBasicState(1)
	s.add(configAt(st, 3), nil)
	s.add(configAt(st, 3), nil)
	require.Equal(t, 3, getUniqueAlt(s))
}

func TestGetUniqueAltReturnsInvalidWhenMultipleAlts(t *testing.T) {
	s := NewATNConfigSet(false)
	st1, st2 := newNumberedBasicState(1), newNumberedBasicState(2)
	s.add(configAt(st1, 1), nil)
	s.add(configAt(st2, 2), nil)
	require.Equal(t, ATNInvalidAltNumber, getUniqueAlt(s))
}

func TestHasSLLConflictTerminatingPredictionDetectsSharedConflict(t *testing.T) {
	s := NewATNConfigSet(false)
	st1, st2 := newNumberedBasicState(1), newNumberedBasicState(2)
	// Two states, each ambiguous between alts 1 and 2 -- every equivalence
	// class agrees on the same {1,2} alt-set.
	s.add(configAt(st1, 1), nil)
	s.add(configAt(st1, 2), nil)
	s.add(configAt(st2, 1), nil)
	s.add(configAt(st2, 2), nil)

	conflict, alts := hasSLLConflictTerminatingPrediction(s)
	require.True(t, conflict)
	require.True(t, alts.Contains(1))
	require.True(t, alts.Contains(2))
}

func TestHasSLLConflictTerminatingPredictionFalseWhenStatesDisagree(t *testing.T) {
	s := NewATNConfigSet(false)
	st1, st2 := newNumberedBasicState(1), newNumberedBasicState(2)
	s.add(configAt(st1, 1), nil)
	s.add(configAt(st1, 2), nil)
	s.add(configAt(st2, 1), nil)
	s.add(configAt(st2, 3), nil)

	conflict, _ := hasSLLConflictTerminatingPrediction(s)
	require.False(t, conflict)
}

func TestHasSLLConflictTerminatingPredictionFalseWhenUniqueAlt(t *testing.T) {
	s := NewATNConfigSet(false)
	st := newNumberedBasicState(1)
	s.add(configAt(st, 1), nil)

	conflict, _ := hasSLLConflictTerminatingPrediction(s)
	require.False(t, conflict)
}

func TestResolvesToJustOneViableAltPicksLowestNumbered(t *testing.T) {
	s := NewATNConfigSet(false)
	st1, st2 := newNumberedBasicState(1), newNumberedBasicState(2)
	s.add(configAt(st1, 5), nil)
	s.add(configAt(st2, 2), nil)
	require.Equal(t, 2, resolvesToJustOneViableAlt(s))
}

func TestLLConflictingAltsReturnsUniqueAltWhenPresent(t *testing.T) {
	s := NewATNConfigSet(true)
	st1, st2 := newNumberedBasicState(1), newNumberedBasicState(2)
	s.add(configAt(st1, 4), nil)
	s.add(configAt(st2, 4), nil)

	unique, ambiguous := llConflictingAlts(s, PredictionModeLL)
	require.Equal(t, 4, unique)
	require.Nil(t, ambiguous)
}

func TestLLConflictingAltsReturnsAllAltsWhenAmbiguous(t *testing.T) {
	s := NewATNConfigSet(true)
	st1, st2 := newNumberedBasicState(1), newNumberedBasicState(2)
	s.add(configAt(st1, 1), nil)
	s.add(configAt(st2, 2), nil)

	unique, ambiguous := llConflictingAlts(s, PredictionModeLLExactAmbigDetection)
	require.Equal(t, ATNInvalidAltNumber, unique)
	require.True(t, ambiguous.Contains(1))
	require.True(t, ambiguous.Contains(2))
}

func TestAllConfigsInRuleStopStates(t *testing.T) {
	s := NewATNConfigSet(false)
	stop1 := NewRuleStopState()
	stop1.SetStateNumber(1)
	stop2 := NewRuleStopState()
	stop2.SetStateNumber(2)
	s.add(configAt(stop1, 1), nil)
	s.add(configAt(stop2, 2), nil)
	require.True(t, allConfigsInRuleStopStates(s))

	s.add(configAt(newNumberedBasicState(3), 3), nil)
	require.False(t, allConfigsInRuleStopStates(s))
}
