// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildLexerRuleATN builds a minimal single-mode lexer ATN with one rule
// per entry in rules, each rule matching its literal character sequence
// verbatim and producing tokenTypes[i] on success.
func buildLexerRuleATN(rules [][]rune, tokenTypes []int) *ATN {
	atn := NewATN(0, 100)

	modeStart := NewTokensStartState()
	atn.addState(modeStart)
	atn.modeToStartState = append(atn.modeToStartState, modeStart)

	for i, seq := range rules {
		ruleStart := NewRuleStartState()
		ruleStart.SetRuleIndex(i)
		atn.addState(ruleStart)

		ruleStop := NewRuleStopState()
		ruleStop.SetRuleIndex(i)

		prev := ATNState(ruleStart)
		for j, ch := range seq {
			var target ATNState
			if j == len(seq)-1 {
				target = ruleStop
			} else {
				basic := NewBasicState()
				basic.SetRuleIndex(i)
				atn.addState(basic)
				target = basic
			}
			prev.AddTransition(NewAtomTransition(target, int(ch)))
			prev = target
		}
		atn.addState(ruleStop)

		atn.ruleToStartState = append(atn.ruleToStartState, ruleStart)
		atn.ruleToStopState = append(atn.ruleToStopState, ruleStop)
		atn.ruleToTokenType = append(atn.ruleToTokenType, tokenTypes[i])

		modeStart.AddTransition(NewEpsilonTransition(ruleStart, -1))
	}

	return atn
}

func newLexerOverATN(atn *ATN, input CharStream) *BaseLexer {
	l := NewBaseLexer(input)
	sharedCache := NewPredictionContextCache()
	dfa := NewDFA(atn.modeToStartState[0], 0)
	l.Interpreter = NewLexerATNSimulator(l, atn, []*DFA{dfa}, sharedCache)
	return l
}

func TestLexerATNSimulatorMatchesSingleCharacterRule(t *testing.T) {
	atn := buildLexerRuleATN([][]rune{{'a'}, {'b'}}, []int{1, 2})
	input := NewInputStream("a")
	l := newLexerOverATN(atn, input)

	ttype := l.Interpreter.Match(input, LexerDefaultMode)
	require.Equal(t, 1, ttype)
	require.Equal(t, 1, input.Index())
}

func TestLexerATNSimulatorPicksLongestMatch(t *testing.T) {
	// Rule 0 matches just "a"; rule 1 matches "ab". Both are viable after
	// the first character, so the simulator must keep going and prefer the
	// longer match over the shorter one reached earlier.
	atn := buildLexerRuleATN([][]rune{{'a'}, {'a', 'b'}}, []int{1, 2})
	input := NewInputStream("ab")
	l := newLexerOverATN(atn, input)

	ttype := l.Interpreter.Match(input, LexerDefaultMode)
	require.Equal(t, 2, ttype)
	require.Equal(t, 2, input.Index())
}

func TestLexerATNSimulatorNoViableAltPanics(t *testing.T) {
	atn := buildLexerRuleATN([][]rune{{'a'}}, []int{1})
	input := NewInputStream("z")
	l := newLexerOverATN(atn, input)

	require.Panics(t, func() {
		l.Interpreter.Match(input, LexerDefaultMode)
	})
}

func TestLexerATNSimulatorReusesCachedDFAEdges(t *testing.T) {
	atn := buildLexerRuleATN([][]rune{{'a'}, {'b'}}, []int{1, 2})
	input := NewInputStream("ab")
	l := newLexerOverATN(atn, input)

	first := l.Interpreter.Match(input, LexerDefaultMode)
	require.Equal(t, 1, first)

	second := l.Interpreter.Match(input, LexerDefaultMode)
	require.Equal(t, 2, second)

	dfa := l.Interpreter.decisionToDFA[LexerDefaultMode]
	require.Greater(t, dfa.numStates(), 0)
}

func TestBaseLexerPushPopModeRestoresPrevious(t *testing.T) {
	l := NewBaseLexer(NewInputStream(""))
	require.Equal(t, LexerDefaultMode, l.mode)

	l.PushMode(2)
	require.Equal(t, 2, l.mode)
	l.PushMode(5)
	require.Equal(t, 5, l.mode)

	restored := l.PopMode()
	require.Equal(t, 2, restored)
	require.Equal(t, 2, l.mode)

	restored = l.PopMode()
	require.Equal(t, LexerDefaultMode, restored)
	require.Equal(t, LexerDefaultMode, l.mode)
}

func TestBaseLexerPopModeOnEmptyStackPanics(t *testing.T) {
	l := NewBaseLexer(NewInputStream(""))
	require.PanicsWithValue(t, "IllegalState: cannot pop mode stack with no modes pushed", func() {
		l.PopMode()
	})
}

func TestBaseLexerNextTokenEmitsSequenceThenEOF(t *testing.T) {
	atn := buildLexerRuleATN([][]rune{{'a'}, {'b'}}, []int{1, 2})
	input := NewInputStream("ab")
	l := newLexerOverATN(atn, input)

	tok1 := l.NextToken()
	require.Equal(t, 1, tok1.GetTokenType())
	require.Equal(t, "a", tok1.GetText())

	tok2 := l.NextToken()
	require.Equal(t, 2, tok2.GetTokenType())
	require.Equal(t, "b", tok2.GetText())

	tok3 := l.NextToken()
	require.Equal(t, TokenEOF, tok3.GetTokenType())
}
