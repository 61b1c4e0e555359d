// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// sliceTokenSource produces a fixed sequence of token types followed by EOF,
// enough to drive a CommonTokenStream without a real lexer.
type sliceTokenSource struct {
	types []int
	idx   int
}

func newSliceTokenSource(types []int) *sliceTokenSource {
	return &sliceTokenSource{types: types}
}

func (s *sliceTokenSource) NextToken() Token {
	if s.idx >= len(s.types) {
		return NewEOFToken(s, nil)
	}
	t := NewCommonToken(s, nil, s.types[s.idx], TokenDefaultChannel, s.idx, s.idx)
	s.idx++
	return t
}

func (s *sliceTokenSource) GetLine() int                 { return 1 }
func (s *sliceTokenSource) GetCharPositionInLine() int   { return 0 }
func (s *sliceTokenSource) GetInputStream() CharStream   { return nil }
func (s *sliceTokenSource) GetSourceName() string        { return "test" }
func (s *sliceTokenSource) GetTokenFactory() TokenFactory { return CommonTokenFactoryDefault }

func newTokenStreamFromTypes(types []int) *CommonTokenStream {
	return NewCommonTokenStream(newSliceTokenSource(types), TokenDefaultChannel)
}

// testParser is the minimal Parser a ParserATNSimulator needs: a token
// stream, an ATN, and hooks the tests can override to control predicate
// evaluation.
type testParser struct {
	*BaseParser
	atn        *ATN
	precedence int
	precpred   func(precedence int) bool
}

func newTestParser(atn *ATN, input TokenStream) *testParser {
	p := &testParser{BaseParser: NewBaseParser(input), atn: atn}
	return p
}

func (p *testParser) GetATN() *ATN { return p.atn }

func (p *testParser) GetPrecedence() int { return p.precedence }

func (p *testParser) Precpred(_ RuleContext, precedence int) bool {
	if p.precpred != nil {
		return p.precpred(precedence)
	}
	return true
}

// buildTwoAltDecisionATN builds a single decision with two alternatives,
// each an epsilon into a straight-line path matching one literal token type
// before ending at a dead-end BasicState.
func buildTwoAltDecisionATN(alt1Token, alt2Token int) (*ATN, DecisionState) {
	atn := NewATN(0, 1000)

	decision := NewBlockStartState()
	atn.addState(decision)
	atn.defineDecisionState(decision)

	altStart1 := NewBasicState()
	atn.addState(altStart1)
	end1 := NewBasicState()
	atn.addState(end1)
	altStart1.AddTransition(NewAtomTransition(end1, alt1Token))
	decision.AddTransition(NewEpsilonTransition(altStart1, -1))

	altStart2 := NewBasicState()
	atn.addState(altStart2)
	end2 := NewBasicState()
	atn.addState(end2)
	altStart2.AddTransition(NewAtomTransition(end2, alt2Token))
	decision.AddTransition(NewEpsilonTransition(altStart2, -1))

	return atn, decision
}

// buildAmbiguousDecisionATN builds a decision whose two alternatives both
// match the same literal token and land on the very same target state --
// a decision the grammar cannot disambiguate no matter how much context it
// is given.
func buildAmbiguousDecisionATN(sharedToken int) (*ATN, DecisionState) {
	atn := NewATN(0, 1000)

	decision := NewBlockStartState()
	atn.addState(decision)
	atn.defineDecisionState(decision)

	shared := NewRuleStopState()
	atn.addState(shared)

	altStart1 := NewBasicState()
	atn.addState(altStart1)
	altStart1.AddTransition(NewAtomTransition(shared, sharedToken))
	decision.AddTransition(NewEpsilonTransition(altStart1, -1))

	altStart2 := NewBasicState()
	atn.addState(altStart2)
	altStart2.AddTransition(NewAtomTransition(shared, sharedToken))
	decision.AddTransition(NewEpsilonTransition(altStart2, -1))

	return atn, decision
}

func newParserSimulatorOverATN(p *testParser, atn *ATN, decision DecisionState) {
	dfa := NewDFA(decision, decision.getDecision())
	p.Interpreter = NewParserATNSimulator(p, atn, []*DFA{dfa}, NewPredictionContextCache())
}

// capturingErrorListener records every diagnostic callback it receives, so
// a test can assert not just the predicted alt but that the simulator
// actually reported the escalation its reasoning took.
type capturingErrorListener struct {
	DefaultErrorListener
	ambiguities            []*BitSet
	attemptingFullContexts []*BitSet
	contextSensitivities   int
}

func (c *capturingErrorListener) ReportAmbiguity(_ Parser, _ *DFA, _, _ int, _ bool, ambigAlts *BitSet, _ *ATNConfigSet) {
	c.ambiguities = append(c.ambiguities, ambigAlts)
}

func (c *capturingErrorListener) ReportAttemptingFullContext(_ Parser, _ *DFA, _, _ int, conflictingAlts *BitSet, _ *ATNConfigSet) {
	c.attemptingFullContexts = append(c.attemptingFullContexts, conflictingAlts)
}

func (c *capturingErrorListener) ReportContextSensitivity(Parser, *DFA, int, int, int, *ATNConfigSet) {
	c.contextSensitivities++
}

func TestParserATNSimulatorPredictsSingleViableAlt(t *testing.T) {
	atn, decision := buildTwoAltDecisionATN(10, 20)
	input := newTokenStreamFromTypes([]int{10})
	p := newTestParser(atn, input)
	newParserSimulatorOverATN(p, atn, decision)

	alt := p.Interpreter.AdaptivePredict(input, decision.getDecision(), nil)
	require.Equal(t, 1, alt)
	require.Equal(t, 0, input.Index())
}

func TestParserATNSimulatorPredictsSecondAltWhenItMatches(t *testing.T) {
	atn, decision := buildTwoAltDecisionATN(10, 20)
	input := newTokenStreamFromTypes([]int{20})
	p := newTestParser(atn, input)
	newParserSimulatorOverATN(p, atn, decision)

	alt := p.Interpreter.AdaptivePredict(input, decision.getDecision(), nil)
	require.Equal(t, 2, alt)
}

func TestParserATNSimulatorNoViableAltPanics(t *testing.T) {
	atn, decision := buildTwoAltDecisionATN(10, 20)
	input := newTokenStreamFromTypes([]int{99})
	p := newTestParser(atn, input)
	newParserSimulatorOverATN(p, atn, decision)

	require.Panics(t, func() {
		p.Interpreter.AdaptivePredict(input, decision.getDecision(), nil)
	})
}

func TestParserNoViableAltReportedThroughErrorStrategyIncrementsSyntaxErrors(t *testing.T) {
	atn, decision := buildTwoAltDecisionATN(10, 20)
	input := newTokenStreamFromTypes([]int{99})
	p := newTestParser(atn, input)
	newParserSimulatorOverATN(p, atn, decision)

	require.Equal(t, 0, p.GetNumberOfSyntaxErrors())

	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r)
			e, ok := r.(*NoViableAltException)
			require.True(t, ok)
			p.GetErrorHandler().ReportError(p, e)
		}()
		p.Interpreter.AdaptivePredict(input, decision.getDecision(), nil)
	}()

	require.Equal(t, 1, p.GetNumberOfSyntaxErrors())
}

func TestParserATNSimulatorEscalatesToFullContextOnGenuineAmbiguity(t *testing.T) {
	atn, decision := buildAmbiguousDecisionATN(10)
	input := newTokenStreamFromTypes([]int{10})
	p := newTestParser(atn, input)
	newParserSimulatorOverATN(p, atn, decision)

	listener := &capturingErrorListener{}
	p.RemoveErrorListeners()
	p.AddErrorListener(listener)

	alt := p.Interpreter.AdaptivePredict(input, decision.getDecision(), nil)
	require.Equal(t, 1, alt)

	dfa := p.Interpreter.decisionToDFA[decision.getDecision()]
	edge := dfa.getS0().getEdge(10)
	require.NotNil(t, edge)
	require.True(t, edge.requiresFullContext)

	require.Len(t, listener.attemptingFullContexts, 1)
	require.NotNil(t, listener.attemptingFullContexts[0])
	require.ElementsMatch(t, []int{1, 2}, listener.attemptingFullContexts[0].Values())

	require.Len(t, listener.ambiguities, 1)
	require.NotNil(t, listener.ambiguities[0])
	require.ElementsMatch(t, []int{1, 2}, listener.ambiguities[0].Values())
}

func TestApplyPrecedenceFilterDedupesAlt1StateAndEvaluatesPredicate(t *testing.T) {
	atn := NewATN(0, 10)
	p := &testParser{BaseParser: NewBaseParser(nil), atn: atn, precedence: 0}
	sim := NewParserATNSimulator(p, atn, nil, NewPredictionContextCache())
	sim.mergeCache = NewPredictionContextMergeCache()

	st := newNumberedBasicState(1)

	t.Run("satisfied precedence keeps alt1 and drops the alt2 duplicate", func(t *testing.T) {
		p.precpred = func(precedence int) bool { return precedence >= p.precedence }
		configs := newATNConfigSet2(false)
		c1 := NewATNConfig(st, 1, BasePredictionContextEMPTY, NewPrecedencePredicate(2))
		c2 := NewATNConfig(st, 2, BasePredictionContextEMPTY, SemanticContextNone)
		configs.add(c1, nil)
		configs.add(c2, nil)

		out := sim.applyPrecedenceFilter(configs)
		require.Equal(t, 1, out.Length())
		require.Equal(t, 1, out.GetItems()[0].GetAlt())
		require.Same(t, SemanticContextNone, out.GetItems()[0].GetSemanticContext())
	})

	t.Run("unsatisfied alt1 precedence still claims the state, dropping alt2 too", func(t *testing.T) {
		p.precedence = 5
		p.precpred = func(precedence int) bool { return precedence >= p.precedence }
		configs := newATNConfigSet2(false)
		c1 := NewATNConfig(st, 1, BasePredictionContextEMPTY, NewPrecedencePredicate(2))
		c2 := NewATNConfig(st, 2, BasePredictionContextEMPTY, SemanticContextNone)
		configs.add(c1, nil)
		configs.add(c2, nil)

		out := sim.applyPrecedenceFilter(configs)
		require.Equal(t, 0, out.Length())
	})

	t.Run("alts on distinct states are both kept", func(t *testing.T) {
		p.precedence = 0
		p.precpred = func(precedence int) bool { return precedence >= p.precedence }
		other := newNumberedBasicState(2)
		configs := newATNConfigSet2(false)
		c1 := NewATNConfig(st, 1, BasePredictionContextEMPTY, SemanticContextNone)
		c2 := NewATNConfig(other, 2, BasePredictionContextEMPTY, SemanticContextNone)
		configs.add(c1, nil)
		configs.add(c2, nil)

		out := sim.applyPrecedenceFilter(configs)
		require.Equal(t, 2, out.Length())
	})
}

func TestParserATNSimulatorPrecedenceDfaCachesStartStatePerLevel(t *testing.T) {
	atn := NewATN(0, 1000)

	decision := NewStarLoopEntryState()
	decision.isPrecedenceDecision = true
	atn.addState(decision)
	atn.defineDecisionState(decision)

	altStart := NewBasicState()
	atn.addState(altStart)
	end := NewBasicState()
	atn.addState(end)
	altStart.AddTransition(NewAtomTransition(end, 7))
	decision.AddTransition(NewEpsilonTransition(altStart, -1))

	input := newTokenStreamFromTypes([]int{7})
	p := newTestParser(atn, input)
	newParserSimulatorOverATN(p, atn, decision)

	p.precedence = 0
	alt := p.Interpreter.AdaptivePredict(input, decision.getDecision(), nil)
	require.Equal(t, 1, alt)

	dfa := p.Interpreter.decisionToDFA[decision.getDecision()]
	level0 := dfa.getPrecedenceStartState(0)
	require.NotNil(t, level0)

	p.precedence = 9
	alt = p.Interpreter.AdaptivePredict(input, decision.getDecision(), nil)
	require.Equal(t, 1, alt)

	level9 := dfa.getPrecedenceStartState(9)
	require.NotNil(t, level9)
	require.Same(t, level0, level9)
}
