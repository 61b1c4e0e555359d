// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "sync"

// ATNInvalidAltNumber marks an alt number that has not yet been computed, or
// that does not apply to a particular config.
var ATNInvalidAltNumber int

// ATN is the augmented transition network a decision is predicted over: one
// node per rule/sub-rule/block/loop entry and exit, linked by the
// Transition edges that closure walks. Everything downstream --
// ParserATNSimulator, LexerATNSimulator, the DFA cache -- treats this graph
// as read-only once built, whether built by hand (as the test files do) or
// by ATNDeserializer.
type ATN struct {

	// DecisionToState indexes every decision point (rule alternatives,
	// optional blocks, loops) by its decision number, so the simulator can
	// go from "decision 3" straight to the state to seed closure from.
	DecisionToState []DecisionState

	// grammarType distinguishes a lexer ATN from a parser ATN.
	grammarType int

	// lexerActions holds the actions a lexer ATN's ActionTransitions index
	// into.
	lexerActions []LexerAction

	// maxTokenType bounds the token types any transition in this ATN can
	// reference.
	maxTokenType int

	modeNameToStartState map[string]*TokensStartState

	modeToStartState []*TokensStartState

	// ruleToStartState maps a rule index to that rule's entry state.
	ruleToStartState []*RuleStartState

	// ruleToStopState maps a rule index to that rule's exit state.
	ruleToStopState []*RuleStopState

	// ruleToTokenType maps a lexer rule's index to the token type it
	// produces. Unused (nil) for parser ATNs.
	ruleToTokenType []int

	// states holds every node in the graph, indexed by state number; a freed
	// slot (see removeState) is nil.
	states []ATNState

	// mu guards the memoized per-state NextTokensNoContext cache, the one
	// piece of ATN state mutated after construction.
	mu sync.Mutex
}

// NewATN returns an empty ATN of the given grammar type, ready for a
// deserializer or hand-written test fixture to populate via addState.
func NewATN(grammarType int, maxTokenType int) *ATN {
	return &ATN{
		grammarType:          grammarType,
		maxTokenType:         maxTokenType,
		modeNameToStartState: make(map[string]*TokensStartState),
	}
}

// NextTokensInContext computes the set of tokens that can be matched
// starting at s. With a non-nil ctx, the computation follows return edges
// out of the enclosing rule instead of stopping at its boundary.
func (a *ATN) NextTokensInContext(s ATNState, ctx RuleContext) *IntervalSet {
	return NewLL1Analyzer(a).Look(s, nil, ctx)
}

// NextTokensNoContext is NextTokensInContext restricted to s's own rule,
// memoized on s since the answer never depends on the calling context.
func (a *ATN) NextTokensNoContext(s ATNState) *IntervalSet {
	a.mu.Lock()
	defer a.mu.Unlock()
	iset := s.GetNextTokenWithinRule()
	if iset == nil {
		iset = a.NextTokensInContext(s, nil)
		iset.readOnly = true
		s.SetNextTokenWithinRule(iset)
	}
	return iset
}

// NextTokens dispatches to NextTokensNoContext or NextTokensInContext
// depending on whether ctx is supplied.
func (a *ATN) NextTokens(s ATNState, ctx RuleContext) *IntervalSet {
	if ctx == nil {
		return a.NextTokensNoContext(s)
	}

	return a.NextTokensInContext(s, ctx)
}

func (a *ATN) addState(state ATNState) {
	if state != nil {
		state.SetATN(a)
		state.SetStateNumber(len(a.states))
	}

	a.states = append(a.states, state)
}

func (a *ATN) removeState(state ATNState) {
	a.states[state.GetStateNumber()] = nil // Just free the memory; don't shift states in the slice
}

func (a *ATN) defineDecisionState(s DecisionState) int {
	a.DecisionToState = append(a.DecisionToState, s)
	s.setDecision(len(a.DecisionToState) - 1)

	return s.getDecision()
}

func (a *ATN) getDecisionState(decision int) DecisionState {
	if len(a.DecisionToState) == 0 {
		return nil
	}

	return a.DecisionToState[decision]
}

// GetState looks up a state by number, the one path every closure/reach
// call site uses to turn a stored state number back into an ATNState. It
// panics rather than letting a bad index silently wrap into an unrelated
// state or a nil-pointer deref further down the call chain.
func (a *ATN) GetState(stateNumber int) ATNState {
	if stateNumber < 0 || stateNumber >= len(a.states) {
		panic("IllegalState: ATN state number out of range")
	}
	return a.states[stateNumber]
}

// numStates reports how many state slots exist, freed ones included.
func (a *ATN) numStates() int {
	return len(a.states)
}

// getExpectedTokens computes the set of input symbols which could follow ATN
// state number stateNumber in the specified full parse context ctx and returns
// the set of potentially valid input symbols which could follow the specified
// state in the specified context. This method considers the complete parser
// context, but does not evaluate semantic predicates (i.e. all predicates
// encountered during the calculation are assumed true). If a path in the ATN
// exists from the starting state to the RuleStopState of the outermost context
// without Matching any symbols, Token.EOF is added to the returned set.
//
// A nil ctx is treated as the empty context: no invoking rule is followed.
//
// It panics if the ATN does not contain state stateNumber.
func (a *ATN) getExpectedTokens(stateNumber int, ctx RuleContext) *IntervalSet {
	s := a.GetState(stateNumber)
	following := a.NextTokens(s, nil)

	if !following.Contains(TokenEpsilon) {
		return following
	}

	expected := NewIntervalSet()

	expected.addSet(following)
	expected.removeOne(TokenEpsilon)

	for ctx != nil && ctx.GetInvokingState() >= 0 && following.Contains(TokenEpsilon) {
		invokingState := a.GetState(ctx.GetInvokingState())
		rt := invokingState.GetTransitions()[0]

		following = a.NextTokens(rt.(*RuleTransition).followState, nil)
		expected.addSet(following)
		expected.removeOne(TokenEpsilon)
		ctx = ctx.GetParent().(RuleContext)
	}

	if following.Contains(TokenEpsilon) {
		expected.AddOne(TokenEOF)
	}

	return expected
}

func (a *ATN) GetRuleToStartState(index int) *RuleStartState {
	return a.ruleToStartState[index]
}

func (a *ATN) GetRuleToStopState(index int) *RuleStopState {
	return a.ruleToStopState[index]
}

func (a *ATN) GetMaxTokenType() int {
	return a.maxTokenType
}
