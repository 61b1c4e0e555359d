// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// lexerSimState snapshots the input position, line/column, and dfaState of
// the most recent accept state seen while scanning forward, so the
// simulator can back up to the longest match found instead of the
// furthest state reached.
type lexerSimState struct {
	index    int
	line     int
	column   int
	dfaState *DFAState
}

func (s *lexerSimState) reset() { *s = lexerSimState{index: -1} }

// LexerATNSimulator builds and walks a mode-keyed DFA over characters the
// same way ParserATNSimulator builds one over token types: each mode's
// TokensStartState seeds an SLL-only closure (lexer rules carry no
// left-recursion, so there is no LL fallback to escalate to), and accept
// states are recorded with the actions that must fire when the overall
// match finally settles on the longest one reached.
type LexerATNSimulator struct {
	recog              *BaseLexer
	atn                *ATN
	decisionToDFA      []*DFA
	sharedContextCache *PredictionContextCache

	mode   int
	line   int
	column int

	startIndex int
	prevAccept lexerSimState
}

func NewLexerATNSimulator(recog *BaseLexer, atn *ATN, decisionToDFA []*DFA, sharedContextCache *PredictionContextCache) *LexerATNSimulator {
	l := &LexerATNSimulator{
		recog:              recog,
		atn:                atn,
		decisionToDFA:      decisionToDFA,
		sharedContextCache: sharedContextCache,
		line:               1,
	}
	l.prevAccept.reset()
	return l
}

func (l *LexerATNSimulator) reset() {
	l.line = 1
	l.column = 0
	l.mode = LexerDefaultMode
}

// Consume advances the input one character, tracking line/column the way
// every lexer driver loop must to stamp tokens correctly.
func (l *LexerATNSimulator) Consume(input CharStream) {
	if input.LA(1) == int('\n') {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
	input.consume()
}

// Match runs the DFA for mode against input starting at its current
// position and returns the token type of the longest rule matched,
// panicking with *LexerNoViableAltException if none matches at all.
func (l *LexerATNSimulator) Match(input CharStream, mode int) int {
	l.mode = mode
	mark := input.Mark()
	defer input.Release(mark)
	l.startIndex = input.Index()
	l.prevAccept.reset()

	dfa := l.decisionToDFA[mode]
	s0 := dfa.getS0()
	if s0 == nil {
		return l.matchATN(input)
	}
	return l.execATN(input, s0)
}

func (l *LexerATNSimulator) matchATN(input CharStream) int {
	startState := l.atn.modeToStartState[l.mode]
	configs := newATNConfigSet2(false)
	l.closure(input, NewATNConfig6(startState, ATNInvalidAltNumber, BasePredictionContextEMPTY), configs, false, false, false)
	next := l.addDFAState(configs)
	dfa := l.decisionToDFA[l.mode]
	if dfa.getS0() == nil {
		dfa.setS0(next)
	}
	return l.execATN(input, next)
}

// execATN walks the DFA greedily from s0, computing and caching any
// missing edge on demand, recording every accept state it passes through
// as the new "longest match so far", until no further edge exists --
// then resolves the match from whatever was last captured.
func (l *LexerATNSimulator) execATN(input CharStream, s0 *DFAState) int {
	if s0.isAcceptState {
		l.captureSimState(s0, input)
	}
	s := s0
	t := input.LA(1)
	for {
		target := l.getExistingOrComputeTargetState(input, s, t)
		if target == nil {
			break
		}
		if t != TokenEOF {
			l.Consume(input)
		}
		if target.isAcceptState {
			l.captureSimState(target, input)
			if t == TokenEOF {
				break
			}
		}
		t = input.LA(1)
		s = target
	}
	return l.failOrAccept(input)
}

func (l *LexerATNSimulator) failOrAccept(input CharStream) int {
	if l.prevAccept.dfaState != nil {
		return l.accept(input, l.prevAccept.dfaState, l.prevAccept.index, l.prevAccept.line, l.prevAccept.column)
	}
	deadEnd := newATNConfigSet2(false)
	panic(NewLexerNoViableAltException(l.recog, input, l.startIndex, deadEnd))
}

func (l *LexerATNSimulator) getExistingOrComputeTargetState(input CharStream, s *DFAState, t int) *DFAState {
	if target := s.getEdge(t); target != nil {
		return target
	}
	return l.computeTargetState(input, s, t)
}

func (l *LexerATNSimulator) computeTargetState(input CharStream, s *DFAState, t int) *DFAState {
	reach := newATNConfigSet2(false)
	l.getReachableConfigSet(input, s.configs, reach, t)
	if reach.Length() == 0 {
		if !reach.hasSemanticContext {
			l.addDFAEdge(s, t, nil)
		}
		return nil
	}
	target := l.addDFAState(reach)
	l.addDFAEdge(s, t, target)
	return target
}

func (l *LexerATNSimulator) getReachableConfigSet(input CharStream, configs *ATNConfigSet, reach *ATNConfigSet, t int) {
	var skipAlt int
	for _, c := range configs.configs {
		currentAltReachedAcceptState := skipAlt == c.alt
		if currentAltReachedAcceptState && c.passedThroughNonGreedyDecision {
			continue
		}
		for _, trans := range c.state.GetTransitions() {
			target := l.computeTransitionTarget(trans, t)
			if target == nil {
				continue
			}
			cfg := NewATNConfig4(c, target)
			if l.closure(input, cfg, reach, currentAltReachedAcceptState, false, true) {
				skipAlt = c.alt
			}
		}
	}
}

func (l *LexerATNSimulator) computeTransitionTarget(trans Transition, t int) ATNState {
	if trans.getIsEpsilon() || t == TokenEOF {
		return nil
	}
	if trans.Matches(t, LexerMinCharValue, LexerMaxCharValue) {
		return trans.getTarget()
	}
	return nil
}

// closure performs the lexer's epsilon-closure: identical in spirit to the
// parser's (rule push/pop, predicate evaluation), specialized for the two
// things only a lexer ATN contains -- ActionTransition (accumulated into a
// LexerActionExecutor rather than fired immediately, so DFA states built
// from this closure stay reusable) and accept-state bookkeeping when a
// RuleStopState is reached.
func (l *LexerATNSimulator) closure(input CharStream, config *ATNConfig, configs *ATNConfigSet, currentAltReachedAcceptState, speculative, treatEOFAsEpsilon bool) bool {
	if _, ok := config.state.(*RuleStopState); ok {
		if config.context == nil || config.context.hasEmptyPath() {
			if config.context == nil || config.context.isEmpty() {
				configs.add(config, nil)
				return true
			}
			configs.add(NewATNConfig4(config, config.state), nil)
			currentAltReachedAcceptState = true
		}
		if config.context != nil && !config.context.isEmpty() {
			for i := 0; i < config.context.length(); i++ {
				returnStateNumber := config.context.getReturnState(i)
				if returnStateNumber == BasePredictionContextEmptyReturnState {
					continue
				}
				newContext := config.context.GetParent(i)
				returnState := l.atn.GetState(returnStateNumber)
				newCfg := NewATNConfig2(config, returnState, newContext)
				currentAltReachedAcceptState = l.closure(input, newCfg, configs, currentAltReachedAcceptState, speculative, treatEOFAsEpsilon)
			}
		}
		return currentAltReachedAcceptState
	}
	if !config.state.GetEpsilonOnlyTransitions() {
		if !currentAltReachedAcceptState || !config.passedThroughNonGreedyDecision {
			configs.add(config, nil)
		}
	}
	for _, trans := range config.state.GetTransitions() {
		newCfg := l.getEpsilonTarget(input, config, trans, configs, speculative, treatEOFAsEpsilon)
		if newCfg != nil {
			currentAltReachedAcceptState = l.closure(input, newCfg, configs, currentAltReachedAcceptState, speculative, treatEOFAsEpsilon)
		}
	}
	return currentAltReachedAcceptState
}

func (l *LexerATNSimulator) getEpsilonTarget(input CharStream, config *ATNConfig, trans Transition, configs *ATNConfigSet, speculative, treatEOFAsEpsilon bool) *ATNConfig {
	switch tt := trans.(type) {
	case *RuleTransition:
		newContext := SingletonBasePredictionContextCreate(config.context, tt.followState.GetStateNumber())
		return NewATNConfig2(config, tt.getTarget(), newContext)
	case AbstractPredicateTransition:
		if l.evaluatePredicate(tt) {
			return NewATNConfig4(config, tt.getTarget())
		}
		return nil
	case *ActionTransition:
		action := l.atn.lexerActions[tt.ActionIndex]
		if action.getIsPositionDependent() {
			action = NewLexerIndexedCustomAction(input.Index()-l.startIndex, action)
		}
		executor := LexerActionExecutorAppend(config.lexerActionExecutor, action)
		return NewATNConfig3(config, tt.getTarget(), executor)
	default:
		if trans.getIsEpsilon() {
			return NewATNConfig4(config, trans.getTarget())
		}
		if treatEOFAsEpsilon {
			if at, ok := trans.(*AtomTransition); ok && at.label == TokenEOF {
				return NewATNConfig4(config, trans.getTarget())
			}
		}
	}
	return nil
}

func (l *LexerATNSimulator) evaluatePredicate(pt AbstractPredicateTransition) bool {
	p, ok := pt.(*PredicateTransition)
	if !ok {
		return true // PrecedenceTransition never occurs in a lexer ATN
	}
	return l.recog.Sempred(nil, p.RuleIndex, p.PredIndex)
}

func (l *LexerATNSimulator) captureSimState(target *DFAState, input CharStream) {
	l.prevAccept.index = input.Index()
	l.prevAccept.line = l.line
	l.prevAccept.column = l.column
	l.prevAccept.dfaState = target
}

// accept seeks the input back to the end of the accepted match, stamps
// the rule's token type (an action may still override it via SetType),
// runs any accumulated lexer actions, and returns the final type.
func (l *LexerATNSimulator) accept(input CharStream, accepted *DFAState, startIndex, line, column int) int {
	input.Seek(startIndex)
	l.line = line
	l.column = column
	if l.recog != nil {
		l.recog.SetType(accepted.prediction)
	}
	if accepted.lexerActionExecutor != nil && l.recog != nil {
		accepted.lexerActionExecutor.execute(l.recog, input, l.startIndex)
	}
	if l.recog != nil {
		return l.recog.GetType()
	}
	return accepted.prediction
}

func (l *LexerATNSimulator) addDFAState(configs *ATNConfigSet) *DFAState {
	proposed := NewDFAState(-1, configs)
	var firstConfigWithRuleStopState *ATNConfig
	for _, c := range configs.configs {
		if _, ok := c.state.(*RuleStopState); ok {
			firstConfigWithRuleStopState = c
			break
		}
	}
	if firstConfigWithRuleStopState != nil {
		proposed.isAcceptState = true
		proposed.lexerActionExecutor = firstConfigWithRuleStopState.lexerActionExecutor
		proposed.prediction = l.atn.ruleToTokenType[firstConfigWithRuleStopState.state.GetRuleIndex()]
	}
	dfa := l.decisionToDFA[l.mode]
	return dfa.addState(proposed)
}

func (l *LexerATNSimulator) addDFAEdge(from *DFAState, t int, to *DFAState) {
	from.setEdge(t, to)
}
