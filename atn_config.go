// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "strconv"

// ATNConfig is a single point of symbolic execution: a position in the
// ATN, the alternative it belongs to, the stack of rules that would still
// need to pop (its PredictionContext), and any semantic predicate still
// gating it. Two configs with equal (state, alt, semanticContext) are the
// same configuration for set-membership purposes even if their
// contexts differ — on insertion the contexts are merged instead of kept
// as separate entries, which is what keeps the configuration set finite
// in the presence of recursion.
type ATNConfig struct {
	state           ATNState
	alt             int
	context         PredictionContext
	semanticContext SemanticContext

	reachesIntoOuterContext    int
	precedenceFilterSuppressed bool

	// Lexer-only fields; zero value for parser configs.
	lexerActionExecutor           *LexerActionExecutor
	passedThroughNonGreedyDecision bool
}

func NewATNConfig(state ATNState, alt int, context PredictionContext, semanticContext SemanticContext) *ATNConfig {
	if semanticContext == nil {
		semanticContext = SemanticContextNone
	}
	return &ATNConfig{state: state, alt: alt, context: context, semanticContext: semanticContext}
}

// NewATNConfig6 is the minimal constructor LL1Analyzer needs: the caller
// supplies the alt, and the semantic context is SemanticContextNone since
// one-token lookahead does not track predicates.
func NewATNConfig6(state ATNState, alt int, context PredictionContext) *ATNConfig {
	return NewATNConfig(state, alt, context, SemanticContextNone)
}

// NewATNConfig2 copies c onto a new state with a new context, as closure
// does when following a rule-call or rule-return edge.
func NewATNConfig2(c *ATNConfig, state ATNState, context PredictionContext) *ATNConfig {
	n := *c
	n.state = state
	n.context = context
	return &n
}

// NewATNConfig3 copies c onto a new state with a new lexer action
// executor, as the lexer's closure does when it crosses an
// ActionTransition.
func NewATNConfig3(c *ATNConfig, state ATNState, executor *LexerActionExecutor) *ATNConfig {
	n := *c
	n.state = state
	n.lexerActionExecutor = executor
	return &n
}

// NewATNConfig4 copies c onto a new state only, as closure does when
// following a plain epsilon edge.
func NewATNConfig4(c *ATNConfig, state ATNState) *ATNConfig {
	n := *c
	n.state = state
	return &n
}

// transitionTo returns a copy of c repositioned at a new state, optionally
// with a new context/semantic context, as closure does when following an
// epsilon edge.
func (c *ATNConfig) transitionTo(state ATNState, context PredictionContext, semanticContext SemanticContext) *ATNConfig {
	n := *c
	n.state = state
	n.context = context
	n.semanticContext = semanticContext
	return &n
}

func (c *ATNConfig) clone() *ATNConfig {
	n := *c
	return &n
}

func (c *ATNConfig) GetState() ATNState               { return c.state }
func (c *ATNConfig) GetAlt() int                       { return c.alt }
func (c *ATNConfig) GetContext() PredictionContext     { return c.context }
func (c *ATNConfig) SetContext(p PredictionContext)    { c.context = p }
func (c *ATNConfig) GetSemanticContext() SemanticContext { return c.semanticContext }
func (c *ATNConfig) GetReachesIntoOuterContext() int   { return c.reachesIntoOuterContext }
func (c *ATNConfig) SetReachesIntoOuterContext(v int)  { c.reachesIntoOuterContext = v }
func (c *ATNConfig) GetPrecedenceFilterSuppressed() bool  { return c.precedenceFilterSuppressed }
func (c *ATNConfig) SetPrecedenceFilterSuppressed(v bool) { c.precedenceFilterSuppressed = v }
func (c *ATNConfig) GetLexerActionExecutor() *LexerActionExecutor { return c.lexerActionExecutor }

// setKey returns the (state, alt, semanticContext[, lexer fields]) tuple
// identity used by ATNConfigSet for membership/merge decisions — distinct
// from structural equality, which additionally compares context.
type configSetKey struct {
	state                       int
	alt                         int
	semHash                     int
	lexerActionExecutorPtr      *LexerActionExecutor
	passedThroughNonGreedy      bool
}

func (c *ATNConfig) setKey() configSetKey {
	return configSetKey{
		state:                  c.state.GetStateNumber(),
		alt:                    c.alt,
		semHash:                c.semanticContext.Hash(),
		lexerActionExecutorPtr: c.lexerActionExecutor,
		passedThroughNonGreedy: c.passedThroughNonGreedyDecision,
	}
}

func (c *ATNConfig) equalsForSet(other *ATNConfig) bool {
	return c.state.GetStateNumber() == other.state.GetStateNumber() &&
		c.alt == other.alt &&
		c.semanticContext.Equals(other.semanticContext) &&
		c.lexerActionExecutor == other.lexerActionExecutor &&
		c.passedThroughNonGreedyDecision == other.passedThroughNonGreedyDecision
}

// Hash and Equals give ATNConfig full structural identity (including
// context), used by ATNConfigSet.Equals rather than by ATNConfigSet's
// merge-on-insert membership test.
func (c *ATNConfig) Hash() int {
	h := murmurInit(7)
	h = murmurUpdate(h, c.state.GetStateNumber())
	h = murmurUpdate(h, c.alt)
	if c.context != nil {
		h = murmurUpdate(h, c.context.Hash())
	}
	h = murmurUpdate(h, c.semanticContext.Hash())
	return murmurFinish(h, 4)
}

func (c *ATNConfig) Equals(other *ATNConfig) bool {
	if other == nil {
		return false
	}
	if !c.equalsForSet(other) {
		return false
	}
	if c.context == nil || other.context == nil {
		return c.context == other.context
	}
	return c.context.Equals(other.context)
}

func (c *ATNConfig) String() string {
	return "(" + c.state.String() + "," + strconv.Itoa(c.alt) + ")"
}
