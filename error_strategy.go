// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// ErrorStrategy is the parser-level recovery policy the prediction engine
// treats purely as a collaborator: it decides how the parser responds to
// a RecognitionException, never how prediction itself resolves a
// decision.
type ErrorStrategy interface {
	reset(recognizer Parser)
	RecoverInline(recognizer Parser) Token
	Recover(recognizer Parser, e RecognitionException)
	Sync(recognizer Parser)
	InErrorRecoveryMode(recognizer Parser) bool
	ReportError(recognizer Parser, e RecognitionException)
	ReportMatch(recognizer Parser)
}

// DefaultErrorStrategy implements single-token insertion/deletion
// recovery: it tries to resynchronize using FOLLOW sets computed by
// LL1Analyzer rather than aborting the parse.
type DefaultErrorStrategy struct {
	errorRecoveryMode bool
	lastErrorIndex    int
	lastErrorStates   *IntervalSet
}

func NewDefaultErrorStrategy() *DefaultErrorStrategy {
	return &DefaultErrorStrategy{lastErrorIndex: -1}
}

func (d *DefaultErrorStrategy) reset(recognizer Parser) {
	d.endErrorCondition(recognizer)
}

func (d *DefaultErrorStrategy) beginErrorCondition(Parser) { d.errorRecoveryMode = true }

func (d *DefaultErrorStrategy) endErrorCondition(Parser) {
	d.errorRecoveryMode = false
	d.lastErrorStates = nil
	d.lastErrorIndex = -1
}

func (d *DefaultErrorStrategy) InErrorRecoveryMode(Parser) bool { return d.errorRecoveryMode }

func (d *DefaultErrorStrategy) ReportMatch(recognizer Parser) {
	d.endErrorCondition(recognizer)
}

func (d *DefaultErrorStrategy) ReportError(recognizer Parser, e RecognitionException) {
	if d.InErrorRecoveryMode(recognizer) {
		return // don't pile reports up while already resynchronizing
	}
	d.beginErrorCondition(recognizer)
	switch ex := e.(type) {
	case *NoViableAltException:
		d.reportNoViableAlternativeError(recognizer, ex)
	case *InputMismatchException:
		d.reportInputMismatch(recognizer, ex)
	case *FailedPredicateException:
		d.reportFailedPredicate(recognizer, ex)
	default:
		recognizer.NotifyErrorListeners(e.Error(), e.GetOffendingToken(), e)
	}
}

func (d *DefaultErrorStrategy) reportNoViableAlternativeError(recognizer Parser, e *NoViableAltException) {
	tokens := recognizer.GetTokenStream()
	var input string
	if tokens != nil {
		if e.StartToken != nil && e.GetOffendingToken() != nil {
			input = tokens.GetTextFromTokens(e.StartToken, e.GetOffendingToken())
		}
	}
	msg := "no viable alternative at input " + fmt.Sprintf("%q", input)
	recognizer.NotifyErrorListeners(msg, e.GetOffendingToken(), e)
}

func (d *DefaultErrorStrategy) reportInputMismatch(recognizer Parser, e *InputMismatchException) {
	msg := "mismatched input"
	if t := e.GetOffendingToken(); t != nil {
		msg = fmt.Sprintf("mismatched input %s", tokenText(t))
	}
	recognizer.NotifyErrorListeners(msg, e.GetOffendingToken(), e)
}

func (d *DefaultErrorStrategy) reportFailedPredicate(recognizer Parser, e *FailedPredicateException) {
	recognizer.NotifyErrorListeners(e.Error(), nil, e)
}

func tokenText(t Token) string {
	txt := t.GetText()
	if txt == "" {
		return "<EOF>"
	}
	return fmt.Sprintf("%q", txt)
}

// Sync checks whether the current token is in the expected set for the
// ATN state the parser just entered, and if not, tries to delete tokens
// until it is (error recovery, not prediction).
func (d *DefaultErrorStrategy) Sync(recognizer Parser) {
	if d.InErrorRecoveryMode(recognizer) {
		return
	}
	s := recognizer.GetATN().GetState(recognizer.GetState())
	switch s.(type) {
	case *BlockEndState, *PlusBlockStartState, *StarLoopEntryState, *PlusLoopbackState, *StarLoopbackState:
		// decision points where a missing token can plausibly be skipped
	default:
		return
	}
	la := recognizer.GetTokenStream().LA(1)
	nextTokens := recognizer.GetATN().NextTokens(s, nil)
	if nextTokens.Contains(TokenEpsilon) || nextTokens.Contains(la) {
		return
	}
	// Token mismatch at a loop decision: delete tokens up to FOLLOW.
	for recognizer.GetTokenStream().LA(1) != TokenEOF && !nextTokens.Contains(recognizer.GetTokenStream().LA(1)) {
		recognizer.GetTokenStream().consume()
	}
}

// Recover consumes tokens until one is found that is in the resynchronization
// set for the current rule context chain, matching upstream's
// "consume until FOLLOW" recovery.
func (d *DefaultErrorStrategy) Recover(recognizer Parser, e RecognitionException) {
	if d.lastErrorIndex == recognizer.GetTokenStream().Index() && d.lastErrorStates != nil && d.lastErrorStates.Contains(recognizer.GetState()) {
		recognizer.GetTokenStream().consume()
	}
	d.lastErrorIndex = recognizer.GetTokenStream().Index()
	if d.lastErrorStates == nil {
		d.lastErrorStates = NewIntervalSet()
	}
	d.lastErrorStates.AddOne(recognizer.GetState())
	follow := d.computeErrorRecoverySet(recognizer)
	for recognizer.GetTokenStream().LA(1) != TokenEOF && !follow.Contains(recognizer.GetTokenStream().LA(1)) {
		recognizer.GetTokenStream().consume()
	}
}

func (d *DefaultErrorStrategy) computeErrorRecoverySet(recognizer Parser) *IntervalSet {
	atn := recognizer.GetATN()
	ctx := recognizer.GetParserRuleContext()
	recoverSet := NewIntervalSet()
	for ctx != nil && ctx.GetInvokingState() >= 0 {
		invokingState := atn.GetState(ctx.GetInvokingState())
		rt := invokingState.GetTransitions()[0].(*RuleTransition)
		follow := atn.NextTokens(rt.followState, nil)
		recoverSet.AddSet(follow)
		p := ctx.GetParent()
		if p == nil {
			break
		}
		ctx = p.(RuleContext)
	}
	recoverSet.removeOne(TokenEpsilon)
	return recoverSet
}

// RecoverInline implements single-token deletion/insertion at a parser
// Match mismatch: if the NEXT token would satisfy the current expected
// set, delete the offending one and consume the next; if the CURRENT
// token is in the decision's FOLLOW set, pretend a token was inserted
// and don't consume.
func (d *DefaultErrorStrategy) RecoverInline(recognizer Parser) Token {
	if t := d.singleTokenDeletion(recognizer); t != nil {
		recognizer.Consume()
		return t
	}
	if d.singleTokenInsertion(recognizer) {
		return d.getMissingSymbol(recognizer)
	}
	e := NewInputMismatchException(recognizer, recognizer.GetState(), recognizer.GetParserRuleContext(), recognizer.GetTokenStream().LT(1))
	panic(e)
}

func (d *DefaultErrorStrategy) singleTokenInsertion(recognizer Parser) bool {
	currentSymbolType := recognizer.GetTokenStream().LA(1)
	atn := recognizer.GetATN()
	s := atn.GetState(recognizer.GetState())
	next := s.GetTransitions()[0].getTarget()
	expectingAtLL2 := atn.NextTokens(next, recognizer.GetParserRuleContext())
	return expectingAtLL2.Contains(currentSymbolType)
}

func (d *DefaultErrorStrategy) singleTokenDeletion(recognizer Parser) Token {
	nextTokenType := recognizer.GetTokenStream().LA(2)
	expecting := recognizer.GetATN().getExpectedTokens(recognizer.GetState(), recognizer.GetParserRuleContext())
	if expecting.Contains(nextTokenType) {
		recognizer.NotifyErrorListeners("extraneous input", recognizer.GetTokenStream().LT(1), nil)
		recognizer.Consume()
		return recognizer.GetTokenStream().LT(1)
	}
	return nil
}

func (d *DefaultErrorStrategy) getMissingSymbol(recognizer Parser) Token {
	currentSymbol := recognizer.GetTokenStream().LT(1)
	expecting := recognizer.GetATN().getExpectedTokens(recognizer.GetState(), recognizer.GetParserRuleContext())
	expectedTokenType := TokenInvalidType
	if !expecting.IsEmpty() {
		expectedTokenType = expecting.first()
	}
	tokenText := "<missing>"
	if expectedTokenType != TokenInvalidType {
		tokenText = fmt.Sprintf("<missing %s>", recognizer.GetTokenTypeDisplayName(expectedTokenType))
	}
	current := currentSymbol
	var line, col int
	if current != nil {
		line, col = current.GetLine(), current.GetColumn()
	}
	source, cs := currentSymbol.GetSource()
	pair := &TokenSourceCharStreamPair{TokenSource: source, CharStream: cs}
	return recognizer.GetTokenFactory().Create(pair, expectedTokenType, tokenText, TokenDefaultChannel, -1, -1, line, col)
}

// BailErrorStrategy rethrows every recognition error as a
// ParseCancellationException instead of attempting recovery, letting a
// caller abandon a speculative or embedded parse immediately.
type BailErrorStrategy struct {
	DefaultErrorStrategy
}

func NewBailErrorStrategy() *BailErrorStrategy {
	return &BailErrorStrategy{DefaultErrorStrategy: *NewDefaultErrorStrategy()}
}

func (b *BailErrorStrategy) Recover(recognizer Parser, e RecognitionException) {
	ctx := recognizer.GetParserRuleContext()
	for ctx != nil {
		ctx.SetException(e)
		p, _ := ctx.GetParent().(*ParserRuleContext)
		ctx = p
	}
	panic(NewParseCancellationException(e))
}

func (b *BailErrorStrategy) RecoverInline(recognizer Parser) Token {
	e := NewInputMismatchException(recognizer, recognizer.GetState(), recognizer.GetParserRuleContext(), recognizer.GetTokenStream().LT(1))
	ctx := recognizer.GetParserRuleContext()
	for ctx != nil {
		ctx.SetException(e)
		p := ctx.GetParent()
		if p == nil {
			break
		}
		ctx = p.(*ParserRuleContext)
	}
	panic(NewParseCancellationException(e))
}
