// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// RecognitionException is the common root of every recognition-time
// error: it carries enough of the recognizer's state at the point of
// failure (offending token, input stream, current ATN state) that an
// ErrorStrategy or ErrorListener can produce a useful message without
// re-deriving context.
type RecognitionException interface {
	error
	GetOffendingToken() Token
	GetInputStream() IntStream
	GetRecognizer() Recognizer
	GetCtx() RuleContext
}

type BaseRecognitionException struct {
	message         string
	recognizer      Recognizer
	offendingToken  Token
	offendingState  int
	ctx             RuleContext
	input           IntStream
}

func NewBaseRecognitionException(message string, recognizer Recognizer, input IntStream, ctx RuleContext) *BaseRecognitionException {
	e := &BaseRecognitionException{message: message, recognizer: recognizer, input: input, ctx: ctx, offendingState: -1}
	if recognizer != nil {
		e.offendingState = recognizer.GetState()
	}
	return e
}

func (e *BaseRecognitionException) Error() string             { return e.message }
func (e *BaseRecognitionException) GetOffendingToken() Token   { return e.offendingToken }
func (e *BaseRecognitionException) GetInputStream() IntStream  { return e.input }
func (e *BaseRecognitionException) GetRecognizer() Recognizer  { return e.recognizer }
func (e *BaseRecognitionException) GetCtx() RuleContext        { return e.ctx }

// NoViableAltException is raised when prediction's reach set becomes
// empty: no alternative of the current decision can match the remaining
// input. It carries the full offending configuration set and the input
// index range the caller needs to build a useful diagnostic.
type NoViableAltException struct {
	*BaseRecognitionException
	StartToken     Token
	DeadEndConfigs *ATNConfigSet
}

func NewNoViableAltException(recognizer Recognizer, input TokenStream, startToken, offendingToken Token, deadEndConfigs *ATNConfigSet, ctx RuleContext) *NoViableAltException {
	if ctx == nil && recognizer != nil {
		// best effort only: generated parsers normally supply ctx
	}
	var is IntStream
	if input != nil {
		is = input
	}
	e := &NoViableAltException{
		BaseRecognitionException: NewBaseRecognitionException("no viable alternative", recognizer, is, ctx),
		StartToken:               startToken,
		DeadEndConfigs:           deadEndConfigs,
	}
	e.offendingToken = offendingToken
	return e
}

// InputMismatchException signals that the current token does not satisfy
// the expected set at a parser Match call.
type InputMismatchException struct {
	*BaseRecognitionException
}

func NewInputMismatchException(recognizer Recognizer, state int, ctx RuleContext, offending Token) *InputMismatchException {
	e := &InputMismatchException{BaseRecognitionException: NewBaseRecognitionException("mismatched input", recognizer, nil, ctx)}
	e.offendingState = state
	e.offendingToken = offending
	return e
}

// FailedPredicateException signals a semantic predicate guarding the only
// viable alternative evaluated to false.
type FailedPredicateException struct {
	*BaseRecognitionException
	RuleIndex, PredicateIndex int
	predicate                 string
}

func NewFailedPredicateException(recognizer Recognizer, predicate, msg string) *FailedPredicateException {
	m := msg
	if m == "" {
		m = fmt.Sprintf("failed predicate: {%s}?", predicate)
	}
	return &FailedPredicateException{
		BaseRecognitionException: NewBaseRecognitionException(m, recognizer, nil, nil),
		predicate:                predicate,
	}
}

// LexerNoViableAltException signals that the lexer could reach no accept
// state from the current mode's start state; the driver's recovery is to
// consume one character and retry.
type LexerNoViableAltException struct {
	message        string
	startIndex     int
	deadEndConfigs *ATNConfigSet
	input          CharStream
}

func NewLexerNoViableAltException(lexer Recognizer, input CharStream, startIndex int, deadEndConfigs *ATNConfigSet) *LexerNoViableAltException {
	return &LexerNoViableAltException{startIndex: startIndex, deadEndConfigs: deadEndConfigs, input: input}
}

func (e *LexerNoViableAltException) Error() string {
	return fmt.Sprintf("token recognition error at index %d", e.startIndex)
}

// ParseCancellationException is thrown by BailErrorStrategy to abandon a
// parse at the first recognition error instead of attempting recovery.
type ParseCancellationException struct {
	cause RecognitionException
}

func NewParseCancellationException(cause RecognitionException) *ParseCancellationException {
	return &ParseCancellationException{cause: cause}
}

func (e *ParseCancellationException) Error() string { return "parse cancelled: " + e.cause.Error() }
func (e *ParseCancellationException) Unwrap() error  { return e.cause }
