// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// Parser is the contract ParserATNSimulator, ErrorStrategy and
// ErrorListener all call back into: the live token stream, the current
// rule-context chain, and the precedence in effect for whatever
// left-recursive rule is being matched.
type Parser interface {
	Recognizer

	GetTokenStream() TokenStream
	GetTokenFactory() TokenFactory
	GetParserRuleContext() *ParserRuleContext
	SetParserRuleContext(*ParserRuleContext)
	GetPrecedence() int
	GetErrorHandler() ErrorStrategy
	SetErrorHandler(ErrorStrategy)
	NotifyErrorListeners(msg string, offendingToken Token, e RecognitionException)
	Consume() Token
	GetTokenTypeDisplayName(ttype int) string
}

// BaseParser drives Match/rule-enter/rule-exit bookkeeping on top of a
// ParserATNSimulator decision, the way every generated parser's embedded
// base type does.
type BaseParser struct {
	*BaseRecognizer

	Interpreter *ParserATNSimulator
	input       TokenStream
	errHandler  ErrorStrategy

	ctx *ParserRuleContext

	// precedenceStack holds the minimum precedence a left-recursive rule
	// invocation must beat to continue its loop.
	precedenceStack []int

	BuildParseTrees bool
	TokenFactory    TokenFactory

	matchedEOF bool
}

func NewBaseParser(input TokenStream) *BaseParser {
	p := &BaseParser{
		BaseRecognizer:  NewBaseRecognizer(),
		input:           input,
		errHandler:      NewDefaultErrorStrategy(),
		BuildParseTrees: true,
		TokenFactory:    CommonTokenFactoryDefault,
		precedenceStack: []int{0},
	}
	return p
}

func (p *BaseParser) GetTokenStream() TokenStream { return p.input }
func (p *BaseParser) SetTokenStream(input TokenStream) { p.input = input }
func (p *BaseParser) GetTokenFactory() TokenFactory { return p.TokenFactory }

func (p *BaseParser) GetParserRuleContext() *ParserRuleContext { return p.ctx }
func (p *BaseParser) SetParserRuleContext(ctx *ParserRuleContext) { p.ctx = ctx }

func (p *BaseParser) GetErrorHandler() ErrorStrategy     { return p.errHandler }
func (p *BaseParser) SetErrorHandler(h ErrorStrategy)    { p.errHandler = h }

// GetPrecedence returns the precedence floor the innermost left-recursive
// rule invocation must exceed to keep looping: 0 outside any such rule
// (the stack starts with a 0 floor), and -1 only if the stack is empty.
func (p *BaseParser) GetPrecedence() int {
	if len(p.precedenceStack) == 0 {
		return -1
	}
	return p.precedenceStack[len(p.precedenceStack)-1]
}

func (p *BaseParser) PushPrecedence(prec int) { p.precedenceStack = append(p.precedenceStack, prec) }
func (p *BaseParser) PopPrecedence() {
	p.precedenceStack = p.precedenceStack[:len(p.precedenceStack)-1]
}

func (p *BaseParser) NotifyErrorListeners(msg string, offendingToken Token, e RecognitionException) {
	p.incrementSyntaxErrors()
	if offendingToken == nil {
		offendingToken = p.GetTokenStream().LT(-1)
	}
	line, col := 0, 0
	if offendingToken != nil {
		line, col = offendingToken.GetLine(), offendingToken.GetColumn()
	}
	p.GetErrorListenerDispatch().SyntaxError(p, offendingToken, line, col, msg, e)
}

// Consume advances the input by one token, recording it as the matched
// leaf of the current rule context when parse-tree building is enabled.
func (p *BaseParser) Consume() Token {
	o := p.GetTokenStream().LT(1)
	if o.GetTokenType() != TokenEOF {
		p.GetTokenStream().consume()
	} else {
		p.matchedEOF = true
	}
	if p.BuildParseTrees && p.ctx != nil {
		p.ctx.AddChild(&TerminalNodeImpl{symbol: o})
	}
	return o
}

// Match consumes the current token if it has the expected type, otherwise
// delegates to the ErrorStrategy for single-token recovery.
func (p *BaseParser) Match(ttype int) (Token, error) {
	t := p.GetTokenStream().LT(1)
	if t.GetTokenType() == ttype {
		p.errHandler.ReportMatch(p)
		return p.Consume(), nil
	}
	recovered := p.errHandler.RecoverInline(p)
	if p.BuildParseTrees && recovered.GetTokenIndex() == -1 && p.ctx != nil {
		p.ctx.AddChild(&TerminalNodeImpl{symbol: recovered})
	}
	return recovered, nil
}

// EnterRule installs a new rule-context node as the parser descends into
// a rule, linking it to the caller and recording the ATN state it will
// return to.
func (p *BaseParser) EnterRule(localctx *ParserRuleContext, state, ruleIndex int) {
	p.SetState(state)
	p.ctx = localctx
	p.ctx.SetStart(p.input.LT(1))
	if p.BuildParseTrees && localctx.parent != nil {
		if parent, ok := localctx.parent.(*ParserRuleContext); ok {
			parent.AddChild(localctx)
		}
	}
}

func (p *BaseParser) ExitRule() {
	p.ctx.SetStop(p.input.LT(-1))
	if parent, ok := p.ctx.GetParent().(*ParserRuleContext); ok {
		p.ctx = parent
		p.SetState(p.ctx.GetInvokingState())
	}
}

// EnterRecursionRule begins a left-recursive rule invocation: it pushes
// the new precedence floor so the generated loop condition (via
// Precpred) can decide whether another iteration is viable.
func (p *BaseParser) EnterRecursionRule(localctx *ParserRuleContext, state, ruleIndex, precedence int) {
	p.SetState(state)
	p.PushPrecedence(precedence)
	p.ctx = localctx
	p.ctx.SetStart(p.input.LT(1))
}

func (p *BaseParser) UnrollRecursionContexts(parent *ParserRuleContext) {
	p.PopPrecedence()
	p.ctx = parent
}

func (p *BaseParser) GetTokenTypeDisplayName(ttype int) string {
	return p.BaseRecognizer.GetTokenTypeDisplayName(ttype)
}

// TerminalNodeImpl is the parse-tree leaf wrapping a matched Token; tree
// construction beyond this single node shape is out of scope.
type TerminalNodeImpl struct {
	symbol Token
	parent Tree
}

func (t *TerminalNodeImpl) GetParent() Tree      { return t.parent }
func (t *TerminalNodeImpl) GetChildCount() int   { return 0 }
func (t *TerminalNodeImpl) GetChild(int) Tree    { return nil }
func (t *TerminalNodeImpl) GetSourceInterval() Interval {
	if t.symbol == nil {
		return Interval{-1, -2}
	}
	return Interval{t.symbol.GetTokenIndex(), t.symbol.GetTokenIndex()}
}
func (t *TerminalNodeImpl) String() string {
	if t.symbol == nil {
		return "<null>"
	}
	return fmt.Sprint(t.symbol.GetText())
}
