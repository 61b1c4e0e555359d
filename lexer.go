// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// BaseLexer drives LexerATNSimulator to turn a CharStream into a stream
// of Tokens. NextToken implements the standard mark/match/emit loop:
// match the longest token from the current mode's DFA, run its actions,
// and either emit, skip, or continue accumulating text for -> more.
type BaseLexer struct {
	*BaseRecognizer

	Interpreter *LexerATNSimulator
	input       CharStream
	factory     TokenFactory
	tokenFactorySourcePair *TokenSourceCharStreamPair

	token Token

	tokenStartCharIndex int
	tokenStartLine      int
	tokenStartColumn    int

	ttype   int
	channel int
	text    string
	hasText bool

	modeStack []int
	mode      int

	hitEOF bool
}

func NewBaseLexer(input CharStream) *BaseLexer {
	l := &BaseLexer{
		BaseRecognizer: NewBaseRecognizer(),
		input:          input,
		factory:        CommonTokenFactoryDefault,
		ttype:          TokenInvalidType,
		channel:        TokenDefaultChannel,
		mode:           LexerDefaultMode,
	}
	l.tokenFactorySourcePair = &TokenSourceCharStreamPair{TokenSource: l, CharStream: input}
	return l
}

func (l *BaseLexer) GetATN() *ATN                         { return l.Interpreter.atn }
func (l *BaseLexer) GetInputStream() CharStream          { return l.input }
func (l *BaseLexer) GetSourceName() string                { return l.input.GetSourceName() }
func (l *BaseLexer) GetTokenFactory() TokenFactory         { return l.factory }
func (l *BaseLexer) SetTokenFactory(f TokenFactory)        { l.factory = f }
func (l *BaseLexer) GetCharPositionInLine() int           { return l.tokenStartColumn }
func (l *BaseLexer) GetLine() int                          { return l.tokenStartLine }

func (l *BaseLexer) reset() {
	if l.input != nil {
		l.input.Seek(0)
	}
	l.token = nil
	l.ttype = TokenInvalidType
	l.channel = TokenDefaultChannel
	l.tokenStartCharIndex = -1
	l.tokenStartColumn = 0
	l.tokenStartLine = 0
	l.text = ""
	l.hasText = false
	l.hitEOF = false
	l.mode = LexerDefaultMode
	l.modeStack = nil
	if l.Interpreter != nil {
		l.Interpreter.reset()
	}
}

// NextToken produces the next Token on the lexer's current channel (the
// default channel unless an action changed it), matching the
// longest possible rule and re-trying on LexerNoViableAltException by
// skipping the offending character (error recovery, never prediction).
func (l *BaseLexer) NextToken() Token {
	if l.input == nil {
		panic("NextToken requires a non-nil input stream")
	}
	for {
		if l.hitEOF {
			return l.emitEOF()
		}
		l.token = nil
		l.channel = TokenDefaultChannel
		l.tokenStartCharIndex = l.input.Index()
		l.tokenStartColumn = l.Interpreter.column
		l.tokenStartLine = l.Interpreter.line
		l.text = ""
		l.hasText = false

		skipped, matched := l.matchOneToken()
		if l.input.LA(1) == TokenEOF {
			l.hitEOF = true
		}
		if skipped {
			continue
		}
		if !matched {
			continue
		}
		if l.token == nil {
			l.Emit()
		}
		return l.token
	}
}

// matchOneToken runs the -> more loop for a single token start position,
// returning skipped=true if the rule fired -> skip and matched=true once
// a token type (possibly EOF) has actually been decided.
func (l *BaseLexer) matchOneToken() (skipped, matched bool) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(*LexerNoViableAltException)
			if !ok {
				panic(r)
			}
			l.notifyListeners(e)
			l.Recover(e)
			skipped = true
		}
	}()
	for {
		l.ttype = TokenInvalidType
		l.ttype = l.Interpreter.Match(l.input, l.mode)
		if l.ttype == LexerSkip {
			return true, false
		}
		if l.ttype != LexerMore {
			return false, true
		}
	}
}

func (l *BaseLexer) notifyListeners(e *LexerNoViableAltException) {
	l.incrementSyntaxErrors()
	text := l.input.GetTextFromInterval(Interval{l.tokenStartCharIndex, l.input.Index()})
	msg := fmt.Sprintf("token recognition error at: '%s'", text)
	l.GetErrorListenerDispatch().SyntaxError(l, nil, l.tokenStartLine, l.tokenStartColumn, msg, e)
}

// Recover consumes one character so the lexer can resynchronize after a
// dead-end match, the standard single-character-skip recovery.
func (l *BaseLexer) Recover(RecognitionException) {
	if l.input.LA(1) != TokenEOF {
		l.Interpreter.Consume(l.input)
	}
}

func (l *BaseLexer) Skip()            { l.ttype = LexerSkip }
func (l *BaseLexer) More()            { l.ttype = LexerMore }
func (l *BaseLexer) SetMode(m int)    { l.mode = m }
func (l *BaseLexer) PushMode(m int)   { l.modeStack = append(l.modeStack, l.mode); l.mode = m }
func (l *BaseLexer) PopMode() int {
	n := len(l.modeStack)
	if n == 0 {
		panic("IllegalState: cannot pop mode stack with no modes pushed")
	}
	l.mode = l.modeStack[n-1]
	l.modeStack = l.modeStack[:n-1]
	return l.mode
}
func (l *BaseLexer) SetType(t int)      { l.ttype = t }
func (l *BaseLexer) GetType() int       { return l.ttype }
func (l *BaseLexer) SetChannel(c int)   { l.channel = c }

func (l *BaseLexer) GetText() string {
	if l.hasText {
		return l.text
	}
	return l.input.GetTextFromInterval(Interval{l.tokenStartCharIndex, l.input.Index() - 1})
}
func (l *BaseLexer) SetText(s string) { l.text = s; l.hasText = true }

// Emit constructs a Token from the lexer's current match state and
// records it as the token NextToken will return.
func (l *BaseLexer) Emit() Token {
	t := l.factory.Create(l.tokenFactorySourcePair, l.ttype, l.text, l.channel,
		l.tokenStartCharIndex, l.input.Index()-1, l.tokenStartLine, l.tokenStartColumn)
	l.token = t
	return t
}

func (l *BaseLexer) emitEOF() Token {
	t := NewEOFToken(l, l.input)
	l.token = t
	return t
}
