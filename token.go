// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import "fmt"

// Token is the unit the parser consumes. Its production (TokenSource,
// CharStream I/O) is out of this module's scope; only the data shape and
// the WritableToken mutators the lexer needs to fill it in are defined
// here.
type Token interface {
	GetSource() (TokenSource, CharStream)
	GetTokenType() int
	GetChannel() int
	GetStart() int
	GetStop() int
	GetLine() int
	GetColumn() int
	GetText() string
	GetTokenIndex() int
	GetTokenSource() TokenSource
	GetInputStream() CharStream
}

type WritableToken interface {
	Token
	SetText(string)
	SetTokenType(int)
	SetChannel(int)
	SetStart(int)
	SetStop(int)
	SetLine(int)
	SetColumn(int)
	SetTokenIndex(int)
}

// CommonToken is the default Token/WritableToken implementation: a plain
// struct with explicit start/stop character indices into its source CharStream.
type CommonToken struct {
	source      TokenSource
	input       CharStream
	tokenType   int
	channel     int
	start, stop int
	line, column int
	text        string
	hasText     bool
	tokenIndex  int
}

func NewCommonToken(source TokenSource, input CharStream, tokenType, channel, start, stop int) *CommonToken {
	t := &CommonToken{
		source: source, input: input, tokenType: tokenType, channel: channel,
		start: start, stop: stop, tokenIndex: -1,
	}
	if source != nil {
		t.line = source.GetLine()
		t.column = source.GetCharPositionInLine()
	}
	return t
}

func (t *CommonToken) GetSource() (TokenSource, CharStream) { return t.source, t.input }
func (t *CommonToken) GetTokenType() int                     { return t.tokenType }
func (t *CommonToken) GetChannel() int                       { return t.channel }
func (t *CommonToken) GetStart() int                         { return t.start }
func (t *CommonToken) GetStop() int                          { return t.stop }
func (t *CommonToken) GetLine() int                          { return t.line }
func (t *CommonToken) GetColumn() int                         { return t.column }
func (t *CommonToken) GetTokenIndex() int                    { return t.tokenIndex }
func (t *CommonToken) GetTokenSource() TokenSource           { return t.source }
func (t *CommonToken) GetInputStream() CharStream             { return t.input }

func (t *CommonToken) GetText() string {
	if t.hasText {
		return t.text
	}
	if t.input == nil {
		return ""
	}
	n := t.input.Size()
	if t.stop < n && t.start < n && t.start >= 0 && t.stop >= 0 {
		return t.input.GetTextFromInterval(Interval{t.start, t.stop})
	}
	return "<EOF>"
}

func (t *CommonToken) SetText(s string)      { t.text = s; t.hasText = true }
func (t *CommonToken) SetTokenType(v int)    { t.tokenType = v }
func (t *CommonToken) SetChannel(v int)      { t.channel = v }
func (t *CommonToken) SetStart(v int)        { t.start = v }
func (t *CommonToken) SetStop(v int)         { t.stop = v }
func (t *CommonToken) SetLine(v int)         { t.line = v }
func (t *CommonToken) SetColumn(v int)       { t.column = v }
func (t *CommonToken) SetTokenIndex(v int)   { t.tokenIndex = v }

func (t *CommonToken) String() string {
	txt := t.GetText()
	return fmt.Sprintf("[@%d,%d:%d='%s',<%d>,%d:%d]", t.tokenIndex, t.start, t.stop, txt, t.tokenType, t.line, t.column)
}

// NewEOFToken builds a sentinel EOF token.
func NewEOFToken(source TokenSource, input CharStream) *CommonToken {
	t := NewCommonToken(source, input, TokenEOF, TokenDefaultChannel, -1, -1)
	t.SetText("<EOF>")
	return t
}
