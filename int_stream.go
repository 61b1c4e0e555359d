// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// IntStream is the common contract of CharStream and TokenStream: a
// seekable, markable stream of integers (characters or token types). Its
// concrete implementations are collaborator concerns outside this
// module's core scope; the prediction engine depends only on this
// interface.
type IntStream interface {
	consume()
	LA(offset int) int
	Mark() int
	Release(marker int)
	Index() int
	Seek(index int)
	Size() int
	GetSourceName() string
}

// CharStream additionally exposes the raw text of a range, used by the
// lexer to build token text and by diagnostics.
type CharStream interface {
	IntStream
	GetTextFromInterval(Interval) string
}

// TokenStream additionally exposes random access to already-buffered
// Tokens, used by the parser driver and by the prediction engine when it
// needs LT(k) during full-context closure.
type TokenStream interface {
	IntStream
	LT(k int) Token
	Get(index int) Token
	GetTokenSource() TokenSource
	GetAllText() string
	GetTextFromInterval(Interval) string
	GetTextFromTokens(start, stop Token) string
}

// TokenSource produces Tokens on demand; a Lexer is the only TokenSource
// this module implements.
type TokenSource interface {
	NextToken() Token
	GetLine() int
	GetCharPositionInLine() int
	GetInputStream() CharStream
	GetSourceName() string
	GetTokenFactory() TokenFactory
}

// TokenFactory builds Token instances; CommonTokenFactory is the only
// implementation this module provides.
type TokenFactory interface {
	Create(source *TokenSourceCharStreamPair, ttype int, text string, channel, start, stop, line, column int) Token
}

// TokenSourceCharStreamPair bundles the (TokenSource, CharStream) a token
// was produced from, matching Token.GetSource()'s return shape.
type TokenSourceCharStreamPair struct {
	TokenSource TokenSource
	CharStream  CharStream
}

// CommonTokenFactory is the default TokenFactory: it builds CommonTokens,
// eagerly materializing text when the caller passes a non-empty text
// override or when copyText is set (otherwise GetText lazily slices the
// CharStream).
type CommonTokenFactory struct {
	copyText bool
}

func NewCommonTokenFactory(copyText bool) *CommonTokenFactory {
	return &CommonTokenFactory{copyText: copyText}
}

// CommonTokenFactoryDefault is shared by every recognizer that does not
// configure its own factory.
var CommonTokenFactoryDefault TokenFactory = NewCommonTokenFactory(false)

func (f *CommonTokenFactory) Create(source *TokenSourceCharStreamPair, ttype int, text string, channel, start, stop, line, column int) Token {
	var ts TokenSource
	var cs CharStream
	if source != nil {
		ts, cs = source.TokenSource, source.CharStream
	}
	t := NewCommonToken(ts, cs, ttype, channel, start, stop)
	t.SetLine(line)
	t.SetColumn(column)
	if text != "" {
		t.SetText(text)
	} else if f.copyText && cs != nil {
		t.SetText(cs.GetTextFromInterval(Interval{start, stop}))
	}
	return t
}
