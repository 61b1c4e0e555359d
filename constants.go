// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// Token type and channel constants shared by every recognizer produced from
// an ATN, independent of grammar.
const (
	TokenInvalidType = 0
	TokenEpsilon     = -2
	TokenMinUserType = 1
	TokenEOF         = -1

	TokenDefaultChannel = 0
	TokenHiddenChannel  = 1
	TokenMinUserChannel = 2
)

// Lexer-only constants. MORE and SKIP are pseudo token types returned by a
// lexer rule's action to tell the driver loop to keep scanning or to discard
// the match and restart.
const (
	LexerDefaultMode = 0
	LexerMore        = -2
	LexerSkip        = -3

	LexerDefaultTokenChannel = TokenDefaultChannel
	LexerHidden              = TokenHiddenChannel

	LexerMinCharValue = 0x0000
	LexerMaxCharValue = 0x10FFFF
)

// Debug toggles, off by default. No code in this package reads them, so
// setting them has no effect.
var (
	ParserATNSimulatorDebug             = false
	ParserATNSimulatorTraceATNSim       = false
	ParserATNSimulatorDFADebug          = false
	ParserATNSimulatorRetryDebug        = false
	LexerATNSimulatorDebug              = false
	LexerATNSimulatorDFADebug           = false
)
