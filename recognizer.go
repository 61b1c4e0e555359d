// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// Recognizer is the common contract both BaseParser and BaseLexer satisfy:
// it is what the prediction engine and SemanticContext evaluation call
// back into, and what error listeners receive.
type Recognizer interface {
	GetATN() *ATN
	GetErrorListenerDispatch() ErrorListener
	Sempred(localctx RuleContext, ruleIndex, actionIndex int) bool
	Precpred(localctx RuleContext, precedence int) bool
	Action(localctx RuleContext, ruleIndex, actionIndex int)

	GetState() int
	SetState(int)

	GetRuleNames() []string
	GetLiteralNames() []string
	GetSymbolicNames() []string

	GetNumberOfSyntaxErrors() int
}

// BaseRecognizer carries the fields shared by BaseParser and BaseLexer:
// current ATN state, generated-grammar name tables, and the error
// listener fan-out.
type BaseRecognizer struct {
	listeners    []ErrorListener
	state        int
	syntaxErrors int

	RuleNames     []string
	LiteralNames  []string
	SymbolicNames []string
	GrammarFileName string
}

func NewBaseRecognizer() *BaseRecognizer {
	return &BaseRecognizer{listeners: []ErrorListener{ConsoleErrorListenerINSTANCE}, state: ATNInvalidStateNumber}
}

func (b *BaseRecognizer) GetState() int     { return b.state }
func (b *BaseRecognizer) SetState(v int)    { b.state = v }

func (b *BaseRecognizer) GetRuleNames() []string     { return b.RuleNames }
func (b *BaseRecognizer) GetLiteralNames() []string  { return b.LiteralNames }
func (b *BaseRecognizer) GetSymbolicNames() []string { return b.SymbolicNames }

func (b *BaseRecognizer) Sempred(RuleContext, int, int) bool { return true }
func (b *BaseRecognizer) Precpred(localctx RuleContext, precedence int) bool {
	return true
}
func (b *BaseRecognizer) Action(RuleContext, int, int) {}

func (b *BaseRecognizer) AddErrorListener(l ErrorListener) {
	b.listeners = append(b.listeners, l)
}

func (b *BaseRecognizer) RemoveErrorListeners() {
	b.listeners = nil
}

func (b *BaseRecognizer) GetErrorListenerDispatch() ErrorListener {
	return NewProxyErrorListener(b.listeners)
}

// GetNumberOfSyntaxErrors reports how many recognition errors this
// recognizer has reported to its listeners so far in the current parse
// or tokenize.
func (b *BaseRecognizer) GetNumberOfSyntaxErrors() int { return b.syntaxErrors }

func (b *BaseRecognizer) incrementSyntaxErrors() { b.syntaxErrors++ }

// GetTokenTypeDisplayName renders a token type for diagnostics, preferring
// the literal name ('+' style) over the symbolic one (PLUS style).
func (b *BaseRecognizer) GetTokenTypeDisplayName(ttype int) string {
	if ttype == TokenEOF {
		return "EOF"
	}
	if ttype >= 0 && ttype < len(b.LiteralNames) && b.LiteralNames[ttype] != "" {
		return b.LiteralNames[ttype]
	}
	if ttype >= 0 && ttype < len(b.SymbolicNames) && b.SymbolicNames[ttype] != "" {
		return b.SymbolicNames[ttype]
	}
	return ""
}
