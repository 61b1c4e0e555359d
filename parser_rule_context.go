// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// ParserRuleContext is the concrete, generic rule-context node used when a
// grammar has no rule-specific generated context type (and embedded by
// every generated context). Tree/listener walking is out of this module's
// scope; only the fields the prediction engine and parser driver need are
// present.
type ParserRuleContext struct {
	*BaseRuleContext

	start, stop Token
	exception   RecognitionException
	children    []Tree
}

func NewParserRuleContext(parent RuleContext, invokingState int) *ParserRuleContext {
	return &ParserRuleContext{BaseRuleContext: NewBaseRuleContext(parent, invokingState)}
}

func (p *ParserRuleContext) SetStart(t Token) { p.start = t }
func (p *ParserRuleContext) GetStart() Token  { return p.start }
func (p *ParserRuleContext) SetStop(t Token)  { p.stop = t }
func (p *ParserRuleContext) GetStop() Token   { return p.stop }

func (p *ParserRuleContext) SetException(e RecognitionException) { p.exception = e }
func (p *ParserRuleContext) GetException() RecognitionException  { return p.exception }

func (p *ParserRuleContext) AddChild(t Tree) { p.children = append(p.children, t) }
func (p *ParserRuleContext) GetChildren() []Tree { return p.children }

// GetRuleContext walks up the invoking-state chain, implementing the
// pattern generated parsers use to find an enclosing rule's context.
func GetRuleContext(ctx RuleContext, ruleIndex int) RuleContext {
	for ctx != nil {
		if ctx.GetRuleIndex() == ruleIndex {
			return ctx
		}
		p := ctx.GetParent()
		if p == nil {
			return nil
		}
		ctx = p.(RuleContext)
	}
	return nil
}
