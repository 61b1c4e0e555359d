// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"fmt"
	"sort"
)

// SemanticContext is a boolean lattice of predicate references attached to
// an ATNConfig: None (always true), a single rule/precedence predicate, or
// a normalized AND/OR of sub-contexts. Evaluation happens against a live
// Recognizer and short-circuits like the boolean operator it represents.
type SemanticContext interface {
	evaluate(parser Recognizer, outerContext RuleContext) bool
	evalPrecedence(parser Recognizer, outerContext RuleContext) SemanticContext
	Hash() int
	Equals(other SemanticContext) bool
	String() string
}

// SemanticContextNone represents "no predicate" — the identity element for
// AND and the absorbing element for OR.
var SemanticContextNone SemanticContext = &semanticContextNone{}

type semanticContextNone struct{}

func (n *semanticContextNone) evaluate(Recognizer, RuleContext) bool { return true }
func (n *semanticContextNone) evalPrecedence(Recognizer, RuleContext) SemanticContext {
	return n
}
func (n *semanticContextNone) Hash() int { return 1 }
func (n *semanticContextNone) Equals(o SemanticContext) bool {
	_, ok := o.(*semanticContextNone)
	return ok
}
func (n *semanticContextNone) String() string { return "" }

// Predicate references a grammar-authored {pred}? semantic action.
type Predicate struct {
	RuleIndex, PredIndex int
	IsCtxDependent       bool
}

func NewPredicate(ruleIndex, predIndex int, isCtxDependent bool) *Predicate {
	return &Predicate{RuleIndex: ruleIndex, PredIndex: predIndex, IsCtxDependent: isCtxDependent}
}

func (p *Predicate) evaluate(parser Recognizer, outerContext RuleContext) bool {
	var ctx RuleContext
	if p.IsCtxDependent {
		ctx = outerContext
	}
	return parser.Sempred(ctx, p.RuleIndex, p.PredIndex)
}

func (p *Predicate) evalPrecedence(Recognizer, RuleContext) SemanticContext { return p }

func (p *Predicate) Hash() int {
	h := murmurInit(1)
	h = murmurUpdate(h, p.RuleIndex)
	h = murmurUpdate(h, p.PredIndex)
	b := 0
	if p.IsCtxDependent {
		b = 1
	}
	h = murmurUpdate(h, b)
	return murmurFinish(h, 3)
}

func (p *Predicate) Equals(o SemanticContext) bool {
	other, ok := o.(*Predicate)
	return ok && p.RuleIndex == other.RuleIndex && p.PredIndex == other.PredIndex && p.IsCtxDependent == other.IsCtxDependent
}

func (p *Predicate) String() string {
	return fmt.Sprintf("{%d:%d}?", p.RuleIndex, p.PredIndex)
}

// PrecedencePredicate gates an alternative of a left-recursive rule on
// Precpred(outerContext, Precedence), which holds while the current
// precedence level does not exceed the given value.
type PrecedencePredicate struct {
	Precedence int
}

func NewPrecedencePredicate(precedence int) *PrecedencePredicate {
	return &PrecedencePredicate{Precedence: precedence}
}

func (p *PrecedencePredicate) evaluate(parser Recognizer, outerContext RuleContext) bool {
	return parser.Precpred(outerContext, p.Precedence)
}

func (p *PrecedencePredicate) evalPrecedence(parser Recognizer, outerContext RuleContext) SemanticContext {
	if parser.Precpred(outerContext, p.Precedence) {
		return SemanticContextNone
	}
	return nil
}

func (p *PrecedencePredicate) Hash() int {
	h := murmurInit(1)
	h = murmurUpdate(h, p.Precedence)
	return murmurFinish(h, 1)
}

func (p *PrecedencePredicate) Equals(o SemanticContext) bool {
	other, ok := o.(*PrecedencePredicate)
	return ok && p.Precedence == other.Precedence
}

func (p *PrecedencePredicate) String() string {
	return fmt.Sprintf(">=%d?", p.Precedence)
}

func (p *PrecedencePredicate) compareTo(other *PrecedencePredicate) int {
	return p.Precedence - other.Precedence
}

// AND is a normalized conjunction: nested ANDs flattened, duplicates
// removed, and (if present) every PrecedencePredicate child collapsed to
// the single one with the smallest Precedence value, the most restrictive
// under Precpred's convention -- evaluating that one is equivalent to
// evaluating the whole original conjunction of precedence predicates.
type AND struct {
	opnds []SemanticContext
}

func NewAND(a, b SemanticContext) SemanticContext {
	var operands []SemanticContext
	if andA, ok := a.(*AND); ok {
		operands = append(operands, andA.opnds...)
	} else {
		operands = append(operands, a)
	}
	if andB, ok := b.(*AND); ok {
		operands = append(operands, andB.opnds...)
	} else {
		operands = append(operands, b)
	}

	precedencePredicates := extractPrecedencePredicates(&operands)
	if len(precedencePredicates) > 0 {
		// Keep only the predicate demanding the smallest precedence: it is
		// the binding constraint once every other predicate in the AND is
		// also satisfied.
		sort.Slice(precedencePredicates, func(i, j int) bool {
			return precedencePredicates[i].compareTo(precedencePredicates[j]) < 0
		})
		operands = append(operands, precedencePredicates[0])
	}

	operands = dedupeSemanticContexts(operands)

	var kept []SemanticContext
	for _, o := range operands {
		if o != SemanticContextNone {
			kept = append(kept, o)
		}
	}
	operands = kept

	if len(operands) == 0 {
		return SemanticContextNone
	}
	if len(operands) == 1 {
		return operands[0]
	}
	return &AND{opnds: operands}
}

func extractPrecedencePredicates(operands *[]SemanticContext) []*PrecedencePredicate {
	var out []*PrecedencePredicate
	var rest []SemanticContext
	for _, o := range *operands {
		if pp, ok := o.(*PrecedencePredicate); ok {
			out = append(out, pp)
		} else {
			rest = append(rest, o)
		}
	}
	*operands = rest
	return out
}

func dedupeSemanticContexts(operands []SemanticContext) []SemanticContext {
	var out []SemanticContext
	for _, o := range operands {
		dup := false
		for _, existing := range out {
			if existing.Equals(o) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, o)
		}
	}
	return out
}

func (a *AND) evaluate(parser Recognizer, outerContext RuleContext) bool {
	for _, o := range a.opnds {
		if !o.evaluate(parser, outerContext) {
			return false
		}
	}
	return true
}

func (a *AND) evalPrecedence(parser Recognizer, outerContext RuleContext) SemanticContext {
	differs := false
	var operands []SemanticContext
	for _, o := range a.opnds {
		evaluated := o.evalPrecedence(parser, outerContext)
		differs = differs || evaluated != o
		if evaluated == nil {
			return nil // one conjunct is unsatisfiable -> whole AND is unsatisfiable
		}
		if evaluated != SemanticContextNone {
			operands = append(operands, evaluated)
		}
	}
	if !differs {
		return a
	}
	if len(operands) == 0 {
		return SemanticContextNone
	}
	result := operands[0]
	for _, o := range operands[1:] {
		result = NewAND(result, o)
	}
	return result
}

func (a *AND) Hash() int {
	h := murmurInit(1)
	for _, o := range a.opnds {
		h = murmurUpdate(h, o.Hash())
	}
	return murmurFinish(h, len(a.opnds))
}

func (a *AND) Equals(o SemanticContext) bool {
	other, ok := o.(*AND)
	if !ok || len(a.opnds) != len(other.opnds) {
		return false
	}
	for i := range a.opnds {
		if !a.opnds[i].Equals(other.opnds[i]) {
			return false
		}
	}
	return true
}

func (a *AND) String() string {
	parts := make([]string, len(a.opnds))
	for i, o := range a.opnds {
		parts[i] = o.String()
	}
	return sliceJoin(parts, "&&")
}

// OR is a normalized disjunction: OR(NONE, _) collapses to NONE (true
// unconditionally), nested ORs flatten, and duplicates are removed.
type OR struct {
	opnds []SemanticContext
}

func NewOR(a, b SemanticContext) SemanticContext {
	var operands []SemanticContext
	if orA, ok := a.(*OR); ok {
		operands = append(operands, orA.opnds...)
	} else {
		operands = append(operands, a)
	}
	if orB, ok := b.(*OR); ok {
		operands = append(operands, orB.opnds...)
	} else {
		operands = append(operands, b)
	}

	for _, o := range operands {
		if o == SemanticContextNone {
			return SemanticContextNone
		}
	}

	operands = dedupeSemanticContexts(operands)
	if len(operands) == 0 {
		return SemanticContextNone
	}
	if len(operands) == 1 {
		return operands[0]
	}
	return &OR{opnds: operands}
}

func (o *OR) evaluate(parser Recognizer, outerContext RuleContext) bool {
	for _, c := range o.opnds {
		if c.evaluate(parser, outerContext) {
			return true
		}
	}
	return false
}

func (o *OR) evalPrecedence(parser Recognizer, outerContext RuleContext) SemanticContext {
	differs := false
	var operands []SemanticContext
	for _, c := range o.opnds {
		evaluated := c.evalPrecedence(parser, outerContext)
		differs = differs || evaluated != c
		if evaluated == SemanticContextNone {
			return SemanticContextNone // one disjunct is unconditionally true
		}
		if evaluated != nil {
			operands = append(operands, evaluated)
		}
	}
	if !differs {
		return o
	}
	if len(operands) == 0 {
		return nil
	}
	result := operands[0]
	for _, c := range operands[1:] {
		result = NewOR(result, c)
	}
	return result
}

func (o *OR) Hash() int {
	h := murmurInit(1)
	for _, c := range o.opnds {
		h = murmurUpdate(h, c.Hash())
	}
	return murmurFinish(h, len(o.opnds))
}

func (o *OR) Equals(other SemanticContext) bool {
	oo, ok := other.(*OR)
	if !ok || len(o.opnds) != len(oo.opnds) {
		return false
	}
	for i := range o.opnds {
		if !o.opnds[i].Equals(oo.opnds[i]) {
			return false
		}
	}
	return true
}

func (o *OR) String() string {
	parts := make([]string, len(o.opnds))
	for i, c := range o.opnds {
		parts[i] = c.String()
	}
	return sliceJoin(parts, "||")
}

func sliceJoin(parts []string, sep string) string {
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += sep
		}
		out += p
	}
	return out
}
