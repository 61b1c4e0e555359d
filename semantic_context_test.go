// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeRecognizer lets predicate evaluation tests control Sempred/Precpred
// without building a real parser.
type fakeRecognizer struct {
	*BaseRecognizer
	sempred  func(ruleIndex, predIndex int) bool
	precpred func(precedence int) bool
}

func newFakeRecognizer() *fakeRecognizer {
	return &fakeRecognizer{BaseRecognizer: NewBaseRecognizer()}
}

func (f *fakeRecognizer) GetATN() *ATN { return nil }

func (f *fakeRecognizer) Sempred(_ RuleContext, ruleIndex, predIndex int) bool {
	if f.sempred != nil {
		return f.sempred(ruleIndex, predIndex)
	}
	return true
}

func (f *fakeRecognizer) Precpred(_ RuleContext, precedence int) bool {
	if f.precpred != nil {
		return f.precpred(precedence)
	}
	return true
}

func TestSemanticContextNoneIsIdentityAndAbsorbing(t *testing.T) {
	p := NewPredicate(0, 0, false)
	require.Same(t, SemanticContextNone, NewAND(SemanticContextNone, SemanticContextNone))
	require.True(t, NewAND(SemanticContextNone, p).Equals(p))
	require.Same(t, SemanticContextNone, NewOR(SemanticContextNone, p))
}

func TestSemanticContextAndFlattensAndDedupes(t *testing.T) {
	p1 := NewPredicate(0, 1, false)
	p2 := NewPredicate(0, 2, false)
	nested := NewAND(p1, p2)
	flattened := NewAND(nested, p1)

	and, ok := flattened.(*AND)
	require.True(t, ok)
	require.Len(t, and.opnds, 2)
}

func TestSemanticContextAndKeepsMinimumPrecedencePredicate(t *testing.T) {
	lo := NewPrecedencePredicate(3)
	hi := NewPrecedencePredicate(7)
	result := NewAND(lo, hi)
	require.True(t, result.Equals(lo))
}

func TestSemanticContextOrCollapsesToNoneWhenAnyOperandIsNone(t *testing.T) {
	p := NewPredicate(0, 0, false)
	require.Same(t, SemanticContextNone, NewOR(p, SemanticContextNone))
}

func TestSemanticContextOrFlattensAndDedupes(t *testing.T) {
	p1 := NewPredicate(0, 1, false)
	p2 := NewPredicate(0, 2, false)
	nested := NewOR(p1, p2)
	flattened := NewOR(nested, p2)

	or, ok := flattened.(*OR)
	require.True(t, ok)
	require.Len(t, or.opnds, 2)
}

func TestPredicateEvaluateDelegatesToSempred(t *testing.T) {
	p := NewPredicate(1, 2, false)
	r := newFakeRecognizer()
	r.sempred = func(ruleIndex, predIndex int) bool {
		return ruleIndex == 1 && predIndex == 2
	}
	require.True(t, p.evaluate(r, nil))

	other := NewPredicate(1, 3, false)
	require.False(t, other.evaluate(r, nil))
}

func TestPrecedencePredicateEvaluateDelegatesToPrecpred(t *testing.T) {
	p := NewPrecedencePredicate(5)
	r := newFakeRecognizer()
	r.precpred = func(precedence int) bool { return precedence <= 10 }
	require.True(t, p.evaluate(r, nil))
}

func TestPrecedencePredicateEvalPrecedenceCollapsesWhenSatisfied(t *testing.T) {
	p := NewPrecedencePredicate(5)
	r := newFakeRecognizer()
	r.precpred = func(precedence int) bool { return true }
	require.Same(t, SemanticContextNone, p.evalPrecedence(r, nil))
}

func TestPrecedencePredicateEvalPrecedenceNilWhenUnsatisfied(t *testing.T) {
	p := NewPrecedencePredicate(5)
	r := newFakeRecognizer()
	r.precpred = func(precedence int) bool { return false }
	require.Nil(t, p.evalPrecedence(r, nil))
}

func TestAndEvalPrecedenceUnsatisfiableConjunctMakesWholeAndNil(t *testing.T) {
	p := NewPredicate(0, 0, false)
	pp := NewPrecedencePredicate(5)
	and := NewAND(p, pp)

	r := newFakeRecognizer()
	r.precpred = func(precedence int) bool { return false }
	require.Nil(t, and.evalPrecedence(r, nil))
}

func TestOrEvalPrecedenceSatisfiedDisjunctCollapsesToNone(t *testing.T) {
	p := NewPredicate(0, 0, false)
	pp := NewPrecedencePredicate(5)
	or := NewOR(p, pp)

	r := newFakeRecognizer()
	r.precpred = func(precedence int) bool { return true }
	require.Same(t, SemanticContextNone, or.evalPrecedence(r, nil))
}
