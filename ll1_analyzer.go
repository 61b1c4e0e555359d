// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// LL1Analyzer computes, for a given ATN state, the set of tokens that can
// appear next — used to build follow sets for error recovery
// (DefaultErrorStrategy) and for ATN.NextTokens*. It is a one-token lookahead
// analyzer; it is not the ALL(*) prediction engine and never builds a DFA.
type LL1Analyzer struct {
	atn *ATN
}

func NewLL1Analyzer(atn *ATN) *LL1Analyzer {
	return &LL1Analyzer{atn: atn}
}

// ll1AnalyzerHitPred is a sentinel added to the look set when a predicate
// might gate the alternative; stopping at TokenInvalidType would otherwise
// be ambiguous with "can't reach here at all".
const ll1AnalyzerHitPred = TokenInvalidType

// Look computes the set of tokens reachable from s. If stopState is
// non-nil, the walk treats reaching it as "end of this Look call" rather
// than popping further. ctx supplies the calling context to use once the
// walk falls off the end of the current rule; nil means stay within-rule
// and use the epsilon marker for "falls off the end".
func (la *LL1Analyzer) Look(s, stopState ATNState, ctx RuleContext) *IntervalSet {
	r := NewIntervalSet()
	seeThruPreds := true
	var lookContext PredictionContext
	if ctx != nil {
		lookContext = predictionContextFromRuleContext(la.atn, ctx)
	}
	la.look(s, stopState, lookContext, r, newATNConfigSet2(false), NewBitSet(), seeThruPreds, true)
	return r
}

func (la *LL1Analyzer) look(s, stopState ATNState, ctx PredictionContext, look *IntervalSet, lookBusy *ATNConfigSet, calledRuleStack *BitSet, seeThruPreds, addEOF bool) {
	c := NewATNConfig6(s, 0, ctx)
	if lookBusy.containsFast(c) {
		return
	}
	lookBusy.add(c, nil)

	if s == stopState {
		if ctx == nil {
			look.AddOne(TokenEpsilon)
			return
		} else if ctx.isEmpty() && addEOF {
			look.AddOne(TokenEOF)
			return
		}
	}

	if _, ok := s.(*RuleStopState); ok {
		if ctx == nil {
			look.AddOne(TokenEpsilon)
			return
		} else if ctx.isEmpty() && addEOF {
			look.AddOne(TokenEOF)
			return
		}
		if ctx != BasePredictionContextEMPTY {
			removed := calledRuleStack.Contains(s.GetRuleIndex())
			defer func() {
				if removed {
					calledRuleStack.Add(s.GetRuleIndex())
				}
			}()
			calledRuleStack.Clear(s.GetRuleIndex())
			for i := 0; i < ctx.length(); i++ {
				returnState := la.atn.GetState(ctx.getReturnState(i))
				la.look(returnState, stopState, ctx.GetParent(i), look, lookBusy, calledRuleStack, seeThruPreds, addEOF)
			}
			return
		}
	}

	for _, t := range s.GetTransitions() {
		switch tt := t.(type) {
		case *RuleTransition:
			if calledRuleStack.Contains(tt.getTarget().GetRuleIndex()) {
				continue
			}
			newContext := SingletonBasePredictionContextCreate(ctx, tt.followState.GetStateNumber())
			calledRuleStack.Add(tt.getTarget().GetRuleIndex())
			la.look(tt.getTarget(), stopState, newContext, look, lookBusy, calledRuleStack, seeThruPreds, addEOF)
			calledRuleStack.Clear(tt.getTarget().GetRuleIndex())
		case AbstractPredicateTransition:
			if seeThruPreds {
				la.look(t.getTarget(), stopState, ctx, look, lookBusy, calledRuleStack, seeThruPreds, addEOF)
			} else {
				look.AddOne(ll1AnalyzerHitPred)
			}
		default:
			if t.getIsEpsilon() {
				la.look(t.getTarget(), stopState, ctx, look, lookBusy, calledRuleStack, seeThruPreds, addEOF)
				continue
			}
			if _, ok := t.(*WildcardTransition); ok {
				look.AddRange(TokenMinUserType, la.atn.maxTokenType)
				continue
			}
			set := t.getLabel()
			if set != nil {
				if _, ok := t.(*NotSetTransition); ok {
					set = set.Complement(TokenMinUserType, la.atn.maxTokenType)
				}
				look.AddSet(set)
			}
		}
	}
}
