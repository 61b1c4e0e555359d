// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// ATNDeserializer turns a flat []int32 produced by Serialize back into a
// fully linked ATN. The wire layout here is this module's own — simpler
// than the official ANTLR tool's packed format, since byte-for-byte
// compatibility with generated-parser output is not a goal — but the
// two-pass shape (states first, then transitions, so a transition's
// target state always already exists) is the same approach any ATN
// wire format needs.
type ATNDeserializer struct{}

func NewATNDeserializer() *ATNDeserializer { return &ATNDeserializer{} }

const atnWireVersion = 1

// Deserialize reads data and returns the ATN it encodes. It panics on any
// structural inconsistency (unknown state/transition kind, out-of-range
// state reference) rather than returning a partially built graph.
func (d *ATNDeserializer) Deserialize(data []int32) *ATN {
	r := &wireReader{data: data}
	if v := r.next(); v != atnWireVersion {
		panic("ATNDeserializer: unsupported wire version")
	}

	grammarType := int(r.next())
	maxTokenType := int(r.next())
	a := NewATN(grammarType, maxTokenType)

	numStates := int(r.next())
	for i := 0; i < numStates; i++ {
		kind := ATNStateKind(r.next())
		ruleIndex := int(r.next())
		flags := int(r.next())
		s := newATNStateOfKind(kind)
		if s == nil {
			a.addState(nil)
			continue
		}
		s.SetRuleIndex(ruleIndex)
		applyStateFlags(s, kind, flags)
		a.addState(s)
	}

	numRules := int(r.next())
	a.ruleToStartState = make([]*RuleStartState, numRules)
	a.ruleToStopState = make([]*RuleStopState, numRules)
	for i := 0; i < numRules; i++ {
		startNum := int(r.next())
		stopNum := int(r.next())
		a.ruleToStartState[i] = a.GetState(startNum).(*RuleStartState)
		a.ruleToStopState[i] = a.GetState(stopNum).(*RuleStopState)
	}
	numModes := int(r.next())
	a.modeToStartState = make([]*TokensStartState, numModes)
	for i := 0; i < numModes; i++ {
		stateNum := int(r.next())
		a.modeToStartState[i] = a.GetState(stateNum).(*TokensStartState)
	}

	a.ruleToTokenType = make([]int, numRules)
	for i := 0; i < numRules; i++ {
		a.ruleToTokenType[i] = int(r.next())
	}

	numTransitionBlocks := int(r.next())
	for i := 0; i < numTransitionBlocks; i++ {
		fromState := int(r.next())
		count := int(r.next())
		for j := 0; j < count; j++ {
			kind := TransitionKind(r.next())
			targetState := int(r.next())
			arg1 := int(r.next())
			arg2 := int(r.next())
			arg3 := int(r.next())
			t := newTransitionOfKind(a, kind, targetState, arg1, arg2, arg3)
			a.GetState(fromState).AddTransition(t)
		}
	}

	numDecisions := int(r.next())
	for i := 0; i < numDecisions; i++ {
		stateNum := int(r.next())
		a.defineDecisionState(a.GetState(stateNum).(DecisionState))
	}

	return a
}

type wireReader struct {
	data []int32
	pos  int
}

func (r *wireReader) next() int32 {
	v := r.data[r.pos]
	r.pos++
	return v
}

func newATNStateOfKind(kind ATNStateKind) ATNState {
	switch kind {
	case ATNStateInvalid:
		return nil
	case ATNStateBasic:
		return NewBasicState()
	case ATNStateRuleStart:
		return NewRuleStartState()
	case ATNStateBlockStart:
		return NewBlockStartState()
	case ATNStatePlusBlockStart:
		return NewPlusBlockStartState()
	case ATNStateStarBlockStart:
		return NewStarBlockStartState()
	case ATNStateTokenStart:
		return NewTokensStartState()
	case ATNStateRuleStop:
		return NewRuleStopState()
	case ATNStateBlockEnd:
		return NewBlockEndState()
	case ATNStateStarLoopBack:
		return NewStarLoopbackState()
	case ATNStateStarLoopEntry:
		return NewStarLoopEntryState()
	case ATNStatePlusLoopBack:
		return NewPlusLoopbackState()
	case ATNStateLoopEnd:
		return NewLoopEndState()
	default:
		panic("ATNDeserializer: unknown ATN state kind")
	}
}

// applyStateFlags decodes the one flags word Serialize packs alongside
// each state: bit 0 means "isPrecedenceRule"/"isPrecedenceDecision"
// depending on kind, the only per-state boolean the graph needs.
func applyStateFlags(s ATNState, kind ATNStateKind, flags int) {
	bit0 := flags&1 != 0
	switch kind {
	case ATNStateRuleStart:
		s.(*RuleStartState).isPrecedenceRule = bit0
	case ATNStateStarLoopEntry:
		s.(*StarLoopEntryState).isPrecedenceDecision = bit0
	}
}

func newTransitionOfKind(a *ATN, kind TransitionKind, targetState, arg1, arg2, arg3 int) Transition {
	target := a.GetState(targetState)
	switch kind {
	case TransitionEpsilon:
		return NewEpsilonTransition(target, arg1)
	case TransitionRange:
		return NewRangeTransition(target, arg1, arg2)
	case TransitionRuleTransitionKind:
		return NewRuleTransition(target, arg1, arg2, a.GetState(arg3))
	case TransitionPredicate:
		return NewPredicateTransition(target, arg1, arg2, arg3 != 0)
	case TransitionAtom:
		return NewAtomTransition(target, arg1)
	case TransitionAction:
		return NewActionTransition(target, arg1, arg2, arg3 != 0)
	case TransitionSet:
		return NewSetTransition(target, NewIntervalSetFromRanges(Interval{arg1, arg2}))
	case TransitionNotSet:
		return NewNotSetTransition(target, NewIntervalSetFromRanges(Interval{arg1, arg2}))
	case TransitionWildcard:
		return NewWildcardTransition(target)
	case TransitionPrecedence:
		return NewPrecedenceTransition(target, arg1)
	default:
		panic("ATNDeserializer: unknown transition kind")
	}
}

// Serialize is ATNDeserializer's companion: it walks an already-built ATN
// (as produced directly via the state/transition constructors, the way
// every other package in this module builds one) back into the wire
// format Deserialize reads, so round-trip tests don't need a second,
// independently-written encoder to trust.
func Serialize(a *ATN) []int32 {
	var out []int32
	put := func(vs ...int) {
		for _, v := range vs {
			out = append(out, int32(v))
		}
	}

	put(atnWireVersion, a.grammarType, a.maxTokenType, len(a.states))
	for _, s := range a.states {
		if s == nil {
			put(int(ATNStateInvalid), 0, 0)
			continue
		}
		flags := 0
		switch st := s.(type) {
		case *RuleStartState:
			if st.isPrecedenceRule {
				flags = 1
			}
		case *StarLoopEntryState:
			if st.isPrecedenceDecision {
				flags = 1
			}
		}
		put(int(s.GetStateType()), s.GetRuleIndex(), flags)
	}

	put(len(a.ruleToStartState))
	for i := range a.ruleToStartState {
		put(a.ruleToStartState[i].GetStateNumber(), a.ruleToStopState[i].GetStateNumber())
	}

	put(len(a.modeToStartState))
	for _, ms := range a.modeToStartState {
		put(ms.GetStateNumber())
	}

	for i := range a.ruleToStartState {
		tt := TokenInvalidType
		if i < len(a.ruleToTokenType) {
			tt = a.ruleToTokenType[i]
		}
		put(tt)
	}

	type block struct {
		from int
		ts   []Transition
	}
	var blocks []block
	for i, s := range a.states {
		if s == nil || len(s.GetTransitions()) == 0 {
			continue
		}
		blocks = append(blocks, block{from: i, ts: s.GetTransitions()})
	}
	put(len(blocks))
	for _, b := range blocks {
		put(b.from, len(b.ts))
		for _, t := range b.ts {
			arg1, arg2, arg3 := transitionArgs(t)
			put(int(t.getSerializationType()), t.getTarget().GetStateNumber(), arg1, arg2, arg3)
		}
	}

	put(len(a.DecisionToState))
	for _, ds := range a.DecisionToState {
		put(ds.GetStateNumber())
	}

	return out
}

func transitionArgs(t Transition) (a1, a2, a3 int) {
	switch tt := t.(type) {
	case *EpsilonTransition:
		return tt.outermostPrecedenceReturn, 0, 0
	case *RangeTransition:
		return tt.Start, tt.Stop, 0
	case *RuleTransition:
		return tt.ruleIndex, tt.precedence, tt.followState.GetStateNumber()
	case *PredicateTransition:
		ctxDep := 0
		if tt.IsCtxDependent {
			ctxDep = 1
		}
		return tt.RuleIndex, tt.PredIndex, ctxDep
	case *AtomTransition:
		return tt.label, 0, 0
	case *ActionTransition:
		ctxDep := 0
		if tt.IsCtxDependent {
			ctxDep = 1
		}
		return tt.RuleIndex, tt.ActionIndex, ctxDep
	case *NotSetTransition:
		iv := tt.intervalSet.intervals[0]
		return iv.Start, iv.Stop, 0
	case *SetTransition:
		iv := tt.intervalSet.intervals[0]
		return iv.Start, iv.Stop, 0
	case *WildcardTransition:
		return 0, 0, 0
	case *PrecedenceTransition:
		return tt.precedence, 0, 0
	default:
		panic("Serialize: unknown transition kind")
	}
}
