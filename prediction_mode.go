// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// PredictionMode selects how aggressively the full-context (LL) fallback
// reports ambiguity once SLL has escalated.
type PredictionMode int

const (
	// PredictionModeSLL never escalates to the full-context fallback: when
	// an SLL reach leaves more than one alt viable, computeTargetState makes
	// the state accept the lowest alt and reports no conflict or ambiguity.
	PredictionModeSLL PredictionMode = iota
	// PredictionModeLL reports a unique alt once the full-context alt-set
	// has settled to one member; otherwise reports ambiguity over
	// whatever alts remain.
	PredictionModeLL
	// PredictionModeLLExactAmbigDetection runs the same full-context loop
	// as PredictionModeLL; the only difference is that its ambiguity
	// reports carry exact=true. The loop does not go on closing over
	// lookahead until the alt set stops shrinking.
	PredictionModeLLExactAmbigDetection
)

// altSetsByState partitions configs into equivalence classes by
// (state, semanticContext) and returns, for each class, the set of
// alternatives present — the partition that both SLL conflict detection
// and LL exact-ambiguity detection operate over.
func altSetsByState(configs *ATNConfigSet) []*BitSet {
	byKey := make(map[configSetKey]*BitSet)
	var order []configSetKey
	for _, c := range configs.configs {
		key := configSetKey{state: c.state.GetStateNumber(), semHash: c.semanticContext.Hash()}
		bs, ok := byKey[key]
		if !ok {
			bs = NewBitSet()
			byKey[key] = bs
			order = append(order, key)
		}
		bs.Add(c.alt)
	}
	out := make([]*BitSet, len(order))
	for i, k := range order {
		out[i] = byKey[k]
	}
	return out
}

// getUniqueAlt returns the single alternative every config in the set
// agrees on, or ATNInvalidAltNumber if more than one alt is present.
func getUniqueAlt(configs *ATNConfigSet) int {
	alts := configs.GetAlts()
	if alts.Len() == 1 {
		return alts.Minimum()
	}
	return ATNInvalidAltNumber
}

// allSubsetsEqual reports whether every alt-set in altSets is identical
// to the first.
func allSubsetsEqual(altSets []*BitSet) bool {
	if len(altSets) == 0 {
		return true
	}
	first := altSets[0]
	for _, s := range altSets[1:] {
		if !s.Equals(first) {
			return false
		}
	}
	return true
}

// hasSLLConflictTerminatingPrediction implements the SLL conflict rule:
// if every (state, semCtx) equivalence class agrees on the exact same
// alt-set, and that set has more than one member, SLL cannot resolve the
// decision and must escalate to full-context LL. Returns the shared
// conflicting-alt set when it applies.
func hasSLLConflictTerminatingPrediction(configs *ATNConfigSet) (conflict bool, alts *BitSet) {
	if getUniqueAlt(configs) != ATNInvalidAltNumber {
		return false, nil
	}
	altSets := altSetsByState(configs)
	if !allSubsetsEqual(altSets) || len(altSets) == 0 {
		return false, nil
	}
	if altSets[0].Len() <= 1 {
		return false, nil
	}
	return true, altSets[0]
}

// resolvesToJustOneViableAlt returns the lowest-numbered alt across every
// config — the tie-break rule applied when an ambiguity cannot be
// avoided.
func resolvesToJustOneViableAlt(configs *ATNConfigSet) int {
	alts := configs.GetAlts()
	return alts.Minimum()
}

// llConflictingAlts applies the full-context LL rule set: a unique
// full-context alt means "no ambiguity, just context-sensitive";
// otherwise every distinct alt observed is reported as ambiguous.
func llConflictingAlts(configs *ATNConfigSet, mode PredictionMode) (unique int, ambiguousAlts *BitSet) {
	if u := getUniqueAlt(configs); u != ATNInvalidAltNumber {
		return u, nil
	}
	return ATNInvalidAltNumber, configs.GetAlts()
}

// allConfigsInRuleStopStates reports whether every config in the set sits
// at a RuleStopState — used to special-case EOF reach in computeReachSet.
func allConfigsInRuleStopStates(configs *ATNConfigSet) bool {
	for _, c := range configs.configs {
		if _, ok := c.state.(*RuleStopState); !ok {
			return false
		}
	}
	return true
}
