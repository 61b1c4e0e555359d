// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// ATNConfigSet is an ordered collection of ATNConfigs with merge-on-insert
// semantics: adding a config that is equal-for-the-set to one already
// present merges their prediction contexts instead of appending a
// duplicate, which is what keeps closure/reach fixed points finite.
//
// A set becomes read-only the moment a DFAState adopts it; further
// Add calls panic, and its lookup index is discarded to save memory since
// a frozen set's membership never changes again.
type ATNConfigSet struct {
	configs []*ATNConfig
	lookup  map[configSetKey]int // key -> index in configs, nil once frozen

	fullCtx             bool
	readOnly            bool
	hasSemanticContext  bool
	dipsIntoOuterContext bool
	uniqueAlt           int
	conflictingAlts     *BitSet

	cachedHash int
	hashSet    bool
}

func NewATNConfigSet(fullCtx bool) *ATNConfigSet {
	return newATNConfigSet2(fullCtx)
}

func newATNConfigSet2(fullCtx bool) *ATNConfigSet {
	return &ATNConfigSet{
		fullCtx: fullCtx,
		lookup:  make(map[configSetKey]int),
		uniqueAlt: ATNInvalidAltNumber,
	}
}

// add inserts config, merging contexts with an existing equal-for-the-set
// member if one exists. mergeCache is the per-predictATN-call memoization
// table threaded through to MergePredictionContexts.
func (s *ATNConfigSet) add(config *ATNConfig, mergeCache *PredictionContextMergeCache) bool {
	if s.readOnly {
		panic("IllegalState: cannot modify a read-only ATNConfigSet")
	}
	if config.semanticContext != SemanticContextNone {
		s.hasSemanticContext = true
	}
	if config.GetReachesIntoOuterContext() > 0 {
		s.dipsIntoOuterContext = true
	}

	key := config.setKey()
	if idx, ok := s.lookup[key]; ok {
		existing := s.configs[idx]
		existing.precedenceFilterSuppressed = existing.precedenceFilterSuppressed || config.precedenceFilterSuppressed
		merged := MergePredictionContexts(existing.context, config.context, !s.fullCtx, mergeCache)
		existing.context = merged
		if config.GetReachesIntoOuterContext() > existing.GetReachesIntoOuterContext() {
			existing.reachesIntoOuterContext = config.GetReachesIntoOuterContext()
		}
		return false
	}

	s.lookup[key] = len(s.configs)
	s.configs = append(s.configs, config)
	return true
}

func (s *ATNConfigSet) containsFast(config *ATNConfig) bool {
	_, ok := s.lookup[config.setKey()]
	return ok
}

func (s *ATNConfigSet) GetItems() []*ATNConfig { return s.configs }

func (s *ATNConfigSet) Length() int { return len(s.configs) }

func (s *ATNConfigSet) IsEmpty() bool { return len(s.configs) == 0 }

// freeze marks the set read-only and drops its lookup index; called once
// when a DFAState adopts this set as its characterizing configuration.
func (s *ATNConfigSet) freeze() {
	s.readOnly = true
	s.lookup = nil
}

func (s *ATNConfigSet) IsReadOnly() bool { return s.readOnly }

// GetAlts returns the set of alternative numbers represented in this
// config set.
func (s *ATNConfigSet) GetAlts() *BitSet {
	r := NewBitSet()
	for _, c := range s.configs {
		r.Add(c.alt)
	}
	return r
}

// Equals compares two config sets by ordered content and summary flags:
// two sets are equal iff their ordered config lists and summary flags
// are equal, which is what gives DFA canonicalization its identity test.
func (s *ATNConfigSet) Equals(other *ATNConfigSet) bool {
	if other == nil {
		return false
	}
	if len(s.configs) != len(other.configs) {
		return false
	}
	if s.fullCtx != other.fullCtx || s.uniqueAlt != other.uniqueAlt {
		return false
	}
	for i, c := range s.configs {
		if !c.Equals(other.configs[i]) {
			return false
		}
	}
	return true
}

func (s *ATNConfigSet) Hash() int {
	if s.hashSet {
		return s.cachedHash
	}
	h := murmurInit(1)
	for _, c := range s.configs {
		h = murmurUpdate(h, c.Hash())
	}
	h = murmurFinish(h, len(s.configs))
	if s.readOnly {
		s.cachedHash = h
		s.hashSet = true
	}
	return h
}

func (s *ATNConfigSet) String() string {
	out := "["
	for i, c := range s.configs {
		if i > 0 {
			out += ", "
		}
		out += c.String()
	}
	return out + "]"
}
