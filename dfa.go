// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"sort"
	"sync"
	"sync/atomic"

	"golang.org/x/exp/maps"
)

// DFA is the lazily-built cache of DFAStates for one decision. It is
// shared by every parser instance predicting against the same grammar:
// state lookup and insertion take statesMu (read and write lock), edge
// reads and writes take the DFAState's edgeMu, and s0 is an atomic
// pointer read without a lock and swapped on install.
//
// A precedence DFA (one attached to a left-recursive rule's
// StarLoopEntryState) is special: its s0 is never stored in `states`.
// Instead s0Preceds holds one sub-start-state per precedence level
// encountered so far, populated lazily by ParserATNSimulator as each new
// precedence is first seen.
type DFA struct {
	atnStartState DecisionState
	decision      int

	statesMu sync.RWMutex
	states   map[int][]*DFAState // bucketed by configset hash; Equals breaks ties within a bucket
	nextID   int32

	s0            atomic.Pointer[DFAState]
	precedenceDfa bool
	s0PrecedsMu   sync.Mutex
	s0Preceds     map[int]*DFAState
}

// NewDFA builds an (initially empty) DFA for one decision state.
// precedenceDfa is derived directly from the ATN start state's own flag
// rather than through a local variable that could shadow it.
func NewDFA(atnStartState DecisionState, decision int) *DFA {
	isPrecedence := false
	if sles, ok := atnStartState.(*StarLoopEntryState); ok {
		isPrecedence = sles.isPrecedenceDecision
	}
	d := &DFA{
		atnStartState: atnStartState,
		decision:      decision,
		states:        make(map[int][]*DFAState),
		precedenceDfa: isPrecedence,
	}
	if isPrecedence {
		d.s0Preceds = make(map[int]*DFAState)
		sentinel := NewDFAState(-1, newATNConfigSet2(false))
		sentinel.isAcceptState = false
		d.s0.Store(sentinel)
	}
	return d
}

func (d *DFA) IsPrecedenceDfa() bool { return d.precedenceDfa }

func (d *DFA) getS0() *DFAState { return d.s0.Load() }

func (d *DFA) setS0(s *DFAState) { d.s0.Store(s) }

// getPrecedenceStartState returns the sub-start-state installed for the
// given precedence, or nil if none has been computed yet.
func (d *DFA) getPrecedenceStartState(precedence int) *DFAState {
	d.s0PrecedsMu.Lock()
	defer d.s0PrecedsMu.Unlock()
	return d.s0Preceds[precedence]
}

func (d *DFA) setPrecedenceStartState(precedence int, state *DFAState) {
	if !d.precedenceDfa {
		panic("IllegalState: not a precedence DFA")
	}
	d.s0PrecedsMu.Lock()
	defer d.s0PrecedsMu.Unlock()
	if d.s0Preceds == nil {
		d.s0Preceds = make(map[int]*DFAState)
	}
	d.s0Preceds[precedence] = state
}

// addState canonicalizes target against the DFA's state table: if an
// equal (by config-set equality) state already exists it is returned
// instead, otherwise target is inserted and returned. Two distinct config
// sets can share a hash, so each hash bucket holds every state stored
// under it and is scanned with Equals rather than trusting the hash alone
// -- a collision must never silently evict a previously canonicalized
// state.
func (d *DFA) addState(target *DFAState) *DFAState {
	h := target.configs.Hash()

	d.statesMu.RLock()
	for _, existing := range d.states[h] {
		if existing.Equals(target) {
			d.statesMu.RUnlock()
			return existing
		}
	}
	d.statesMu.RUnlock()

	d.statesMu.Lock()
	defer d.statesMu.Unlock()
	for _, existing := range d.states[h] {
		if existing.Equals(target) {
			return existing
		}
	}
	target.configs.freeze()
	target.stateNumber = int(atomic.AddInt32(&d.nextID, 1)) - 1
	d.states[h] = append(d.states[h], target)
	return target
}

// sortedStates returns every stored DFAState ordered by insertion id.
func (d *DFA) sortedStates() []*DFAState {
	d.statesMu.RLock()
	defer d.statesMu.RUnlock()
	var out []*DFAState
	for _, bucket := range maps.Values(d.states) {
		out = append(out, bucket...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].stateNumber < out[j].stateNumber })
	return out
}

func (d *DFA) numStates() int {
	d.statesMu.RLock()
	defer d.statesMu.RUnlock()
	n := 0
	for _, bucket := range d.states {
		n += len(bucket)
	}
	return n
}

// String renders a human-readable edge listing for diagnostics.
func (d *DFA) String(literalNames, symbolicNames []string) string {
	if d.getS0() == nil {
		return ""
	}
	return NewDFASerializer(d, literalNames, symbolicNames).String()
}
