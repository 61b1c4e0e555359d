// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"bytes"
	"fmt"
	"sort"

	"golang.org/x/exp/slices"
)

// Interval is an inclusive range [Start, Stop] over the token/character
// alphabet. A single symbol a is represented as Interval{a, a}.
type Interval struct {
	Start, Stop int
}

func NewInterval(start, stop int) Interval {
	return Interval{Start: start, Stop: stop}
}

func (i Interval) Length() int {
	return i.Stop - i.Start + 1
}

func (i Interval) String() string {
	if i.Start == i.Stop {
		return fmt.Sprint(i.Start)
	}
	return fmt.Sprintf("%d..%d", i.Start, i.Stop)
}

// IntervalSet is an ordered, coalesced set of Intervals over the signed
// integer alphabet used for tokens (and, in the lexer, Unicode code points).
// Intervals are always kept sorted and non-adjacent/non-overlapping once
// ReadOnly is set by the owner of a frozen set (e.g. a transition's label).
type IntervalSet struct {
	intervals []Interval
	readOnly  bool
}

func NewIntervalSet() *IntervalSet {
	return &IntervalSet{}
}

// NewIntervalSetFromRanges builds a set from disjoint or overlapping
// int ranges, normalizing on construction.
func NewIntervalSetFromRanges(ranges ...Interval) *IntervalSet {
	s := NewIntervalSet()
	for _, r := range ranges {
		s.addRange(r.Start, r.Stop)
	}
	return s
}

func (s *IntervalSet) clone() *IntervalSet {
	n := NewIntervalSet()
	n.intervals = make([]Interval, len(s.intervals))
	copy(n.intervals, s.intervals)
	return n
}

func (s *IntervalSet) first() int {
	if len(s.intervals) == 0 {
		return TokenInvalidType
	}
	return s.intervals[0].Start
}

// AddOne adds a single symbol to the set, merging with adjacent intervals.
func (s *IntervalSet) AddOne(v int) {
	s.addRange(v, v)
}

func (s *IntervalSet) addRange(l, h int) {
	if s.readOnly {
		panic("IllegalState: cannot modify a read-only IntervalSet")
	}
	if h < l {
		return
	}
	// Binary search for insertion point.
	idx := sort.Search(len(s.intervals), func(i int) bool {
		return s.intervals[i].Stop >= l-1
	})
	if idx == len(s.intervals) {
		s.intervals = append(s.intervals, Interval{l, h})
		return
	}
	existing := s.intervals[idx]
	if existing.Start > h+1 {
		s.intervals = slices.Insert(s.intervals, idx, Interval{l, h})
		return
	}
	// Overlaps or touches existing[idx]; merge, then absorb any further
	// intervals that the merged range now swallows.
	merged := Interval{Start: min(l, existing.Start), Stop: max(h, existing.Stop)}
	j := idx + 1
	for j < len(s.intervals) && s.intervals[j].Start <= merged.Stop+1 {
		if s.intervals[j].Stop > merged.Stop {
			merged.Stop = s.intervals[j].Stop
		}
		j++
	}
	s.intervals = append(s.intervals[:idx], append([]Interval{merged}, s.intervals[j:]...)...)
}

// AddRange adds an inclusive [l, h] range.
func (s *IntervalSet) AddRange(l, h int) {
	s.addRange(l, h)
}

// AddSet unions another set's intervals into this one.
func (s *IntervalSet) AddSet(other *IntervalSet) *IntervalSet {
	if other == nil {
		return s
	}
	for _, iv := range other.intervals {
		s.addRange(iv.Start, iv.Stop)
	}
	return s
}

func (s *IntervalSet) addSet(other *IntervalSet) *IntervalSet {
	return s.AddSet(other)
}

// removeOne removes a single symbol, splitting the interval that contains
// it if necessary.
func (s *IntervalSet) removeOne(v int) {
	if s.readOnly {
		panic("IllegalState: cannot modify a read-only IntervalSet")
	}
	for i, iv := range s.intervals {
		if v < iv.Start || v > iv.Stop {
			continue
		}
		switch {
		case iv.Start == iv.Stop:
			s.intervals = append(s.intervals[:i], s.intervals[i+1:]...)
		case v == iv.Start:
			s.intervals[i].Start++
		case v == iv.Stop:
			s.intervals[i].Stop--
		default:
			right := Interval{v + 1, iv.Stop}
			s.intervals[i].Stop = v - 1
			s.intervals = append(s.intervals[:i+1], append([]Interval{right}, s.intervals[i+1:]...)...)
		}
		return
	}
}

func (s *IntervalSet) Contains(v int) bool {
	idx := sort.Search(len(s.intervals), func(i int) bool {
		return s.intervals[i].Stop >= v
	})
	if idx == len(s.intervals) {
		return false
	}
	return s.intervals[idx].Start <= v && v <= s.intervals[idx].Stop
}

func (s *IntervalSet) Len() int {
	n := 0
	for _, iv := range s.intervals {
		n += iv.Length()
	}
	return n
}

func (s *IntervalSet) IsEmpty() bool {
	return len(s.intervals) == 0
}

// And returns the intersection of s and other.
func (s *IntervalSet) And(other *IntervalSet) *IntervalSet {
	result := NewIntervalSet()
	if other == nil {
		return result
	}
	i, j := 0, 0
	for i < len(s.intervals) && j < len(other.intervals) {
		a, b := s.intervals[i], other.intervals[j]
		lo := max(a.Start, b.Start)
		hi := min(a.Stop, b.Stop)
		if lo <= hi {
			result.addRange(lo, hi)
		}
		if a.Stop < b.Stop {
			i++
		} else {
			j++
		}
	}
	return result
}

// Subtract returns s minus other.
func (s *IntervalSet) Subtract(other *IntervalSet) *IntervalSet {
	result := NewIntervalSet()
	if other == nil || other.IsEmpty() {
		result.AddSet(s)
		return result
	}
	for _, a := range s.intervals {
		lo := a.Start
		for _, b := range other.intervals {
			if b.Stop < lo || b.Start > a.Stop {
				continue
			}
			if b.Start > lo {
				result.addRange(lo, b.Start-1)
			}
			if b.Stop+1 > lo {
				lo = b.Stop + 1
			}
			if lo > a.Stop {
				break
			}
		}
		if lo <= a.Stop {
			result.addRange(lo, a.Stop)
		}
	}
	return result
}

// Complement returns (minElem..maxElem) minus s.
func (s *IntervalSet) Complement(minElem, maxElem int) *IntervalSet {
	return NewIntervalSetFromRanges(Interval{minElem, maxElem}).Subtract(s)
}

func (s *IntervalSet) Equals(other *IntervalSet) bool {
	if other == nil {
		return len(s.intervals) == 0
	}
	return slices.Equal(s.intervals, other.intervals)
}

// ToList returns every individual symbol in the set, in ascending order.
func (s *IntervalSet) ToList() []int {
	var out []int
	for _, iv := range s.intervals {
		for v := iv.Start; v <= iv.Stop; v++ {
			out = append(out, v)
		}
	}
	return out
}

func (s *IntervalSet) Intervals() []Interval {
	return s.intervals
}

func (s *IntervalSet) String() string {
	return s.StringVerbose(nil, nil, false)
}

// StringVerbose renders the set using literal/symbolic names when
// provided.
func (s *IntervalSet) StringVerbose(literalNames, symbolicNames []string, elemsAreChar bool) string {
	if len(s.intervals) == 0 {
		return "{}"
	}
	var buf bytes.Buffer
	multi := len(s.intervals) > 1 || s.intervals[0].Length() > 1
	if multi {
		buf.WriteByte('{')
	}
	first := true
	for _, iv := range s.intervals {
		for v := iv.Start; v <= iv.Stop; v++ {
			if !first {
				buf.WriteString(", ")
			}
			first = false
			buf.WriteString(s.elementName(literalNames, symbolicNames, v, elemsAreChar))
		}
	}
	if multi {
		buf.WriteByte('}')
	}
	return buf.String()
}

func (s *IntervalSet) elementName(literalNames, symbolicNames []string, v int, elemsAreChar bool) string {
	if v == TokenEOF {
		return "<EOF>"
	}
	if v == TokenEpsilon {
		return "<EPSILON>"
	}
	if elemsAreChar {
		return fmt.Sprintf("'%c'", rune(v))
	}
	if v < len(literalNames) && literalNames[v] != "" {
		return literalNames[v]
	}
	if v < len(symbolicNames) && symbolicNames[v] != "" {
		return symbolicNames[v]
	}
	return fmt.Sprint(v)
}
