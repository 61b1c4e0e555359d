// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"bytes"
	"fmt"
)

// DFASerializer renders a DFA as a human-readable edge listing, one line
// per transition, used by diagnostic tests and by implementers debugging
// a grammar's decision DFA rather than by anything on the hot path.
type DFASerializer struct {
	dfa                         *DFA
	literalNames, symbolicNames []string
}

func NewDFASerializer(dfa *DFA, literalNames, symbolicNames []string) *DFASerializer {
	return &DFASerializer{dfa: dfa, literalNames: literalNames, symbolicNames: symbolicNames}
}

func (s *DFASerializer) getEdgeLabel(symbol int) string {
	if symbol == 0 {
		return "EOF"
	}
	v := symbol - 1
	if s.literalNames != nil && v < len(s.literalNames) && s.literalNames[v] != "" {
		return s.literalNames[v]
	}
	if s.symbolicNames != nil && v < len(s.symbolicNames) && s.symbolicNames[v] != "" {
		return s.symbolicNames[v]
	}
	return fmt.Sprint(v)
}

func (s *DFASerializer) stateString(d *DFAState) string {
	prefix := "s"
	if d.isAcceptState {
		prefix = ":s"
	}
	label := fmt.Sprintf("%s%d", prefix, d.stateNumber)
	if d.isAcceptState {
		if len(d.predicates) > 0 {
			label += fmt.Sprintf("=>%v", d.predicates)
		} else {
			label += fmt.Sprintf("=>%d", d.prediction)
		}
	}
	return label
}

func (s *DFASerializer) String() string {
	var buf bytes.Buffer
	for _, d := range s.dfa.sortedStates() {
		d.edgeMu.RLock()
		edges := d.edges
		d.edgeMu.RUnlock()
		for symbolPlus1, target := range edges {
			if target == nil || target.stateNumber == -1 {
				continue
			}
			buf.WriteString(s.stateString(d))
			buf.WriteString("-")
			buf.WriteString(s.getEdgeLabel(symbolPlus1))
			buf.WriteString("->")
			buf.WriteString(s.stateString(target))
			buf.WriteString("\n")
		}
	}
	return buf.String()
}
