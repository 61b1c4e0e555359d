// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// LexerActionExecutor represents the ordered list of LexerActions that
// must fire when a lexer accept state is reached. Position-dependent
// actions are wrapped in a LexerIndexedCustomAction carrying their offset
// from the token's start (the lexer's closure does this as it appends
// each one; fixOffsetBeforeMatch does it for a whole executor) so the
// wrapped action can still be compared
// structurally and shared across DFA states for tokens of equal length.
type LexerActionExecutor struct {
	lexerActions []LexerAction
	cachedHash   int
}

func NewLexerActionExecutor(actions []LexerAction) *LexerActionExecutor {
	e := &LexerActionExecutor{lexerActions: actions}
	h := murmurInit(1)
	for _, a := range actions {
		h = murmurUpdate(h, a.Hash())
	}
	e.cachedHash = murmurFinish(h, len(actions))
	return e
}

// LexerActionExecutorAppend returns a new executor with action appended,
// used while a lexer rule's DFA path accumulates multiple -> commands.
func LexerActionExecutorAppend(executor *LexerActionExecutor, action LexerAction) *LexerActionExecutor {
	if executor == nil {
		return NewLexerActionExecutor([]LexerAction{action})
	}
	actions := make([]LexerAction, len(executor.lexerActions)+1)
	copy(actions, executor.lexerActions)
	actions[len(executor.lexerActions)] = action
	return NewLexerActionExecutor(actions)
}

// fixOffsetBeforeMatch rewrites every position-dependent action to carry
// its offset relative to the token start, so the same executor instance
// can be reused no matter how far into the input the eventual accept
// state is reached.
func (e *LexerActionExecutor) fixOffsetBeforeMatch(offset int) *LexerActionExecutor {
	var updated []LexerAction
	for i, a := range e.lexerActions {
		if a.getIsPositionDependent() {
			if _, ok := a.(*LexerIndexedCustomAction); !ok {
				if updated == nil {
					updated = make([]LexerAction, len(e.lexerActions))
					copy(updated, e.lexerActions)
				}
				updated[i] = NewLexerIndexedCustomAction(offset, a)
			}
		}
	}
	if updated == nil {
		return e
	}
	return NewLexerActionExecutor(updated)
}

// execute runs every action against lexer, seeking the input back to
// startIndex before position-dependent actions fire so that the
// fixed-up offset lines up with the actual match, then restoring the
// caller's position afterward.
func (e *LexerActionExecutor) execute(lexer *BaseLexer, input CharStream, startIndex int) {
	requiresSeek := false
	stopIndex := input.Index()
	defer func() {
		if requiresSeek {
			input.Seek(stopIndex)
		}
	}()
	for _, a := range e.lexerActions {
		if ica, ok := a.(*LexerIndexedCustomAction); ok {
			offset := ica.Offset
			input.Seek(startIndex + offset)
			requiresSeek = startIndex+offset != stopIndex
			ica.Action.execute(lexer)
		} else {
			a.execute(lexer)
		}
	}
}

func (e *LexerActionExecutor) Hash() int { return e.cachedHash }

func (e *LexerActionExecutor) Equals(other *LexerActionExecutor) bool {
	if other == nil {
		return false
	}
	if len(e.lexerActions) != len(other.lexerActions) {
		return false
	}
	for i, a := range e.lexerActions {
		if !a.Equals(other.lexerActions[i]) {
			return false
		}
	}
	return true
}
