// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// LexerActionKind tags the variant of a LexerAction, mirroring
// TransitionKind/ATNStateKind's tagged-union dispatch style.
type LexerActionKind int

const (
	LexerActionTypeChannel LexerActionKind = iota
	LexerActionTypeCustom
	LexerActionTypeMode
	LexerActionTypeMore
	LexerActionTypePopMode
	LexerActionTypePushMode
	LexerActionTypeSkip
	LexerActionTypeType
	LexerActionTypeModeType // reserved; unused by any built-in action today
)

// LexerAction is one grammar-authored lexer command (-> skip, -> more,
// -> pushMode(X), -> type(T), -> channel(C), a custom {action} block).
// isPositionDependent distinguishes commands whose effect depends on
// where in the matched text they fire (custom actions) from ones that do
// not, which is what lets the simulator share DFA states across tokens of
// different lengths for the latter.
type LexerAction interface {
	getActionType() LexerActionKind
	getIsPositionDependent() bool
	execute(lexer *BaseLexer)
	Hash() int
	Equals(LexerAction) bool
}

type BaseLexerAction struct {
	actionType          LexerActionKind
	isPositionDependent bool
}

func (a *BaseLexerAction) getActionType() LexerActionKind { return a.actionType }
func (a *BaseLexerAction) getIsPositionDependent() bool    { return a.isPositionDependent }
func (a *BaseLexerAction) execute(*BaseLexer)              {}
func (a *BaseLexerAction) Hash() int                       { return int(a.actionType) }

type LexerSkipAction struct{ BaseLexerAction }

var LexerSkipActionINSTANCE = &LexerSkipAction{BaseLexerAction{actionType: LexerActionTypeSkip}}

func (a *LexerSkipAction) execute(lexer *BaseLexer) { lexer.Skip() }
func (a *LexerSkipAction) Equals(o LexerAction) bool { _, ok := o.(*LexerSkipAction); return ok }

type LexerMoreAction struct{ BaseLexerAction }

var LexerMoreActionINSTANCE = &LexerMoreAction{BaseLexerAction{actionType: LexerActionTypeMore}}

func (a *LexerMoreAction) execute(lexer *BaseLexer) { lexer.More() }
func (a *LexerMoreAction) Equals(o LexerAction) bool { _, ok := o.(*LexerMoreAction); return ok }

type LexerPopModeAction struct{ BaseLexerAction }

var LexerPopModeActionINSTANCE = &LexerPopModeAction{BaseLexerAction{actionType: LexerActionTypePopMode}}

func (a *LexerPopModeAction) execute(lexer *BaseLexer) { lexer.PopMode() }
func (a *LexerPopModeAction) Equals(o LexerAction) bool {
	_, ok := o.(*LexerPopModeAction)
	return ok
}

type LexerPushModeAction struct {
	BaseLexerAction
	Mode int
}

func NewLexerPushModeAction(mode int) *LexerPushModeAction {
	return &LexerPushModeAction{BaseLexerAction: BaseLexerAction{actionType: LexerActionTypePushMode}, Mode: mode}
}
func (a *LexerPushModeAction) execute(lexer *BaseLexer) { lexer.PushMode(a.Mode) }
func (a *LexerPushModeAction) Hash() int {
	h := murmurInit(1)
	h = murmurUpdate(h, int(a.actionType))
	h = murmurUpdate(h, a.Mode)
	return murmurFinish(h, 2)
}
func (a *LexerPushModeAction) Equals(o LexerAction) bool {
	other, ok := o.(*LexerPushModeAction)
	return ok && a.Mode == other.Mode
}

type LexerModeAction struct {
	BaseLexerAction
	Mode int
}

func NewLexerModeAction(mode int) *LexerModeAction {
	return &LexerModeAction{BaseLexerAction: BaseLexerAction{actionType: LexerActionTypeMode}, Mode: mode}
}
func (a *LexerModeAction) execute(lexer *BaseLexer) { lexer.SetMode(a.Mode) }
func (a *LexerModeAction) Hash() int {
	h := murmurInit(1)
	h = murmurUpdate(h, int(a.actionType))
	h = murmurUpdate(h, a.Mode)
	return murmurFinish(h, 2)
}
func (a *LexerModeAction) Equals(o LexerAction) bool {
	other, ok := o.(*LexerModeAction)
	return ok && a.Mode == other.Mode
}

type LexerTypeAction struct {
	BaseLexerAction
	TokenType int
}

func NewLexerTypeAction(tokenType int) *LexerTypeAction {
	return &LexerTypeAction{BaseLexerAction: BaseLexerAction{actionType: LexerActionTypeType}, TokenType: tokenType}
}
func (a *LexerTypeAction) execute(lexer *BaseLexer) { lexer.SetType(a.TokenType) }
func (a *LexerTypeAction) Hash() int {
	h := murmurInit(1)
	h = murmurUpdate(h, int(a.actionType))
	h = murmurUpdate(h, a.TokenType)
	return murmurFinish(h, 2)
}
func (a *LexerTypeAction) Equals(o LexerAction) bool {
	other, ok := o.(*LexerTypeAction)
	return ok && a.TokenType == other.TokenType
}

type LexerChannelAction struct {
	BaseLexerAction
	Channel int
}

func NewLexerChannelAction(channel int) *LexerChannelAction {
	return &LexerChannelAction{BaseLexerAction: BaseLexerAction{actionType: LexerActionTypeChannel}, Channel: channel}
}
func (a *LexerChannelAction) execute(lexer *BaseLexer) { lexer.SetChannel(a.Channel) }
func (a *LexerChannelAction) Hash() int {
	h := murmurInit(1)
	h = murmurUpdate(h, int(a.actionType))
	h = murmurUpdate(h, a.Channel)
	return murmurFinish(h, 2)
}
func (a *LexerChannelAction) Equals(o LexerAction) bool {
	other, ok := o.(*LexerChannelAction)
	return ok && a.Channel == other.Channel
}

// LexerCustomAction invokes a generated lexer's Action(ruleIndex,
// actionIndex) override; isPositionDependent is always true since the
// side effect (arbitrary user code) cannot be assumed offset-independent.
type LexerCustomAction struct {
	BaseLexerAction
	RuleIndex, ActionIndex int
}

func NewLexerCustomAction(ruleIndex, actionIndex int) *LexerCustomAction {
	return &LexerCustomAction{
		BaseLexerAction: BaseLexerAction{actionType: LexerActionTypeCustom, isPositionDependent: true},
		RuleIndex:       ruleIndex, ActionIndex: actionIndex,
	}
}
func (a *LexerCustomAction) execute(lexer *BaseLexer) { lexer.Action(nil, a.RuleIndex, a.ActionIndex) }
func (a *LexerCustomAction) Hash() int {
	h := murmurInit(1)
	h = murmurUpdate(h, int(a.actionType))
	h = murmurUpdate(h, a.RuleIndex)
	h = murmurUpdate(h, a.ActionIndex)
	return murmurFinish(h, 3)
}
func (a *LexerCustomAction) Equals(o LexerAction) bool {
	other, ok := o.(*LexerCustomAction)
	return ok && a.RuleIndex == other.RuleIndex && a.ActionIndex == other.ActionIndex
}

// LexerIndexedCustomAction wraps a position-dependent action with an
// offset relative to the token's start, so the wrapped action itself can
// stay state-independent and DFA states can still be shared across tokens
// of the same length.
type LexerIndexedCustomAction struct {
	BaseLexerAction
	Offset int
	Action LexerAction
}

func NewLexerIndexedCustomAction(offset int, action LexerAction) *LexerIndexedCustomAction {
	return &LexerIndexedCustomAction{
		BaseLexerAction: BaseLexerAction{actionType: action.getActionType(), isPositionDependent: true},
		Offset:          offset,
		Action:          action,
	}
}
func (a *LexerIndexedCustomAction) execute(lexer *BaseLexer) { a.Action.execute(lexer) }
func (a *LexerIndexedCustomAction) Hash() int {
	h := murmurInit(1)
	h = murmurUpdate(h, a.Offset)
	h = murmurUpdate(h, a.Action.Hash())
	return murmurFinish(h, 2)
}
func (a *LexerIndexedCustomAction) Equals(o LexerAction) bool {
	other, ok := o.(*LexerIndexedCustomAction)
	return ok && a.Offset == other.Offset && a.Action.Equals(other.Action)
}
