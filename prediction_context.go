// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

import (
	"fmt"
	"math"
	"sync"

	"golang.org/x/exp/slices"
)

// BasePredictionContextEmptyReturnState is the sentinel invoking-state
// value meaning "returned to the caller of the outermost rule" — i.e. this
// path has already popped off the top of the simulated call stack.
const BasePredictionContextEmptyReturnState = math.MaxInt32

// PredictionContext is a node in the hash-consed DAG of possible ATN
// return stacks reachable from the current configuration. It is immutable
// once constructed; closure creates singleton nodes as it pushes rule
// calls, Merge combines nodes, and Merge is memoized per predictATN
// invocation to keep the DAG finite.
type PredictionContext interface {
	GetParent(index int) PredictionContext
	getReturnState(index int) int
	length() int
	isEmpty() bool
	hasEmptyPath() bool
	Hash() int
	Equals(PredictionContext) bool
	String() string
}

type basePredictionContext struct {
	cachedHash int
}

func (b *basePredictionContext) Hash() int { return b.cachedHash }

func calculateEmptyHash() int {
	return murmurInit(1)
}

func calculateSingletonHash(parent PredictionContext, returnState int) int {
	h := murmurInit(1)
	if parent != nil {
		h = murmurUpdate(h, parent.Hash())
	} else {
		h = murmurUpdate(h, 0)
	}
	h = murmurUpdate(h, returnState)
	return murmurFinish(h, 2)
}

func calculateArrayHash(parents []PredictionContext, returnStates []int) int {
	h := murmurInit(1)
	for _, p := range parents {
		if p != nil {
			h = murmurUpdate(h, p.Hash())
		} else {
			h = murmurUpdate(h, 0)
		}
	}
	for _, r := range returnStates {
		h = murmurUpdate(h, r)
	}
	return murmurFinish(h, len(parents)+len(returnStates))
}

// emptyPredictionContext is the unique "top of stack" sentinel: there is
// no caller at all. BasePredictionContextEMPTY is the single instance.
type emptyPredictionContext struct{ basePredictionContext }

var BasePredictionContextEMPTY PredictionContext = &emptyPredictionContext{basePredictionContext{cachedHash: calculateEmptyHash()}}

func (e *emptyPredictionContext) GetParent(int) PredictionContext { return nil }
func (e *emptyPredictionContext) getReturnState(int) int          { return BasePredictionContextEmptyReturnState }
func (e *emptyPredictionContext) length() int                     { return 1 }
func (e *emptyPredictionContext) isEmpty() bool                    { return true }
func (e *emptyPredictionContext) hasEmptyPath() bool               { return true }
func (e *emptyPredictionContext) Equals(o PredictionContext) bool {
	_, ok := o.(*emptyPredictionContext)
	return ok
}
func (e *emptyPredictionContext) String() string { return "$" }

// SingletonPredictionContext is a single (parent, invokingState) pair.
type SingletonPredictionContext struct {
	basePredictionContext
	parentCtx   PredictionContext
	returnState int
}

func NewSingletonPredictionContext(parent PredictionContext, returnState int) *SingletonPredictionContext {
	return &SingletonPredictionContext{
		basePredictionContext: basePredictionContext{cachedHash: calculateSingletonHash(parent, returnState)},
		parentCtx:             parent,
		returnState:           returnState,
	}
}

// SingletonBasePredictionContextCreate collapses the degenerate case (nil
// parent, sentinel return state) to the shared EMPTY instance.
func SingletonBasePredictionContextCreate(parent PredictionContext, returnState int) PredictionContext {
	if returnState == BasePredictionContextEmptyReturnState && parent == nil {
		return BasePredictionContextEMPTY
	}
	return NewSingletonPredictionContext(parent, returnState)
}

func (s *SingletonPredictionContext) GetParent(int) PredictionContext { return s.parentCtx }
func (s *SingletonPredictionContext) getReturnState(int) int          { return s.returnState }
func (s *SingletonPredictionContext) length() int                     { return 1 }
func (s *SingletonPredictionContext) isEmpty() bool                    { return s.parentCtx == nil }
func (s *SingletonPredictionContext) hasEmptyPath() bool {
	return s.returnState == BasePredictionContextEmptyReturnState
}
func (s *SingletonPredictionContext) Equals(o PredictionContext) bool {
	other, ok := o.(*SingletonPredictionContext)
	if !ok {
		return false
	}
	if s.returnState != other.returnState {
		return false
	}
	if s.parentCtx == nil {
		return other.parentCtx == nil
	}
	return s.parentCtx.Equals(other.parentCtx)
}
func (s *SingletonPredictionContext) String() string {
	var up string
	if s.parentCtx != nil {
		up = s.parentCtx.String()
	}
	if s.returnState == BasePredictionContextEmptyReturnState {
		if up == "" {
			return "$"
		}
		return up
	}
	return fmt.Sprintf("%s %d", up, s.returnState)
}

// ArrayPredictionContext represents a set of (parent, invokingState) pairs
// reached along different call paths, kept as parallel slices sorted by
// invokingState.
type ArrayPredictionContext struct {
	basePredictionContext
	parents      []PredictionContext
	returnStates []int
}

func NewArrayPredictionContext(parents []PredictionContext, returnStates []int) *ArrayPredictionContext {
	return &ArrayPredictionContext{
		basePredictionContext: basePredictionContext{cachedHash: calculateArrayHash(parents, returnStates)},
		parents:               parents,
		returnStates:          returnStates,
	}
}

func (a *ArrayPredictionContext) GetParent(i int) PredictionContext { return a.parents[i] }
func (a *ArrayPredictionContext) getReturnState(i int) int          { return a.returnStates[i] }
func (a *ArrayPredictionContext) length() int                       { return len(a.returnStates) }
func (a *ArrayPredictionContext) isEmpty() bool {
	return len(a.returnStates) == 1 && a.returnStates[0] == BasePredictionContextEmptyReturnState
}
func (a *ArrayPredictionContext) hasEmptyPath() bool {
	return a.getReturnState(a.length()-1) == BasePredictionContextEmptyReturnState
}
func (a *ArrayPredictionContext) Equals(o PredictionContext) bool {
	other, ok := o.(*ArrayPredictionContext)
	if !ok {
		return false
	}
	if !slices.Equal(a.returnStates, other.returnStates) {
		return false
	}
	if len(a.parents) != len(other.parents) {
		return false
	}
	for i := range a.parents {
		if (a.parents[i] == nil) != (other.parents[i] == nil) {
			return false
		}
		if a.parents[i] != nil && !a.parents[i].Equals(other.parents[i]) {
			return false
		}
	}
	return true
}
func (a *ArrayPredictionContext) String() string {
	s := "["
	for i, rs := range a.returnStates {
		if i > 0 {
			s += ", "
		}
		if rs == BasePredictionContextEmptyReturnState {
			s += "$"
			continue
		}
		s += fmt.Sprint(rs)
		if a.parents[i] != nil {
			s += " " + a.parents[i].String()
		}
	}
	return s + "]"
}

// predictionContextFromRuleContext builds the chain of singleton contexts
// that corresponds to an actual live parser call stack, stopping at the
// outermost (empty) context.
func predictionContextFromRuleContext(atn *ATN, outerContext RuleContext) PredictionContext {
	if outerContext == nil {
		outerContext = RuleContextEmpty
	}
	if outerContext.GetParent() == nil || outerContext == RuleContextEmpty {
		return BasePredictionContextEMPTY
	}
	parent := predictionContextFromRuleContext(atn, outerContext.GetParent().(RuleContext))
	state := atn.GetState(outerContext.GetInvokingState())
	transition := state.GetTransitions()[0]
	return SingletonBasePredictionContextCreate(parent, transition.(*RuleTransition).followState.GetStateNumber())
}

type mergeCacheKey struct {
	a, b           PredictionContext
	rootIsWildcard bool
}

// PredictionContextMergeCache memoizes merge results within a single
// predictATN invocation; it must not be reused across calls.
type PredictionContextMergeCache struct {
	m map[mergeCacheKey]PredictionContext
}

func NewPredictionContextMergeCache() *PredictionContextMergeCache {
	return &PredictionContextMergeCache{m: make(map[mergeCacheKey]PredictionContext)}
}

func (c *PredictionContextMergeCache) get(a, b PredictionContext, rootIsWildcard bool) (PredictionContext, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.m[mergeCacheKey{a, b, rootIsWildcard}]
	return v, ok
}

func (c *PredictionContextMergeCache) put(a, b PredictionContext, rootIsWildcard bool, result PredictionContext) {
	if c == nil {
		return
	}
	c.m[mergeCacheKey{a, b, rootIsWildcard}] = result
	c.m[mergeCacheKey{b, a, rootIsWildcard}] = result
}

// MergePredictionContexts merges a and b. With rootIsWildcard (SLL), an
// EMPTY root absorbs the other context entirely; with full-context LL,
// roots combine only when they are structurally equal.
func MergePredictionContexts(a, b PredictionContext, rootIsWildcard bool, mergeCache *PredictionContextMergeCache) PredictionContext {
	if a == b {
		return a
	}
	if cached, ok := mergeCache.get(a, b, rootIsWildcard); ok {
		return cached
	}

	as, aIsSingle := a.(*SingletonPredictionContext)
	bs, bIsSingle := b.(*SingletonPredictionContext)
	if aIsSingle && bIsSingle {
		result := mergeSingletons(as, bs, rootIsWildcard, mergeCache)
		mergeCache.put(a, b, rootIsWildcard, result)
		return result
	}

	if rootIsWildcard {
		if _, ok := a.(*emptyPredictionContext); ok {
			return a
		}
		if _, ok := b.(*emptyPredictionContext); ok {
			return b
		}
	}

	aArr := toArrayContext(a)
	bArr := toArrayContext(b)
	result := mergeArrays(aArr, bArr, rootIsWildcard, mergeCache)
	mergeCache.put(a, b, rootIsWildcard, result)
	return result
}

func toArrayContext(p PredictionContext) *ArrayPredictionContext {
	switch v := p.(type) {
	case *ArrayPredictionContext:
		return v
	case *emptyPredictionContext:
		return NewArrayPredictionContext([]PredictionContext{nil}, []int{BasePredictionContextEmptyReturnState})
	case *SingletonPredictionContext:
		return NewArrayPredictionContext([]PredictionContext{v.parentCtx}, []int{v.returnState})
	}
	panic("unreachable prediction context variant")
}

func mergeSingletons(a, b *SingletonPredictionContext, rootIsWildcard bool, mergeCache *PredictionContextMergeCache) PredictionContext {
	if cached, ok := mergeCache.get(a, b, rootIsWildcard); ok {
		return cached
	}

	if a.returnState == b.returnState {
		var parentsEqual bool
		switch {
		case a.parentCtx == nil && b.parentCtx == nil:
			parentsEqual = true
		case a.parentCtx != nil && b.parentCtx != nil:
			parentsEqual = a.parentCtx.Equals(b.parentCtx)
		}
		if parentsEqual {
			return a
		}
		var parent PredictionContext
		if a.parentCtx != nil && b.parentCtx != nil {
			parent = MergePredictionContexts(a.parentCtx, b.parentCtx, rootIsWildcard, mergeCache)
		}
		if parent == a.parentCtx {
			return a
		}
		if parent == b.parentCtx {
			return b
		}
		return SingletonBasePredictionContextCreate(parent, a.returnState)
	}

	// Different return states: the merged result has two parallel slots.
	var singleParent PredictionContext
	if a.parentCtx != nil && b.parentCtx != nil && a.parentCtx.Equals(b.parentCtx) {
		singleParent = a.parentCtx
	}
	if singleParent != nil {
		lo, hi := a.returnState, b.returnState
		if lo > hi {
			lo, hi = hi, lo
		}
		return NewArrayPredictionContext([]PredictionContext{singleParent, singleParent}, []int{lo, hi})
	}
	parents := []PredictionContext{a.parentCtx, b.parentCtx}
	states := []int{a.returnState, b.returnState}
	if a.returnState > b.returnState {
		parents[0], parents[1] = parents[1], parents[0]
		states[0], states[1] = states[1], states[0]
	}
	return NewArrayPredictionContext(parents, states)
}

// mergeArrays merges two sorted parallel-array contexts, combining slots
// with equal invokingState and deduping identical parents.
func mergeArrays(a, b *ArrayPredictionContext, rootIsWildcard bool, mergeCache *PredictionContextMergeCache) PredictionContext {
	i, j := 0, 0
	var mergedParents []PredictionContext
	var mergedStates []int
	for i < len(a.returnStates) && j < len(b.returnStates) {
		ap, bp := a.parents[i], b.parents[j]
		as, bs := a.returnStates[i], b.returnStates[j]
		switch {
		case as == bs:
			var parent PredictionContext
			switch {
			case ap == nil && bp == nil:
				parent = nil
			case ap != nil && bp != nil:
				parent = MergePredictionContexts(ap, bp, rootIsWildcard, mergeCache)
			}
			mergedParents = append(mergedParents, parent)
			mergedStates = append(mergedStates, as)
			i++
			j++
		case as < bs:
			mergedParents = append(mergedParents, ap)
			mergedStates = append(mergedStates, as)
			i++
		default:
			mergedParents = append(mergedParents, bp)
			mergedStates = append(mergedStates, bs)
			j++
		}
	}
	for ; i < len(a.returnStates); i++ {
		mergedParents = append(mergedParents, a.parents[i])
		mergedStates = append(mergedStates, a.returnStates[i])
	}
	for ; j < len(b.returnStates); j++ {
		mergedParents = append(mergedParents, b.parents[j])
		mergedStates = append(mergedStates, b.returnStates[j])
	}

	// Dedupe identical (parent, state) pairs already adjacent post-sort.
	dedupParents := mergedParents[:0:0]
	dedupStates := mergedStates[:0:0]
	for k := range mergedStates {
		if len(dedupStates) > 0 && dedupStates[len(dedupStates)-1] == mergedStates[k] &&
			equalParents(dedupParents[len(dedupParents)-1], mergedParents[k]) {
			continue
		}
		dedupParents = append(dedupParents, mergedParents[k])
		dedupStates = append(dedupStates, mergedStates[k])
	}

	if len(dedupStates) == 1 {
		return SingletonBasePredictionContextCreate(dedupParents[0], dedupStates[0])
	}
	return NewArrayPredictionContext(dedupParents, dedupStates)
}

func equalParents(a, b PredictionContext) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equals(b)
}

// PredictionContextCache interns PredictionContext nodes by structural
// identity so that parsers sharing an ATN/DFA also share the prediction
// context DAG. It is process-wide and long-lived: constructed once per
// generated-parser static-data block and reused by every parser instance.
type PredictionContextCache struct {
	mu    sync.Mutex
	cache map[int][]PredictionContext
}

func NewPredictionContextCache() *PredictionContextCache {
	return &PredictionContextCache{cache: make(map[int][]PredictionContext)}
}

// getCachedContext interns ctx (and, recursively, anything reachable from
// it) into this cache, returning the canonical shared node.
func (c *PredictionContextCache) getCachedContext(ctx PredictionContext) PredictionContext {
	if ctx == nil || ctx.isEmpty() {
		return ctx
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getCachedContextLocked(ctx, make(map[PredictionContext]PredictionContext))
}

func (c *PredictionContextCache) getCachedContextLocked(ctx PredictionContext, visited map[PredictionContext]PredictionContext) PredictionContext {
	if existing, ok := visited[ctx]; ok {
		return existing
	}
	if existing := c.find(ctx); existing != nil {
		visited[ctx] = existing
		return existing
	}

	changed := false
	n := ctx.length()
	newParents := make([]PredictionContext, n)
	for i := 0; i < n; i++ {
		parent := ctx.GetParent(i)
		if parent == nil {
			newParents[i] = nil
			continue
		}
		cached := c.getCachedContextLocked(parent, visited)
		if cached != parent {
			changed = true
		}
		newParents[i] = cached
	}
	if !changed {
		c.insert(ctx)
		visited[ctx] = ctx
		return ctx
	}

	var updated PredictionContext
	if n == 1 {
		updated = SingletonBasePredictionContextCreate(newParents[0], ctx.getReturnState(0))
	} else {
		states := make([]int, n)
		for i := 0; i < n; i++ {
			states[i] = ctx.getReturnState(i)
		}
		updated = NewArrayPredictionContext(newParents, states)
	}
	if existing := c.find(updated); existing != nil {
		visited[ctx] = existing
		return existing
	}
	c.insert(updated)
	visited[ctx] = updated
	return updated
}

func (c *PredictionContextCache) find(ctx PredictionContext) PredictionContext {
	for _, candidate := range c.cache[ctx.Hash()] {
		if candidate.Equals(ctx) {
			return candidate
		}
	}
	return nil
}

func (c *PredictionContextCache) insert(ctx PredictionContext) {
	c.cache[ctx.Hash()] = append(c.cache[ctx.Hash()], ctx)
}
