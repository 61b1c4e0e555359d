// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// ParserATNSimulator predicts which alternative of a decision to take by
// simulating the ATN over lookahead: first cheaply, with SLL context
// (no regard for what rule invoked the current one), escalating to a
// full-context LL simulation only when SLL's result is ambiguous. Every
// DFA it builds is shared across every parse that reaches the same
// decision, so a grammar effectively gets faster the more it is used.
type ParserATNSimulator struct {
	recog              Parser
	atn                *ATN
	decisionToDFA      []*DFA
	sharedContextCache *PredictionContextCache
	predictionMode     PredictionMode

	mergeCache *PredictionContextMergeCache
}

func NewParserATNSimulator(recog Parser, atn *ATN, decisionToDFA []*DFA, sharedContextCache *PredictionContextCache) *ParserATNSimulator {
	return &ParserATNSimulator{
		recog:              recog,
		atn:                atn,
		decisionToDFA:      decisionToDFA,
		sharedContextCache: sharedContextCache,
		predictionMode:     PredictionModeLL,
	}
}

// AdaptivePredict is the public entry point a generated parser's decision
// point calls: it returns the 1-based alternative number to take.
func (p *ParserATNSimulator) AdaptivePredict(input TokenStream, decision int, outerContext RuleContext) int {
	dfa := p.decisionToDFA[decision]
	if outerContext == nil {
		outerContext = RuleContextEmpty
	}

	m := input.Mark()
	defer input.Release(m)
	index := input.Index()

	p.mergeCache = NewPredictionContextMergeCache()
	defer func() { p.mergeCache = nil }()

	var s0 *DFAState
	if dfa.IsPrecedenceDfa() {
		s0 = dfa.getPrecedenceStartState(p.recog.GetPrecedence())
	} else {
		s0 = dfa.getS0()
	}
	if s0 == nil {
		fullCtx := false
		var s0Closure *ATNConfigSet
		if dfa.IsPrecedenceDfa() {
			s0Closure = p.applyPrecedenceFilter(p.computeStartState(dfa.atnStartState, RuleContextEmpty, fullCtx))
		} else {
			s0Closure = p.computeStartState(dfa.atnStartState, RuleContextEmpty, fullCtx)
		}
		next := NewDFAState(-1, s0Closure)
		if dfa.IsPrecedenceDfa() {
			next.isAcceptState = getUniqueAlt(s0Closure) != ATNInvalidAltNumber
			next = dfa.addState(next)
			dfa.setPrecedenceStartState(p.recog.GetPrecedence(), next)
		} else {
			next = dfa.addState(next)
			dfa.setS0(next)
		}
		s0 = next
	}

	alt := p.execATN(dfa, s0, input, index, outerContext)
	return alt
}

func (p *ParserATNSimulator) execATN(dfa *DFA, s0 *DFAState, input TokenStream, startIndex int, outerContext RuleContext) int {
	previousD := s0
	t := input.LA(1)
	for {
		D := p.getExistingOrComputeTargetState(dfa, previousD, t)
		if D == nil {
			p.noViableAlt(input, outerContext, previousD.configs, startIndex)
		}
		if D.requiresFullContext {
			return p.execATNWithFullContext(dfa, D, input, startIndex, outerContext)
		}
		if D.isAcceptState {
			return p.resolveAcceptState(input, D, outerContext, startIndex)
		}
		previousD = D
		if t != TokenEOF {
			input.consume()
		}
		t = input.LA(1)
	}
}

// resolveAcceptState turns an accept DFAState into the predicted alt. A
// plain accept state (no gating predicates) just returns its prediction;
// a predicated one must re-seek to the decision's start before evaluating
// each predicate, since a predicate can itself inspect input/lookahead
// state, then choose among whichever alts survive -- the lowest surviving
// alt, matching the priority order alternatives are declared in -- and
// panic with NoViableAlt if none do.
func (p *ParserATNSimulator) resolveAcceptState(input TokenStream, d *DFAState, outerContext RuleContext, startIndex int) int {
	if d.predicates == nil {
		return d.prediction
	}
	input.Seek(startIndex)
	survivors := NewBitSet()
	for _, pp := range d.predicates {
		if pp.Pred.evaluate(p.recog, outerContext) {
			survivors.Add(pp.Alt)
		}
	}
	if survivors.IsEmpty() {
		p.noViableAlt(input, outerContext, d.configs, startIndex)
	}
	return survivors.Minimum()
}

func (p *ParserATNSimulator) getExistingOrComputeTargetState(dfa *DFA, previousD *DFAState, t int) *DFAState {
	if target := previousD.getEdge(t); target != nil {
		return target
	}
	return p.computeTargetState(dfa, previousD, t)
}

func (p *ParserATNSimulator) computeTargetState(dfa *DFA, previousD *DFAState, t int) *DFAState {
	reach := p.computeReachSet(previousD.configs, t, false)
	if reach == nil || reach.IsEmpty() {
		previousD.setEdge(t, nil)
		return nil
	}

	D := NewDFAState(-1, reach)
	predictedAlt := getUniqueAlt(reach)
	switch {
	case predictedAlt != ATNInvalidAltNumber:
		D.isAcceptState = true
		D.prediction = predictedAlt
		reach.uniqueAlt = predictedAlt
	case p.predictionMode != PredictionModeSLL:
		if conflict, conflictingAlts := hasSLLConflictTerminatingPrediction(reach); conflict {
			D.requiresFullContext = true
			reach.conflictingAlts = conflictingAlts
		} else {
			D.isAcceptState = true
			reach.conflictingAlts = reach.GetAlts()
			D.prediction = resolvesToJustOneViableAlt(reach)
		}
	default:
		D.isAcceptState = true
		reach.conflictingAlts = reach.GetAlts()
		D.prediction = resolvesToJustOneViableAlt(reach)
	}

	if D.isAcceptState && reach.hasSemanticContext {
		p.predicateDFAState(D, reach, dfa.atnStartState)
	}

	D = dfa.addState(D)
	previousD.setEdge(t, D)
	return D
}

// predicateDFAState fills in an accept state's gated predictions once its
// config set carries leftover semantic context: a decision can settle on a
// single alt and still need a predicate checked (a precedence climb that
// only one alt's predicate currently permits), so reaching an accept state
// is not by itself proof the chosen alt needs no further check.
func (p *ParserATNSimulator) predicateDFAState(dfaState *DFAState, configs *ATNConfigSet, decision DecisionState) {
	nalts := len(decision.GetTransitions())
	altsToCollectPredsFrom := getConflictingAltsOrUniqueAlt(configs)
	altToPred := getPredsForAmbigAlts(altsToCollectPredsFrom, configs, nalts)
	if altToPred != nil {
		dfaState.predicates = getPredicatePredictions(altsToCollectPredsFrom, altToPred)
		dfaState.prediction = ATNInvalidAltNumber
	} else {
		dfaState.prediction = altsToCollectPredsFrom.Minimum()
	}
}

// getConflictingAltsOrUniqueAlt normalizes the two ways a config set can
// identify "the alts still in play" into one BitSet: a resolved unique alt
// becomes a single-bit set, an unresolved conflict reuses the alt set the
// SLL conflict check already computed.
func getConflictingAltsOrUniqueAlt(configs *ATNConfigSet) *BitSet {
	if configs.uniqueAlt != ATNInvalidAltNumber {
		alts := NewBitSet()
		alts.Add(configs.uniqueAlt)
		return alts
	}
	return configs.conflictingAlts
}

// getPredsForAmbigAlts collects, per alt in ambigAlts, the OR of every
// config's semantic context predicting that alt. An alt with no predicated
// config at all gets SemanticContextNone (no predicate needed for it,
// meaning the alt can never be safely chosen without evaluating some
// other alt's predicate first). Returns nil if not one alt came with an
// actual predicate, since plain unique-alt resolution already covers that.
func getPredsForAmbigAlts(ambigAlts *BitSet, configs *ATNConfigSet, nalts int) []SemanticContext {
	altToPred := make([]SemanticContext, nalts+1)
	for _, c := range configs.configs {
		if ambigAlts.Contains(c.alt) {
			if altToPred[c.alt] == nil {
				altToPred[c.alt] = c.semanticContext
			} else {
				altToPred[c.alt] = NewOR(altToPred[c.alt], c.semanticContext)
			}
		}
	}
	nPredAlts := 0
	for i := 1; i <= nalts; i++ {
		if altToPred[i] == nil {
			altToPred[i] = SemanticContextNone
		} else if altToPred[i] != SemanticContextNone {
			nPredAlts++
		}
	}
	if nPredAlts == 0 {
		return nil
	}
	return altToPred
}

// getPredicatePredictions pairs each ambiguous alt with the predicate that
// must hold for it, skipping alts whose predicate is trivially
// SemanticContextNone -- those don't gate anything, and resolveAcceptState
// should never be asked to evaluate a predicate that is always true.
func getPredicatePredictions(ambigAlts *BitSet, altToPred []SemanticContext) []*PredPrediction {
	var pairs []*PredPrediction
	for i := 1; i < len(altToPred); i++ {
		pred := altToPred[i]
		if ambigAlts != nil && ambigAlts.Contains(i) && pred != SemanticContextNone {
			pairs = append(pairs, NewPredPrediction(pred, i))
		}
	}
	if len(pairs) == 0 {
		return nil
	}
	return pairs
}

// execATNWithFullContext re-simulates the decision using full-context (LL)
// closure once SLL has produced a genuine conflict: the call replays the
// whole decision from startIndex, this time never losing track of which
// rule invoked the current one, so it can distinguish "ambiguous no matter
// what the caller is" from "only looked ambiguous because SLL forgot the
// caller".
func (p *ParserATNSimulator) execATNWithFullContext(dfa *DFA, D *DFAState, input TokenStream, startIndex int, outerContext RuleContext) int {
	fullCtx := true
	input.Seek(startIndex)

	s0Closure := p.computeStartState(dfa.atnStartState, outerContext, fullCtx)
	p.reportAttemptingFullContext(dfa, D.configs.conflictingAlts, s0Closure, startIndex, input.Index())

	reach := s0Closure
	t := input.LA(1)
	for {
		next := p.computeReachSet(reach, t, fullCtx)
		if next == nil || next.IsEmpty() {
			p.noViableAlt(input, outerContext, reach, startIndex)
		}
		reach = next
		if alt := getUniqueAlt(reach); alt != ATNInvalidAltNumber {
			p.reportContextSensitivity(dfa, alt, reach, startIndex, input.Index())
			return alt
		}
		if allConfigsInRuleStopStates(reach) {
			break
		}
		if t != TokenEOF {
			input.consume()
		}
		t = input.LA(1)
	}

	predictedAlt, ambiguousAlts := llConflictingAlts(reach, p.predictionMode)
	if ambiguousAlts != nil {
		predictedAlt = ambiguousAlts.Minimum()
		p.reportAmbiguity(dfa, nil, startIndex, input.Index(), p.predictionMode == PredictionModeLLExactAmbigDetection, ambiguousAlts, reach)
	}
	return predictedAlt
}

// computeStartState seeds a decision's config set: one config per
// alternative, each having just entered the decision state under the
// caller's context (RuleContextEmpty for SLL, the live outerContext chain
// for full-context LL).
func (p *ParserATNSimulator) computeStartState(a ATNState, ctx RuleContext, fullCtx bool) *ATNConfigSet {
	initialContext := predictionContextFromRuleContext(p.atn, ctx)
	configs := newATNConfigSet2(fullCtx)
	for i, t := range a.GetTransitions() {
		target := t.getTarget()
		c := NewATNConfig(target, i+1, initialContext, SemanticContextNone)
		p.closure(c, configs, true, fullCtx, false)
	}
	return configs
}

// applyPrecedenceFilter implements precedence climbing for left-recursive
// rules. Each alt-1 config records its state and context before its
// predicate is evaluated; a config of any other alt at a recorded state
// with an equal context is dropped. Every remaining config's semantic
// context is reduced with evalPrecedence, and a config whose precedence
// predicate fails is dropped.
func (p *ParserATNSimulator) applyPrecedenceFilter(configs *ATNConfigSet) *ATNConfigSet {
	statesFromAlt1 := make(map[int]PredictionContext)
	out := newATNConfigSet2(configs.fullCtx)
	for _, c := range configs.configs {
		if c.alt != 1 {
			pred := statesFromAlt1[c.state.GetStateNumber()]
			if pred != nil && pred.Equals(c.context) {
				continue
			}
		}
		if c.alt == 1 {
			statesFromAlt1[c.state.GetStateNumber()] = c.context
		}
		updated := c.semanticContext.evalPrecedence(p.recog, nil)
		if updated == nil {
			continue
		}
		n := *c
		n.semanticContext = updated
		out.add(&n, p.mergeCache)
	}
	return out
}

// computeReachSet advances every config in closureConfigs across symbol t
// and re-closes the result, the one step of simulation that actually
// consumes a lookahead token.
func (p *ParserATNSimulator) computeReachSet(closureConfigs *ATNConfigSet, t int, fullCtx bool) *ATNConfigSet {
	intermediate := newATNConfigSet2(fullCtx)
	var skippedStopStates []*ATNConfig

	for _, c := range closureConfigs.configs {
		if _, ok := c.state.(*RuleStopState); ok {
			if c.context == nil || c.context.isEmpty() {
				if fullCtx {
					intermediate.add(NewATNConfig4(c, c.state), p.mergeCache)
					continue
				}
				skippedStopStates = append(skippedStopStates, c)
				continue
			}
			skippedStopStates = append(skippedStopStates, c)
			continue
		}
		for _, trans := range c.state.GetTransitions() {
			if target := p.getReachableTarget(trans, t); target != nil {
				intermediate.add(NewATNConfig4(c, target), p.mergeCache)
			}
		}
	}

	var reach *ATNConfigSet
	if skippedStopStates == nil && t != TokenEOF {
		reach = intermediate
	} else {
		reach = newATNConfigSet2(fullCtx)
		for _, c := range intermediate.configs {
			p.closure(c, reach, false, fullCtx, true)
		}
		if skippedStopStates != nil && (t == TokenEOF || !fullCtx) {
			for _, c := range skippedStopStates {
				reach.add(c, p.mergeCache)
			}
		}
	}
	if reach.IsEmpty() {
		return nil
	}
	return reach
}

func (p *ParserATNSimulator) getReachableTarget(trans Transition, t int) ATNState {
	if trans.getIsEpsilon() {
		return nil
	}
	if trans.Matches(t, 0, p.atn.maxTokenType) {
		return trans.getTarget()
	}
	return nil
}

// closure computes the epsilon closure of a single config into configs:
// it follows rule calls (pushing a return address) and pops rule returns
// (using the prediction context instead of a graph edge). In the SLL pass,
// predicate and precedence transitions are collected into the config's
// semantic context when collectPredicates is set (a context-dependent
// predicate only at depth 0) and evaluated on the spot otherwise; in the
// full-context pass they are followed without being evaluated or collected.
func (p *ParserATNSimulator) closure(config *ATNConfig, configs *ATNConfigSet, collectPredicates, fullCtx, treatEOFAsEpsilon bool) {
	p.closureCheckingStopState(config, configs, collectPredicates, fullCtx, 0, treatEOFAsEpsilon)
}

func (p *ParserATNSimulator) closureCheckingStopState(config *ATNConfig, configs *ATNConfigSet, collectPredicates, fullCtx bool, depth int, treatEOFAsEpsilon bool) {
	if _, ok := config.state.(*RuleStopState); ok {
		if config.context != nil && !config.context.isEmpty() {
			for i := 0; i < config.context.length(); i++ {
				returnStateNumber := config.context.getReturnState(i)
				if returnStateNumber == BasePredictionContextEmptyReturnState {
					if fullCtx {
						configs.add(NewATNConfig2(config, config.state, BasePredictionContextEMPTY), p.mergeCache)
						continue
					}
					p.closure(NewATNConfig4(config, config.state), configs, collectPredicates, fullCtx, treatEOFAsEpsilon)
					continue
				}
				returnState := p.atn.GetState(returnStateNumber)
				newContext := config.context.GetParent(i)
				c := NewATNConfig2(config, returnState, newContext)
				p.closureCheckingStopState(c, configs, collectPredicates, fullCtx, depth-1, treatEOFAsEpsilon)
			}
			return
		}
		if fullCtx {
			configs.add(config, p.mergeCache)
			return
		}
	}

	if !config.state.GetEpsilonOnlyTransitions() {
		configs.add(config, p.mergeCache)
	}

	for _, trans := range config.state.GetTransitions() {
		if depth == 0 {
			if _, ok := trans.(*RuleTransition); ok {
				// entering a rule never suppresses the filter below it
			}
		}
		newConfig := p.getEpsilonTarget(config, trans, collectPredicates, depth == 0, fullCtx, treatEOFAsEpsilon)
		if newConfig == nil {
			continue
		}
		newDepth := depth
		if _, ok := trans.(*RuleTransition); ok {
			newDepth++
		} else if _, ok := trans.(*EpsilonTransition); ok {
			if _, isStop := newConfig.state.(*RuleStopState); isStop {
				newDepth--
			}
		}
		p.closureCheckingStopState(newConfig, configs, collectPredicates, fullCtx, newDepth, treatEOFAsEpsilon)
	}
}

func (p *ParserATNSimulator) getEpsilonTarget(config *ATNConfig, trans Transition, collectPredicates, inContext, fullCtx, treatEOFAsEpsilon bool) *ATNConfig {
	switch tt := trans.(type) {
	case *RuleTransition:
		newContext := SingletonBasePredictionContextCreate(config.context, tt.followState.GetStateNumber())
		return NewATNConfig2(config, tt.getTarget(), newContext)
	case *PrecedenceTransition:
		if fullCtx {
			return NewATNConfig4(config, tt.getTarget())
		}
		pred := tt.getPredicate()
		if collectPredicates {
			newSemCtx := NewAND(config.semanticContext, pred)
			n := NewATNConfig4(config, tt.getTarget())
			n.semanticContext = newSemCtx
			return n
		}
		if pred.evaluate(p.recog, nil) {
			return NewATNConfig4(config, tt.getTarget())
		}
		return nil
	case *PredicateTransition:
		if fullCtx {
			return NewATNConfig4(config, tt.getTarget())
		}
		pred := tt.getPredicate()
		if collectPredicates && (!tt.IsCtxDependent || inContext) {
			newSemCtx := NewAND(config.semanticContext, pred)
			n := NewATNConfig4(config, tt.getTarget())
			n.semanticContext = newSemCtx
			return n
		}
		if pred.evaluate(p.recog, nil) {
			return NewATNConfig4(config, tt.getTarget())
		}
		return nil
	case *ActionTransition:
		return NewATNConfig4(config, tt.getTarget())
	default:
		if trans.getIsEpsilon() {
			return NewATNConfig4(config, trans.getTarget())
		}
		if treatEOFAsEpsilon {
			if at, ok := trans.(*AtomTransition); ok && at.label == TokenEOF {
				return NewATNConfig4(config, trans.getTarget())
			}
		}
		return nil
	}
}

func (p *ParserATNSimulator) noViableAlt(input TokenStream, outerContext RuleContext, configs *ATNConfigSet, startIndex int) {
	startToken := input.Get(startIndex)
	offending := input.LT(1)
	panic(NewNoViableAltException(p.recog, input, startToken, offending, configs, outerContext))
}

func (p *ParserATNSimulator) reportAttemptingFullContext(dfa *DFA, conflictingAlts *BitSet, configs *ATNConfigSet, startIndex, stopIndex int) {
	p.recog.GetErrorListenerDispatch().ReportAttemptingFullContext(p.recog, dfa, startIndex, stopIndex, conflictingAlts, configs)
}

func (p *ParserATNSimulator) reportContextSensitivity(dfa *DFA, prediction int, configs *ATNConfigSet, startIndex, stopIndex int) {
	p.recog.GetErrorListenerDispatch().ReportContextSensitivity(p.recog, dfa, startIndex, stopIndex, prediction, configs)
}

func (p *ParserATNSimulator) reportAmbiguity(dfa *DFA, D *DFAState, startIndex, stopIndex int, exact bool, ambigAlts *BitSet, configs *ATNConfigSet) {
	p.recog.GetErrorListenerDispatch().ReportAmbiguity(p.recog, dfa, startIndex, stopIndex, exact, ambigAlts, configs)
}
