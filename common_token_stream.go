// Copyright (c) 2012-2022 The ANTLR Project. All rights reserved.
// Use of this file is governed by the BSD 3-clause license that
// can be found in the LICENSE.txt file in the project root.

package antlr

// CommonTokenStream buffers every Token pulled from a TokenSource and
// exposes LT/LA/mark-seek over the default channel only, skipping hidden
// tokens (e.g. whitespace sent to HIDDEN_CHANNEL) the way the parser
// expects. Full rewriting/lazy-refill semantics are out of this module's
// scope; this buffers eagerly on first need, which is sufficient to drive
// prediction in tests.
type CommonTokenStream struct {
	tokenSource TokenSource
	tokens      []Token
	index       int
	fetchedEOF  bool
	channel     int
	marks       []int
}

func NewCommonTokenStream(source TokenSource, channel int) *CommonTokenStream {
	return &CommonTokenStream{tokenSource: source, index: -1, channel: channel}
}

func (c *CommonTokenStream) GetTokenSource() TokenSource { return c.tokenSource }

func (c *CommonTokenStream) fetch(n int) int {
	if c.fetchedEOF {
		return 0
	}
	fetched := 0
	for i := 0; i < n; i++ {
		t := c.tokenSource.NextToken()
		t.(WritableToken).SetTokenIndex(len(c.tokens))
		c.tokens = append(c.tokens, t)
		fetched++
		if t.GetTokenType() == TokenEOF {
			c.fetchedEOF = true
			break
		}
	}
	return fetched
}

func (c *CommonTokenStream) lazyInit() {
	if c.index == -1 {
		c.setup()
	}
}

func (c *CommonTokenStream) setup() {
	c.sync(0)
	c.index = c.nextTokenOnChannel(0)
}

func (c *CommonTokenStream) sync(i int) {
	n := i - len(c.tokens) + 1
	if n > 0 {
		c.fetch(n)
	}
}

func (c *CommonTokenStream) nextTokenOnChannel(i int) int {
	c.sync(i)
	for i < len(c.tokens) && c.tokens[i].GetChannel() != c.channel && c.tokens[i].GetTokenType() != TokenEOF {
		i++
		c.sync(i)
	}
	return i
}

func (c *CommonTokenStream) previousTokenOnChannel(i int) int {
	for i >= 0 && c.tokens[i].GetChannel() != c.channel {
		i--
	}
	return i
}

func (c *CommonTokenStream) consume() {
	skipEOF := c.LA(1) == TokenEOF
	if !skipEOF {
		c.index = c.nextTokenOnChannel(c.index + 1)
	}
}

func (c *CommonTokenStream) LA(offset int) int {
	t := c.LT(offset)
	if t == nil {
		return TokenInvalidType
	}
	return t.GetTokenType()
}

func (c *CommonTokenStream) LT(k int) Token {
	c.lazyInit()
	if k == 0 {
		return nil
	}
	if k < 0 {
		return c.lb(-k)
	}
	i := c.index
	n := k - 1
	for n > 0 {
		i = c.nextTokenOnChannel(i + 1)
		n--
	}
	c.sync(i)
	if i >= len(c.tokens) {
		return c.tokens[len(c.tokens)-1]
	}
	return c.tokens[i]
}

func (c *CommonTokenStream) lb(k int) Token {
	if c.index-k < 0 {
		return nil
	}
	i := c.index
	n := k
	for n > 0 && i > 0 {
		i = c.previousTokenOnChannel(i - 1)
		n--
	}
	if i < 0 {
		return nil
	}
	return c.tokens[i]
}

func (c *CommonTokenStream) Get(index int) Token {
	c.sync(index)
	return c.tokens[index]
}

func (c *CommonTokenStream) Mark() int { return 0 }
func (c *CommonTokenStream) Release(int) {}

func (c *CommonTokenStream) Index() int {
	c.lazyInit()
	return c.index
}

func (c *CommonTokenStream) Seek(index int) {
	c.lazyInit()
	c.index = index
}

func (c *CommonTokenStream) Size() int { return len(c.tokens) }

func (c *CommonTokenStream) GetSourceName() string { return c.tokenSource.GetSourceName() }

func (c *CommonTokenStream) GetAllText() string {
	c.Fill()
	return c.GetTextFromInterval(Interval{0, len(c.tokens) - 1})
}

func (c *CommonTokenStream) GetTextFromInterval(iv Interval) string {
	c.sync(iv.Stop)
	var out string
	for i := iv.Start; i <= iv.Stop && i < len(c.tokens); i++ {
		out += c.tokens[i].GetText()
	}
	return out
}

func (c *CommonTokenStream) GetTextFromTokens(start, stop Token) string {
	if start == nil || stop == nil {
		return ""
	}
	return c.GetTextFromInterval(Interval{start.GetTokenIndex(), stop.GetTokenIndex()})
}

// Fill pulls tokens from the source until EOF, buffering the whole input;
// used by GetAllText and by tests that want deterministic full buffering.
func (c *CommonTokenStream) Fill() {
	c.lazyInit()
	for c.fetch(1000) == 1000 {
	}
}
