// SPDX-License-Identifier: MIT
package strtotime

import (
	"fmt"
	"strings"

	"gitlab.com/fisherprime/strtotime/lexer"
)

type (
	// Node is a grammar element, a closed variant over the kinds below.
	//
	// Nodes are immutable once built & shared by concurrent parses.
	Node struct {
		kind nodeKind

		// Symbol leaf.
		name   string
		symbol lexer.Symbol
		minLen int
		maxLen int
		check  checkFunc
		set    setFunc

		// Sequence holds exactly 2 children, Repetition & Optional hold 1.
		children []*Node
		// min is the Repetition's least count.
		min int
	}

	nodeKind int

	// checkFunc validates a leaf's raw text beyond its Symbol & length.
	checkFunc func(c *parseContext, text string) bool

	// setFunc writes a matched leaf's raw text into the context fields.
	setFunc func(c *parseContext, text string)
)

const (
	kindSymbol nodeKind = iota
	kindSequence
	kindAlternation
	kindOptional
	kindRepetition
)

// leaf matches a single Token of symbol whose length lies in [minLen, maxLen]; maxLen 0 is
// unbounded.
func leaf(name string, symbol lexer.Symbol, minLen, maxLen int, check checkFunc, set setFunc) *Node {
	return &Node{
		kind:   kindSymbol,
		name:   name,
		symbol: symbol,
		minLen: minLen,
		maxLen: maxLen,
		check:  check,
		set:    set,
	}
}

// and matches left then right.
func and(left, right *Node) *Node {
	return &Node{kind: kindSequence, children: []*Node{left, right}}
}

// seq folds nodes into left-nested sequences.
func seq(nodes ...*Node) *Node {
	n := nodes[0]
	for _, next := range nodes[1:] {
		n = and(n, next)
	}

	return n
}

// or matches the first child that matches.
func or(nodes ...*Node) *Node { return &Node{kind: kindAlternation, children: nodes} }

// opt matches its child zero or one time.
func opt(node *Node) *Node { return &Node{kind: kindOptional, children: []*Node{node}} }

// many matches its child greedily, zero or more times.
func many(node *Node) *Node { return &Node{kind: kindRepetition, children: []*Node{node}} }

// many1 matches its child greedily, at least once.
func many1(node *Node) *Node { return &Node{kind: kindRepetition, children: []*Node{node}, min: 1} }

// matches trials the Node at the cursor without writing any field.
//
// A matching leaf advances the cursor by one. A failed sequence rewinds the cursor by exactly
// one position, alternation, optional & repetition restore the cursor they were entered with.
func (n *Node) matches(c *parseContext) bool {
	switch n.kind {
	case kindSymbol:
		token, ok := c.peek()
		if !ok || !n.accepts(c, token) {
			return false
		}
		c.cursor++

		return true
	case kindSequence:
		if !n.children[0].matches(c) {
			return false
		}
		if !n.children[1].matches(c) {
			c.rewind()
			return false
		}

		return true
	case kindAlternation:
		start := c.cursor
		for _, child := range n.children {
			if child.matches(c) {
				return true
			}
			c.cursor = start
		}

		return false
	case kindOptional:
		start := c.cursor
		if !n.children[0].matches(c) {
			c.cursor = start
		}

		return true
	case kindRepetition:
		entry, count := c.cursor, 0
		for {
			start := c.cursor
			if !n.children[0].matches(c) || c.cursor == start {
				c.cursor = start
				break
			}
			count++
		}

		if count < n.min {
			c.cursor = entry
			return false
		}

		return true
	}

	return false
}

// apply walks the path a successful matches took, writing fields as it goes.
//
// Only valid after matches accepted the whole Node from the same cursor.
func (n *Node) apply(c *parseContext) {
	switch n.kind {
	case kindSymbol:
		token := c.tokens[c.cursor]
		if n.set != nil {
			n.set(c, token.Text(c.input))
		}
		c.cursor++
	case kindSequence:
		n.children[0].apply(c)
		n.children[1].apply(c)
	case kindAlternation:
		start := c.cursor
		for _, child := range n.children {
			matched := child.matches(c)
			c.cursor = start

			if matched {
				child.apply(c)
				return
			}
		}
	case kindOptional:
		start := c.cursor
		matched := n.children[0].matches(c)
		c.cursor = start

		if matched {
			n.children[0].apply(c)
		}
	case kindRepetition:
		for {
			start := c.cursor
			matched := n.children[0].matches(c) && c.cursor != start
			c.cursor = start

			if !matched {
				return
			}
			n.children[0].apply(c)
		}
	}
}

func (n *Node) accepts(c *parseContext, token lexer.Token) bool {
	if token.Symbol != n.symbol || token.Len < n.minLen || (n.maxLen > 0 && token.Len > n.maxLen) {
		return false
	}

	return n.check == nil || n.check(c, token.Text(c.input))
}

// String renders the grammar tree.
func (n *Node) String() string {
	var b strings.Builder
	n.render(&b)

	return b.String()
}

func (n *Node) render(b *strings.Builder) {
	switch n.kind {
	case kindSymbol:
		b.WriteString(n.name)
		if n.name != "" {
			return
		}

		b.WriteString(n.symbol.String())
		switch {
		case n.minLen == n.maxLen:
			fmt.Fprintf(b, "{%d}", n.minLen)
		case n.maxLen > 0:
			fmt.Fprintf(b, "{%d,%d}", n.minLen, n.maxLen)
		}
	case kindSequence:
		b.WriteByte('(')
		n.children[0].render(b)
		b.WriteString(" AND ")
		n.children[1].render(b)
		b.WriteByte(')')
	case kindAlternation:
		b.WriteByte('(')
		for index, child := range n.children {
			if index > 0 {
				b.WriteString(" | ")
			}
			child.render(b)
		}
		b.WriteByte(')')
	case kindOptional:
		b.WriteByte('[')
		n.children[0].render(b)
		b.WriteByte(']')
	case kindRepetition:
		b.WriteByte('{')
		n.children[0].render(b)
		b.WriteByte('}')
		if n.min > 0 {
			b.WriteByte('+')
		}
	}
}
