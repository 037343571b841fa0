// Package keymap implements the key-sequence trie (spec §4.3) and the
// Engine that holds the three named keymaps plus whichever "local"
// keymap is momentarily active (isearch, completion menu), and
// resolves a pending key sequence against them by longest-prefix
// match with backoff (spec §4.4 steps 3-5).
package keymap

import "github.com/reeflective/lineedit/internal/inputrc"

// Map is a trie node: a mapping from single key to child node, plus
// an optional bound value (spec §3 KeyMap). When a node has children,
// its own Bind (if any) is the "anotherKey" value: the sequence
// reaching this node is itself a valid binding, but more keys may
// extend it into a longer one.
type Map struct {
	children map[rune]*Map
	bind     inputrc.Bind
	bound    bool
}

// NewMap returns an empty keymap trie.
func NewMap() *Map {
	return &Map{children: make(map[rune]*Map)}
}

// Bind registers seq → bind in the trie, creating intermediate nodes
// as needed.
func (m *Map) Bind(seq []rune, bind inputrc.Bind) {
	node := m

	for _, r := range seq {
		child, ok := node.children[r]
		if !ok {
			child = NewMap()
			node.children[r] = child
		}

		node = child
	}

	node.bind = bind
	node.bound = true
}

// Unbind removes any binding at seq (the node, and its children if
// any, are left in place so longer sequences through it still work).
func (m *Map) Unbind(seq []rune) {
	node := m

	for _, r := range seq {
		child, ok := node.children[r]
		if !ok {
			return
		}

		node = child
	}

	node.bind = inputrc.Bind{}
	node.bound = false
}

// Lookup reports the bind stored at seq, if any (used by callers that
// want to copy or inspect a binding rather than resolve live input).
func (m *Map) Lookup(seq []rune) (inputrc.Bind, bool) {
	node := m

	for _, r := range seq {
		child, ok := node.children[r]
		if !ok {
			return inputrc.Bind{}, false
		}

		node = child
	}

	return node.bind, node.bound
}

// result is what walking the trie for a sequence found.
type result struct {
	bind    inputrc.Bind
	bound   bool  // node.bind is meaningful (a direct or "anotherKey" binding)
	node    *Map  // non-nil if the node has children: "more keys may extend this"
	found   bool  // false if seq didn't even match a path in the trie
}

// lookup walks seq from the root and reports what was found there,
// mirroring spec §4.3's getBound: a direct bound value, a child
// KeyMap (optionally itself bound via anotherKey), or nothing.
func (m *Map) lookup(seq []rune) result {
	node := m

	for _, r := range seq {
		child, ok := node.children[r]
		if !ok {
			return result{found: false}
		}

		node = child
	}

	if len(node.children) > 0 {
		return result{bind: node.bind, bound: node.bound, node: node, found: true}
	}

	return result{bind: node.bind, bound: node.bound, found: true}
}
