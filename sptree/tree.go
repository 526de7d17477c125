package sptree

// Leaf returns a new Edge leaf with source=u, sink=v.
// Complexity: O(1).
func Leaf(u, v int) *Tree {
	return &Tree{source: u, sink: v, kind: Edge}
}

// Compose composes t (left) with other (right) under kind, per spec.md §3's
// four composition rules. If t is nil ("self is empty"), Compose returns
// other unchanged. If other is nil, Compose returns t unchanged (no-op).
// Otherwise a new internal node is returned; the caller MUST treat both t
// and other as consumed (do not reuse either pointer) — this is the
// move-only discipline of doc.go.
//
// Complexity: O(1).
func (t *Tree) Compose(other *Tree, kind Kind) *Tree {
	if t == nil {
		return other
	}
	if other == nil {
		return t
	}
	return newInternal(t, other, kind)
}

// LCompose is Compose with the argument placed on the left: the returned
// node's left child is other, right child is t, so a tail chain can extend
// a subtree on its left.
//
// Complexity: O(1).
func (t *Tree) LCompose(other *Tree, kind Kind) *Tree {
	if other == nil {
		return t
	}
	if t == nil {
		return other
	}
	return newInternal(other, t, kind)
}

// newInternal builds the composed node's (source, sink) per spec.md §3.
// It trusts the caller to have validated the endpoint relationships the
// recogniser requires (recognize's seriesReduceWhere and parallelReduce
// reorient both trees before calling); an endpoint mismatch here does not
// panic, it simply produces a
// tree that authenticate.Authenticate will reject when checked against the
// graph, matching spec §7's "certificate-authentication-failure" taxonomy
// rather than a recogniser-side panic.
func newInternal(left, right *Tree, kind Kind) *Tree {
	n := &Tree{kind: kind, left: left, right: right}
	switch kind {
	case Series:
		n.source = left.source
		n.sink = right.sink
	case Parallel, Antiparallel:
		n.source = left.source
		n.sink = left.sink
	case Dangling:
		// One child is the core SP chain (left, by convention), the other a
		// pendant; the node inherits the core chain's endpoints.
		n.source = left.source
		n.sink = left.sink
	default:
		n.source = left.source
		n.sink = right.sink
	}
	return n
}

// UnderlyingTreePathSource returns the sink of the left-most Edge leaf
// reached by descending left pointers — the point in the original DFS tree
// where a back-edge-rooted sub-path begins.
//
// Complexity: O(depth).
func (t *Tree) UnderlyingTreePathSource() int {
	cur := t
	for cur.left != nil {
		cur = cur.left
	}
	return cur.sink
}

// frame is a work-stack entry used by the iterative post-order walks below.
// phase counts how many of {left, right} have been pushed so far: 0 = node
// itself just pushed, 1 = left pushed, 2 = both children pushed and node is
// ready for post-order processing.
type frame struct {
	node  *Tree
	phase int
}

// Deantiparallelize rewrites every Antiparallel node in t to Parallel by
// reversing its right subtree's orientation, in a single iterative
// post-order pass (spec.md §4.2). Idempotent: a tree with no Antiparallel
// nodes is returned unchanged (in place).
//
// Complexity: O(size(t)) with an explicit work stack (no recursion), per
// spec §9's "deep trees" guidance.
func (t *Tree) Deantiparallelize() {
	if t == nil {
		return
	}
	stack := []*frame{{node: t}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		switch {
		case top.node.IsLeaf():
			stack = stack[:len(stack)-1]
		case top.phase == 0:
			top.phase = 1
			stack = append(stack, &frame{node: top.node.left})
		case top.phase == 1:
			top.phase = 2
			stack = append(stack, &frame{node: top.node.right})
		default:
			// Post-order: both children fully processed.
			if top.node.kind == Antiparallel {
				reverseSubtree(top.node.right)
				top.node.kind = Parallel
			}
			stack = stack[:len(stack)-1]
		}
	}
}

// reverseSubtree flips the orientation of every node in the subtree rooted
// at root, in place, via an explicit post-order work stack. Leaves swap
// (source, sink). Series nodes additionally swap their two children (so the
// chain reads in the opposite direction); Parallel/Antiparallel/Dangling
// nodes keep child order (their children share endpoints pairwise, so only
// the endpoints themselves need swapping once both children are reversed).
func reverseSubtree(root *Tree) {
	if root == nil {
		return
	}
	stack := []*frame{{node: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		switch {
		case top.node.IsLeaf():
			top.node.source, top.node.sink = top.node.sink, top.node.source
			stack = stack[:len(stack)-1]
		case top.phase == 0:
			top.phase = 1
			stack = append(stack, &frame{node: top.node.left})
		case top.phase == 1:
			top.phase = 2
			stack = append(stack, &frame{node: top.node.right})
		default:
			n := top.node
			n.source, n.sink = n.sink, n.source
			if n.kind == Series {
				n.left, n.right = n.right, n.left
			}
			stack = stack[:len(stack)-1]
		}
	}
}

// Reverse flips t's orientation in place (swap source/sink throughout, per
// reverseSubtree's rules for each kind) and returns t. Used by callers that
// built a subtree in one direction but need to compose it the other way
// round without re-deriving it from scratch.
//
// Complexity: O(size(t)), iterative.
func (t *Tree) Reverse() *Tree {
	reverseSubtree(t)
	return t
}

// Destroy walks t with an explicit work stack, nilling out every left/right
// pointer it visits, and returns the number of nodes visited. Go's garbage
// collector reclaims the memory regardless; Destroy exists so tests can
// assert a subtree was fully, iteratively traversed without recursion depth
// concerns on adversarially deep spines (spec §9).
func (t *Tree) Destroy() int {
	if t == nil {
		return 0
	}
	count := 0
	stack := []*Tree{t}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
		n.left, n.right = nil, nil
	}
	return count
}

// CountNodes reports the size of t's subtree without mutating it, used by
// tests to confirm composition results have the expected shape (e.g. that
// two composed subtrees were not aliased).
func (t *Tree) CountNodes() int {
	if t == nil {
		return 0
	}
	stack := []*Tree{t}
	count := 0
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++
		if n.left != nil {
			stack = append(stack, n.left)
		}
		if n.right != nil {
			stack = append(stack, n.right)
		}
	}
	return count
}
