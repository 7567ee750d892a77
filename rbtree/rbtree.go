// Package rbtree implements a self-balancing red-black tree keyed by a
// three-way comparator. It follows the classic CLRS formulation: a shared
// sentinel stands in for every nil child and for the root's parent, new
// nodes are created red, and insert/delete each run a constant-amortised
// fixup pass that restores the five colour invariants.
package rbtree

import (
	gc "github.com/TomTonic/gocontainers"
)

type color bool

const (
	red   color = true
	black color = false
)

type node[T any] struct {
	payload T
	color   color
	left    *node[T]
	right   *node[T]
	parent  *node[T]
}

// Tree is a red-black tree of elements of type T, ordered by cmp.
type Tree[T any] struct {
	root    *node[T]
	nilNode *node[T] // shared sentinel; always black
	length  int
	cmp     gc.CompareFunc[T]
	destroy gc.DestroyFunc[T]
	print   gc.PrintFunc[T]
}

// Create returns a new, empty Tree. cmp is required. destroy and print are
// optional; destroy is only consulted by DeleteWithEntry and
// DestroyWithEntries, and print only by Print.
func Create[T any](cmp gc.CompareFunc[T], destroy gc.DestroyFunc[T], print gc.PrintFunc[T]) (*Tree[T], error) {
	if cmp == nil {
		return nil, gc.ErrBadArg
	}
	sentinel := &node[T]{color: black}
	sentinel.left, sentinel.right, sentinel.parent = sentinel, sentinel, sentinel
	return &Tree[T]{root: sentinel, nilNode: sentinel, cmp: cmp, destroy: destroy, print: print}, nil
}

// NumEntries returns the number of nodes in the tree.
func (t *Tree[T]) NumEntries() int { return t.length }

// DataSize is an alias of NumEntries, matching the original library's
// rbt_get_data_size getter. Unlike darray, a tree has no separate
// allocated-capacity concept to distinguish from its population (each node
// is allocated individually on insert and freed individually on delete), so
// DataSize here reports the same quantity as NumEntries rather than a
// distinct capacity.
func (t *Tree[T]) DataSize() int { return t.length }

func (t *Tree[T]) leftRotate(x *node[T]) {
	y := x.right
	x.right = y.left
	if y.left != t.nilNode {
		y.left.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == t.nilNode:
		t.root = y
	case x == x.parent.left:
		x.parent.left = y
	default:
		x.parent.right = y
	}
	y.left = x
	x.parent = y
}

func (t *Tree[T]) rightRotate(x *node[T]) {
	y := x.left
	x.left = y.right
	if y.right != t.nilNode {
		y.right.parent = x
	}
	y.parent = x.parent
	switch {
	case x.parent == t.nilNode:
		t.root = y
	case x == x.parent.right:
		x.parent.right = y
	default:
		x.parent.left = y
	}
	y.right = x
	x.parent = y
}

// Insert adds entry to the tree. It returns gocontainers.ErrDuplicate
// (a distinguishable non-error outcome, not a failure) if an equal key is
// already present; the tree is unchanged in that case.
func (t *Tree[T]) Insert(entry T) error {
	y := t.nilNode
	x := t.root
	for x != t.nilNode {
		y = x
		c := t.cmp(entry, x.payload)
		switch {
		case c == 0:
			return gc.ErrDuplicate
		case c < 0:
			x = x.left
		default:
			x = x.right
		}
	}
	z := &node[T]{payload: entry, color: red, left: t.nilNode, right: t.nilNode, parent: y}
	switch {
	case y == t.nilNode:
		t.root = z
	case t.cmp(entry, y.payload) < 0:
		y.left = z
	default:
		y.right = z
	}
	t.length++
	t.insertFixup(z)
	return nil
}

func (t *Tree[T]) insertFixup(z *node[T]) {
	for z.parent.color == red {
		if z.parent == z.parent.parent.left {
			y := z.parent.parent.right // uncle
			if y.color == red {
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.right {
					z = z.parent
					t.leftRotate(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.rightRotate(z.parent.parent)
			}
		} else {
			y := z.parent.parent.left // uncle
			if y.color == red {
				z.parent.color = black
				y.color = black
				z.parent.parent.color = red
				z = z.parent.parent
			} else {
				if z == z.parent.left {
					z = z.parent
					t.rightRotate(z)
				}
				z.parent.color = black
				z.parent.parent.color = red
				t.leftRotate(z.parent.parent)
			}
		}
	}
	t.root.color = black
}

func (t *Tree[T]) find(key T) *node[T] {
	x := t.root
	for x != t.nilNode {
		c := t.cmp(key, x.payload)
		switch {
		case c == 0:
			return x
		case c < 0:
			x = x.left
		default:
			x = x.right
		}
	}
	return t.nilNode
}

func (t *Tree[T]) minimum(x *node[T]) *node[T] {
	for x.left != t.nilNode {
		x = x.left
	}
	return x
}

func (t *Tree[T]) maximum(x *node[T]) *node[T] {
	for x.right != t.nilNode {
		x = x.right
	}
	return x
}

// transplant replaces the subtree rooted at u with the subtree rooted at v.
func (t *Tree[T]) transplant(u, v *node[T]) {
	switch {
	case u.parent == t.nilNode:
		t.root = v
	case u == u.parent.left:
		u.parent.left = v
	default:
		u.parent.right = v
	}
	v.parent = u.parent
}

// Delete removes the node equal to key. Returns gocontainers.ErrAbsent if
// no such node exists.
func (t *Tree[T]) Delete(key T) error {
	z := t.find(key)
	if z == t.nilNode {
		return gc.ErrAbsent
	}
	t.deleteNode(z)
	return nil
}

// DeleteWithEntry is Delete, but first invokes the tree's destructor (if
// any) on the removed node's payload. Returns gocontainers.ErrAbsent if no
// node equal to key exists.
func (t *Tree[T]) DeleteWithEntry(key T) error {
	z := t.find(key)
	if z == t.nilNode {
		return gc.ErrAbsent
	}
	if t.destroy != nil {
		t.destroy(z.payload)
	}
	t.deleteNode(z)
	return nil
}

// deleteNode unlinks z from the tree and runs delete-fixup if the colour
// removed from z's position was black.
func (t *Tree[T]) deleteNode(z *node[T]) {
	y := z
	yOriginalColor := y.color
	var x *node[T]
	switch {
	case z.left == t.nilNode:
		x = z.right
		t.transplant(z, z.right)
	case z.right == t.nilNode:
		x = z.left
		t.transplant(z, z.left)
	default:
		y = t.minimum(z.right)
		yOriginalColor = y.color
		x = y.right
		if y.parent == z {
			x.parent = y
		} else {
			t.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		t.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}
	if yOriginalColor == black {
		t.deleteFixup(x)
	}
	t.length--
}

func (t *Tree[T]) deleteFixup(x *node[T]) {
	for x != t.root && x.color == black {
		if x == x.parent.left {
			w := x.parent.right
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.leftRotate(x.parent)
				w = x.parent.right
			}
			if w.left.color == black && w.right.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.right.color == black {
					w.left.color = black
					w.color = red
					t.rightRotate(w)
					w = x.parent.right
				}
				w.color = x.parent.color
				x.parent.color = black
				w.right.color = black
				t.leftRotate(x.parent)
				x = t.root
			}
		} else {
			w := x.parent.left
			if w.color == red {
				w.color = black
				x.parent.color = red
				t.rightRotate(x.parent)
				w = x.parent.left
			}
			if w.right.color == black && w.left.color == black {
				w.color = red
				x = x.parent
			} else {
				if w.left.color == black {
					w.right.color = black
					w.color = red
					t.leftRotate(w)
					w = x.parent.left
				}
				w.color = x.parent.color
				x.parent.color = black
				w.left.color = black
				t.rightRotate(x.parent)
				x = t.root
			}
		}
	}
	x.color = black
}

// Min writes the minimum key's payload into *out. ok is false iff the tree
// is empty.
func (t *Tree[T]) Min(out *T) (ok bool) {
	if t.root == t.nilNode {
		return false
	}
	n := t.minimum(t.root)
	if out != nil {
		*out = n.payload
	}
	return true
}

// Max writes the maximum key's payload into *out. ok is false iff the tree
// is empty.
func (t *Tree[T]) Max(out *T) (ok bool) {
	if t.root == t.nilNode {
		return false
	}
	n := t.maximum(t.root)
	if out != nil {
		*out = n.payload
	}
	return true
}

// Search copies the payload of the node equal to key into *out and reports
// whether it was found.
func (t *Tree[T]) Search(key T, out *T) bool {
	n := t.find(key)
	if n == t.nilNode {
		return false
	}
	if out != nil {
		*out = n.payload
	}
	return true
}

// KeyExists reports whether a node equal to key is present.
func (t *Tree[T]) KeyExists(key T) bool {
	return t.find(key) != t.nilNode
}

// ToArray copies every payload, in ascending (in-order) order, into a
// freshly allocated slice of length NumEntries.
func (t *Tree[T]) ToArray() []T {
	out := make([]T, 0, t.length)
	var walk func(n *node[T])
	walk = func(n *node[T]) {
		if n == t.nilNode {
			return
		}
		walk(n.left)
		out = append(out, n.payload)
		walk(n.right)
	}
	walk(t.root)
	return out
}

// Height returns the longest root-to-leaf path length; 0 when empty.
func (t *Tree[T]) Height() int {
	var h func(n *node[T]) int
	h = func(n *node[T]) int {
		if n == t.nilNode {
			return 0
		}
		l, r := h(n.left), h(n.right)
		if l > r {
			return l + 1
		}
		return r + 1
	}
	return h(t.root)
}

// inorderNodes materialises every node in ascending order without
// recursion, using an explicit stack. Teardown uses this instead of a
// recursive walk so the call stack never grows with tree depth.
func (t *Tree[T]) inorderNodes() []*node[T] {
	out := make([]*node[T], 0, t.length)
	stack := make([]*node[T], 0, 32)
	cur := t.root
	for cur != t.nilNode || len(stack) > 0 {
		for cur != t.nilNode {
			stack = append(stack, cur)
			cur = cur.left
		}
		cur = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur)
		cur = cur.right
	}
	return out
}

// Destroy releases every node without invoking the destructor.
func (t *Tree[T]) Destroy() {
	t.root = t.nilNode
	t.length = 0
}

// DestroyWithEntries invokes the destructor (if any) on every live
// element, in ascending order, then clears the tree. Teardown materialises
// the in-order node sequence up front and frees sequentially, so it never
// recurses to a depth proportional to the tree's size.
func (t *Tree[T]) DestroyWithEntries() {
	if t.destroy != nil {
		for _, n := range t.inorderNodes() {
			t.destroy(n.payload)
		}
	}
	t.root = t.nilNode
	t.length = 0
}

// Print writes every payload, in ascending order, using the tree's printer
// function. It is a no-op if no printer was supplied at Create.
func (t *Tree[T]) Print() {
	if t.print == nil {
		return
	}
	for _, n := range t.inorderNodes() {
		t.print(n.payload)
	}
}
