package huffman

import "fmt"

// Node is a weighted strict binary tree node. A node has either no children
// (a leaf, carrying a Symbol) or two (an internal node with NoSymbol and the
// sum of its children's weights).
//
// A node owns its children: once merged, a subtree must not be referenced from
// anywhere else.
type Node struct {
	Weight int
	Symbol Symbol
	Left   *Node
	Right  *Node
}

// NewLeaf returns a leaf for symbol s.
func NewLeaf(s Symbol, weight int) *Node {
	return &Node{Weight: weight, Symbol: s}
}

// Merge returns a new internal node owning left and right.
func Merge(left, right *Node) *Node {
	if left == nil || right == nil {
		panic("huffman: merge with a nil subtree")
	}
	return &Node{Weight: left.Weight + right.Weight, Left: left, Right: right}
}

func (n *Node) IsLeaf() bool {
	return n.Left == nil && n.Right == nil
}

// Label returns the symbol of a leaf. Internal nodes report false.
func (n *Node) Label() (Symbol, bool) {
	if !n.IsLeaf() {
		return NoSymbol, false
	}
	return n.Symbol, true
}

// Size returns the number of nodes in the tree.
func (n *Node) Size() int {
	size := 0
	n.PreOrder(func(*Node) { size++ })
	return size
}

// Height returns the number of edges on the longest root to leaf path. A nil
// tree has height -1.
func (n *Node) Height() int {
	height := -1
	if n == nil {
		return height
	}
	level := []*Node{n}
	for len(level) > 0 {
		height++
		var next []*Node
		for _, x := range level {
			if x.Left != nil {
				next = append(next, x.Left)
			}
			if x.Right != nil {
				next = append(next, x.Right)
			}
		}
		level = next
	}
	return height
}

// Validate checks the tree shape: every node has zero or two children, leaves
// are labelled, internal nodes are not and weigh the sum of their children.
func (n *Node) Validate() error {
	var err error
	n.PreOrder(func(x *Node) {
		if err != nil {
			return
		}
		switch {
		case x.Weight < 0:
			err = fmt.Errorf("%w: negative weight %d", ErrInvalidTree, x.Weight)
		case (x.Left == nil) != (x.Right == nil):
			err = fmt.Errorf("%w: node of weight %d has a single child", ErrInvalidTree, x.Weight)
		case x.IsLeaf() && x.Symbol == NoSymbol:
			err = fmt.Errorf("%w: unlabelled leaf of weight %d", ErrInvalidTree, x.Weight)
		case !x.IsLeaf() && x.Symbol != NoSymbol:
			err = fmt.Errorf("%w: internal node labelled %s", ErrInvalidTree, x.Symbol)
		case !x.IsLeaf() && x.Weight != x.Left.Weight+x.Right.Weight:
			err = fmt.Errorf("%w: weight %d != %d + %d", ErrInvalidTree, x.Weight, x.Left.Weight, x.Right.Weight)
		}
	})
	return err
}

// PreOrder visits node, left subtree, right subtree.
func (n *Node) PreOrder(visit func(*Node)) {
	if n == nil {
		return
	}
	stack := []*Node{n}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(x)
		if x.Right != nil {
			stack = append(stack, x.Right)
		}
		if x.Left != nil {
			stack = append(stack, x.Left)
		}
	}
}

// InOrder visits left subtree, node, right subtree.
func (n *Node) InOrder(visit func(*Node)) {
	var stack []*Node
	curr := n
	for curr != nil || len(stack) > 0 {
		for curr != nil {
			stack = append(stack, curr)
			curr = curr.Left
		}
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(x)
		curr = x.Right
	}
}

// PostOrder visits left subtree, right subtree, node. visit may unlink the
// children of the node it is given.
func (n *Node) PostOrder(visit func(*Node)) {
	var (
		stack []*Node
		prev  *Node
	)
	curr := n
	for curr != nil || len(stack) > 0 {
		for curr != nil {
			stack = append(stack, curr)
			curr = curr.Left
		}
		top := stack[len(stack)-1]
		if top.Right != nil && top.Right != prev {
			curr = top.Right
			continue
		}
		stack = stack[:len(stack)-1]
		visit(top)
		prev = top
	}
}

// LevelOrder visits the tree breadth first, left to right.
func (n *Node) LevelOrder(visit func(*Node)) {
	if n == nil {
		return
	}
	queue := []*Node{n}
	for len(queue) > 0 {
		x := queue[0]
		queue = queue[1:]
		visit(x)
		if x.Left != nil {
			queue = append(queue, x.Left)
		}
		if x.Right != nil {
			queue = append(queue, x.Right)
		}
	}
}

// Release tears the tree down bottom-up, unlinking every child pointer. It
// uses no recursion, so arbitrarily deep trees are fine.
func (n *Node) Release() {
	n.PostOrder(func(x *Node) {
		x.Left, x.Right = nil, nil
		x.Weight = 0
		x.Symbol = NoSymbol
	})
}
