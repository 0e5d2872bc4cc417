package orderedmap

// Red-Black tree core. The invariants maintained across every mutation:
//
//   1. every node is red or black and the root, if present, is black
//   2. no red node has a red child
//   3. every path from a node to any of its descendant nil leaves passes
//      through the same number of black nodes
//
// New nodes are inserted red (an empty-tree root insertion ends black) and
// both fix-up passes are explicit iterative loops walking toward the root
// via the parent back-references, so stack depth stays bounded and the
// termination conditions are the loop exits.

type rbTreeStruct struct {
	treeStruct
}

func (tree *rbTreeStruct) Put(key Key, value Value) (added bool, err error) {
	if nil == tree.root {
		node := newNode(key, value)
		node.color = black
		tree.root = node
		tree.count = 1
		added = true
		err = nil
		return
	}

	on := tree.root
	var node *nodeStruct

	for nil == node {
		compareResult, compareErr := tree.Compare(key, on.key)
		if nil != compareErr {
			err = compareErr
			return
		}

		switch {
		case compareResult < 0: // key < on.key
			if nil == on.left {
				node = newNode(key, value)
				node.color = red
				node.parent = on
				on.left = node
			} else {
				on = on.left
			}
		case compareResult > 0: // key > on.key
			if nil == on.right {
				node = newNode(key, value)
				node.color = red
				node.parent = on
				on.right = node
			} else {
				on = on.right
			}
		default: // compareResult == 0 (key == on.key)
			on.value = value
			added = false
			err = nil
			return
		}
	}

	adjustLensUpward(node, 1)
	tree.count++

	tree.insertRepair(node)
	tree.root.color = black // enforced unconditionally after fix-up

	added = true
	err = nil

	return
}

// insertRepair restores the red-black invariants after node (red) has been
// attached as a leaf. Cases follow the parent/uncle configuration.
func (tree *rbTreeStruct) insertRepair(node *nodeStruct) {
	for {
		up := node.parent

		if nil == up { // reached the root
			node.color = black
			return
		}

		if black == up.color { // red child under black parent needs no work
			return
		}

		grand := up.parent

		if nil == grand { // Case 1: parent is the root and red
			up.color = black
			return
		}

		uncleNode := node.uncle()

		if isRed(uncleNode) { // Case 2: recolor and continue from grandparent
			up.color = black
			uncleNode.color = black
			grand.color = red
			node = grand
			continue
		}

		// Case 3: black uncle, node is an inner (zig-zag) child; rotate at
		// the parent to convert to the straight-line case
		if (node == up.right) && (up == grand.left) {
			tree.rotateLeft(up)
			node = node.left
		} else if (node == up.left) && (up == grand.right) {
			tree.rotateRight(up)
			node = node.right
		}

		// Case 4: black uncle, node is an outer child; rotate at the
		// grandparent and swap grandparent/parent colors
		up = node.parent
		grand = up.parent

		if node == up.left {
			tree.rotateRight(grand)
		} else {
			tree.rotateLeft(grand)
		}
		up.color = black
		grand.color = red

		return
	}
}

func (tree *rbTreeStruct) DeleteByKey(key Key) (ok bool, err error) {
	node, searchErr := tree.searchNode(key)
	if nil != searchErr {
		err = searchErr
		return
	}
	if nil == node {
		ok = false
		err = nil
		return
	}

	tree.deleteNode(node)

	ok = true
	err = nil

	return
}

func (tree *rbTreeStruct) DeleteByIndex(index int) (ok bool, err error) {
	key, _, ok, err := tree.GetByIndex(index)
	if (nil != err) || !ok {
		return
	}

	ok, err = tree.DeleteByKey(key)

	return
}

func (tree *rbTreeStruct) deleteNode(node *nodeStruct) {
	// A two-children node trades key/value with its in-order successor and
	// deletion proceeds at the successor, which has at most one child.
	if (nil != node.left) && (nil != node.right) {
		node = swapWithSuccessor(node)
	}

	child := node.left
	if nil == child {
		child = node.right
	}

	// Resolve any double-black deficiency while node is still linked, then
	// splice the child into its place.
	tree.removeRepair(node, child)

	adjustLensUpward(node, -1)
	tree.replaceChild(node, child)
	tree.count--

	if nil != tree.root {
		tree.root.color = black
	}

	freeNode(node)
}

// removeRepair restores the black-height invariant before the (still linked)
// node is spliced out in favor of child. Cases are on the sibling's color
// and the sibling's children's colors.
func (tree *rbTreeStruct) removeRepair(node *nodeStruct, child *nodeStruct) {
	if red == node.color {
		// removing a red node leaves every path's black count unchanged
		return
	}

	if isRed(child) {
		// the red child absorbs the deficiency by turning black
		child.color = black
		return
	}

	// A black node over a black (or nil) child: a double-black deficiency
	// walks toward the root until absorbed.
	for {
		if nil == node.parent { // deficiency reached the root; whole tree shrank
			return
		}

		sibling := node.sibling()

		if red == sibling.color {
			// red sibling: rotate to convert to a black-sibling case
			node.parent.color = red
			sibling.color = black
			if node == node.parent.left {
				tree.rotateLeft(node.parent)
			} else {
				tree.rotateRight(node.parent)
			}
			sibling = node.sibling()
		}

		if isBlack(sibling.left) && isBlack(sibling.right) {
			// black sibling with two black children: recolor; either the
			// parent absorbs the deficiency or it propagates upward
			sibling.color = red
			if black == node.parent.color {
				node = node.parent
				continue
			}
			node.parent.color = black
			return
		}

		// black sibling with a red child: align the red child to the outer
		// position if needed, then rotate at the parent to absorb the
		// deficiency
		if (node == node.parent.left) && isBlack(sibling.right) {
			sibling.color = red
			sibling.left.color = black
			tree.rotateRight(sibling)
		} else if (node == node.parent.right) && isBlack(sibling.left) {
			sibling.color = red
			sibling.right.color = black
			tree.rotateLeft(sibling)
		}
		sibling = node.sibling()

		sibling.color = node.parent.color
		node.parent.color = black
		if node == node.parent.left {
			sibling.right.color = black
			tree.rotateLeft(node.parent)
		} else {
			sibling.left.color = black
			tree.rotateRight(node.parent)
		}

		return
	}
}
