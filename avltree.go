package orderedmap

// AVL tree core: same external contract as the Red-Black core, height-balance
// discipline instead of coloring. Every node's subtree height is stored; a
// node whose children's heights differ by two is repaired by one of the four
// rotation patterns (LL, LR, RR, RL) chosen by the taller child's own skew.
// The fix-up pass is an iterative walk from the modification point to the
// root, recomputing heights as it goes.

type avlTreeStruct struct {
	treeStruct
}

func (tree *avlTreeStruct) Put(key Key, value Value) (added bool, err error) {
	if nil == tree.root {
		node := newNode(key, value)
		node.height = 1
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
				node.height = 1
				node.parent = on
				on.left = node
			} else {
				on = on.left
			}
		case compareResult > 0: // key > on.key
			if nil == on.right {
				node = newNode(key, value)
				node.height = 1
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

	tree.retrace(node.parent)

	added = true
	err = nil

	return
}

func (tree *avlTreeStruct) DeleteByKey(key Key) (ok bool, err error) {
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

func (tree *avlTreeStruct) DeleteByIndex(index int) (ok bool, err error) {
	key, _, ok, err := tree.GetByIndex(index)
	if (nil != err) || !ok {
		return
	}

	ok, err = tree.DeleteByKey(key)

	return
}

func (tree *avlTreeStruct) deleteNode(node *nodeStruct) {
	if (nil != node.left) && (nil != node.right) {
		node = swapWithSuccessor(node)
	}

	child := node.left
	if nil == child {
		child = node.right
	}

	up := node.parent

	adjustLensUpward(node, -1)
	tree.replaceChild(node, child)
	tree.count--

	freeNode(node)

	tree.retrace(up)
}

// retrace walks from node to the root recomputing heights and rebalancing
// any node found with a skew of two.
func (tree *avlTreeStruct) retrace(node *nodeStruct) {
	for on := node; nil != on; {
		on = tree.rebalance(on)
		on = on.parent
	}
}

// rebalance recomputes on's height and, if out of balance, applies the
// appropriate rotation pattern. Returns the (possibly new) subtree root.
func (tree *avlTreeStruct) rebalance(on *nodeStruct) (subtreeRoot *nodeStruct) {
	skew := nodeHeight(on.left) - nodeHeight(on.right)

	switch {
	case skew > 1:
		taller := on.left
		if nodeHeight(taller.left) >= nodeHeight(taller.right) {
			// single LL rotation
			subtreeRoot = tree.rotateRight(on)
			fixHeight(subtreeRoot.right)
			fixHeight(subtreeRoot)
		} else {
			// double LR rotation
			tree.rotateLeft(taller)
			fixHeight(on.left.left)
			fixHeight(on.left)
			subtreeRoot = tree.rotateRight(on)
			fixHeight(subtreeRoot.right)
			fixHeight(subtreeRoot)
		}
	case skew < -1:
		taller := on.right
		if nodeHeight(taller.right) >= nodeHeight(taller.left) {
			// single RR rotation
			subtreeRoot = tree.rotateLeft(on)
			fixHeight(subtreeRoot.left)
			fixHeight(subtreeRoot)
		} else {
			// double RL rotation
			tree.rotateRight(taller)
			fixHeight(on.right.right)
			fixHeight(on.right)
			subtreeRoot = tree.rotateLeft(on)
			fixHeight(subtreeRoot.left)
			fixHeight(subtreeRoot)
		}
	default:
		fixHeight(on)
		subtreeRoot = on
	}

	return
}

func fixHeight(node *nodeStruct) {
	leftHeight := nodeHeight(node.left)
	rightHeight := nodeHeight(node.right)

	if leftHeight > rightHeight {
		node.height = leftHeight + 1
	} else {
		node.height = rightHeight + 1
	}
}
