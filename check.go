package orderedmap

import "fmt"

// Invariant checker. Validate is intended for tests and debugging: the
// production operation paths never pay for these walks. A Validate failure
// indicates either a library bug or a caller contract violation (typically a
// comparator that is not a total order).

// validateStructure confirms the invariants common to both cores: parent
// back-reference consistency, subtree len consistency, the maintained count
// matching the reachable node count, and strictly increasing in-order key
// sequence.
func (tree *treeStruct) validateStructure() (err error) {
	reachable, err := validateSubtree(tree.root, nil)
	if nil != err {
		return
	}

	if reachable != tree.count {
		err = fmt.Errorf("maintained count (%v) != reachable node count (%v)", tree.count, reachable)
		return
	}

	if nil == tree.root {
		err = nil
		return
	}

	node := tree.root.min()
	for next := successor(node); nil != next; next = successor(node) {
		compareResult, compareErr := tree.Compare(node.key, next.key)
		if nil != compareErr {
			err = compareErr
			return
		}
		if compareResult >= 0 {
			err = fmt.Errorf("in-order sequence not strictly increasing at key %v", node.key)
			return
		}
		node = next
	}

	err = nil

	return
}

func validateSubtree(node *nodeStruct, up *nodeStruct) (count int, err error) {
	if nil == node {
		err = nil
		return
	}

	if node.parent != up {
		err = fmt.Errorf("node %v has a bad parent back-reference", node.key)
		return
	}

	leftCount, err := validateSubtree(node.left, node)
	if nil != err {
		return
	}
	rightCount, err := validateSubtree(node.right, node)
	if nil != err {
		return
	}

	count = leftCount + rightCount + 1

	if node.len != count {
		err = fmt.Errorf("node %v has len %v but %v reachable nodes", node.key, node.len, count)
		return
	}

	err = nil

	return
}

// Validate confirms the red-black invariants on top of the structural ones:
// black root, no red node with a red child, and a uniform black count on
// every path from the root to its nil leaves.
func (tree *rbTreeStruct) Validate() (err error) {
	err = tree.validateStructure()
	if nil != err {
		return
	}

	if isRed(tree.root) {
		err = fmt.Errorf("root is red")
		return
	}

	_, err = blackHeight(tree.root)

	return
}

// blackHeight returns the black count on every path from node down to its
// nil leaves (the nil leaves themselves counting 1), checking uniformity and
// the no-red-red rule along the way.
func blackHeight(node *nodeStruct) (height int, err error) {
	if nil == node {
		height = 1
		err = nil
		return
	}

	if isRed(node) && (isRed(node.left) || isRed(node.right)) {
		err = fmt.Errorf("red node %v has a red child", node.key)
		return
	}

	leftHeight, err := blackHeight(node.left)
	if nil != err {
		return
	}
	rightHeight, err := blackHeight(node.right)
	if nil != err {
		return
	}

	if leftHeight != rightHeight {
		err = fmt.Errorf("node %v has unequal black-heights (%v vs %v)", node.key, leftHeight, rightHeight)
		return
	}

	height = leftHeight
	if black == node.color {
		height++
	}
	err = nil

	return
}

// Validate confirms the AVL invariants on top of the structural ones: every
// stored height correct and every node's skew within {-1, 0, 1}.
func (tree *avlTreeStruct) Validate() (err error) {
	err = tree.validateStructure()
	if nil != err {
		return
	}

	_, err = checkBalance(tree.root)

	return
}

func checkBalance(node *nodeStruct) (height int, err error) {
	if nil == node {
		err = nil
		return
	}

	leftHeight, err := checkBalance(node.left)
	if nil != err {
		return
	}
	rightHeight, err := checkBalance(node.right)
	if nil != err {
		return
	}

	height = leftHeight
	if rightHeight > height {
		height = rightHeight
	}
	height++

	if node.height != height {
		err = fmt.Errorf("node %v has stored height %v but actual height %v", node.key, node.height, height)
		return
	}

	skew := leftHeight - rightHeight
	if (skew < -1) || (skew > 1) {
		err = fmt.Errorf("node %v is out of balance (skew %v)", node.key, skew)
		return
	}

	err = nil

	return
}
