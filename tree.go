package orderedmap

// treeStruct carries the state shared by both balancing cores: the configured
// comparator, the owned root, and the maintained item counter. The read path
// (lookup, min/max, order statistics) is color/balance agnostic and lives
// here; only the mutating fix-up logic differs per core.
type treeStruct struct {
	Compare
	root  *nodeStruct
	count int
}

// API functions common to both cores

func (tree *treeStruct) GetByKey(key Key) (value Value, ok bool, err error) {
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

	value = node.value
	ok = true
	err = nil

	return
}

func (tree *treeStruct) ContainsKey(key Key) (ok bool, err error) {
	node, searchErr := tree.searchNode(key)
	if nil != searchErr {
		err = searchErr
		return
	}

	ok = (nil != node)
	err = nil

	return
}

func (tree *treeStruct) Len() (numberOfItems int) {
	numberOfItems = tree.count
	return
}

func (tree *treeStruct) IsEmpty() (empty bool) {
	empty = (nil == tree.root)
	return
}

func (tree *treeStruct) Min() (key Key, value Value, ok bool) {
	if nil == tree.root {
		ok = false
		return
	}

	node := tree.root.min()

	key = node.key
	value = node.value
	ok = true

	return
}

func (tree *treeStruct) Max() (key Key, value Value, ok bool) {
	if nil == tree.root {
		ok = false
		return
	}

	node := tree.root.max()

	key = node.key
	value = node.value
	ok = true

	return
}

func (tree *treeStruct) GetByIndex(index int) (key Key, value Value, ok bool, err error) {
	err = nil

	node := tree.root

	if (index < 0) || (nil == node) || (index >= node.len) {
		ok = false
		return
	}

	ok = true // index is within [0,# nodes), so we know we will succeed

	nodeIndex := nodeLen(node.left)

	for nodeIndex != index {
		if index < nodeIndex {
			node = node.left
			nodeIndex -= nodeLen(node.right) + 1
		} else { // index > nodeIndex
			node = node.right
			nodeIndex += nodeLen(node.left) + 1
		}
	}

	key = node.key
	value = node.value

	return
}

func (tree *treeStruct) BisectLeft(key Key) (index int, found bool, err error) {
	rank, node, rankErr := tree.rankOf(key)
	if nil != rankErr {
		err = rankErr
		return
	}

	if nil == node {
		// key not found; rank is where key would insert, so the key:value
		// just before it is at rank-1 (or -1 if none precede it)
		index = rank - 1
		found = false
		err = nil
		return
	}

	index = rank
	found = true
	err = nil

	return
}

func (tree *treeStruct) BisectRight(key Key) (index int, found bool, err error) {
	rank, node, rankErr := tree.rankOf(key)
	if nil != rankErr {
		err = rankErr
		return
	}

	if nil == node {
		// key not found; rank is where key would insert, which is also the
		// index of the key:value just after it
		index = rank
		found = false
		err = nil
		return
	}

	index = rank
	found = true
	err = nil

	return
}

// Internal helpers

// searchNode performs the standard BST descent.
func (tree *treeStruct) searchNode(key Key) (node *nodeStruct, err error) {
	node = tree.root

	for nil != node {
		compareResult, compareErr := tree.Compare(key, node.key)
		if nil != compareErr {
			node = nil
			err = compareErr
			return
		}

		switch {
		case compareResult < 0: // key < node.key
			node = node.left
		case compareResult > 0: // key > node.key
			node = node.right
		default: // compareResult == 0 (key == node.key)
			err = nil
			return
		}
	}

	err = nil

	return
}

// rankOf returns the number of keys strictly less than key along with the
// matching node (nil if key is absent, in which case rank is the insertion
// position).
func (tree *treeStruct) rankOf(key Key) (rank int, node *nodeStruct, err error) {
	node = tree.root

	for nil != node {
		compareResult, compareErr := tree.Compare(key, node.key)
		if nil != compareErr {
			node = nil
			err = compareErr
			return
		}

		switch {
		case compareResult < 0: // key < node.key
			node = node.left
		case compareResult > 0: // key > node.key
			rank += nodeLen(node.left) + 1
			node = node.right
		default: // compareResult == 0 (key == node.key)
			rank += nodeLen(node.left)
			err = nil
			return
		}
	}

	err = nil

	return
}

// adjustLensUpward applies delta to the subtree len of every ancestor of
// node, node itself excluded. Called after attaching or before accounting a
// spliced-out node.
func adjustLensUpward(node *nodeStruct, delta int) {
	for up := node.parent; nil != up; up = up.parent {
		up.len += delta
	}
}

// swapWithSuccessor exchanges the key and value of a two-children node with
// those of its in-order successor (the leftmost node of its right subtree)
// and returns the successor, which has at most one (right) child and is the
// node to physically remove.
func swapWithSuccessor(node *nodeStruct) (successor *nodeStruct) {
	successor = node.right.min()

	node.key, successor.key = successor.key, node.key
	node.value, successor.value = successor.value, node.value

	return
}

// Reset releases every node back to the allocator pool, leaving the tree
// empty.
func (tree *treeStruct) Reset() {
	releaseAll(tree.root)
	tree.root = nil
	tree.count = 0
}

func releaseAll(node *nodeStruct) {
	if nil == node {
		return
	}
	releaseAll(node.left)
	releaseAll(node.right)
	freeNode(node)
}
