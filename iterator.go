package orderedmap

// Iterator performs an in-order walk over a tree using the parent
// back-references, so no per-iterator stack is held. A fresh iterator is
// positioned before the first key: Next advances forward (keys in strictly
// increasing order), Prev backward (Prev on a fresh iterator starts at the
// maximum). Once a direction is exhausted the iterator stays exhausted until
// Reset returns it to the fresh position.
//
// Structural mutation of the tree invalidates any outstanding iterator.
type Iterator struct {
	tree  *treeStruct
	on    *nodeStruct
	fresh bool
}

func (tree *treeStruct) Iterator() (iter *Iterator) {
	iter = &Iterator{tree: tree, fresh: true}
	return
}

func (iter *Iterator) Next() (key Key, value Value, ok bool) {
	if iter.fresh {
		iter.fresh = false
		if nil == iter.tree.root {
			ok = false
			return
		}
		iter.on = iter.tree.root.min()
	} else {
		if nil == iter.on {
			ok = false
			return
		}
		iter.on = successor(iter.on)
	}

	if nil == iter.on {
		ok = false
		return
	}

	key = iter.on.key
	value = iter.on.value
	ok = true

	return
}

func (iter *Iterator) Prev() (key Key, value Value, ok bool) {
	if iter.fresh {
		iter.fresh = false
		if nil == iter.tree.root {
			ok = false
			return
		}
		iter.on = iter.tree.root.max()
	} else {
		if nil == iter.on {
			ok = false
			return
		}
		iter.on = predecessor(iter.on)
	}

	if nil == iter.on {
		ok = false
		return
	}

	key = iter.on.key
	value = iter.on.value
	ok = true

	return
}

// Reset returns the iterator to its fresh (before-first) position.
func (iter *Iterator) Reset() {
	iter.on = nil
	iter.fresh = true
}

// successor returns the node holding the next higher key, or nil. Purely
// structural: either the leftmost node of the right subtree, or the first
// ancestor reached from a left child.
func successor(node *nodeStruct) (next *nodeStruct) {
	if nil != node.right {
		next = node.right.min()
		return
	}

	up := node.parent
	for (nil != up) && (node == up.right) {
		node = up
		up = up.parent
	}
	next = up

	return
}

// predecessor is the mirror of successor.
func predecessor(node *nodeStruct) (prev *nodeStruct) {
	if nil != node.left {
		prev = node.left.max()
		return
	}

	up := node.parent
	for (nil != up) && (node == up.left) {
		node = up
		up = up.parent
	}
	prev = up

	return
}
