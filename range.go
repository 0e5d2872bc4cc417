package orderedmap

// Range is a lazy, restartable in-order walk over the keys in [lo, hi], both
// bounds inclusive. The starting position is located once at construction;
// each Next step is O(1) amortized via the parent back-references plus one
// comparison against the upper bound.
//
// As with Iterator, structural mutation of the tree invalidates a Range.
type Range struct {
	tree  *treeStruct
	hi    Key
	start *nodeStruct // first node with key >= lo (or nil)
	on    *nodeStruct
	fresh bool
}

func (tree *treeStruct) Range(lo Key, hi Key) (rng *Range, err error) {
	start, seekErr := tree.seekGE(lo)
	if nil != seekErr {
		err = seekErr
		return
	}

	rng = &Range{tree: tree, hi: hi, start: start, fresh: true}
	err = nil

	return
}

func (rng *Range) Next() (key Key, value Value, ok bool, err error) {
	var node *nodeStruct

	if rng.fresh {
		rng.fresh = false
		node = rng.start
	} else {
		if nil == rng.on {
			ok = false
			err = nil
			return
		}
		node = successor(rng.on)
	}

	if nil == node {
		rng.on = nil
		ok = false
		err = nil
		return
	}

	compareResult, compareErr := rng.tree.Compare(node.key, rng.hi)
	if nil != compareErr {
		err = compareErr
		return
	}
	if compareResult > 0 { // past the upper bound
		rng.on = nil
		ok = false
		err = nil
		return
	}

	rng.on = node

	key = node.key
	value = node.value
	ok = true
	err = nil

	return
}

// Reset restarts the walk from the lower bound.
func (rng *Range) Reset() {
	rng.on = nil
	rng.fresh = true
}

// seekGE locates the node holding the smallest key >= key, or nil.
func (tree *treeStruct) seekGE(key Key) (node *nodeStruct, err error) {
	on := tree.root

	for nil != on {
		compareResult, compareErr := tree.Compare(key, on.key)
		if nil != compareErr {
			node = nil
			err = compareErr
			return
		}

		if compareResult <= 0 { // key <= on.key, candidate; look left for better
			node = on
			on = on.left
		} else { // key > on.key
			on = on.right
		}
	}

	err = nil

	return
}
