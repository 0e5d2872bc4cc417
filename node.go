package orderedmap

import "sync"

type nodeColor bool

const (
	red   nodeColor = true
	black nodeColor = false
)

// A node owns its two children; the up pointer is a non-owning back-reference
// used only for traversal and rotation bookkeeping. color is meaningful only
// under the Red-Black core, height only under the AVL core. len counts the
// nodes in the subtree rooted here (including the node itself) and supports
// the order-statistic operations.
type nodeStruct struct {
	key    Key
	value  Value
	left   *nodeStruct
	right  *nodeStruct
	parent *nodeStruct
	color  nodeColor
	height int
	len    int
}

// Node allocator: deleted nodes are reclaimed into a freelist shared by all
// trees so churning workloads do not continually allocate.

var (
	poolLock  sync.Mutex
	nodePool  *nodeStruct // linked (via parent) list of reclaimed nodes
	freeNodes int
)

// newNode returns a fresh leaf node with len == 1; color and height are the
// caller's responsibility to set.
func newNode(key Key, value Value) (node *nodeStruct) {
	poolLock.Lock()
	if nil == nodePool {
		poolLock.Unlock()
		node = &nodeStruct{key: key, value: value, len: 1}
		return
	}
	node = nodePool
	nodePool = node.parent
	freeNodes--
	poolLock.Unlock()

	node.key = key
	node.value = value
	node.left = nil
	node.right = nil
	node.parent = nil
	node.color = black
	node.height = 0
	node.len = 1

	return
}

// freeNode reclaims a node into the pool. The caller must have unlinked it
// from its tree first.
func freeNode(node *nodeStruct) {
	node.key = nil
	node.value = nil
	node.left = nil
	node.right = nil
	node.color = black
	node.height = 0
	node.len = 0

	poolLock.Lock()
	node.parent = nodePool // reused as freelist pointer
	nodePool = node
	freeNodes++
	poolLock.Unlock()
}

func nodeLen(node *nodeStruct) (length int) {
	if nil == node {
		length = 0
	} else {
		length = node.len
	}
	return
}

func nodeHeight(node *nodeStruct) (height int) {
	if nil == node {
		height = 0
	} else {
		height = node.height
	}
	return
}

func isRed(node *nodeStruct) (nodeIsRed bool) {
	nodeIsRed = (nil != node) && (red == node.color)
	return
}

func isBlack(node *nodeStruct) (nodeIsBlack bool) {
	nodeIsBlack = (nil == node) || (black == node.color)
	return
}

func (node *nodeStruct) sibling() (siblingNode *nodeStruct) {
	if nil == node.parent {
		return
	}
	if node == node.parent.left {
		siblingNode = node.parent.right
	} else {
		siblingNode = node.parent.left
	}
	return
}

func (node *nodeStruct) uncle() (uncleNode *nodeStruct) {
	if nil == node.parent.parent {
		return
	}
	uncleNode = node.parent.sibling()
	return
}

func (node *nodeStruct) min() (minNode *nodeStruct) {
	minNode = node
	for nil != minNode.left {
		minNode = minNode.left
	}
	return
}

func (node *nodeStruct) max() (maxNode *nodeStruct) {
	maxNode = node
	for nil != maxNode.right {
		maxNode = maxNode.right
	}
	return
}

// replaceChild installs newChild (which may be nil) in the tree position
// currently occupied by oldNode, fixing the grandparent link (or the root).
// oldNode's own parent pointer is left untouched.
func (tree *treeStruct) replaceChild(oldNode *nodeStruct, newChild *nodeStruct) {
	up := oldNode.parent
	if nil != newChild {
		newChild.parent = up
	}
	if nil == up {
		tree.root = newChild
	} else if oldNode == up.left {
		up.left = newChild
	} else {
		up.right = newChild
	}
}

// rotateLeft lifts oldParentNode's right child above it. Exactly three links
// are reassigned (plus the corresponding parent back-references) and the
// in-order key sequence is preserved. Subtree lens are recomputed from the
// children. Returns the new subtree root.
func (tree *treeStruct) rotateLeft(oldParentNode *nodeStruct) (newParentNode *nodeStruct) {
	newParentNode = oldParentNode.right

	tree.replaceChild(oldParentNode, newParentNode)

	oldParentNode.right = newParentNode.left
	if nil != newParentNode.left {
		newParentNode.left.parent = oldParentNode
	}
	newParentNode.left = oldParentNode
	oldParentNode.parent = newParentNode

	oldParentNode.len = 1 + nodeLen(oldParentNode.left) + nodeLen(oldParentNode.right)
	newParentNode.len = 1 + nodeLen(newParentNode.left) + nodeLen(newParentNode.right)

	return
}

// rotateRight is the mirror of rotateLeft.
func (tree *treeStruct) rotateRight(oldParentNode *nodeStruct) (newParentNode *nodeStruct) {
	newParentNode = oldParentNode.left

	tree.replaceChild(oldParentNode, newParentNode)

	oldParentNode.left = newParentNode.right
	if nil != newParentNode.right {
		newParentNode.right.parent = oldParentNode
	}
	newParentNode.right = oldParentNode
	oldParentNode.parent = newParentNode

	oldParentNode.len = 1 + nodeLen(oldParentNode.left) + nodeLen(oldParentNode.right)
	newParentNode.len = 1 + nodeLen(newParentNode.left) + nodeLen(newParentNode.right)

	return
}
