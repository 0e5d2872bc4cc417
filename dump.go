package orderedmap

import (
	"fmt"
	"strings"
)

// Debug dumps: a flat per-node listing followed by an ASCII tree rendering.
// The per-core Dump supplies the balancing annotation (color or height).

func (tree *rbTreeStruct) Dump() {
	dumpInFlatForm(tree.root, rbNodeAnnotation)
	dumpInTreeForm(&tree.treeStruct)
}

func (tree *avlTreeStruct) Dump() {
	dumpInFlatForm(tree.root, avlNodeAnnotation)
	dumpInTreeForm(&tree.treeStruct)
}

func rbNodeAnnotation(node *nodeStruct) (annotation string) {
	if red == node.color {
		annotation = "RED"
	} else { // black == node.color
		annotation = "BLACK"
	}
	return
}

func avlNodeAnnotation(node *nodeStruct) (annotation string) {
	annotation = fmt.Sprintf("height == %v", node.height)
	return
}

func dumpInFlatForm(node *nodeStruct, annotate func(*nodeStruct) string) {
	if nil == node {
		return
	}

	nodeLeftKey := "nil"
	if nil != node.left {
		nodeLeftKey = fmt.Sprintf("%v", node.left.key)
	}

	nodeRightKey := "nil"
	if nil != node.right {
		nodeRightKey = fmt.Sprintf("%v", node.right.key)
	}

	fmt.Printf("%v Node Key == %v Node.left.Key == %v Node.right.Key == %v len == %v\n", annotate(node), node.key, nodeLeftKey, nodeRightKey, node.len)

	dumpInFlatForm(node.left, annotate)
	dumpInFlatForm(node.right, annotate)
}

func dumpInTreeForm(tree *treeStruct) {
	if nil == tree.root {
		return
	}

	if nil != tree.root.right {
		dumpInTreeFormNode(tree.root.right, true, "")
	}
	fmt.Println(tree.root.key)
	if nil != tree.root.left {
		dumpInTreeFormNode(tree.root.left, false, "")
	}
}

func dumpInTreeFormNode(node *nodeStruct, isRight bool, indent string) {
	var indentAppendage string
	var nextIndent string

	if nil != node.right {
		if isRight {
			indentAppendage = "        "
		} else {
			indentAppendage = " |      "
		}
		nextIndent = strings.Join([]string{indent, indentAppendage}, "")
		dumpInTreeFormNode(node.right, true, nextIndent)
	}
	fmt.Printf("%v", indent)
	if isRight {
		fmt.Printf(" /")
	} else {
		fmt.Printf(" \\")
	}
	fmt.Println("-----", node.key)
	if nil != node.left {
		if isRight {
			indentAppendage = " |      "
		} else {
			indentAppendage = "        "
		}
		nextIndent = strings.Join([]string{indent, indentAppendage}, "")
		dumpInTreeFormNode(node.left, false, nextIndent)
	}
}
