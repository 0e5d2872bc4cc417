package orderedmap

type AVLTree interface {
	OrderedMap
}

func NewAVLTree(compare Compare) (tree AVLTree) {
	tree = &avlTreeStruct{treeStruct{Compare: compare, root: nil}}
	return
}
