package orderedmap

type RedBlackTree interface {
	OrderedMap
}

func NewRedBlackTree(compare Compare) (tree RedBlackTree) {
	tree = &rbTreeStruct{treeStruct{Compare: compare, root: nil}}
	return
}
