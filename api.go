// Package orderedmap provides a generic ordered associative container backed
// by a self-balancing binary search tree. Two balancing strategies are
// available behind the same OrderedMap interface: a Red-Black tree and an
// AVL tree, selected at construction time.
//
// An individual tree is not safe for concurrent mutation; callers requiring
// shared access must serialize mutating operations externally (e.g. behind a
// single mutex around the whole structure). Read-only operations may proceed
// concurrently with each other but never with a mutation.
package orderedmap

import (
	"bytes"
	"fmt"
	"time"

	"github.com/emirpasic/gods/utils"
)

// Key is the type of the keys held by an OrderedMap. Any concrete type may
// be used provided the configured Compare function imposes a total order
// over it.
type Key interface{}

// Value is the type of the values associated with keys in an OrderedMap.
type Value interface{}

// Compare defines the total order over keys. It returns a negative result
// if key1 precedes key2, zero if they are equal, and a positive result if
// key1 follows key2. A non-nil err aborts the operation in progress and is
// propagated to the caller; an inconsistent (non-total-order) comparator is
// a caller contract violation whose effects are undefined.
type Compare func(key1 Key, key2 Key) (result int, err error)

// BalanceStrategy selects the balancing discipline used by New().
type BalanceStrategy uint8

const (
	// RedBlack selects the Red-Black tree core (height <= 2*log2(n+1)).
	RedBlack BalanceStrategy = iota
	// AVL selects the AVL tree core (height <= 1.44*log2(n+2)).
	AVL
)

// OrderedMap is the facade implemented by every balancing strategy.
//
// All key-based operations report an absent key via ok == false; err is
// reserved for comparator failures.
type OrderedMap interface {
	Put(key Key, value Value) (added bool, err error)
	GetByKey(key Key) (value Value, ok bool, err error)
	ContainsKey(key Key) (ok bool, err error)
	DeleteByKey(key Key) (ok bool, err error)
	GetByIndex(index int) (key Key, value Value, ok bool, err error)
	DeleteByIndex(index int) (ok bool, err error)
	BisectLeft(key Key) (index int, found bool, err error)
	BisectRight(key Key) (index int, found bool, err error)
	Len() (numberOfItems int)
	IsEmpty() (empty bool)
	Min() (key Key, value Value, ok bool)
	Max() (key Key, value Value, ok bool)
	Iterator() (iter *Iterator)
	Range(lo Key, hi Key) (rng *Range, err error)
	Reset()
	Validate() (err error)
	Dump()
}

// New creates an empty OrderedMap using the requested balancing strategy.
func New(strategy BalanceStrategy, compare Compare) (tree OrderedMap) {
	switch strategy {
	case RedBlack:
		tree = NewRedBlackTree(compare)
	case AVL:
		tree = NewAVLTree(compare)
	default:
		panic(fmt.Sprintf("orderedmap.New(): unknown balance strategy (%v)", strategy))
	}
	return
}

// Built-in comparators

func CompareInt(key1 Key, key2 Key) (result int, err error) {
	key1Int, ok := key1.(int)
	if !ok {
		err = fmt.Errorf("CompareInt(non-int,) not supported")
		return
	}
	key2Int, ok := key2.(int)
	if !ok {
		err = fmt.Errorf("CompareInt(int, non-int) not supported")
		return
	}

	result = key1Int - key2Int
	err = nil

	return
}

func CompareUint64(key1 Key, key2 Key) (result int, err error) {
	key1Uint64, ok := key1.(uint64)
	if !ok {
		err = fmt.Errorf("CompareUint64(non-uint64,) not supported")
		return
	}
	key2Uint64, ok := key2.(uint64)
	if !ok {
		err = fmt.Errorf("CompareUint64(uint64, non-uint64) not supported")
		return
	}

	switch {
	case key1Uint64 < key2Uint64:
		result = -1
	case key1Uint64 > key2Uint64:
		result = 1
	default:
		result = 0
	}
	err = nil

	return
}

func CompareString(key1 Key, key2 Key) (result int, err error) {
	key1String, ok := key1.(string)
	if !ok {
		err = fmt.Errorf("CompareString(non-string,) not supported")
		return
	}
	key2String, ok := key2.(string)
	if !ok {
		err = fmt.Errorf("CompareString(string, non-string) not supported")
		return
	}

	switch {
	case key1String < key2String:
		result = -1
	case key1String > key2String:
		result = 1
	default:
		result = 0
	}
	err = nil

	return
}

func CompareByteSlice(key1 Key, key2 Key) (result int, err error) {
	key1ByteSlice, ok := key1.([]byte)
	if !ok {
		err = fmt.Errorf("CompareByteSlice(non-[]byte,) not supported")
		return
	}
	key2ByteSlice, ok := key2.([]byte)
	if !ok {
		err = fmt.Errorf("CompareByteSlice([]byte, non-[]byte) not supported")
		return
	}

	result = bytes.Compare(key1ByteSlice, key2ByteSlice)
	err = nil

	return
}

func CompareTime(key1 Key, key2 Key) (result int, err error) {
	key1Time, ok := key1.(time.Time)
	if !ok {
		err = fmt.Errorf("CompareTime(non-time.Time,) not supported")
		return
	}
	key2Time, ok := key2.(time.Time)
	if !ok {
		err = fmt.Errorf("CompareTime(time.Time, non-time.Time) not supported")
		return
	}

	result = key1Time.Compare(key2Time)
	err = nil

	return
}

// CompareGods wraps a gods-style utils.Comparator so comparators written for
// github.com/emirpasic/gods containers can be used directly.
func CompareGods(comparator utils.Comparator) (compare Compare) {
	compare = func(key1 Key, key2 Key) (result int, err error) {
		result = comparator(key1, key2)
		err = nil
		return
	}
	return
}
