package orderedmap

// Meta test library exercised against every balancing strategy

import (
	"fmt"
	mathRand "math/rand"
	"testing"
)

const (
	testShuffleNumKeys    = 2000
	testShuffleSeed       = int64(0x5eed)
	testValidateFrequency = 100
)

func metaTestEmptyTree(t *testing.T, tree OrderedMap) {
	var (
		err   error
		found bool
		index int
		ok    bool
	)

	if 0 != tree.Len() {
		t.Fatalf("Len() of just initialized tree should have been 0... instead it was %v", tree.Len())
	}
	if !tree.IsEmpty() {
		t.Fatalf("IsEmpty() of just initialized tree should have been true")
	}

	_, ok, err = tree.GetByKey(0)
	if nil != err {
		t.Fatal(err)
	}
	if ok {
		t.Fatalf("GetByKey(0).ok of just initialized tree should have been false")
	}

	ok, err = tree.ContainsKey(0)
	if nil != err {
		t.Fatal(err)
	}
	if ok {
		t.Fatalf("ContainsKey(0).ok of just initialized tree should have been false")
	}

	ok, err = tree.DeleteByKey(0)
	if nil != err {
		t.Fatal(err)
	}
	if ok {
		t.Fatalf("DeleteByKey(0).ok of just initialized tree should have been false")
	}

	_, _, ok, err = tree.GetByIndex(-1)
	if nil != err {
		t.Fatal(err)
	}
	if ok {
		t.Fatalf("GetByIndex(-1).ok should have been false")
	}

	_, _, ok, err = tree.GetByIndex(0)
	if nil != err {
		t.Fatal(err)
	}
	if ok {
		t.Fatalf("GetByIndex(0).ok of just initialized tree should have been false")
	}

	index, found, err = tree.BisectLeft(0)
	if nil != err {
		t.Fatal(err)
	}
	if -1 != index {
		t.Fatalf("BisectLeft(0).index of just initialized tree should have been -1... instead it was %v", index)
	}
	if found {
		t.Fatalf("BisectLeft(0).found of just initialized tree should have been false")
	}

	index, found, err = tree.BisectRight(0)
	if nil != err {
		t.Fatal(err)
	}
	if 0 != index {
		t.Fatalf("BisectRight(0).index of just initialized tree should have been 0... instead it was %v", index)
	}
	if found {
		t.Fatalf("BisectRight(0).found of just initialized tree should have been false")
	}

	if _, _, ok = tree.Min(); ok {
		t.Fatalf("Min().ok of just initialized tree should have been false")
	}
	if _, _, ok = tree.Max(); ok {
		t.Fatalf("Max().ok of just initialized tree should have been false")
	}

	if _, _, ok = tree.Iterator().Next(); ok {
		t.Fatalf("Iterator().Next().ok of just initialized tree should have been false")
	}

	err = tree.Validate()
	if nil != err {
		t.Fatal(err)
	}
}

func metaTestPutGetDeleteByKeySimple(t *testing.T, tree OrderedMap) {
	var (
		added bool
		err   error
		ok    bool
		value Value
	)

	for _, keyAsInt := range []int{5, 3, 7, 1, 4, 6, 8} {
		added, err = tree.Put(keyAsInt, fmt.Sprintf("%v", keyAsInt))
		if nil != err {
			t.Fatal(err)
		}
		if !added {
			t.Fatalf("Put(%v,).added should have been true", keyAsInt)
		}
	}

	if 7 != tree.Len() {
		t.Fatalf("Len() should have been 7... instead it was %v", tree.Len())
	}

	// a tie replaces the existing value without creating a node

	added, err = tree.Put(4, "four")
	if nil != err {
		t.Fatal(err)
	}
	if added {
		t.Fatalf("Put(4,).added for a pre-existing key should have been false")
	}
	if 7 != tree.Len() {
		t.Fatalf("Len() after replacing Put should still have been 7... instead it was %v", tree.Len())
	}

	value, ok, err = tree.GetByKey(4)
	if nil != err {
		t.Fatal(err)
	}
	if !ok {
		t.Fatalf("GetByKey(4).ok should have been true")
	}
	if "four" != value.(string) {
		t.Fatalf("GetByKey(4).value should have been \"four\"... instead it was %v", value)
	}

	key, value, ok := tree.Min()
	if !ok || (1 != key.(int)) || ("1" != value.(string)) {
		t.Fatalf("Min() should have returned (1, \"1\", true)... instead (%v, %v, %v)", key, value, ok)
	}
	key, value, ok = tree.Max()
	if !ok || (8 != key.(int)) {
		t.Fatalf("Max() should have returned key 8... instead %v", key)
	}

	err = tree.Validate()
	if nil != err {
		t.Fatal(err)
	}

	for _, keyAsInt := range []int{1, 8, 4, 5, 3, 7, 6} {
		ok, err = tree.DeleteByKey(keyAsInt)
		if nil != err {
			t.Fatal(err)
		}
		if !ok {
			t.Fatalf("DeleteByKey(%v).ok should have been true", keyAsInt)
		}

		_, ok, err = tree.GetByKey(keyAsInt)
		if nil != err {
			t.Fatal(err)
		}
		if ok {
			t.Fatalf("GetByKey(%v).ok after DeleteByKey(%v) should have been false", keyAsInt, keyAsInt)
		}

		ok, err = tree.DeleteByKey(keyAsInt)
		if nil != err {
			t.Fatal(err)
		}
		if ok {
			t.Fatalf("second DeleteByKey(%v).ok should have been false", keyAsInt)
		}

		err = tree.Validate()
		if nil != err {
			t.Fatal(err)
		}
	}

	if !tree.IsEmpty() {
		t.Fatalf("IsEmpty() after deleting every key should have been true")
	}
}

func metaTestInsertGetDeleteByKeyShuffled(t *testing.T, tree OrderedMap) {
	var (
		err   error
		ok    bool
		value Value
	)

	randSource := mathRand.New(mathRand.NewSource(testShuffleSeed))

	keys := randSource.Perm(testShuffleNumKeys) // Knuth shuffle of [0,testShuffleNumKeys)

	for i, keyAsInt := range keys {
		_, err = tree.Put(keyAsInt, fmt.Sprintf("%v", keyAsInt))
		if nil != err {
			t.Fatal(err)
		}
		if 0 == (i % testValidateFrequency) {
			err = tree.Validate()
			if nil != err {
				t.Fatalf("Validate() after Put #%v: %v", i, err)
			}
		}
	}

	if testShuffleNumKeys != tree.Len() {
		t.Fatalf("Len() should have been %v... instead it was %v", testShuffleNumKeys, tree.Len())
	}

	// every key must round-trip

	for _, keyAsInt := range keys {
		value, ok, err = tree.GetByKey(keyAsInt)
		if nil != err {
			t.Fatal(err)
		}
		if !ok {
			t.Fatalf("GetByKey(%v).ok should have been true", keyAsInt)
		}
		if fmt.Sprintf("%v", keyAsInt) != value.(string) {
			t.Fatalf("GetByKey(%v) returned the wrong value (%v)", keyAsInt, value)
		}
	}

	// in-order iteration must visit [0,testShuffleNumKeys) exactly

	iter := tree.Iterator()
	expected := 0
	for key, _, iterOk := iter.Next(); iterOk; key, _, iterOk = iter.Next() {
		if expected != key.(int) {
			t.Fatalf("in-order iteration expected key %v... instead saw %v", expected, key)
		}
		expected++
	}
	if testShuffleNumKeys != expected {
		t.Fatalf("in-order iteration visited %v keys... expected %v", expected, testShuffleNumKeys)
	}

	// delete in a different shuffled order

	for i, keyAsInt := range randSource.Perm(testShuffleNumKeys) {
		ok, err = tree.DeleteByKey(keyAsInt)
		if nil != err {
			t.Fatal(err)
		}
		if !ok {
			t.Fatalf("DeleteByKey(%v).ok should have been true", keyAsInt)
		}
		if 0 == (i % testValidateFrequency) {
			err = tree.Validate()
			if nil != err {
				t.Fatalf("Validate() after DeleteByKey #%v: %v", i, err)
			}
		}
	}

	if 0 != tree.Len() {
		t.Fatalf("Len() after deleting every key should have been 0... instead it was %v", tree.Len())
	}

	err = tree.Validate()
	if nil != err {
		t.Fatal(err)
	}
}

func metaTestGetDeleteByIndex(t *testing.T, tree OrderedMap) {
	var (
		err error
		key Key
		ok  bool
	)

	for _, keyAsInt := range []int{50, 20, 80, 10, 30, 70, 90} {
		_, err = tree.Put(keyAsInt, fmt.Sprintf("%v", keyAsInt))
		if nil != err {
			t.Fatal(err)
		}
	}

	expectedKeys := []int{10, 20, 30, 50, 70, 80, 90}
	for index, expectedKey := range expectedKeys {
		key, _, ok, err = tree.GetByIndex(index)
		if nil != err {
			t.Fatal(err)
		}
		if !ok {
			t.Fatalf("GetByIndex(%v).ok should have been true", index)
		}
		if expectedKey != key.(int) {
			t.Fatalf("GetByIndex(%v) should have returned key %v... instead it was %v", index, expectedKey, key)
		}
	}

	_, _, ok, err = tree.GetByIndex(len(expectedKeys))
	if nil != err {
		t.Fatal(err)
	}
	if ok {
		t.Fatalf("GetByIndex(%v).ok should have been false", len(expectedKeys))
	}

	// DeleteByIndex(2) removes key 30

	ok, err = tree.DeleteByIndex(2)
	if nil != err {
		t.Fatal(err)
	}
	if !ok {
		t.Fatalf("DeleteByIndex(2).ok should have been true")
	}

	ok, err = tree.ContainsKey(30)
	if nil != err {
		t.Fatal(err)
	}
	if ok {
		t.Fatalf("ContainsKey(30) after DeleteByIndex(2) should have been false")
	}

	key, _, ok, err = tree.GetByIndex(2)
	if nil != err {
		t.Fatal(err)
	}
	if !ok || (50 != key.(int)) {
		t.Fatalf("GetByIndex(2) after DeleteByIndex(2) should have returned key 50... instead it was %v", key)
	}

	ok, err = tree.DeleteByIndex(6)
	if nil != err {
		t.Fatal(err)
	}
	if ok {
		t.Fatalf("DeleteByIndex(6).ok with only 6 keys remaining should have been false")
	}

	err = tree.Validate()
	if nil != err {
		t.Fatal(err)
	}
}

func metaTestBisect(t *testing.T, tree OrderedMap) {
	var (
		err   error
		found bool
		index int
	)

	// keys 0, 2, 4, ..., 18 at indices 0..9

	for keyAsInt := 0; keyAsInt < 20; keyAsInt += 2 {
		_, err = tree.Put(keyAsInt, fmt.Sprintf("%v", keyAsInt))
		if nil != err {
			t.Fatal(err)
		}
	}

	for keyAsInt := 0; keyAsInt < 20; keyAsInt += 2 {
		index, found, err = tree.BisectLeft(keyAsInt)
		if nil != err {
			t.Fatal(err)
		}
		if !found || ((keyAsInt / 2) != index) {
			t.Fatalf("BisectLeft(%v) should have returned (%v, true)... instead (%v, %v)", keyAsInt, keyAsInt/2, index, found)
		}

		index, found, err = tree.BisectRight(keyAsInt)
		if nil != err {
			t.Fatal(err)
		}
		if !found || ((keyAsInt / 2) != index) {
			t.Fatalf("BisectRight(%v) should have returned (%v, true)... instead (%v, %v)", keyAsInt, keyAsInt/2, index, found)
		}
	}

	// absent odd keys bracket their neighbors

	for keyAsInt := 1; keyAsInt < 20; keyAsInt += 2 {
		index, found, err = tree.BisectLeft(keyAsInt)
		if nil != err {
			t.Fatal(err)
		}
		if found || ((keyAsInt / 2) != index) {
			t.Fatalf("BisectLeft(%v) should have returned (%v, false)... instead (%v, %v)", keyAsInt, keyAsInt/2, index, found)
		}

		index, found, err = tree.BisectRight(keyAsInt)
		if nil != err {
			t.Fatal(err)
		}
		if found || (((keyAsInt / 2) + 1) != index) {
			t.Fatalf("BisectRight(%v) should have returned (%v, false)... instead (%v, %v)", keyAsInt, (keyAsInt/2)+1, index, found)
		}
	}

	index, found, err = tree.BisectLeft(-1)
	if nil != err {
		t.Fatal(err)
	}
	if found || (-1 != index) {
		t.Fatalf("BisectLeft(-1) should have returned (-1, false)... instead (%v, %v)", index, found)
	}

	index, found, err = tree.BisectRight(99)
	if nil != err {
		t.Fatal(err)
	}
	if found || (10 != index) {
		t.Fatalf("BisectRight(99) should have returned (10, false)... instead (%v, %v)", index, found)
	}
}

func metaTestReset(t *testing.T, tree OrderedMap) {
	var err error

	for keyAsInt := 0; keyAsInt < 100; keyAsInt++ {
		_, err = tree.Put(keyAsInt, fmt.Sprintf("%v", keyAsInt))
		if nil != err {
			t.Fatal(err)
		}
	}

	tree.Reset()

	if !tree.IsEmpty() || (0 != tree.Len()) {
		t.Fatalf("tree should have been empty after Reset()")
	}

	err = tree.Validate()
	if nil != err {
		t.Fatal(err)
	}

	// the tree must be reusable after Reset()

	_, err = tree.Put(1, "1")
	if nil != err {
		t.Fatal(err)
	}
	if 1 != tree.Len() {
		t.Fatalf("Len() after Reset() then Put() should have been 1... instead it was %v", tree.Len())
	}
}

func metaBenchmark(b *testing.B, tree OrderedMap) {
	randSource := mathRand.New(mathRand.NewSource(testShuffleSeed))

	keys := randSource.Perm(b.N)

	b.ResetTimer()

	for _, keyAsInt := range keys {
		_, err := tree.Put(keyAsInt, "")
		if nil != err {
			b.Fatal(err)
		}
	}
	for _, keyAsInt := range keys {
		_, ok, err := tree.GetByKey(keyAsInt)
		if nil != err {
			b.Fatal(err)
		}
		if !ok {
			b.Fatalf("GetByKey(%v).ok should have been true", keyAsInt)
		}
	}
	for _, keyAsInt := range keys {
		ok, err := tree.DeleteByKey(keyAsInt)
		if nil != err {
			b.Fatal(err)
		}
		if !ok {
			b.Fatalf("DeleteByKey(%v).ok should have been true", keyAsInt)
		}
	}
}
