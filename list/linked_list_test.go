package list

import (
	"math"
	"testing"

	"github.com/qjpcpu/linkedlist/json"
	"github.com/stretchr/testify/suite"
)

type LinkedListTestSuite struct {
	suite.Suite
	l *LinkedList[string]
}

func (suite *LinkedListTestSuite) SetupTest() {
	suite.l = New[string]()
}

func TestLinkedListTestSuite(t *testing.T) {
	suite.Run(t, new(LinkedListTestSuite))
}

func (suite *LinkedListTestSuite) TestInsertAndDelete() {
	suite.l.Insert("a", 0)
	suite.l.Insert("b", 1)
	suite.l.Insert("c", 2)
	suite.Equal([]string{"a", "b", "c"}, suite.l.Values())

	suite.l.Insert("z", 1)
	suite.Equal([]string{"a", "z", "b", "c"}, suite.l.Values())

	suite.True(suite.l.Delete("b"))
	suite.Equal([]string{"a", "z", "c"}, suite.l.Values())
	suite.Equal(`LinkedList(["a", "z", "c"])`, suite.l.String())
}

func (suite *LinkedListTestSuite) TestDeleteFromEmpty() {
	suite.False(suite.l.Delete("x"))
	suite.Empty(suite.l.Values())
	suite.True(suite.l.IsEmpty())
	suite.Equal(0, suite.l.Len())
}

func (suite *LinkedListTestSuite) TestInsertBeyondLengthOnEmpty() {
	suite.l.Insert("a", 5)
	suite.Equal([]string{"a"}, suite.l.Values())
}

func (suite *LinkedListTestSuite) TestDeleteHeadTwice() {
	for i, v := range []string{"a", "b", "c"} {
		suite.l.Insert(v, i)
	}
	suite.True(suite.l.Delete("a"))
	suite.Equal([]string{"b", "c"}, suite.l.Values())
	suite.False(suite.l.Delete("a"))
	suite.Equal([]string{"b", "c"}, suite.l.Values())
}

func (suite *LinkedListTestSuite) TestDeleteFirstOccurrenceOnly() {
	for i, v := range []string{"x", "y", "x", "y"} {
		suite.l.Insert(v, i)
	}
	suite.True(suite.l.Delete("y"))
	suite.Equal([]string{"x", "x", "y"}, suite.l.Values())
	suite.True(suite.l.Delete("y"))
	suite.Equal([]string{"x", "x"}, suite.l.Values())
	suite.False(suite.l.Delete("y"))
}

func (suite *LinkedListTestSuite) TestDeleteTail() {
	for i, v := range []string{"a", "b", "c"} {
		suite.l.Insert(v, i)
	}
	suite.True(suite.l.Delete("c"))
	suite.Equal([]string{"a", "b"}, suite.l.Values())
	suite.l.Insert("d", 100)
	suite.Equal([]string{"a", "b", "d"}, suite.l.Values())
}

func (suite *LinkedListTestSuite) TestNegativeIndexInsertsAtHead() {
	suite.l.Insert("a", 0)
	suite.l.Insert("b", -3)
	suite.Equal([]string{"b", "a"}, suite.l.Values())
}

func (suite *LinkedListTestSuite) TestInsertAtHeadReversesOrder() {
	for _, v := range []string{"v1", "v2", "v3", "v4"} {
		suite.l.Insert(v, 0)
	}
	suite.Equal([]string{"v4", "v3", "v2", "v1"}, suite.l.Values())
}

func (suite *LinkedListTestSuite) TestStringIsReadOnly() {
	suite.Equal("LinkedList([])", suite.l.String())
	suite.l.Insert("a", 0)
	suite.l.Insert("b", 1)
	before := suite.l.Values()
	suite.Equal(`LinkedList(["a", "b"])`, suite.l.String())
	suite.Equal(before, suite.l.Values())
}

func (suite *LinkedListTestSuite) TestEachStopsEarly() {
	for i, v := range []string{"a", "b", "c"} {
		suite.l.Insert(v, i)
	}
	var seen []string
	suite.l.Each(func(i int, v string) bool {
		seen = append(seen, v)
		return i < 1
	})
	suite.Equal([]string{"a", "b"}, seen)
}

func (suite *LinkedListTestSuite) TestClear() {
	suite.l.Insert("a", 0)
	suite.l.Insert("b", 0)
	suite.l.Clear()
	suite.True(suite.l.IsEmpty())
	suite.Nil(suite.l.Values())
	suite.l.Insert("c", 3)
	suite.Equal([]string{"c"}, suite.l.Values())
}

func (suite *LinkedListTestSuite) TestMarshalJSON() {
	data, err := json.Marshal(suite.l)
	suite.Nil(err)
	suite.Equal(`[]`, string(data))

	for i, v := range []string{"a", "z", "c"} {
		suite.l.Insert(v, i)
	}
	data, err = json.Marshal(suite.l)
	suite.Nil(err)
	suite.Equal(`["a","z","c"]`, string(data))
}

func (suite *LinkedListTestSuite) TestZeroValue() {
	var l LinkedList[int]
	l.Insert(1, 0)
	l.Insert(2, 9)
	suite.Equal([]int{1, 2}, l.Values())
	suite.Equal("LinkedList([1, 2])", l.String())
}

func (suite *LinkedListTestSuite) TestNilListPanics() {
	var l *LinkedList[int]
	suite.True(l.IsEmpty())
	suite.Equal(0, l.Len())
	suite.Panics(func() { l.Insert(1, 0) })
	suite.Panics(func() { l.Delete(1) })
}

func (suite *LinkedListTestSuite) TestUnmarshalJSON() {
	suite.l.Insert("old", 0)
	suite.Nil(json.Unmarshal([]byte(`["a","b","c"]`), suite.l))
	suite.Equal([]string{"a", "b", "c"}, suite.l.Values())
	suite.l.Insert("z", 1)
	suite.Equal(`LinkedList(["a", "z", "b", "c"])`, suite.l.String())

	suite.Nil(json.Unmarshal([]byte(`[]`), suite.l))
	suite.True(suite.l.IsEmpty())

	suite.l.Insert("keep", 0)
	suite.NotNil(json.Unmarshal([]byte(`[1,2]`), suite.l))
	suite.Equal([]string{"keep"}, suite.l.Values())
}

func (suite *LinkedListTestSuite) TestExtremeIndexes() {
	l := New[any]()
	l.Insert("a", math.MaxInt)
	l.Insert("b", math.MinInt)
	l.Insert("c", math.MaxInt)
	suite.Equal(`LinkedList(["b", "a", "c"])`, l.String())
}

func (suite *LinkedListTestSuite) TestAnyWithUncomparableValues() {
	l := New[any]()
	l.Insert([]int{1}, 0)
	l.Insert("a", 1)
	// different dynamic types never match and never panic
	suite.True(l.Delete("a"))
	suite.False(l.Delete(1))
	suite.Panics(func() { l.Delete([]int{1}) })
}
