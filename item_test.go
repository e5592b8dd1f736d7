package main

import (
	"math/big"
	"testing"

	"github.com/nukata/goarith"
	"github.com/stretchr/testify/require"
)

func intVal(n int64) *Value { return IntValue(goarith.AsNumber(big.NewInt(n))) }

func TestNewTupleOrderAndIndex(t *testing.T) {
	tup := NewTuple(intVal(1), intVal(2), intVal(3))
	require.Equal(t, 3, Order(tup))
	require.Equal(t, VInt, Index(tup, 1).Kind)
	require.Equal(t, 0, Index(tup, 1).Int.Cmp(intVal(1).Int))
	require.Equal(t, 0, Index(tup, 3).Int.Cmp(intVal(3).Int))
}

func TestEmptyTupleHasZeroOrder(t *testing.T) {
	require.Equal(t, 0, Order(NewTuple()))
}

func TestNestedTupleFlattensIntoParentAndIndexesBackOutAsSubTuple(t *testing.T) {
	inner := NewTuple(intVal(2), intVal(3))
	outer := NewTuple(intVal(1), inner, intVal(4))

	require.Equal(t, 3, Order(outer))
	require.Equal(t, VInt, Index(outer, 1).Kind)

	got := Index(outer, 2)
	require.Equal(t, VTuple, got.Kind)
	require.Equal(t, 2, Order(got))
	require.Equal(t, 0, Index(got, 1).Int.Cmp(intVal(2).Int))
	require.Equal(t, 0, Index(got, 2).Int.Cmp(intVal(3).Int))

	require.Equal(t, VInt, Index(outer, 3).Kind)
}

func TestIndexOutOfRangePanics(t *testing.T) {
	tup := NewTuple(intVal(1))
	require.Panics(t, func() { Index(tup, 2) })
}

func TestIndexOnNonTuplePanics(t *testing.T) {
	require.Panics(t, func() { Index(intVal(1), 1) })
}

func TestAugmentAppendsNewLastElement(t *testing.T) {
	tup := NewTuple(intVal(1), intVal(2))
	augmented := tup.augment(intVal(3))
	require.Equal(t, 3, Order(augmented))
	require.Equal(t, 0, Index(augmented, 3).Int.Cmp(intVal(3).Int))
	require.Equal(t, 2, Order(tup), "augment must not mutate its receiver")
}

func TestStringifyRendersTuplesRecursively(t *testing.T) {
	require.Equal(t, "nil", Stringify(NewTuple()))
	require.Equal(t, "(1, 2, 3)", Stringify(NewTuple(intVal(1), intVal(2), intVal(3))))
	require.Equal(t, "true", Stringify(BoolValue(true)))
	require.Equal(t, "hi", Stringify(StringValue("hi")))
}
