package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frequent/core"
)

func TestKind_Hierarchy(t *testing.T) {
	city := core.NewKind("city", core.KindNode)

	assert.True(t, city.Is(core.KindNode))
	assert.True(t, city.Is(core.KindEntity))
	assert.False(t, city.Is(core.KindEdge))
	assert.False(t, core.KindNode.Is(city))

	assert.Equal(t, "entity/node/city", city.Path())
	assert.Equal(t, core.KindNode, city.Parent())
	assert.True(t, core.KindEntity.Parent().IsZero())

	assert.True(t, core.Compatible(city, core.KindNode))
	assert.True(t, core.Compatible(core.KindNode, city))
	assert.False(t, core.Compatible(core.KindNode, core.KindEdge))
}

func TestKind_DistinctDeclarations(t *testing.T) {
	a := core.NewKind("port", core.KindNode)
	b := core.NewKind("port", core.KindNode)

	// Same label, different declarations. Compare with ==: assert.NotEqual
	// follows the descriptor pointers and would see equal contents.
	assert.False(t, a == b)
	assert.True(t, a == a)
	assert.False(t, core.Compatible(a, b))
}

func TestEqual_CovariantKinds(t *testing.T) {
	city := core.NewKind("city", core.KindNode)
	port := core.NewKind("port", core.KindNode)

	plain := core.NewNode(NodeA)
	asCity := core.NewNode(NodeA, core.WithNodeKind(city))
	asPort := core.NewNode(NodeA, core.WithNodeKind(port))

	eq, err := plain.Equal(asCity)
	require.NoError(t, err)
	assert.True(t, eq, "ancestor kind compares equal")

	eq, err = asCity.Equal(plain)
	require.NoError(t, err)
	assert.True(t, eq, "comparison is symmetric")

	_, err = asCity.Equal(asPort)
	assert.ErrorIs(t, err, core.ErrIncomparable)
}

func TestEqual_NodeVersusEdge(t *testing.T) {
	n := core.NewNode(NodeA)
	e, err := core.NewEdge(core.NewNode(NodeA), core.NewNode(NodeB), core.WithEdgeName(NodeA))
	require.NoError(t, err)

	_, err = n.Equal(e)
	assert.ErrorIs(t, err, core.ErrIncomparable)

	_, err = n.Equal(nil)
	assert.ErrorIs(t, err, core.ErrIncomparable)

	var typedNil *core.Node
	_, err = n.Equal(typedNil)
	assert.ErrorIs(t, err, core.ErrIncomparable)
}

func TestEqual_NameAndData(t *testing.T) {
	a1 := core.NewNode(NodeA, core.WithNodeData(core.Attrs{KeyColor: "red"}))
	a2 := core.NewNode(NodeA, core.WithNodeData(core.Attrs{KeyColor: "red"}))
	a3 := core.NewNode(NodeA, core.WithNodeData(core.Attrs{KeyColor: "blue"}))
	b := core.NewNode(NodeB, core.WithNodeData(core.Attrs{KeyColor: "red"}))

	eq, err := a1.Equal(a2)
	require.NoError(t, err)
	assert.True(t, eq)

	eq, err = a1.Equal(a3)
	require.NoError(t, err)
	assert.False(t, eq)

	eq, err = a1.Equal(b)
	require.NoError(t, err)
	assert.False(t, eq)

	// nil and empty data are equal.
	eq, err = core.NewNode(NodeX, core.WithNodeData(nil)).Equal(core.NewNode(NodeX))
	require.NoError(t, err)
	assert.True(t, eq)
}

func TestLess_OrdersByName(t *testing.T) {
	a, b := core.NewNode(NodeA), core.NewNode(NodeB)

	less, err := a.Less(b)
	require.NoError(t, err)
	assert.True(t, less)

	less, err = b.Less(a)
	require.NoError(t, err)
	assert.False(t, less)
}

func TestKey_UsableAsMapKey(t *testing.T) {
	seen := map[core.EntityKey]int{}
	seen[core.NewNode(NodeA).Key()]++
	seen[core.NewNode(NodeA).Key()]++
	seen[core.NewNode(NodeB).Key()]++

	assert.Len(t, seen, 2)
	assert.Equal(t, 2, seen[core.EntityKey{Kind: core.KindNode, Name: NodeA}])
}
