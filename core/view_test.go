package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frequent/core"
)

func TestView_ReadOnlyMapping(t *testing.T) {
	src := map[string]int{"b": 2, "a": 1}
	v := core.NewView(src)

	assert.Equal(t, 2, v.Len())
	assert.True(t, v.Contains("a"))
	assert.Equal(t, []string{"a", "b"}, v.Keys())

	_, err := v.Get("z")
	assert.ErrorIs(t, err, core.ErrKeyNotFound)

	var keys []string
	for k := range v.All() {
		keys = append(keys, k)
	}
	assert.Equal(t, []string{"a", "b"}, keys)

	src["c"] = 3
	assert.Equal(t, 3, v.Len(), "view tracks the wrapped map")

	m := v.Map()
	m["d"] = 4
	assert.False(t, v.Contains("d"), "Map returns a detached copy")
}

func TestView_CopyIsOneLevelDeep(t *testing.T) {
	inner := map[string]any{"x": 1}
	list := []any{1, 2}
	deep := map[string]any{"y": map[string]any{"z": 1}}
	v := core.NewView(map[string]any{"inner": inner, "list": list, "deep": deep})

	c := v.Copy()
	inner["x"] = 99
	list[0] = 99
	deep["y"].(map[string]any)["z"] = 99

	got, err := c.Get("inner")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"x": 1}, got)

	got, err = c.Get("list")
	require.NoError(t, err)
	assert.Equal(t, []any{1, 2}, got)

	got, err = c.Get("deep")
	require.NoError(t, err)
	assert.Equal(t, 99, got.(map[string]any)["y"].(map[string]any)["z"], "second level is shared")
}

func TestNodeView_Live(t *testing.T) {
	g := core.NewGraph()
	nodes := g.Nodes()
	assert.Equal(t, 0, nodes.Len())

	g.AddNode(NodeB, nil)
	g.AddNode(NodeA, nil)

	assert.Equal(t, 2, nodes.Len())
	assert.Equal(t, []string{NodeA, NodeB}, nodes.Names())
	assert.Equal(t, "[a b]", nodes.String())

	n, err := nodes.Get(NodeA)
	require.NoError(t, err)
	assert.Equal(t, NodeA, n.Name())

	_, err = nodes.Get(NodeX)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestNodeDataView_Modes(t *testing.T) {
	g := core.NewGraph()
	g.AddNode(NodeA, core.Attrs{KeyColor: "red"})
	g.AddNode(NodeB, nil)

	names := g.Nodes().Data(core.NamesOnly())
	assert.Equal(t, "[a b]", names.String())
	assert.Equal(t, []core.NodeItem{{Name: NodeA}, {Name: NodeB}}, names.Items())

	colors := g.Nodes().Data(core.AttrData(KeyColor, "none"))
	assert.Equal(t, []core.NodeItem{{Name: NodeA, Value: "red"}, {Name: NodeB, Value: "none"}}, colors.Items())
	assert.True(t, colors.ContainsPair(NodeA, "red"))
	assert.True(t, colors.ContainsPair(NodeB, "none"))
	assert.False(t, colors.ContainsPair(NodeB, "red"))
	assert.False(t, colors.ContainsPair(NodeX, "none"))

	v, err := colors.Get(NodeB)
	require.NoError(t, err)
	assert.Equal(t, "none", v)

	all := g.Nodes().Data(core.AllData())
	assert.True(t, all.ContainsPair(NodeA, core.Attrs{KeyColor: "red"}))
	assert.True(t, all.ContainsPair(NodeA, map[string]any{KeyColor: "red"}))
	assert.True(t, all.ContainsPair(NodeB, core.Attrs{}))
	assert.Equal(t, "[(a, map[color:red]) (b, map[])]", all.String())

	dv, err := all.Get(NodeA)
	require.NoError(t, err)
	assert.IsType(t, core.DataView{}, dv)

	_, err = all.Get(NodeX)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestEdgeView_EachEdgeOnce(t *testing.T) {
	g := triangle()
	g.AddEdge(NodeD, NodeD)

	ev := g.Edges()
	assert.Equal(t, 4, ev.Len())

	want := []core.Pair{{U: NodeA, V: NodeB}, {U: NodeA, V: NodeC}, {U: NodeB, V: NodeC}, {U: NodeD, V: NodeD}}
	if diff := cmp.Diff(want, ev.Pairs()); diff != "" {
		t.Errorf("Pairs() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "[(a, b) (a, c) (b, c) (d, d)]", ev.String())
}

func TestEdgeView_GetIsSymmetric(t *testing.T) {
	g := triangle()
	ev := g.Edges()

	ab, err := ev.Get(NodeA, NodeB)
	require.NoError(t, err)
	ba, err := ev.Get(NodeB, NodeA)
	require.NoError(t, err)
	assert.Same(t, ab, ba)
	assert.True(t, ev.Contains(NodeC, NodeA))

	_, err = ev.Get(NodeA, NodeX)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	assert.ErrorIs(t, err, core.ErrKeyNotFound)
}

func TestEdgeDataView_ModesAndBunch(t *testing.T) {
	g := core.NewGraph()
	g.AddEdge(NodeA, NodeB, core.WithEdgeData(core.Attrs{KeyColor: "red"}))
	g.AddEdge(NodeB, NodeC)
	g.AddEdge(NodeC, NodeD, core.WithEdgeData(core.Attrs{KeyColor: "blue"}))

	colors := g.Edges().Data(core.AttrData(KeyColor, nil))
	assert.Equal(t, 3, colors.Len())
	assert.Equal(t, []core.EdgeItem{
		{Pair: core.Pair{U: NodeA, V: NodeB}, Value: "red"},
		{Pair: core.Pair{U: NodeB, V: NodeC}, Value: nil},
		{Pair: core.Pair{U: NodeC, V: NodeD}, Value: "blue"},
	}, colors.Items())
	assert.True(t, colors.ContainsData(NodeB, NodeA, "red"))
	assert.False(t, colors.ContainsData(NodeA, NodeB, "blue"))

	sub := g.Edges().Data(core.NamesOnly(), NodeC, NodeX)
	assert.Equal(t, 2, sub.Len())
	assert.Equal(t, "[(c, b) (c, d)]", sub.String())
	assert.True(t, sub.Contains(NodeB, NodeC))
	assert.False(t, sub.Contains(NodeA, NodeB), "neither endpoint in the subset")
	assert.True(t, sub.ContainsData(NodeD, NodeC, "ignored in names mode"))

	all := g.Edges().Data(core.AllData())
	assert.True(t, all.ContainsData(NodeC, NodeD, core.Attrs{KeyColor: "blue"}))
}

func TestAdjacencyView(t *testing.T) {
	g := triangle()
	adj := g.Adj()

	assert.Equal(t, 3, adj.Len())
	assert.Equal(t, []string{NodeA, NodeB, NodeC}, adj.Keys())

	nbrs, err := adj.Get(NodeA)
	require.NoError(t, err)
	assert.Equal(t, []string{NodeB, NodeC}, nbrs.Keys())

	_, err = adj.Get(NodeX)
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	snapshot := adj.Copy()
	_, err = g.RemoveEdge(NodeA, NodeB)
	require.NoError(t, err)

	assert.Equal(t, 1, nbrs.Len(), "live neighbor view observes removal")
	old, ok := snapshot.Lookup(NodeA)
	require.True(t, ok)
	assert.Equal(t, 2, old.Len(), "copy is detached")
}
