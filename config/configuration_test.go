package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/frequent/config"
)

func TestConfiguration_DottedKeys(t *testing.T) {
	c := config.New()
	require.NoError(t, c.Set("db.pool.size", 10))
	require.NoError(t, c.Set("name", "frequent"))

	v, err := c.Get("db.pool.size")
	require.NoError(t, err)
	assert.Equal(t, 10, v)

	sec, err := c.Section("db")
	require.NoError(t, err)
	assert.Equal(t, 10, sec.GetOr("pool.size", 0))

	assert.Equal(t, []string{"db", "name"}, c.Keys())
	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Has("db.pool"))
	assert.False(t, c.Has("db.missing"))
	assert.Equal(t, "none", c.GetOr("db.missing", "none"))
}

func TestConfiguration_Errors(t *testing.T) {
	c := config.New()
	require.NoError(t, c.Set("name", "frequent"))

	_, err := c.Get("missing")
	assert.ErrorIs(t, err, config.ErrKeyNotFound)

	_, err = c.Get("name.first")
	assert.ErrorIs(t, err, config.ErrNotSection)

	assert.ErrorIs(t, c.Set("name.first", "x"), config.ErrNotSection)
	assert.ErrorIs(t, c.Delete("missing"), config.ErrKeyNotFound)

	_, err = c.Section("name")
	assert.ErrorIs(t, err, config.ErrNotSection)

	_, err = config.FromMap(map[string]any{"a": 1, "a.b": 2})
	assert.ErrorIs(t, err, config.ErrNotSection)
}

func TestConfiguration_MapsBecomeSections(t *testing.T) {
	c, err := config.FromMap(map[string]any{
		"server": map[string]any{"host": "localhost", "port": 8080},
		"debug":  true,
	})
	require.NoError(t, err)

	v, err := c.Get("server.port")
	require.NoError(t, err)
	assert.Equal(t, 8080, v)

	raw, err := c.Get("server")
	require.NoError(t, err)
	assert.IsType(t, &config.Configuration{}, raw)

	want := map[string]any{
		"server": map[string]any{"host": "localhost", "port": 8080},
		"debug":  true,
	}
	if diff := cmp.Diff(want, c.ToMap()); diff != "" {
		t.Errorf("ToMap mismatch (-want +got):\n%s", diff)
	}
}

func TestConfiguration_DeleteAndClear(t *testing.T) {
	c := config.New()
	require.NoError(t, c.Update(map[string]any{"a.b": 1, "a.c": 2, "d": 3}))

	require.NoError(t, c.Delete("a.b"))
	assert.False(t, c.Has("a.b"))
	assert.True(t, c.Has("a.c"))

	c.Clear()
	assert.Equal(t, 0, c.Len())
}

func TestConfiguration_CopyIsShallow(t *testing.T) {
	c := config.New()
	require.NoError(t, c.Set("top", 1))
	require.NoError(t, c.Set("sec.inner", 1))

	cp := c.Copy()
	require.NoError(t, cp.Set("top", 2))
	require.NoError(t, cp.Set("sec.inner", 2))

	assert.Equal(t, 1, c.GetOr("top", nil), "top-level entries are independent")
	assert.Equal(t, 2, c.GetOr("sec.inner", nil), "nested sections are shared")
}

func TestConfiguration_Dumps(t *testing.T) {
	c := config.New()
	require.NoError(t, c.Set("b", 2))
	require.NoError(t, c.Set("a.x", "y"))

	compact, err := c.Dumps(true)
	require.NoError(t, err)
	assert.Equal(t, `{"a":{"x":"y"},"b":2}`, compact)

	pretty, err := c.Dumps(false)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": {\n    \"x\": \"y\"\n  },\n  \"b\": 2\n}", pretty)

	back, err := config.Loads(compact)
	require.NoError(t, err)
	assert.Equal(t, "y", back.GetOr("a.x", nil))
	assert.Equal(t, float64(2), back.GetOr("b", nil))

	_, err = config.Loads("{not json")
	assert.Error(t, err)
}

func TestConfiguration_SaveLoad(t *testing.T) {
	c := config.New()
	require.NoError(t, c.Set("graph.name", "roads"))
	require.NoError(t, c.Set("graph.seed", 7))

	dir := t.TempDir()
	for _, name := range []string{"settings.json", "settings.yaml", "settings.yml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, c.Save(path))

			back, err := config.Load(path)
			require.NoError(t, err)
			assert.Equal(t, "roads", back.GetOr("graph.name", nil))
			assert.EqualValues(t, 7, back.GetOr("graph.seed", nil))
		})
	}

	_, err := config.Load(filepath.Join(dir, "absent.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
