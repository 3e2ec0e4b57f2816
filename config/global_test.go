package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/frequent/config"
)

// GlobalSuite resets the process-wide configuration around every test.
type GlobalSuite struct {
	suite.Suite
}

func (s *GlobalSuite) SetupTest()    { config.ClearGlobal() }
func (s *GlobalSuite) TearDownTest() { config.ClearGlobal() }

func (s *GlobalSuite) TestLazyInitialization() {
	_, err := config.GetGlobal("anything")
	s.ErrorIs(err, config.ErrKeyNotFound)
	s.Equal(0, config.Global().Len())
	s.Equal("dflt", config.GlobalOr("anything", "dflt"))
}

func (s *GlobalSuite) TestSetAndGet() {
	s.Require().NoError(config.SetGlobal("log.level", "debug"))

	v, err := config.GetGlobal("log.level")
	s.Require().NoError(err)
	s.Equal("debug", v)

	// Global returns a copy; top-level edits do not leak back.
	cp := config.Global()
	s.Require().NoError(cp.Set("extra", 1))
	s.False(config.Global().Has("extra"))
}

func (s *GlobalSuite) TestLoadGlobal() {
	path := filepath.Join(s.T().TempDir(), "cfg.yaml")
	seed := config.New()
	s.Require().NoError(seed.Set("graph.name", "roads"))
	s.Require().NoError(seed.Save(path))

	s.Require().NoError(config.LoadGlobal(path))
	s.Equal("roads", config.GlobalOr("graph.name", nil))

	s.ErrorIs(config.LoadGlobal(path+".missing"), os.ErrNotExist)
	s.Equal("roads", config.GlobalOr("graph.name", nil), "failed load keeps the old global")

	s.Require().NoError(config.LoadGlobal(""))
	s.Equal(0, config.Global().Len())
}

func (s *GlobalSuite) TestWithTempRestores() {
	s.Require().NoError(config.SetGlobal("mode", "prod"))
	s.Require().NoError(config.SetGlobal("db.host", "db1"))

	err := config.WithTemp(map[string]any{"mode": "test"}, func(cfg *config.Configuration) error {
		s.Equal("test", cfg.GetOr("mode", nil))
		s.Equal("test", config.GlobalOr("mode", nil))

		s.Require().NoError(config.SetGlobal("db.host", "db2"))
		s.Require().NoError(config.SetGlobal("scratch", true))
		return nil
	})
	s.Require().NoError(err)

	s.Equal("prod", config.GlobalOr("mode", nil))
	s.Equal("db1", config.GlobalOr("db.host", nil))
	s.False(config.Global().Has("scratch"))
}

func (s *GlobalSuite) TestWithTempPropagatesError() {
	boom := errors.New("boom")
	err := config.WithTemp(nil, func(*config.Configuration) error { return boom })
	s.ErrorIs(err, boom)
}

func TestGlobalSuite(t *testing.T) {
	suite.Run(t, new(GlobalSuite))
}
