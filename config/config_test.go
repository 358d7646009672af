package config_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"

	"github.com/bitmark-inc/autonomy-areas/config"
)

const testConfig = `
host: mongo.internal:27017
database: areas
log_level: debug
datasets:
  - id: lad19
    src: data/lad19.geojson
    version: 1
    priority: 2
    type: lad
  - id: county
    src: /srv/county.geojson
    version: "2020-04"
    type: county
    name_property: ctyua19nm
`

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func (s *ConfigTestSuite) SetupTest() {
	dir, err := ioutil.TempDir("", "area-import-config")
	s.Require().NoError(err)
	s.dir = dir

	for _, key := range []string{"HOST", "DATABASE", "DRY_RUN", "VERSION_CHECK"} {
		os.Unsetenv(key)
	}
}

func (s *ConfigTestSuite) TearDownTest() {
	os.RemoveAll(s.dir)
}

func (s *ConfigTestSuite) writeFile(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(ioutil.WriteFile(path, []byte(content), 0600))
	return path
}

func (s *ConfigTestSuite) TestLoadFile() {
	file := s.writeFile("config.yaml", testConfig)

	c, err := config.Load(file, nil)
	s.NoError(err)
	s.Equal("mongo.internal:27017", c.Host)
	s.Equal("areas", c.Database)
	s.Equal("debug", c.LogLevel)
	s.True(c.VersionCheck)
	s.False(c.DryRun)
	s.Equal("mongodb://mongo.internal:27017/areas", c.MongoURI())

	s.Len(c.Datasets, 2)
	s.Equal(config.Dataset{
		ID:           "lad19",
		Src:          filepath.Join(s.dir, "data/lad19.geojson"),
		Version:      "1",
		Priority:     2,
		Type:         "lad",
		NameProperty: config.DefaultNameProperty,
	}, c.Datasets[0])
	s.Equal(config.Dataset{
		ID:           "county",
		Src:          "/srv/county.geojson",
		Version:      "2020-04",
		Type:         "county",
		NameProperty: "ctyua19nm",
	}, c.Datasets[1])
}

func (s *ConfigTestSuite) TestLoadWithoutFile() {
	os.Setenv("HOST", "db.example:27017")
	os.Setenv("DATABASE", "boundaries")
	defer os.Unsetenv("HOST")
	defer os.Unsetenv("DATABASE")

	c, err := config.Load(filepath.Join(s.dir, "missing.yaml"), nil)
	s.NoError(err)
	s.Equal("db.example:27017", c.Host)
	s.Equal("boundaries", c.Database)
	s.Empty(c.Datasets)
}

func (s *ConfigTestSuite) TestFlagsOverrideEnv() {
	os.Setenv("HOST", "db.example:27017")
	os.Setenv("DATABASE", "boundaries")
	defer os.Unsetenv("HOST")
	defer os.Unsetenv("DATABASE")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("host", "a", "", "")
	flags.StringP("database", "d", "", "")
	flags.BoolP("dry-run", "n", false, "")
	flags.Bool("no-version-check", false, "")
	s.NoError(flags.Parse([]string{"-a", "127.0.0.1", "-n", "--no-version-check"}))

	c, err := config.Load("", flags)
	s.NoError(err)
	s.Equal("127.0.0.1", c.Host)
	s.Equal("boundaries", c.Database)
	s.True(c.DryRun)
	s.False(c.VersionCheck)
}

// TestFileOverridesEnv keeps the config file's connection settings when HOST and DATABASE are exported
func (s *ConfigTestSuite) TestFileOverridesEnv() {
	file := s.writeFile("config.yaml", testConfig)
	os.Setenv("HOST", "shell-host:27017")
	os.Setenv("DATABASE", "shell-db")
	defer os.Unsetenv("HOST")
	defer os.Unsetenv("DATABASE")

	c, err := config.Load(file, nil)
	s.NoError(err)
	s.Equal("mongo.internal:27017", c.Host)
	s.Equal("areas", c.Database)

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("host", "a", "", "")
	flags.StringP("database", "d", "", "")
	s.NoError(flags.Parse([]string{"--database", "flag-db"}))

	c, err = config.Load(file, flags)
	s.NoError(err)
	s.Equal("mongo.internal:27017", c.Host)
	s.Equal("flag-db", c.Database)
}

// TestEnvFillsMissingFileSettings uses the environment for what the config file leaves out
func (s *ConfigTestSuite) TestEnvFillsMissingFileSettings() {
	file := s.writeFile("config.yaml", "host: mongo.internal:27017\n")
	os.Setenv("HOST", "shell-host:27017")
	os.Setenv("DATABASE", "shell-db")
	defer os.Unsetenv("HOST")
	defer os.Unsetenv("DATABASE")

	c, err := config.Load(file, nil)
	s.NoError(err)
	s.Equal("mongo.internal:27017", c.Host)
	s.Equal("shell-db", c.Database)
}

func (s *ConfigTestSuite) TestLoadInvalidFile() {
	file := s.writeFile("config.yaml", "datasets: [: broken")

	_, err := config.Load(file, nil)
	s.Error(err)
}

func (s *ConfigTestSuite) TestLoadEnv() {
	file := s.writeFile(".env", "HOST=env-file-host:27017\nDATABASE=env-file-db\n")
	defer os.Unsetenv("HOST")
	defer os.Unsetenv("DATABASE")

	config.LoadEnv(file)

	c, err := config.Load("", nil)
	s.NoError(err)
	s.Equal("env-file-host:27017", c.Host)
	s.Equal("env-file-db", c.Database)
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func TestMongoURI(t *testing.T) {
	c := config.Config{Host: "localhost", Database: "test"}
	assert.Equal(t, "mongodb://localhost/test", c.MongoURI())
}
