package config

import (
	"bytes"
	"io/ioutil"
	"path"
	"strings"
	"testing"

	"gomarc/testutil/testfs"

	"github.com/stretchr/testify/require"
)

func TestGenerateDefaultConfigFile(t *testing.T) {
	generatedCfg := GenerateDefaultConfigFile()
	cfg, err := ReadConfig(bytes.NewReader(generatedCfg))
	require.NoError(t, err)
	require.EqualValues(t, DefaultConfig, *cfg)
}

func TestReadConfig(t *testing.T) {
	cfg, err := ReadConfig(strings.NewReader(`
log_level = "debug"
log_format = "json"

[decoder]
  source_charset = "ISO-8859-1"

[verify]
  workers = 12
`))
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, "ISO-8859-1", cfg.Decoder.SourceCharset)
	require.False(t, cfg.Decoder.ReportWarnings)
	require.Equal(t, 12, cfg.Verify.Workers)

	_, err = ReadConfig(strings.NewReader("log_level = "))
	require.Error(t, err)
}

func TestInitHomeDir(t *testing.T) {
	dir, done := testfs.NewTempDir(t)
	defer done()

	home := path.Join(dir, "home")
	require.Error(t, EnsureHomeDir(home))
	_, err := ReadConfigFile(home)
	require.Error(t, err)

	require.NoError(t, InitHomeDir(home))
	require.NoError(t, EnsureHomeDir(home))
	exists, err := HomeDirExists(ExpandDBPath(home))
	require.NoError(t, err)
	require.True(t, exists)

	cfg, err := ReadConfigFile(home)
	require.NoError(t, err)
	require.EqualValues(t, DefaultConfig, *cfg)

	file := path.Join(dir, "file")
	require.NoError(t, ioutil.WriteFile(file, []byte("x"), 0644))
	_, err = HomeDirExists(file)
	require.Error(t, err)
}
