package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestNewLevel(t *testing.T) {
	for _, name := range []string{"trace", "debug", "info", "warn", "error", "fatal"} {
		level, err := NewLevel(name)
		require.NoError(t, err)
		require.Equal(t, name, level.String())
	}
	level, err := NewLevel(" WARN ")
	require.NoError(t, err)
	require.Equal(t, LevelWarn, level)

	_, err = NewLevel("loud")
	require.Error(t, err)
}

func TestModuleLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	require.NoError(t, SetFormat(FormatJSON))
	defer func() {
		require.NoError(t, SetFormat(FormatText))
	}()

	lgr := WithModule("decoder").Sub("file", "records.mrc")
	lgr.Warn("record not terminated", "position", 45, "err", errors.New("boom"))

	var line map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	require.Equal(t, "decoder", line["module"])
	require.Equal(t, "records.mrc", line["file"])
	require.Equal(t, "record not terminated", line["msg"])
	require.EqualValues(t, 45, line["position"])
	require.Equal(t, "boom", line["err"])

	require.Error(t, SetFormat("xml"))
	require.Panics(t, func() {
		lgr.Info("odd", "key")
	})
}
