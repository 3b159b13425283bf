package version

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	defer func() {
		GitTag = ""
		GitCommit = ""
	}()
	require.Equal(t, "gomarc dev", String())
	GitTag = "v1.2.0"
	GitCommit = "abc123"
	require.Equal(t, "gomarc v1.2.0 (abc123)", String())
}
