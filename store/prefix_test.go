package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrefixer(t *testing.T) {
	base := Prefixer("records")

	tests := []struct {
		in  []byte
		out string
	}{
		{
			base("raw", "cn-1"),
			"records/raw/cn-1",
		},
		{
			base(),
			"records",
		},
		{
			base(""),
			"records/",
		},
		{
			Prefixer(string(base("info")))("ocm123"),
			"records/info/ocm123",
		},
	}
	for _, tt := range tests {
		require.Equal(t, tt.out, string(tt.in))
	}
}
