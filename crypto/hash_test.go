package crypto

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlake2B256(t *testing.T) {
	tests := []struct {
		in  []string
		out string
	}{
		{
			[]string{""},
			"0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8",
		},
		{
			[]string{"", "", "", ""},
			"0e5751c026e543b2e8ab2eb06099daa1d1e5df47778f7787faab45cdf12fe3a8",
		},
		{
			[]string{"cafe"},
			"4e400278c29c37ee640391dfb9792390a8ac9adb6200ed47c725a86099a8586c",
		},
		{
			[]string{"00000000000000000000000000000000", "00000000000000000000000000000000"},
			"89eb0d6a8a691dae2cd15ed0369931ce0a949ecafa5c3f93f8121833646e15c3",
		},
	}
	for _, tt := range tests {
		var pieces [][]byte
		for _, hexPiece := range tt.in {
			piece, err := hex.DecodeString(hexPiece)
			require.NoError(t, err)
			pieces = append(pieces, piece)
		}
		require.Equal(t, tt.out, Blake2B256(pieces...).String())

		streamed, err := Blake2B256Reader(bytes.NewReader(bytes.Join(pieces, nil)))
		require.NoError(t, err)
		require.Equal(t, tt.out, streamed.String())
	}
}

func TestHash_JSON(t *testing.T) {
	h := Blake2B256([]byte("00045cam a2200037 a 4500"))
	require.False(t, h.IsZero())
	require.True(t, ZeroHash.IsZero())

	b, err := json.Marshal(struct {
		Checksum Hash `json:"checksum"`
	}{h})
	require.NoError(t, err)
	require.Equal(t, `{"checksum":"`+h.String()+`"}`, string(b))

	var out struct {
		Checksum Hash `json:"checksum"`
	}
	require.NoError(t, json.Unmarshal(b, &out))
	require.Equal(t, h, out.Checksum)

	_, err = NewHashFromHex("zz")
	require.Error(t, err)
	_, err = NewHashFromHex("cafe")
	require.Error(t, err)
}
