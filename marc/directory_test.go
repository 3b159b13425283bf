package marc

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestDirectory_SizeInvariant(t *testing.T) {
	for n := 0; n < 20; n++ {
		dir := NewDirectory()
		for i := 0; i < n; i++ {
			dir.Add("245", 10+i)
		}
		b, err := dir.MarshalBinary()
		require.NoError(t, err)
		require.Equal(t, DirectoryEntryLength*n, len(b))
		require.Equal(t, dir.Size(), len(b))
	}
}

func TestDirectory_Offsets(t *testing.T) {
	dir := NewDirectory()
	dir.Add("001", 7)
	dir.Add("008", 41)
	dir.Add("245", 9)
	require.Equal(t, []DirectoryEntry{
		{Tag: "001", Length: 7, Offset: 0},
		{Tag: "008", Length: 41, Offset: 7},
		{Tag: "245", Length: 9, Offset: 48},
	}, dir.Entries())

	b, err := dir.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, "001000700000"+"008004100007"+"245000900048", string(b))
}

func TestDirectory_Limits(t *testing.T) {
	dir := NewDirectory()
	dir.Add("500", 10000)
	_, err := dir.MarshalBinary()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrFieldTooLong))

	dir = NewDirectory()
	for i := 0; i < 12; i++ {
		dir.Add("500", 9999)
	}
	_, err = dir.MarshalBinary()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrOffsetOverflow))

	dir = NewDirectory()
	dir.Add("50", 1)
	_, err = dir.MarshalBinary()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrInvalidTag))
}

func TestParseDirectoryEntry(t *testing.T) {
	e, err := ParseDirectoryEntry([]byte("245002100048"))
	require.NoError(t, err)
	require.Equal(t, DirectoryEntry{Tag: "245", Length: 21, Offset: 48}, e)

	e, err = ParseDirectoryEntry([]byte("24500X100048"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid length")
	require.Equal(t, "245", e.Tag)
	require.Equal(t, 0, e.Length)

	_, err = ParseDirectoryEntry([]byte("245"))
	require.Error(t, err)
}
