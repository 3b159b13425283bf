package marc

import (
	"bytes"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestLeader_RoundTrip(t *testing.T) {
	tests := []string{
		"00714cam a2200205 a 4500",
		"00045nam a2200037   4500",
		"99999dmxyz9999999uuu1234",
		"00000     0000000       ",
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			l, err := ParseLeader([]byte(in))
			require.NoError(t, err)
			out, err := l.MarshalBinary()
			require.NoError(t, err)
			require.Equal(t, in, string(out))
		})
	}
}

func TestLeader_Fields(t *testing.T) {
	l, err := ParseLeader([]byte("00714cam a2100205 a 4500"))
	require.NoError(t, err)
	require.Equal(t, 714, l.RecordLength)
	require.EqualValues(t, 'c', l.RecordStatus)
	require.EqualValues(t, 'a', l.TypeOfRecord)
	require.Equal(t, [2]byte{'m', ' '}, l.ImplDefined1)
	require.EqualValues(t, 'a', l.CharCodingScheme)
	require.Equal(t, 2, l.IndicatorCount)
	require.Equal(t, 1, l.SubfieldCodeLength)
	require.Equal(t, 205, l.BaseAddressOfData)
	require.Equal(t, [3]byte{' ', 'a', ' '}, l.ImplDefined2)
	require.Equal(t, [4]byte{'4', '5', '0', '0'}, l.EntryMap)
}

func TestLeader_LenientNumbers(t *testing.T) {
	l, err := ParseLeader([]byte("0071Xcam axy002O5 a 4500"))
	require.NoError(t, err)
	require.Equal(t, 0, l.RecordLength)
	require.Equal(t, 2, l.IndicatorCount)
	require.Equal(t, 2, l.SubfieldCodeLength)
	require.Equal(t, 0, l.BaseAddressOfData)
}

func TestLeader_Errors(t *testing.T) {
	_, err := ParseLeader([]byte("00714cam a22"))
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrMalformedLeader))

	odd := []byte("00714cam a2200205 a 4500")
	odd[7] = SubfieldDelimiter
	odd[18] = FieldTerminator
	l, err := ParseLeader(odd)
	require.NoError(t, err)
	require.Equal(t, 714, l.RecordLength)
	require.Equal(t, 205, l.BaseAddressOfData)
	require.Equal(t, [2]byte{SubfieldDelimiter, ' '}, l.ImplDefined1)

	l = NewLeader()
	l.RecordLength = 100000
	_, err = l.MarshalBinary()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrRecordTooLong))

	l = NewLeader()
	l.IndicatorCount = 12
	_, err = l.MarshalBinary()
	require.Error(t, err)
	require.Contains(t, err.Error(), "indicator count")
}

func TestLeader_EncodeDecode(t *testing.T) {
	var buf bytes.Buffer
	l := NewLeader()
	l.RecordLength = 45
	l.BaseAddressOfData = 37
	require.NoError(t, l.Encode(&buf))
	require.Equal(t, "00045nam  2200037   4500", buf.String())

	var decoded Leader
	require.NoError(t, decoded.Decode(&buf))
	require.Equal(t, *l, decoded)
	require.Equal(t, "00045nam  2200037   4500", decoded.String())
}
