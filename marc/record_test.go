package marc

import (
	"bytes"
	"regexp"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const (
	ft = "\x1e"
	rt = "\x1d"
	us = "\x1f"
)

func mustControlField(t *testing.T, tag, data string) *ControlField {
	cf, err := NewControlField(tag, []byte(data))
	require.NoError(t, err)
	return cf
}

func mustDataField(t *testing.T, tag string, ind1, ind2 byte, subfields ...string) *DataField {
	df, err := NewDataField(tag, ind1, ind2)
	require.NoError(t, err)
	for _, sf := range subfields {
		require.NoError(t, df.AddSubfield(NewSubfield(sf[0], []byte(sf[1:]))))
	}
	return df
}

func TestRecord_ControlNumberPinnedFirst(t *testing.T) {
	rec := NewRecord(NewLeader())
	require.NoError(t, rec.AddControlField(mustControlField(t, "005", "20200101")))
	require.NoError(t, rec.AddControlField(mustControlField(t, "008", "fixed")))
	require.False(t, rec.HasControlNumberField())
	require.Equal(t, "", rec.ControlNumber())

	require.NoError(t, rec.AddControlField(mustControlField(t, "001", "cn-1")))
	require.True(t, rec.HasControlNumberField())
	require.Equal(t, "cn-1", rec.ControlNumber())
	require.Equal(t, "001", rec.ControlFields()[0].Tag())

	err := rec.AddControlField(mustControlField(t, "001", "cn-2"))
	require.True(t, errors.Is(err, ErrDuplicateControlNumber))
	require.Len(t, rec.ControlFields(), 3)
}

func TestRecord_Marshal(t *testing.T) {
	leader, err := ParseLeader([]byte("00714cam a2200205 a 4500"))
	require.NoError(t, err)
	rec := NewRecord(leader)
	require.NoError(t, rec.AddControlField(mustControlField(t, "001", "123456")))

	out, err := rec.Marshal()
	require.NoError(t, err)
	expected := "00045cam a2200037 a 4500" + "001000700000" + ft + "123456" + ft + rt
	require.Equal(t, expected, string(out))
	require.Equal(t, 45, rec.Leader.RecordLength)
	require.Equal(t, 37, rec.Leader.BaseAddressOfData)

	again, err := rec.Marshal()
	require.NoError(t, err)
	require.Equal(t, out, again)
}

func TestRecord_MarshalFieldOrder(t *testing.T) {
	rec := NewRecord(NewLeader())
	rec.AddDataField(mustDataField(t, "245", '1', '2', "atest"))
	require.NoError(t, rec.AddControlField(mustControlField(t, "008", "abc")))
	require.NoError(t, rec.AddControlField(mustControlField(t, "001", "x1")))

	out, err := rec.Marshal()
	require.NoError(t, err)

	dir := "001000300000" + "008000400003" + "245000900007"
	body := "x1" + ft + "abc" + ft + "12" + us + "atest" + ft
	base := LeaderLength + len(dir) + 1
	require.Equal(t, base, rec.Leader.BaseAddressOfData)
	require.Equal(t, base+len(body)+1, rec.Leader.RecordLength)
	require.Equal(t, rec.Leader.String()+dir+ft+body+rt, string(out))
	require.Equal(t, rec.Leader.RecordLength, len(out))

	var buf bytes.Buffer
	require.NoError(t, rec.Encode(&buf))
	require.Equal(t, out, buf.Bytes())
}

func TestRecord_MarshalIncomplete(t *testing.T) {
	rec := NewRecord(NewLeader())
	rec.AddDataField(mustDataField(t, "245", '1', '0', "aTitle"))
	_, err := rec.Marshal()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrIncompleteRecord))
	require.Equal(t, 0, rec.Leader.RecordLength)

	rec = NewRecord(nil)
	require.NoError(t, rec.AddControlField(mustControlField(t, "001", "1")))
	_, err = rec.Marshal()
	require.True(t, errors.Is(err, ErrIncompleteRecord))
}

func TestRecord_MarshalEncoding(t *testing.T) {
	rec := NewRecord(NewLeader())
	require.NoError(t, rec.AddControlField(mustControlField(t, "001", "1")))
	rec.AddDataField(mustDataField(t, "245", '0', '0', "acafé"))

	raw, err := rec.Marshal()
	require.NoError(t, err)
	require.Equal(t, 10, rec.DataFields()[0].Length())

	latin1, err := rec.MarshalEncoding("ISO-8859-1")
	require.NoError(t, err)
	require.Equal(t, len(raw)-1, len(latin1))
	require.Equal(t, len(latin1), rec.Leader.RecordLength)
	require.Contains(t, string(latin1), "245000900002")

	utf8, err := rec.MarshalEncoding("UTF-8")
	require.NoError(t, err)
	require.Equal(t, raw, utf8)

	rec.AddDataField(mustDataField(t, "500", ' ', ' ', "aprice €5"))
	before := *rec.Leader
	_, err = rec.MarshalEncoding("ISO-8859-1")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrEncoding))
	require.Equal(t, before, *rec.Leader)

	_, err = rec.MarshalEncoding("no-such-charset")
	require.True(t, errors.Is(err, ErrEncoding))
}

func TestRecord_MarshalEncodingRawPayload(t *testing.T) {
	rec := NewRecord(NewLeader())
	require.NoError(t, rec.AddControlField(mustControlField(t, "001", "1")))
	df, err := NewDataField("245", '0', '0')
	require.NoError(t, err)
	require.NoError(t, df.AddSubfield(NewSubfield('a', []byte{'c', 'a', 'f', 0xe9})))
	rec.AddDataField(df)

	raw, err := rec.Marshal()
	require.NoError(t, err)
	require.Contains(t, string(raw), "245000900002")

	before := *rec.Leader
	for _, charset := range []string{"UTF-8", "ISO-8859-1"} {
		out, err := rec.MarshalEncoding(charset)
		require.Error(t, err, charset)
		require.True(t, errors.Is(err, ErrEncoding), charset)
		require.Nil(t, out, charset)
		require.Equal(t, before, *rec.Leader, charset)
	}
}

func TestRecord_Queries(t *testing.T) {
	rec := NewRecord(NewLeader())
	require.NoError(t, rec.AddControlField(mustControlField(t, "001", "cn")))
	require.NoError(t, rec.AddControlField(mustControlField(t, "008", "830101s1983")))
	title := mustDataField(t, "245", '1', '0', "aMoby Dick")
	s1 := mustDataField(t, "650", ' ', '0', "aWhales")
	s2 := mustDataField(t, "650", ' ', '0', "aSea stories")
	rec.AddDataField(title)
	rec.AddDataField(s1)
	rec.AddDataField(s2)

	require.Equal(t, "008", rec.ControlField("008").Tag())
	require.Nil(t, rec.ControlField("003"))
	require.Equal(t, title, rec.FirstDataField("245"))
	require.Nil(t, rec.FirstDataField("100"))
	require.Equal(t, []*DataField{s1, s2}, rec.DataFieldsByTag("650"))
	require.Len(t, rec.VariableFields(), 5)

	found := rec.Find(regexp.MustCompile("(?i)whale|moby"))
	require.Len(t, found, 2)
	found = rec.Find(regexp.MustCompile("(?i)whale|moby"), "650")
	require.Equal(t, []VariableField{s1}, found)

	require.True(t, rec.RemoveDataField(s1))
	require.False(t, rec.RemoveDataField(s1))
	require.True(t, rec.RemoveControlField(rec.ControlField("008")))
	require.Len(t, rec.VariableFields(), 3)
}

func TestRecord_Clone(t *testing.T) {
	rec := NewRecord(NewLeader())
	require.NoError(t, rec.AddControlField(mustControlField(t, "001", "cn")))
	rec.AddDataField(mustDataField(t, "245", '1', '0', "aTitle"))
	orig, err := rec.Marshal()
	require.NoError(t, err)

	cp := rec.Clone()
	cp.Leader.RecordStatus = 'd'
	cp.ControlNumberField().Data()[0] = 'X'
	cp.DataFields()[0].Subfields()[0].Data[0] = 'X'

	again, err := rec.Marshal()
	require.NoError(t, err)
	require.Equal(t, orig, again)
}
