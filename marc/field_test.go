package marc

import (
	"fmt"
	"regexp"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestTags(t *testing.T) {
	for i := 1; i <= 999; i++ {
		tag := fmt.Sprintf("%03d", i)
		require.True(t, IsValidTag(tag), tag)
		require.Equal(t, i < 10, IsControlTag(tag), tag)
		require.Equal(t, i >= 10, IsDataTag(tag), tag)
		require.Equal(t, i == 1, IsControlNumberTag(tag), tag)
	}
	for _, tag := range []string{"", "1", "1234", "24a", "ABC"} {
		require.False(t, IsValidTag(tag), tag)
		require.False(t, IsControlTag(tag), tag)
		require.False(t, IsDataTag(tag), tag)
	}
}

func TestControlField(t *testing.T) {
	cf, err := NewControlField("001", []byte("123456"))
	require.NoError(t, err)
	require.Equal(t, "001", cf.Tag())
	require.Equal(t, []byte("123456"), cf.Data())
	require.Equal(t, []byte("123456\x1e"), cf.MarshalField())
	require.Equal(t, 7, cf.Length())

	_, err = NewControlField("245", []byte("x"))
	require.True(t, errors.Is(err, ErrInvalidTag))
	_, err = NewControlField("0a1", []byte("x"))
	require.True(t, errors.Is(err, ErrInvalidTag))
	_, err = NewControlField("008", []byte("bad\x1ddata"))
	require.True(t, errors.Is(err, ErrInvalidDataElement))

	require.Error(t, cf.SetData([]byte{0x1f}))
	require.Equal(t, []byte("123456"), cf.Data())
}

func TestDataField(t *testing.T) {
	df, err := NewDataField("245", '1', '2')
	require.NoError(t, err)
	require.NoError(t, df.AddSubfield(NewSubfield('a', []byte("test"))))

	require.Equal(t, "245", df.Tag())
	require.EqualValues(t, '1', df.Indicator1())
	require.EqualValues(t, '2', df.Indicator2())
	require.Equal(t, []byte("12\x1fatest\x1e"), df.MarshalField())
	require.Equal(t, 9, df.Length())
	require.Equal(t, len(df.MarshalField()), df.Length())
	require.True(t, df.HasSubfield('a'))
	require.False(t, df.HasSubfield('x'))
	require.Equal(t, "245 12$atest", df.String())
}

func TestDataField_Validation(t *testing.T) {
	_, err := NewDataField("009", '1', '2')
	require.True(t, errors.Is(err, ErrInvalidTag))

	_, err = NewDataField("245", 0x01, '2')
	require.True(t, errors.Is(err, ErrInvalidIndicator))

	df, err := NewDataField("245", ' ', ' ')
	require.NoError(t, err)
	require.True(t, errors.Is(df.SetIndicator1('#'), ErrInvalidIndicator))
	require.True(t, errors.Is(df.SetIndicator2('$'), ErrInvalidIndicator))
	require.NoError(t, df.SetIndicator1('A'))
	require.NoError(t, df.SetIndicator2('0'))

	err = df.AddSubfield(NewSubfield('a', []byte("bad\x1edata")))
	require.True(t, errors.Is(err, ErrInvalidDataElement))
	err = df.AddSubfield(NewSubfield(SubfieldDelimiter, []byte("x")))
	require.True(t, errors.Is(err, ErrInvalidDataElement))
	require.Empty(t, df.Subfields())
}

func TestDataField_Subfields(t *testing.T) {
	df, err := NewDataField("650", ' ', '0')
	require.NoError(t, err)
	a := NewSubfield('a', []byte("Cats"))
	x1 := NewSubfield('x', []byte("Behavior"))
	x2 := NewSubfield('x', []byte("Juvenile literature"))
	for _, sf := range []*Subfield{a, x1, x2} {
		require.NoError(t, df.AddSubfield(sf))
	}

	require.Equal(t, x1, df.Subfield('x'))
	require.Equal(t, []*Subfield{x1, x2}, df.SubfieldsByCode('x'))
	require.True(t, df.Find(regexp.MustCompile("^Juv")))
	require.False(t, df.Find(regexp.MustCompile("Dogs")))

	require.True(t, df.RemoveSubfield(x1))
	require.False(t, df.RemoveSubfield(x1))
	require.Equal(t, []*Subfield{a, x2}, df.Subfields())

	cp := df.Clone()
	cp.Subfields()[0].Data[0] = 'R'
	require.Equal(t, "Cats", string(a.Data))
}
