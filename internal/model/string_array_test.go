package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArrayValue(t *testing.T) {
	v, err := StringArray{"first", "second"}.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"first","second"}`, v)

	v, err = StringArray{`say "hi"`, `back\slash`}.Value()
	require.NoError(t, err)
	assert.Equal(t, `{"say \"hi\"","back\\slash"}`, v)

	v, err = StringArray{}.Value()
	require.NoError(t, err)
	assert.Equal(t, "{}", v)

	v, err = StringArray(nil).Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestStringArrayScan(t *testing.T) {
	var a StringArray
	require.NoError(t, a.Scan(`{"first","second"}`))
	assert.Equal(t, StringArray{"first", "second"}, a)

	require.NoError(t, a.Scan([]byte(`{unquoted,"quoted, with comma"}`)))
	assert.Equal(t, StringArray{"unquoted", "quoted, with comma"}, a)

	require.NoError(t, a.Scan(`{"say \"hi\"","back\\slash"}`))
	assert.Equal(t, StringArray{`say "hi"`, `back\slash`}, a)

	require.NoError(t, a.Scan(`{NULL,"NULL"}`))
	assert.Equal(t, StringArray{"", "NULL"}, a)

	require.NoError(t, a.Scan(`{}`))
	assert.Equal(t, StringArray{}, a)

	require.NoError(t, a.Scan(nil))
	assert.Nil(t, a)
}

func TestStringArrayScanErrors(t *testing.T) {
	var a StringArray
	assert.Error(t, a.Scan("not an array"))
	assert.Error(t, a.Scan(`{"unterminated}`))
	assert.Error(t, a.Scan(42))
}

func TestStringArrayRoundTrip(t *testing.T) {
	in := StringArray{"plain", `with "quotes"`, "with,comma", ""}
	v, err := in.Value()
	require.NoError(t, err)

	var out StringArray
	require.NoError(t, out.Scan(v))
	assert.Equal(t, in, out)
}
