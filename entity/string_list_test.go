package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringListScanNullColumn(t *testing.T) {
	// Rows written before the column existed come back NULL; they must scan
	// as an empty list, not an error.
	var l StringList
	assert.NoError(t, l.Scan(nil))
	assert.Empty(t, l)

	assert.NoError(t, l.Scan(""))
	assert.Empty(t, l)
}

func TestStringListScanJSON(t *testing.T) {
	var l StringList
	assert.NoError(t, l.Scan(`["1","12"]`))
	assert.Equal(t, StringList{"1", "12"}, l)

	assert.NoError(t, l.Scan([]byte(`["Vegetarian Option"]`)))
	assert.Equal(t, StringList{"Vegetarian Option"}, l)
}

func TestStringListValueNil(t *testing.T) {
	var l StringList
	v, err := l.Value()
	assert.NoError(t, err)
	assert.Equal(t, "[]", v)
}
