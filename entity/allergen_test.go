package entity

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllergenTableCoversAllIds(t *testing.T) {
	assert.Len(t, AllergenNames, 14)
	assert.Len(t, AllergenIcons, 14)
	for i := 1; i <= 14; i++ {
		id := strconv.Itoa(i)
		assert.NotEmpty(t, AllergenNames[id], "missing name for id %s", id)
		assert.NotEmpty(t, AllergenIcons[id], "missing icon for id %s", id)
	}
}

func TestAllergenNameUnknownId(t *testing.T) {
	assert.Equal(t, "", AllergenName("15"))
	assert.Equal(t, "", AllergenName(""))
}
