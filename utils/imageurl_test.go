package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveImageURL(t *testing.T) {
	assert.Equal(t, PlaceholderImage, ResolveImageURL(""))

	assert.Equal(t, "https://cdn.example.com/stew.jpg", ResolveImageURL("https://cdn.example.com/stew.jpg"))
	assert.Equal(t, "http://cdn.example.com/stew.jpg", ResolveImageURL("http://cdn.example.com/stew.jpg"))

	assert.Equal(t, "/uploads/1718000000.png", ResolveImageURL("1718000000.png"))
	assert.Equal(t, "/uploads/1718000000.png", ResolveImageURL("/1718000000.png"))
}
