// utils/imageurl.go
package utils

import "strings"

const PlaceholderImage = "/uploads/placeholder.png"

// ResolveImageURL maps a stored image path to something the browser can
// fetch: missing paths get the placeholder, absolute URLs pass through
// unchanged, and storage-relative filenames resolve under /uploads.
func ResolveImageURL(path string) string {
	if path == "" {
		return PlaceholderImage
	}
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return "/uploads/" + strings.TrimPrefix(path, "/")
}
