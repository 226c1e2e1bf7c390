// utils/base64.go
package utils

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// SaveBase64Image decodes a base64 payload (with or without a data-URI
// prefix) into the upload folder and returns the stored filename.
func SaveBase64Image(b64, folder string) (string, error) {
	ext := ".png"
	if i := strings.Index(b64, ";base64,"); i >= 0 {
		switch b64[:i] {
		case "data:image/jpeg":
			ext = ".jpg"
		case "data:image/webp":
			ext = ".webp"
		}
		b64 = b64[i+len(";base64,"):]
	}

	data, err := base64.StdEncoding.DecodeString(b64)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(folder, 0755); err != nil {
		return "", err
	}
	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)

	if err := os.WriteFile(filepath.Join(folder, filename), data, 0644); err != nil {
		return "", err
	}
	return filename, nil
}
