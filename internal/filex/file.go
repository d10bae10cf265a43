// Package filex reads local files into the inline payload form stored
// with a case.
package filex

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
)

// ReadBase64 reads the file at path and returns its base name plus its
// contents encoded as base64. The store persists whatever string it is
// given; there is no size or format check here.
func ReadBase64(path string) (filename string, data string, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", path, err)
	}
	return filepath.Base(path), base64.StdEncoding.EncodeToString(b), nil
}
