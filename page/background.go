// Package page holds the presentation pieces of the review page: the inline
// background image and the strings shown to the user.
package page

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

// EncodeBackground reads an image and returns it as a data URI suitable for
// a CSS url(). An empty path yields an empty URI.
func EncodeBackground(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read background image: %w", err)
	}

	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return "", fmt.Errorf("background %s is %s, not an image", path, mime.String())
	}

	// Drop parameters such as "; charset=..." that are invalid in a data URI.
	mediaType := strings.SplitN(mime.String(), ";", 2)[0]
	return "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}
