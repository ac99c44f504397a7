// Package images loads raster images for image content nodes.
package images

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"
	"sync"
)

// imageCache caches decoded images by path
type imageCache struct {
	cache map[string]image.Image
	mu    sync.RWMutex
}

var globalCache = &imageCache{
	cache: make(map[string]image.Image),
}

// IsDataURI reports whether src is a data: URI rather than a file path.
func IsDataURI(src string) bool {
	return strings.HasPrefix(src, "data:")
}

// decodeDataURI decodes a base64 data URI such as data:image/png;base64,...
func decodeDataURI(uri string) (image.Image, error) {
	comma := strings.IndexByte(uri, ',')
	if !IsDataURI(uri) || comma < 0 {
		return nil, fmt.Errorf("malformed data URI")
	}
	if !strings.HasSuffix(uri[:comma], ";base64") {
		return nil, fmt.Errorf("only base64 data URIs are supported")
	}
	data, err := base64.StdEncoding.DecodeString(uri[comma+1:])
	if err != nil {
		return nil, fmt.Errorf("decoding data URI: %w", err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding data URI image: %w", err)
	}
	return img, nil
}

func decodeFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// Load decodes an image from a file path or a base64 data URI. Decoded
// images are cached for the life of the process, so repeated measurement
// sees the same bounds.
func Load(src string) (image.Image, error) {
	globalCache.mu.RLock()
	if img, ok := globalCache.cache[src]; ok {
		globalCache.mu.RUnlock()
		return img, nil
	}
	globalCache.mu.RUnlock()

	var img image.Image
	var err error
	if IsDataURI(src) {
		img, err = decodeDataURI(src)
	} else {
		img, err = decodeFile(src)
	}
	if err != nil {
		return nil, err
	}

	globalCache.mu.Lock()
	globalCache.cache[src] = img
	globalCache.mu.Unlock()

	return img, nil
}

// Dimensions returns the width and height of an image
func Dimensions(src string) (width, height int, err error) {
	img, err := Load(src)
	if err != nil {
		return 0, 0, err
	}

	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy(), nil
}
