// Package imagestore is the client for the external image attachment service.
// Uploads return a durable public URL; deletion is keyed by a public id
// derived from that URL.
package imagestore

import (
	"context"
	"io"
	"path"
	"strings"
)

// Folder is the key prefix all post images live under.
const Folder = "posts"

// ImageStore uploads and deletes externally hosted images.
type ImageStore interface {
	// Upload stores the image and returns its durable public URL
	Upload(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) (string, error)

	// Destroy deletes a stored image by public id
	Destroy(ctx context.Context, publicID string) error
}

// PublicIDFromURL derives the stored object's public id from its URL:
// the last path segment with the extension stripped, under Folder.
// Returns "" for URLs it cannot parse.
func PublicIDFromURL(rawURL string) string {
	if rawURL == "" {
		return ""
	}
	name := rawURL[strings.LastIndex(rawURL, "/")+1:]
	ext := path.Ext(name)
	if ext != "" {
		name = strings.TrimSuffix(name, ext)
	}
	if name == "" {
		return ""
	}
	return Folder + "/" + name
}
