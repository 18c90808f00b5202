package imagestore

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/require"
)

// fakeMinio is an in-memory minioAPI.
type fakeMinio struct {
	bucketExists bool
	madeBucket   bool
	objects      map[string][]byte
	removed      []string
}

func newFakeMinio(bucketExists bool) *fakeMinio {
	return &fakeMinio{bucketExists: bucketExists, objects: make(map[string][]byte)}
}

func (f *fakeMinio) BucketExists(_ context.Context, _ string) (bool, error) {
	return f.bucketExists, nil
}

func (f *fakeMinio) MakeBucket(_ context.Context, _ string, _ minio.MakeBucketOptions) error {
	f.madeBucket = true
	f.bucketExists = true
	return nil
}

func (f *fakeMinio) PutObject(_ context.Context, _ string, objectName string, reader io.Reader, _ int64, _ minio.PutObjectOptions) (minio.UploadInfo, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	f.objects[objectName] = data
	return minio.UploadInfo{Key: objectName}, nil
}

func (f *fakeMinio) RemoveObject(_ context.Context, _ string, objectName string, _ minio.RemoveObjectOptions) error {
	delete(f.objects, objectName)
	f.removed = append(f.removed, objectName)
	return nil
}

func (f *fakeMinio) ListObjects(_ context.Context, _ string, opts minio.ListObjectsOptions) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(f.objects))
	for key := range f.objects {
		if len(opts.Prefix) == 0 || (len(key) >= len(opts.Prefix) && key[:len(opts.Prefix)] == opts.Prefix) {
			ch <- minio.ObjectInfo{Key: key}
		}
	}
	close(ch)
	return ch
}

func newTestStore(t *testing.T, api minioAPI) *MinioStore {
	t.Helper()
	s, err := NewMinioStoreWithAPI(context.Background(), api, "postboard-images", "http://localhost:9000")
	require.NoError(t, err)
	s.now = func() time.Time { return time.Unix(0, 1700000000000000000) }
	return s
}

func TestNewMinioStore_CreatesMissingBucket(t *testing.T) {
	api := newFakeMinio(false)
	newTestStore(t, api)
	require.True(t, api.madeBucket)
}

func TestUpload_ReturnsPublicURL(t *testing.T) {
	api := newFakeMinio(true)
	s := newTestStore(t, api)

	url, err := s.Upload(context.Background(), "My Cat.PNG", strings.NewReader("data"), 4, "image/png")
	require.NoError(t, err)
	require.Equal(t, "http://localhost:9000/postboard-images/posts/my-cat-1700000000000000000.PNG", url)
	require.Contains(t, api.objects, "posts/my-cat-1700000000000000000.PNG")
}

func TestDestroy_RemovesByPublicID(t *testing.T) {
	api := newFakeMinio(true)
	s := newTestStore(t, api)

	url, err := s.Upload(context.Background(), "cat.png", strings.NewReader("data"), 4, "image/png")
	require.NoError(t, err)

	publicID := PublicIDFromURL(url)
	require.Equal(t, "posts/cat-1700000000000000000", publicID)

	require.NoError(t, s.Destroy(context.Background(), publicID))
	require.Empty(t, api.objects)
	require.Equal(t, []string{"posts/cat-1700000000000000000.png"}, api.removed)
}

func TestPublicIDFromURL(t *testing.T) {
	require.Equal(t, "posts/cat-123", PublicIDFromURL("http://localhost:9000/postboard-images/posts/cat-123.png"))
	require.Equal(t, "posts/cat-123", PublicIDFromURL("https://cdn.example.com/bucket/posts/cat-123.jpeg"))
	require.Equal(t, "posts/noext", PublicIDFromURL("http://host/bucket/posts/noext"))
	require.Equal(t, "", PublicIDFromURL(""))
	require.Equal(t, "", PublicIDFromURL("http://host/bucket/posts/"))
}
