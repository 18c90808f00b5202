package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFileStorage_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client", "session.json")
	s := NewFileStorage(path)

	expiration := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	require.NoError(t, s.Save(&StoredSession{
		Token:      "tok",
		Expiration: expiration,
		UserID:     "user-1",
	}))

	// The file holds an ISO-8601 timestamp
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), expiration.Format(time.RFC3339))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Equal(t, "tok", loaded.Token)
	require.Equal(t, "user-1", loaded.UserID)
	require.True(t, loaded.Expiration.Equal(expiration))
}

func TestFileStorage_LoadMissing(t *testing.T) {
	s := NewFileStorage(filepath.Join(t.TempDir(), "session.json"))
	loaded, err := s.Load()
	require.NoError(t, err)
	require.Nil(t, loaded)
}

func TestFileStorage_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := NewFileStorage(path)

	require.NoError(t, s.Save(&StoredSession{Token: "tok", Expiration: time.Now(), UserID: "u"}))
	require.NoError(t, s.Clear())

	loaded, err := s.Load()
	require.NoError(t, err)
	require.Nil(t, loaded)

	// Clearing twice is not an error
	require.NoError(t, s.Clear())
}
