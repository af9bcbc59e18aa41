package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(t.TempDir(), "http://localhost:8080/uploads")
	require.NoError(t, err)
	return s
}

func TestLocalStorage_UploadAndDownload(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	path, err := s.Upload(ctx, strings.NewReader("jpeg-bytes"), "checkins/sess-1/student-1.jpg", "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "checkins/sess-1/student-1.jpg", path)

	rc, err := s.Download(ctx, path)
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
}

func TestLocalStorage_GetURL(t *testing.T) {
	s := newTestStorage(t)

	url, err := s.GetURL(context.Background(), "checkins/sess-1/student-1.jpg", 0)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/checkins/sess-1/student-1.jpg", url)
}

func TestLocalStorage_ExistsAndDelete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	_, err := s.Upload(ctx, strings.NewReader("x"), "evidence/a.jpg", "image/jpeg")
	require.NoError(t, err)

	exists, err := s.Exists(ctx, "evidence/a.jpg")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.Delete(ctx, "evidence/a.jpg"))

	exists, err = s.Exists(ctx, "evidence/a.jpg")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalStorage_RejectsTraversal(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.Upload(context.Background(), strings.NewReader("x"), "../../etc/passwd", "text/plain")
	assert.Error(t, err)
}
