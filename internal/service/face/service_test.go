package face

import (
	"context"
	"encoding/base64"
	"io"
	"testing"
	"time"

	"github.com/campuslab/attendance-backend-go/internal/domain/face"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFaceRepo struct {
	data map[string]face.FaceData
}

func newFakeFaceRepo() *fakeFaceRepo {
	return &fakeFaceRepo{data: make(map[string]face.FaceData)}
}

func (f *fakeFaceRepo) Upsert(ctx context.Context, d face.FaceData) (face.FaceData, error) {
	d.SampleCount = len(d.Descriptors)
	f.data[d.StudentID] = d
	return d, nil
}

func (f *fakeFaceRepo) GetByStudent(ctx context.Context, studentID string) (face.FaceData, error) {
	d, ok := f.data[studentID]
	if !ok {
		return face.FaceData{}, face.ErrFaceNotRegistered
	}
	return d, nil
}

func (f *fakeFaceRepo) Exists(ctx context.Context, studentID string) (bool, error) {
	_, ok := f.data[studentID]
	return ok, nil
}

func (f *fakeFaceRepo) Delete(ctx context.Context, studentID string) error {
	delete(f.data, studentID)
	return nil
}

type fakeStorage struct {
	uploads map[string][]byte
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{uploads: make(map[string][]byte)}
}

func (f *fakeStorage) Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	f.uploads[path] = data
	return path, nil
}

func (f *fakeStorage) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	return nil, nil
}

func (f *fakeStorage) Delete(ctx context.Context, path string) error { return nil }

func (f *fakeStorage) GetURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "http://localhost:8080/uploads/" + path, nil
}

func (f *fakeStorage) Exists(ctx context.Context, path string) (bool, error) {
	_, ok := f.uploads[path]
	return ok, nil
}

func claimsCtx(t *testing.T, userID string) context.Context {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := tokenAuth.Encode(map[string]interface{}{"user_id": userID, "role": "student"})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func descriptors(n int) [][]float64 {
	out := make([][]float64, n)
	for i := range out {
		out[i] = make([]float64, face.DescriptorLength)
	}
	return out
}

func TestRegister_StoresSamples(t *testing.T) {
	repo := newFakeFaceRepo()
	svc := NewFaceService(repo, nil)
	ctx := claimsCtx(t, "student-1")

	resp, err := svc.Register(ctx, face.RegisterRequest{Descriptors: descriptors(4)})

	require.NoError(t, err)
	assert.True(t, resp.Registered)
	assert.Equal(t, 4, resp.SampleCount)
	assert.Equal(t, "student-1", resp.StudentID)
	assert.Equal(t, face.StatusActive, resp.Status)
}

func TestRegister_StoresSnapshot(t *testing.T) {
	repo := newFakeFaceRepo()
	store := newFakeStorage()
	svc := NewFaceService(repo, store)
	ctx := claimsCtx(t, "student-1")

	req := face.RegisterRequest{
		Descriptors: descriptors(3),
		Snapshot:    base64.StdEncoding.EncodeToString([]byte("jpeg-bytes")),
	}

	_, err := svc.Register(ctx, req)

	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg-bytes"), store.uploads["faces/student-1.jpg"])

	data := repo.data["student-1"]
	require.NotNil(t, data.SnapshotURL)
	assert.Equal(t, "http://localhost:8080/uploads/faces/student-1.jpg", *data.SnapshotURL)
}

func TestRegister_BadSnapshotIsNotFatal(t *testing.T) {
	repo := newFakeFaceRepo()
	svc := NewFaceService(repo, newFakeStorage())
	ctx := claimsCtx(t, "student-1")

	req := face.RegisterRequest{
		Descriptors: descriptors(3),
		Snapshot:    "not-base64!!",
	}

	resp, err := svc.Register(ctx, req)

	require.NoError(t, err)
	assert.True(t, resp.Registered)
	assert.Nil(t, repo.data["student-1"].SnapshotURL)
}

func TestRegister_ReplacesPreviousSet(t *testing.T) {
	repo := newFakeFaceRepo()
	svc := NewFaceService(repo, nil)
	ctx := claimsCtx(t, "student-1")

	_, err := svc.Register(ctx, face.RegisterRequest{Descriptors: descriptors(5)})
	require.NoError(t, err)

	resp, err := svc.Register(ctx, face.RegisterRequest{Descriptors: descriptors(3)})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.SampleCount)
}

func TestRegister_TooFewSamples(t *testing.T) {
	svc := NewFaceService(newFakeFaceRepo(), nil)
	ctx := claimsCtx(t, "student-1")

	_, err := svc.Register(ctx, face.RegisterRequest{Descriptors: descriptors(2)})

	assert.Error(t, err)
}

func TestRegister_WrongDescriptorLength(t *testing.T) {
	svc := NewFaceService(newFakeFaceRepo(), nil)
	ctx := claimsCtx(t, "student-1")

	bad := descriptors(3)
	bad[1] = make([]float64, 64)

	_, err := svc.Register(ctx, face.RegisterRequest{Descriptors: bad})

	assert.Error(t, err)
}

func TestStatus_NotRegisteredIsNotAnError(t *testing.T) {
	svc := NewFaceService(newFakeFaceRepo(), nil)
	ctx := claimsCtx(t, "student-1")

	resp, err := svc.Status(ctx)

	require.NoError(t, err)
	assert.False(t, resp.Registered)
	assert.Zero(t, resp.SampleCount)
}

func TestStatusAndUnregister(t *testing.T) {
	repo := newFakeFaceRepo()
	svc := NewFaceService(repo, nil)
	ctx := claimsCtx(t, "student-1")

	_, err := svc.Register(ctx, face.RegisterRequest{Descriptors: descriptors(3)})
	require.NoError(t, err)

	resp, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.True(t, resp.Registered)
	assert.Equal(t, 3, resp.SampleCount)
	assert.Equal(t, face.StatusActive, resp.Status)

	require.NoError(t, svc.Unregister(ctx))

	resp, err = svc.Status(ctx)
	require.NoError(t, err)
	assert.False(t, resp.Registered)
}
