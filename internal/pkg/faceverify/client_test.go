package faceverify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerify_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/verify", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "student-1", req["student_id"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"verified":   true,
			"confidence": 0.91,
		})
	}))
	defer srv.Close()

	client := New(srv.URL, 5*time.Second, false)
	result, err := client.Verify(context.Background(), "student-1", "base64-image-data")

	require.NoError(t, err)
	assert.True(t, result.Verified)
	assert.InDelta(t, 0.91, result.Confidence, 1e-9)
	assert.False(t, result.SpoofDetected)
}

func TestVerify_SpoofDetected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"verified":       false,
			"confidence":     0.2,
			"spoof_detected": true,
		})
	}))
	defer srv.Close()

	client := New(srv.URL, 5*time.Second, false)
	result, err := client.Verify(context.Background(), "student-1", "img")

	require.NoError(t, err)
	assert.False(t, result.Verified)
	assert.True(t, result.SpoofDetected)
}

func TestVerify_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := New(srv.URL, 5*time.Second, false)
	_, err := client.Verify(context.Background(), "student-1", "img")

	assert.Error(t, err)
}

func TestVerify_ServiceDown(t *testing.T) {
	client := New("http://127.0.0.1:1", 500*time.Millisecond, false)
	_, err := client.Verify(context.Background(), "student-1", "img")

	assert.Error(t, err)
}

func TestVerify_SkipMode(t *testing.T) {
	client := New("", 0, true)
	result, err := client.Verify(context.Background(), "student-1", "")

	require.NoError(t, err)
	assert.True(t, result.Verified)
	assert.InDelta(t, 0.95, result.Confidence, 1e-9)
}

func TestVerify_EmptyImage(t *testing.T) {
	client := New("http://localhost:9999", time.Second, false)
	_, err := client.Verify(context.Background(), "student-1", "")

	assert.Error(t, err)
}
