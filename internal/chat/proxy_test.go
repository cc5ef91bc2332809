package chat

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStreamRelaysChunks(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/chat/stream", r.URL.Path)
		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"prompt":"late checkout?"}`, string(body))

		fl := w.(http.Flusher)
		w.Write([]byte("Late "))
		fl.Flush()
		w.Write([]byte("checkout is available until noon."))
	}))
	defer upstream.Close()

	rec := httptest.NewRecorder()
	status, err := NewProxy(upstream.URL).Stream(context.Background(),
		[]byte(`{"prompt":"late checkout?"}`), rec)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Late checkout is available until noon.", rec.Body.String())
}

func TestStreamMirrorsUpstreamStatus(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("assistant offline"))
	}))
	defer upstream.Close()

	rec := httptest.NewRecorder()
	status, err := NewProxy(upstream.URL).Stream(context.Background(), []byte(`{}`), rec)

	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "assistant offline", rec.Body.String())
}
