package clients

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func TestHTTPClientAdapter_Post(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, `{"ok":true}`, string(body))
		w.WriteHeader(http.StatusAccepted)
		_, _ = w.Write([]byte("queued"))
	}))
	defer server.Close()

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")

	status, body, err := NewHTTPClient().Post(server.URL, headers, []byte(`{"ok":true}`))
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, status)
	assert.Equal(t, "queued", string(body))
}

func TestHTTPClient_SetClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockHTTPClientI(ctrl)

	client := NewHTTPClient()
	client.SetClient(mock)

	mock.EXPECT().Post("http://hook", gomock.Any(), []byte("x")).Return(http.StatusOK, nil, nil)
	status, _, err := client.Post("http://hook", http.Header{}, []byte("x"))
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, status)
}
