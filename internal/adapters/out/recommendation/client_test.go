package recommendation

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"b2better/internal/core/domain/model/kernel"
	"b2better/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPClient(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		wantErr error
	}{
		{name: "valid", baseURL: "http://ml.local:5000"},
		{name: "empty", baseURL: "", wantErr: errs.ErrValueIsRequired},
		{name: "no scheme", baseURL: "ml.local", wantErr: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewHTTPClient(tt.baseURL, 0)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, client)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
		})
	}
}

func TestHTTPClient_Recommendations_PassesBodyThrough(t *testing.T) {
	userID := kernel.NewUUID()
	var gotPath, gotLimit string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotLimit = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"products":[{"sku":"A-1","score":0.9}]}`))
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL+"/", time.Second)
	require.NoError(t, err)

	body, err := client.Recommendations(t.Context(), userID, 7)

	require.NoError(t, err)
	assert.Equal(t, "/recommendations/"+userID.String(), gotPath)
	assert.Equal(t, "7", gotLimit)
	assert.JSONEq(t, `{"products":[{"sku":"A-1","score":0.9}]}`, string(body))
}

func TestHTTPClient_Recommendations_Non2xx(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, time.Second)
	require.NoError(t, err)

	body, err := client.Recommendations(t.Context(), kernel.NewUUID(), 10)

	require.ErrorIs(t, err, errs.ErrUpstream)
	var upstream *errs.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Equal(t, ServiceName, upstream.Service)
	assert.Equal(t, http.StatusServiceUnavailable, upstream.StatusCode)
	assert.Nil(t, body)
}

func TestHTTPClient_Recommendations_NotRetried(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, time.Second)
	require.NoError(t, err)

	_, err = client.Recommendations(t.Context(), kernel.NewUUID(), 10)

	require.ErrorIs(t, err, errs.ErrUpstream)
	assert.Equal(t, 1, calls)
}

func TestHTTPClient_Recommendations_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer server.Close()
	defer close(release)

	client, err := NewHTTPClient(server.URL, 50*time.Millisecond)
	require.NoError(t, err)

	_, err = client.Recommendations(t.Context(), kernel.NewUUID(), 10)

	require.ErrorIs(t, err, errs.ErrUpstream)
	var upstream *errs.UpstreamError
	require.True(t, errors.As(err, &upstream))
	assert.Zero(t, upstream.StatusCode)
	assert.Error(t, upstream.Cause)
}

func TestHTTPClient_Recommendations_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html>oops</html>"))
	}))
	defer server.Close()

	client, err := NewHTTPClient(server.URL, time.Second)
	require.NoError(t, err)

	_, err = client.Recommendations(t.Context(), kernel.NewUUID(), 10)

	require.ErrorIs(t, err, errs.ErrUpstream)
}
