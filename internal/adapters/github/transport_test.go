package github_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/brewtap/internal/adapters/github"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestBearerTransport_Hosts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want string
	}{
		{"https://api.github.com/repos/octo/tool", "Bearer tok"},
		{"https://uploads.github.com/repos/octo/tool/releases/1/assets", "Bearer tok"},
		{"https://github.com/octo/tool/releases/download/v1.0.0/tool.tar.gz", "Bearer tok"},
		{"https://codeload.github.com/octo/tool/legacy.tar.gz/refs/tags/v1.0.0", ""},
		{"https://objects.githubusercontent.com/release-assets/1", ""},
		{"https://example.com/tool.tar.gz", ""},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()
			var got string
			rt := github.NewBearerTransport("tok", roundTripFunc(func(r *http.Request) (*http.Response, error) {
				got = r.Header.Get("Authorization")
				return &http.Response{StatusCode: http.StatusOK, Body: http.NoBody}, nil
			}))

			req, err := http.NewRequest(http.MethodGet, tt.url, nil)
			require.NoError(t, err)
			req.Header.Set("Authorization", "Bearer stale")
			resp, err := rt.RoundTrip(req)
			require.NoError(t, err)
			_ = resp.Body.Close()

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHost_Open_RedirectDropsToken(t *testing.T) {
	var (
		mu         sync.Mutex
		targetAuth []string
		originAuth string
	)
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		targetAuth = append(targetAuth, r.Header.Get("Authorization"))
		mu.Unlock()
		_, _ = io.WriteString(w, "signed payload")
	}))
	t.Cleanup(target.Close)

	signedURL := strings.Replace(target.URL, "127.0.0.1", "localhost", 1) + "/asset?signature=abc"
	origin := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		originAuth = r.Header.Get("Authorization")
		mu.Unlock()
		http.Redirect(w, r, signedURL, http.StatusFound)
	}))
	t.Cleanup(origin.Close)

	host := github.NewFactoryForServer(origin.URL).Connect("secret-token")
	body, err := host.Open(context.Background(), origin.URL+"/download/tool.tar.gz")
	require.NoError(t, err)
	defer body.Close()

	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "signed payload", string(data))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "Bearer secret-token", originAuth)
	assert.Equal(t, []string{""}, targetAuth)
}
