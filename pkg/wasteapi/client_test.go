package wasteapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wastetrack/authprobe/pkg/common"
	"github.com/wastetrack/authprobe/pkg/context"
)

func TestResolveBaseURL(t *testing.T) {
	tests := []struct {
		name     string
		explicit string
		env      string
		want     string
	}{
		{
			name:     "explicit wins over env",
			explicit: "http://probe.example/api",
			env:      "https://api.example/api",
			want:     "http://probe.example/api",
		},
		{
			name: "env wins over default",
			env:  "https://api.example/api",
			want: "https://api.example/api",
		},
		{
			name: "default when nothing set",
			want: DefaultBaseURL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvAPIURL, tt.env)
			assert.Equal(t, tt.want, ResolveBaseURL(tt.explicit))
		})
	}
}

func TestPostResultShapes(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		want       Result
	}{
		{
			name:       "2xx with JSON body",
			statusCode: http.StatusOK,
			body:       `{"success":true,"token":"abc"}`,
			want:       Ok{StatusCode: http.StatusOK, Body: json.RawMessage(`{"success":true,"token":"abc"}`)},
		},
		{
			name:       "non-2xx with JSON body",
			statusCode: http.StatusUnauthorized,
			body:       `{"message":"Invalid credentials"}`,
			want:       HTTPError{StatusCode: http.StatusUnauthorized, Body: json.RawMessage(`{"message":"Invalid credentials"}`)},
		},
		{
			name:       "2xx with unparseable body",
			statusCode: http.StatusOK,
			body:       `<html>login</html>`,
			want:       TransportError{Reason: "unparseable response body (status 200)"},
		},
		{
			name:       "non-2xx with unparseable body",
			statusCode: http.StatusBadGateway,
			body:       "upstream exploded",
			want:       TransportError{Reason: "unparseable response body (status 502)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := New("http://probe.example/api", WithHTTPClient(
				common.ConstantResponseHttpClient(tt.statusCode, tt.body),
			))
			got := client.Post(context.Background(), "/auth/login", map[string]string{"email": "a@b.c"})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPostRequestShape(t *testing.T) {
	var (
		gotPath        string
		gotContentType string
		gotBody        []byte
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":false,"message":"nope"}`))
	}))
	defer server.Close()

	client := New(server.URL + "/api")
	res := client.Post(context.Background(), "/auth/login", map[string]string{
		"email":    "admin@wastemanagement.com",
		"password": "Admin123!",
	})

	require.IsType(t, Ok{}, res)
	assert.Equal(t, "/api/auth/login", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	assert.JSONEq(t, `{"email":"admin@wastemanagement.com","password":"Admin123!"}`, string(gotBody))
}

func TestPostBaseURLFromEnv(t *testing.T) {
	var gotURL string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotURL = r.URL.Path
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	t.Setenv(EnvAPIURL, server.URL+"/api")

	client := New("")
	assert.Equal(t, server.URL+"/api", client.BaseURL())

	res := client.Post(context.Background(), "/auth/login", map[string]string{})
	require.IsType(t, Ok{}, res)
	assert.Equal(t, "/api/auth/login", gotURL)
}

func TestPostTransportFailure(t *testing.T) {
	client := New("http://probe.example/api", WithHTTPClient(&http.Client{
		Transport: common.FakeTransport{
			CreateResponse: func(req *http.Request) (*http.Response, error) {
				return nil, errors.New("dial tcp: connection refused")
			},
		},
	}))

	res := client.Post(context.Background(), "/auth/login", map[string]string{})
	require.IsType(t, TransportError{}, res)
	assert.Contains(t, res.(TransportError).Reason, "connection refused")
}
