package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsBadBaseURL(t *testing.T) {
	_, err := New("not a url", 0)
	require.Error(t, err)

	c, err := New("http://localhost:8181/", 0)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8181", c.BaseURL)
	assert.Equal(t, DefaultTimeout, c.HTTP.Timeout)
}

func TestDoJSON_RoundTripAndErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/echo":
			var in map[string]string
			_ = json.NewDecoder(r.Body).Decode(&in)
			_ = json.NewEncoder(w).Encode(map[string]string{"got": in["say"], "ct": r.Header.Get("Content-Type")})
		case "/bad":
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"data is not valid"}`))
		default:
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte("upstream down"))
		}
	}))
	defer srv.Close()

	c, err := New(srv.URL, 0)
	require.NoError(t, err)

	var out map[string]string
	require.NoError(t, c.DoJSON(context.Background(), http.MethodPost, "echo", map[string]string{"say": "hola"}, &out))
	assert.Equal(t, "hola", out["got"])
	assert.Equal(t, "application/json", out["ct"])

	err = c.DoJSON(context.Background(), http.MethodGet, "/bad", nil, nil)
	require.Error(t, err)
	assert.True(t, IsStatus(err, http.StatusBadRequest))
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "data is not valid", se.Message)

	err = c.DoJSON(context.Background(), http.MethodGet, "/other", nil, nil)
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadGateway, se.StatusCode)
	assert.Empty(t, se.Message)
	assert.Contains(t, err.Error(), "upstream down")
}
