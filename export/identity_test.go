package export

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticResolver(t *testing.T) {
	r := StaticResolver{ID: "u-9", DisplayName: "Jo"}

	id, err := r.Resolve(context.Background(), "ignored")
	require.NoError(t, err)
	assert.Equal(t, "u-9", id.ID)
	assert.Equal(t, "Jo", id.DisplayName)
}

func TestStaticResolverMissingID(t *testing.T) {
	_, err := StaticResolver{}.Resolve(context.Background(), "jdoe")
	assert.Error(t, err)
}

func TestHTTPResolver(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/users/jdoe", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "u-42", "displayName": "Jane Doe"}`))
	}))
	defer srv.Close()

	r := &HTTPResolver{BaseURL: srv.URL}
	id, err := r.Resolve(context.Background(), "jdoe")
	require.NoError(t, err)
	assert.Equal(t, "u-42", id.ID)
	assert.Equal(t, "Jane Doe", id.DisplayName)
}

func TestHTTPResolverNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := (&HTTPResolver{BaseURL: srv.URL}).Resolve(context.Background(), "ghost")
	assert.Error(t, err)
}

func TestHTTPResolverEmptyID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"displayName": "No ID"}`))
	}))
	defer srv.Close()

	_, err := (&HTTPResolver{BaseURL: srv.URL}).Resolve(context.Background(), "jdoe")
	assert.Error(t, err)
}

func TestHTTPResolverEmptyUsername(t *testing.T) {
	_, err := (&HTTPResolver{BaseURL: "http://example.invalid"}).Resolve(context.Background(), "")
	assert.Error(t, err)
}
