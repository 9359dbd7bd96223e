package enrich

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorloop/looper/pkg/config"
)

func TestNewImageClient_DisabledWithoutURL(t *testing.T) {
	assert.Nil(t, NewImageClient(config.DefaultEnrichConfig()))
	assert.Nil(t, NewSEOClient(config.DefaultEnrichConfig()))
}

func TestGenerateThumbnail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "My Title", req["title"])
		// Scripts are excerpted to 200 chars
		assert.Len(t, req["excerpt"], 200)
		fmt.Fprint(w, `{"url":"https://img.example.com/t1.png"}`)
	}))
	t.Cleanup(srv.Close)

	cfg := config.DefaultEnrichConfig()
	cfg.ImageServiceURL = srv.URL
	client := NewImageClient(cfg)
	require.NotNil(t, client)

	url, err := client.GenerateThumbnail(context.Background(), "My Title", strings.Repeat("s", 500))
	require.NoError(t, err)
	assert.Equal(t, "https://img.example.com/t1.png", url)
}

func TestOptimize(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"title":"Better Title","tags":["go","growth"]}`)
	}))
	t.Cleanup(srv.Close)

	cfg := config.DefaultEnrichConfig()
	cfg.SEOServiceURL = srv.URL
	client := NewSEOClient(cfg)
	require.NotNil(t, client)

	result, err := client.Optimize(context.Background(), "Title", []string{"go"})
	require.NoError(t, err)
	assert.Equal(t, "Better Title", result.Title)
	assert.Equal(t, []string{"go", "growth"}, result.Tags)
}

func TestEnrichers_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)

	cfg := config.DefaultEnrichConfig()
	cfg.ImageServiceURL = srv.URL
	cfg.SEOServiceURL = srv.URL

	_, err := NewImageClient(cfg).GenerateThumbnail(context.Background(), "t", "s")
	assert.Error(t, err)

	_, err = NewSEOClient(cfg).Optimize(context.Background(), "t", nil)
	assert.Error(t, err)
}
