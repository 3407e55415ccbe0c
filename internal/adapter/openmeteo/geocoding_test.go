package openmeteo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func testGeocodingConfig(baseURL string) *GeocodingConfig {
	return &GeocodingConfig{
		BaseURL:      baseURL,
		Language:     "de",
		Timeout:      5 * time.Second,
		MaxRetries:   2,
		RetryBackoff: time.Millisecond,
	}
}

func TestGeocodingClient_Resolve(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/search" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		query := r.URL.Query()
		if query.Get("name") != "Hamburg" {
			t.Errorf("name = %q, expected Hamburg", query.Get("name"))
		}
		if query.Get("count") != "1" {
			t.Errorf("count = %q, expected 1", query.Get("count"))
		}
		if query.Get("language") != "de" {
			t.Errorf("language = %q, expected de", query.Get("language"))
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"results": [
				{"name": "Hamburg", "country": "Deutschland", "latitude": 53.5511, "longitude": 9.9937}
			]
		}`))
	}))
	defer server.Close()

	client := NewGeocodingClient(testGeocodingConfig(server.URL), zap.NewNop())

	loc, err := client.Resolve(context.Background(), "Hamburg")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}

	if loc.Name != "Hamburg" || loc.Country != "Deutschland" {
		t.Errorf("resolved %q, %q", loc.Name, loc.Country)
	}
	if loc.Latitude != 53.5511 || loc.Longitude != 9.9937 {
		t.Errorf("coordinates = %f, %f", loc.Latitude, loc.Longitude)
	}
}

func TestGeocodingClient_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"generationtime_ms": 0.5}`))
	}))
	defer server.Close()

	client := NewGeocodingClient(testGeocodingConfig(server.URL), zap.NewNop())

	_, err := client.Resolve(context.Background(), "Nirgendwo-Xyz")
	if !errors.Is(err, ErrLocationNotFound) {
		t.Errorf("got %v, expected ErrLocationNotFound", err)
	}
}

func TestGeocodingClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewGeocodingClient(testGeocodingConfig(server.URL), zap.NewNop())

	_, err := client.Resolve(context.Background(), "Hamburg")
	if err == nil {
		t.Fatal("expected error on persistent 500")
	}
	if errors.Is(err, ErrLocationNotFound) {
		t.Error("a server failure must not look like a not-found result")
	}
}
