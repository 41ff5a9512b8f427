package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

var games = []map[string]any{
	{"id": 1, "genre_id": 1, "platform_id": 1, "title": "The Witcher 3", "description": "open world",
		"price": 29.99, "release_date": "19.05.2015", "developer": "CD Projekt Red", "rating": 4.9},
	{"id": 2, "genre_id": 2, "platform_id": 1, "title": "Hades", "description": "roguelike",
		"price": 24.5, "release_date": "17.09.2020", "developer": "Supergiant", "rating": 4.7},
	{"id": 3, "genre_id": 1, "platform_id": 2, "title": "Elden Ring", "description": "souls",
		"price": 59.99, "release_date": "25.02.2022", "developer": "FromSoftware", "rating": 4.8},
}

type fakeAPI struct {
	orders atomic.Int32
}

func (f *fakeAPI) router() http.Handler {
	r := chi.NewRouter()
	r.Get("/games/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, games)
	})
	r.Get("/games/{id}", func(w http.ResponseWriter, r *http.Request) {
		for _, g := range games {
			if chi.URLParam(r, "id") == jsonNumber(g["id"]) {
				writeJSON(w, http.StatusOK, g)
				return
			}
		}
		writeJSON(w, http.StatusNotFound, map[string]string{"detail": "Game not found"})
	})
	r.Get("/genres/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{{"id": 1, "name": "RPG"}, {"id": 2, "name": "Roguelike"}})
	})
	r.Get("/platforms/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{{"id": 1, "name": "PC"}, {"id": 2, "name": "PS5"}})
	})
	r.Get("/reviews/game/{id}", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{})
	})
	r.Get("/users/", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{{"id": 7, "name": "Alice", "email": "alice@example.com"}})
	})
	r.Post("/users/login", func(w http.ResponseWriter, r *http.Request) {
		var in map[string]string
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in["password"] != "secret" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid credentials"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"access_token": "token", "token_type": "bearer"})
	})
	r.Post("/orders", func(w http.ResponseWriter, _ *http.Request) {
		f.orders.Add(1)
		writeJSON(w, http.StatusOK, map[string]any{"message": "Order created", "game_title": "Hades", "game_price": 24.5})
	})
	return r
}

func jsonNumber(v any) string {
	b, _ := json.Marshal(v)
	return string(b)
}

type harness struct {
	t   *testing.T
	cfg Config
	api *fakeAPI
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	api := &fakeAPI{}
	srv := httptest.NewServer(api.router())
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	return &harness{
		t:   t,
		api: api,
		cfg: Config{
			APIURL:        srv.URL,
			APITimeout:    5 * time.Second,
			StorageDriver: DriverFile,
			StorageDir:    dir,
			SQLitePath:    filepath.Join(dir, "storefront.db"),
			LogLevel:      "error",
			LogFormat:     "text",
		},
	}
}

// run executes one invocation and returns stdout and stderr.
func (h *harness) run(args ...string) (string, string, error) {
	h.t.Helper()
	var stdout, stderr bytes.Buffer
	err := execute(context.Background(), h.cfg, append([]string{"-o", "json"}, args...), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestCLI_Catalog(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.run("catalog", "--genre", "1", "--sort", "price-asc")
	require.NoError(t, err)

	var listing struct {
		Count    int `json:"count"`
		Products []struct {
			ID int64 `json:"id"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &listing))
	assert.Equal(t, 2, listing.Count)
	require.Len(t, listing.Products, 2)
	assert.Equal(t, int64(1), listing.Products[0].ID)
	assert.Equal(t, int64(3), listing.Products[1].ID)
}

func TestCLI_CatalogInvalidSort(t *testing.T) {
	h := newHarness(t)
	_, _, err := h.run("catalog", "--sort", "alphabetical")
	require.Error(t, err)
}

func TestCLI_CheckoutFlow(t *testing.T) {
	h := newHarness(t)

	_, _, err := h.run("cart", "add", "2")
	require.NoError(t, err)

	_, stderr, err := h.run("checkout")
	require.Error(t, err)
	assert.Contains(t, stderr, "[warning]")
	assert.Zero(t, h.api.orders.Load())

	_, _, err = h.run("login", "--email", "alice@example.com", "--password", "secret")
	require.NoError(t, err)

	out, stderr, err := h.run("checkout")
	require.NoError(t, err)
	assert.Contains(t, out, "Order created")
	assert.Contains(t, stderr, "[success]")
	assert.Equal(t, int32(1), h.api.orders.Load())

	out, _, err = h.run("cart")
	require.NoError(t, err)
	var summary struct {
		Count int `json:"count"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	assert.Zero(t, summary.Count)
}

func TestCLI_CheckoutRejectsTwoProducts(t *testing.T) {
	h := newHarness(t)

	_, _, err := h.run("login", "--email", "alice@example.com", "--password", "secret")
	require.NoError(t, err)
	_, _, err = h.run("cart", "add", "1")
	require.NoError(t, err)
	_, _, err = h.run("cart", "add", "2")
	require.NoError(t, err)

	_, _, err = h.run("checkout")
	require.Error(t, err)
	assert.Zero(t, h.api.orders.Load())
}

func TestCLI_LogoutEmptiesCart(t *testing.T) {
	h := newHarness(t)

	_, _, err := h.run("login", "--email", "alice@example.com", "--password", "secret")
	require.NoError(t, err)
	_, _, err = h.run("cart", "add", "1")
	require.NoError(t, err)

	_, _, err = h.run("logout")
	require.NoError(t, err)

	out, _, err := h.run("cart")
	require.NoError(t, err)
	assert.Contains(t, out, `"count": 0`)

	_, stderr, err := h.run("whoami")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Not signed in")
}

func TestCLI_Theme(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.run("theme")
	require.NoError(t, err)
	assert.Contains(t, out, `"dark"`)

	out, _, err = h.run("theme", "toggle")
	require.NoError(t, err)
	assert.Contains(t, out, `"light"`)

	out, _, err = h.run("theme")
	require.NoError(t, err)
	assert.Contains(t, out, `"light"`)

	_, _, err = h.run("theme", "sepia")
	require.Error(t, err)
}

func TestCLI_MemoryDriverDoesNotPersist(t *testing.T) {
	h := newHarness(t)
	h.cfg.StorageDriver = DriverMemory

	_, _, err := h.run("cart", "add", "1")
	require.NoError(t, err)
	out, _, err := h.run("cart")
	require.NoError(t, err)
	assert.Contains(t, out, `"count": 0`)
}

func TestCLI_SQLiteDriver(t *testing.T) {
	h := newHarness(t)
	h.cfg.StorageDriver = DriverSQLite

	_, _, err := h.run("cart", "add", "3")
	require.NoError(t, err)
	out, stderr, err := h.run("--stats", "cart")
	require.NoError(t, err)
	assert.Contains(t, out, "Elden Ring")
	assert.Contains(t, stderr, "storage get/ok")
}

func TestCLI_UnknownDriver(t *testing.T) {
	h := newHarness(t)
	h.cfg.StorageDriver = "floppy"

	_, _, err := h.run("cart")
	require.ErrorIs(t, err, ErrUnknownDriver)
}

func TestParseID(t *testing.T) {
	tests := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{in: "12", want: 12},
		{in: "0", wantErr: true},
		{in: "-3", wantErr: true},
		{in: "abc", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseID(tt.in)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCLI_Health(t *testing.T) {
	h := newHarness(t)

	out, _, err := h.run("health")
	require.NoError(t, err)
	assert.Contains(t, out, `"storage": "ok"`)
	assert.Contains(t, out, `"api": "ok"`)

	h.cfg.APIURL = "http://127.0.0.1:1"
	h.cfg.APIRetries = 0
	_, _, err = h.run("health")
	require.ErrorIs(t, err, ErrUnhealthy)
}
