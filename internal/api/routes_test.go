package api

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RMahshie/spectra/internal/dataset"
	"github.com/RMahshie/spectra/internal/mixing"
	"github.com/RMahshie/spectra/internal/munsell"
	"github.com/RMahshie/spectra/internal/pigment"
	"github.com/RMahshie/spectra/internal/repository/memory"
	"github.com/RMahshie/spectra/pkg/models"
)

var (
	paletteOnce sync.Once
	palette     *munsell.Palette
	paletteErr  error
)

func bundledPalette(t *testing.T) *munsell.Palette {
	t.Helper()
	paletteOnce.Do(func() {
		db, err := dataset.NewLoader(nil, dataset.Sources{}).Munsell(context.Background())
		if err != nil {
			paletteErr = err
			return
		}
		palette = munsell.NewPalette(db)
	})
	require.NoError(t, paletteErr)
	return palette
}

func newTestAPI(t *testing.T) humatest.TestAPI {
	t.Helper()
	ctx := context.Background()

	pigments, err := dataset.NewLoader(nil, dataset.Sources{}).Pigments(ctx)
	require.NoError(t, err)
	pigmentRepo := memory.NewPigmentRepository()
	require.NoError(t, pigment.Seed(ctx, pigmentRepo, pigments))

	_, api := humatest.New(t)
	RegisterRoutes(api, bundledPalette(t), pigmentRepo, mixing.NewMixingService(pigmentRepo, memory.NewMixRepository()))
	return api
}

func TestRoutes_Munsell(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"color", "/v1/munsell/color?color=5R%205/6", http.StatusOK},
		{"gray", "/v1/munsell/color?color=N%205/", http.StatusOK},
		{"bad notation", "/v1/munsell/color?color=banana", http.StatusUnprocessableEntity},
		{"missing color", "/v1/munsell/color", http.StatusUnprocessableEntity},
		{"shadow", "/v1/munsell/color/shadow?color=5Y%206/4", http.StatusOK},
		{"sunlight", "/v1/munsell/color/sunlight?color=5Y%206/4", http.StatusOK},
		{"complement", "/v1/munsell/color/complement?color=5Y%206/4", http.StatusOK},
		{"ladder", "/v1/munsell/ladder?start_color=5R%204/6&end_color=5B%206/4&steps=4", http.StatusOK},
		{"mixed ladder", "/v1/munsell/ladder?start_color=5R%204/6&end_color=5B%206/4&steps=4&method=mix", http.StatusOK},
		{"ladder of one", "/v1/munsell/ladder?start_color=5R%204/6&end_color=5B%206/4&steps=1", http.StatusUnprocessableEntity},
		{"mix", "/v1/munsell/mix?a_color=5R%204/6&b_color=5Y%208/6&a_parts=2", http.StatusOK},
		{"rainbow", "/v1/munsell/rainbow?value=5&chroma=4&steps=8", http.StatusOK},
		{"page", "/v1/munsell/page?hue=5PB&value_steps=3&chroma_steps=3", http.StatusOK},
		{"match", "/v1/munsell/match?hex=c8321e", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := api.Get(tt.path)
			assert.Equal(t, tt.wantStatus, resp.Code, resp.Body.String())
		})
	}
}

func TestRoutes_ColorBody(t *testing.T) {
	api := newTestAPI(t)

	resp := api.Get("/v1/munsell/color?color=5R%205/6")
	require.Equal(t, http.StatusOK, resp.Code)

	var body models.ColorResult
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "5.0R 5.0/6.0", body.Name)
	require.NotNil(t, body.Chroma)
	assert.Equal(t, 6.0, *body.Chroma)
	assert.Len(t, body.Hex, 6)
}

func TestRoutes_Pigments(t *testing.T) {
	api := newTestAPI(t)

	resp := api.Get("/v1/pigments")
	require.Equal(t, http.StatusOK, resp.Code)
	var list struct {
		Pigments []models.PigmentSummary `json:"pigments"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	assert.Len(t, list.Pigments, 22)

	assert.Equal(t, http.StatusOK, api.Get("/v1/pigments/titanium-white").Code)
	assert.Equal(t, http.StatusNotFound, api.Get("/v1/pigments/mauve").Code)
}

func TestRoutes_Mixes(t *testing.T) {
	api := newTestAPI(t)

	resp := api.Post("/v1/mixes", map[string]any{
		"pigments": []map[string]any{
			{"id": "titanium-white", "proportion": 3},
			{"id": "ultramarine", "proportion": 1},
		},
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var mix models.Mix
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &mix))
	assert.Equal(t, "75.0% Titanium White + 25.0% Ultramarine", mix.Name)

	got := api.Get("/v1/mixes/" + mix.ID)
	require.Equal(t, http.StatusOK, got.Code)
	var stored models.Mix
	require.NoError(t, json.Unmarshal(got.Body.Bytes(), &stored))
	assert.Equal(t, mix.ID, stored.ID)
	assert.Equal(t, mix.Hex, stored.Hex)
	assert.Len(t, stored.Portions, 2)

	unknown := api.Post("/v1/mixes", map[string]any{
		"pigments": []map[string]any{{"id": "mauve", "proportion": 1}},
	})
	assert.Equal(t, http.StatusNotFound, unknown.Code)

	assert.Equal(t, http.StatusBadRequest, api.Get("/v1/mixes/not-a-uuid").Code)
}
