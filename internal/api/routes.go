package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/RMahshie/spectra/internal/api/handlers"
	"github.com/RMahshie/spectra/internal/mixing"
	"github.com/RMahshie/spectra/internal/repository"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(api huma.API, palette handlers.Palette, pigmentRepo repository.PigmentRepository, mixingSvc mixing.MixingService) {
	// Initialize handlers
	munsellHandler := handlers.NewMunsellHandler(palette)
	pigmentHandler := handlers.NewPigmentHandler(pigmentRepo)
	mixHandler := handlers.NewMixHandler(mixingSvc)

	// Register Munsell routes
	huma.Register(api, huma.Operation{
		OperationID: "getColor",
		Method:      http.MethodGet,
		Path:        "/v1/munsell/color",
		Summary:     "Resolve a Munsell color",
		Description: "Returns the rendering of a Munsell color, lowering chroma when the color is out of gamut",
		Tags:        []string{"Munsell"},
	}, munsellHandler.GetColor)

	huma.Register(api, huma.Operation{
		OperationID: "getColorInSunlight",
		Method:      http.MethodGet,
		Path:        "/v1/munsell/color/sunlight",
		Summary:     "Resolve a color in sunlight",
		Tags:        []string{"Munsell"},
	}, munsellHandler.GetSunlight)

	huma.Register(api, huma.Operation{
		OperationID: "getColorInShadow",
		Method:      http.MethodGet,
		Path:        "/v1/munsell/color/shadow",
		Summary:     "Resolve a color in shadow",
		Description: "Darkens the color and mixes in the blue of the sky",
		Tags:        []string{"Munsell"},
	}, munsellHandler.GetShadow)

	huma.Register(api, huma.Operation{
		OperationID: "getComplement",
		Method:      http.MethodGet,
		Path:        "/v1/munsell/color/complement",
		Summary:     "Resolve the complement of a color",
		Tags:        []string{"Munsell"},
	}, munsellHandler.GetComplement)

	huma.Register(api, huma.Operation{
		OperationID: "getLadder",
		Method:      http.MethodGet,
		Path:        "/v1/munsell/ladder",
		Summary:     "Step between two colors",
		Description: "Interpolates Munsell coordinates, or mixes the two colors as paint when method is mix",
		Tags:        []string{"Munsell"},
	}, munsellHandler.GetLadder)

	huma.Register(api, huma.Operation{
		OperationID: "getMix",
		Method:      http.MethodGet,
		Path:        "/v1/munsell/mix",
		Summary:     "Mix two colors",
		Tags:        []string{"Munsell"},
	}, munsellHandler.GetMix)

	huma.Register(api, huma.Operation{
		OperationID: "getRainbow",
		Method:      http.MethodGet,
		Path:        "/v1/munsell/rainbow",
		Summary:     "Walk the hue circle",
		Tags:        []string{"Munsell"},
	}, munsellHandler.GetRainbow)

	huma.Register(api, huma.Operation{
		OperationID: "getPage",
		Method:      http.MethodGet,
		Path:        "/v1/munsell/page",
		Summary:     "Lay out one hue page",
		Tags:        []string{"Munsell"},
	}, munsellHandler.GetPage)

	huma.Register(api, huma.Operation{
		OperationID: "matchColor",
		Method:      http.MethodGet,
		Path:        "/v1/munsell/match",
		Summary:     "Find the nearest Munsell sample",
		Description: "Returns the database sample whose rendering is closest to an sRGB color in CIE Lab",
		Tags:        []string{"Munsell"},
	}, munsellHandler.GetMatch)

	// Register pigment routes
	huma.Register(api, huma.Operation{
		OperationID: "listPigments",
		Method:      http.MethodGet,
		Path:        "/v1/pigments",
		Summary:     "List pigments",
		Tags:        []string{"Pigments"},
	}, pigmentHandler.ListPigments)

	huma.Register(api, huma.Operation{
		OperationID: "getPigment",
		Method:      http.MethodGet,
		Path:        "/v1/pigments/{id}",
		Summary:     "Get a pigment",
		Description: "Returns a pigment with its reflectance spectrum",
		Tags:        []string{"Pigments"},
	}, pigmentHandler.GetPigment)

	// Register mix routes
	huma.Register(api, huma.Operation{
		OperationID:   "createMix",
		Method:        http.MethodPost,
		Path:          "/v1/mixes",
		Summary:       "Mix pigments",
		Description:   "Mixes catalog pigments subtractively and records the result",
		Tags:          []string{"Mixes"},
		DefaultStatus: http.StatusCreated,
	}, mixHandler.CreateMix)

	huma.Register(api, huma.Operation{
		OperationID: "getMixRecord",
		Method:      http.MethodGet,
		Path:        "/v1/mixes/{id}",
		Summary:     "Get a recorded mix",
		Tags:        []string{"Mixes"},
	}, mixHandler.GetMix)
}
