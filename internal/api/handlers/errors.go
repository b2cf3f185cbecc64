package handlers

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/spectra/internal/munsell"
	"github.com/RMahshie/spectra/internal/repository"
	"github.com/RMahshie/spectra/internal/spectrum"
)

// apiError maps domain errors onto HTTP statuses: bad input is 422, anything
// unresolvable or unknown is 404, the rest is 500.
func apiError(err error) error {
	var parseErr *munsell.ParseError
	var invalidMix *spectrum.InvalidMixError
	var missing *munsell.MissingSampleError

	switch {
	case errors.As(err, &parseErr), errors.As(err, &invalidMix), errors.Is(err, spectrum.ErrGridMismatch):
		return huma.Error422UnprocessableEntity(err.Error(), err)
	case errors.As(err, &missing), errors.Is(err, repository.ErrNotFound):
		return huma.Error404NotFound(err.Error(), err)
	default:
		log.Error().Err(err).Msg("Request failed")
		return huma.Error500InternalServerError("Internal server error", err)
	}
}
