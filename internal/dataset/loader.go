// Package dataset picks where the reference data comes from: a published
// object, a local file, or the copy embedded in the binary, in that order.
package dataset

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/RMahshie/spectra/data"
	"github.com/RMahshie/spectra/internal/munsell"
	"github.com/RMahshie/spectra/internal/pigment"
	"github.com/RMahshie/spectra/internal/storage"
)

// Sources names the non-embedded locations to try. Empty fields are skipped.
type Sources struct {
	MunsellKey  string
	MunsellPath string
	PigmentPath string
}

// Loader reads datasets from their configured sources.
type Loader struct {
	store   storage.ObjectStore
	sources Sources
}

// NewLoader creates a loader. store may be nil when no bucket is configured.
func NewLoader(store storage.ObjectStore, sources Sources) *Loader {
	return &Loader{store: store, sources: sources}
}

// Munsell loads the reference samples and builds the sample database.
func (l *Loader) Munsell(ctx context.Context) (*munsell.Database, error) {
	raw, source, err := l.read(ctx, l.sources.MunsellKey, l.sources.MunsellPath, data.Munsell, "munsell.csv")
	if err != nil {
		return nil, err
	}
	refs, err := munsell.LoadReference(bytes.NewReader(raw), source)
	if err != nil {
		return nil, err
	}
	return munsell.Build(refs)
}

// Pigments loads the pigment catalog.
func (l *Loader) Pigments(ctx context.Context) ([]pigment.Pigment, error) {
	raw, source, err := l.read(ctx, "", l.sources.PigmentPath, data.Pigments, "pigments.csv")
	if err != nil {
		return nil, err
	}
	pigments, err := pigment.Load(bytes.NewReader(raw), source)
	if err != nil {
		return nil, err
	}
	log.Info().Str("source", source).Int("pigments", len(pigments)).Msg("Pigment catalog loaded")
	return pigments, nil
}

func (l *Loader) read(ctx context.Context, key, path string, embedded []byte, name string) ([]byte, string, error) {
	switch {
	case key != "":
		source := "s3:" + key
		if l.store == nil {
			return nil, source, &munsell.DataLoadError{Source: source, Err: errors.New("no object store configured")}
		}
		raw, err := l.store.Download(ctx, key)
		if err != nil {
			return nil, source, &munsell.DataLoadError{Source: source, Err: err}
		}
		log.Info().Str("source", source).Int("bytes", len(raw)).Msg("Dataset downloaded")
		return raw, source, nil
	case path != "":
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, path, &munsell.DataLoadError{Source: path, Err: err}
		}
		log.Info().Str("source", path).Int("bytes", len(raw)).Msg("Dataset read")
		return raw, path, nil
	default:
		return embedded, fmt.Sprintf("embedded:%s", name), nil
	}
}
