// Command seed loads the pigment catalog into Postgres and can publish the
// Munsell reference dataset to object storage.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/RMahshie/spectra/data"
	"github.com/RMahshie/spectra/internal/config"
	"github.com/RMahshie/spectra/internal/dataset"
	"github.com/RMahshie/spectra/internal/pigment"
	"github.com/RMahshie/spectra/internal/repository/postgres"
	"github.com/RMahshie/spectra/internal/storage"
)

func main() {
	publish := flag.String("publish", "", "object key to publish the bundled Munsell dataset under")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if cfg.Database.URL != "" {
		if err := seedPigments(ctx, cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to seed pigments")
		}
	} else {
		log.Warn().Msg("DATABASE_URL not set, skipping pigment seed")
	}

	if *publish != "" {
		url, err := publishMunsell(ctx, cfg, *publish)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to publish Munsell dataset")
		}
		fmt.Println(url)
	}
}

func seedPigments(ctx context.Context, cfg *config.Config) error {
	pigments, err := dataset.NewLoader(nil, dataset.Sources{PigmentPath: cfg.Data.PigmentPath}).Pigments(ctx)
	if err != nil {
		return err
	}

	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := pigment.Seed(ctx, postgres.NewPostgresPigmentRepository(db), pigments); err != nil {
		return err
	}
	log.Info().Int("pigments", len(pigments)).Msg("Pigments seeded")
	return nil
}

func publishMunsell(ctx context.Context, cfg *config.Config, key string) (string, error) {
	if cfg.AWS.S3Bucket == "" {
		return "", fmt.Errorf("S3_BUCKET must be set to publish")
	}
	store, err := storage.NewS3Store(ctx, storage.S3Config{
		Bucket:    cfg.AWS.S3Bucket,
		Endpoint:  cfg.AWS.S3Endpoint,
		Region:    cfg.AWS.Region,
		AccessKey: cfg.AWS.AccessKeyID,
		SecretKey: cfg.AWS.SecretAccessKey,
	})
	if err != nil {
		return "", err
	}
	if err := store.Upload(ctx, key, data.Munsell, "text/csv"); err != nil {
		return "", err
	}
	log.Info().Str("bucket", cfg.AWS.S3Bucket).Str("key", key).Int("bytes", len(data.Munsell)).Msg("Munsell dataset published")
	return store.DownloadURL(ctx, key)
}
