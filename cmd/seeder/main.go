// Command seeder bulk-loads listings from a JSON file into the durable
// store, validating each record on the way in.
package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/adapters/observability"
	"github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/domain"
	"github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/shared"
	mysqlrepo "github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv)

	log.Info().
		Str("file", cfg.SeedFile).
		Int("workers", cfg.Workers).
		Msg("seeder starting")

	raw, err := os.ReadFile(cfg.SeedFile)
	if err != nil {
		log.Fatal().Err(err).Msg("read seed file failed")
	}
	var listings []domain.Listing
	if err := json.Unmarshal(raw, &listings); err != nil {
		log.Fatal().Err(err).Msg("parse seed file failed")
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.Ping(); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("db ping ok")

	repo := mysqlrepo.New(db)
	if err := repo.Migrate(ctx); err != nil {
		log.Fatal().Err(err).Msg("migrate failed")
	}

	sem := semaphore.NewWeighted(int64(cfg.Workers))
	var wg sync.WaitGroup

	for i, l := range listings {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(i int, l domain.Listing) {
			defer wg.Done()
			defer sem.Release(1)

			created, err := repo.Create(ctx, l)
			if err != nil {
				log.Warn().Int("index", i).Str("name", l.Name).Err(err).Msg("seed failed")
				return
			}
			log.Info().Int("index", i).Str("id", created.ID).Msg("seed ok")
		}(i, l)
	}

	wg.Wait()
	log.Info().Msg("seeding completed")
}
