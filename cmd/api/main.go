package main

import (
	"context"
	"database/sql"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	server "github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/adapters/http_server"
	"github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/adapters/identity"
	"github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/adapters/observability"
	redisad "github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/adapters/redis"
	"github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/adapters/smartmatch"
	"github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/app"
	"github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/domain"
	"github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/shared"
	"github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/storage/memory"
	mysqlrepo "github.com/Yash2004Codes/MyRoomate-Hostel-Management/internal/storage/mysql"
)

func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// storage
	var repo domain.ListingRepository
	switch cfg.StorageDriver {
	case "mysql":
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		r := mysqlrepo.New(db)
		if err := r.Migrate(ctx); err != nil {
			log.Fatal().Err(err).Msg("migrate failed")
		}
		repo = r
		log.Info().Msg("mysql storage ready")
	default:
		store := memory.New()
		if cfg.SeedDemo {
			if err := memory.SeedDemo(ctx, store); err != nil {
				log.Fatal().Err(err).Msg("demo seed failed")
			}
			log.Info().Msg("demo dataset loaded")
		}
		repo = store
		log.Info().Msg("in-memory storage ready")
	}

	// cache degrades to a no-op when Redis is not configured
	var cache domain.Cache = redisad.Noop{}
	if cfg.RedisAddr != "" {
		cache = redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	}

	match, err := smartmatch.New(cfg.MatchBase, cfg.MatchKey, 2)
	if err != nil {
		log.Fatal().Err(err).Msg("smartmatch client init failed")
	}

	// deps
	q := app.NewQueryService(repo, cache, cfg.CacheTTL)
	c := app.NewCommandService(repo, cache)
	m := app.NewMatchService(match, cfg.MatchTimeout)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Q:     q,
		C:     c,
		M:     m,
		Token: identity.NewJWTVerifier(cfg.AuthSecret),
	})

	log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}
