package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rakhadian/sportsday/internal/config"
	"github.com/rakhadian/sportsday/internal/domain/event"
	"github.com/rakhadian/sportsday/internal/domain/player"
	"github.com/rakhadian/sportsday/internal/domain/result"
	"github.com/rakhadian/sportsday/internal/domain/team"
	"github.com/rakhadian/sportsday/internal/infrastructure/repository/memory"
	"github.com/rakhadian/sportsday/internal/infrastructure/repository/postgres"
	"github.com/rakhadian/sportsday/internal/interfaces/httpapi"
	"github.com/rakhadian/sportsday/internal/platform/logging"
	"github.com/rakhadian/sportsday/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

type repositories struct {
	events  event.Repository
	teams   team.Repository
	players player.Repository
	results result.Repository
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	repos, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	competitionSvc := usecase.NewCompetitionService(repos.events, repos.teams, repos.players)
	resultSvc := usecase.NewResultService(repos.events, repos.results)
	standingsSvc := usecase.NewStandingsService(repos.teams, repos.players, repos.results)

	handler := httpapi.NewHandler(competitionSvc, resultSvc, standingsSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, error) {
	if cfg.DBURL == "" {
		logger.Info("DB_URL is empty, using in-memory repositories with seed data")
		return repositories{
			events:  memory.NewEventRepository(memory.SeedEvents()),
			teams:   memory.NewTeamRepository(memory.SeedTeams()),
			players: memory.NewPlayerRepository(memory.SeedPlayers()),
			results: memory.NewResultRepository(),
		}, nil
	}

	db, err := openDB(cfg)
	if err != nil {
		return repositories{}, err
	}

	if cfg.BootstrapSeedEnabled {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := postgres.BootstrapSeed(ctx, db); err != nil {
			return repositories{}, fmt.Errorf("bootstrap seed: %w", err)
		}
	}

	return repositories{
		events:  postgres.NewEventRepository(db),
		teams:   postgres.NewTeamRepository(db),
		players: postgres.NewPlayerRepository(db),
		results: postgres.NewResultRepository(db),
	}, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(semconv.DBSystemPostgreSQL),
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
	)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
