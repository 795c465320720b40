package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"gridpermit/internal/config"
	"gridpermit/internal/db"
	"gridpermit/internal/engine"
	"gridpermit/internal/events"
	"gridpermit/internal/migrate"
	"gridpermit/internal/repo"
	"gridpermit/internal/seed"
)

// App holds the wired store and engine for one process.
type App struct {
	Config *config.Config
	Log    *zap.Logger
	Engine engine.Engine
	// DB is nil for the memory driver.
	DB *sql.DB
}

// Open builds the repository, event recorder and engine described by cfg.
// Demo projects are seeded when cfg.Seed.Demo is set.
func Open(ctx context.Context, cfg *config.Config, log *zap.Logger) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = zap.NewNop()
	}
	a := &App{Config: cfg, Log: log}

	var (
		r   repo.Repository
		rec events.Recorder = events.Logger{Log: log}
	)
	switch cfg.Store.Driver {
	case config.DriverSQLite:
		conn, err := db.Open(db.Config{Workspace: cfg.Store.Workspace})
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		version, err := migrate.Migrate(ctx, conn)
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("migrate store: %w", err)
		}
		log.Debug("store ready", zap.String("path", db.Path(cfg.Store.Workspace)), zap.Int("schema_version", version))
		a.DB = conn
		r = repo.SQLite{DB: conn}
		rec = events.Multi{events.Writer{DB: conn}, rec}
	default:
		r = repo.NewMemory()
	}
	a.Engine = engine.New(r, rec, log.Named("engine"))

	if cfg.Seed.Demo {
		n, err := SeedDemo(ctx, a.Engine)
		if err != nil {
			a.Close()
			return nil, err
		}
		if n > 0 {
			log.Info("seeded demo projects", zap.Int("count", n))
		}
	}
	return a, nil
}

// Close releases the database, if any.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

// SeedDemo imports demo projects that are not stored yet and reports how
// many were added. Stored projects are never overwritten.
func SeedDemo(ctx context.Context, e engine.Engine) (int, error) {
	projects, err := seed.Demo()
	if err != nil {
		return 0, err
	}
	added := 0
	for _, p := range projects {
		_, err := e.Repo.Get(ctx, p.ID)
		if err == nil {
			continue
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return added, fmt.Errorf("check demo project %s: %w", p.ID, err)
		}
		if err := e.ImportProject(ctx, p); err != nil {
			return added, fmt.Errorf("seed demo project %s: %w", p.ID, err)
		}
		added++
	}
	return added, nil
}
