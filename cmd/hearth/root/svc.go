package root

import (
	"context"
	"math/rand"
	"time"

	"hearth/internal/catalog"
	"hearth/internal/config"
	"hearth/internal/engine"
	"hearth/internal/logging"
	"hearth/internal/storage"
)

// openService wires config, logging, catalog and storage into an engine
// service. The returned cleanup closes the database and flushes logs.
func openService(ctx context.Context) (*engine.Service, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return nil, nil, err
	}
	cat, err := catalog.Load(cfg.CatalogDir)
	if err != nil {
		return nil, nil, err
	}
	path, err := cfg.ResolveDBPath(storage.DefaultDBPath)
	if err != nil {
		return nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, err
	}

	seed := cfg.Butler.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	svc := engine.NewService(db,
		engine.WithCatalog(cat),
		engine.WithLogger(log),
		engine.WithRand(rand.New(rand.NewSource(seed))),
	)
	cleanup := func() {
		_ = db.Close()
		_ = log.Sync()
	}
	return svc, cleanup, nil
}
