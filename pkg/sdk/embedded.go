package kbase

import (
	"context"
	"fmt"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/kailas-cloud/kbase/internal/db"
	dbRedis "github.com/kailas-cloud/kbase/internal/db/redis"
	"github.com/kailas-cloud/kbase/internal/render"
	docrepo "github.com/kailas-cloud/kbase/internal/repository/document"
	"github.com/kailas-cloud/kbase/internal/tools"
	mcptransport "github.com/kailas-cloud/kbase/internal/transport/mcp"
	documentuc "github.com/kailas-cloud/kbase/internal/usecase/document"
	healthuc "github.com/kailas-cloud/kbase/internal/usecase/health"
	searchuc "github.com/kailas-cloud/kbase/internal/usecase/search"
	"github.com/kailas-cloud/kbase/internal/version"
)

const defaultReadinessTimeout = 10 * time.Second

func createStore(cfg *clientConfig) (db.Store, error) {
	switch cfg.driver {
	case "valkey", "redis":
		s, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.addrs,
			Password: cfg.password,
		})
		if err != nil {
			return nil, fmt.Errorf("kbase: create %s store: %w", cfg.driver, err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("kbase: unknown driver %q", cfg.driver)
	}
}

func loaderFor(ctx context.Context, cfg *clientConfig) (docrepo.Loader, db.Store, error) {
	switch cfg.source {
	case sourceSample:
		return docrepo.SampleLoader{}, nil, nil
	case sourceFile:
		return docrepo.FileLoader{Path: cfg.path}, nil, nil
	case sourceRedis:
		store, err := createStore(cfg)
		if err != nil {
			return nil, nil, err
		}
		if err := store.WaitForReady(ctx, defaultReadinessTimeout); err != nil {
			store.Close()
			return nil, nil, fmt.Errorf("kbase: database not ready: %w", err)
		}
		return docrepo.NewRedisLoader(store, cfg.key), store, nil
	default:
		return nil, nil, fmt.Errorf("kbase: unknown embedded source %q", cfg.source)
	}
}

// startEmbedded wires the server in-process and returns the client end of
// an in-memory transport pair.
func (c *Client) startEmbedded(ctx context.Context, cfg *clientConfig) (mcp.Transport, error) {
	loader, store, err := loaderFor(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if store != nil {
		c.closers = append(c.closers, store.Close)
	}

	repo, err := docrepo.Load(ctx, loader)
	if err != nil {
		return nil, fmt.Errorf("kbase: load documents: %w", err)
	}

	limit := cfg.characterLimit
	if limit == 0 {
		limit = render.DefaultCharacterLimit
	}
	dispatcher, err := tools.New(searchuc.New(repo), documentuc.New(repo), render.New(limit), zap.NewNop())
	if err != nil {
		return nil, fmt.Errorf("kbase: build dispatcher: %w", err)
	}

	var pinger healthuc.DBPinger
	if store != nil {
		pinger = store
	}
	healthSvc := healthuc.New(repo, pinger)
	c.health = func(ctx context.Context) (HealthStatus, error) {
		report := healthSvc.Check(ctx)
		checks := make(map[string]string, len(report.Checks))
		for k, v := range report.Checks {
			checks[k] = string(v)
		}
		return HealthStatus{Status: string(report.Status), Checks: checks}, nil
	}

	srv := mcptransport.NewServer(mcptransport.Config{Name: "kbase-embedded", Version: version.Version}, dispatcher, nil)
	serverT, clientT := mcp.NewInMemoryTransports()
	ss, err := srv.Connect(ctx, serverT, nil)
	if err != nil {
		return nil, fmt.Errorf("kbase: start embedded server: %w", err)
	}
	c.closers = append(c.closers, func() { _ = ss.Close() })
	return clientT, nil
}
