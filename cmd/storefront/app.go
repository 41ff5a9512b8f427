package main

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/dmitrymomot/storefront/pkg/apiclient"
	"github.com/dmitrymomot/storefront/pkg/cache"
	"github.com/dmitrymomot/storefront/pkg/cart"
	"github.com/dmitrymomot/storefront/pkg/kv"
	"github.com/dmitrymomot/storefront/pkg/logger"
	"github.com/dmitrymomot/storefront/pkg/notifications"
	"github.com/dmitrymomot/storefront/pkg/session"
	"github.com/dmitrymomot/storefront/pkg/theme"
	"github.com/dmitrymomot/storefront/svc/storefront"
)

// app wires the stores, the API client and the service for one invocation.
type app struct {
	cfg      Config
	log      *slog.Logger
	registry *prometheus.Registry

	storage  kv.Storage
	probe    probe
	api      *apiclient.Client
	carts    *cart.Store
	sessions *session.Store
	themes   *theme.Store
	notes    *notifications.Queue
	svc      *storefront.Service
}

func newApp(ctx context.Context, cfg Config, log *slog.Logger) (*app, error) {
	a := &app{
		cfg:      cfg,
		log:      log,
		registry: prometheus.NewRegistry(),
	}

	storage, check, err := openStorage(ctx, cfg, log, a.registry)
	if err != nil {
		return nil, err
	}
	a.storage, a.probe = storage, check

	clientOpts := []apiclient.Option{
		apiclient.WithTimeout(cfg.APITimeout),
		apiclient.WithMaxRetries(cfg.APIRetries),
		apiclient.WithLogger(log.With(logger.Component("apiclient"))),
	}
	if cfg.APICacheTTL > 0 {
		clientOpts = append(clientOpts, apiclient.WithCache(cache.New[string, []byte](16, cache.WithTTL(cfg.APICacheTTL))))
	}
	a.api, err = apiclient.New(cfg.APIURL, clientOpts...)
	if err != nil {
		return nil, errors.Join(err, a.close())
	}

	a.carts, err = cart.Open(ctx, storage, cart.WithLogger(log.With(logger.Component("cart"))))
	if err != nil {
		return nil, errors.Join(err, a.close())
	}
	a.sessions, err = session.Open(ctx, storage, session.WithLogger(log.With(logger.Component("session"))))
	if err != nil {
		return nil, errors.Join(err, a.close())
	}
	a.themes, err = theme.Open(ctx, storage, theme.WithLogger(log.With(logger.Component("theme"))))
	if err != nil {
		return nil, errors.Join(err, a.close())
	}

	a.notes = notifications.NewQueue(
		notifications.WithLogger(log),
		notifications.WithDeliverer(notifications.NewLogDeliverer(log.With(logger.Component("notifications")))),
	)
	a.svc = storefront.New(a.api, a.carts, a.sessions, a.notes,
		storefront.WithLogger(log.With(logger.Component("storefront"))),
	)
	return a, nil
}

// flush writes the pending notifications to w.
func (a *app) flush(w io.Writer) {
	if a.notes != nil {
		printNotifications(w, a.notes.List())
	}
}

// storageStats sums the storage operation counters by operation and result.
func (a *app) storageStats() (map[string]float64, error) {
	families, err := a.registry.Gather()
	if err != nil {
		return nil, err
	}
	stats := make(map[string]float64)
	for _, mf := range families {
		if mf.GetName() != "storefront_storage_operations_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			var op, result string
			for _, l := range m.GetLabel() {
				switch l.GetName() {
				case "operation":
					op = l.GetValue()
				case "result":
					result = l.GetValue()
				}
			}
			stats[op+"/"+result] += m.GetCounter().GetValue()
		}
	}
	return stats, nil
}

func (a *app) close() error {
	var errs []error
	if a.notes != nil {
		errs = append(errs, a.notes.Close())
	}
	if a.themes != nil {
		errs = append(errs, a.themes.Close())
	}
	if a.storage != nil {
		errs = append(errs, kv.Close(a.storage))
	}
	return errors.Join(errs...)
}
