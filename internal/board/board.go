// Package board wires the storage slot, seed defaults and catalog services
// from Settings. The server and campctl both start here.
package board

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"kodevidecamp/internal/catalog"
	"kodevidecamp/internal/config"
	"kodevidecamp/internal/metrics"
	"kodevidecamp/internal/models"
	"kodevidecamp/internal/seed"
	"kodevidecamp/internal/store"
)

type Board struct {
	Slot     store.Slot
	Defaults *seed.Defaults
	FAQs     *catalog.FAQService
	Notices  *catalog.NoticeService
}

// Open connects the configured backend. pub may be nil.
func Open(ctx context.Context, s config.Settings, log *zap.Logger, pub catalog.Publisher) (*Board, error) {
	slot, err := store.Open(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", s.StoreBackend, err)
	}

	b, err := New(slot, s, log, pub)
	if err != nil {
		_ = slot.Close()
		return nil, err
	}
	return b, nil
}

// New builds the services over an already open slot.
func New(slot store.Slot, s config.Settings, log *zap.Logger, pub catalog.Publisher) (*Board, error) {
	if log == nil {
		log = zap.NewNop()
	}

	defaults := seed.Builtin()
	if s.SeedFile != "" {
		d, err := seed.FromFile(s.SeedFile)
		if err != nil {
			return nil, err
		}
		defaults = d
		log.Info("using seed file", zap.String("path", s.SeedFile))
	}

	docOpts := []store.Option{store.WithLogger(log), store.WithFallbackHook(metrics.StoreFallback)}
	svcOpts := []catalog.Option{catalog.WithLogger(log)}
	if pub != nil {
		svcOpts = append(svcOpts, catalog.WithPublisher(pub))
	}

	return &Board{
		Slot:     slot,
		Defaults: defaults,
		FAQs: catalog.NewFAQService(
			store.NewDocument[models.FAQ](slot, s.Key(s.FAQKey), defaults.FAQs, docOpts...),
			svcOpts...,
		),
		Notices: catalog.NewNoticeService(
			store.NewDocument[models.Notice](slot, s.Key(s.NoticeKey), defaults.Notices, docOpts...),
			svcOpts...,
		),
	}, nil
}

// Seed overwrites both documents with the defaults.
func (b *Board) Seed(ctx context.Context) error {
	if err := b.FAQs.Replace(ctx, b.Defaults.FAQs()); err != nil {
		return fmt.Errorf("seed faqs: %w", err)
	}
	if err := b.Notices.Replace(ctx, b.Defaults.Notices()); err != nil {
		return fmt.Errorf("seed notices: %w", err)
	}
	return nil
}

func (b *Board) Close() error {
	return b.Slot.Close()
}
