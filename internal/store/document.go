package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Fallback reasons passed to the fallback hook.
const (
	FallbackMissing   = "missing"
	FallbackMalformed = "malformed"
)

type docOptions struct {
	log        *zap.Logger
	onFallback func(key, reason string)
}

type Option func(*docOptions)

func WithLogger(log *zap.Logger) Option {
	return func(o *docOptions) { o.log = log }
}

// WithFallbackHook is called every time Load substitutes the defaults.
func WithFallbackHook(fn func(key, reason string)) Option {
	return func(o *docOptions) { o.onFallback = fn }
}

// Identified is implemented by records that carry a positive id. A stored
// record of such a type whose id is zero or negative (a JSON null or an
// object without "id") makes the whole body malformed.
type Identified interface {
	RecordID() int64
}

// Document is the repository for one collection: an ordered sequence of
// records serialized as a JSON array under a single key.
type Document[T any] struct {
	slot     Slot
	key      string
	defaults func() []T
	opts     docOptions
}

func NewDocument[T any](slot Slot, key string, defaults func() []T, opts ...Option) *Document[T] {
	o := docOptions{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return &Document[T]{slot: slot, key: key, defaults: defaults, opts: o}
}

func (d *Document[T]) Key() string { return d.key }

// Load returns the stored sequence. When nothing is stored, or the stored
// body does not decode into a JSON array of records, the default sequence is
// returned instead and no error is reported. Only backend failures are
// returned as errors.
func (d *Document[T]) Load(ctx context.Context) ([]T, error) {
	raw, err := d.slot.Get(ctx, d.key)
	if errors.Is(err, ErrNotFound) {
		d.fallback(FallbackMissing, nil)
		return d.defaults(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", d.key, err)
	}

	var records []T
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		d.fallback(FallbackMalformed, err)
		return d.defaults(), nil
	}
	if records == nil {
		// "null" or an empty body that happened to decode
		d.fallback(FallbackMalformed, nil)
		return d.defaults(), nil
	}
	for i, rec := range records {
		if r, ok := any(rec).(Identified); ok && r.RecordID() <= 0 {
			d.fallback(FallbackMalformed, fmt.Errorf("record %d has no id", i))
			return d.defaults(), nil
		}
	}
	return records, nil
}

// Save overwrites the stored sequence with records.
func (d *Document[T]) Save(ctx context.Context, records []T) error {
	if records == nil {
		records = []T{}
	}
	body, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", d.key, err)
	}
	if err := d.slot.Set(ctx, d.key, string(body)); err != nil {
		return fmt.Errorf("save %s: %w", d.key, err)
	}
	return nil
}

func (d *Document[T]) fallback(reason string, cause error) {
	if reason == FallbackMalformed {
		d.opts.log.Warn("stored document is malformed, using defaults",
			zap.String("key", d.key), zap.Error(cause))
	} else {
		d.opts.log.Debug("no stored document, using defaults", zap.String("key", d.key))
	}
	if d.opts.onFallback != nil {
		d.opts.onFallback(d.key, reason)
	}
}
