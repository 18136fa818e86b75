// Package jsonfile provides flat-file implementations of the order store port.
// Each store owns one JSON file holding a full snapshot of one order
// collection; every save rewrites the file atomically from the caller's point
// of view (single-process, last write wins).
//
// Key Features:
//   - Human-readable, diff-friendly on-disk format (indented JSON)
//   - A missing file reads as an empty collection, so first run needs no setup
//   - Non-ASCII names survive round-trips unescaped
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"counter/internal/core/domain/model/order"
	"counter/internal/pkg/errs"
)

const fileMode = 0o644

// Store implements ports.OrderStore over a single JSON file.
//
// The file holds a flat array of order records. Content is written with
// 4-space indentation and without HTML escaping so non-ASCII item names and
// customers survive a round trip byte for byte. A missing file means "no
// data yet"; malformed content is an error and is never repaired silently.
type Store struct {
	path   string
	status order.Status
	logger *slog.Logger
}

// NewStore creates a store bound to the given file path. Orders loaded from
// the file are restored with the given status (the pending file restores
// Pending orders, the fulfilled file Fulfilled ones).
func NewStore(path string, status order.Status, logger *slog.Logger) (*Store, error) {
	if path == "" {
		return nil, errs.NewValueIsRequiredError("store path")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{
		path:   path,
		status: status,
		logger: logger,
	}, nil
}

// Load reads the complete order sequence from the file.
// A file that does not exist yet yields an empty sequence, not an error.
// Malformed content is propagated as an error: treating corrupt data as
// empty would lose it on the next save.
func (s *Store) Load(_ context.Context) ([]*order.Order, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug("order file absent, starting empty", "path", s.path)
		return []*order.Order{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	var dtos []OrderDTO
	if err = json.Unmarshal(data, &dtos); err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.path, err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, dtoErr := toDomain(dto, s.status)
		if dtoErr != nil {
			return nil, fmt.Errorf("restore order %q from %s: %w", dto.OrderID, s.path, dtoErr)
		}
		orders = append(orders, o)
	}

	s.logger.Debug("orders loaded", "path", s.path, "count", len(orders))
	return orders, nil
}

// Save serializes the full sequence to the file, replacing prior content.
func (s *Store) Save(_ context.Context, orders []*order.Order) error {
	dtos := make([]OrderDTO, 0, len(orders))
	for _, o := range orders {
		if err := o.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, fromDomain(o))
	}

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "    ")
	if err := encoder.Encode(dtos); err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}

	if err := os.WriteFile(s.path, buf.Bytes(), fileMode); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}

	s.logger.Debug("orders saved", "path", s.path, "count", len(orders))
	return nil
}
