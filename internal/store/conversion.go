package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrNotFound is returned by Get when no conversion has the key.
var ErrNotFound = errors.New("store: conversion not found")

// Conversion is one cached parse-and-serialize result.
type Conversion struct {
	Key         string
	ScaleFactor float64
	MaxDepth    int
	Document    []byte // canonical serialized JSON
	NodeCount   int
	IRVersion   string
	Seq         int64 // assigned by Put
}

// Put stores c unless a conversion with the same key already exists.
// It reports whether a new row was written. Seq is assigned from a logical
// counter; the caller's value is ignored.
func (s *Store) Put(ctx context.Context, c Conversion) (bool, error) {
	if c.Key == "" {
		return false, errors.New("put conversion: empty key")
	}

	// WHERE true resolves the INSERT ... SELECT / upsert parsing ambiguity.
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO conversions
		(key, scale_factor, max_depth, document, node_count, ir_version, seq)
		SELECT ?, ?, ?, ?, ?, ?, COALESCE(MAX(seq), 0) + 1 FROM conversions WHERE true
		ON CONFLICT(key) DO NOTHING
	`,
		c.Key,
		c.ScaleFactor,
		c.MaxDepth,
		string(c.Document),
		c.NodeCount,
		c.IRVersion,
	)
	if err != nil {
		return false, fmt.Errorf("put conversion: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("put conversion: %w", err)
	}
	return n > 0, nil
}

// Get returns the conversion stored under key, or ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) (Conversion, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT key, scale_factor, max_depth, document, node_count, ir_version, seq
		FROM conversions
		WHERE key = ?
	`, key)

	c, err := scanConversion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Conversion{}, fmt.Errorf("get conversion %s: %w", key, ErrNotFound)
	}
	if err != nil {
		return Conversion{}, fmt.Errorf("get conversion %s: %w", key, err)
	}
	return c, nil
}

// List returns every cached conversion in insertion order.
// Returns an empty slice (not nil) when the cache is empty.
func (s *Store) List(ctx context.Context) ([]Conversion, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT key, scale_factor, max_depth, document, node_count, ir_version, seq
		FROM conversions
		ORDER BY seq ASC, key COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query conversions: %w", err)
	}
	defer rows.Close()

	conversions := []Conversion{}
	for rows.Next() {
		c, err := scanConversion(rows)
		if err != nil {
			return nil, err
		}
		conversions = append(conversions, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate conversions: %w", err)
	}
	return conversions, nil
}

// Count returns the number of cached conversions.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM conversions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count conversions: %w", err)
	}
	return n, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanConversion(row scanner) (Conversion, error) {
	var (
		c        Conversion
		document string
	)
	if err := row.Scan(&c.Key, &c.ScaleFactor, &c.MaxDepth, &document, &c.NodeCount, &c.IRVersion, &c.Seq); err != nil {
		return Conversion{}, err
	}
	c.Document = []byte(document)
	return c, nil
}
