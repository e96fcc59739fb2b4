// Package embedding provides the optional text-embedding collaborator used
// by the match scorer's no-skills fallback. Absence or failure of the
// embedder must never surface to callers; the scorer degrades to a fixed
// score instead.
package embedding

import (
	"context"
	"errors"
	"math"
	"sync"
)

// Embedder turns text into a dense vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// ErrUnavailable is returned by the placeholder embedder.
var ErrUnavailable = errors.New("embedding client not configured")

// Unavailable is the placeholder used when no embedding backend is
// configured; every call fails so callers exercise their fallback path.
type Unavailable struct{}

func (Unavailable) Embed(ctx context.Context, text string) ([]float32, error) {
	_ = ctx
	_ = text
	return nil, ErrUnavailable
}

// Lazy defers construction of an Embedder until first use and guarantees the
// build function runs at most once per process, even under concurrent calls.
type Lazy struct {
	build func() (Embedder, error)

	once sync.Once
	e    Embedder
	err  error
}

// NewLazy wraps a build function in a once-only lazy initializer.
func NewLazy(build func() (Embedder, error)) *Lazy {
	return &Lazy{build: build}
}

func (l *Lazy) Embed(ctx context.Context, text string) ([]float32, error) {
	l.once.Do(func() {
		l.e, l.err = l.build()
		if l.err != nil {
			l.e = Unavailable{}
		}
	})
	if l.err != nil {
		return nil, l.err
	}
	return l.e.Embed(ctx, text)
}

// Cosine returns the cosine similarity of two vectors, in [-1, 1]. Vectors
// of mismatched length or zero magnitude yield 0.
func Cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
