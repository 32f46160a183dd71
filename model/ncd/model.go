// Package ncd scores text similarity with normalized compression
// distance: two texts that share structure compress together almost as
// small as apart.
package ncd

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/trknhr/zipknn/compressor"
	"github.com/trknhr/zipknn/model"
)

// separator joins the two texts before the combined compression. The
// metric is sensitive to it, so it is fixed rather than configurable.
const separator = " "

type Model struct {
	c     compressor.Compressor
	cache *lru.Cache[string, int]
}

type Option func(*Model)

// WithCache memoizes per-text compressed lengths in an LRU of the given
// size, keyed by the exact string value. Joined texts are always
// compressed fresh, so scores are identical with or without it. Sizes
// below 1 disable the cache.
func WithCache(size int) Option {
	return func(m *Model) {
		if size <= 0 {
			return
		}
		cache, _ := lru.New[string, int](size)
		m.cache = cache
	}
}

func New(c compressor.Compressor, opts ...Option) *Model {
	m := &Model{c: c}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Score implements model.Similarity as
// 1 - (C(ab) - min(C(a), C(b))) / max(C(a), C(b)), where C is the
// compressed length of the UTF-8 bytes. Identical texts score near 1.0;
// unrelated texts near 0. Framing overhead can push scores slightly
// outside [0, 1] on short inputs; they are not clamped.
func (m *Model) Score(a, b string) (float64, error) {
	ca, err := m.compressedLen(a)
	if err != nil {
		return 0, err
	}
	cb, err := m.compressedLen(b)
	if err != nil {
		return 0, err
	}

	joined, err := m.c.Compress([]byte(a + separator + b))
	if err != nil {
		return 0, fmt.Errorf("compress joined text: %w", err)
	}

	minLen, maxLen := ca, cb
	if cb < ca {
		minLen, maxLen = cb, ca
	}
	if maxLen == 0 {
		return 0, model.ErrDegenerateInput
	}
	return 1 - float64(len(joined)-minLen)/float64(maxLen), nil
}

func (m *Model) compressedLen(text string) (int, error) {
	if m.cache != nil {
		if n, ok := m.cache.Get(text); ok {
			return n, nil
		}
	}
	out, err := m.c.Compress([]byte(text))
	if err != nil {
		return 0, fmt.Errorf("compress text: %w", err)
	}
	if m.cache != nil {
		m.cache.Add(text, len(out))
	}
	return len(out), nil
}
