package embedding

import (
	"context"
	"fmt"
	"sync"
)

// Embedder converts text into a fixed-length vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Gateway lazily constructs the delegate embedder on first use and serves
// every subsequent call from that one instance. The delegate may be
// expensive to initialize, so initialization happens at most once per
// process: concurrent first calls block on the same construction instead of
// racing to initialize twice. A failed construction is not retried; the
// error is returned to every caller.
type Gateway struct {
	factory func() (Embedder, error)

	once     sync.Once
	delegate Embedder
	initErr  error
}

// NewGateway creates a gateway around a delegate factory. The factory is not
// invoked until the first Embed call.
func NewGateway(factory func() (Embedder, error)) *Gateway {
	return &Gateway{factory: factory}
}

// Embed embeds the given text using the lazily-initialized delegate.
func (g *Gateway) Embed(ctx context.Context, text string) ([]float32, error) {
	if text == "" {
		return nil, fmt.Errorf("empty input text")
	}

	g.once.Do(func() {
		g.delegate, g.initErr = g.factory()
	})
	if g.initErr != nil {
		return nil, fmt.Errorf("failed to initialize embedder: %w", g.initErr)
	}

	return g.delegate.Embed(ctx, text)
}
