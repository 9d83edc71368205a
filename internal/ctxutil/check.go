// Package ctxutil provides context helpers shared by the signing engine and CLI.
package ctxutil

import (
	"context"
	"io"
)

// Canceled returns the context error once ctx is done, nil otherwise.
// Operations call it at entry so an interrupted command stops before touching input.
func Canceled(ctx context.Context) error {
	return ctx.Err()
}

// Reader wraps r so every Read first checks ctx. Streaming consumers use it to
// stop reading a long stdin pipe after an interrupt.
func Reader(ctx context.Context, r io.Reader) io.Reader {
	return &ctxReader{ctx: ctx, r: r}
}

type ctxReader struct {
	ctx context.Context //nolint:containedctx // reader is scoped to one operation
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
