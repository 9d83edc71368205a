package crypto

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/mrz1836/sigil/internal/ctxutil"
	"github.com/mrz1836/sigil/internal/errors"
)

// ReadInput reads r to EOF. The whole input is held in memory, which bounds the
// usable input size to available memory.
func ReadInput(ctx context.Context, r io.Reader) ([]byte, error) {
	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Join(errors.ErrIO, err, "reading input")
	}
	zerolog.Ctx(ctx).Debug().Int("bytes", len(buf)).Msg("input read")
	return buf, nil
}
