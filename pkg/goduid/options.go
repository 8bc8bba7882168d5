package goduid

import (
	"context"

	"github.com/sirupsen/logrus"

	internalopts "github.com/d21d3q/goduid/internal/options"
)

// DecodeOptions configures decoding.
type DecodeOptions struct {
	// Logger receives debug output from the decoders. Defaults to the logrus
	// standard logger.
	Logger logrus.FieldLogger
}

func (opts DecodeOptions) toInternal(ctx context.Context) context.Context {
	return internalopts.WithLogger(ctx, opts.Logger)
}
