package options

import (
	"context"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/d21d3q/goduid/internal/duid"
)

type loggerKey struct{}

// WithLogger stores the logger used by decoders inside the context.
func WithLogger(ctx context.Context, logger logrus.FieldLogger) context.Context {
	if logger == nil {
		return ctx
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// Logger retrieves the decode logger from context, falling back to the
// logrus standard logger.
func Logger(ctx context.Context) logrus.FieldLogger {
	if v := ctx.Value(loggerKey{}); v != nil {
		if logger, ok := v.(logrus.FieldLogger); ok {
			return logger
		}
	}
	return logrus.StandardLogger()
}

// ParseHex strips colon separators and decodes the remaining hex digits.
// The result always holds at least the two bytes of the DUID type field.
func ParseHex(input string) ([]byte, error) {
	clean := strings.ReplaceAll(input, ":", "")
	if len(clean)%2 != 0 {
		return nil, fmt.Errorf("%w: %q has an odd number of digits (%d)", duid.ErrMalformedHex, input, len(clean))
	}
	dst := make([]byte, len(clean)/2)
	if _, err := hex.Decode(dst, []byte(clean)); err != nil {
		return nil, fmt.Errorf("%w: %q: %v", duid.ErrMalformedHex, input, err)
	}
	if len(dst) < duid.DiscriminantLen {
		return nil, fmt.Errorf("%w: %d bytes, must be at least %d bytes for the type field", duid.ErrTooShort, len(dst), duid.DiscriminantLen)
	}
	return dst, nil
}
