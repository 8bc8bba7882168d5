package wire

import (
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/u-root/uio/uio"

	"github.com/d21d3q/goduid/internal/duid"
)

// ErrTimestampOverflow is returned when an epoch offset lands outside the
// range time.Time can format.
var ErrTimestampOverflow = errors.New("timestamp out of representable range")

// maxTime is the last instant RFC 3339 can express.
var maxTime = time.Date(9999, time.December, 31, 23, 59, 59, 0, time.UTC)

// EpochTime converts a DUID-LLT time offset to an absolute UTC timestamp.
// The largest uint32 offset lands in 2136, so from the fixed epoch this never
// overflows; AddSeconds carries the range check.
func EpochTime(offset uint32) (time.Time, error) {
	return AddSeconds(duid.Epoch, offset)
}

// AddSeconds returns base+seconds in UTC, refusing results beyond maxTime.
func AddSeconds(base time.Time, seconds uint32) (time.Time, error) {
	base = base.UTC()
	if base.After(maxTime) || int64(seconds) > maxTime.Unix()-base.Unix() {
		return time.Time{}, fmt.Errorf("%w: %s + %ds", ErrTimestampOverflow, base.Format(time.RFC3339), seconds)
	}
	return base.Add(time.Duration(seconds) * time.Second), nil
}

// TrailingLen returns total-header, failing instead of going negative.
func TrailingLen(t duid.Type, total, header int) (int, error) {
	if header > total {
		return 0, &duid.UnderflowError{Type: t, Header: header, Total: total}
	}
	return total - header, nil
}

// NewReader returns a big-endian reader over the bytes after the type field.
func NewReader(raw []byte) *uio.Lexer {
	return uio.NewBigEndianBuffer(raw[duid.DiscriminantLen:])
}

// Finish reports read errors and turns unread bytes into a trailing data
// warning.
func Finish(t duid.Type, buf *uio.Lexer) ([]duid.Warning, error) {
	if err := buf.Error(); err != nil {
		return nil, fmt.Errorf("%s: read fixed fields: %w", t, err)
	}
	if buf.Len() == 0 {
		return nil, nil
	}
	rest := buf.ReadAll()
	return []duid.Warning{{
		Kind:    duid.WarnTrailingData,
		Message: fmt.Sprintf("%d bytes remaining in the input after decoding: 0x%s", len(rest), hex.EncodeToString(rest)),
	}}, nil
}
