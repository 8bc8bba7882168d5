package llt

import (
	"context"

	"github.com/d21d3q/goduid/internal/driver"
	"github.com/d21d3q/goduid/internal/driver/wire"
	"github.com/d21d3q/goduid/internal/duid"
)

func init() {
	driver.Register(duid.TypeLLT, Driver{})
}

// Driver decodes DUID-LLT: hardware type, time offset, link-layer address.
type Driver struct{}

// Name returns the canonical driver name.
func (Driver) Name() string { return "llt" }

// Decode implements driver.Driver. An offset that cannot be turned into a
// timestamp is kept raw and reported as a warning.
func (Driver) Decode(_ context.Context, raw []byte) (duid.Record, []duid.Warning, error) {
	if len(raw) < duid.LLTHeaderLen {
		return nil, nil, &duid.TooShortForTypeError{Type: duid.TypeLLT, Minimum: duid.LLTHeaderLen, Actual: len(raw)}
	}
	addrLen, err := wire.TrailingLen(duid.TypeLLT, len(raw), duid.LLTHeaderLen)
	if err != nil {
		return nil, nil, err
	}
	buf := wire.NewReader(raw)
	rec := &duid.LLT{
		HardwareType: duid.HardwareType(buf.Read16()),
		TimeOffset:   buf.Read32(),
	}

	var warnings []duid.Warning
	if ts, err := wire.EpochTime(rec.TimeOffset); err != nil {
		warnings = append(warnings, duid.Warning{Kind: duid.WarnTimestampOverflow, Message: err.Error()})
	} else {
		rec.Timestamp = ts
	}
	rec.LinkLayerAddr = duid.NewLinkLayerAddr(rec.HardwareType, buf.CopyN(addrLen))

	rest, err := wire.Finish(duid.TypeLLT, buf)
	if err != nil {
		return nil, nil, err
	}
	return rec, append(warnings, rest...), nil
}
