package ll

import (
	"context"

	"github.com/d21d3q/goduid/internal/driver"
	"github.com/d21d3q/goduid/internal/driver/wire"
	"github.com/d21d3q/goduid/internal/duid"
)

func init() {
	driver.Register(duid.TypeLL, Driver{})
}

// Driver decodes DUID-LL: hardware type followed by a link-layer address.
type Driver struct{}

// Name returns the canonical driver name.
func (Driver) Name() string { return "ll" }

// Decode implements driver.Driver.
func (Driver) Decode(_ context.Context, raw []byte) (duid.Record, []duid.Warning, error) {
	if len(raw) < duid.LLHeaderLen {
		return nil, nil, &duid.TooShortForTypeError{Type: duid.TypeLL, Minimum: duid.LLHeaderLen, Actual: len(raw)}
	}
	addrLen, err := wire.TrailingLen(duid.TypeLL, len(raw), duid.LLHeaderLen)
	if err != nil {
		return nil, nil, err
	}
	buf := wire.NewReader(raw)
	hw := duid.HardwareType(buf.Read16())
	rec := &duid.LL{
		HardwareType:  hw,
		LinkLayerAddr: duid.NewLinkLayerAddr(hw, buf.CopyN(addrLen)),
	}
	warnings, err := wire.Finish(duid.TypeLL, buf)
	if err != nil {
		return nil, nil, err
	}
	return rec, warnings, nil
}
