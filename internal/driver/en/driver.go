package en

import (
	"context"

	"github.com/d21d3q/goduid/internal/driver"
	"github.com/d21d3q/goduid/internal/driver/wire"
	"github.com/d21d3q/goduid/internal/duid"
)

func init() {
	driver.Register(duid.TypeEN, Driver{})
}

// Driver decodes DUID-EN: an enterprise number and a vendor identifier.
type Driver struct{}

// Name returns the canonical driver name.
func (Driver) Name() string { return "en" }

// Decode implements driver.Driver.
func (Driver) Decode(_ context.Context, raw []byte) (duid.Record, []duid.Warning, error) {
	if len(raw) < duid.ENHeaderLen {
		return nil, nil, &duid.TooShortForTypeError{Type: duid.TypeEN, Minimum: duid.ENHeaderLen, Actual: len(raw)}
	}
	idLen, err := wire.TrailingLen(duid.TypeEN, len(raw), duid.ENHeaderLen)
	if err != nil {
		return nil, nil, err
	}
	buf := wire.NewReader(raw)
	rec := &duid.EN{
		EnterpriseNumber: buf.Read32(),
		Identifier:       buf.CopyN(idLen),
	}
	warnings, err := wire.Finish(duid.TypeEN, buf)
	if err != nil {
		return nil, nil, err
	}
	return rec, warnings, nil
}
