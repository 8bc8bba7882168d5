package uuid

import (
	"context"
	"fmt"

	googleuuid "github.com/google/uuid"

	"github.com/d21d3q/goduid/internal/driver"
	"github.com/d21d3q/goduid/internal/driver/wire"
	"github.com/d21d3q/goduid/internal/duid"
)

const payloadLen = duid.UUIDLen - duid.DiscriminantLen

func init() {
	driver.Register(duid.TypeUUID, Driver{})
}

// Driver decodes DUID-UUID, which must be exactly 18 bytes.
type Driver struct{}

// Name returns the canonical driver name.
func (Driver) Name() string { return "uuid" }

// Decode implements driver.Driver.
func (Driver) Decode(_ context.Context, raw []byte) (duid.Record, []duid.Warning, error) {
	if len(raw) != duid.UUIDLen {
		return nil, nil, &duid.ExactLengthMismatchError{Type: duid.TypeUUID, Expected: duid.UUIDLen, Actual: len(raw)}
	}
	buf := wire.NewReader(raw)
	id, err := googleuuid.FromBytes(buf.CopyN(payloadLen))
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", duid.TypeUUID, err)
	}
	warnings, err := wire.Finish(duid.TypeUUID, buf)
	if err != nil {
		return nil, nil, err
	}
	return &duid.UUID{UUID: [16]byte(id), Text: id.String()}, warnings, nil
}
