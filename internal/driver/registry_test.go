package driver_test

import (
	"context"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/d21d3q/goduid/internal/driver"
	_ "github.com/d21d3q/goduid/internal/driver/en"
	_ "github.com/d21d3q/goduid/internal/driver/ll"
	"github.com/d21d3q/goduid/internal/driver/llt"
	_ "github.com/d21d3q/goduid/internal/driver/uuid"
	"github.com/d21d3q/goduid/internal/duid"
	"github.com/d21d3q/goduid/internal/options"
)

func TestRegistered(t *testing.T) {
	require.Equal(t, []duid.Type{duid.TypeLLT, duid.TypeEN, duid.TypeLL, duid.TypeUUID}, driver.Registered())

	drv, err := driver.Lookup(duid.TypeUUID)
	require.NoError(t, err)
	require.Equal(t, "uuid", drv.Name())

	_, err = driver.Lookup(duid.Type(7))
	require.Error(t, err)

	for _, typ := range driver.Registered() {
		require.True(t, typ.Known(), "type %d", typ)
	}
}

func TestDecodeUnlistedTypesAreUnknown(t *testing.T) {
	for _, code := range []byte{0x00, 0x05, 0xff} {
		decoded, err := driver.Decode(context.Background(), []byte{0x00, code, 0x01})
		require.NoError(t, err)
		unknown, ok := decoded.Record.(*duid.Unknown)
		require.True(t, ok, "type %d", code)
		require.Equal(t, []byte{0x01}, unknown.Data)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	require.Panics(t, func() { driver.Register(duid.TypeLLT, llt.Driver{}) })
}

func TestDecodeDispatch(t *testing.T) {
	tests := []struct {
		hex  string
		want duid.Type
	}{
		{"0001000100000000001122334455", duid.TypeLLT},
		{"0002000000090102030405", duid.TypeEN},
		{"00030001aabbccddeeff", duid.TypeLL},
		{"0004123e4567e89b12d3a456426614174000", duid.TypeUUID},
	}
	for _, tc := range tests {
		raw, err := options.ParseHex(tc.hex)
		require.NoError(t, err)
		decoded, err := driver.Decode(context.Background(), raw)
		require.NoError(t, err, tc.hex)
		require.Equal(t, tc.want, decoded.Record.Type())
		require.Empty(t, decoded.Warnings)
	}
}

func TestDecodeUnknownType(t *testing.T) {
	raw := []byte{0x27, 0x0f, 0xde, 0xad, 0xbe, 0xef}
	decoded, err := driver.Decode(context.Background(), raw)
	require.NoError(t, err)
	unknown, ok := decoded.Record.(*duid.Unknown)
	require.True(t, ok)
	require.Equal(t, uint16(9999), unknown.Code)
	require.Equal(t, "deadbeef", unknown.DataHex())

	raw[2] = 0x00
	require.Equal(t, byte(0xde), unknown.Data[0])
}

func TestDecodeUnknownTypeOnlyDiscriminant(t *testing.T) {
	decoded, err := driver.Decode(context.Background(), []byte{0x00, 0x00})
	require.NoError(t, err)
	unknown := decoded.Record.(*duid.Unknown)
	require.Empty(t, unknown.Data)
	require.Equal(t, "", unknown.DataHex())
}

func TestDecodeTooShort(t *testing.T) {
	for _, raw := range [][]byte{nil, {}, {0x00}} {
		_, err := driver.Decode(context.Background(), raw)
		require.True(t, errors.Is(err, duid.ErrTooShort))
	}
}

func TestDecodeLengthViolations(t *testing.T) {
	for _, raw := range [][]byte{
		{0x00, 0x01, 0x00},
		{0x00, 0x02, 0x00, 0x00, 0x00},
		{0x00, 0x03},
		{0x00, 0x04, 0x00},
	} {
		_, err := driver.Decode(context.Background(), raw)
		require.True(t, errors.Is(err, duid.ErrLength), "%x", raw)
	}
}

func TestDecodeLogsDispatch(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	ctx := options.WithLogger(context.Background(), logger)

	_, err := driver.Decode(ctx, []byte{0x00, 0x03, 0x00, 0x01})
	require.NoError(t, err)
	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, "ll", entry.Data["driver"])
	require.Equal(t, uint16(3), entry.Data["duid_type"])
}

func TestDecodeIdempotent(t *testing.T) {
	raw := []byte{0x00, 0x01, 0x00, 0x01, 0x2c, 0x3d, 0x4e, 0x5f, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}
	first, err := driver.Decode(context.Background(), raw)
	require.NoError(t, err)
	second, err := driver.Decode(context.Background(), raw)
	require.NoError(t, err)
	require.Equal(t, first, second)
}
