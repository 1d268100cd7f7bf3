package wire_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tesslabs/tess/internal/wire"
)

type header struct {
	N int
	T int
}

func TestWriteReadEnvelopeRoundTrip(t *testing.T) {
	elements := [][]byte{
		[]byte("gamma-bytes"),
		[]byte("u-bytes"),
		{},
		[]byte("w-bytes"),
	}

	var buf bytes.Buffer
	require.NoError(t, wire.WriteEnvelope(&buf, header{N: 5, T: 2}, elements))

	var got header
	gotElements, err := wire.ReadEnvelope(&buf, &got)
	require.NoError(t, err)
	require.Equal(t, header{N: 5, T: 2}, got)
	require.Equal(t, elements, gotElements)
}

func TestReadEnvelopeRejectsUnknownVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, wire.WriteEnvelope(&buf, header{N: 1, T: 1}, nil))
	b := buf.Bytes()
	b[0] = 0xff

	var got header
	_, err := wire.ReadEnvelope(bytes.NewReader(b), &got)
	require.Error(t, err)
}
