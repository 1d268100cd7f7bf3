// Package wire implements the versioned persisted-representation framing
// spec §6 requires ("All lengths framed with a version byte (0x01 =
// 'tess/v1')"). A persisted value (only ciphertext.Ciphertext uses this
// package; SRS and public keys have no serialization) is a version byte, a
// small cbor-encoded header (counts/sizes — teacher's own fxamacker/cbor/v2
// dependency), and a sequence of length-prefixed element encodings produced
// by the backend's Bytes() methods. Group elements use gnark-crypto's
// Marshal() form, which is uncompressed; no point compression is applied.
// This mirrors the
// io.WriterTo/io.ReaderFrom idiom gnark itself uses for its own
// serialization (see famouswizard-gnark's mpcsetup/marshal.go).
package wire

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// Version is the single framing version this module emits and accepts.
const Version byte = 0x01

// WriteEnvelope writes [version byte][cbor(header) length-prefixed][each of
// elements length-prefixed] to w.
func WriteEnvelope(w io.Writer, header any, elements [][]byte) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.Write([]byte{Version}); err != nil {
		return err
	}
	hdrBytes, err := cbor.Marshal(header)
	if err != nil {
		return fmt.Errorf("wire: encode header: %w", err)
	}
	if err := writeLenPrefixed(bw, hdrBytes); err != nil {
		return err
	}
	var countBuf [4]byte
	binary.BigEndian.PutUint32(countBuf[:], uint32(len(elements)))
	if _, err := bw.Write(countBuf[:]); err != nil {
		return err
	}
	for _, e := range elements {
		if err := writeLenPrefixed(bw, e); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadEnvelope reads a value written by WriteEnvelope, decoding the header
// into headerOut (a pointer) and returning the raw element byte strings.
func ReadEnvelope(r io.Reader, headerOut any) ([][]byte, error) {
	br := bufio.NewReader(r)
	var versionBuf [1]byte
	if _, err := io.ReadFull(br, versionBuf[:]); err != nil {
		return nil, err
	}
	if versionBuf[0] != Version {
		return nil, fmt.Errorf("wire: unsupported version byte 0x%02x", versionBuf[0])
	}
	hdrBytes, err := readLenPrefixed(br)
	if err != nil {
		return nil, fmt.Errorf("wire: read header: %w", err)
	}
	if err := cbor.Unmarshal(hdrBytes, headerOut); err != nil {
		return nil, fmt.Errorf("wire: decode header: %w", err)
	}
	var countBuf [4]byte
	if _, err := io.ReadFull(br, countBuf[:]); err != nil {
		return nil, err
	}
	count := binary.BigEndian.Uint32(countBuf[:])
	out := make([][]byte, count)
	for i := range out {
		out[i], err = readLenPrefixed(br)
		if err != nil {
			return nil, fmt.Errorf("wire: read element %d: %w", i, err)
		}
	}
	return out, nil
}

func writeLenPrefixed(w io.Writer, b []byte) error {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(b)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := w.Write(b)
	return err
}

func readLenPrefixed(r io.Reader) ([]byte, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint32(lenBuf[:])
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}
