package r1cs

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Curve points cross the backend boundary as raw coordinates and cross the
// text boundary as 0x-prefixed hex strings.

// G1Affine is a G1 point as two 32-byte coordinates.
type G1Affine struct {
	X string
	Y string
}

// G2Affine is a G2 point as four 32-byte coordinates in
// ((x0, x1), (y0, y1)) order.
type G2Affine struct {
	X [2]string
	Y [2]string
}

func encodeHex(data []byte) string {
	return fmt.Sprintf("0x%s", hex.EncodeToString(data))
}

func decodeHex(value string) ([]byte, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(value, "0x"))
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "decoding coordinate %q", value)
	}
	return raw, nil
}

// ReadG1 reads a 64-byte G1 point.
func ReadG1(r io.Reader) (G1Affine, error) {
	var buffer [64]byte
	if _, err := io.ReadFull(r, buffer[:]); err != nil {
		return G1Affine{}, pkgerrors.Wrap(err, "reading G1 point")
	}
	return G1Affine{
		X: encodeHex(buffer[0:32]),
		Y: encodeHex(buffer[32:64]),
	}, nil
}

// ReadG2 reads a 128-byte G2 point.
func ReadG2(r io.Reader) (G2Affine, error) {
	var buffer [128]byte
	if _, err := io.ReadFull(r, buffer[:]); err != nil {
		return G2Affine{}, pkgerrors.Wrap(err, "reading G2 point")
	}
	return G2Affine{
		X: [2]string{encodeHex(buffer[0:32]), encodeHex(buffer[32:64])},
		Y: [2]string{encodeHex(buffer[64:96]), encodeHex(buffer[96:128])},
	}, nil
}

// WriteG1 writes a G1 point as 64 bytes.
func WriteG1(w io.Writer, g1 G1Affine) error {
	for _, coordinate := range []string{g1.X, g1.Y} {
		raw, err := decodeHex(coordinate)
		if err != nil {
			return err
		}
		if _, err := w.Write(raw); err != nil {
			return pkgerrors.Wrap(err, "writing G1 point")
		}
	}
	return nil
}

// WriteG2 writes a G2 point as 128 bytes.
func WriteG2(w io.Writer, g2 G2Affine) error {
	for _, coordinate := range []string{g2.X[0], g2.X[1], g2.Y[0], g2.Y[1]} {
		raw, err := decodeHex(coordinate)
		if err != nil {
			return err
		}
		if _, err := w.Write(raw); err != nil {
			return pkgerrors.Wrap(err, "writing G2 point")
		}
	}
	return nil
}
