// Package blob implements the opaque-string codec used for the versioned
// tournament blob: gzip for size, base64 so the result survives any
// string-typed key-value store.
package blob

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"fmt"
	"io"
)

// Encode compresses and encodes data into an opaque string.
func Encode(data []byte) (string, error) {
	var buf bytes.Buffer
	gw := gzip.NewWriter(&buf)
	if _, err := gw.Write(data); err != nil {
		return "", fmt.Errorf("blob: compress: %w", err)
	}
	if err := gw.Close(); err != nil {
		return "", fmt.Errorf("blob: close compressor: %w", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode reverses Encode. Any corruption in the stored string surfaces as
// an error; callers treat that as a missing blob.
func Decode(s string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("blob: decode base64: %w", err)
	}
	gr, err := gzip.NewReader(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("blob: open compressed blob: %w", err)
	}
	defer gr.Close()

	data, err := io.ReadAll(gr)
	if err != nil {
		return nil, fmt.Errorf("blob: read compressed blob: %w", err)
	}
	return data, nil
}
