// Package jsonx wraps Sonic for the service's JSON hot path: every voice
// command response is encoded here, so encode buffers are pooled.
package jsonx

import (
	"io"

	"github.com/bytedance/sonic"
	"github.com/valyala/bytebufferpool"
)

// Marshal returns the JSON encoding of v.
func Marshal(v any) ([]byte, error) {
	return sonic.Marshal(v)
}

// Unmarshal parses data into v.
func Unmarshal(data []byte, v any) error {
	return sonic.Unmarshal(data, v)
}

// MarshalToString is like Marshal without the []byte-to-string copy.
func MarshalToString(v any) (string, error) {
	return sonic.MarshalString(v)
}

// Valid reports whether data is valid JSON.
func Valid(data []byte) bool {
	return sonic.Valid(data)
}

// Write encodes v and writes it to w followed by a newline, reusing pooled
// buffers between calls.
func Write(w io.Writer, v any) error {
	data, err := sonic.Marshal(v)
	if err != nil {
		return err
	}
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	buf.Write(data)
	buf.WriteByte('\n')
	_, err = w.Write(buf.B)
	return err
}
