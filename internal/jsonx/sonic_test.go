package jsonx

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalUnmarshal(t *testing.T) {
	type payload struct {
		Intent     string  `json:"intent"`
		Confidence float64 `json:"confidence"`
	}

	data, err := Marshal(payload{Intent: "NAV_EVENTS", Confidence: 1})
	require.NoError(t, err)
	assert.True(t, Valid(data))

	var back payload
	require.NoError(t, Unmarshal(data, &back))
	assert.Equal(t, "NAV_EVENTS", back.Intent)
	assert.Equal(t, 1.0, back.Confidence)
}

func TestMarshalToString(t *testing.T) {
	s, err := MarshalToString(map[string]string{"status": "healthy"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"healthy"}`, s)
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, map[string]int{"n": 3}))
	assert.Equal(t, "{\"n\":3}\n", buf.String())

	assert.Error(t, Write(&buf, func() {}))
}

func TestValid(t *testing.T) {
	assert.True(t, Valid([]byte(`{"ok":true}`)))
	assert.False(t, Valid([]byte(`{broken`)))
}
