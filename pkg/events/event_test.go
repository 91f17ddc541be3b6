package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecode(t *testing.T) {
	evt := New(TypeNoteCreated, map[string]interface{}{"note_id": "n-1", "tenant": "Acme"})

	raw, err := Encode(evt)
	require.NoError(t, err)

	got, err := Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, TypeNoteCreated, got.EventType())
	assert.Equal(t, "n-1", got.Payload()["note_id"])
	assert.True(t, evt.Timestamp().Equal(got.Timestamp()))
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode([]byte("not json"))
	assert.Error(t, err)
}
