package protocol

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlarmTriggeredFrame(t *testing.T) {
	m, err := NewMessage(EventAlarmTriggered, int64(7))
	require.NoError(t, err)

	b, err := m.Encode()
	require.NoError(t, err)
	assert.Equal(t, `{"event":"alarm_triggered","payload":7}`+"\n", string(b))

	got, err := Decode(bytes.TrimSpace(b))
	require.NoError(t, err)
	id, err := got.AlarmID()
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestAlarmIDRejectsOtherEvents(t *testing.T) {
	m := &Message{Event: "something_else", Payload: []byte("1")}
	_, err := m.AlarmID()
	assert.Error(t, err)
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode([]byte("not json"))
	assert.Error(t, err)
}
