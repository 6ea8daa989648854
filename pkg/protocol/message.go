package protocol

import (
	"encoding/json"
	"fmt"
)

type Event string

const (
	EventAlarmTriggered Event = "alarm_triggered"
)

// Message is the frame pushed to UI clients on the event stream.
type Message struct {
	Event   Event           `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// NewMessage builds a Message with payload marshaled to JSON.
func NewMessage(event Event, payload interface{}) (*Message, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Message{Event: event, Payload: b}, nil
}

func (m *Message) Encode() ([]byte, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

func Decode(b []byte) (*Message, error) {
	var m Message
	err := json.Unmarshal(b, &m)
	return &m, err
}

// AlarmID extracts the alarm id carried by an alarm_triggered message.
func (m *Message) AlarmID() (int64, error) {
	if m.Event != EventAlarmTriggered {
		return 0, fmt.Errorf("protocol: %q does not carry an alarm id", m.Event)
	}
	var id int64
	if err := json.Unmarshal(m.Payload, &id); err != nil {
		return 0, fmt.Errorf("protocol: alarm id: %w", err)
	}
	return id, nil
}
