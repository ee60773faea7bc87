package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

const dateLayout = "2006-01-02"

// Timestamp is a UTC instant. On input it accepts RFC 3339 or a bare
// YYYY-MM-DD date, read as midnight UTC. It always marshals as RFC 3339.
type Timestamp struct {
	time.Time
}

// At wraps t as a Timestamp in UTC.
func At(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

// ParseTimestamp reads an RFC 3339 timestamp or a YYYY-MM-DD date.
func ParseTimestamp(s string) (Timestamp, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return At(t), nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return At(t), nil
	}
	return Timestamp{}, fmt.Errorf("invalid timestamp %q: want RFC 3339 or YYYY-MM-DD", s)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.UTC().Format(time.RFC3339Nano))
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*t = Timestamp{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	return t.set(s)
}

func (t Timestamp) MarshalYAML() (interface{}, error) {
	return t.Time.UTC().Format(time.RFC3339Nano), nil
}

func (t *Timestamp) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: timestamp must be a scalar", node.Line)
	}
	if node.Tag == "!!null" {
		*t = Timestamp{}
		return nil
	}
	return t.set(node.Value)
}

func (t *Timestamp) set(s string) error {
	if s == "" {
		*t = Timestamp{}
		return nil
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
