package dto

import (
	"encoding/json"
	"strings"
)

// Text is a JSON string field that is stored with surrounding whitespace
// removed. It tells apart a key that was sent as null from one that was
// never sent.
type Text struct {
	value *string
	null  bool
}

func NewText(s string) Text {
	s = strings.TrimSpace(s)
	return Text{value: &s}
}

func (t *Text) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		t.value = nil
		t.null = true
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	*t = NewText(s)
	return nil
}

// Ptr is nil when the key was missing or null.
func (t Text) Ptr() *string {
	return t.value
}

func (t Text) String() string {
	if t.value == nil {
		return ""
	}
	return *t.value
}

func (t Text) IsNull() bool {
	return t.null
}
