package chat

import (
	"encoding/json"
	"fmt"
	"strings"
)

// fragment type assigned to raw strings in the export
const FragmentPlain = "plain"

// fragment types that carry conversation text; everything else
// (bare links, bot commands, phone numbers, ...) is markup noise
var textFragmentTypes = map[string]bool{
	FragmentPlain: true,
	"text_link":   true,
	"bold":        true,
	"italic":      true,
	"hashtag":     true,
	"mention":     true,
	"pre":         true,
}

type Export struct {
	Name     string     `json:"name"`
	Type     string     `json:"type"`
	Id       int64      `json:"id"`
	Messages []*Message `json:"messages"`
}

// Message covers both regular messages and service entries (joins,
// pins, calls); the two are told apart by Type.
type Message struct {
	Id      int64  `json:"id"`
	Type    string `json:"type"`
	Date    string `json:"date"`
	From    string `json:"from"`
	FromId  string `json:"from_id"`
	Text    Text   `json:"text"`
	ReplyTo int64  `json:"reply_to_message_id"`
}

func (m *Message) IsMessage() bool {
	return m.Type == "message"
}

func (m *Message) HasText() bool {
	return m.Text.Plain() != ""
}

type Fragment struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Text is the export's polymorphic text field: either a single JSON
// string or an array mixing raw strings and {type, text} objects.
// Decoding flattens both forms into an ordered fragment list.
type Text []Fragment

func (t *Text) UnmarshalJSON(data []byte) error {
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		if plain == "" {
			*t = nil
			return nil
		}
		*t = Text{{Type: FragmentPlain, Text: plain}}
		return nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(data, &elements); err != nil {
		return fmt.Errorf("text is neither string nor array: %w", err)
	}
	fragments := make(Text, 0, len(elements))
	for _, element := range elements {
		var raw string
		if err := json.Unmarshal(element, &raw); err == nil {
			fragments = append(fragments, Fragment{Type: FragmentPlain, Text: raw})
			continue
		}
		var fragment Fragment
		if err := json.Unmarshal(element, &fragment); err != nil {
			return fmt.Errorf("invalid text fragment %s: %w", element, err)
		}
		fragments = append(fragments, fragment)
	}
	*t = fragments
	return nil
}

// Plain joins all fragments into one string regardless of type.
func (t Text) Plain() string {
	sb := strings.Builder{}
	for _, fragment := range t {
		sb.WriteString(fragment.Text)
	}
	return sb.String()
}

// Visible returns only the fragments whose type carries conversation
// text, in their original order.
func (t Text) Visible() []Fragment {
	visible := make([]Fragment, 0, len(t))
	for _, fragment := range t {
		if textFragmentTypes[fragment.Type] {
			visible = append(visible, fragment)
		}
	}
	return visible
}
