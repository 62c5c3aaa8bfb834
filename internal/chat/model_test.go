package chat

import (
	"encoding/json"
	"testing"
)

func TestTextUnmarshalString(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{
			name: "plain string",
			data: `"hello there"`,
			want: "hello there",
		},
		{
			name: "empty string",
			data: `""`,
			want: "",
		},
		{
			name: "array of strings and fragments",
			data: `["hello ", {"type": "bold", "text": "bold"}, " bye"]`,
			want: "hello bold bye",
		},
		{
			name: "empty array",
			data: `[]`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var text Text
			if err := json.Unmarshal([]byte(tt.data), &text); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if got := text.Plain(); got != tt.want {
				t.Errorf("Plain() = \"%v\", want \"%v\"", got, tt.want)
			}
		})
	}
}

func TestTextUnmarshalInvalid(t *testing.T) {
	var text Text
	if err := json.Unmarshal([]byte(`42`), &text); err == nil {
		t.Errorf("Unmarshal() expected error for numeric text")
	}
}

func TestTextVisible(t *testing.T) {
	data := `[
		"plain ",
		{"type": "bold", "text": "bold"},
		{"type": "link", "text": "https://example.com"},
		{"type": "text_link", "text": "shown"},
		{"type": "bot_command", "text": "/start"},
		{"type": "hashtag", "text": "#topic"}
	]`
	var text Text
	if err := json.Unmarshal([]byte(data), &text); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	want := []string{"plain ", "bold", "shown", "#topic"}
	visible := text.Visible()
	if len(visible) != len(want) {
		t.Fatalf("Visible() returned %v fragments, want %v", len(visible), len(want))
	}
	for i, fragment := range visible {
		if fragment.Text != want[i] {
			t.Errorf("Visible()[%v] = \"%v\", want \"%v\"", i, fragment.Text, want[i])
		}
	}
}

func TestMessageHasText(t *testing.T) {
	tests := []struct {
		name string
		data string
		want bool
	}{
		{
			name: "string text",
			data: `{"id": 1, "type": "message", "text": "hi"}`,
			want: true,
		},
		{
			name: "empty text",
			data: `{"id": 2, "type": "message", "text": ""}`,
			want: false,
		},
		{
			name: "empty array text",
			data: `{"id": 3, "type": "message", "text": []}`,
			want: false,
		},
		{
			name: "fragment text",
			data: `{"id": 4, "type": "message", "text": [{"type": "italic", "text": "hey"}]}`,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var msg Message
			if err := json.Unmarshal([]byte(tt.data), &msg); err != nil {
				t.Fatalf("Unmarshal() error = %v", err)
			}
			if got := msg.HasText(); got != tt.want {
				t.Errorf("HasText() = %v, want %v", got, tt.want)
			}
		})
	}
}
