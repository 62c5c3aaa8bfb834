package textprocessor

import (
	"slices"
	"strings"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "plain words",
			text: "hello there world",
			want: []string{"hello", "there", "world"},
		},
		{
			name: "punctuation dropped",
			text: "hello, world!",
			want: []string{"hello", "world"},
		},
		{
			name: "only punctuation",
			text: "... !!! ---",
			want: []string{},
		},
		{
			name: "empty",
			text: "",
			want: []string{},
		},
		{
			name: "decimal number stays whole",
			text: "pi is 3.14",
			want: []string{"pi", "is", "3.14"},
		},
		{
			name: "emoji tokens dropped",
			text: "hi \U0001f44d there",
			want: []string{"hi", "there"},
		},
		{
			name: "persian question",
			text: "سلام دنیا؟",
			want: []string{"سلام", "دنیا"},
		},
		{
			// zero width non joiner binds the parts of one word
			name: "zwnj stays inside token",
			text: "می\u200cروم",
			want: []string{"می\u200cروم"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Tokenize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSentences(t *testing.T) {
	text := "First one. Is this a question? Last one!"
	segments := Sentences(text)
	if len(segments) != 3 {
		t.Fatalf("Sentences() returned %v segments, want 3: %q", len(segments), segments)
	}
	if !strings.Contains(segments[1], "?") {
		t.Errorf("second segment %q should contain the question mark", segments[1])
	}
	if joined := strings.Join(segments, ""); joined != text {
		t.Errorf("segments should cover the input, got %q", joined)
	}
}

func TestSentencesNoTerminator(t *testing.T) {
	segments := Sentences("no terminator here")
	if len(segments) != 1 {
		t.Errorf("Sentences() returned %v segments, want 1", len(segments))
	}
}
