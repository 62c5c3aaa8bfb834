package stats

import (
	"strings"

	"github.com/tgstats/tgstats/internal/chat"
	"github.com/tgstats/tgstats/internal/textprocessor"
)

// latin and arabic question marks
const questionMarks = "?؟"

// IsQuestion reports whether any sentence of the text contains a
// question mark.
func IsQuestion(text string) bool {
	for _, sentence := range textprocessor.Sentences(text) {
		if strings.ContainsAny(sentence, questionMarks) {
			return true
		}
	}
	return false
}

// QuestionIds collects the ids of all messages whose text asks a
// question. Messages without text are skipped.
func QuestionIds(messages []*chat.Message) map[int64]bool {
	questions := make(map[int64]bool)
	for _, msg := range messages {
		if !msg.HasText() {
			continue
		}
		if IsQuestion(msg.Text.Plain()) {
			questions[msg.Id] = true
		}
	}
	return questions
}
