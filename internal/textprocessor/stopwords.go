package textprocessor

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Stopwords is a normalized word blacklist for frequency analysis.
type Stopwords map[string]bool

// LoadStopwords reads one word per line, skipping blank lines and #
// comments. Entries run through NormalizeText so lookups match message
// tokens no matter how the list file was typed.
func LoadStopwords(path string) (Stopwords, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening stopword list: %w", err)
	}
	defer file.Close()

	stopwords := make(Stopwords)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if word := NormalizeText(line); word != "" {
			stopwords[word] = true
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stopword list %v: %w", path, err)
	}
	log.Infof("Loaded %v stopwords from %v", len(stopwords), path)
	return stopwords, nil
}

func (s Stopwords) Contains(word string) bool {
	return s[word]
}

// Remove filters stopwords out of a token list. Tokens are expected to
// be normalized already; running the filter twice changes nothing.
func (s Stopwords) Remove(tokens []string) []string {
	if len(s) == 0 {
		return tokens
	}
	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !s[token] {
			kept = append(kept, token)
		}
	}
	return kept
}
