package stats

import (
	"sort"

	"github.com/schollz/progressbar/v3"
	log "github.com/sirupsen/logrus"

	"github.com/tgstats/tgstats/internal/chat"
	"github.com/tgstats/tgstats/internal/textprocessor"
)

type TokenCount struct {
	Token string
	Count int
}

// WordFrequencies counts normalized tokens over every text carrying
// fragment of every message, stopwords removed. Markup-only fragment
// types are skipped during flattening.
func WordFrequencies(messages []*chat.Message, stopwords textprocessor.Stopwords) map[string]int {
	bar := progressbar.Default(int64(len(messages)), "processing messages")
	frequencies := make(map[string]int)
	for _, msg := range messages {
		bar.Add(1)
		if !msg.HasText() {
			continue
		}
		for _, fragment := range msg.Text.Visible() {
			for _, token := range cleanTokens(fragment.Text, stopwords) {
				frequencies[token]++
			}
		}
	}
	bar.Finish()
	log.Infof("Counted %v distinct tokens", len(frequencies))
	return frequencies
}

// emoji and bidi controls are stripped before normalization
func cleanTokens(text string, stopwords textprocessor.Stopwords) []string {
	text = textprocessor.StripEmoji(text)
	text = textprocessor.NormalizeText(text)
	return stopwords.Remove(textprocessor.Tokenize(text))
}

// TopTokens returns the n most frequent tokens in descending order,
// ties broken alphabetically for reproducible output.
func TopTokens(frequencies map[string]int, n int) []TokenCount {
	ranking := make([]TokenCount, 0, len(frequencies))
	for token, count := range frequencies {
		ranking = append(ranking, TokenCount{Token: token, Count: count})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Count != ranking[j].Count {
			return ranking[i].Count > ranking[j].Count
		}
		return ranking[i].Token < ranking[j].Token
	})
	if n >= 0 && len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking
}

// LimitTokens cuts a frequency table down to its n most frequent
// entries.
func LimitTokens(frequencies map[string]int, n int) map[string]int {
	top := TopTokens(frequencies, n)
	limited := make(map[string]int, len(top))
	for _, tc := range top {
		limited[tc.Token] = tc.Count
	}
	return limited
}
