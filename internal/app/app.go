package app

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/tgstats/tgstats/internal/chat"
	cfg "github.com/tgstats/tgstats/internal/config"
	"github.com/tgstats/tgstats/internal/graph"
	"github.com/tgstats/tgstats/internal/render"
	"github.com/tgstats/tgstats/internal/stats"
	"github.com/tgstats/tgstats/internal/textprocessor"
)

// token limit for the frequency based word cloud mode
const topTokenCount = 100

// ChatStats wires one loaded chat export to the aggregation and
// rendering steps. Everything is recomputed per run; nothing is
// persisted between invocations.
type ChatStats struct {
	Config *cfg.Config

	export    *chat.Export
	stopwords textprocessor.Stopwords
}

func (cs *ChatStats) Setup(chatPath string, outDir string) error {
	export, err := chat.Load(chatPath)
	if err != nil {
		return err
	}
	cs.export = export
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	log.Infof("Setup ChatStats for chat %q", export.Name)
	return nil
}

// TopUsers ranks the users who replied to questions most often.
func (cs *ChatStats) TopUsers(topN int) []stats.UserCount {
	return stats.TopRepliers(cs.export.Messages, topN)
}

// GenerateTopUsersChart draws the ranking; an empty ranking only logs
// a warning instead of failing the run.
func (cs *ChatStats) GenerateTopUsersChart(ranking []stats.UserCount, outDir string) error {
	if len(ranking) == 0 {
		log.Warnf("No question repliers found, skipping chart")
		return nil
	}
	_, err := render.TopUsersChart(ranking, outDir)
	return err
}

// GenerateWordCloud aggregates token frequencies and rasterizes them.
// With fromFrequencies only the most frequent tokens are drawn.
func (cs *ChatStats) GenerateWordCloud(outDir string, maskPath string, fromFrequencies bool) error {
	frequencies, err := cs.wordFrequencies(fromFrequencies)
	if err != nil {
		return err
	}
	if len(frequencies) == 0 {
		log.Warnf("No tokens left after filtering, skipping word cloud")
		return nil
	}
	_, err = render.WordCloud(frequencies, cs.Config, maskPath, outDir)
	return err
}

// wordFrequencies builds the token table for the cloud. Frequency mode
// cuts to the top tokens first; both modes stay within the configured
// word limit.
func (cs *ChatStats) wordFrequencies(fromFrequencies bool) (map[string]int, error) {
	if err := cs.loadStopwords(); err != nil {
		return nil, err
	}
	frequencies := stats.WordFrequencies(cs.export.Messages, cs.stopwords)
	if fromFrequencies {
		frequencies = stats.LimitTokens(frequencies, topTokenCount)
	}
	return stats.LimitTokens(frequencies, cs.Config.WordCloud.MaxWords), nil
}

// GenerateReplyGraph builds the reply interaction graph and renders it
// to html.
func (cs *ChatStats) GenerateReplyGraph(outDir string) error {
	g := graph.Build(cs.export.Messages)
	if len(g.Users()) == 0 {
		log.Warnf("No users found in export, skipping reply graph")
		return nil
	}
	_, err := render.ReplyGraph(g, cs.Config.Graph, outDir)
	return err
}

// stopwords are only needed by the word cloud path, load lazily
func (cs *ChatStats) loadStopwords() error {
	if cs.stopwords != nil {
		return nil
	}
	stopwords, err := textprocessor.LoadStopwords(cs.Config.StopwordPath())
	if err != nil {
		return err
	}
	cs.stopwords = stopwords
	return nil
}
