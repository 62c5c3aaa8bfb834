package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/tgstats/tgstats/internal/app"
	cfg "github.com/tgstats/tgstats/internal/config"
	"github.com/tgstats/tgstats/internal/stats"
)

var (
	config    *cfg.Config    = &cfg.Config{}
	chatStats *app.ChatStats = &app.ChatStats{}
)

func main() {
	log.Info("Starting tgstats...")
	chatPath := flag.String("chat", "", "Path to the exported chat json file")
	outDir := flag.String("out", ".", "Directory for the generated files")
	topN := flag.Int("top", 0, "Number of top repliers to report, 0 uses the configured default")
	fromFrequencies := flag.Bool(
		"from-frequencies", false,
		"Draw the word cloud from the top token frequencies instead of the full text",
	)
	maskPath := flag.String("mask", "", "Optional mask image bounding the word cloud")
	configPath := flag.String("config", "config/config.toml", "Path to the config file")
	skipWordCloud := flag.Bool("skip-wordcloud", false, "Skip word cloud generation")
	skipChart := flag.Bool("skip-chart", false, "Skip the top users bar chart")
	flag.Parse()

	if *chatPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	config.Load(*configPath)
	if *topN <= 0 {
		*topN = config.Stats.TopN
	}

	chatStats.Config = config
	if err := chatStats.Setup(*chatPath, *outDir); err != nil {
		log.Fatalf("Failed to load chat export: %v", err)
	}

	ranking := chatStats.TopUsers(*topN)
	printRanking(ranking)
	if !*skipChart {
		if err := chatStats.GenerateTopUsersChart(ranking, *outDir); err != nil {
			log.Fatalf("Failed to render top users chart: %v", err)
		}
	}
	if !*skipWordCloud {
		if err := chatStats.GenerateWordCloud(*outDir, *maskPath, *fromFrequencies); err != nil {
			log.Fatalf("Failed to render word cloud: %v", err)
		}
	}
	fmt.Println("Done!")
}

func printRanking(ranking []stats.UserCount) {
	if len(ranking) == 0 {
		fmt.Println("No replies to questions found")
		return
	}
	fmt.Println("Top question repliers:")
	for i, user := range ranking {
		fmt.Printf("%2d. %s: %d\n", i+1, user.Name, user.Count)
	}
}
