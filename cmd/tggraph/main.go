package main

import (
	"flag"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/tgstats/tgstats/internal/app"
	cfg "github.com/tgstats/tgstats/internal/config"
)

var (
	config    *cfg.Config    = &cfg.Config{}
	chatStats *app.ChatStats = &app.ChatStats{}
)

func main() {
	log.Info("Starting tggraph...")
	chatPath := flag.String("chat", "", "Path to the exported chat json file")
	outDir := flag.String("out", ".", "Directory for the generated graph html")
	configPath := flag.String("config", "config/config.toml", "Path to the config file")
	flag.Parse()

	if *chatPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	config.Load(*configPath)

	chatStats.Config = config
	if err := chatStats.Setup(*chatPath, *outDir); err != nil {
		log.Fatalf("Failed to load chat export: %v", err)
	}
	if err := chatStats.GenerateReplyGraph(*outDir); err != nil {
		log.Fatalf("Failed to render reply graph: %v", err)
	}
	fmt.Println("Done!")
}
