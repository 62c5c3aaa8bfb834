package render

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/psykhi/wordclouds"
	log "github.com/sirupsen/logrus"

	cfg "github.com/tgstats/tgstats/internal/config"
)

// WordCloud rasterizes a token frequency table to a png. An optional
// mask image restricts where words may be placed. Returns the path of
// the written file.
func WordCloud(
	frequencies map[string]int,
	config *cfg.Config,
	maskPath string,
	outDir string,
) (string, error) {
	if len(frequencies) == 0 {
		return "", fmt.Errorf("no tokens to draw")
	}
	wc := config.WordCloud

	// the cloud library panics on a missing font file
	fontPath := config.FontPath()
	if _, err := os.Stat(fontPath); err != nil {
		return "", fmt.Errorf("word cloud font not usable: %w", err)
	}

	options := []wordclouds.Option{
		wordclouds.FontFile(fontPath),
		wordclouds.FontMinSize(wc.MinFontSize),
		wordclouds.FontMaxSize(wc.MaxFontSize),
		wordclouds.Width(wc.Width),
		wordclouds.Height(wc.Height),
		wordclouds.Colors(wc.PaletteColors()),
		wordclouds.BackgroundColor(wc.BackgroundColor()),
	}
	if maskPath != "" {
		if _, err := os.Stat(maskPath); err != nil {
			return "", fmt.Errorf("mask image not usable: %w", err)
		}
		log.Infof("Applying mask %v", maskPath)
		boxes := wordclouds.Mask(maskPath, wc.Width, wc.Height, wc.MaskExclusionColor())
		options = append(options, wordclouds.MaskBoxes(boxes))
	}

	log.Infof("Drawing word cloud from %v distinct tokens...", len(frequencies))
	cloud := wordclouds.NewWordcloud(frequencies, options...)
	img := cloud.Draw()

	path := filepath.Join(outDir, "wordcloud.png")
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating word cloud output: %w", err)
	}
	defer file.Close()
	if err := png.Encode(file, img); err != nil {
		return "", fmt.Errorf("encoding word cloud: %w", err)
	}
	log.Infof("Saved word cloud to %v", path)
	return path, nil
}
