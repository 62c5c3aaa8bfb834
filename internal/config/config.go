package config

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	log "github.com/sirupsen/logrus"
)

type StatsConfig struct {
	TopN         int    `toml:"top_n"`
	StopwordFile string `toml:"stopword_file"`
}

type WordCloudConfig struct {
	Width         int      `toml:"width"`
	Height        int      `toml:"height"`
	MinFontSize   int      `toml:"min_font_size"`
	MaxFontSize   int      `toml:"max_font_size"`
	MaxWords      int      `toml:"max_words"`
	FontFile      string   `toml:"font_file"`
	Background    string   `toml:"background"`
	Palette       []string `toml:"palette"`
	MaskExclusion string   `toml:"mask_exclusion"`

	background    color.RGBA
	palette       []color.Color
	maskExclusion color.RGBA
}

type GraphConfig struct {
	Width      string  `toml:"width"`
	Height     string  `toml:"height"`
	Repulsion  float32 `toml:"repulsion"`
	Gravity    float32 `toml:"gravity"`
	EdgeLength float32 `toml:"edge_length"`
}

type Config struct {
	Stats     *StatsConfig     `toml:"stats"`
	WordCloud *WordCloudConfig `toml:"wordcloud"`
	Graph     *GraphConfig     `toml:"graph"`

	DataDir string
}

// Load fills the config with defaults, overlays the toml file if one
// exists and applies environment overrides. Invalid values are fatal.
func (c *Config) Load(path string) {
	c.Stats = &StatsConfig{
		TopN:         10,
		StopwordFile: "stopwords.txt",
	}
	c.WordCloud = &WordCloudConfig{
		Width:         1200,
		Height:        1200,
		MinFontSize:   10,
		MaxFontSize:   250,
		MaxWords:      200,
		FontFile:      "NotoNaskhArabic-Regular.ttf",
		Background:    "#ffffff",
		Palette:       []string{"#1d3557", "#457b9d", "#e63946"},
		MaskExclusion: "#ffffff",
	}
	c.Graph = &GraphConfig{
		Width:      "100%",
		Height:     "900px",
		Repulsion:  8000,
		Gravity:    0.2,
		EdgeLength: 500,
	}
	c.DataDir = "data"

	// overlay config.toml, only keys present in the file are applied
	file, err := os.ReadFile(path)
	if err != nil {
		log.Warnf("No config file at %v, using defaults: %v", path, err)
	} else if err := toml.Unmarshal(file, c); err != nil {
		log.Fatalf("Error decoding TOML: %s", err)
	}

	// load .env
	if err := godotenv.Load(); err != nil {
		log.Warnf("[Expected outside a checkout] Error loading .env file: %v", err)
	}
	if dir := os.Getenv("TGSTATS_DATA_DIR"); dir != "" {
		c.DataDir = dir
	}

	c.validate()
	log.Infof("Loaded config: %+v", c)
}

func (c *Config) validate() {
	if c.Stats.TopN < 0 {
		log.Fatalf("Top user count cannot be negative: %v", c.Stats.TopN)
	}
	wc := c.WordCloud
	if wc.Width <= 0 || wc.Height <= 0 {
		log.Fatalf("Word cloud size %vx%v invalid", wc.Width, wc.Height)
	}
	if wc.MinFontSize <= 0 || wc.MaxFontSize < wc.MinFontSize {
		log.Fatalf(
			"Word cloud font sizes %v..%v invalid",
			wc.MinFontSize, wc.MaxFontSize,
		)
	}
	if wc.MaxWords <= 0 {
		log.Fatalf("Word cloud word limit must be positive: %v", wc.MaxWords)
	}
	if len(wc.Palette) == 0 {
		log.Fatalf("Word cloud palette cannot be empty")
	}
	wc.background = mustHexColor("background", wc.Background)
	wc.maskExclusion = mustHexColor("mask_exclusion", wc.MaskExclusion)
	wc.palette = make([]color.Color, len(wc.Palette))
	for i, hex := range wc.Palette {
		wc.palette[i] = mustHexColor("palette", hex)
	}
	if c.Graph.Repulsion <= 0 || c.Graph.EdgeLength <= 0 || c.Graph.Gravity < 0 {
		log.Fatalf("Graph force options invalid: %+v", c.Graph)
	}
}

func mustHexColor(name string, value string) color.RGBA {
	parsed, err := parseHexColor(value)
	if err != nil {
		log.Fatalf("Invalid %v color %q", name, value)
	}
	return parsed
}

func parseHexColor(s string) (color.RGBA, error) {
	// Sscanf stops after the third octet and would accept trailing junk
	if len(s) != 7 {
		return color.RGBA{}, fmt.Errorf("expected #rrggbb, got %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("expected #rrggbb: %w", err)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

func (w *WordCloudConfig) BackgroundColor() color.Color {
	return w.background
}

func (w *WordCloudConfig) PaletteColors() []color.Color {
	return w.palette
}

// MaskExclusionColor is the mask pixel color that stays open for word
// placement.
func (w *WordCloudConfig) MaskExclusionColor() color.RGBA {
	return w.maskExclusion
}

func (c *Config) StopwordPath() string {
	return c.resolve(c.Stats.StopwordFile)
}

func (c *Config) FontPath() string {
	return c.resolve(c.WordCloud.FontFile)
}

// paths in the config are relative to the data directory
func (c *Config) resolve(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}
