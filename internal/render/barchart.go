package render

import (
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/tgstats/tgstats/internal/stats"
)

// TopUsersChart draws the replier ranking as a bar chart png. Returns
// the path of the written file.
func TopUsersChart(ranking []stats.UserCount, outDir string) (string, error) {
	if len(ranking) == 0 {
		return "", fmt.Errorf("no users to chart")
	}
	bars := make([]chart.Value, 0, len(ranking))
	maxCount := 0
	for _, user := range ranking {
		bars = append(bars, chart.Value{Label: user.Name, Value: float64(user.Count)})
		if user.Count > maxCount {
			maxCount = user.Count
		}
	}

	barChart := chart.BarChart{
		Title:    "Top question repliers",
		Height:   512,
		BarWidth: 60,
		Background: chart.Style{
			Padding: chart.Box{Top: 40},
		},
		// the derived range is empty when all counts are equal
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: float64(maxCount)},
		},
		Bars: bars,
	}

	path := filepath.Join(outDir, "top_users.png")
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating chart output: %w", err)
	}
	defer file.Close()
	if err := barChart.Render(chart.PNG, file); err != nil {
		return "", fmt.Errorf("rendering top users chart: %w", err)
	}
	log.Infof("Saved top users chart to %v", path)
	return path, nil
}
