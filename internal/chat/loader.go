package chat

import (
	"encoding/json"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
)

// Load reads a whole chat export into memory. The downstream
// aggregations are single pass, so there is no streaming decoder.
func Load(path string) (*Export, error) {
	log.Infof("Loading chat export from %v", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading chat export: %w", err)
	}
	export := &Export{}
	if err := json.Unmarshal(data, export); err != nil {
		return nil, fmt.Errorf("decoding chat export %v: %w", path, err)
	}
	log.Infof("Loaded %v messages from chat %q", len(export.Messages), export.Name)
	return export, nil
}
