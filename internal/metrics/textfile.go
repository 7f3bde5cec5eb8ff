package metrics

import (
	"fmt"

	prom "github.com/prometheus/client_golang/prometheus"
)

// WriteTextfile writes every metric gathered from g to filename in the
// Prometheus text format. The file is replaced atomically.
func WriteTextfile(filename string, g prom.Gatherer) error {
	if err := prom.WriteToTextfile(filename, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
