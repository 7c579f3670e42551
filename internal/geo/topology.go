package geo

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Topology is the on-disk shape of the site graph: site name to its weighted
// adjacency in km. Self-edges of weight 0 are permitted and harmless.
type Topology struct {
	Sites map[string]map[string]float64 `yaml:"sites"`
}

// DefaultTopology returns the built-in four-hospital deployment.
func DefaultTopology() Topology {
	return Topology{Sites: map[string]map[string]float64{
		"Hospital A": {"Hospital B": 15, "Hospital C": 25, "Hospital D": 35},
		"Hospital B": {"Hospital A": 15, "Hospital C": 8, "Hospital D": 10},
		"Hospital C": {"Hospital A": 25, "Hospital B": 8, "Hospital D": 30},
		"Hospital D": {"Hospital A": 35, "Hospital B": 10, "Hospital C": 30},
	}}
}

// LoadTopology reads a YAML topology file. An empty path falls back to the
// default deployment.
func LoadTopology(path string) (Topology, error) {
	if path == "" {
		return DefaultTopology(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Topology{}, fmt.Errorf("read topology: %w", err)
	}
	var topo Topology
	if err := yaml.Unmarshal(data, &topo); err != nil {
		return Topology{}, fmt.Errorf("parse topology: %w", err)
	}
	if len(topo.Sites) == 0 {
		return Topology{}, fmt.Errorf("topology %s defines no sites", path)
	}
	return topo, nil
}
