package geo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultGraph() *Graph {
	return NewGraph(DefaultTopology())
}

func TestShortestDistanceSelfIsZero(t *testing.T) {
	g := defaultGraph()
	for _, s := range g.Sites() {
		assert.Equal(t, 0.0, g.ShortestDistance(s, s))
	}
}

func TestShortestDistanceSymmetric(t *testing.T) {
	g := defaultGraph()
	sites := g.Sites()
	for _, a := range sites {
		for _, b := range sites {
			assert.Equal(t, g.ShortestDistance(a, b), g.ShortestDistance(b, a),
				"d(%s,%s) must equal d(%s,%s)", a, b, b, a)
		}
	}
}

func TestShortestDistanceTriangleInequality(t *testing.T) {
	g := defaultGraph()
	sites := g.Sites()
	for _, a := range sites {
		for _, b := range sites {
			for _, c := range sites {
				ab := g.ShortestDistance(a, b)
				bc := g.ShortestDistance(b, c)
				ac := g.ShortestDistance(a, c)
				assert.LessOrEqual(t, ac, ab+bc)
			}
		}
	}
}

// The default deployment has indirect routes shorter than the direct edges:
// A->B->C (15+8=23) beats A->C (25), and A->B->D (15+10=25) beats A->D (35).
func TestShortestDistancePrefersIndirectRoute(t *testing.T) {
	g := defaultGraph()
	assert.Equal(t, 23.0, g.ShortestDistance("Hospital A", "Hospital C"))
	assert.Equal(t, 25.0, g.ShortestDistance("Hospital A", "Hospital D"))
}

func TestShortestDistanceUnknownSite(t *testing.T) {
	g := defaultGraph()
	assert.True(t, IsUnreachable(g.ShortestDistance("Hospital A", "Clinic Z")))
	assert.True(t, IsUnreachable(g.ShortestDistance("Clinic Z", "Hospital A")))
}

func TestShortestDistanceDisconnectedComponent(t *testing.T) {
	g := NewGraph(Topology{Sites: map[string]map[string]float64{
		"A": {"B": 1},
		"B": {"A": 1},
		"C": {"D": 2},
		"D": {"C": 2},
	}})
	assert.True(t, IsUnreachable(g.ShortestDistance("A", "C")))
	assert.Equal(t, 1.0, g.ShortestDistance("A", "B"))
}

// Dijkstra must generalize beyond the four-site deployment.
func TestShortestDistanceLargerGraph(t *testing.T) {
	g := NewGraph(Topology{Sites: map[string]map[string]float64{
		"A": {"B": 2, "E": 100},
		"B": {"A": 2, "C": 2},
		"C": {"B": 2, "D": 2},
		"D": {"C": 2, "E": 2},
		"E": {"D": 2, "A": 100},
	}})
	// Five hops around the ring beat the heavy direct edge.
	assert.Equal(t, 8.0, g.ShortestDistance("A", "E"))
}

func TestLoadTopologyYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "topology.yaml")
	data := []byte(`sites:
  North:
    South: 12
  South:
    North: 12
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	topo, err := LoadTopology(path)
	require.NoError(t, err)

	g := NewGraph(topo)
	assert.True(t, g.HasSite("North"))
	assert.Equal(t, 12.0, g.ShortestDistance("North", "South"))
}

func TestLoadTopologyDefaults(t *testing.T) {
	topo, err := LoadTopology("")
	require.NoError(t, err)
	assert.Len(t, topo.Sites, 4)
}

func TestLoadTopologyEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sites: {}\n"), 0o600))

	_, err := LoadTopology(path)
	assert.Error(t, err)
}
