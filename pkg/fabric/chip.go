package fabric

import "github.com/google/uuid"

// Chip is the finished fabric handed to archive writers.
type Chip struct {
	Name    string    // chip family name, e.g. "test"
	Device  string    // device name, e.g. "EX1"
	ID      uuid.UUID // stable identity derived from the generation parameters
	Library *Library
	Grid    *Grid
	Nodes   []Node
}

// NodeCount returns the number of nodes.
func (c *Chip) NodeCount() int { return len(c.Nodes) }
