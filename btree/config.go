package btree

import "fmt"

const (
	// DefaultDegree is a reasonable minimum degree for general use.
	DefaultDegree = 32
	// MinDegree is the smallest minimum degree for which splitting is well-defined.
	MinDegree = 2
	// DefaultBinarySearchThreshold is the node size above which lookups probe
	// a node with binary search before falling back to a linear scan.
	DefaultBinarySearchThreshold = 512
)

// Config configures a B-tree.
type Config struct {
	// Degree is the minimum degree t. Nodes hold at most 2t-1 entries.
	Degree int
	// BinarySearchThreshold is the entry count a node has to exceed for
	// Search to probe it with binary search. Zero selects
	// DefaultBinarySearchThreshold.
	BinarySearchThreshold int
}

// DefaultConfig returns a configuration with DefaultDegree.
func DefaultConfig() Config {
	return Config{Degree: DefaultDegree}
}

func (cfg Config) normalized() Config {
	if cfg.BinarySearchThreshold == 0 {
		cfg.BinarySearchThreshold = DefaultBinarySearchThreshold
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.Degree < MinDegree {
		return fmt.Errorf("%w: degree must be >= %d, is %d", ErrInvalidConfig, MinDegree, cfg.Degree)
	}
	if cfg.BinarySearchThreshold < 0 {
		return fmt.Errorf("%w: binary search threshold must not be negative", ErrInvalidConfig)
	}
	return nil
}

// maxEntries is the capacity of a node, 2t-1.
func (cfg Config) maxEntries() int {
	return 2*cfg.Degree - 1
}

// minEntries is the lower occupancy bound for non-root nodes, t-1.
func (cfg Config) minEntries() int {
	return cfg.Degree - 1
}
