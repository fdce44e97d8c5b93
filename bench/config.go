package bench

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidConfig signals an invalid benchmark configuration.
	ErrInvalidConfig = errors.New("bench: invalid configuration")
	// ErrLookupMiss signals that an inserted key could not be found again.
	ErrLookupMiss = errors.New("bench: lookup miss")
)

// Order is the order in which keys are inserted.
type Order int

const (
	Ascending Order = iota
	Descending
	Random
)

var orderNames = [...]string{"ascending", "descending", "random"}

func (o Order) String() string {
	if o < 0 || int(o) >= len(orderNames) {
		return fmt.Sprintf("Order(%d)", int(o))
	}
	return orderNames[o]
}

// ParseOrder converts a name as returned by Order.String into an Order.
func ParseOrder(s string) (Order, error) {
	for i, name := range orderNames {
		if strings.EqualFold(s, name) {
			return Order(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown key order %q", ErrInvalidConfig, s)
}

const (
	// DefaultDegree is the minimum degree used if none is configured.
	DefaultDegree = 2056
	// DefaultCount is the number of keys used if none is configured.
	DefaultCount = 1_000_000
)

// Config configures a benchmark run.
type Config struct {
	Degree int   // minimum degree of the tree
	Count  int   // number of keys to insert and look up
	Order  Order // insertion order
	Seed   int64 // seed for Random order
	Linear bool  // additionally time SearchLinear
}

// DefaultConfig returns 1,000,000 ascending keys on a tree of degree 2056.
func DefaultConfig() Config {
	return Config{Degree: DefaultDegree, Count: DefaultCount, Order: Ascending}
}

func (cfg Config) normalized() Config {
	if cfg.Degree == 0 {
		cfg.Degree = DefaultDegree
	}
	if cfg.Count == 0 {
		cfg.Count = DefaultCount
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.Count < 0 {
		return fmt.Errorf("%w: key count must not be negative", ErrInvalidConfig)
	}
	if cfg.Order < Ascending || cfg.Order > Random {
		return fmt.Errorf("%w: unknown key order %d", ErrInvalidConfig, cfg.Order)
	}
	return nil
}
