package bench

import (
	"fmt"
	"math/rand"
	"time"

	gbtree "github.com/google/btree"
	"github.com/npillmayer/btreemap/btree"
)

// Result holds the timings of a benchmark run.
type Result struct {
	Config       Config
	Insert       time.Duration // bulk insertion
	Search       time.Duration // bulk lookup with Search
	SearchLinear time.Duration // bulk lookup with SearchLinear, if configured
	Total        time.Duration
	Height       int
	Len          int
}

func (r Result) String() string {
	s := fmt.Sprintf("insert %v, search %v", r.Insert, r.Search)
	if r.Config.Linear {
		s += fmt.Sprintf(", linear search %v", r.SearchLinear)
	}
	return s + fmt.Sprintf(", total %v (len=%d, height=%d)", r.Total, r.Len, r.Height)
}

// Keys returns the keys 0…Count-1 in the configured insertion order.
func (cfg Config) Keys() []int {
	cfg = cfg.normalized()
	keys := make([]int, cfg.Count)
	for i := range keys {
		switch cfg.Order {
		case Descending:
			keys[i] = cfg.Count - 1 - i
		default:
			keys[i] = i
		}
	}
	if cfg.Order == Random {
		r := rand.New(rand.NewSource(cfg.Seed))
		r.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	}
	return keys
}

// Run inserts the configured keys into a new tree, then searches for every
// key. Each key is stored with itself as payload; a lookup returning a
// different payload or none at all fails the run with ErrLookupMiss.
func Run(cfg Config) (Result, error) {
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}
	cfg = cfg.normalized()
	tree, err := btree.New[int, int](btree.Config{Degree: cfg.Degree})
	if err != nil {
		return Result{}, err
	}
	keys := cfg.Keys()
	res := Result{Config: cfg}
	tracer().Infof("bench: %d %s keys, degree %d", cfg.Count, cfg.Order, cfg.Degree)

	start := time.Now()
	for _, k := range keys {
		tree.Insert(k, k)
	}
	res.Insert = time.Since(start)

	t := time.Now()
	for _, k := range keys {
		if e, ok := tree.Search(k); !ok || e.Value != k {
			return res, fmt.Errorf("%w: Search(%d)", ErrLookupMiss, k)
		}
	}
	res.Search = time.Since(t)

	if cfg.Linear {
		t = time.Now()
		for _, k := range keys {
			if e, ok := tree.SearchLinear(k); !ok || e.Value != k {
				return res, fmt.Errorf("%w: SearchLinear(%d)", ErrLookupMiss, k)
			}
		}
		res.SearchLinear = time.Since(t)
	}
	res.Total = time.Since(start)
	res.Height, res.Len = tree.Height(), tree.Len()
	tracer().Infof("bench: %s", res)
	return res, nil
}

// RunBaseline runs the workload of cfg on github.com/google/btree, which
// uses the same notion of degree. SearchLinear is not timed.
func RunBaseline(cfg Config) (Result, error) {
	if err := cfg.validate(); err != nil {
		return Result{}, err
	}
	cfg = cfg.normalized()
	if cfg.Degree < btree.MinDegree {
		return Result{}, fmt.Errorf("%w: degree must be >= %d", ErrInvalidConfig, btree.MinDegree)
	}
	cfg.Linear = false
	less := func(a, b btree.Entry[int, int]) bool { return a.Key < b.Key }
	tree := gbtree.NewG[btree.Entry[int, int]](cfg.Degree, less)
	keys := cfg.Keys()
	res := Result{Config: cfg}

	start := time.Now()
	for _, k := range keys {
		tree.ReplaceOrInsert(btree.Entry[int, int]{Key: k, Value: k})
	}
	res.Insert = time.Since(start)

	t := time.Now()
	for _, k := range keys {
		if e, ok := tree.Get(btree.Entry[int, int]{Key: k}); !ok || e.Value != k {
			return res, fmt.Errorf("%w: baseline Get(%d)", ErrLookupMiss, k)
		}
	}
	res.Search = time.Since(t)
	res.Total = time.Since(start)
	res.Len = tree.Len()
	tracer().Infof("bench baseline: %s", res)
	return res, nil
}
