// Package property runs gopter properties with a fixed seed per property and
// reports the first counterexample, shrunk.
package property

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/pkg/errors"
)

// Config controls how many inputs are tried and how they are seeded.
type Config struct {
	Runs int    `yaml:"runs"`
	Seed uint64 `yaml:"seed"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{Runs: 1000, Seed: 1}
}

// Property is a named gopter property.
type Property struct {
	Name string
	Prop gopter.Prop
}

// ForAll builds a Property that checks pred against values from gen. A
// non-nil error or a panic from pred falsifies the property.
func ForAll[T any](name string, gen gopter.Gen, pred func(T) error) Property {
	return Property{
		Name: name,
		Prop: prop.ForAll(func(v T) (res *gopter.PropResult) {
			defer func() {
				if rec := recover(); rec != nil {
					res = gopter.NewPropResult(false, fmt.Sprintf("uncaught panic: %v", rec))
				}
			}()
			if err := pred(v); err != nil {
				return gopter.NewPropResult(false, err.Error())
			}
			return gopter.NewPropResult(true, "")
		}, gen),
	}
}

// Failure describes the input a property rejected. Input is the shrunk
// counterexample and Original the value first generated.
type Failure struct {
	Run      int
	Input    string
	Original string
	Shrinks  int
	Err      error
}

// Result summarizes one property check.
type Result struct {
	Name     string
	Runs     int
	Passed   int
	Failure  *Failure
	Duration time.Duration
}

// OK reports whether every attempted run passed.
func (r Result) OK() bool {
	return r.Failure == nil
}

// SeedFor returns the seed the property called name draws from. Each
// property gets its own seed derived from cfg.Seed and its name, so results
// do not depend on which other properties run.
func (cfg Config) SeedFor(name string) int64 {
	return int64(cfg.Seed ^ xxhash.Sum64String(name))
}

// Check runs p until cfg.Runs inputs pass, an input fails or ctx is done.
func Check(ctx context.Context, p Property, cfg Config) Result {
	params := gopter.DefaultTestParametersWithSeed(cfg.SeedFor(p.Name))
	params.MinSuccessfulTests = cfg.Runs

	guarded := gopter.Prop(func(genParams *gopter.GenParameters) *gopter.PropResult {
		if ctx.Err() != nil {
			return &gopter.PropResult{Status: gopter.PropUndecided}
		}
		return p.Prop(genParams)
	})

	tr := guarded.Check(params)
	res := Result{
		Name:     p.Name,
		Runs:     tr.Succeeded,
		Passed:   tr.Succeeded,
		Duration: tr.Time,
	}

	switch tr.Status {
	case gopter.TestFailed, gopter.TestError:
		res.Runs++
		res.Failure = newFailure(tr)
	case gopter.TestExhausted:
		if ctx.Err() == nil {
			res.Failure = &Failure{
				Run: tr.Succeeded,
				Err: errors.Errorf("gave up after %d discarded inputs", tr.Discarded),
			}
		}
	}
	return res
}

func newFailure(tr *gopter.TestResult) *Failure {
	f := &Failure{Run: tr.Succeeded, Err: tr.Error}
	if n := len(tr.Args); n > 0 {
		arg := tr.Args[n-1]
		f.Input = arg.ArgFormatted
		f.Original = arg.OrigArgFormatted
		f.Shrinks = arg.Shrinks
	}
	if f.Err == nil {
		var labels []string
		for _, l := range tr.Labels {
			if l != "" {
				labels = append(labels, l)
			}
		}
		f.Err = errors.New(strings.Join(labels, "; "))
	}
	return f
}

// RunSuite checks every property in order. It returns ctx.Err() if the
// context ended before all properties ran, along with the results so far.
func RunSuite(ctx context.Context, props []Property, cfg Config) ([]Result, error) {
	results := make([]Result, 0, len(props))
	for _, p := range props {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		results = append(results, Check(ctx, p, cfg))
	}
	return results, ctx.Err()
}
