// Package analysis sequences the middle-end passes: constant propagation
// over the typed IR, then directive deduplication once the program is
// flat.
package analysis

import (
	"github.com/tliron/commonlog"

	"zkc/internal/flat"
	"zkc/internal/optimizer"
	"zkc/internal/propagation"
	"zkc/internal/typed"
)

var log = commonlog.GetLogger("zkc.analysis")

// TypedPass transforms a typed program.
type TypedPass interface {
	Name() string
	Apply(p *typed.Program) (*typed.Program, error)
}

// FlatPass transforms a flat program. Flat passes are total: they have no
// failure modes beyond panics on broken invariants.
type FlatPass interface {
	Name() string
	Apply(p flat.Prog) flat.Prog
}

type propagationPass struct{}

func (propagationPass) Name() string { return "constant propagation" }

func (propagationPass) Apply(p *typed.Program) (*typed.Program, error) {
	return propagation.Propagate(p)
}

type directivePass struct{}

func (directivePass) Name() string { return "directive deduplication" }

func (directivePass) Apply(p flat.Prog) flat.Prog {
	return optimizer.NewDirectiveOptimizer().Optimize(p)
}

// Pipeline runs the middle-end passes in order. Each pass owns its input
// program and returns a new one; the pipeline itself keeps no state across
// runs, so a caller may run independent programs through separate
// pipelines concurrently.
type Pipeline struct {
	typedPasses []TypedPass
	flatPasses  []FlatPass
}

// NewPipeline builds the default pass sequence.
func NewPipeline() *Pipeline {
	return &Pipeline{
		typedPasses: []TypedPass{propagationPass{}},
		flatPasses:  []FlatPass{directivePass{}},
	}
}

// AddTypedPass appends a typed pass.
func (pl *Pipeline) AddTypedPass(pass TypedPass) {
	pl.typedPasses = append(pl.typedPasses, pass)
}

// AddFlatPass appends a flat pass.
func (pl *Pipeline) AddFlatPass(pass FlatPass) {
	pl.flatPasses = append(pl.flatPasses, pass)
}

// AnalyseTyped runs the typed passes. The first failing pass aborts the
// pipeline.
func (pl *Pipeline) AnalyseTyped(p *typed.Program) (*typed.Program, error) {
	for _, pass := range pl.typedPasses {
		log.Infof("running pass: %s", pass.Name())
		next, err := pass.Apply(p)
		if err != nil {
			log.Infof("pass %s failed: %s", pass.Name(), err)
			return nil, err
		}
		p = next
	}
	return p, nil
}

// OptimizeFlat runs the flat passes.
func (pl *Pipeline) OptimizeFlat(p flat.Prog) flat.Prog {
	for _, pass := range pl.flatPasses {
		log.Infof("running pass: %s", pass.Name())
		p = pass.Apply(p)
	}
	return p
}
