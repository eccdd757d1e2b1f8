// Package streamnet wires the SpatialIndex, DemProbe, EndpointGraph,
// OutletDetector, FlowOrientation, IndexComputation, and RecordEmitter
// phases into the single orchestrator spec §1 describes: reconstruct a
// stream network's flow topology from hydrography, a DEM, and optional
// lakes, then compute its Horton/Strahler/Shreve/Hack indices.
package streamnet

import (
	"context"
	"errors"

	"github.com/terrane-gis/streamnet/demgrid"
	"github.com/terrane-gis/streamnet/emit"
	"github.com/terrane-gis/streamnet/flow"
	"github.com/terrane-gis/streamnet/indices"
	"github.com/terrane-gis/streamnet/network"
	"github.com/terrane-gis/streamnet/outlet"
)

// PolylineReader supplies the stream input: a sequence of polyline
// features, each a list of parts, each part a list of (x,y) vertices
// (spec §6).
type PolylineReader interface {
	ReadPolylines() ([][][][2]float64, error)
}

// LakeReader supplies the optional lake input: a sequence of polygon
// records. Only vertex coordinates are consumed (spec §6).
type LakeReader interface {
	ReadLakes() ([][][2]float64, error)
}

// Engine runs the pipeline for one Config. It holds no mutable state of
// its own; a single Engine value may be reused across calls to Run.
type Engine struct {
	cfg Config
}

// New resolves opts into a Config and returns an Engine ready to Run.
func New(opts ...Option) *Engine {
	return &Engine{cfg: resolveConfig(opts)}
}

// Run executes the full pipeline once: ingest streams and the DEM (and
// lakes, if lakes is non-nil and Config.UseLakes is set), form nodes,
// detect outlets, orient flow, compute indices, and emit records.
//
// ctx is polled for cancellation alongside Config.Reporter's
// CancelRequested; either source cancels the run. On a cancelled or
// out-of-memory run, both return slices are nil. On ErrNoOutlets every
// link is still fully computed and returned, just unoriented
// (Outlet == -1, Discontinuous == 1) — spec §7 says the core completes.
func (e *Engine) Run(ctx context.Context, streams PolylineReader, dem *demgrid.Grid, lakes LakeReader) ([]emit.LinkRecord, []emit.NodeRecord, error) {
	rep := ctxReporter{Reporter: e.cfg.Reporter, ctx: ctx}

	features, err := streams.ReadPolylines()
	if err != nil {
		return nil, nil, errors.Join(ErrIO, err)
	}

	if e.cfg.MaxVertices > 0 {
		total := 0
		for _, parts := range features {
			for _, part := range parts {
				total += len(part)
			}
		}
		if total > e.cfg.MaxVertices {
			return nil, nil, ErrOutOfMemory
		}
	}

	g := network.NewGraph(e.cfg.SnapDistance, dem.DistMult())

	for _, parts := range features {
		if rep.CancelRequested() {
			return nil, nil, ErrCancelled
		}
		if err := g.AddPolyline(parts, dem); err != nil {
			if errors.Is(err, network.ErrDegeneratePart) {
				return nil, nil, errors.Join(ErrBadInputShape, err)
			}

			return nil, nil, errors.Join(ErrIO, err)
		}
	}

	if lakes != nil && e.cfg.UseLakes {
		polys, err := lakes.ReadLakes()
		if err != nil {
			return nil, nil, errors.Join(ErrIO, err)
		}
		for _, poly := range polys {
			if rep.CancelRequested() {
				return nil, nil, ErrCancelled
			}
			if err := g.AddLake(poly); err != nil {
				if errors.Is(err, network.ErrDegenerateLake) {
					return nil, nil, errors.Join(ErrBadInputShape, err)
				}

				return nil, nil, errors.Join(ErrIO, err)
			}
		}
	}

	if err := g.FormNodes(e.cfg.UseLakes, rep); err != nil {
		if errors.Is(err, network.ErrCancelled) {
			return nil, nil, ErrCancelled
		}

		return nil, nil, err
	}

	q := outlet.SelectSeeds(g)
	noOutlets := q.Len() == 0

	events, err := flow.Orient(g, q, rep)
	if err != nil {
		if errors.Is(err, flow.ErrCancelled) {
			return nil, nil, ErrCancelled
		}

		return nil, nil, err
	}

	indices.Compute(g)

	linkRecords := emit.EmitLinks(g, rep)
	nodeRecords := emit.EmitNodes(events, rep)

	if noOutlets {
		return linkRecords, nodeRecords, ErrNoOutlets
	}

	return linkRecords, nodeRecords, nil
}

// ctxReporter decorates a caller's Reporter so CancelRequested also
// observes ctx's cancellation, without requiring flow/indices to take a
// context parameter of their own.
type ctxReporter struct {
	emit.Reporter
	ctx context.Context
}

func (r ctxReporter) CancelRequested() bool {
	if r.ctx != nil && r.ctx.Err() != nil {
		return true
	}

	return r.Reporter.CancelRequested()
}
