// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lbm

import (
	"github.com/cpmech/golbm/inp"
	"github.com/cpmech/gosl/mpi"
)

// Solver drives one rank through the Scatter → Loop → Gather states
// (spec.md §4.F). Init (loading Params and, on rank 0, the obstacle
// list), Report and Finalize are the caller's responsibility; Solver
// picks up from an already-decomposed rank.
type Solver struct {
	Params *inp.Params
	Decomp *Decomp
	Sub    *SubGrid
	AvVels []float64 // this rank's local per-step sums
}

// NewSolver allocates the local subgrid for one rank's share of the
// decomposition.
func NewSolver(p *inp.Params, rank, nproc int) *Solver {
	d := NewDecomp(rank, nproc, p.Ny)
	return &Solver{
		Params: p,
		Decomp: d,
		Sub:    NewSubGrid(p.Nx, d.Rows),
		AvVels: make([]float64, p.MaxIters),
	}
}

// Scatter distributes global into every rank's local SubGrid
// (spec.md §4.F). global is non-nil only on rank 0. It also performs
// the one-time obstacle halo exchange (spec.md §9).
func (o *Solver) Scatter(global *GlobalGrid) {
	if o.Decomp.Rank == 0 {
		o.scatterFromRoot(global)
	} else {
		o.scatterOnWorker()
	}
	ExchangeObstacleHalo(o.Sub, o.Decomp)
}

func (o *Solver) scatterFromRoot(global *GlobalGrid) {
	d := o.Decomp
	for lj := 1; lj <= d.Rows; lj++ {
		gj := d.RowOffset + lj - 1
		copy(o.Sub.Row(o.Sub.Cells, lj), global.Row(gj))
		copy(o.Sub.ObstacleRow(lj), global.ObstacleRow(gj))
	}
	for r := 1; r < d.Nproc; r++ {
		rd := NewDecomp(r, d.Nproc, o.Params.Ny)
		for lj := 1; lj <= rd.Rows; lj++ {
			gj := rd.RowOffset + lj - 1
			sendPopsRow(r, global.Row(gj))
			sendObstRow(r, global.ObstacleRow(gj))
		}
	}
}

func (o *Solver) scatterOnWorker() {
	d := o.Decomp
	for lj := 1; lj <= d.Rows; lj++ {
		recvPopsRow(0, o.Sub.Row(o.Sub.Cells, lj))
		recvObstRow(0, o.Sub.ObstacleRow(lj))
	}
}

// Step advances the local subgrid by one timestep: halo exchange,
// then the four kernel stages, then the local reduction contribution
// (spec.md §4.F Loop(t)).
func (o *Solver) Step(t int) {
	ExchangePopsHalo(o.Sub, o.Decomp)
	AccelerateFlow(o.Sub, o.Decomp, o.Params)
	Propagate(o.Sub)
	Rebound(o.Sub)
	Collision(o.Sub, o.Params.Omega)
	o.AvVels[t] = o.Sub.LocalAverageVelocity()
}

// Run executes the full timestep loop.
func (o *Solver) Run() {
	for t := 0; t < o.Params.MaxIters; t++ {
		o.Step(t)
	}
}

// Gather collects every rank's final strip into global (rank 0 only)
// and sums every rank's av_vels contribution element-wise, returning
// the pooled (not yet normalized) totals on rank 0 and nil elsewhere
// (spec.md §4.F Gather).
func (o *Solver) Gather(global *GlobalGrid) (totals []float64) {
	if o.Decomp.Rank == 0 {
		return o.gatherOnRoot(global)
	}
	o.gatherFromWorker()
	return nil
}

func (o *Solver) gatherOnRoot(global *GlobalGrid) []float64 {
	d := o.Decomp
	for lj := 1; lj <= d.Rows; lj++ {
		gj := d.RowOffset + lj - 1
		copy(global.Row(gj), o.Sub.Row(o.Sub.Cells, lj))
		copy(global.ObstacleRow(gj), o.Sub.ObstacleRow(lj))
	}
	totals := make([]float64, o.Params.MaxIters)
	copy(totals, o.AvVels)
	remote := make([]float64, o.Params.MaxIters)
	for r := 1; r < d.Nproc; r++ {
		rd := NewDecomp(r, d.Nproc, o.Params.Ny)
		for lj := 1; lj <= rd.Rows; lj++ {
			gj := rd.RowOffset + lj - 1
			recvPopsRow(r, global.Row(gj))
			recvObstRow(r, global.ObstacleRow(gj))
		}
		mpi.Recv(remote, r)
		for t := range totals {
			totals[t] += remote[t]
		}
	}
	return totals
}

func (o *Solver) gatherFromWorker() {
	d := o.Decomp
	for lj := 1; lj <= d.Rows; lj++ {
		sendPopsRow(0, o.Sub.Row(o.Sub.Cells, lj))
		sendObstRow(0, o.Sub.ObstacleRow(lj))
	}
	mpi.Send(o.AvVels, 0)
}

func sendPopsRow(toRank int, row []float32) {
	mpi.Send(toFloat64(row), toRank)
}

func recvPopsRow(fromRank int, row []float32) {
	buf := make([]float64, len(row))
	mpi.Recv(buf, fromRank)
	fromFloat64(buf, row)
}

func sendObstRow(toRank int, row []bool) {
	mpi.SendI(toInt(row), toRank)
}

func recvObstRow(fromRank int, row []bool) {
	buf := make([]int, len(row))
	mpi.RecvI(buf, fromRank)
	fromInt(buf, row)
}
