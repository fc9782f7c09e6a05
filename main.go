// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/cpmech/golbm/inp"
	"github.com/cpmech/golbm/lbm"
	"github.com/cpmech/golbm/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/gosl/utl"
)

func main() {

	// catch errors
	exitCode := 0
	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				chk.Verbose = true
				for i := 8; i > 3; i-- {
					chk.CallerInfo(i)
				}
				io.PfRed("ERROR: %v\n", err)
			}
			exitCode = 1
		}
		mpi.Stop(false)
		os.Exit(exitCode)
	}()
	mpi.Start(false)

	// profiling?
	defer utl.DoProf(false)()

	// arguments: program <paramfile> <obstaclefile>
	paramfile, _ := io.ArgToFilename(0, "", "", true)
	obstaclefile, _ := io.ArgToFilename(1, "", "", true)

	if mpi.Rank() == 0 {
		io.PfWhite("\nD2Q9 BGK lattice-Boltzmann solver\n\n")
		io.Pf("\n%v\n", io.ArgsTable(
			"parameter file", "paramfile", paramfile,
			"obstacle file", "obstaclefile", obstaclefile,
		))
	}

	run(paramfile, obstaclefile)
}

// run executes Init → Scatter → Loop → Gather → Report → Finalize
// for this rank (spec.md §4.F).
func run(paramfile, obstaclefile string) {

	rank, nproc := 0, 1
	if mpi.IsOn() {
		rank = mpi.Rank()
		nproc = mpi.Size()
	}

	// Init
	p := inp.ReadParams(paramfile)
	p.CheckProcessCount(nproc)

	var global *lbm.GlobalGrid
	if rank == 0 {
		pts := inp.ReadObstacles(obstaclefile, p.Nx, p.Ny)
		mask, nFlow := inp.BuildMask(pts, p.Nx, p.Ny)
		global = lbm.NewGlobalGrid(p, mask, nFlow)
	}

	sol := lbm.NewSolver(p, rank, nproc)

	// Scatter
	sol.Scatter(global)

	// Loop
	if rank == 0 {
		io.Pf("running %d timestep(s) on %d process(es)\n", p.MaxIters, nproc)
	}
	sol.Run()

	// Gather
	totals := sol.Gather(global)

	// Report (rank 0 only)
	if rank == 0 {
		avVels := lbm.NormalizeAverageVelocities(totals, global.NFlow)
		out.WriteAvVels("av_vels.dat", avVels)
		out.WriteFinalState("final_state.dat", global, p)

		var last float64
		if len(avVels) > 0 {
			last = avVels[len(avVels)-1]
		}
		re := out.Reynolds(p, last)
		io.Pf("==done==\n")
		io.Pf("Reynolds number:\t%.12e\n", re)
	}
}
