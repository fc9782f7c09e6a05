// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package lbm implements the D2Q9 BGK lattice-Boltzmann solver: the
// grid model, the four per-timestep kernel operators, the row
// decomposition, the ring halo exchange, and the driver that
// sequences them across MPI-style processes.
package lbm

import "github.com/cpmech/golbm/inp"

// Direction indices into a cell's nine populations.
//
//	6 2 5
//	 \|/
//	3-0-1
//	 /|\
//	7 4 8
const (
	DirRest = iota
	DirE
	DirN
	DirW
	DirS
	DirNE
	DirNW
	DirSW
	DirSE
	NumDirs
)

// D2Q9 lattice weights, grouped by speed class.
const (
	W0 = 4.0 / 9.0
	W1 = 1.0 / 9.0
	W2 = 1.0 / 36.0
)

// weights indexed by direction, used by Collision and the initial
// equilibrium fill in NewGlobalGrid.
var weights = [NumDirs]float32{W0, W1, W1, W1, W1, W2, W2, W2, W2}

// exX and exY give the unit lattice vector for each direction; used
// by Collision to project the velocity onto each speed.
var exX = [NumDirs]float32{0, 1, 0, -1, 0, 1, -1, -1, 1}
var exY = [NumDirs]float32{0, 0, 1, 0, -1, 1, 1, -1, -1}

const cs2 = 1.0 / 3.0 // speed-of-sound squared

// GlobalGrid is the full nx*ny lattice, allocated only on rank 0. It
// is scattered into per-rank SubGrids at startup and reassembled at
// the end of the run.
type GlobalGrid struct {
	Nx, Ny   int
	Cells    []float32 // len = Nx*Ny*NumDirs, row-major: (j*Nx+i)*NumDirs+k
	Obstacle []bool    // len = Nx*Ny
	NFlow    int       // count of non-obstacle cells
}

// NewGlobalGrid allocates a grid and fills every cell with the
// equilibrium populations for the given reference density, per
// spec.md §4.A.
func NewGlobalGrid(p *inp.Params, mask []bool, nFlow int) *GlobalGrid {
	g := &GlobalGrid{
		Nx:       p.Nx,
		Ny:       p.Ny,
		Cells:    make([]float32, p.Nx*p.Ny*NumDirs),
		Obstacle: mask,
		NFlow:    nFlow,
	}
	for cell := 0; cell < p.Nx*p.Ny; cell++ {
		base := cell * NumDirs
		for k := 0; k < NumDirs; k++ {
			g.Cells[base+k] = weights[k] * p.Density
		}
	}
	return g
}

// Row returns a view of global row j's populations, Nx*NumDirs long.
func (g *GlobalGrid) Row(j int) []float32 {
	return g.Cells[j*g.Nx*NumDirs : (j+1)*g.Nx*NumDirs]
}

// ObstacleRow returns a view of global row j's obstacle flags.
func (g *GlobalGrid) ObstacleRow(j int) []bool {
	return g.Obstacle[j*g.Nx : (j+1)*g.Nx]
}
