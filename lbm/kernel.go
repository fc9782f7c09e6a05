// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lbm

import "github.com/cpmech/golbm/inp"

// AccelerateFlow applies the body-force injection to the single
// global row ny-2, if that row belongs to this rank's strip
// (spec.md §4.B). Cells failing the positivity guard are untouched.
func AccelerateFlow(s *SubGrid, d *Decomp, p *inp.Params) {
	targetGlobal := p.Ny - 2
	if targetGlobal < d.RowOffset || targetGlobal >= d.RowOffset+d.Rows {
		return
	}
	j := d.LocalRow(targetGlobal)
	w1 := p.Density * p.Accel / 9.0
	w2 := p.Density * p.Accel / 36.0
	for i := 0; i < s.Nx; i++ {
		if s.Obstacle[s.obstIndex(i, j)] {
			continue
		}
		c := s.speeds(s.Cells, i, j)
		if c[DirW]-w1 > 0 && c[DirNW]-w2 > 0 && c[DirSW]-w2 > 0 {
			c[DirE] += w1
			c[DirNE] += w2
			c[DirSE] += w2
			c[DirW] -= w1
			c[DirNW] -= w2
			c[DirSW] -= w2
		}
	}
}

// Propagate streams populations one cell along their direction,
// reading Cells and writing TmpCells, with periodic horizontal wrap
// and vertical indexing through the halo rows (spec.md §4.B). Halo
// rows must already hold valid data.
func Propagate(s *SubGrid) {
	nx := s.Nx
	for j := 1; j <= s.Rows; j++ {
		for i := 0; i < nx; i++ {
			xw := (i - 1 + nx) % nx
			xe := (i + 1) % nx
			dst := s.speeds(s.TmpCells, i, j)
			dst[DirRest] = s.speeds(s.Cells, i, j)[DirRest]
			dst[DirE] = s.speeds(s.Cells, xw, j)[DirE]
			dst[DirN] = s.speeds(s.Cells, i, j-1)[DirN]
			dst[DirW] = s.speeds(s.Cells, xe, j)[DirW]
			dst[DirS] = s.speeds(s.Cells, i, j+1)[DirS]
			dst[DirNE] = s.speeds(s.Cells, xw, j-1)[DirNE]
			dst[DirNW] = s.speeds(s.Cells, xe, j-1)[DirNW]
			dst[DirSW] = s.speeds(s.Cells, xe, j+1)[DirSW]
			dst[DirSE] = s.speeds(s.Cells, xw, j+1)[DirSE]
		}
	}
}

// Rebound implements the no-slip boundary: at every obstacle cell,
// copy TmpCells into Cells with opposite directions swapped. The
// rest speed is left untouched and non-obstacle cells are not
// written here (spec.md §4.B).
func Rebound(s *SubGrid) {
	for j := 1; j <= s.Rows; j++ {
		for i := 0; i < s.Nx; i++ {
			if !s.Obstacle[s.obstIndex(i, j)] {
				continue
			}
			tmp := s.speeds(s.TmpCells, i, j)
			dst := s.speeds(s.Cells, i, j)
			dst[DirE] = tmp[DirW]
			dst[DirW] = tmp[DirE]
			dst[DirN] = tmp[DirS]
			dst[DirS] = tmp[DirN]
			dst[DirNE] = tmp[DirSW]
			dst[DirSW] = tmp[DirNE]
			dst[DirNW] = tmp[DirSE]
			dst[DirSE] = tmp[DirNW]
		}
	}
}

// Collision relaxes every non-obstacle cell's TmpCells towards its
// local BGK equilibrium, writing the result into Cells (spec.md
// §4.B). omega is the relaxation rate.
func Collision(s *SubGrid, omega float32) {
	for j := 1; j <= s.Rows; j++ {
		for i := 0; i < s.Nx; i++ {
			if s.Obstacle[s.obstIndex(i, j)] {
				continue
			}
			tmp := s.speeds(s.TmpCells, i, j)
			ux, uy, rho := velocityFrom(tmp)
			u2 := ux*ux + uy*uy
			dst := s.speeds(s.Cells, i, j)
			for k := 0; k < NumDirs; k++ {
				uk := exX[k]*ux + exY[k]*uy
				deq := weights[k] * rho * (1 + uk/cs2 + uk*uk/(2*cs2*cs2) - u2/(2*cs2))
				dst[k] = tmp[k] + omega*(deq-tmp[k])
			}
		}
	}
}

// velocityFrom computes (u_x, u_y, rho) from a cell's nine
// populations, shared by Collision and the reduction in reduce.go.
func velocityFrom(c []float32) (ux, uy, rho float32) {
	for k := 0; k < NumDirs; k++ {
		rho += c[k]
	}
	ux = (c[DirE] + c[DirNE] + c[DirSE] - c[DirW] - c[DirNW] - c[DirSW]) / rho
	uy = (c[DirN] + c[DirNE] + c[DirNW] - c[DirS] - c[DirSW] - c[DirSE]) / rho
	return
}

// VelocityFrom is the exported form of velocityFrom, used by package
// out when writing the final-state field.
func VelocityFrom(c []float32) (ux, uy, rho float32) {
	return velocityFrom(c)
}
