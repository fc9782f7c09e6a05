// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lbm

import (
	"testing"

	"github.com/cpmech/golbm/inp"
	"github.com/cpmech/gosl/chk"
)

// fillEquilibrium mirrors NewGlobalGrid's fill, used to seed a bare
// SubGrid directly in kernel-level tests.
func fillEquilibrium(s *SubGrid, rho float32) {
	n := len(s.Cells) / NumDirs
	for c := 0; c < n; c++ {
		base := c * NumDirs
		for k := 0; k < NumDirs; k++ {
			s.Cells[base+k] = weights[k] * rho
		}
	}
}

func Test_kernel01(tst *testing.T) {

	chk.PrintTitle("kernel01. uniform equilibrium is a fixed point with no obstacles and no accel")

	nx, rows := 4, 4
	s := NewSubGrid(nx, rows)
	fillEquilibrium(s, 1.0)
	d := &Decomp{Nproc: 1, Rank: 0, Ny: rows, RowOffset: 0, Rows: rows, Below: 0, Above: 0}
	p := &inp.Params{Nx: nx, Ny: 100, Density: 1.0, Accel: 0.0, Omega: 1.0}

	ExchangePopsHalo(s, d)
	ExchangeObstacleHalo(s, d)
	AccelerateFlow(s, d, p) // target row 98 is outside this strip; no-op
	Propagate(s)
	Rebound(s)
	Collision(s, p.Omega)

	for j := 1; j <= rows; j++ {
		for i := 0; i < nx; i++ {
			c := s.speeds(s.Cells, i, j)
			for k := 0; k < NumDirs; k++ {
				chk.Scalar(tst, "equilibrium unchanged", 1e-6, float64(c[k]), float64(weights[k]))
			}
		}
	}
}

func Test_kernel02_accelerate_direction(tst *testing.T) {

	chk.PrintTitle("kernel02. accelerate strictly increases east-ish speeds and decreases west-ish speeds")

	nx, ny := 4, 4
	s := NewSubGrid(nx, ny)
	fillEquilibrium(s, 1.0)
	d := &Decomp{Nproc: 1, Rank: 0, Ny: ny, RowOffset: 0, Rows: ny, Below: 0, Above: 0}
	p := &inp.Params{Nx: nx, Ny: ny, Density: 1.0, Accel: 0.01, Omega: 1.0}

	targetLocal := d.LocalRow(ny - 2)
	before := make([][]float32, nx)
	for i := 0; i < nx; i++ {
		before[i] = append([]float32(nil), s.speeds(s.Cells, i, targetLocal)...)
	}

	AccelerateFlow(s, d, p)

	for i := 0; i < nx; i++ {
		after := s.speeds(s.Cells, i, targetLocal)
		if after[DirE] <= before[i][DirE] {
			tst.Fatalf("expected s[E] to strictly increase at column %d", i)
		}
		if after[DirNE] <= before[i][DirNE] || after[DirSE] <= before[i][DirSE] {
			tst.Fatalf("expected s[NE], s[SE] to strictly increase at column %d", i)
		}
		if after[DirW] >= before[i][DirW] {
			tst.Fatalf("expected s[W] to strictly decrease at column %d", i)
		}
		if after[DirNW] >= before[i][DirNW] || after[DirSW] >= before[i][DirSW] {
			tst.Fatalf("expected s[NW], s[SW] to strictly decrease at column %d", i)
		}
	}
}

func Test_kernel03_bounceback_symmetry(tst *testing.T) {

	chk.PrintTitle("kernel03. all-obstacle grid: one timestep swaps opposite pairs")

	nx, ny := 4, 4
	s := NewSubGrid(nx, ny)
	fillEquilibrium(s, 1.0)
	for i := range s.Obstacle {
		s.Obstacle[i] = true
	}
	d := &Decomp{Nproc: 1, Rank: 0, Ny: ny, RowOffset: 0, Rows: ny, Below: 0, Above: 0}
	p := &inp.Params{Nx: nx, Ny: 100, Density: 1.0, Accel: 0.01, Omega: 1.0}

	before := append([]float32(nil), s.Cells...)

	ExchangePopsHalo(s, d)
	ExchangeObstacleHalo(s, d)
	AccelerateFlow(s, d, p)
	Propagate(s)
	Rebound(s)
	Collision(s, p.Omega)

	pairs := [4][2]int{{DirE, DirW}, {DirN, DirS}, {DirNE, DirSW}, {DirNW, DirSE}}
	for j := 1; j <= ny; j++ {
		for i := 0; i < nx; i++ {
			pre := before[(j*nx+i)*NumDirs : (j*nx+i)*NumDirs+NumDirs]
			post := s.speeds(s.Cells, i, j)
			chk.Scalar(tst, "rest unchanged", 1e-6, float64(post[DirRest]), float64(pre[DirRest]))
			for _, pr := range pairs {
				a, b := pr[0], pr[1]
				chk.Scalar(tst, "swap a<-b", 1e-6, float64(post[a]), float64(pre[b]))
				chk.Scalar(tst, "swap b<-a", 1e-6, float64(post[b]), float64(pre[a]))
			}
		}
	}
}

func Test_kernel04_halo_idempotence(tst *testing.T) {

	chk.PrintTitle("kernel04. two consecutive halo exchanges equal one")

	nx, ny := 4, 3
	s := NewSubGrid(nx, ny)
	fillEquilibrium(s, 1.0)
	for i := 0; i < nx; i++ {
		s.speeds(s.Cells, i, 1)[DirE] = float32(i) + 1
		s.speeds(s.Cells, i, ny)[DirE] = float32(i) + 10
	}
	d := &Decomp{Nproc: 1, Rank: 0, Ny: ny, RowOffset: 0, Rows: ny, Below: 0, Above: 0}

	ExchangePopsHalo(s, d)
	once := append([]float32(nil), s.Row(s.Cells, 0)...)
	onceTop := append([]float32(nil), s.Row(s.Cells, ny+1)...)

	ExchangePopsHalo(s, d)
	chk.Array(tst, "bottom halo idempotent", 1e-12, toFloat64(s.Row(s.Cells, 0)), toFloat64(once))
	chk.Array(tst, "top halo idempotent", 1e-12, toFloat64(s.Row(s.Cells, ny+1)), toFloat64(onceTop))
}
