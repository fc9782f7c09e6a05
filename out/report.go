// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out writes the two result files described in spec.md §6
// (av_vels.dat and final_state.dat) and computes the Reynolds number
// reported at the end of a run.
package out

import (
	"bytes"
	"math"

	"github.com/cpmech/golbm/inp"
	"github.com/cpmech/golbm/lbm"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// WriteAvVels writes one "<t>:\t<value>\n" line per timestep, value
// in scientific notation with 12 digits after the decimal.
func WriteAvVels(fnamepath string, avVels []float64) {
	var buf bytes.Buffer
	for t, v := range avVels {
		buf.WriteString(io.Sf("%d:\t%.12e\n", t, v))
	}
	if err := io.WriteFile(fnamepath, &buf); err != nil {
		chk.Panic("out.report: cannot write %q:\n%v", fnamepath, err)
	}
}

// WriteFinalState writes one line per global cell:
// "<i> <j> <u_x> <u_y> <|u|> <p> <obstacle>\n", per spec.md §6.
// Obstacle cells report zero velocity and pressure ρ·c_s²; the
// obstacle column uses the grid's own (j*nx+i) mask directly, not the
// transposed indexing spec.md §9 flags as a bug in the legacy dump.
func WriteFinalState(fnamepath string, g *lbm.GlobalGrid, p *inp.Params) {
	var buf bytes.Buffer
	cs2 := 1.0 / 3.0
	for j := 0; j < g.Ny; j++ {
		for i := 0; i < g.Nx; i++ {
			cell := j*g.Nx + i
			obst := g.Obstacle[cell]
			var ux, uy, press, speed float64
			if obst {
				press = float64(p.Density) * cs2
			} else {
				c := g.Cells[cell*lbm.NumDirs : cell*lbm.NumDirs+lbm.NumDirs]
				fux, fuy, rho := lbm.VelocityFrom(c)
				ux, uy = float64(fux), float64(fuy)
				speed = math.Sqrt(ux*ux + uy*uy)
				press = float64(rho) * cs2
			}
			obstCol := 0
			if obst {
				obstCol = 1
			}
			buf.WriteString(io.Sf("%d %d %.12e %.12e %.12e %.12e %d\n", i, j, ux, uy, speed, press, obstCol))
		}
	}
	if err := io.WriteFile(fnamepath, &buf); err != nil {
		chk.Panic("out.report: cannot write %q:\n%v", fnamepath, err)
	}
}

// Reynolds computes u_avg(last)·reynolds_dim / ν with
// ν=(2/omega−1)/6, per spec.md §4.F.
func Reynolds(p *inp.Params, avVelsLast float64) float64 {
	nu := (2.0/float64(p.Omega) - 1.0) / 6.0
	return avVelsLast * float64(p.ReynoldsDim) / nu
}
