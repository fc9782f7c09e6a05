// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lbm

import "math"

// LocalAverageVelocity sums sqrt(10000*(u_x^2+u_y^2)) over this
// rank's non-obstacle computational cells, using the post-collision
// Cells buffer. The literal factor-10000/divide-by-100 form is kept
// rather than algebraically simplified, per spec.md §4.C/§9, so the
// output matches the legacy normalization exactly once the gathered
// totals are divided by 100*N_flow in NormalizeAverageVelocities.
func (s *SubGrid) LocalAverageVelocity() float64 {
	var sum float64
	for j := 1; j <= s.Rows; j++ {
		for i := 0; i < s.Nx; i++ {
			if s.Obstacle[s.obstIndex(i, j)] {
				continue
			}
			ux, uy, _ := velocityFrom(s.speeds(s.Cells, i, j))
			sum += math.Sqrt(10000.0 * float64(ux*ux+uy*uy))
		}
	}
	return sum
}

// NormalizeAverageVelocities divides each step's pooled sum by
// 100*nFlow, turning the raw per-step totals collected during Gather
// into the spatially averaged velocity magnitude reported in
// av_vels.dat.
func NormalizeAverageVelocities(totals []float64, nFlow int) []float64 {
	out := make([]float64, len(totals))
	denom := 100.0 * float64(nFlow)
	for t, v := range totals {
		out[t] = v / denom
	}
	return out
}
