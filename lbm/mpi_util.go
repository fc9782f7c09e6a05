// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lbm

// gosl/mpi exchanges []float64 and []int slices; the lattice itself
// is stored as float32 for memory density, so every wire crossing
// goes through these small conversion helpers. gosl/mpi's Send/Recv
// calls panic internally on failure (mirroring mpi.AllReduceSum in
// PaddySchmidt-gofem/fem/s_linimp.go, which is likewise called as a
// bare statement with no error return), so there is nothing for
// callers in this package to check.

func toFloat64(src []float32) []float64 {
	dst := make([]float64, len(src))
	for i, v := range src {
		dst[i] = float64(v)
	}
	return dst
}

func fromFloat64(src []float64, dst []float32) {
	for i, v := range src {
		dst[i] = float32(v)
	}
}

func toInt(src []bool) []int {
	dst := make([]int, len(src))
	for i, v := range src {
		if v {
			dst[i] = 1
		}
	}
	return dst
}

func fromInt(src []int, dst []bool) {
	for i, v := range src {
		dst[i] = v != 0
	}
}
