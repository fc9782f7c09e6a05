// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lbm

// Decomp describes one rank's share of a row-decomposed grid, per
// spec.md §4.D: near-equal row strips, the remainder folded into the
// last rank, with a cyclic (ring) neighbor topology.
type Decomp struct {
	Nproc     int // total number of processes
	Rank      int // this process's rank
	Ny        int // global number of rows
	RowOffset int // global row index of this rank's first computational row
	Rows      int // number of computational rows owned by this rank
	Below     int // rank holding the row below this strip, (rank-1+P) mod P
	Above     int // rank holding the row above this strip, (rank+1) mod P
}

// NewDecomp computes the row decomposition for rank among nproc
// processes over a grid with ny rows.
func NewDecomp(rank, nproc, ny int) *Decomp {
	base := ny / nproc
	d := &Decomp{
		Nproc:     nproc,
		Rank:      rank,
		Ny:        ny,
		RowOffset: rank * base,
		Rows:      base,
		Below:     (rank - 1 + nproc) % nproc,
		Above:     (rank + 1) % nproc,
	}
	if rank == nproc-1 {
		d.Rows = base + ny%nproc
	}
	return d
}

// RankOf returns which rank owns global row j under an nproc-way
// decomposition of ny rows, mirroring NewDecomp's arithmetic.
func RankOf(j, nproc, ny int) int {
	base := ny / nproc
	r := j / base
	if r >= nproc {
		r = nproc - 1
	}
	return r
}

// LocalRow converts a global row index owned by this decomposition
// into a local computational row index (1..Rows); the caller must
// ensure globalRow falls within [RowOffset, RowOffset+Rows).
func (d *Decomp) LocalRow(globalRow int) int {
	return globalRow - d.RowOffset + 1
}
