// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lbm

// SubGrid is the per-rank local strip: Decomp.Rows computational rows
// plus a halo row above and below (spec.md §3). Cells holds the
// working populations mutated by Rebound/Collision; TmpCells holds
// the post-Propagate intermediate. The two must never alias.
type SubGrid struct {
	Nx       int
	Rows     int // computational rows; total stored height is Rows+2
	Cells    []float32
	TmpCells []float32
	Obstacle []bool // height Rows+2, local row 0 and Rows+1 included
}

// NewSubGrid allocates a subgrid for a strip of the given width and
// computational row count, with both halo rows.
func NewSubGrid(nx, rows int) *SubGrid {
	h := rows + 2
	return &SubGrid{
		Nx:       nx,
		Rows:     rows,
		Cells:    make([]float32, h*nx*NumDirs),
		TmpCells: make([]float32, h*nx*NumDirs),
		Obstacle: make([]bool, h*nx),
	}
}

// cellIndex returns the offset of cell (i,j)'s direction-0 slot in a
// Cells/TmpCells buffer; j is a local row index in [0, Rows+1].
func (s *SubGrid) cellIndex(i, j int) int {
	return (j*s.Nx + i) * NumDirs
}

// speeds returns the nine populations at local (i,j) from buf.
func (s *SubGrid) speeds(buf []float32, i, j int) []float32 {
	off := s.cellIndex(i, j)
	return buf[off : off+NumDirs]
}

// obstIndex returns the offset of cell (i,j) in an Obstacle buffer.
func (s *SubGrid) obstIndex(i, j int) int {
	return j*s.Nx + i
}

// Row returns a view of local row j's populations (Nx*NumDirs long)
// in buf, used by halo exchange and scatter/gather.
func (s *SubGrid) Row(buf []float32, j int) []float32 {
	return buf[j*s.Nx*NumDirs : (j+1)*s.Nx*NumDirs]
}

// ObstacleRow returns a view of local row j's obstacle flags.
func (s *SubGrid) ObstacleRow(j int) []bool {
	return s.Obstacle[j*s.Nx : (j+1)*s.Nx]
}
