// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// ObstaclePoint is one "x y 1" line of an obstacle file.
type ObstaclePoint struct {
	X, Y int
}

// ReadObstacles reads zero or more "x y 1" lines and returns the
// listed points, validated against the grid dimensions. The third
// field must be exactly 1; any other value, or a coordinate outside
// [0,nx) x [0,ny), is fatal.
func ReadObstacles(fnamepath string, nx, ny int) (pts []ObstaclePoint) {
	b, err := io.ReadFile(fnamepath)
	if err != nil {
		chk.Panic("inp.obstacles: cannot read obstacle file %q:\n%v", fnamepath, err)
	}
	sc := bufio.NewScanner(bytes.NewReader(b))
	lineno := 0
	for sc.Scan() {
		lineno++
		l := strings.TrimSpace(sc.Text())
		if l == "" {
			continue
		}
		fields := strings.Fields(l)
		if len(fields) != 3 {
			chk.Panic("inp.obstacles: %q: line %d: expected 3 fields, got %d: %q", fnamepath, lineno, len(fields), l)
		}
		x := mustAtoi(fnamepath, lineno, fields[0])
		y := mustAtoi(fnamepath, lineno, fields[1])
		flag := mustAtoi(fnamepath, lineno, fields[2])
		if flag != 1 {
			chk.Panic("inp.obstacles: %q: line %d: third field must be 1, got %d", fnamepath, lineno, flag)
		}
		if x < 0 || x >= nx || y < 0 || y >= ny {
			chk.Panic("inp.obstacles: %q: line %d: coordinate (%d,%d) outside grid %dx%d", fnamepath, lineno, x, y, nx, ny)
		}
		pts = append(pts, ObstaclePoint{X: x, Y: y})
	}
	return
}

// BuildMask turns a point list into a row-major boolean mask of the
// given dimensions, and returns the count of non-obstacle cells
// (N_flow in spec.md §4.C).
func BuildMask(pts []ObstaclePoint, nx, ny int) (mask []bool, nFlow int) {
	mask = make([]bool, nx*ny)
	for _, p := range pts {
		mask[p.Y*nx+p.X] = true
	}
	nFlow = 0
	for _, obst := range mask {
		if !obst {
			nFlow++
		}
	}
	return
}
