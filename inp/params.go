// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp reads the plain-ASCII parameter and obstacle files that
// describe a lattice-Boltzmann run.
package inp

import (
	"bufio"
	"bytes"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Params holds the physical and numerical parameters of a run, read
// once at startup and never mutated afterwards.
type Params struct {
	Nx          int     // grid width
	Ny          int     // grid height
	MaxIters    int     // number of timesteps
	ReynoldsDim int     // characteristic length used in the Reynolds number
	Density     float32 // reference density ρ
	Accel       float32 // body-force acceleration applied at the accelerate row
	Omega       float32 // BGK relaxation rate; stable for 0 < omega < 2
}

// ReadParams reads the seven parameter lines, in order: nx, ny,
// max_iters, reynolds_dim, density, accel, omega. Any malformed line
// or out-of-range value is fatal.
func ReadParams(fnamepath string) (p *Params) {
	b, err := io.ReadFile(fnamepath)
	if err != nil {
		chk.Panic("inp.params: cannot read parameter file %q:\n%v", fnamepath, err)
	}
	lines := make([]string, 0, 7)
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		l := strings.TrimSpace(sc.Text())
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}
	if len(lines) < 7 {
		chk.Panic("inp.params: %q: expected 7 parameter lines, found %d", fnamepath, len(lines))
	}
	p = new(Params)
	p.Nx = mustAtoi(fnamepath, 1, lines[0])
	p.Ny = mustAtoi(fnamepath, 2, lines[1])
	p.MaxIters = mustAtoi(fnamepath, 3, lines[2])
	p.ReynoldsDim = mustAtoi(fnamepath, 4, lines[3])
	p.Density = float32(mustAtof(fnamepath, 5, lines[4]))
	p.Accel = float32(mustAtof(fnamepath, 6, lines[5]))
	p.Omega = float32(mustAtof(fnamepath, 7, lines[6]))
	p.check(fnamepath)
	return
}

// check validates the invariants in spec.md §3.
func (o *Params) check(fnamepath string) {
	if o.Nx <= 0 || o.Ny <= 0 {
		chk.Panic("inp.params: %q: nx and ny must be positive; got nx=%d ny=%d", fnamepath, o.Nx, o.Ny)
	}
	if o.MaxIters < 0 {
		chk.Panic("inp.params: %q: max_iters must not be negative; got %d", fnamepath, o.MaxIters)
	}
	if o.Omega <= 0 || o.Omega >= 2 {
		chk.Panic("inp.params: %q: omega must satisfy 0 < omega < 2 (BGK stability); got %v", fnamepath, o.Omega)
	}
}

// CheckProcessCount panics if the row decomposition cannot place at
// least one row per process (spec.md §6: "ny ≥ P").
func (o *Params) CheckProcessCount(nproc int) {
	if o.Ny < nproc {
		chk.Panic("inp.params: ny=%d must be at least the process count P=%d", o.Ny, nproc)
	}
}

// mustAtoi and mustAtof wrap io.Atoi/io.Atof, which already panic on a
// malformed string, with the file name and line number so the
// diagnostic names the originating location (spec.md §7).
func mustAtoi(fnamepath string, line int, s string) (n int) {
	defer func() {
		if err := recover(); err != nil {
			chk.Panic("inp.params: %q: line %d: expected integer, got %q:\n%v", fnamepath, line, s, err)
		}
	}()
	return io.Atoi(s)
}

func mustAtof(fnamepath string, line int, s string) (v float64) {
	defer func() {
		if err := recover(); err != nil {
			chk.Panic("inp.params: %q: line %d: expected float, got %q:\n%v", fnamepath, line, s, err)
		}
	}()
	return io.Atof(s)
}
