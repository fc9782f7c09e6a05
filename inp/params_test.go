// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_params01(tst *testing.T) {

	chk.PrintTitle("params01. read a valid parameter file")

	dir := tst.TempDir()
	fn := filepath.Join(dir, "input.params")
	body := "128\n128\n1000\n220\n0.1\n0.005\n1.7\n"
	if err := os.WriteFile(fn, []byte(body), 0644); err != nil {
		tst.Fatalf("cannot write fixture: %v", err)
	}

	p := ReadParams(fn)
	chk.IntAssert(p.Nx, 128)
	chk.IntAssert(p.Ny, 128)
	chk.IntAssert(p.MaxIters, 1000)
	chk.IntAssert(p.ReynoldsDim, 220)
	chk.Scalar(tst, "density", 1e-15, float64(p.Density), float64(float32(0.1)))
	chk.Scalar(tst, "accel", 1e-15, float64(p.Accel), float64(float32(0.005)))
	chk.Scalar(tst, "omega", 1e-15, float64(p.Omega), float64(float32(1.7)))
}

func Test_params02(tst *testing.T) {

	chk.PrintTitle("params02. omega outside (0,2) is fatal")

	dir := tst.TempDir()
	fn := filepath.Join(dir, "input.params")
	body := "4\n4\n1\n10\n0.1\n0.005\n2.5\n"
	if err := os.WriteFile(fn, []byte(body), 0644); err != nil {
		tst.Fatalf("cannot write fixture: %v", err)
	}

	defer func() {
		if r := recover(); r == nil {
			tst.Fatalf("expected a panic for omega=2.5")
		}
	}()
	ReadParams(fn)
}

func Test_params03(tst *testing.T) {

	chk.PrintTitle("params03. process count must not exceed ny")

	p := &Params{Nx: 4, Ny: 4, MaxIters: 1, Density: 0.1, Accel: 0.005, Omega: 1.0}
	defer func() {
		if r := recover(); r == nil {
			tst.Fatalf("expected a panic for P > ny")
		}
	}()
	p.CheckProcessCount(8)
}
