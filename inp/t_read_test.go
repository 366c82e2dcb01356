// Copyright 2024 The Gocavity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/gocfd/gocavity/msh"
)

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01. cavity41.sim input file")

	sim, err := ReadSim("data/cavity41.sim")
	if err != nil {
		tst.Errorf("ReadSim failed:\n%v", err)
		return
	}
	chk.String(tst, sim.Key, "cavity41")
	chk.String(tst, sim.Data.Desc, "lid-driven cavity 41x41")
	chk.IntAssert(sim.Grid.Nx, 41)
	chk.IntAssert(sim.Grid.Ny, 41)
	chk.Float64(tst, "dx", 1e-15, sim.Grid.Dx, 0.05)
	chk.Float64(tst, "rho", 1e-15, sim.Fluid.Rho, 1.0)
	chk.Float64(tst, "nu", 1e-15, sim.Fluid.Nu, 0.1)
	chk.Float64(tst, "dt", 1e-15, sim.Time.Dt, 0.001)
	chk.IntAssert(sim.Time.Nsteps, 100)
	chk.String(tst, sim.Solver.Type, "jacobi")
	chk.String(tst, sim.Solver.Source, "looped")
	chk.Float64(tst, "l2target", 1e-15, sim.Solver.L2Target, 0.001)
	chk.IntAssert(sim.Solver.MaxIt, 500)
	chk.IntAssert(sim.Solver.CheckEvery, 10)
}

func Test_read02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read02. missing files and invalid data are rejected")

	if _, err := ReadSim("data/nonexistent.sim"); err == nil {
		tst.Errorf("missing file must be rejected")
	}

	sim := Simulation{
		Grid:  GridData{Nx: 2, Ny: 41, Dx: 0.05},
		Fluid: FluidData{Rho: 1},
		Time:  TimeData{Dt: 0.001, Nsteps: 1},
	}
	if err := sim.Validate(); err == nil {
		tst.Errorf("nx=2 must be rejected")
	}
	sim.Grid.Nx = 41
	sim.Fluid.Rho = 0
	if err := sim.Validate(); err == nil {
		tst.Errorf("rho=0 must be rejected")
	}
}

func Test_read03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read03. cavity3.ic initial-condition file")

	ic, err := ReadIC("data/cavity3.ic")
	if err != nil {
		tst.Errorf("ReadIC failed:\n%v", err)
		return
	}
	g, _ := msh.NewGrid(3, 3, 0.1)
	if err := ic.Check(g); err != nil {
		tst.Errorf("cavity3.ic must match a 3x3 grid:\n%v", err)
		return
	}
	chk.Deep2(tst, "u", 1e-17, ic.U, [][]float64{{0, 0, 0}, {0, 0.5, 0}, {1, 1, 1}})
	chk.Float64(tst, "v11", 1e-17, ic.V[1][1], -0.25)
	chk.Float64(tst, "p11", 1e-17, ic.P[1][1], 2.5)
	chk.Float64(tst, "b11", 1e-17, ic.B[1][1], 0.125)

	if _, err := ReadIC("data/nonexistent.ic"); err == nil {
		tst.Errorf("missing initial-condition file must be rejected")
	}
}

func Test_ic01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ic01. initial-condition shape checks")

	g, _ := msh.NewGrid(5, 4, 0.1)
	ic := NewZeroIC(g)
	if err := ic.Check(g); err != nil {
		tst.Errorf("zero IC must match its own grid:\n%v", err)
	}

	// any field off by one row or column is fatal
	h, _ := msh.NewGrid(5, 5, 0.1)
	ic.P = h.NewField()
	if err := ic.Check(g); err == nil {
		tst.Errorf("mismatched p must be rejected")
	}
}
