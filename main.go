// Copyright 2024 The Gocavity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/gocfd/gocavity/cavity"
	"github.com/gocfd/gocavity/inp"
	"github.com/gocfd/gocavity/msh"
	"github.com/gocfd/gocavity/out"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, fnkey := io.ArgToFilename(0, "data/cavity41", ".sim", true)
	verbose := io.ArgToBool(1, true)
	saveRes := io.ArgToBool(2, true)
	plotRes := io.ArgToBool(3, false)

	// message
	if verbose {
		io.PfWhite("\nGocavity -- lid-driven cavity flow solver\n\n")
		io.Pf("%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
			"save results", "saveRes", saveRes,
			"plot pressure contour", "plotRes", plotRes,
		))
	}

	// simulation data
	sim, err := inp.ReadSim(fnamepath)
	if err != nil {
		chk.Panic("cannot read simulation input data:\n%v", err)
	}

	// initial condition: explicit value object; from file or from rest
	g, err := msh.NewGrid(sim.Grid.Nx, sim.Grid.Ny, sim.Grid.Dx)
	if err != nil {
		chk.Panic("cannot allocate grid:\n%v", err)
	}
	ic := inp.NewZeroIC(g)
	if sim.Data.ICfile != "" {
		ic, err = inp.ReadIC(sim.Data.ICfile)
		if err != nil {
			chk.Panic("cannot read initial condition:\n%v", err)
		}
	}

	// run simulation
	analysis, err := cavity.NewMain(sim, ic, verbose)
	if err != nil {
		chk.Panic("cannot allocate simulation:\n%v", err)
	}
	if err = analysis.Run(); err != nil {
		chk.Panic("run failed:\n%v", err)
	}
	if n := analysis.Summary.NumLimitReached(); n > 0 && verbose {
		io.Pforan("%d of %d steps hit the sweep cap before the target\n", n, sim.Time.Nsteps)
	}

	// save results
	if saveRes {
		if err = out.Save(sim.Data.DirOut, fnkey, analysis); err != nil {
			chk.Panic("cannot save results:\n%v", err)
		}
		if verbose {
			io.Pf("results saved to %s\n", sim.Data.DirOut)
		}
	}

	// plot pressure contour (needs matplotlib)
	if plotRes {
		out.PlotPressure(sim.Data.DirOut, fnkey+"_p", analysis.Grid, analysis.Dom.P)
	}
}
