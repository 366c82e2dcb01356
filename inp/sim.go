// Copyright 2024 The Gocavity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"

	"github.com/gocfd/gocavity/msh"
)

// Data holds global data for simulations
type Data struct {
	Desc   string `json:"desc"`   // description of simulation
	DirOut string `json:"dirout"` // directory for output; e.g. /tmp/gocavity
	ICfile string `json:"icfile"` // initial-condition record path; empty means start from rest
}

// SetDefault sets default values
func (o *Data) SetDefault(fnkey string) {
	if o.DirOut == "" {
		o.DirOut = "/tmp/gocavity/" + fnkey
	}
}

// GridData holds the structured grid definition
type GridData struct {
	Nx int     `json:"nx"` // number of nodes along x
	Ny int     `json:"ny"` // number of nodes along y
	Dx float64 `json:"dx"` // uniform spacing
}

// FluidData holds fluid properties
type FluidData struct {
	Rho float64 `json:"rho"` // density
	Nu  float64 `json:"nu"`  // kinematic viscosity
}

// TimeData holds time-stepping control
type TimeData struct {
	Dt     float64 `json:"dt"`     // outer time-step size
	Nsteps int     `json:"nsteps"` // number of outer time steps
}

// SolverData holds pressure-solver data
type SolverData struct {
	Type       string  `json:"type"`       // pressure solver type: {jacobi, jacobipar}
	Source     string  `json:"source"`     // source-term formulation: {looped, slab}
	L2Target   float64 `json:"l2target"`   // relative L2 diff target for the inner solve
	MaxIt      int     `json:"maxit"`      // sweep cap per inner solve
	CheckEvery int     `json:"checkevery"` // convergence-check interval in sweeps
}

// SetDefault sets default values
func (o *SolverData) SetDefault() {
	if o.Type == "" {
		o.Type = "jacobi"
	}
	if o.Source == "" {
		o.Source = "looped"
	}
	if o.L2Target == 0 {
		o.L2Target = 1e-4
	}
	if o.MaxIt == 0 {
		o.MaxIt = 500
	}
	if o.CheckEvery == 0 {
		o.CheckEvery = 10
	}
}

// Simulation holds all simulation data read from a (.sim) file
type Simulation struct {
	Data   Data       `json:"data"`   // global data
	Grid   GridData   `json:"grid"`   // grid definition
	Fluid  FluidData  `json:"fluid"`  // fluid properties
	Time   TimeData   `json:"time"`   // time-stepping control
	Solver SolverData `json:"solver"` // pressure-solver data

	// derived
	Key string `json:"-"` // simulation key == filename without extension
}

// ReadSim reads a (.sim) JSON file and applies default values
func ReadSim(simfilepath string) (o *Simulation, err error) {
	buf, err := os.ReadFile(simfilepath)
	if err != nil {
		err = chk.Err("cannot read simulation file %q:\n%v", simfilepath, err)
		return
	}
	o = new(Simulation)
	if jerr := json.Unmarshal(buf, o); jerr != nil {
		o = nil
		err = chk.Err("cannot parse simulation file %q:\n%v", simfilepath, jerr)
		return
	}
	fn := filepath.Base(simfilepath)
	o.Key = fn[:len(fn)-len(filepath.Ext(fn))]
	o.Data.SetDefault(o.Key)
	o.Solver.SetDefault()
	if verr := o.Validate(); verr != nil {
		o = nil
		err = verr
	}
	return
}

// Validate checks the input values that must be rejected before any
// computation starts
func (o *Simulation) Validate() (err error) {
	if _, err = msh.NewGrid(o.Grid.Nx, o.Grid.Ny, o.Grid.Dx); err != nil {
		return
	}
	if o.Fluid.Rho <= 0 {
		return chk.Err("fluid density must be positive; rho=%g is invalid", o.Fluid.Rho)
	}
	if o.Time.Dt <= 0 {
		return chk.Err("time-step size must be positive; dt=%g is invalid", o.Time.Dt)
	}
	if o.Time.Nsteps < 0 {
		return chk.Err("number of time steps cannot be negative; nsteps=%d is invalid", o.Time.Nsteps)
	}
	return
}
