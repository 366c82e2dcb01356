// Copyright 2024 The Gocavity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"encoding/json"
	"os"

	"github.com/cpmech/gosl/chk"

	"github.com/gocfd/gocavity/msh"
)

// InitialCondition holds the four fields of the cavity problem at the start
// of a simulation. It is an explicit value object handed to the simulation
// constructor; nothing here is tied to process startup or ambient file
// state. All four fields must share the grid shape (ny, nx).
type InitialCondition struct {
	U [][]float64 `json:"u"` // x-velocity
	V [][]float64 `json:"v"` // y-velocity
	P [][]float64 `json:"p"` // pressure
	B [][]float64 `json:"b"` // Poisson source term
}

// NewZeroIC returns an initial condition with all fields at rest
func NewZeroIC(g *msh.Grid) *InitialCondition {
	return &InitialCondition{
		U: g.NewField(),
		V: g.NewField(),
		P: g.NewField(),
		B: g.NewField(),
	}
}

// ReadIC reads an initial-condition record from a JSON file
func ReadIC(fn string) (o *InitialCondition, err error) {
	buf, err := os.ReadFile(fn)
	if err != nil {
		err = chk.Err("cannot read initial-condition file %q:\n%v", fn, err)
		return
	}
	o = new(InitialCondition)
	if jerr := json.Unmarshal(buf, o); jerr != nil {
		o = nil
		err = chk.Err("cannot parse initial-condition file %q:\n%v", fn, jerr)
	}
	return
}

// Check returns an error unless all four fields match the grid shape.
// Shape mismatches are fatal and must be caught before any computation.
func (o *InitialCondition) Check(g *msh.Grid) (err error) {
	if err = g.CheckField("u", o.U); err != nil {
		return
	}
	if err = g.CheckField("v", o.V); err != nil {
		return
	}
	if err = g.CheckField("p", o.P); err != nil {
		return
	}
	return g.CheckField("b", o.B)
}
