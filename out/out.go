// Copyright 2024 The Gocavity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of simulation results
package out

import (
	"bytes"
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/gocfd/gocavity/cavity"
)

// Results holds everything written at the end of a simulation
type Results struct {
	Desc    string          `json:"desc"`    // description of simulation
	U       [][]float64     `json:"u"`       // final x-velocity
	V       [][]float64     `json:"v"`       // final y-velocity
	P       [][]float64     `json:"p"`       // final pressure
	Summary *cavity.Summary `json:"summary"` // per-step solver diagnostics
}

// Save writes the final fields and the solver summary of a finished
// simulation to dirout/<fnkey>-res.json
func Save(dirout, fnkey string, m *cavity.Main) (err error) {
	r := Results{
		Desc:    m.Sim.Data.Desc,
		U:       m.Dom.U,
		V:       m.Dom.V,
		P:       m.Dom.P,
		Summary: m.Summary,
	}
	buf, err := json.MarshalIndent(&r, "", "  ")
	if err != nil {
		return chk.Err("cannot encode results:\n%v", err)
	}
	var b bytes.Buffer
	b.Write(buf)
	io.WriteFileD(dirout, fnkey+"-res.json", &b)
	return
}
