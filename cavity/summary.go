// Copyright 2024 The Gocavity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cavity

import (
	"github.com/gocfd/gocavity/ppe"
)

// StepInfo records the pressure-solve diagnostic of one outer time step
type StepInfo struct {
	Step       int     `json:"step"`       // outer step index (0-based)
	Iterations int     `json:"iterations"` // inner sweeps used
	State      string  `json:"state"`      // terminal state of the inner solve
	Diff       float64 `json:"diff"`       // relative L2 diff at termination
}

// Summary records per-step diagnostics of a whole simulation
type Summary struct {
	Steps []StepInfo `json:"steps"`
}

// Append records the outcome of one inner pressure solve
func (o *Summary) Append(step int, res *ppe.Results) {
	o.Steps = append(o.Steps, StepInfo{
		Step:       step,
		Iterations: res.Iterations,
		State:      res.State.String(),
		Diff:       res.Diff,
	})
}

// NumLimitReached returns how many steps exhausted the sweep cap. Hitting
// the cap is not fatal; this count lets callers decide severity.
func (o *Summary) NumLimitReached() (n int) {
	for _, s := range o.Steps {
		if s.State != ppe.Converged.String() {
			n++
		}
	}
	return
}
