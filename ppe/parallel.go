// Copyright 2024 The Gocavity Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ppe

import (
	"runtime"
	"sync"
)

// parallelRows executes fn for each row index j in [jlo,jhi), splitting the
// range among available CPUs in contiguous chunks. It returns only after
// every chunk has finished, so callers get a full barrier.
func parallelRows(jlo, jhi int, fn func(j int)) {
	total := jhi - jlo
	if total <= 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > total {
		workers = total
	}
	chunk := (total + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		s := jlo + w*chunk
		e := s + chunk
		if e > jhi {
			e = jhi
		}
		if s >= jhi {
			break
		}
		wg.Add(1)
		go func(ss, ee int) {
			for j := ss; j < ee; j++ {
				fn(j)
			}
			wg.Done()
		}(s, e)
	}
	wg.Wait()
}
