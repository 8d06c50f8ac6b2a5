/*
Copyright © 2021 ConsenSys Software Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package circuit

import (
	"bytes"
	"runtime"
	"strconv"
	"sync"
)

// The ambient-generator registry (spec §4.3 "getActiveGenerator", §9
// "Ambient generator"). The REDESIGN FLAGS text recommends replacing the
// original's thread-local pointer with explicit generator passing, which is
// what Generator's own methods are; this registry exists alongside them so
// that multi-generator callers can still recover "the generator for this
// goroutine" (Active()) where an explicit reference hasn't been threaded
// through, without reintroducing a single global mutable pointer.
//
// Two modes, selected by Config.RunningMultiGenerators:
//   - single-generator: one global slot.
//   - multi-generator: a map keyed by goroutine id, since Go has no native
//     thread-local storage. The id is recovered by parsing the goroutine's
//     own stack trace header, the standard no-TLS workaround.
var (
	ambientMu       sync.RWMutex
	singleAmbient   *Generator
	multiAmbient    = map[int64]*Generator{}
	multiGenEnabled bool
)

// SetActive installs g as the ambient generator in the single global slot
// (single mode) or under the calling goroutine's id (multi mode). Called by
// New and RestoreSnapshot.
func SetActive(g *Generator) {
	ambientMu.Lock()
	defer ambientMu.Unlock()
	if g.cfg.RunningMultiGenerators {
		multiGenEnabled = true
		multiAmbient[goroutineID()] = g
	} else {
		singleAmbient = g
	}
}

// ClearActive removes g from the ambient registry. Safe to call even if g
// was never installed.
func ClearActive(g *Generator) {
	ambientMu.Lock()
	defer ambientMu.Unlock()
	if g.cfg.RunningMultiGenerators {
		for id, cur := range multiAmbient {
			if cur == g {
				delete(multiAmbient, id)
			}
		}
	} else if singleAmbient == g {
		singleAmbient = nil
	}
}

// Active returns the ambient generator reachable from the calling
// goroutine, or nil with ok=false if none is installed (spec §7.3
// ConfigurationError: "missing ambient generator in multi-generator mode").
func Active() (*Generator, bool) {
	ambientMu.RLock()
	defer ambientMu.RUnlock()
	if multiGenEnabled {
		g, ok := multiAmbient[goroutineID()]
		return g, ok
	}
	return singleAmbient, singleAmbient != nil
}

// goroutineID parses the numeric goroutine id out of runtime.Stack's
// header line ("goroutine 123 [running]:"). This is the conventional
// Go workaround for the absence of goroutine-local storage; it is used
// here only to scope the ambient-generator map in multi-generator mode,
// never for scheduling decisions.
func goroutineID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	b := buf[:n]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	id, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return -1
	}
	return id
}
