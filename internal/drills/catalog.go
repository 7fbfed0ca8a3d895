// Package drills defines the built-in practice catalog. Each drill is a
// self-contained runnable exercise with a recorded transcript; `drill
// verify` re-runs the body and diffs it against the recording, so the
// transcripts double as executable documentation.
package drills

import (
	"github.com/dkoosis/drill/internal/registry"
)

// Catalog returns every built-in drill.
func Catalog() []*registry.DrillInfo {
	var all []*registry.DrillInfo
	all = append(all, ledgerDrills()...)
	all = append(all, scorecardDrills()...)
	all = append(all, seqDrills()...)
	all = append(all, textioDrills()...)
	all = append(all, codecDrills()...)
	all = append(all, basicsDrills()...)
	all = append(all, errorDrills()...)
	return all
}

// RegisterAll loads the built-in catalog into a registry.
func RegisterAll(reg *registry.DrillRegistry) {
	for _, drill := range Catalog() {
		reg.Register(drill)
	}
}
