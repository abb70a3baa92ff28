package engine

import "github.com/bianoble/validate-licenses/internal/fileset"

// Reconcile classifies the names of two sets:
//
//	matched    = directory ∩ manifest
//	unlicensed = directory \ manifest
//	unknown    = manifest \ directory
//
// Neither input is modified.
func Reconcile(manifestKeys, directoryFiles fileset.Set) *Result {
	return &Result{
		Matched:    directoryFiles.Intersect(manifestKeys).Sorted(),
		Unlicensed: directoryFiles.Difference(manifestKeys).Sorted(),
		Unknown:    manifestKeys.Difference(directoryFiles).Sorted(),
	}
}
