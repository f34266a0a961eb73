// Package closuresys models the ClosureSystem capability of spec.md §4.5:
// an abstract closure-operator contract shared by an ImplicationalSystem
// (package is) and a FormalContext (this package), so that diagram
// construction (package diagram) can be written once, generically, against
// the interface rather than against either concrete type.
//
// Grounded on the "deep inheritance → capability interfaces" design note:
// rather than a class hierarchy, each implementation independently
// satisfies ClosureSystem.
package closuresys

import "github.com/katalvlaran/implication/elements"

// Set is the element-collection type shared across every ClosureSystem
// implementation.
type Set = elements.Set

// NewSet is a convenience re-export, mirroring is.NewSet.
func NewSet(items ...string) Set { return elements.NewSet(items...) }
