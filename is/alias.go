package is

import "github.com/katalvlaran/implication/elements"

// Set is re-exported from package elements so that the rest of this package
// (and its callers) can write is.Set / is.NewSet without an extra import.
type Set = elements.Set

// NewSet builds a normalized Set from raw elements.
func NewSet(items ...string) Set { return elements.NewSet(items...) }
