package dedupe

// Package dedupe provides shared singleflight groups used to collapse
// concurrent work on the same key. Only one load of a save slot runs at a
// time; other callers wait for and share its result.

import "golang.org/x/sync/singleflight"

// StateLoads deduplicates save-slot loads keyed by "state:<slot key>".
var StateLoads singleflight.Group
