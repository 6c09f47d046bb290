package bplustree

import "errors"

// Contract violations: the caller misused the API. The core never silently
// corrupts the tree in response to these; it returns a distinguished error
// instead (spec.md §7).
var (
	// ErrInvalidCapacity is returned by New when the requested branching
	// factor is below the B >= 4 floor (spec.md §4.2, §6).
	ErrInvalidCapacity = errors.New("bplustree: branching factor must be at least 4")

	// ErrInvalidated is returned by an iterator's Next when the tree was
	// mutated since the iterator was created (spec.md §4.5, §9's epoch
	// design). Detection is best-effort: the only hard contract is "do
	// not mutate while an iterator is live".
	ErrInvalidated = errors.New("bplustree: iterator invalidated by a tree mutation")
)

// ErrKeyNotFound is the expected-absence status Delete returns for a
// missing key (Get reports absence through its bool result instead) (spec.md §7: "a normal, non-exceptional return"). Callers
// are expected to check for it with errors.Is, not treat it as failure.
var ErrKeyNotFound = errors.New("bplustree: key not found")

// ErrOutOfMemory models the arena's resource-exhaustion failure mode
// (spec.md §4.4.4). The in-memory arena backing this implementation
// never actually runs out of address space before the Go runtime itself
// would, so this error exists for interface completeness and for callers
// who want to treat it the way spec.md §7 prescribes: as a distinct,
// always-rolled-back failure rather than a partially applied mutation.
var ErrOutOfMemory = errors.New("bplustree: allocation failed")
