package checker

import (
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/danieljhkim/encheck/internal/catalog"
	"github.com/danieljhkim/encheck/internal/encoding"
)

// Conflict records one catalog entry whose decode space intersects the
// proposed pattern's, with enough detail to audit the claim: the kind of
// overlap, the bit positions both patterns constrain, and one concrete
// word that decodes under both.
type Conflict struct {
	Entry      catalog.Entry `json:"entry"`
	Kind       Kind          `json:"kind"`
	CommonMask uint32        `json:"commonMask"`
	Witness    uint32        `json:"witness"`
}

// Report is the outcome of validating one proposed pattern against a
// catalog. An empty conflict list is a successful result, not an error.
type Report struct {
	Proposed  encoding.Pattern `json:"proposed"`
	Conflicts []Conflict       `json:"conflicts"`
}

// HasConflicts reports whether any catalog entry collides with the proposal.
func (r *Report) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// parallelThreshold is the catalog size above which Validate fans the
// per-entry comparisons out across workers. Below it the sequential scan
// wins outright.
const parallelThreshold = 512

// Validate checks the proposed pattern against every catalog entry and
// returns all collisions, most severe kind first; ties within a kind keep
// catalog order.
//
// Validate is pure: it never mutates the catalog, and the same inputs
// always produce the same report regardless of how the scan is scheduled.
func Validate(proposed encoding.Pattern, cat *catalog.Catalog) *Report {
	entries := cat.Entries()

	var conflicts []Conflict
	if len(entries) > parallelThreshold {
		conflicts = scanParallel(proposed, entries)
	} else {
		conflicts = scan(proposed, entries)
	}

	sortConflicts(conflicts)
	return &Report{Proposed: proposed, Conflicts: conflicts}
}

// compare runs the overlap engine for a single catalog entry.
func compare(proposed encoding.Pattern, e catalog.Entry) (Conflict, bool) {
	if !Overlaps(proposed, e.Pattern) {
		return Conflict{}, false
	}
	return Conflict{
		Entry:      e,
		Kind:       Classify(proposed, e.Pattern),
		CommonMask: CommonMask(proposed, e.Pattern),
		Witness:    Witness(proposed, e.Pattern),
	}, true
}

// scan collects conflicts for a contiguous run of entries, preserving
// their order.
func scan(proposed encoding.Pattern, entries []catalog.Entry) []Conflict {
	var out []Conflict
	for _, e := range entries {
		if c, ok := compare(proposed, e); ok {
			out = append(out, c)
		}
	}
	return out
}

// scanParallel splits the catalog into contiguous chunks, one per worker.
// Each worker writes its own partial slice, so the concatenation preserves
// catalog order no matter which worker finishes first.
func scanParallel(proposed encoding.Pattern, entries []catalog.Entry) []Conflict {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(entries) {
		workers = len(entries)
	}
	chunk := (len(entries) + workers - 1) / workers

	parts := make([][]Conflict, workers)
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > len(entries) {
			hi = len(entries)
		}
		if lo >= hi {
			break
		}
		w := w
		g.Go(func() error {
			parts[w] = scan(proposed, entries[lo:hi])
			return nil
		})
	}
	// Workers never fail; Wait only synchronizes.
	_ = g.Wait()

	var out []Conflict
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// sortConflicts orders by kind severity. The sort is stable so entries of
// the same kind keep their catalog order.
func sortConflicts(conflicts []Conflict) {
	sort.SliceStable(conflicts, func(i, j int) bool {
		return conflicts[i].Kind < conflicts[j].Kind
	})
}
