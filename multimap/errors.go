package multimap

import "fmt"

// The taxonomy here is deliberately narrow (spec §7): programmer-contract
// violations and invariant breaches are fatal and must never be
// recovered from, so they are reported as panics carrying a diagnostic
// message rather than as returned errors. Lookup misses are ordinary
// results (a false or a nil), never errors.
//
// Go's runtime allocator does not expose failure to user code the way
// the source's malloc/realloc calls can fail and be checked; an
// out-of-memory condition here is a process-fatal runtime event no
// amount of error plumbing in this package could intercept. Add and New
// therefore do not return an allocation-failure error — there is
// nothing this package could do with one.
func panicf(format string, args ...any) {
	panic(fmt.Sprintf("multimap: "+format, args...))
}
