// Package multimap implements an in-memory associative container mapping
// integer keys to ordered bags of integer values.
//
// The index backing the container is a cache-conscious B-tree: each node
// keeps up to FANOUT key records in one contiguous array allocated with the
// node, so the linear scan dominating search reads adjacent cache lines.
// The records are not stored inline in the node struct itself; the node
// holds a slice over that array. Insertion splits
// proactively on the way down, so the leaf an insert finally reaches always
// has room and needs no recursive fixup on the way back up. Each key owns
// a contiguous value buffer grown in whole cache-line increments, so
// iterating a key's values streams predictably through the cache.
//
// The container is not safe for concurrent use. A single goroutine may
// mutate and read it freely; concurrent readers are safe only once memory
// visibility has been established by the caller, and never concurrently
// with a writer.
package multimap
