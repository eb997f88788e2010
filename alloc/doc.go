// Package alloc provides the memory allocation capability used by the array
// container.
//
// # Overview
//
// Every buffer the container owns is obtained through the Allocator
// interface: a bundle of three operations (Allocate, Reallocate, Free) with
// no state requirements, so implementations remain drop-in replacements for
// each other. The container never calls make or append on its own behalf.
//
// # Implementations
//
// Std: the default allocator, backed by the Go runtime
//
//   - Allocate is make([]byte, n)
//   - Free is a no-op (the garbage collector reclaims the buffer)
//
// Arena: a chunked bump allocator for batch-lifetime workloads
//
//   - O(1) allocation from large chunks
//   - Free is a no-op; Reset() and Release() reclaim in bulk
//   - Metrics() reports bytes in use, capacity and utilization
//
// Pool: a size-bucketed allocator backed by sync.Pool
//
//   - buffers are recycled through power-of-two buckets
//   - suited to reuse-heavy callers with short-lived arrays
//
// Tracking: a wrapper that counts live allocations
//
//   - detects double and foreign frees
//   - intended as a test collaborator and leak checker
//
// Mapped: page-granular allocation via anonymous memory mappings (unix);
// falls back to Std behavior on platforms without mmap.
//
// # Usage Example
//
//	a := alloc.Default
//	b, err := a.Allocate(1024)
//	if err != nil {
//	    return err
//	}
//	// write to b...
//	b, err = a.Reallocate(b, 2048) // first 1024 bytes preserved
//	if err != nil {
//	    return err
//	}
//	a.Free(b)
//
// # Contract
//
// Allocate returns exactly n zeroed bytes. Reallocate preserves the first
// min(len(buf), n) bytes and may move the region. Free must only be handed
// buffers obtained from the same allocator, exactly once; Tracking is the
// only implementation that detects violations, the others document them as
// caller contract.
//
// # Thread Safety
//
// Std, Pool, Tracking and Mapped are safe for concurrent use. Arena is not;
// callers must synchronize externally, matching the container's own
// single-threaded contract.
package alloc
