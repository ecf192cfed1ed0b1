// Package arena provides a forward-only, block-allocated store with
// stable addresses: once an element is placed, its address stays valid
// until a Rewind/RewindToMark/Clear past it.
//
// What & why:
//
//	The AD tape needs to hand out pointers (or, here, slices) into its
//	own storage that remain valid for the life of the tape, while still
//	supporting O(1) append and bulk "N contiguous elements at once"
//	allocation for a node's derivative/adjoint-pointer arrays. A plain
//	growing slice cannot do this: append can reallocate and invalidate
//	every previously returned pointer. Arena never reallocates a live
//	block; once a block is full it starts a new one.
//
// Determinism:
//
//	Iteration order always matches insertion order. Rewind/RewindToMark
//	trim from the tail; nothing already returned before the retained mark
//	ever moves.
//
// Complexity:
//
//	EmplaceBack / EmplaceBackN: amortized O(1) (occasional new-block
//	allocation). RewindToMark: O(blocks from the first block up to the
//	mark).
//	Find: O(n) — debug/test tooling, not a hot path.
package arena
