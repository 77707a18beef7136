// Package framepool provides a fixed-capacity, allocation-free pool of
// audio-frame buffers for real-time use. All backing storage is allocated
// once at construction; Allocate and Release are lock-free, never block and
// never touch the heap, so they are safe to call from audio callback
// contexts.
//
// Each slot hands out a BufferHeader that borrows the slot's backing
// store. Headers are validated by magic number and checksum on release;
// double releases and foreign pointers are rejected without corrupting
// other slots. A release fully completes, including metadata clearing,
// before the slot becomes visible to a subsequent allocation.
package framepool
