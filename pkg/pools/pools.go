// Package pools provides object pooling for reducing GC pressure in the
// enumeration hot loop.
//
//   - Uint64Pool: size-class pooling for node-ID scratch slices
package pools
