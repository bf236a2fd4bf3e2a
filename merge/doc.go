// Package merge implements deep merging of raw configuration mappings.
//
// A raw mapping is a map[string]any as produced by decoding a YAML document:
// scalar values, []any sequences, and nested map[string]any mappings.
//
// The merge rule is the core precedence contract of the resolver:
//   - a key present in only one mapping is taken as-is
//   - two mapping values merge recursively, preserving sibling keys
//   - any other collision (scalar, sequence, nil, or mixed shapes) is
//     resolved by taking the overlay's value atomically
//
// Sequences are never merged element-wise. A higher-precedence layer that
// sets a list fully replaces a lower layer's list.
package merge
