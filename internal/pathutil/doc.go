// Package pathutil decomposes filesystem paths into renameable components and
// provides component-wise prefix operations for the rename pipeline.
//
// All comparisons operate on path elements rather than raw bytes, so a prefix
// like "/data/x" never matches "/data/xx". Paths are never cleaned: relative
// markers and repeated separators survive decomposition exactly as given,
// which keeps cumulative sub-paths consistent with the caller's arguments.
package pathutil
