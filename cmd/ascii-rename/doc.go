// Command ascii-rename renames filesystem paths whose names contain
// non-ASCII or shell-hazardous characters into shell-safe ASCII equivalents,
// deepest paths first so renamed parents never strand their children.
package main
