// Package emit renders the textual output of a linking run: cross-file
// import statements and the per-file manifest the downstream type emitter
// consumes.
package emit
