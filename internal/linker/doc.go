// Package linker runs the full pipeline for one generation run:
//
//  1. Load schema and documents
//  2. Build the fragment registry (once, before any file is planned)
//  3. For every document: resolve fragment usage, plan imports, render the
//     output manifest
//
// Every per-file planning step reads the same immutable registry; no state
// is shared between files.
package linker
