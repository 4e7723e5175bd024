// Package registry builds the authoritative fragment registry for one
// generation run.
//
// Build pipeline:
//  1. Scan every document in order, every fragment definition in order
//  2. Resolve each fragment's type condition against the schema (fatal on
//     the first unknown type)
//  3. Expand the condition into possible concrete types and compute the
//     generated symbol names the fragment will export
//  4. Detect same-name fragments: identical bodies are deduplicated,
//     conflicting bodies are collected and reported together at the end
//
// The resulting Registry is immutable and shared by every output file's
// planning step.
package registry
