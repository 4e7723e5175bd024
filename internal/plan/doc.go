// Package plan turns one output file's fragment depth map into the ordered
// external-fragment references and the deduplicated cross-file import
// statements that file needs.
//
// Only fragments spread directly by the output document (depth 0) produce
// import statements. A transitively used fragment's generated artifact is
// assumed to ride along with whichever directly imported fragment pulled it
// in; importing it again would be redundant. This is a deliberate
// content-sharing policy, not an accident - changing it silently changes the
// correctness of generated code.
package plan
