// Package usage computes which registered fragments an output document uses
// and how far away they are: depth 0 for fragments the document spreads
// directly, depth n for fragments reached only by following n fragment-spread
// edges through other fragments' bodies.
package usage
