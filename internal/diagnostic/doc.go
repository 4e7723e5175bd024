// Package diagnostic provides structured findings produced while linking
// documents: dangling fragment spreads, suspicious configurations and similar
// issues. Warnings are reported without aborting a run; errors fail it.
package diagnostic
