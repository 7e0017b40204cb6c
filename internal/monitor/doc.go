// Package monitor owns the reporting surface of the aperture analyzer:
// structured overlap events for logging, PNG topology plots, and the
// standalone HTML aperture report. It consumes synthesis and overlap
// results as values and never alters classification.
package monitor
