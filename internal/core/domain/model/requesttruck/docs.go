// Package requesttruck provides the aggregate for foreman capacity requests:
// proto-jobs with work details and wanted truck lines, queued for a
// contractor to fulfill by creating a real job from them.
package requesttruck
