// Package schedule provides the aggregate for a job's concrete execution: the
// ScheduledJob with its driver/truck assignations and the
// Pending -> Started -> Done / Canceled lifecycle driven by clock-in and
// clock-out events from the timer collaborator.
package schedule
