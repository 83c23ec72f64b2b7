// Package switchjob provides the aggregate for the shift-switch protocol: a
// driver mid-shift asks to move their assignation to another job, and the
// destination job's contractor accepts or denies the request.
package switchjob
