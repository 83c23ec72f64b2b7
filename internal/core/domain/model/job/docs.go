// Package job provides the aggregate root for posted work orders and their
// truck-category requirement lines.
//
// The package includes:
//   - Job: the aggregate root owning details, order number, lifecycle status
//     and requirement lines
//   - TruckCategory: a requirement line whose requested amount materializes as
//     tagged open/occupied slots
//   - Details: the immutable descriptive value object (dates, material, sites)
//   - Status: the Pending -> Scheduled -> Done / Canceled state machine
//
// Key business rules:
//   - Category signatures (truckTypes, truckSubtypes) are pairwise distinct
//     within one job; violating edits are rejected with no change
//   - A category slot is always explicitly open or occupied by exactly one
//     assignation; occupancy survives category edits unless forced
//   - Done and Canceled are terminal; canceling frees every occupied slot
package job
