// Package kernel provides shared value objects for the hauling domain model:
// UUID identifiers and geographic primitives (GeoPoint, Site). All types are
// immutable, validated at construction, and safe for concurrent use.
package kernel
