// Package weapons builds the naval weapon table.
//
// The Builder joins decoded weapon files against the lookups (translations, ship
// index, battle ratings and link overrides) and emits one models.Record per
// ammunition variant. The Service wires the whole pipeline together: it decodes
// missing files, loads every lookup from disk and runs the Builder. Nothing is
// cached between runs.
//
// # HTTP
//
// When a weapons directory is configured the feature registers:
//
//	GET /weapons?format=wiki|html|json|csv|xlsx&min=280&max=500&raw=false
//
// Every request rebuilds the table from disk.
package weapons
