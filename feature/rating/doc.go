// Package rating loads unit battle ratings from the decoded cost config (wpcost.blkx).
//
// Only economicRankHistorical is read; it is converted to the displayed scale with
// (rank / 3) + 1. A missing or malformed file is logged and yields an empty map.
package rating
