// Package ships builds reverse indices from decoded unit (ship) files.
//
// Every "*.blkx" file in the units directory describes one unit whose id is the file stem.
// Two indices are produced:
//   - Weapons: weapon file name (basename of commonWeapons[].Weapon.blk) -> unit ids.
//   - Mods: modification name (keys of "modifications") -> unit ids.
//
// Malformed files are logged and skipped. A missing directory yields empty indices.
package ships
