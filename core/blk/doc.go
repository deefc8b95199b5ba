// Package blk reads decoded game configuration dumps.
//
// The external decoder turns every binary ".blk" file into a sibling ".blkx"
// file holding JSON. The root of that JSON is not stable across files: it may
// be an object, an array wrapping a single object, or an array of objects that
// together describe one definition.
//
// # Root Shapes
//
// Parse resolves the root once into a Root tagged with its Kind:
//   - KindObject: the root is a single object (or an array of exactly one object).
//   - KindObjectList: the root is an array of objects to be merged.
//   - KindInvalid: anything else (scalars, mixed arrays).
//
// Root.Object merges an object list into one canonical Object. On conflicting
// keys the later element wins; a key keeps the position of its first occurrence.
//
// # Field Access
//
// Values inside an Object are the generic JSON tree (map[string]any, []any,
// float64, string, bool). Number, String and Path read typed fields; a present
// field with the wrong JSON type is reported as a *FieldError.
//
// # Usage
//
//	obj, err := blk.ReadFile("weapons/380mm_skc34.blkx")
//	if errors.Is(err, blk.ErrNotObject) {
//	    // skip
//	}
//	caliber, err := blk.Number(bullet, "caliber")
package blk
