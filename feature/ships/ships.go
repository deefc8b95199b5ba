package ships

import (
	"os"
	"path"
	"sort"
	"strings"

	"naval-tables/core/blk"

	"go.uber.org/zap"
)

// Set is a set of unit ids.
type Set map[string]struct{}

// Add inserts id.
func (s Set) Add(id string) {
	s[id] = struct{}{}
}

// Has reports whether id is in the set.
func (s Set) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the ids in lexical order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Index maps weapon files and modification names to the units owning them.
type Index struct {
	Weapons map[string]Set
	Mods    map[string]Set
	// Units is the number of unit files indexed.
	Units int
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{
		Weapons: make(map[string]Set),
		Mods:    make(map[string]Set),
	}
}

// ShipsWithWeapon returns the units mounting weaponFile (e.g. "380mm_skc34.blk").
func (idx *Index) ShipsWithWeapon(weaponFile string) Set {
	return idx.Weapons[weaponFile]
}

// ShipsWithMod returns the units carrying modification name.
func (idx *Index) ShipsWithMod(name string) Set {
	return idx.Mods[name]
}

func (idx *Index) add(m map[string]Set, key, unit string) {
	s, ok := m[key]
	if !ok {
		s = make(Set)
		m[key] = s
	}
	s.Add(unit)
}

// Map scans dir for decoded unit files and builds the index.
func Map(dir string, logger *zap.Logger) (*Index, error) {
	idx := NewIndex()

	if st, err := os.Stat(dir); err != nil || !st.IsDir() {
		logger.Warn("Units directory not found, ship columns will be empty", zap.String("dir", dir))
		return idx, nil
	}

	files, err := blk.Glob(dir, blk.DecodedExt)
	if err != nil {
		return nil, err
	}

	for _, file := range files {
		obj, err := blk.ReadFile(file)
		if err != nil {
			logger.Warn("Skipping unit file", zap.String("file", file), zap.Error(err))
			continue
		}
		idx.addUnit(blk.Stem(file), obj)
	}

	return idx, nil
}

func (idx *Index) addUnit(unit string, obj blk.Object) {
	idx.Units++

	if weapons, ok := obj.Get("commonWeapons"); ok {
		blk.Each(weapons, func(entry map[string]any) {
			blk.Each(entry["Weapon"], func(w map[string]any) {
				p := blk.String(w, "blk")
				if p == "" {
					return
				}
				// blk paths use forward slashes regardless of platform
				idx.add(idx.Weapons, path.Base(strings.ReplaceAll(p, "\\", "/")), unit)
			})
		})
	}

	if mods, ok := obj.Get("modifications"); ok {
		blk.Each(mods, func(m map[string]any) {
			for name := range m {
				idx.add(idx.Mods, name, unit)
			}
		})
	}
}
