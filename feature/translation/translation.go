package translation

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// WeaponPrefix marks weapon rows in the weaponry file.
const WeaponPrefix = "weapons/"

// ErrMissingFile is returned when a required translation file does not exist.
var ErrMissingFile = errors.New("translation file not found")

// Options controls how unit keys are split into names and types.
type Options struct {
	// NameSuffix marks the short display name of a unit (e.g. "_1").
	NameSuffix string
	// TypeSuffix marks the unit type string (e.g. "_2").
	TypeSuffix string
}

// DefaultOptions returns the suffixes used by the shipped units.csv.
func DefaultOptions() Options {
	return Options{NameSuffix: "_1", TypeSuffix: "_2"}
}

// Table holds every lookup loaded from the translation files.
type Table struct {
	weapons   map[string]string
	bullets   map[string]string
	unitNames map[string]string
	unitTypes map[string]string
}

// Entries seeds a Table directly, mainly for tests and tooling.
type Entries struct {
	Weapons   map[string]string
	Bullets   map[string]string
	UnitNames map[string]string
	UnitTypes map[string]string
}

// New builds a Table from prepared entries. The maps are copied.
func New(e Entries) *Table {
	return &Table{
		weapons:   copyMap(e.Weapons),
		bullets:   copyMap(e.Bullets),
		unitNames: copyMap(e.UnitNames),
		unitTypes: copyMap(e.UnitTypes),
	}
}

func copyMap(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Load reads the weaponry and units files into a Table.
func Load(weaponryPath, unitsPath string, opts Options) (*Table, error) {
	t := &Table{
		weapons:   make(map[string]string),
		bullets:   make(map[string]string),
		unitNames: make(map[string]string),
		unitTypes: make(map[string]string),
	}

	if err := readRows(weaponryPath, t.addWeaponryRow); err != nil {
		return nil, err
	}
	if err := readRows(unitsPath, func(key, value string) {
		t.addUnitRow(key, value, opts)
	}); err != nil {
		return nil, err
	}

	return t, nil
}

func (t *Table) addWeaponryRow(key, value string) {
	if strings.HasPrefix(key, WeaponPrefix) {
		t.weapons[strings.TrimPrefix(key, WeaponPrefix)] = value
		return
	}
	t.bullets[key] = value
}

func (t *Table) addUnitRow(key, value string, opts Options) {
	if strings.Contains(key, "/") {
		return
	}
	switch {
	case opts.NameSuffix != "" && strings.HasSuffix(key, opts.NameSuffix):
		t.unitNames[strings.TrimSuffix(key, opts.NameSuffix)] = value
	case opts.TypeSuffix != "" && strings.HasSuffix(key, opts.TypeSuffix):
		t.unitTypes[strings.TrimSuffix(key, opts.TypeSuffix)] = value
	}
}

// WeaponName returns the display name of a weapon file stem.
func (t *Table) WeaponName(key string) string {
	return lookup(t.weapons, key)
}

// BulletName returns the display name of a bullet.
func (t *Table) BulletName(key string) string {
	return lookup(t.bullets, key)
}

// UnitName returns the short display name of a unit.
func (t *Table) UnitName(key string) string {
	return lookup(t.unitNames, key)
}

// UnitType returns the type string of a unit.
func (t *Table) UnitType(key string) string {
	if v, ok := t.unitTypes[key]; ok {
		return v
	}
	return key + " is unknown"
}

// Len returns the number of entries per table, mostly for logging.
func (t *Table) Len() (weapons, bullets, unitNames, unitTypes int) {
	return len(t.weapons), len(t.bullets), len(t.unitNames), len(t.unitTypes)
}

func lookup(m map[string]string, key string) string {
	if v, ok := m[key]; ok {
		return v
	}
	return key
}

// readRows calls add for every row with at least a key and a value.
func readRows(path string, add func(key, value string)) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrMissingFile, path)
		}
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	for {
		row, err := r.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		if len(row) < 2 {
			continue
		}
		add(row[0], row[1])
	}
}
