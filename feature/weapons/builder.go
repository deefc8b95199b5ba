package weapons

import (
	"fmt"
	"sort"
	"strings"

	"naval-tables/core/blk"
	"naval-tables/feature/overrides"
	"naval-tables/feature/penetration"
	"naval-tables/feature/rating"
	"naval-tables/feature/ships"
	"naval-tables/feature/translation"
	"naval-tables/feature/weapons/models"

	"go.uber.org/zap"
)

// Default caliber window in millimetres, inclusive.
const (
	DefaultMinCaliberMm = 280.0
	DefaultMaxCaliberMm = 500.0
)

// skipKeys are top-level objects that never describe an ammunition variant.
var skipKeys = map[string]bool{
	"bullet":              true,
	"attackShipsPriority": true,
}

// bulletTypes maps bullet type codes to the abbreviations shown in tables.
var bulletTypes = map[string]string{
	"apc_tank":               "APC",
	"apcbc_tank":             "APCBC",
	"sap_tank":               "SAP",
	"sapcbc_tank":            "SAPCBC",
	"he_frag_tank":           "HE",
	"he_frag_dist_fuse":      "HE-TF",
	"he_frag_base_fuse_tank": "HE-BF",
}

// BulletType returns the abbreviation for code, or code itself when unknown.
func BulletType(code string) string {
	if v, ok := bulletTypes[code]; ok {
		return v
	}
	return code
}

// Filter selects which weapons and ships make it into the table.
type Filter struct {
	MinCaliberMm  float64
	MaxCaliberMm  float64
	EconomySuffix string
}

// DefaultFilter returns the 280-500 mm window with the "_economy" suffix excluded.
func DefaultFilter() Filter {
	return Filter{
		MinCaliberMm:  DefaultMinCaliberMm,
		MaxCaliberMm:  DefaultMaxCaliberMm,
		EconomySuffix: "_economy",
	}
}

// InRange reports whether caliberMm lies inside the inclusive window.
func (f Filter) InRange(caliberMm float64) bool {
	return caliberMm >= f.MinCaliberMm && caliberMm <= f.MaxCaliberMm
}

// Lookups bundles the read-only tables a Builder joins against.
type Lookups struct {
	Names     *translation.Table
	Ships     *ships.Index
	Ratings   rating.Ratings
	Overrides overrides.Map
}

// Builder turns decoded weapon files into records.
type Builder struct {
	lookups Lookups
	filter  Filter
	logger  *zap.Logger
}

// NewBuilder creates a Builder. Nil ship index and ratings are treated as empty.
func NewBuilder(lookups Lookups, filter Filter, logger *zap.Logger) *Builder {
	if lookups.Ships == nil {
		lookups.Ships = ships.NewIndex()
	}
	if lookups.Ratings == nil {
		lookups.Ratings = rating.Ratings{}
	}
	return &Builder{lookups: lookups, filter: filter, logger: logger}
}

// Build reads every decoded weapon file in dir, in file name order.
// Unreadable or non-object files are skipped with a warning. A field of the wrong
// type aborts the whole build.
func (b *Builder) Build(dir string) ([]models.Record, error) {
	files, err := blk.Glob(dir, blk.DecodedExt)
	if err != nil {
		return nil, fmt.Errorf("failed to list weapons in %s: %w", dir, err)
	}

	var records []models.Record
	for _, file := range files {
		obj, err := blk.ReadFile(file)
		if err != nil {
			b.logger.Warn("Skipping weapon file", zap.String("file", file), zap.Error(err))
			continue
		}

		recs, err := b.BuildWeapon(file, obj)
		if err != nil {
			b.logger.Error("Invalid weapon data", zap.String("file", file), zap.Error(err))
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		records = append(records, recs...)
	}

	return records, nil
}

// BuildWeapon returns the records for one decoded weapon file.
// It returns nothing for non-naval weapons and calibers outside the filter.
func (b *Builder) BuildWeapon(file string, obj blk.Object) ([]models.Record, error) {
	fields := obj.Map()

	defaultBullet, ok := blk.First(fields["bullet"])
	if !ok {
		defaultBullet = map[string]any{}
	}

	caliber, err := blk.Number(defaultBullet, "caliber")
	if err != nil {
		return nil, fmt.Errorf("bullet: %w", err)
	}
	weaponType, err := blk.Number(fields, "weaponType")
	if err != nil {
		return nil, err
	}
	if weaponType != 0 || !b.filter.InRange(penetration.Round(caliber*1000, 3)) {
		return nil, nil
	}

	w := weapon{
		key:         blk.Stem(file),
		rawName:     blk.RawName(file),
		caliberMm:   penetration.RoundInt(caliber * 1000),
		defaultName: blk.String(defaultBullet, "bulletName"),
	}
	if w.shotFreq, err = blk.Number(fields, "shotFreq"); err != nil {
		return nil, err
	}
	if w.maxDeltaAngle, err = blk.Number(fields, "maxDeltaAngle"); err != nil {
		return nil, err
	}
	if w.maxDeltaAngleVertical, err = blk.Number(fields, "maxDeltaAngleVertical"); err != nil {
		return nil, err
	}
	w.name = cleanWeaponName(b.lookups.Names.WeaponName(w.key))
	w.link = b.lookups.Overrides.Resolve(fmt.Sprintf("%s (%d mm)", w.name, w.caliberMm))

	var records []models.Record
	for _, key := range obj.Keys() {
		if skipKeys[key] {
			continue
		}
		holder, ok := fields[key].(map[string]any)
		if !ok {
			continue
		}
		shell, ok := blk.AsMap(holder["bullet"])
		if !ok {
			continue
		}

		rec, err := b.buildVariant(w, key, shell)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

// weapon holds the per-file values shared by all of its variants.
type weapon struct {
	key                   string
	rawName               string
	name                  string
	link                  string
	caliberMm             int
	defaultName           string
	shotFreq              float64
	maxDeltaAngle         float64
	maxDeltaAngleVertical float64
}

func (b *Builder) buildVariant(w weapon, key string, shell map[string]any) (models.Record, error) {
	bulletName := blk.String(shell, "bulletName")
	if bulletName == "" {
		bulletName = key
	}
	typeCode := blk.String(shell, "bulletType")

	// fields used in arithmetic must be numeric
	var nums [4]float64
	for i, field := range []string{"mass", "explosiveMass", "speed", "fuseDelay"} {
		v, err := blk.Number(shell, field)
		if err != nil {
			return models.Record{}, err
		}
		nums[i] = v
	}
	mass, explosiveMass, speed, fuseDelay := nums[0], nums[1], nums[2], nums[3]

	// copied through as-is
	cx := b.passThrough(w, key, shell, "Cx")
	explodeThreshold := b.passThrough(w, key, shell, "explodeTreshold")

	k := 1.0
	if kinetic, ok := blk.Path(shell, "damage", "kinetic"); ok {
		var err error
		if k, err = blk.NumberOr(kinetic, "demarrePenetrationK", 1); err != nil {
			return models.Record{}, err
		}
	}

	var filler, pen float64
	if mass != 0 {
		filler = penetration.Round(explosiveMass/mass*100, 2)
	}
	if mass > 0 {
		pen = penetration.Round(penetration.DeMarre(float64(w.caliberMm), mass, speed, explosiveMass, penetration.IsCapped(typeCode))*k, 2)
	}

	return models.Record{
		WeaponKey:             w.key,
		WeaponName:            w.name,
		WeaponLink:            w.link,
		BulletKey:             bulletName,
		BulletName:            b.lookups.Names.BulletName(bulletName),
		BulletTypeCode:        typeCode,
		BulletType:            BulletType(typeCode),
		Ships:                 b.owners(w, key, bulletName),
		CaliberMm:             w.caliberMm,
		Speed:                 penetration.RoundInt(speed),
		RateOfFire:            penetration.Round(w.shotFreq*60, 2),
		MaxDeltaAngle:         w.maxDeltaAngle,
		MaxDeltaAngleVertical: w.maxDeltaAngleVertical,
		Mass:                  mass,
		ExplosiveMass:         explosiveMass,
		FillerPercent:         filler,
		FuseDelay:             fuseDelay,
		FuseDelayMeters:       penetration.Round(fuseDelay*speed, 2),
		ExplodeThreshold:      explodeThreshold,
		Penetration:           pen,
		Cx:                    cx,
		PenetrationK:          k,
	}, nil
}

// passThrough reads a field that is only displayed. A non-numeric value is shown as 0
// with a warning instead of aborting the build.
func (b *Builder) passThrough(w weapon, key string, shell map[string]any, field string) float64 {
	v, ok := blk.Lenient(shell, field)
	if !ok {
		b.logger.Warn("Non-numeric display field, using 0",
			zap.String("weapon", w.key),
			zap.String("variant", key),
			zap.String("field", field),
			zap.Any("value", shell[field]),
		)
	}
	return v
}

// owners returns the ships carrying a variant: every ship mounting the weapon when the
// variant is the default ammunition, plus every ship with a matching modification.
func (b *Builder) owners(w weapon, key, bulletName string) []models.Ship {
	ids := make(ships.Set)
	if w.defaultName != "" && (bulletName == w.defaultName || key == w.defaultName) {
		for id := range b.lookups.Ships.ShipsWithWeapon(w.rawName) {
			ids.Add(id)
		}
	}
	for id := range b.lookups.Ships.ShipsWithMod(key) {
		ids.Add(id)
	}
	for id := range b.lookups.Ships.ShipsWithMod(bulletName) {
		ids.Add(id)
	}

	out := make([]models.Ship, 0, len(ids))
	for _, id := range ids.Sorted() {
		if b.filter.EconomySuffix != "" && strings.HasSuffix(id, b.filter.EconomySuffix) {
			continue
		}
		ship := models.Ship{
			ID:   id,
			Name: b.lookups.Names.UnitName(id),
			Type: b.lookups.Names.UnitType(id),
		}
		if br, ok := b.lookups.Ratings.Lookup(id); ok {
			ship.BattleRating = &br
		}
		out = append(out, ship)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Name < out[j].Name
	})
	return out
}

// cleanWeaponName drops the generic "cannon"/"gun" words and commas from a display name.
func cleanWeaponName(name string) string {
	name = strings.ReplaceAll(name, " cannon", "")
	name = strings.ReplaceAll(name, " gun", "")
	return strings.ReplaceAll(name, ", ", " ")
}
