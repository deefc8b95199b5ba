package models

// Ship is a unit attributed to a bullet variant.
type Ship struct {
	// ID is the unit file stem (e.g. "germ_battleship_bismarck").
	ID string `json:"id"`
	// Name is the translated short display name.
	Name string `json:"name"`
	// Type is the translated unit type.
	Type string `json:"type"`
	// BattleRating is nil when the cost config has no rank for the unit.
	BattleRating *float64 `json:"battle_rating"`
}

// Record is one bullet variant of one naval weapon, joined with translations and owning ships.
type Record struct {
	// WeaponKey is the decoded weapon file stem.
	WeaponKey string `json:"weapon_key"`
	// WeaponName is the translated weapon name with "cannon"/"gun" suffixes stripped.
	WeaponName string `json:"weapon_name"`
	// WeaponLink is the wiki page title for the weapon, e.g. "SK L/45 (380 mm)".
	WeaponLink string `json:"weapon_link"`

	BulletKey      string `json:"bullet_key"`
	BulletName     string `json:"bullet_name"`
	BulletTypeCode string `json:"bullet_type_code"`
	BulletType     string `json:"bullet_type"`

	// Ships is sorted by display name, then id.
	Ships []Ship `json:"ships"`

	CaliberMm             int     `json:"caliber_mm"`
	Speed                 int     `json:"speed"`
	RateOfFire            float64 `json:"rate_of_fire"`
	MaxDeltaAngle         float64 `json:"max_delta_angle"`
	MaxDeltaAngleVertical float64 `json:"max_delta_angle_vertical"`
	Mass                  float64 `json:"mass"`
	ExplosiveMass         float64 `json:"explosive_mass"`
	FillerPercent         float64 `json:"filler_percent"`
	FuseDelay             float64 `json:"fuse_delay"`
	FuseDelayMeters       float64 `json:"fuse_delay_m"`
	ExplodeThreshold      float64 `json:"explode_threshold"`
	Penetration           float64 `json:"penetration"`
	Cx                    float64 `json:"cx"`
	PenetrationK          float64 `json:"penetration_k"`
}

// ShipIDs returns the unit ids in ship order.
func (r Record) ShipIDs() []string {
	out := make([]string, 0, len(r.Ships))
	for _, s := range r.Ships {
		out = append(out, s.ID)
	}
	return out
}

// ShipNames returns the display names in ship order.
func (r Record) ShipNames() []string {
	out := make([]string, 0, len(r.Ships))
	for _, s := range r.Ships {
		out = append(out, s.Name)
	}
	return out
}

// ShipTypes returns the unit types in ship order.
func (r Record) ShipTypes() []string {
	out := make([]string, 0, len(r.Ships))
	for _, s := range r.Ships {
		out = append(out, s.Type)
	}
	return out
}

// BattleRatings returns the ratings of ships that have one, in ship order.
func (r Record) BattleRatings() []float64 {
	out := make([]float64, 0, len(r.Ships))
	for _, s := range r.Ships {
		if s.BattleRating != nil {
			out = append(out, *s.BattleRating)
		}
	}
	return out
}
