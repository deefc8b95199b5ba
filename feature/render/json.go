package render

import (
	"encoding/json"
	"io"

	"naval-tables/feature/weapons/models"
)

type jsonShip struct {
	Name         string   `json:"name"`
	BattleRating *float64 `json:"battle_rating"`
	Type         string   `json:"type"`
}

type jsonRecord struct {
	Weapon                string     `json:"weapon"`
	Bullet                string     `json:"bullet"`
	BulletType            string     `json:"bullet_type"`
	Ships                 []jsonShip `json:"ships"`
	CaliberMm             int        `json:"caliber_mm"`
	Speed                 int        `json:"speed"`
	RateOfFire            float64    `json:"rate_of_fire"`
	MaxDeltaAngle         float64    `json:"max_delta_angle"`
	MaxDeltaAngleVertical float64    `json:"max_delta_angle_vertical"`
	Mass                  float64    `json:"mass"`
	ExplosiveMass         float64    `json:"explosive_mass"`
	FillerPercent         float64    `json:"filler_percent"`
	FuseDelay             float64    `json:"fuse_delay"`
	FuseDelayMeters       float64    `json:"fuse_delay_m"`
	ExplodeThreshold      float64    `json:"explode_threshold"`
	Penetration           float64    `json:"penetration"`
	Cx                    float64    `json:"cx"`
	PenetrationK          float64    `json:"penetration_k"`
}

func renderJSON(w io.Writer, records []models.Record, opts Options) error {
	out := make([]jsonRecord, 0, len(records))
	for _, r := range records {
		v := newRow(r, opts.RawNames)

		ships := make([]jsonShip, 0, len(r.Ships))
		for i, s := range r.Ships {
			ships = append(ships, jsonShip{Name: v.ships[i], BattleRating: s.BattleRating, Type: v.types[i]})
		}

		out = append(out, jsonRecord{
			Weapon:                v.weapon,
			Bullet:                v.bullet,
			BulletType:            v.bulletType,
			Ships:                 ships,
			CaliberMm:             r.CaliberMm,
			Speed:                 r.Speed,
			RateOfFire:            r.RateOfFire,
			MaxDeltaAngle:         r.MaxDeltaAngle,
			MaxDeltaAngleVertical: r.MaxDeltaAngleVertical,
			Mass:                  r.Mass,
			ExplosiveMass:         r.ExplosiveMass,
			FillerPercent:         r.FillerPercent,
			FuseDelay:             r.FuseDelay,
			FuseDelayMeters:       r.FuseDelayMeters,
			ExplodeThreshold:      r.ExplodeThreshold,
			Penetration:           r.Penetration,
			Cx:                    r.Cx,
			PenetrationK:          r.PenetrationK,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
