package rating

import (
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// DefaultFile is the decoded cost config name.
const DefaultFile = "wpcost.blkx"

// RankField holds the rank used for naval battle ratings.
const RankField = "economicRankHistorical"

// Ratings maps unit ids to battle ratings.
type Ratings map[string]float64

// Lookup returns the battle rating of unit.
func (r Ratings) Lookup(unit string) (float64, bool) {
	br, ok := r[unit]
	return br, ok
}

// FromRank converts an economic rank to a battle rating. The value is exact;
// rounding is left to display.
func FromRank(rank float64) float64 {
	return rank/3 + 1
}

// Load reads dir/filename. The root may be an object keyed by unit id or an array of
// entries carrying a "name" field.
func Load(dir, filename string, logger *zap.Logger) Ratings {
	out := make(Ratings)
	path := filepath.Join(dir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Cost config not readable, battle ratings will be empty", zap.String("file", path), zap.Error(err))
		return out
	}
	if !gjson.ValidBytes(data) {
		logger.Warn("Cost config is not valid JSON, skipping", zap.String("file", path))
		return out
	}

	root := gjson.ParseBytes(data)
	switch {
	case root.IsObject():
		root.ForEach(func(key, entry gjson.Result) bool {
			out.add(key.String(), entry)
			return true
		})
	case root.IsArray():
		root.ForEach(func(_, entry gjson.Result) bool {
			if name := entry.Get("name"); name.Exists() {
				out.add(name.String(), entry)
			}
			return true
		})
	default:
		logger.Warn("Cost config root is neither object nor array, skipping", zap.String("file", path))
	}

	return out
}

func (r Ratings) add(unit string, entry gjson.Result) {
	if !entry.IsObject() {
		return
	}
	rank := entry.Get(RankField)
	if rank.Type != gjson.Number {
		return
	}
	r[unit] = FromRank(rank.Float())
}
