package weapons

// Config holds the input locations and table options for the weapons feature.
type Config struct {
	// WeaponsDir is the directory with weapon .blk/.blkx files (serve command only;
	// the build command takes it as an argument).
	WeaponsDir string `mapstructure:"weapons_dir" default:""`
	// UnitsDir is the directory with ship .blk/.blkx files. Optional.
	UnitsDir string `mapstructure:"units_dir" default:""`
	// CostDir is the directory holding the decoded cost config.
	CostDir string `mapstructure:"cost_dir" default:""`
	// CostFile is the decoded cost config file name.
	CostFile string `mapstructure:"cost_file" default:"wpcost.blkx"`
	// WeaponryCSV is the weapon/bullet translation file.
	WeaponryCSV string `mapstructure:"weaponry_csv" default:"lang/units_weaponry.csv"`
	// UnitsCSV is the unit name/type translation file.
	UnitsCSV string `mapstructure:"units_csv" default:"lang/units.csv"`
	// OverridesFile is a YAML map of wiki link replacements.
	OverridesFile string `mapstructure:"overrides_file" default:"link_overrides.yaml"`
	// NameSuffix marks short unit names in units.csv.
	NameSuffix string `mapstructure:"name_suffix" default:"_1"`
	// TypeSuffix marks unit types in units.csv.
	TypeSuffix string `mapstructure:"type_suffix" default:"_2"`
	// EconomySuffix marks unit ids that never appear in ship lists.
	EconomySuffix string `mapstructure:"economy_suffix" default:"_economy"`
	// WikiBaseURL prefixes unit ids in HTML ship links.
	WikiBaseURL string `mapstructure:"wiki_base_url" default:"https://wiki.warthunder.com/unit/"`
}
