package config

import (
	"errors"
	"path/filepath"
	"reflect"
	"strings"

	"naval-tables/core/logger"
	"naval-tables/core/server"
	"naval-tables/core/storage"
	"naval-tables/core/unpack"
	"naval-tables/feature/weapons"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// FileName is the optional config file looked up next to the .env file.
const FileName = "naval-tables"

// Config is the whole application configuration, one section per concern.
type Config struct {
	Table   weapons.Config `mapstructure:"table"`
	Unpack  unpack.Config  `mapstructure:"unpack"`
	Server  server.Config  `mapstructure:"server"`
	Storage storage.Config `mapstructure:"storage"`
	Log     logger.Config  `mapstructure:"log"`
}

// LoadConfig resolves the configuration found in dir. Sources, lowest priority first:
// struct tag defaults, naval-tables.yaml, .env, process environment.
func LoadConfig(dir string) (*Config, error) {
	// .env is optional
	_ = godotenv.Overload(filepath.Join(dir, ".env"))

	v := viper.New()
	setDefaults(v, reflect.TypeOf(Config{}), "")

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	// TABLE_UNITS_DIR -> table.units_dir
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// setDefaults registers every mapstructure key of t with its `default` tag value.
// Keys are registered even when the default is empty, otherwise AutomaticEnv
// would not see them during Unmarshal.
func setDefaults(v *viper.Viper, t reflect.Type, prefix string) {
	for _, field := range reflect.VisibleFields(t) {
		name, ok := field.Tag.Lookup("mapstructure")
		if !ok || name == "" {
			continue
		}
		if prefix != "" {
			name = prefix + "." + name
		}

		if field.Type.Kind() == reflect.Struct {
			setDefaults(v, field.Type, name)
			continue
		}
		v.SetDefault(name, field.Tag.Get("default"))
	}
}
