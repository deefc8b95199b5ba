// Package config provides configuration management for naval-tables.
//
// It utilizes Viper for loading configuration from an optional naval-tables.yaml,
// an optional .env file and environment variables, in increasing priority.
// Defaults come from the `default` struct tags of each section.
//
// # Configuration Structure
//
// The Config struct is divided into subsections:
//   - Table: translation files, units/cost directories, suffixes and wiki base URL
//   - Unpack: decoder command line and worker count
//   - Server: HTTP port and API key for the serve command
//   - Storage: S3/MinIO credentials and bucket for published tables
//   - Log: logging level and format
//
// Environment variables map to nested keys by replacing dots with underscores,
// e.g. TABLE_UNITS_DIR sets table.units_dir and UNPACK_DECODER sets unpack.decoder.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Table.WeaponryCSV)
package config
