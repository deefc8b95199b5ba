package unpack

// Config holds configuration for the external decoder.
type Config struct {
	// Decoder is the command line invoked with the raw file path appended.
	Decoder string `mapstructure:"decoder" default:"python blk_unpack_ng.py"`
	// Workers is the maximum number of concurrent decoder processes.
	Workers int `mapstructure:"workers" default:"5"`
	// Disabled skips the unpack step entirely.
	Disabled bool `mapstructure:"disabled" default:"false"`
}
