package storage

import "time"

// Config holds the object storage settings used when publishing tables.
type Config struct {
	// Endpoint is host:port of the S3 API. A scheme prefix is tolerated.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`
	// Bucket receives the published tables. It is created on first upload.
	Bucket string `mapstructure:"bucket" default:"naval-tables"`
	Region string `mapstructure:"region" default:""`
	// Prefix is prepended to every published object name.
	Prefix string `mapstructure:"prefix" default:"tables/"`
	// TimeoutSeconds bounds dialing, TLS handshake and the first response byte.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

// Timeout returns the connection timeout, 30s when unset.
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}
