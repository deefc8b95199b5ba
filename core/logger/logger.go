package logger

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a zap logger writing to stderr, so tables on stdout stay clean.
// Level "debug" selects zap's development preset; anything else the production one.
func New(cfg *Config) (*zap.Logger, error) {
	zc := preset(cfg.Level)

	if lvl, err := zapcore.ParseLevel(cfg.Level); err == nil {
		zc.Level = zap.NewAtomicLevelAt(lvl)
	}

	switch cfg.Format {
	case "console":
		zc.Encoding = "console"
		zc.DisableStacktrace = true
		zc.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	default:
		zc.Encoding = "json"
	}

	zc.EncoderConfig.TimeKey = "time"
	zc.EncoderConfig.LevelKey = "level"
	zc.EncoderConfig.MessageKey = "message"
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}

func preset(level string) zap.Config {
	if level == "debug" {
		return zap.NewDevelopmentConfig()
	}
	zc := zap.NewProductionConfig()
	// one warning per skipped file must survive
	zc.Sampling = nil
	return zc
}

// WithRayID returns l with the request's ray_id field, or l unchanged outside a traced request.
func WithRayID(l *zap.Logger, c *fiber.Ctx) *zap.Logger {
	if rid, ok := c.Locals("ray_id").(string); ok && rid != "" {
		return l.With(zap.String("ray_id", rid))
	}
	return l
}
