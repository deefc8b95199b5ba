package weapons

import (
	"context"
	"errors"
	"fmt"
	"os"

	"naval-tables/core/unpack"
	"naval-tables/feature/overrides"
	"naval-tables/feature/rating"
	"naval-tables/feature/ships"
	"naval-tables/feature/translation"
	"naval-tables/feature/weapons/models"

	"go.uber.org/zap"
)

// ErrInvalidDir is returned when the weapons directory does not exist.
var ErrInvalidDir = errors.New("invalid directory")

// Request selects the input directories and filter of one run.
type Request struct {
	WeaponsDir string
	// UnitsDir overrides Config.UnitsDir when set.
	UnitsDir string
	Filter   Filter
}

// Service runs the whole extraction pipeline.
type Service struct {
	cfg      Config
	unpacker *unpack.Invoker
	logger   *zap.Logger
}

// NewService creates a new weapons service. A nil unpacker disables decoding.
func NewService(cfg Config, unpacker *unpack.Invoker, logger *zap.Logger) *Service {
	return &Service{cfg: cfg, unpacker: unpacker, logger: logger}
}

// Config returns the service configuration.
func (s *Service) Config() Config {
	return s.cfg
}

// Run decodes missing files, loads every lookup and builds the records.
// Everything is rebuilt from disk on each call.
func (s *Service) Run(ctx context.Context, req Request) ([]models.Record, error) {
	if st, err := os.Stat(req.WeaponsDir); err != nil || !st.IsDir() {
		return nil, fmt.Errorf("%w: weapons directory %q", ErrInvalidDir, req.WeaponsDir)
	}
	unitsDir := req.UnitsDir
	if unitsDir == "" {
		unitsDir = s.cfg.UnitsDir
	}

	// translations are fatal, so check them before starting any decoder
	names, err := translation.Load(s.cfg.WeaponryCSV, s.cfg.UnitsCSV, translation.Options{
		NameSuffix: s.cfg.NameSuffix,
		TypeSuffix: s.cfg.TypeSuffix,
	})
	if err != nil {
		return nil, err
	}

	s.ensureDecoded(ctx, req.WeaponsDir)
	if unitsDir != "" {
		if st, err := os.Stat(unitsDir); err == nil && st.IsDir() {
			s.ensureDecoded(ctx, unitsDir)
		}
	}

	idx := ships.NewIndex()
	if unitsDir != "" {
		if idx, err = ships.Map(unitsDir, s.logger); err != nil {
			return nil, err
		}
	} else {
		s.logger.Warn("No units directory configured, ship columns will be empty")
	}

	costFile := s.cfg.CostFile
	if costFile == "" {
		costFile = rating.DefaultFile
	}
	ratings := rating.Load(s.cfg.CostDir, costFile, s.logger)

	links, err := overrides.Load(s.cfg.OverridesFile)
	if err != nil {
		s.logger.Warn("Failed to read link overrides, using defaults", zap.String("file", s.cfg.OverridesFile), zap.Error(err))
		links = overrides.Defaults()
	}

	s.logger.Debug("Lookups loaded",
		zap.Int("units", idx.Units),
		zap.Int("weapon_files", len(idx.Weapons)),
		zap.Int("modifications", len(idx.Mods)),
		zap.Int("ratings", len(ratings)),
	)

	filter := req.Filter
	if filter.EconomySuffix == "" {
		filter.EconomySuffix = s.cfg.EconomySuffix
	}

	builder := NewBuilder(Lookups{
		Names:     names,
		Ships:     idx,
		Ratings:   ratings,
		Overrides: links,
	}, filter, s.logger)

	records, err := builder.Build(req.WeaponsDir)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Weapon table built", zap.Int("records", len(records)))
	return records, nil
}

func (s *Service) ensureDecoded(ctx context.Context, dir string) {
	if s.unpacker == nil {
		return
	}
	summary, err := s.unpacker.EnsureDecoded(ctx, dir)
	if err != nil {
		s.logger.Warn("Unpack step failed", zap.String("dir", dir), zap.Error(err))
		return
	}
	if summary.Invoked > 0 {
		s.logger.Info("Unpacked raw files",
			zap.String("dir", dir),
			zap.Int("invoked", summary.Invoked),
			zap.Int("failed", summary.Failed),
		)
	}
}
