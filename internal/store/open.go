// Package store opens the comment.Storage driver selected by configuration.
package store

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/smart-events/board/internal/core/comment"
	"github.com/smart-events/board/internal/core/config"
	"github.com/smart-events/board/internal/store/badgerkv"
	"github.com/smart-events/board/internal/store/jsonfile"
	"github.com/smart-events/board/internal/store/rediskv"
)

// Open returns the configured driver and a function releasing it.
func Open(ctx context.Context, cfg *config.Config, log zerolog.Logger) (comment.Storage, func() error, error) {
	log = log.With().Str("driver", cfg.Storage.Driver).Logger()

	switch cfg.Storage.Driver {
	case config.DriverJSONFile:
		s := jsonfile.NewKVStore(cfg.StoragePath())
		log.Debug().Str("path", s.Path()).Msg("storage opened")
		return s, func() error { return nil }, nil

	case config.DriverBadger:
		s, err := badgerkv.Open(cfg.StoragePath(), log)
		if err != nil {
			return nil, nil, err
		}
		log.Debug().Str("path", cfg.StoragePath()).Msg("storage opened")
		return s, s.Close, nil

	case config.DriverRedis:
		s, err := rediskv.Dial(ctx, rediskv.Options{
			Addr:     cfg.Storage.Redis.Addr,
			Password: cfg.Storage.Redis.Password,
			DB:       cfg.Storage.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		log.Debug().Str("addr", cfg.Storage.Redis.Addr).Msg("storage opened")
		return s, s.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}
