package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/driver-records/internal/config"
	"github.com/MKhiriev/driver-records/internal/logger"
	"github.com/MKhiriev/driver-records/internal/utils"
)

// Storages groups the storage dependencies of the service layer together
// with the resources that must be released on shutdown.
type Storages struct {
	RecordStorage RecordStorage

	closers []func(ctx context.Context) error
}

// NewStorages connects to the backend selected by cfg.Driver, runs schema
// migrations for the SQL drivers and wires the matching [RecordStorage].
func NewStorages(ctx context.Context, cfg config.DB, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating new storages...")

	switch cfg.Driver {
	case config.DriverMongo:
		client, err := NewConnectMongo(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("mongo connection error: %w", err)
		}

		collection := client.Database(cfg.Database).Collection(recordsCollection)
		return &Storages{
			RecordStorage: NewMongoRecordRepository(collection, logger),
			closers:       []func(ctx context.Context) error{client.Disconnect},
		}, nil

	case config.DriverPostgres, config.DriverSQLite:
		connect := NewConnectPostgres
		if cfg.Driver == config.DriverSQLite {
			connect = NewConnectSQLite
		}

		db, err := connect(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("%s connection error: %w", cfg.Driver, err)
		}

		if err := db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		return &Storages{
			RecordStorage: NewSQLRecordRepository(db, utils.NewUUIDGenerator(), logger),
			closers: []func(ctx context.Context) error{
				func(context.Context) error { return db.Close() },
			},
		}, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
}

// Close releases every connection opened by [NewStorages].
func (s *Storages) Close(ctx context.Context) error {
	var errs error
	for _, closeFn := range s.closers {
		errs = errors.Join(errs, closeFn(ctx))
	}

	return errs
}
