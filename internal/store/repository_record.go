package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/driver-records/internal/logger"
	"github.com/MKhiriev/driver-records/internal/utils"
	"github.com/MKhiriev/driver-records/models"
)

// sqlRecordRepository is the [RecordStorage] implementation for the SQL
// backends (PostgreSQL and SQLite). Queries are built per call with the
// placeholder format of the underlying [DB].
type sqlRecordRepository struct {
	db          *DB
	idGenerator utils.IDGenerator
	logger      *logger.Logger
}

// NewSQLRecordRepository constructs a [RecordStorage] backed by db. New
// records get their ids from idGenerator.
func NewSQLRecordRepository(db *DB, idGenerator utils.IDGenerator, logger *logger.Logger) RecordStorage {
	logger.Debug().Str("dialect", db.dialect).Msg("creating sql record repository")
	return &sqlRecordRepository{
		db:          db,
		idGenerator: idGenerator,
		logger:      logger,
	}
}

func (r *sqlRecordRepository) List(ctx context.Context) ([]models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListRecordsQuery(r.db.placeholder)
	if err != nil {
		log.Err(err).Str("func", "*sqlRecordRepository.List").Msg("error building query")
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlRecordRepository.List").
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.Record, 0)
	for rows.Next() {
		var record models.Record
		if err := rows.Scan(&record.ID, &record.Name, &record.Type, &record.Level); err != nil {
			log.Err(err).Str("func", "*sqlRecordRepository.List").Msg("error scanning rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*sqlRecordRepository.List").Msg("error iterating rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return records, nil
}

func (r *sqlRecordRepository) Get(ctx context.Context, id string) (models.Record, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetRecordQuery(r.db.placeholder, id)
	if err != nil {
		log.Err(err).Str("func", "*sqlRecordRepository.Get").Msg("error building query")
		return models.Record{}, err
	}

	var record models.Record
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&record.ID, &record.Name, &record.Type, &record.Level)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Record{}, ErrRecordNotFound
	case err != nil:
		if domainErr := r.db.domainError(err); domainErr != nil {
			return models.Record{}, domainErr
		}
		log.Err(err).Str("func", "*sqlRecordRepository.Get").
			Str("id", id).
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error scanning row")
		return models.Record{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return record, nil
}

func (r *sqlRecordRepository) Create(ctx context.Context, record models.Record) (models.Record, error) {
	log := logger.FromContext(ctx)

	record.ID = r.idGenerator.Generate()

	query, args, err := buildInsertRecordQuery(r.db.placeholder, record)
	if err != nil {
		log.Err(err).Str("func", "*sqlRecordRepository.Create").Msg("error building query")
		return models.Record{}, err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if domainErr := r.db.domainError(err); domainErr != nil {
			return models.Record{}, domainErr
		}
		log.Err(err).Str("func", "*sqlRecordRepository.Create").
			Bool("retryable", r.db.isRetryable(err)).
			Msg("error executing insert")
		return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.Record{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		log.Error().Str("func", "*sqlRecordRepository.Create").Str("id", record.ID).Msg("no rows inserted")
		return models.Record{}, ErrRecordNotSaved
	}

	return record, nil
}

func (r *sqlRecordRepository) Update(ctx context.Context, id string, patch models.RecordPatch) (models.OperationResult, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateRecordQuery(r.db.placeholder, id, patch)
	if err != nil {
		log.Err(err).Str("func", "*sqlRecordRepository.Update").Msg("error building query")
		return models.OperationResult{}, err
	}

	affected, err := r.exec(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlRecordRepository.Update").Str("id", id).Msg("error executing update")
		return models.OperationResult{}, err
	}
	if affected == 0 {
		return models.OperationResult{}, ErrRecordNotFound
	}

	return models.OperationResult{
		ID:            id,
		MatchedCount:  affected,
		ModifiedCount: affected,
	}, nil
}

func (r *sqlRecordRepository) Delete(ctx context.Context, id string) (models.OperationResult, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRecordQuery(r.db.placeholder, id)
	if err != nil {
		log.Err(err).Str("func", "*sqlRecordRepository.Delete").Msg("error building query")
		return models.OperationResult{}, err
	}

	affected, err := r.exec(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlRecordRepository.Delete").Str("id", id).Msg("error executing delete")
		return models.OperationResult{}, err
	}
	if affected == 0 {
		return models.OperationResult{}, ErrRecordNotFound
	}

	return models.OperationResult{
		ID:           id,
		DeletedCount: affected,
	}, nil
}

// exec runs a DML statement and returns the number of affected rows.
func (r *sqlRecordRepository) exec(ctx context.Context, query string, args ...any) (int64, error) {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		if domainErr := r.db.domainError(err); domainErr != nil {
			return 0, domainErr
		}
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return affected, nil
}
