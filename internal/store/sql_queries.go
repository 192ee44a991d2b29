// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/driver-records/models"
)

const recordsTable = "records"

var recordColumns = []string{"id", "name", "type", "level"}

// buildListRecordsQuery selects every record ordered by id. SQL ids are
// UUIDv7, so the order matches creation order.
func buildListRecordsQuery(ph sq.PlaceholderFormat) (string, []any, error) {
	query, args, err := sq.Select(recordColumns...).
		From(recordsTable).
		OrderBy("id").
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildGetRecordQuery(ph sq.PlaceholderFormat, id string) (string, []any, error) {
	query, args, err := sq.Select(recordColumns...).
		From(recordsTable).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildInsertRecordQuery(ph sq.PlaceholderFormat, record models.Record) (string, []any, error) {
	query, args, err := sq.Insert(recordsTable).
		Columns(recordColumns...).
		Values(record.ID, record.Name, record.Type, string(record.Level)).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildUpdateRecordQuery sets only the fields present in patch. An empty
// patch yields ErrBuildingSQLQuery.
func buildUpdateRecordQuery(ph sq.PlaceholderFormat, id string, patch models.RecordPatch) (string, []any, error) {
	set := make(map[string]any, 3)
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Type != nil {
		set["type"] = *patch.Type
	}
	if patch.Level != nil {
		set["level"] = string(*patch.Level)
	}

	query, args, err := sq.Update(recordsTable).
		SetMap(set).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

func buildDeleteRecordQuery(ph sq.PlaceholderFormat, id string) (string, []any, error) {
	query, args, err := sq.Delete(recordsTable).
		Where(sq.Eq{"id": id}).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
