// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/driver-records/models"
)

func ptr[T any](v T) *T { return &v }

func Test_buildListRecordsQuery(t *testing.T) {
	query, args, err := buildListRecordsQuery(sq.Dollar)
	require.NoError(t, err)

	assert.Empty(t, args)
	assert.Equal(t, "SELECT id, name, type, level FROM records ORDER BY id", query)
}

func Test_buildGetRecordQuery_Placeholders(t *testing.T) {
	tests := []struct {
		name      string
		ph        sq.PlaceholderFormat
		wantQuery string
	}{
		{"postgres", sq.Dollar, "SELECT id, name, type, level FROM records WHERE id = $1"},
		{"sqlite", sq.Question, "SELECT id, name, type, level FROM records WHERE id = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildGetRecordQuery(tt.ph, "abc")
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, []any{"abc"}, args)
		})
	}
}

func Test_buildInsertRecordQuery(t *testing.T) {
	record := models.Record{ID: "id-1", Name: "Jane Doe", Type: "Instructor", Level: models.LevelFull}

	query, args, err := buildInsertRecordQuery(sq.Dollar, record)
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO records (id,name,type,level) VALUES ($1,$2,$3,$4)", query)
	assert.Equal(t, []any{"id-1", "Jane Doe", "Instructor", "Full"}, args)
}

func Test_buildUpdateRecordQuery(t *testing.T) {
	tests := []struct {
		name       string
		patch      models.RecordPatch
		checkQuery func(t *testing.T, query string, args []any)
		wantErr    bool
	}{
		{
			name:  "only level",
			patch: models.RecordPatch{Level: ptr(models.LevelRestricted)},
			checkQuery: func(t *testing.T, query string, args []any) {
				assert.Equal(t, "UPDATE records SET level = $1 WHERE id = $2", query)
				assert.Equal(t, []any{"Restricted", "id-1"}, args)
			},
		},
		{
			name: "all fields",
			patch: models.RecordPatch{
				Name:  ptr("John"),
				Type:  ptr("Student"),
				Level: ptr(models.LevelLearner),
			},
			checkQuery: func(t *testing.T, query string, args []any) {
				q := strings.ToLower(query)
				require.Contains(t, q, "name = ")
				require.Contains(t, q, "type = ")
				require.Contains(t, q, "level = ")
				require.Contains(t, query, "$4")

				// id is always the last argument
				require.Len(t, args, 4)
				assert.Equal(t, "id-1", args[3])
			},
		},
		{
			name:    "empty patch",
			patch:   models.RecordPatch{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateRecordQuery(sq.Dollar, "id-1", tt.patch)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrBuildingSQLQuery)
				return
			}
			require.NoError(t, err)
			tt.checkQuery(t, query, args)
		})
	}
}

func Test_buildDeleteRecordQuery(t *testing.T) {
	query, args, err := buildDeleteRecordQuery(sq.Question, "id-1")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM records WHERE id = ?", query)
	assert.Equal(t, []any{"id-1"}, args)
}
