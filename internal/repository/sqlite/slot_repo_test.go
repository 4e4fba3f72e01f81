package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func TestSlotRepository_Get(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		slot      string
		mock      func(mock sqlmock.Sqlmock)
		wantValue string
		wantOK    bool
		wantErr   bool
	}{
		{
			name: "existing slot",
			slot: "registrations",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT value\s+FROM slots\s+WHERE name = \?`).
					WithArgs("registrations").
					WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow(`[]`))
			},
			wantValue: `[]`,
			wantOK:    true,
		},
		{
			name: "absent slot",
			slot: "missing",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT value\s+FROM slots\s+WHERE name = \?`).
					WithArgs("missing").
					WillReturnError(sql.ErrNoRows)
			},
			wantValue: "",
			wantOK:    false,
		},
		{
			name: "db error",
			slot: "registrations",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT value\s+FROM slots\s+WHERE name = \?`).
					WithArgs("registrations").
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewSlotRepository(db)
			value, ok, err := repo.Get(ctx, tt.slot)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.wantValue, value)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSlotRepository_Set(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO slots \(name, value\)`).
					WithArgs("registrations", `[{"id":"e1"}]`).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`INSERT INTO slots \(name, value\)`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewSlotRepository(db)
			err = repo.Set(ctx, "registrations", `[{"id":"e1"}]`)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

// Round-trips against a real in-memory database to cover the schema and the
// upsert together.
func TestSlotRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	// Each pooled connection would otherwise get its own empty :memory: db.
	db.SetMaxOpenConns(1)

	require.NoError(t, InitSchema(db))
	require.NoError(t, InitSchema(db), "schema init must be repeatable")

	repo := NewSlotRepository(db)

	_, ok, err := repo.Get(ctx, "registrations")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, repo.Set(ctx, "registrations", `["first"]`))
	value, ok, err := repo.Get(ctx, "registrations")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `["first"]`, value)

	require.NoError(t, repo.Set(ctx, "registrations", `["second"]`))
	value, ok, err = repo.Get(ctx, "registrations")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `["second"]`, value, "set must replace the previous value wholesale")

	require.NoError(t, repo.Set(ctx, "other", "x"))
	value, ok, err = repo.Get(ctx, "registrations")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, `["second"]`, value, "slots must not leak into each other")
}
