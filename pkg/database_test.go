package validation

import (
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openDisplayDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// every connection to :memory: is a new database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	db.MustExec(`CREATE TABLE DisplayConfig (
		Branch TEXT PRIMARY KEY,
		Title  TEXT NOT NULL,
		NBins  INTEGER NOT NULL DEFAULT 0,
		Low    REAL NOT NULL DEFAULT 0,
		High   REAL
	)`)
	return db
}

func TestLoadDisplayConfigFromDB(t *testing.T) {
	t.Parallel()

	db := openDisplayDB(t)
	db.MustExec(`INSERT INTO DisplayConfig (Branch, Title, NBins, Low, High) VALUES
		('h_energy', 'Energy (MeV)', 40, 0.5, 8),
		('c_calo_hits', 'Calorimeter hits', 0, 0, NULL)`)

	logger := &recordingLogger{}
	config, err := LoadDisplayConfigFromDB(db, logger, 1)
	require.NoError(t, err)
	require.Len(t, config, 2)

	assert.Equal(t, DisplayEntry{Title: "Energy (MeV)", NBins: 40, Low: 0.5, High: 8, HasHigh: true}, config["h_energy"])
	assert.Equal(t, DisplayEntry{Title: "Calorimeter hits"}, config["c_calo_hits"])
	assert.NotEmpty(t, logger.infos)
}

func TestLoadDisplayConfigFromDBMissingTable(t *testing.T) {
	t.Parallel()

	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = LoadDisplayConfigFromDB(db, NopLogger{}, 0)
	assert.Error(t, err)
}
