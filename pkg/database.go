package validation

import (
	"fmt"

	_ "github.com/go-sql-driver/mysql"
	sqlx "github.com/jmoiron/sqlx" //make alias name the package to sqlx
)

func ConnectToDatabase(user string, pass string, host string, dbname string) (*sqlx.DB, error) {
	port := "3306"
	dbURI := fmt.Sprintf("%s:%s@(%s:%s)/%s?parseTime=true", user, pass, host, port, dbname)
	db, err := sqlx.Connect("mysql", dbURI)
	return db, err
}

type DisplayConfigEntry struct {
	Branch string   `db:"Branch"`
	Title  string   `db:"Title"`
	NBins  int      `db:"NBins"`
	Low    float64  `db:"Low"`
	High   *float64 `db:"High"`
}

// LoadDisplayConfigFromDB reads the DisplayConfig table. A NULL High
// leaves the histogram range to be guessed from the data.
func LoadDisplayConfigFromDB(db *sqlx.DB, logger Logger, verbosity int) (DisplayConfig, error) {
	query := "SELECT Branch, Title, NBins, Low, High FROM DisplayConfig ORDER BY Branch"
	if verbosity > 0 {
		logger.Info("Reading display configuration from database", "database")
	}
	if verbosity > 2 {
		message := fmt.Sprintf("Query: %s", query)
		logger.Info(message, "database")
	}

	rows, err := db.Queryx(query)
	if err != nil {
		errMessage := fmt.Errorf("error querying database: %w", err)
		return nil, errMessage
	}
	defer rows.Close()

	config := make(DisplayConfig)
	for rows.Next() {
		result := DisplayConfigEntry{}
		err := rows.StructScan(&result)
		if err != nil {
			errMessage := fmt.Errorf("error scanning DB row: %w", err)
			return nil, errMessage
		}
		entry := DisplayEntry{
			Title: result.Title,
			NBins: result.NBins,
			Low:   result.Low,
		}
		if result.High != nil {
			entry.High = *result.High
			entry.HasHigh = true
		}
		config[result.Branch] = entry
	}
	return config, rows.Err()
}
