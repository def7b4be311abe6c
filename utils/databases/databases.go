package databases

import (
	"fmt"
	"sale-alerts/models/constants"
	"strconv"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func New(cfg Config) (SqlConnection, error) {
	switch cfg.Driver {
	case constants.DriverPostgres:
		return NewPostgres(cfg.DSN()), nil
	case constants.DriverSqlite:
		return NewSqlite(cfg.SqliteURL), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}

// DSN returns the PostgreSQL connection string.
func (cfg Config) DSN() string {
	return "host=" + cfg.Host +
		" port=" + strconv.Itoa(cfg.Port) +
		" user=" + cfg.User +
		" password=" + cfg.Password +
		" dbname=" + cfg.Name +
		" sslmode=" + cfg.SSLMode
}

func isConnected(db *gorm.DB) bool {
	if db == nil {
		return false
	}

	dbSQL, errSQL := db.DB()
	if errSQL != nil {
		return false
	}

	if errPing := dbSQL.Ping(); errPing != nil {
		return false
	}

	return true
}

func shutdown(db *gorm.DB, name string) {
	if db == nil {
		return
	}

	dbSQL, err := db.DB()
	if err != nil {
		log.Error().Err(err).Msgf("Failed to shutdown %s connection", name)
		return
	}

	if errClose := dbSQL.Close(); errClose != nil {
		log.Error().Err(errClose).Msgf("Failed to shutdown %s connection", name)
	}
}
