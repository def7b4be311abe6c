package databases

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type postgresConnection struct {
	dsn string
	db  *gorm.DB
}

func NewPostgres(dsn string) SqlConnection {
	return &postgresConnection{
		dsn: dsn,
	}
}

func (c *postgresConnection) GetDB() *gorm.DB {
	return c.db
}

func (c *postgresConnection) IsConnected() bool {
	return isConnected(c.db)
}

func (c *postgresConnection) Run() error {
	db, err := gorm.Open(postgres.Open(c.dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return err
	}

	dbSQL, err := db.DB()
	if err != nil {
		return err
	}
	dbSQL.SetMaxOpenConns(5)
	dbSQL.SetMaxIdleConns(2)
	dbSQL.SetConnMaxLifetime(5 * time.Minute)

	c.db = db
	log.Info().Msg("Connected to Postgres")
	return nil
}

func (c *postgresConnection) Shutdown() {
	log.Info().Msg("Shutdown the connection to Postgres")
	shutdown(c.db, "Postgres")
}
