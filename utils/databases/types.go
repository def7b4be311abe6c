package databases

import (
	"errors"

	"gorm.io/gorm"
)

var ErrUnknownDriver = errors.New("unknown database driver")

type SqlConnection interface {
	GetDB() *gorm.DB
	IsConnected() bool
	Run() error
	Shutdown()
}

type Config struct {
	Driver    string
	User      string
	Password  string
	Host      string
	Port      int
	Name      string
	SSLMode   string
	SqliteURL string
}
