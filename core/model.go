package core

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// ConnectDB opens a standalone gorm handle, used by the command line tools.
func ConnectDB(dsn string, level LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), GormConfig(level))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB from GORM: %w", err)
	}
	return db, nil
}
