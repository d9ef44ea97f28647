package database

import (
	"fmt"

	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var C *gorm.DB

func NewGorm() error {
	var err error
	dialector := postgres.Open(viper.GetString("database.dsn"))
	C, err = gorm.Open(dialector, &gorm.Config{
		Logger:      logger.Default.LogMode(logger.Silent),
		PrepareStmt: viper.GetBool("database.prepare_stmt"),
	})

	return err
}

// DayBucket renders the SQL expression that folds a timestamp column onto
// its UTC calendar day as a YYYY-MM-DD string. Statistics grouping relies
// on it; the sqlite branch exists for the test database.
func DayBucket(column string) string {
	if C != nil && C.Dialector.Name() == "sqlite" {
		return fmt.Sprintf("strftime('%%Y-%%m-%%d', %s)", column)
	}
	return fmt.Sprintf("to_char(%s AT TIME ZONE 'UTC', 'YYYY-MM-DD')", column)
}
