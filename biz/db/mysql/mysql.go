package mysql

import (
	"fmt"
	"time"

	"project_management/be/biz/config"
	"project_management/be/biz/model/storage"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbConn *gorm.DB

func Init() {
	conf := config.GetMySQLConf()
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.Username, conf.Password, conf.IP, conf.Port, conf.DBName)

	if err := InitWithDialector(gormmysql.Open(dsn)); err != nil {
		panic(err)
	}
}

// InitWithDialector opens the connection and migrates the schema.
func InitWithDialector(dialector gorm.Dialector) error {
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: logger.New(writer{}, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return fmt.Errorf("open db: %w", err)
	}

	if err := db.AutoMigrate(&storage.UserRecord{}); err != nil {
		return fmt.Errorf("migrate db: %w", err)
	}

	dbConn = db
	return nil
}

func GetDbConn() *gorm.DB {
	return dbConn
}

// writer routes gorm logs into hlog.
type writer struct{}

func (writer) Printf(format string, args ...interface{}) {
	hlog.Warnf(format, args...)
}
