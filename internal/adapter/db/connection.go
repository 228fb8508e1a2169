package db

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dontforgetsemicologne/task-flow/internal/config"
)

// ConnectDB opens the process-wide store handle. Repositories receive it by injection.
func ConnectDB(conf *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(conf)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         NewZapLogger(conf.DbSlowThreshold),
		TranslateError: true,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", conf.DbDriver, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql handle: %w", err)
	}
	if conf.DbMaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(conf.DbMaxOpenConns)
	}
	if conf.DbMaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(conf.DbMaxIdleConns)
	}
	if conf.DbConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(conf.DbConnMaxLifetime)
	}

	if conf.DbAutoMigrate {
		if err := Migrate(db); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}

	return db, nil
}

// NewSQLX exposes the pool behind db to sqlx for raw checks.
func NewSQLX(db *gorm.DB, driver string) (*sqlx.DB, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if driver == config.DriverSQLite {
		driver = "sqlite3"
	}
	return sqlx.NewDb(sqlDB, driver), nil
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(conf *config.Config) (gorm.Dialector, error) {
	switch conf.DbDriver {
	case config.DriverMySQL, "":
		return mysql.Open(mysqlDSN(conf)), nil
	case config.DriverPostgres:
		return postgres.Open(postgresDSN(conf)), nil
	case config.DriverSQLite:
		dsn := conf.DatabaseURL
		if dsn == "" {
			dsn = "taskflow.db?_foreign_keys=on"
		}
		if err := ensureDirForSQLite(dsn); err != nil {
			return nil, err
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", conf.DbDriver)
	}
}

func mysqlDSN(conf *config.Config) string {
	if conf.DatabaseURL != "" {
		return conf.DatabaseURL
	}

	params := conf.DbParams
	if params == "" {
		params = "parseTime=true&charset=utf8mb4&loc=UTC"
	}

	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?%s",
		conf.DbUser,
		conf.DbPassword,
		conf.DbHost,
		conf.DbPort,
		conf.DbName,
		params,
	)
}

func postgresDSN(conf *config.Config) string {
	if conf.DatabaseURL != "" {
		return conf.DatabaseURL
	}

	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		conf.PgHost,
		conf.PgPort,
		conf.PgUser,
		conf.PgPassword,
		conf.PgName,
		conf.PgSSLMode,
	)
}

func ensureDirForSQLite(dsn string) error {
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		return nil
	}
	clean := strings.TrimPrefix(dsn, "file:")
	clean = strings.Split(clean, "?")[0]
	dir := filepath.Dir(clean)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create db dir %q: %w", dir, err)
	}
	return nil
}
