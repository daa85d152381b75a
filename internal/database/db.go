// Package database opens the relational connections used by GormStore.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	_ "github.com/go-sql-driver/mysql"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/iliyamo/hbnb-api/internal/config"
	"github.com/iliyamo/hbnb-api/internal/model"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

// OpenGorm returns a GORM handle for the dialect named in cfg.  MySQL reuses
// the pool built by Open; Postgres goes through the pgx-backed driver and
// SQLite treats DB_NAME as the database file.
func OpenGorm(cfg config.Config) (*gorm.DB, error) {
	switch cfg.DBDialect {
	case "sqlite":
		return openSQLite(cfg.DBName)
	case "postgres":
		dsn := "host=" + cfg.DBHost +
			" user=" + cfg.DBUser +
			" password=" + cfg.DBPass +
			" dbname=" + cfg.DBName +
			" port=" + cfg.DBPort +
			" sslmode=disable TimeZone=UTC"
		return openGorm(postgres.Open(dsn))
	case "mysql", "":
		sqlDB, err := Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			return nil, err
		}
		return openGorm(gormmysql.New(gormmysql.Config{Conn: sqlDB}))
	}
	return nil, fmt.Errorf("unsupported dialect %q", cfg.DBDialect)
}

// OpenDSN opens a GORM handle from a raw DSN.  The store contract tests use
// it with a temporary SQLite file, and with TEST_DB_DIALECT and TEST_DB_DSN
// against a real server.
func OpenDSN(dialect, dsn string) (*gorm.DB, error) {
	switch dialect {
	case "sqlite":
		return openSQLite(dsn)
	case "postgres":
		return openGorm(postgres.Open(dsn))
	case "mysql":
		return openGorm(gormmysql.Open(dsn))
	}
	return nil, fmt.Errorf("unsupported dialect %q", dialect)
}

// openSQLite uses the pure Go driver, so no cgo toolchain is needed.  A
// single connection serialises writers; SQLite would otherwise answer
// "database is locked" under concurrent transactions.
func openSQLite(path string) (*gorm.DB, error) {
	db, err := openGorm(sqlite.Open(path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"))
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}

func openGorm(d gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(d, &gorm.Config{
		NowFunc:        model.Now, // same clock and precision as FileStore
		TranslateError: true,      // surfaces gorm.ErrDuplicatedKey / ErrForeignKeyViolated
		Logger:         logger.Default.LogMode(logger.Warn),
	})
}
