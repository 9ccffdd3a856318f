package database

import (
	"errors"
	"fmt"

	"github.com/mike-pete/cms/internal/config"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

type DBConnector interface {
	Client() *sqlx.DB
	Close() error
}

type DBConnect struct {
	db *sqlx.DB
}

var _ DBConnector = (*DBConnect)(nil)

// InitDBConnect opens the connection pool and, when migratesFolder is not
// empty, applies pending migrations before returning.
func InitDBConnect(cnf *config.DBConf, migratesFolder string) (*DBConnect, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cnf.Address, cnf.Port, cnf.User, cnf.Pass, cnf.DBName,
	)
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to db: %w", err)
	}
	db.SetMaxOpenConns(cnf.MaxConnections)
	if migratesFolder != "" {
		if err = migrateDB(db, cnf.DBName, migratesFolder); err != nil {
			return nil, fmt.Errorf("unable to migrate db: %w", err)
		}
	}
	return &DBConnect{db: db}, nil
}

func (d *DBConnect) Client() *sqlx.DB {
	return d.db
}

func (d *DBConnect) Close() error {
	return d.db.Close()
}

func migrateDB(db *sqlx.DB, dbName, migratesFolder string) error {
	driver, err := migratepg.WithInstance(db.DB, &migratepg.Config{})
	if err != nil {
		return fmt.Errorf("unable to init migrate driver: %w", err)
	}
	m, err := migrate.NewWithDatabaseInstance("file://"+migratesFolder, dbName, driver)
	if err != nil {
		return fmt.Errorf("unable to init migrate instance: %w", err)
	}
	if err = m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}
	return nil
}
