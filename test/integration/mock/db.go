package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var once sync.Once
var db *Db

// Db is a shared in-memory SQLite database for the feature suite.
// Models are kept in dependency order: parents before children.
type Db struct {
	DbConn *gorm.DB
	models []any
	tables map[string]any
}

// NewDb opens the shared database once and migrates models into it.
func NewDb(models ...any) *Db {
	once.Do(func() {
		db = open(models)
	})
	return db
}

func open(models []any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared&_pragma=foreign_keys(1)")
	if err != nil {
		panic(err)
	}

	// A single connection keeps the in-memory database alive and serializes access.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := dbConn.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
		panic(err)
	}

	d := &Db{
		DbConn: dbConn,
		models: models,
		tables: make(map[string]any, len(models)),
	}

	for _, model := range models {
		stmt := &gorm.Statement{DB: dbConn}
		if err := stmt.Parse(model); err != nil {
			panic(err)
		}
		d.tables[stmt.Schema.Table] = model
	}

	if err := d.ClearDB(); err != nil {
		panic(fmt.Sprintf("failed to clear database. err: %s", err.Error()))
	}

	return d
}

// ClearDB drops and recreates every table.
func (d *Db) ClearDB() error {
	// Children first so foreign keys never block the drop.
	for i := len(d.models) - 1; i >= 0; i-- {
		if err := d.DbConn.Migrator().DropTable(d.models[i]); err != nil {
			return err
		}
	}

	if err := d.DbConn.AutoMigrate(d.models...); err != nil {
		return err
	}

	for _, model := range d.models {
		if !d.DbConn.Migrator().HasTable(model) {
			return fmt.Errorf("table for model %T was not created", model)
		}
	}
	return nil
}

// GetModel returns the model registered for a table name.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.tables[table]
	return model, ok
}
