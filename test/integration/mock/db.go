package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

var once sync.Once
var db *Db

// Db is the shared in-memory database the BDD suite runs against.
type Db struct {
	DbConn *gorm.DB
	models map[string]any
}

// NewDb opens the shared in-memory database once and migrates models, keyed by table name.
func NewDb(models map[string]any) *Db {
	once.Do(func() {
		db = open(models)
	})
	return db
}

// ModelsByTable keys models by the table gorm derives for them.
func ModelsByTable(models ...any) map[string]any {
	cache := &sync.Map{}
	byTable := make(map[string]any, len(models))
	for _, model := range models {
		parsed, err := schema.Parse(model, cache, schema.NamingStrategy{})
		if err != nil {
			panic(fmt.Sprintf("failed to parse model %T: %s", model, err))
		}
		byTable[parsed.Table] = model
	}
	return byTable
}

func open(models map[string]any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// every connection must see the same memory database
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	newDbMock := &Db{
		DbConn: dbConn,
		models: models,
	}

	if err := newDbMock.init(); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	return newDbMock
}

func (d *Db) init() error {
	modelList := make([]any, 0, len(d.models))
	for table, model := range d.models {
		if err := d.DbConn.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %q", table)).Error; err != nil {
			return err
		}
		modelList = append(modelList, model)
	}

	if err := d.DbConn.AutoMigrate(modelList...); err != nil {
		return err
	}

	for table := range d.models {
		if !d.DbConn.Migrator().HasTable(table) {
			return fmt.Errorf("table %s was not created", table)
		}
	}

	return nil
}

// ClearDB empties every table between scenarios.
func (d *Db) ClearDB() error {
	for table := range d.models {
		if err := d.DbConn.Exec(fmt.Sprintf("DELETE FROM %q", table)).Error; err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}
	return nil
}

// GetModel returns the model migrated for table.
func (d *Db) GetModel(table string) (any, bool) {
	model, ok := d.models[table]
	return model, ok
}
