package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// SchemaStatus lists which model tables exist.
type SchemaStatus struct {
	Present []string
	Missing []string
}

// Ready reports whether every model table exists.
func (s *SchemaStatus) Ready() bool { return len(s.Missing) == 0 }

// GetSchemaStatus checks each table in Models.
func GetSchemaStatus(ctx context.Context, db *gorm.DB) (*SchemaStatus, error) {
	db = db.WithContext(ctx)
	status := &SchemaStatus{}
	for _, m := range Models() {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(m); err != nil {
			return nil, fmt.Errorf("parse model %T: %w", m, err)
		}
		if db.Migrator().HasTable(stmt.Schema.Table) {
			status.Present = append(status.Present, stmt.Schema.Table)
		} else {
			status.Missing = append(status.Missing, stmt.Schema.Table)
		}
	}
	return status, nil
}
