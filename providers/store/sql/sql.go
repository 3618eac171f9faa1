// Copyright (c) 2026, R.I. Pienaar and the Choria Project contributors
//
// SPDX-License-Identifier: Apache-2.0

// Package sql stores election records in a relational database using gorm
package sql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/onap/policy-drools-pdp-sub003/pdp"
	"github.com/onap/policy-drools-pdp-sub003/providers/store"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// recordRow is the database shape of a pdp.Record
type recordRow struct {
	ID             string    `gorm:"primaryKey;size:255"`
	Designated     bool      `gorm:"not null;default:false"`
	Priority       int       `gorm:"not null;default:0"`
	Site           string    `gorm:"size:50"`
	UpdatedDate    time.Time `gorm:"not null;index"`
	DesignatedDate time.Time `gorm:"not null"`
}

func (recordRow) TableName() string {
	return "pdp_records"
}

func rowFromRecord(r *pdp.Record) *recordRow {
	return &recordRow{
		ID:             r.ID,
		Designated:     r.Designated,
		Priority:       r.Priority,
		Site:           r.Site,
		UpdatedDate:    r.UpdatedDate.UTC(),
		DesignatedDate: r.DesignatedDate.UTC(),
	}
}

func (r *recordRow) record() *pdp.Record {
	return &pdp.Record{
		ID:             r.ID,
		Designated:     r.Designated,
		Priority:       r.Priority,
		Site:           r.Site,
		UpdatedDate:    r.UpdatedDate,
		DesignatedDate: r.DesignatedDate,
	}
}

// Backend stores records using gorm
type Backend struct {
	db *gorm.DB
}

// Open connects to a PostgreSQL database using dsn
func Open(dsn string) (*Backend, error) {
	if dsn == "" {
		return nil, fmt.Errorf("a database DSN is required")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}

	return New(db)
}

// New creates a backend on an already open database, creating the table when needed
func New(db *gorm.DB) (*Backend, error) {
	err := db.AutoMigrate(&recordRow{})
	if err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &Backend{db: db}, nil
}

func (b *Backend) Get(ctx context.Context, id string) (*pdp.Record, error) {
	row := &recordRow{}
	err := b.db.WithContext(ctx).First(row, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, store.ErrNotFound
		}

		return nil, err
	}

	return row.record(), nil
}

func (b *Backend) List(ctx context.Context) ([]*pdp.Record, error) {
	var rows []recordRow
	err := b.db.WithContext(ctx).Order("id").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]*pdp.Record, len(rows))
	for i := range rows {
		res[i] = rows[i].record()
	}

	return res, nil
}

func (b *Backend) Put(ctx context.Context, record *pdp.Record) error {
	return upsert(b.db.WithContext(ctx), rowFromRecord(record))
}

func upsert(db *gorm.DB, row *recordRow) error {
	return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(row).Error
}

func (b *Backend) Modify(ctx context.Context, id string, mutate store.Mutator) (*pdp.Record, error) {
	var result *pdp.Record

	err := b.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var current *pdp.Record

		row := &recordRow{}
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(row, "id = ?", id).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
		case err != nil:
			return err
		default:
			current = row.record()
		}

		updated, err := mutate(current.Copy())
		if err != nil {
			return err
		}

		if updated == nil {
			result = current
			return nil
		}

		updated.ID = id
		err = upsert(tx, rowFromRecord(updated))
		if err != nil {
			return err
		}

		result = updated

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (b *Backend) Delete(ctx context.Context, id string) error {
	return b.db.WithContext(ctx).Delete(&recordRow{}, "id = ?", id).Error
}

func (b *Backend) DeleteAll(ctx context.Context) error {
	return b.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&recordRow{}).Error
}

func (b *Backend) Close() error {
	sqlDB, err := b.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}
