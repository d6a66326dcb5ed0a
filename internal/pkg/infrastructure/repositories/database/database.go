package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/diwise/catalog-harvester/internal/pkg/domain"
	"github.com/diwise/catalog-harvester/internal/pkg/infrastructure/repositories/persistence"
	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

var ErrNotFound = errors.New("not found")

const autoCategoryDescription string = "Category extracted from harvested datasets"

//Datastore is an interface that is used to inject the database into different handlers to improve testability
//
//go:generate moq -rm -out database_mock.go . Datastore
type Datastore interface {
	FindOrganization(ctx context.Context, name string) (*persistence.Organization, error)
	FindOrganizationContaining(ctx context.Context, fragment string) (*persistence.Organization, error)
	UpsertOrganization(ctx context.Context, fields persistence.Organization) (*persistence.Organization, error)
	DeleteOrganization(ctx context.Context, id uint) error

	FindDataset(ctx context.Context, title string) (*persistence.Dataset, error)
	UpsertDataset(ctx context.Context, fields persistence.Dataset) (*persistence.Dataset, error)
	DeleteDataset(ctx context.Context, id uint) error

	FindResources(ctx context.Context, datasetID uint) ([]persistence.Resource, error)
	UpsertResource(ctx context.Context, fields persistence.Resource) (*persistence.Resource, error)

	Categories(ctx context.Context) ([]persistence.Category, error)
	SyncCategories(ctx context.Context) (created, updated int, err error)

	Count(ctx context.Context) (domain.StoreStats, error)
}

type myDB struct {
	impl *gorm.DB
}

//ConnectorFunc is used to inject a database connection method into NewDatabaseConnection
type ConnectorFunc func() (*gorm.DB, error)

//NewSQLiteConnector opens a connection to a sqlite database file, or to a private
//in-memory database if path is empty
func NewSQLiteConnector(path string) ConnectorFunc {
	return func() (*gorm.DB, error) {
		dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
		if path == "" {
			dsn = fmt.Sprintf("file:harvest-%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
		}

		db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if err != nil {
			return nil, err
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}

		// sqlite allows a single writer, and a shared in-memory database lives
		// only as long as its last connection
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)

		if err = db.Exec("PRAGMA foreign_keys = ON").Error; err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
		}

		return db, nil
	}
}

//NewPostgresConnector opens a connection to a PostgreSQL database
func NewPostgresConnector(dsn string) ConnectorFunc {
	return func() (*gorm.DB, error) {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
	}
}

//NewDatabaseConnection initializes a new connection to the database and wraps it in a Datastore
func NewDatabaseConnection(ctx context.Context, connect ConnectorFunc) (Datastore, error) {
	impl, err := connect()
	if err != nil {
		return nil, err
	}

	db := &myDB{
		impl: impl,
	}

	err = db.impl.WithContext(ctx).AutoMigrate(
		&persistence.Organization{},
		&persistence.Dataset{},
		&persistence.Resource{},
		&persistence.Category{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database schema: %w", err)
	}

	return db, nil
}

func (db *myDB) FindOrganization(ctx context.Context, name string) (*persistence.Organization, error) {
	org := &persistence.Organization{}
	if err := db.impl.WithContext(ctx).Where("name = ?", name).Take(org).Error; err != nil {
		return nil, notFound(err)
	}
	return org, nil
}

// FindOrganizationContaining returns the first organization, in name order, whose
// name contains fragment regardless of case. Names are folded in Go since
// sqlite's LOWER leaves accented capitals as they are.
func (db *myDB) FindOrganizationContaining(ctx context.Context, fragment string) (*persistence.Organization, error) {
	fragment = strings.ToLower(fragment)
	if fragment == "" {
		return nil, ErrNotFound
	}

	orgs := []persistence.Organization{}
	if err := db.impl.WithContext(ctx).Order("name").Find(&orgs).Error; err != nil {
		return nil, err
	}

	for i := range orgs {
		if strings.Contains(strings.ToLower(orgs[i].Name), fragment) {
			return &orgs[i], nil
		}
	}

	return nil, ErrNotFound
}

func (db *myDB) UpsertOrganization(ctx context.Context, fields persistence.Organization) (*persistence.Organization, error) {
	if fields.Name == "" {
		return nil, fmt.Errorf("organization name must not be empty")
	}

	err := db.impl.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing := persistence.Organization{}
		err := tx.Where("name = ?", fields.Name).Take(&existing).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Create(&fields).Error
		} else if err != nil {
			return err
		}

		fields.ID = existing.ID
		fields.CreatedAt = existing.CreatedAt
		fields.UpdatedAt = time.Now()

		return tx.Save(&fields).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert organization %s: %w", fields.Name, err)
	}

	return &fields, nil
}

func (db *myDB) DeleteOrganization(ctx context.Context, id uint) error {
	return db.impl.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		datasets := tx.Model(&persistence.Dataset{}).Select("id").Where("organization_id = ?", id)

		if err := tx.Where("dataset_id IN (?)", datasets).Delete(&persistence.Resource{}).Error; err != nil {
			return err
		}
		if err := tx.Where("organization_id = ?", id).Delete(&persistence.Dataset{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&persistence.Organization{}, id)
		if result.Error == nil && result.RowsAffected == 0 {
			return ErrNotFound
		}
		return result.Error
	})
}

func (db *myDB) FindDataset(ctx context.Context, title string) (*persistence.Dataset, error) {
	dataset := &persistence.Dataset{}
	err := db.impl.WithContext(ctx).Preload("Organization").Where("title = ?", title).Take(dataset).Error
	if err != nil {
		return nil, notFound(err)
	}
	return dataset, nil
}

func (db *myDB) UpsertDataset(ctx context.Context, fields persistence.Dataset) (*persistence.Dataset, error) {
	if fields.Title == "" {
		return nil, fmt.Errorf("dataset title must not be empty")
	}
	if fields.OrganizationID == 0 {
		return nil, fmt.Errorf("dataset %s has no organization", fields.Title)
	}

	err := db.impl.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing := persistence.Dataset{}
		err := tx.Where("title = ?", fields.Title).Take(&existing).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Omit(clause.Associations).Create(&fields).Error
		} else if err != nil {
			return err
		}

		fields.ID = existing.ID
		fields.CreatedAt = existing.CreatedAt
		fields.UpdatedAt = time.Now()

		return tx.Omit(clause.Associations).Save(&fields).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert dataset %s: %w", fields.Title, err)
	}

	return &fields, nil
}

func (db *myDB) DeleteDataset(ctx context.Context, id uint) error {
	return db.impl.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("dataset_id = ?", id).Delete(&persistence.Resource{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&persistence.Dataset{}, id)
		if result.Error == nil && result.RowsAffected == 0 {
			return ErrNotFound
		}
		return result.Error
	})
}

func (db *myDB) FindResources(ctx context.Context, datasetID uint) ([]persistence.Resource, error) {
	resources := []persistence.Resource{}
	err := db.impl.WithContext(ctx).Where("dataset_id = ?", datasetID).Order("name").Find(&resources).Error
	return resources, err
}

func (db *myDB) UpsertResource(ctx context.Context, fields persistence.Resource) (*persistence.Resource, error) {
	if fields.Name == "" || fields.DatasetID == 0 {
		return nil, fmt.Errorf("resource must have a name and a dataset")
	}

	err := db.impl.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		existing := persistence.Resource{}
		err := tx.Where("name = ? AND dataset_id = ?", fields.Name, fields.DatasetID).Take(&existing).Error

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tx.Omit(clause.Associations).Create(&fields).Error
		} else if err != nil {
			return err
		}

		fields.ID = existing.ID
		fields.CreatedAt = existing.CreatedAt
		fields.UpdatedAt = time.Now()

		return tx.Omit(clause.Associations).Save(&fields).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upsert resource %s: %w", fields.Name, err)
	}

	return &fields, nil
}

func (db *myDB) Categories(ctx context.Context) ([]persistence.Category, error) {
	categories := []persistence.Category{}
	err := db.impl.WithContext(ctx).Order("dataset_count desc, name").Find(&categories).Error
	return categories, err
}

// SyncCategories rebuilds the category table from the semicolon separated
// category lists of all stored datasets.
func (db *myDB) SyncCategories(ctx context.Context) (created, updated int, err error) {
	err = db.impl.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lists := []string{}
		err := tx.Model(&persistence.Dataset{}).Where("categories <> ''").Pluck("categories", &lists).Error
		if err != nil {
			return err
		}

		counts := map[string]int{}
		for _, list := range lists {
			for _, name := range strings.Split(list, ";") {
				name = strings.TrimSpace(name)
				if name != "" {
					counts[name]++
				}
			}
		}

		names := maps.Keys(counts)
		slices.Sort(names)

		for _, name := range names {
			category := persistence.Category{}
			err := tx.Where("name = ?", name).Take(&category).Error

			if errors.Is(err, gorm.ErrRecordNotFound) {
				category = persistence.Category{
					Name:         name,
					Description:  autoCategoryDescription,
					DatasetCount: counts[name],
				}
				if err = tx.Create(&category).Error; err != nil {
					return err
				}
				created++
				continue
			} else if err != nil {
				return err
			}

			category.DatasetCount = counts[name]
			if err = tx.Save(&category).Error; err != nil {
				return err
			}
			updated++
		}

		return nil
	})

	if err != nil {
		return 0, 0, fmt.Errorf("failed to synchronize categories: %w", err)
	}

	return created, updated, nil
}

func (db *myDB) Count(ctx context.Context) (domain.StoreStats, error) {
	stats := domain.StoreStats{}
	tx := db.impl.WithContext(ctx)

	counts := []struct {
		model any
		dest  *int64
	}{
		{&persistence.Organization{}, &stats.Organizations},
		{&persistence.Dataset{}, &stats.Datasets},
		{&persistence.Resource{}, &stats.Resources},
		{&persistence.Category{}, &stats.Categories},
	}

	for _, c := range counts {
		if err := tx.Model(c.model).Count(c.dest).Error; err != nil {
			return domain.StoreStats{}, err
		}
	}

	return stats, nil
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
