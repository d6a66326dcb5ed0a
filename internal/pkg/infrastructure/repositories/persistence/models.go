package persistence

import (
	"time"
)

// Organization is keyed by its display name.
type Organization struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null;uniqueIndex" json:"name"`
	FullName     string `json:"fullName"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	URL          string `json:"url"`
	DatasetCount int    `json:"datasetCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Dataset is keyed by its title. Deleting the owning organization deletes the dataset.
type Dataset struct {
	ID             uint          `gorm:"primaryKey" json:"id"`
	Title          string        `gorm:"not null;uniqueIndex" json:"title"`
	Description    string        `json:"description"`
	OrganizationID uint          `gorm:"not null;index" json:"organizationId"`
	Organization   *Organization `gorm:"constraint:OnDelete:CASCADE" json:"organization,omitempty"`
	Categories     string        `json:"categories"`
	Tags           string        `json:"tags"`
	AccessLevel    string        `gorm:"not null;default:Open" json:"accessLevel"`
	OriginURL      string        `json:"originUrl"`

	MetadataCreated  *time.Time `json:"metadataCreated,omitempty"`
	MetadataModified *time.Time `json:"metadataModified,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Resource is keyed by (name, dataset). Deleting the owning dataset deletes the resource.
type Resource struct {
	ID                uint     `gorm:"primaryKey" json:"id"`
	Name              string   `gorm:"not null;uniqueIndex:idx_resource_dataset_name,priority:2" json:"name"`
	DatasetID         uint     `gorm:"not null;uniqueIndex:idx_resource_dataset_name,priority:1" json:"datasetId"`
	Dataset           *Dataset `gorm:"constraint:OnDelete:CASCADE" json:"dataset,omitempty"`
	Format            string   `json:"format"`
	Type              string   `json:"type"`
	URL               string   `json:"url"`
	Size              *int64   `json:"size,omitempty"`
	Description       string   `json:"description"`
	CollectionMethod  string   `json:"collectionMethod"`
	CollectionContext string   `json:"collectionContext"`
	Attributes        string   `json:"attributes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Category is derived from the category lists of the stored datasets.
type Category struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Name         string `gorm:"not null;uniqueIndex" json:"name"`
	Description  string `json:"description"`
	DatasetCount int    `json:"datasetCount"`
}
