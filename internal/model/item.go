package model

import "time"

// Item belongs to exactly one category and is owned by the identity subject
// that created it. The JSON shape matches the public wire contract: category
// and owner are never serialized.
type Item struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CategoryID  int64     `json:"-"`
	OwnerID     string    `json:"-"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// Field length limits, enforced by the store and the schema.
const (
	DescriptionMaxLen = 250
	OwnerMaxLen       = 512
)
