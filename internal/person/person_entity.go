package person

import (
	"time"

	"github.com/google/uuid"
)

// Person is one imported record. Columns every kind shares are first class,
// the rest of the row lands in Attributes.
type Person struct {
	ID         uuid.UUID         `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID         `gorm:"type:uuid;uniqueIndex:uq_person_email,priority:1"`
	Kind       Kind              `gorm:"type:varchar(16);uniqueIndex:uq_person_email,priority:2"`
	Name       string            `gorm:"not null"`
	Email      string            `gorm:"not null;uniqueIndex:uq_person_email,priority:3"`
	Phone      string
	Attributes map[string]string `gorm:"type:jsonb;serializer:json"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Person) TableName() string { return "people" }
