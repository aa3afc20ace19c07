package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/educonnect/faceauth/internal/face"
)

// DescriptorList stores an identity's enrolled face descriptors as a JSONB
// column. The list is append-only and never empty for a persisted identity.
type DescriptorList []face.Descriptor

// Value implements driver.Valuer.
func (l DescriptorList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan implements sql.Scanner.
func (l *DescriptorList) Scan(src interface{}) error {
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into DescriptorList", src)
	}
}

// Identity is an enrolled user keyed by email.
type Identity struct {
	ID          uint           `gorm:"primaryKey"`
	Email       string         `gorm:"column:email;uniqueIndex;size:255"`
	DisplayName string         `gorm:"column:display_name;size:255"`
	Age         int            `gorm:"column:age"`
	Role        string         `gorm:"column:role;size:64"`
	Descriptors DescriptorList `gorm:"column:descriptors;type:jsonb"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
}

// TableName overrides the default table name.
func (Identity) TableName() string {
	return "identities"
}

// Validate enforces the invariants a persisted identity must satisfy.
func (i *Identity) Validate() error {
	if i.Email == "" {
		return errors.New("identity email must not be empty")
	}
	if len(i.Descriptors) == 0 {
		return errors.New("identity must carry at least one descriptor")
	}
	for _, d := range i.Descriptors {
		if len(d) != face.Dimension {
			return &face.DimensionError{Want: face.Dimension, Got: len(d)}
		}
	}
	return nil
}

// VerificationAttempt is the audit record written for every login decision.
type VerificationAttempt struct {
	ID        uint      `gorm:"primaryKey"`
	RequestID string    `gorm:"column:request_id;uniqueIndex;size:64"`
	Email     string    `gorm:"column:email;index;size:255"`
	Distance  float64   `gorm:"column:distance"`
	Accepted  bool      `gorm:"column:accepted"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

// TableName overrides the default table name.
func (VerificationAttempt) TableName() string {
	return "verification_attempts"
}
