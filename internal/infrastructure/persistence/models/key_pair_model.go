package models

import (
	"time"

	"plain_rsa_service/internal/domain/keys"
)

// KeyPairModel is the GORM database model for key pair metadata
// (infrastructure concern)
type KeyPairModel struct {
	ID              string    `gorm:"primaryKey;type:uuid"`
	Algorithm       string    `gorm:"type:varchar(20)"`
	KeyBits         uint32    `gorm:"type:integer"`
	Mode            string    `gorm:"not null;type:varchar(20)"`
	DateTimeCreated time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (KeyPairModel) TableName() string {
	return "key_pairs"
}

// ToDomain converts GORM model to domain entity
func (m *KeyPairModel) ToDomain() *keys.KeyPairMeta {
	return &keys.KeyPairMeta{
		ID:              m.ID,
		Algorithm:       m.Algorithm,
		KeyBits:         m.KeyBits,
		Mode:            m.Mode,
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *KeyPairModel) FromDomain(k *keys.KeyPairMeta) {
	m.ID = k.ID
	m.Algorithm = k.Algorithm
	m.KeyBits = k.KeyBits
	m.Mode = k.Mode
	m.DateTimeCreated = k.DateTimeCreated
}
