package models

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
	"time"
)

// Exchange represents one stored prompt/response pair with feedback fields.
// Re-submitting the same normalized prompt overwrites the prior row.
type Exchange struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	Fingerprint  string    `gorm:"uniqueIndex;not null" json:"fingerprint"`
	Prompt       string    `gorm:"type:text;not null" json:"prompt"`
	Response     string    `gorm:"type:text;not null" json:"response"`
	CreatedAt    time.Time `json:"created_at"`
	SuccessScore int       `gorm:"default:0" json:"success_score"`
	Earnings     float64   `gorm:"default:0" json:"earnings"`
}

// TableName overrides the table name
func (Exchange) TableName() string {
	return "exchanges"
}

// Fingerprint returns the dedup key for a prompt: an md5 digest of the
// lowercased text. Two prompts that differ only in case collapse to one row.
func Fingerprint(prompt string) string {
	sum := md5.Sum([]byte(strings.ToLower(prompt)))
	return hex.EncodeToString(sum[:])
}
