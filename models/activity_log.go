package models

import "time"

// ActivityLog adalah jejak audit append-only. Entry tidak pernah diubah
// setelah ditulis; retensi (500 entry terbaru) diurus layer database.
type ActivityLog struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	UserID    string    `gorm:"index;size:36;not null" json:"user_id"`
	UserName  string    `gorm:"type:varchar(255);not null" json:"user_name"`
	Role      string    `gorm:"type:varchar(20);not null" json:"role"`
	Action    string    `gorm:"type:text;not null" json:"action"`
	Timestamp time.Time `gorm:"index;not null" json:"timestamp"`
}
