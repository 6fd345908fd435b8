package models

import "time"

// Follow records that one user follows another.
type Follow struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	FollowerID  uint      `gorm:"not null;uniqueIndex:idx_follow_pair" json:"follower_id"`
	FollowingID uint      `gorm:"not null;uniqueIndex:idx_follow_pair" json:"following_id"`
	Following   User      `gorm:"foreignKey:FollowingID" json:"following,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Block records that one user blocked another. A block in either direction
// prevents messaging between the pair; each side can only remove its own row.
type Block struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BlockerID uint      `gorm:"not null;uniqueIndex:idx_block_pair" json:"blocker_id"`
	BlockedID uint      `gorm:"not null;uniqueIndex:idx_block_pair" json:"blocked_id"`
	Blocked   User      `gorm:"foreignKey:BlockedID" json:"blocked,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
