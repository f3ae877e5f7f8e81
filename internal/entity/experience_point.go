package entity

import "time"

type ExperiencePoint struct {
	SnowFlakeBase

	UserID    string `gorm:"index;size:255"`
	Points    int64
	Source    string
	Timestamp time.Time
}
