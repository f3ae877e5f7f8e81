package entity

import "database/sql"

type User struct {
	Base
	Email          string `gorm:"unique;size:255"`
	ProfilePicture string

	// CommunityID has no foreign key constraint, it may refer to a community
	// which no longer exists.
	CommunityID sql.NullString `gorm:"index;size:255"`

	ExperiencePoints []ExperiencePoint `gorm:"foreignKey:UserID"`
}
