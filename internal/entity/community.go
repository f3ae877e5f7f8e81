package entity

type Community struct {
	Base
	Name string `gorm:"unique;size:255"`
	Logo string
}
