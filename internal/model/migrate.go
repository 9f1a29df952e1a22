package model

import "gorm.io/gorm"

// AutoMigrate runs GORM auto-migration for all models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&InviteCode{},
		&Note{},
		&Counter{},
		&WheelSetting{},
		&WheelHistory{},
		&Exercise{},
		&ExerciseType{},
		&ReminderSetting{},
		&CuisineCategory{},
		&Dish{},
		&CuisineHistory{},
		&SharedList{},
		&ListMember{},
		&ListItem{},
	)
}
