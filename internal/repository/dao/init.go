package dao

import "gorm.io/gorm"

func InitTables(db *gorm.DB) error {
	return db.AutoMigrate(
		&Session{},
		&Seat{},
		&Ticket{},
		&Order{},
		&Coupon{},
		&Registration{},
		&RegistrationResponsible{},
		&RegistrationParticipant{},
		&Judge{},
		&FAQ{},
		&AppSetting{},
	)
}
