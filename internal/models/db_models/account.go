package db_models

// Account carries the credit balance every billed operation debits.
// The balance is only ever mutated through atomic increments so it can
// never be driven negative by concurrent requests.
type Account struct {
	BaseModel
	Name          string `gorm:"not null"`
	Email         string `gorm:"uniqueIndex;not null"`
	PasswordHash  string `gorm:"not null"`
	CreditBalance int64  `gorm:"not null;default:5"`

	Chats []Chat
}
