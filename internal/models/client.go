package models

// Client is the storage representation of a client.
type Client struct {
	ClientID int64  `db:"client_id" gorm:"column:client_id;primaryKey;autoIncrement"`
	Name     string `db:"name" gorm:"column:name;size:255;not null"`
	Phone    string `db:"phone" gorm:"column:phone;size:50;not null;uniqueIndex:uq_clients_phone"`
	Address  string `db:"address" gorm:"column:address;size:500;not null"`
	AuditFields

	// Debts declares the debts.client_id foreign key for gorm migrations.
	Debts []Debt `db:"-" gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
}

func (Client) TableName() string { return "clients" }
