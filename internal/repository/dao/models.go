package dao

import "time"

// Session is static reference data: the two show times.
type Session struct {
	ID   string    `gorm:"primaryKey"`
	Name string    `gorm:"not null"`
	Date time.Time `gorm:"not null"`
}

// Seat mirrors the generated layout. row is a reserved word in some
// tools, hence row_number.
type Seat struct {
	ID        string `gorm:"primaryKey"`
	RowNumber int    `gorm:"not null"`
	Number    int    `gorm:"not null"`
	Zone      string `gorm:"not null"`
	Type      string `gorm:"not null"`
}

// Ticket is the per-(session, seat) availability row. The composite
// unique index is what makes racing writes lose: a conditional UPDATE
// guarded on status can only ever hit one row per pair.
type Ticket struct {
	ID             uint   `gorm:"primaryKey"`
	SessionID      string `gorm:"not null;uniqueIndex:uni_tickets_session_seat"`
	SeatID         string `gorm:"not null;uniqueIndex:uni_tickets_session_seat"`
	Status         string `gorm:"not null;default:available"`
	OrderID        *string
	RegistrationID *uint
	Price          *float64
	HolderName     *string
	SoldAt         *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Order struct {
	ID              string `gorm:"primaryKey"`
	CustomerName    string `gorm:"not null"`
	CustomerEmail   string `gorm:"not null"`
	CustomerPhone   string `gorm:"not null"`
	TotalAmount     float64
	PaymentStatus   string `gorm:"not null;default:pending"`
	PaymentProvider string `gorm:"not null"`
	CouponID        *uint
	DiscountApplied float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Tickets         []Ticket `gorm:"foreignKey:OrderID"`
}

type Coupon struct {
	ID            uint   `gorm:"primaryKey"`
	Code          string `gorm:"unique;not null"`
	DiscountType  string `gorm:"not null"`
	DiscountValue float64
	MaxUses       *int
	CurrentUses   int  `gorm:"not null;default:0"`
	IsActive      bool `gorm:"not null;default:true"`
	ExpiresAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Registration struct {
	ID               uint   `gorm:"primaryKey"`
	UserID           string `gorm:"not null;index"`
	GroupName        string `gorm:"not null"`
	Category         string `gorm:"not null"`
	SchoolName       string
	Notes            string
	Status           string `gorm:"not null;default:draft"`
	PaymentProofURLs string // JSON-encoded list of storage URLs
	MusicFileURL     string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Responsibles []RegistrationResponsible `gorm:"foreignKey:RegistrationID;constraint:OnDelete:CASCADE"`
	Participants []RegistrationParticipant `gorm:"foreignKey:RegistrationID;constraint:OnDelete:CASCADE"`
}

type RegistrationResponsible struct {
	ID             uint   `gorm:"primaryKey"`
	RegistrationID uint   `gorm:"not null;index"`
	RowKey         string `gorm:"not null"`
	Name           string `gorm:"not null"`
	Surnames       string
	Phone          string
	Email          string
	DNIURL         string
}

type RegistrationParticipant struct {
	ID               uint   `gorm:"primaryKey"`
	RegistrationID   uint   `gorm:"not null;index"`
	RowKey           string `gorm:"not null"`
	Name             string `gorm:"not null"`
	Surnames         string
	DOB              string
	NumTickets       int
	AuthorizationURL string
	DNIURL           string
}

type Judge struct {
	ID       uint   `gorm:"primaryKey"`
	Name     string `gorm:"not null"`
	Title    string
	ImageURL string
	Position int `gorm:"not null;default:0"`
}

type FAQ struct {
	ID       uint   `gorm:"primaryKey"`
	Question string `gorm:"not null"`
	Answer   string `gorm:"not null"`
	Position int    `gorm:"not null;default:0"`
}

func (FAQ) TableName() string {
	return "faqs"
}

type AppSetting struct {
	Key   string `gorm:"primaryKey"`
	Value string
}
