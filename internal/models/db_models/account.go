package db_models

const (
	RoleTraveler = "traveler"
	RoleAdmin    = "admin"
)

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"unique"`
	PasswordHash string
	Role         string `gorm:"default:traveler"`

	Itineraries []Itinerary `gorm:"foreignKey:UserID"`
}
