package entities

// UserType distinguishes regular customers from restaurant owners
type UserType string

const (
	UserTypeRegular    UserType = "REGULAR"
	UserTypeRestaurant UserType = "RESTAURANT"
)

// Valid reports whether t is one of the known user types.
func (t UserType) Valid() bool {
	return t == UserTypeRegular || t == UserTypeRestaurant
}

// User represents a user document in the users collection.
// Categories holds the favorite food categories of a REGULAR user;
// RESTAURANT users persist an empty list.
type User struct {
	ID         string   `json:"id" dynamodbav:"id"`
	Name       string   `json:"name" dynamodbav:"name"`
	Email      string   `json:"email" dynamodbav:"email"`
	Password   string   `json:"-" dynamodbav:"password"` // bcrypt hash, never serialized outward
	Type       UserType `json:"type" dynamodbav:"type"`
	Categories []string `json:"categories" dynamodbav:"categories"`
}
