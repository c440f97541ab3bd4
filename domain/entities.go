package domain

import "time"

// User represents an account in the system
type User struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Admin        bool
	ExternalAuth bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RefreshToken represents a persisted, single-use refresh credential.
// The token value itself is the key; the record is removed the moment
// it is redeemed for rotation or revoked by logout.
type RefreshToken struct {
	Token     string    `json:"token"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResult represents authentication outcome
type AuthResult struct {
	User         *User
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// TokenClaims represents the identity carried by an access token
type TokenClaims struct {
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	Admin     bool   `json:"admin"`
	IssuedAt  int64  `json:"iat"`
	ExpiresAt int64  `json:"exp"`
}

// Product represents a catalogue entry. Price is in minor currency units.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Cart represents a user's open shopping cart. One cart per user.
type Cart struct {
	ID        string
	UserID    string
	Items     []CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem represents a line item on a cart
type CartItem struct {
	ID        string
	ProductID string
	Quantity  int
	Price     int64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Order represents a placed order
type Order struct {
	ID        string
	UserID    string
	Status    string
	Total     int64
	Items     []OrderItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// OrderItem represents a line item on an order
type OrderItem struct {
	ID        string
	ProductID string
	Quantity  int
	Price     int64
}

// OrderStatusCompleted is the terminal status set at checkout.
const OrderStatusCompleted = "COMPLETED"
