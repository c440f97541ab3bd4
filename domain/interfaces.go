package domain

import (
	"context"
	"time"
)

// UserRepository defines user data access operations
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id string) error
}

// RefreshTokenRepository defines refresh-token persistence operations.
// Records self-expire at the store level; callers never check CreatedAt.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *RefreshToken) error
	Find(ctx context.Context, token string) (*RefreshToken, error)
	// Redeem atomically looks up and removes a record. Exactly one of any
	// number of concurrent callers presenting the same token receives the
	// record; the rest receive ErrRefreshTokenNotFound.
	Redeem(ctx context.Context, token string) (*RefreshToken, error)
	// Delete removes the record matching both token and owner. A
	// non-matching pair is a no-op.
	Delete(ctx context.Context, token, userID string) error
	// DeleteAllForUser revokes every token owned by a user, optionally
	// sparing exceptToken.
	DeleteAllForUser(ctx context.Context, userID, exceptToken string) error
}

// ProductRepository defines product data access operations
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	FindByID(ctx context.Context, id string) (*Product, error)
	FindMany(ctx context.Context, name string) ([]*Product, error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id string) error
}

// CartRepository defines cart data access operations
type CartRepository interface {
	Create(ctx context.Context, cart *Cart) error
	FindByID(ctx context.Context, id string) (*Cart, error)
	FindByUserID(ctx context.Context, userID string) (*Cart, error)
	AddItem(ctx context.Context, cartID string, item *CartItem) error
	UpdateItem(ctx context.Context, cartID, itemID string, quantity int, price int64) error
	RemoveItem(ctx context.Context, cartID, itemID string) error
	Clear(ctx context.Context, cartID string) error
}

// OrderRepository defines order data access operations
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	FindByID(ctx context.Context, id string) (*Order, error)
	// FindByUserID lists a user's orders; an empty userID lists every order.
	FindByUserID(ctx context.Context, userID string) ([]*Order, error)
}

// AuthService defines the session lifecycle business logic
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*User, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Refresh(ctx context.Context, token *RefreshToken) (*AuthResult, error)
	Logout(ctx context.Context, token *RefreshToken) error
}

// RegisterInput carries the public registration fields. Admin records
// whether the caller attempted to self-elevate; registration rejects it.
type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Admin     bool
}

// UserService defines account management business logic
type UserService interface {
	Get(ctx context.Context, id string) (*User, error)
	Update(ctx context.Context, id string, input UpdateUserInput, actor *TokenClaims) (*User, error)
	Delete(ctx context.Context, id, currentPassword string, actor *TokenClaims) error
}

// UpdateUserInput carries the mutable account fields. Zero values are
// left untouched. CurrentPassword validates the acting account;
// CurrentRefreshToken, when present, is the one session spared from
// revocation on a password change.
type UpdateUserInput struct {
	Email               string
	FirstName           string
	LastName            string
	NewPassword         string
	Admin               *bool
	CurrentPassword     string
	CurrentRefreshToken string
}

// ProductService defines catalogue business logic
type ProductService interface {
	Get(ctx context.Context, id string) (*Product, error)
	List(ctx context.Context, name string) ([]*Product, error)
	Create(ctx context.Context, input ProductInput) (*Product, error)
	Update(ctx context.Context, id string, input ProductInput) (*Product, error)
	Delete(ctx context.Context, id string) error
}

// ProductInput carries the writable product fields
type ProductInput struct {
	Name        string
	Description string
	Price       int64
}

// CartService defines cart business logic
type CartService interface {
	Create(ctx context.Context, userID string) (*Cart, error)
	Get(ctx context.Context, id string) (*Cart, error)
	GetByUser(ctx context.Context, userID string) (*Cart, error)
	AddItem(ctx context.Context, cartID string, input CartItemInput) (*Cart, error)
	UpdateItem(ctx context.Context, cartID, itemID string, input CartItemInput) (*Cart, error)
	RemoveItem(ctx context.Context, cartID, itemID string) (*Cart, error)
	Checkout(ctx context.Context, cartID string) (*Order, error)
}

// CartItemInput carries the writable cart line-item fields
type CartItemInput struct {
	ProductID string
	Quantity  int
	Price     int64
}

// OrderService defines order business logic
type OrderService interface {
	Get(ctx context.Context, id string) (*Order, error)
	ListByUser(ctx context.Context, userID string) ([]*Order, error)
}

// PasswordService defines password hashing operations
type PasswordService interface {
	Hash(password string) (string, error)
	Verify(saltedHash, password string) bool
}

// TokenService defines token issuance and validation
type TokenService interface {
	GenerateAccessToken(userID, email string, admin bool) (string, time.Time, error)
	GenerateRefreshToken(seed string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}
