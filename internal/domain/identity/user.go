package identity

import (
	"regexp"
	"strings"
	"time"

	"github.com/Mbewe2000/Metrilabs-metribooks/internal/domain/shared"
	"golang.org/x/crypto/bcrypt"
)

// UserStatus represents the status of a user account
type UserStatus string

const (
	UserStatusPending     UserStatus = "pending"     // Awaiting activation
	UserStatusActive      UserStatus = "active"      // Normal active status
	UserStatusLocked      UserStatus = "locked"      // Locked due to failed attempts
	UserStatusDeactivated UserStatus = "deactivated" // Manually deactivated
)

// BusinessType categorizes the kind of business an account runs
type BusinessType string

const (
	BusinessTypeRetail   BusinessType = "retail"
	BusinessTypeServices BusinessType = "services"
	BusinessTypeMixed    BusinessType = "mixed"
)

// Password cost for bcrypt
const bcryptCost = 12

// User represents a business owner account. Each account owns all of its
// business records; there are no sub-users or staff roles.
// Login identity is the email or the phone number, interchangeably.
type User struct {
	shared.BaseAggregateRoot
	BusinessName   string
	OwnerName      string
	Email          string
	Phone          string
	PasswordHash   string
	BusinessType   BusinessType
	Currency       string
	Status         UserStatus
	LastLoginAt    *time.Time
	LastLoginIP    string
	FailedAttempts int
	LockedUntil    *time.Time
}

// NewUser creates a new owner account. At least one of email or phone is
// required; both are normalized and must be unique across the deployment.
func NewUser(businessName, ownerName, email, phone, password string) (*User, error) {
	businessName = strings.TrimSpace(businessName)
	if businessName == "" {
		return nil, shared.NewDomainError("INVALID_BUSINESS_NAME", "Business name cannot be empty")
	}
	if len(businessName) > 200 {
		return nil, shared.NewDomainError("INVALID_BUSINESS_NAME", "Business name cannot exceed 200 characters")
	}

	email = strings.ToLower(strings.TrimSpace(email))
	phone = normalizePhone(phone)
	if email == "" && phone == "" {
		return nil, shared.NewDomainError("INVALID_IDENTIFIER", "Either email or phone is required")
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return nil, err
		}
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return nil, err
		}
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	passwordHash, err := hashPassword(password)
	if err != nil {
		return nil, shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	user := &User{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		BusinessName:      businessName,
		OwnerName:         strings.TrimSpace(ownerName),
		Email:             email,
		Phone:             phone,
		PasswordHash:      passwordHash,
		BusinessType:      BusinessTypeMixed,
		Currency:          "ZMW",
		Status:            UserStatusActive,
	}

	user.AddDomainEvent(NewUserRegisteredEvent(user))

	return user, nil
}

// SetBusinessName updates the business name
func (u *User) SetBusinessName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_BUSINESS_NAME", "Business name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_BUSINESS_NAME", "Business name cannot exceed 200 characters")
	}

	u.BusinessName = name
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// SetOwnerName updates the owner's personal name
func (u *User) SetOwnerName(name string) error {
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_OWNER_NAME", "Owner name cannot exceed 200 characters")
	}

	u.OwnerName = strings.TrimSpace(name)
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// SetEmail sets the account email
func (u *User) SetEmail(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" && u.Phone == "" {
		return shared.NewDomainError("INVALID_IDENTIFIER", "Cannot remove email when no phone is set")
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}

	u.Email = email
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// SetPhone sets the account phone number
func (u *User) SetPhone(phone string) error {
	phone = normalizePhone(phone)
	if phone == "" && u.Email == "" {
		return shared.NewDomainError("INVALID_IDENTIFIER", "Cannot remove phone when no email is set")
	}
	if phone != "" {
		if err := validatePhone(phone); err != nil {
			return err
		}
	}

	u.Phone = phone
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// SetBusinessType sets the business type
func (u *User) SetBusinessType(bt BusinessType) error {
	switch bt {
	case BusinessTypeRetail, BusinessTypeServices, BusinessTypeMixed:
	default:
		return shared.NewDomainError("INVALID_BUSINESS_TYPE", "Unknown business type")
	}

	u.BusinessType = bt
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// ChangePassword changes the password after verifying the current one
func (u *User) ChangePassword(oldPassword, newPassword string) error {
	if !u.VerifyPassword(oldPassword) {
		return shared.NewDomainError("INVALID_PASSWORD", "Current password is incorrect")
	}

	return u.SetPassword(newPassword)
}

// SetPassword sets a new password without checking the old one
func (u *User) SetPassword(newPassword string) error {
	if err := validatePassword(newPassword); err != nil {
		return err
	}

	passwordHash, err := hashPassword(newPassword)
	if err != nil {
		return shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}

	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	u.AddDomainEvent(NewUserPasswordChangedEvent(u))

	return nil
}

// VerifyPassword verifies if the provided password matches
func (u *User) VerifyPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password))
	return err == nil
}

// Deactivate deactivates the account
func (u *User) Deactivate() error {
	if u.Status == UserStatusDeactivated {
		return shared.NewDomainError("ALREADY_DEACTIVATED", "Account is already deactivated")
	}

	u.Status = UserStatusDeactivated
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	return nil
}

// RecordLoginSuccess records a successful login
func (u *User) RecordLoginSuccess(ip string) {
	now := time.Now()
	u.LastLoginAt = &now
	u.LastLoginIP = ip
	u.FailedAttempts = 0
	if u.Status == UserStatusLocked {
		u.Status = UserStatusActive
		u.LockedUntil = nil
	}
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}

// RecordLoginFailure records a failed login attempt.
// Returns true if the account was locked by this attempt.
func (u *User) RecordLoginFailure(maxAttempts int, lockDuration time.Duration) bool {
	u.FailedAttempts++
	u.UpdatedAt = time.Now()
	u.IncrementVersion()

	if u.FailedAttempts >= maxAttempts {
		u.Status = UserStatusLocked
		lockedUntil := time.Now().Add(lockDuration)
		u.LockedUntil = &lockedUntil
		return true
	}

	return false
}

// IsLocked returns true if the account is locked and the lock has not expired
func (u *User) IsLocked() bool {
	if u.Status != UserStatusLocked {
		return false
	}

	if u.LockedUntil != nil && time.Now().After(*u.LockedUntil) {
		return false
	}

	return true
}

// CanLogin returns true if the account can log in
func (u *User) CanLogin() bool {
	if u.Status == UserStatusDeactivated {
		return false
	}
	if u.IsLocked() {
		return false
	}
	return true
}

// Identifier returns the primary login identifier (email, falling back to phone)
func (u *User) Identifier() string {
	if u.Email != "" {
		return u.Email
	}
	return u.Phone
}

// Validation functions

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{9,15}$`)
)

func validateEmail(email string) error {
	if len(email) > 200 {
		return shared.NewDomainError("INVALID_EMAIL", "Email cannot exceed 200 characters")
	}
	if !emailRegex.MatchString(email) {
		return shared.NewDomainError("INVALID_EMAIL", "Invalid email format")
	}
	return nil
}

func validatePhone(phone string) error {
	if !phoneRegex.MatchString(phone) {
		return shared.NewDomainError("INVALID_PHONE", "Phone must be 9 to 15 digits, optionally prefixed with +")
	}
	return nil
}

// normalizePhone strips spaces and hyphens so the same number always
// compares equal regardless of how it was typed.
func normalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	phone = strings.ReplaceAll(phone, " ", "")
	phone = strings.ReplaceAll(phone, "-", "")
	return phone
}

func validatePassword(password string) error {
	if password == "" {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot be empty")
	}
	if len(password) < 8 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must be at least 8 characters")
	}
	if len(password) > 128 {
		return shared.NewDomainError("INVALID_PASSWORD", "Password cannot exceed 128 characters")
	}

	hasLetter := regexp.MustCompile(`[a-zA-Z]`).MatchString(password)
	hasNumber := regexp.MustCompile(`[0-9]`).MatchString(password)
	if !hasLetter || !hasNumber {
		return shared.NewDomainError("INVALID_PASSWORD", "Password must contain at least one letter and one number")
	}

	return nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
