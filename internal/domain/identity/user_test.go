package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates account with email identity", func(t *testing.T) {
		user, err := NewUser("Chilenje Grocers", "Bwalya Mulenga", "bwalya@example.com", "", "Password123")

		require.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "Chilenje Grocers", user.BusinessName)
		assert.Equal(t, "bwalya@example.com", user.Email)
		assert.NotEmpty(t, user.PasswordHash)
		assert.NotEqual(t, "Password123", user.PasswordHash)
		assert.Equal(t, UserStatusActive, user.Status)
		assert.Equal(t, "ZMW", user.Currency)

		events := user.GetDomainEvents()
		assert.Len(t, events, 1)
		_, ok := events[0].(*UserRegisteredEvent)
		assert.True(t, ok)
	})

	t.Run("creates account with phone identity only", func(t *testing.T) {
		user, err := NewUser("Kabwata Salon", "", "", "+260977123456", "Password123")

		require.NoError(t, err)
		assert.Equal(t, "+260977123456", user.Phone)
		assert.Empty(t, user.Email)
		assert.Equal(t, "+260977123456", user.Identifier())
	})

	t.Run("normalizes email to lowercase", func(t *testing.T) {
		user, err := NewUser("Shop", "", "Bwalya@Example.COM", "", "Password123")

		require.NoError(t, err)
		assert.Equal(t, "bwalya@example.com", user.Email)
	})

	t.Run("normalizes phone spacing", func(t *testing.T) {
		user, err := NewUser("Shop", "", "", "+260 977 123-456", "Password123")

		require.NoError(t, err)
		assert.Equal(t, "+260977123456", user.Phone)
	})

	t.Run("fails without email or phone", func(t *testing.T) {
		_, err := NewUser("Shop", "", "", "", "Password123")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "email or phone")
	})

	t.Run("fails with empty business name", func(t *testing.T) {
		_, err := NewUser("", "", "a@b.com", "", "Password123")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("fails with invalid email", func(t *testing.T) {
		_, err := NewUser("Shop", "", "not-an-email", "", "Password123")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "email")
	})

	t.Run("fails with invalid phone", func(t *testing.T) {
		_, err := NewUser("Shop", "", "", "12ab34", "Password123")

		assert.Error(t, err)
	})

	t.Run("fails with short password", func(t *testing.T) {
		_, err := NewUser("Shop", "", "a@b.com", "", "Pass1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least 8 characters")
	})

	t.Run("fails with password without numbers", func(t *testing.T) {
		_, err := NewUser("Shop", "", "a@b.com", "", "Passwords")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "at least one letter and one number")
	})
}

func TestUser_VerifyPassword(t *testing.T) {
	user, _ := NewUser("Shop", "", "a@b.com", "", "Password123")

	assert.True(t, user.VerifyPassword("Password123"))
	assert.False(t, user.VerifyPassword("WrongPass1"))
}

func TestUser_ChangePassword(t *testing.T) {
	user, _ := NewUser("Shop", "", "a@b.com", "", "Password123")
	user.ClearDomainEvents()

	t.Run("changes password with correct current password", func(t *testing.T) {
		err := user.ChangePassword("Password123", "NewPassword456")

		require.NoError(t, err)
		assert.True(t, user.VerifyPassword("NewPassword456"))
		assert.False(t, user.VerifyPassword("Password123"))

		events := user.GetDomainEvents()
		require.Len(t, events, 1)
		_, ok := events[0].(*UserPasswordChangedEvent)
		assert.True(t, ok)
	})

	t.Run("rejects wrong current password", func(t *testing.T) {
		err := user.ChangePassword("WrongPass1", "AnotherPass789")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "incorrect")
	})
}

func TestUser_LoginTracking(t *testing.T) {
	t.Run("locks after max failed attempts", func(t *testing.T) {
		user, _ := NewUser("Shop", "", "a@b.com", "", "Password123")

		locked := false
		for i := 0; i < 5; i++ {
			locked = user.RecordLoginFailure(5, 15*time.Minute)
		}

		assert.True(t, locked)
		assert.True(t, user.IsLocked())
		assert.False(t, user.CanLogin())
	})

	t.Run("expired lock allows login again", func(t *testing.T) {
		user, _ := NewUser("Shop", "", "a@b.com", "", "Password123")
		user.RecordLoginFailure(1, -time.Minute)

		assert.False(t, user.IsLocked())
		assert.True(t, user.CanLogin())
	})

	t.Run("successful login resets counters and unlocks", func(t *testing.T) {
		user, _ := NewUser("Shop", "", "a@b.com", "", "Password123")
		user.RecordLoginFailure(1, 15*time.Minute)
		require.True(t, user.IsLocked())

		user.RecordLoginSuccess("10.0.0.1")

		assert.Equal(t, 0, user.FailedAttempts)
		assert.Equal(t, UserStatusActive, user.Status)
		assert.NotNil(t, user.LastLoginAt)
		assert.Equal(t, "10.0.0.1", user.LastLoginIP)
	})

	t.Run("deactivated account cannot login", func(t *testing.T) {
		user, _ := NewUser("Shop", "", "a@b.com", "", "Password123")
		require.NoError(t, user.Deactivate())

		assert.False(t, user.CanLogin())
	})
}

func TestUser_SetIdentity(t *testing.T) {
	t.Run("cannot remove only identifier", func(t *testing.T) {
		user, _ := NewUser("Shop", "", "a@b.com", "", "Password123")

		err := user.SetEmail("")

		assert.Error(t, err)
	})

	t.Run("can remove email when phone is set", func(t *testing.T) {
		user, _ := NewUser("Shop", "", "a@b.com", "+260977123456", "Password123")

		err := user.SetEmail("")

		require.NoError(t, err)
		assert.Equal(t, "+260977123456", user.Identifier())
	})
}

func TestUser_SetBusinessType(t *testing.T) {
	user, _ := NewUser("Shop", "", "a@b.com", "", "Password123")

	require.NoError(t, user.SetBusinessType(BusinessTypeRetail))
	assert.Equal(t, BusinessTypeRetail, user.BusinessType)

	err := user.SetBusinessType("wholesale")
	assert.Error(t, err)
}
