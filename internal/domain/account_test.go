package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	user := &User{ID: uuid.New(), Email: "e@x.com", HashedPassword: "$2a$10$hash", Role: RoleCustomer}

	account, err := NewAccount(user, "")
	require.NoError(t, err)
	assert.Equal(t, user.ID, account.UserID)
	assert.Equal(t, "e@x.com", account.Username, "username defaults to the email")
	assert.Equal(t, "e@x.com", account.Email)
	assert.Equal(t, user.HashedPassword, account.HashedPassword)

	account, err = NewAccount(user, "eve")
	require.NoError(t, err)
	assert.Equal(t, "eve", account.Username)
}

func TestAccountValidate(t *testing.T) {
	base := func() Account {
		return Account{UserID: uuid.New(), Username: "a", Email: "a@x.com", HashedPassword: "$2a$10$hash"}
	}

	a := base()
	assert.NoError(t, a.Validate())

	a = base()
	a.UserID = uuid.Nil
	assert.ErrorIs(t, a.Validate(), ErrEmptyUserID)

	a = base()
	a.Username = ""
	assert.ErrorIs(t, a.Validate(), ErrEmptyUsername)

	a = base()
	a.Email = "broken"
	assert.ErrorIs(t, a.Validate(), ErrInvalidEmail)

	a = base()
	a.Password = "short"
	assert.ErrorIs(t, a.Validate(), ErrPasswordTooShort)

	a = base()
	a.HashedPassword = ""
	assert.ErrorIs(t, a.Validate(), ErrEmptyPassword)
}

// Omitted fields keep their value: {username:"b"} on {a, a@x.com} gives {b, a@x.com}.
func TestAccountPatchPreservesOmittedFields(t *testing.T) {
	account := &Account{UserID: uuid.New(), Username: "a", Email: "a@x.com", HashedPassword: "h"}
	b := "b"

	AccountPatch{Username: &b}.ApplyTo(account)

	assert.Equal(t, "b", account.Username)
	assert.Equal(t, "a@x.com", account.Email)
	assert.Equal(t, "h", account.HashedPassword)
	assert.Empty(t, account.Password)
}

func TestAccountPatchEmptyIsNoop(t *testing.T) {
	account := Account{UserID: uuid.New(), Username: "a", Email: "a@x.com", HashedPassword: "h"}
	before := account

	patch := AccountPatch{}
	assert.True(t, patch.IsEmpty())
	patch.ApplyTo(&account)
	patch.ApplyTo(&account)

	assert.Equal(t, before, account)
}

func TestAccountPatchExplicitEmptyStringOverwrites(t *testing.T) {
	account := &Account{Username: "a"}
	empty := ""

	AccountPatch{Username: &empty}.ApplyTo(account)

	assert.Equal(t, "", account.Username, "a present empty value is not an omission")
	assert.ErrorIs(t, account.Validate(), ErrValidation)
}

func TestAccountPatchChangesCredentials(t *testing.T) {
	u := "u"
	e := "e@x.com"
	assert.False(t, AccountPatch{Username: &u}.ChangesCredentials())
	assert.True(t, AccountPatch{Email: &e}.ChangesCredentials())

	pw := "another-long-password"
	account := &Account{}
	AccountPatch{Password: &pw}.ApplyTo(account)
	assert.Equal(t, pw, account.Password, "new password stays plaintext until hashed")
}
