package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextAccountID(t *testing.T) {
	assert.Equal(t, 1, NextAccountID(nil))
	assert.Equal(t, 8, NextAccountID([]Account{{ID: 3}, {ID: 7}, {ID: 2}}))
}

func TestFindAccountByEmail_FirstMatch(t *testing.T) {
	accounts := []Account{{ID: 1, Email: "a@b.com"}, {ID: 2, Email: "a@b.com"}}

	a, ok := FindAccountByEmail(accounts, "a@b.com")
	assert.True(t, ok)
	assert.Equal(t, 1, a.ID)

	_, ok = FindAccountByEmail(accounts, "A@B.com")
	assert.False(t, ok)
}

func TestUsernameTaken_CaseSensitive(t *testing.T) {
	accounts := []Account{{Username: "annlee1"}}

	assert.True(t, UsernameTaken(accounts, "annlee1"))
	assert.False(t, UsernameTaken(accounts, "AnnLee1"))
	assert.True(t, EmailTaken([]Account{{Email: "x@y.z"}}, "x@y.z"))
}

func TestAccount_Redacted(t *testing.T) {
	a := Account{ID: 1, Username: "ann_lee", Password: "Secret1!"}
	r := a.Redacted()
	assert.Empty(t, r.Password)
	assert.Equal(t, "Secret1!", a.Password, "original untouched")
	assert.Equal(t, "ann_lee", r.Username)
}
