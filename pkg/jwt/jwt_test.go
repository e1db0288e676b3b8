package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager("test-secret", 30*time.Minute)

	token, expiresAt, err := m.GenerateAccessToken("admin-1", "admin@kuai.ac.ug", RoleAdmin)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), expiresAt, 5*time.Second)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.AdminID)
	assert.Equal(t, RoleAdmin, claims.Role)
	assert.Equal(t, "admin-1", claims.Subject)
}

func TestManager_WrongSecret(t *testing.T) {
	token, _, err := NewManager("secret-a", time.Minute).GenerateAccessToken("a", "a@b.c", RoleAdmin)
	require.NoError(t, err)

	_, err = NewManager("secret-b", time.Minute).ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestManager_Expired(t *testing.T) {
	m := NewManager("s", time.Minute)
	issued := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return issued }

	token, _, err := m.GenerateAccessToken("a", "a@b.c", RoleAdmin)
	require.NoError(t, err)

	m.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = m.ValidateAccessToken(token)
	assert.Error(t, err)
}
