package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredential_IsAnonymous(t *testing.T) {
	assert.True(t, Credential{}.IsAnonymous())
	assert.True(t, Credential{Username: "ann"}.IsAnonymous())
	assert.False(t, Credential{Token: "abc"}.IsAnonymous())
}

func TestCredential_DisplayName(t *testing.T) {
	assert.Equal(t, "ann", Credential{Username: "ann", Email: "ann@x.com"}.DisplayName())
	// username may be empty when the identity fetch after login failed
	assert.Equal(t, "ann@x.com", Credential{Email: "ann@x.com"}.DisplayName())
	assert.Equal(t, "", Credential{}.DisplayName())
}
