package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDemoUser(t *testing.T) {
	demo := DemoUser()

	assert.Equal(t, "demo-user-id", demo.ID)
	assert.Equal(t, RoleBuyer, demo.Role)
	assert.Equal(t, "demo@chaski.com", demo.Email)
	assert.True(t, demo.IsDemo())
	assert.NotSame(t, demo, DemoUser())
}

func TestProfileUpdate_ApplyMergesPresentFields(t *testing.T) {
	user := &User{ID: "u1", Name: "Ana", Address: "Calle 1", PhoneNumber: "700", CI: "123"}
	address := "Calle 2"
	ci := ""

	ProfileUpdate{Address: &address, CI: &ci}.Apply(user)

	assert.Equal(t, "Ana", user.Name)
	assert.Equal(t, "Calle 2", user.Address)
	assert.Equal(t, "700", user.PhoneNumber)
	assert.Empty(t, user.CI)
}

func TestParticipantOf_DefaultsName(t *testing.T) {
	assert.Equal(t, "Usuario", ParticipantOf(&User{ID: "x"}).Name)
	assert.Equal(t, "Ana", ParticipantOf(&User{ID: "x", Name: "Ana"}).Name)
	assert.Equal(t, "Usuario", ParticipantOf(nil).Name)
}

func TestParticipantPair_IsOrderIndependent(t *testing.T) {
	a1, b1 := ParticipantPair("alice", "bob")
	a2, b2 := ParticipantPair("bob", "alice")

	assert.Equal(t, a1, a2)
	assert.Equal(t, b1, b2)
}

func TestNormalizeContent(t *testing.T) {
	tests := []struct {
		in      string
		out     string
		nonZero bool
	}{
		{"", "", false},
		{"   \t\n", "", false},
		{"  hola ", "hola", true},
	}

	for _, tt := range tests {
		out, ok := NormalizeContent(tt.in)
		assert.Equal(t, tt.out, out)
		assert.Equal(t, tt.nonZero, ok)
	}
}
