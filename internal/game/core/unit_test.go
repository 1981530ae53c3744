package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitKind_Stats(t *testing.T) {
	assert.Equal(t, 5, KindMeleeAttacker.Damage())
	assert.Equal(t, 30, KindMeleeAttacker.DefaultHP())
	assert.Equal(t, "melee_attacker", KindMeleeAttacker.String())
	assert.Equal(t, "UnitKind(99)", UnitKind(99).String())
	assert.Panics(t, func() { UnitKind(99).Damage() })
}

func TestParseUnitKind(t *testing.T) {
	k, err := ParseUnitKind("melee_attacker")
	require.NoError(t, err)
	assert.Equal(t, KindMeleeAttacker, k)

	_, err = ParseUnitKind("archer")
	assert.Error(t, err)
}

func TestNewUnit(t *testing.T) {
	u := NewUnit(KindMeleeAttacker, TeamB)
	assert.Equal(t, 30, u.HP)
	assert.Equal(t, TeamB, u.Team)
	assert.Equal(t, NoUnit, u.Slot)
	assert.True(t, u.Alive())
}

func TestUnit_Hit(t *testing.T) {
	attacker := NewUnit(KindMeleeAttacker, TeamA)
	target := NewUnit(KindMeleeAttacker, TeamB)

	attacker.Hit(&target)
	assert.Equal(t, 25, target.HP)
	assert.Equal(t, 30, attacker.HP)

	for i := 0; i < 5; i++ {
		attacker.Hit(&target)
	}
	assert.Equal(t, 0, target.HP)
	assert.False(t, target.Alive())

	// Damage is not clamped.
	attacker.Hit(&target)
	assert.Equal(t, -5, target.HP)

	target.ResetHP()
	assert.Equal(t, 30, target.HP)
}

func TestTeam_String(t *testing.T) {
	assert.Equal(t, "A", TeamA.String())
	assert.Equal(t, "B", TeamB.String())
	assert.Equal(t, "Team(4)", Team(4).String())
}
