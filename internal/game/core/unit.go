package core

import "fmt"

// UnitKind is the closed set of unit variants.
type UnitKind int

const (
	KindMeleeAttacker UnitKind = iota
)

type unitStats struct {
	name   string
	damage int
	hp     int
}

// kindStats holds the fixed constants for each variant.
var kindStats = map[UnitKind]unitStats{
	KindMeleeAttacker: {name: "melee_attacker", damage: 5, hp: 30},
}

func (k UnitKind) String() string {
	if s, ok := kindStats[k]; ok {
		return s.name
	}
	return fmt.Sprintf("UnitKind(%d)", int(k))
}

// Damage returns the damage a unit of this kind deals per hit.
func (k UnitKind) Damage() int {
	return k.stats().damage
}

// DefaultHP returns the starting health of this kind.
func (k UnitKind) DefaultHP() int {
	return k.stats().hp
}

func (k UnitKind) stats() unitStats {
	s, ok := kindStats[k]
	if !ok {
		panic(fmt.Sprintf("unknown unit kind %d", int(k)))
	}
	return s
}

// ParseUnitKind converts a config name to a UnitKind.
func ParseUnitKind(name string) (UnitKind, error) {
	for k, s := range kindStats {
		if s.name == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown unit kind %q", name)
}

// Team identifies which side a unit fights for.
type Team int

const (
	TeamA Team = iota
	TeamB
)

func (t Team) String() string {
	switch t {
	case TeamA:
		return "A"
	case TeamB:
		return "B"
	default:
		return fmt.Sprintf("Team(%d)", int(t))
	}
}

// Unit is a combatant. Slot is its index on the grid, assigned by Grid.Place.
type Unit struct {
	Kind UnitKind
	Team Team
	HP   int
	Slot int
}

// NewUnit creates a unit at full health, not yet placed.
func NewUnit(kind UnitKind, team Team) Unit {
	u := Unit{Kind: kind, Team: team, Slot: NoUnit}
	u.ResetHP()
	return u
}

func (u *Unit) Damage() int { return u.Kind.Damage() }
func (u *Unit) Alive() bool { return u.HP > 0 }
func (u *Unit) ResetHP()    { u.HP = u.Kind.DefaultHP() }

// Hit deals this unit's damage to target.
func (u *Unit) Hit(target *Unit) {
	target.TakeDamage(u.Damage())
}

// TakeDamage subtracts dmg from HP. HP is not clamped at zero.
func (u *Unit) TakeDamage(dmg int) {
	u.HP -= dmg
}
