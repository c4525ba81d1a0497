package skill

import (
	"legendcore/internal/event"
	"legendcore/internal/model"
)

// Manager owns every bound skill instance, per player seat. Registration is
// Lord-aware: a LordOnly skill is only attached when the owning player has
// flag "IsLord" (spec.md §4.9).
type Manager struct {
	bus    *event.Bus
	bySeat map[int][]*Skill
}

// NewManager constructs an empty Manager bound to bus (for TriggerHandler
// registration).
func NewManager(bus *event.Bus) *Manager {
	return &Manager{bus: bus, bySeat: map[int][]*Skill{}}
}

// Bind attaches s to owner. If s.LordOnly and owner does not have the
// "IsLord" flag set, Bind is a no-op.
func (m *Manager) Bind(owner *model.Player, s *Skill) {
	if s.LordOnly && !owner.Flag("IsLord") {
		return
	}
	m.addSkill(owner.Seat, s)
	if s.Capabilities.Has(CapTriggerHandler) && s.TriggerHandler != nil {
		s.TriggerHandler.RegisterTriggers(m.bus, owner)
	}
}

// bindEquipment attaches s to seat without a Lord check and without a
// concrete *model.Player — equipment skills are never LordOnly, and
// EquipmentSkillRegistry only has a seat number to work with (it reacts to
// CardMoveEvent, which is addressed by zone id, not player pointer).
func (m *Manager) bindEquipment(seat int, s *Skill) {
	m.addSkill(seat, s)
}

func (m *Manager) addSkill(seat int, s *Skill) {
	m.bySeat[seat] = append(m.bySeat[seat], s)
}

// Unbind detaches the skill with the given id from owner, if bound. Used by
// EquipmentSkillRegistry when an equipment card leaves its zone.
func (m *Manager) Unbind(seat int, skillId string) {
	list := m.bySeat[seat]
	out := list[:0]
	for _, s := range list {
		if s.Id != skillId {
			out = append(out, s)
		}
	}
	m.bySeat[seat] = out
}

// SkillsOf returns every skill bound to seat.
func (m *Manager) SkillsOf(seat int) []*Skill {
	return m.bySeat[seat]
}

// WithCapability returns every skill bound to seat that has the given
// capability bit set.
func (m *Manager) WithCapability(seat int, cap Capability) []*Skill {
	var out []*Skill
	for _, s := range m.bySeat[seat] {
		if s.Capabilities.Has(cap) {
			out = append(out, s)
		}
	}
	return out
}

// AllWithCapability returns every skill, across every seat, with the given
// capability bit set, keyed by seat. (JudgementService's modification
// window does not use it: it iterates players in seat order and asks
// Provider.JudgementModifiersOf per seat.)
func (m *Manager) AllWithCapability(cap Capability) map[int][]*Skill {
	out := map[int][]*Skill{}
	for seat, list := range m.bySeat {
		for _, s := range list {
			if s.Capabilities.Has(cap) {
				out[seat] = append(out[seat], s)
			}
		}
	}
	return out
}
