package skill

import (
	"legendcore/internal/event"
	"legendcore/internal/model"
)

// EquipmentSkillRegistry maps an equipment CardSubType to the Locked skill
// it grants, and binds/unbinds that skill atomically with the card's
// zone move, per spec.md §4.7: "bound when the card enters the equipment
// zone and unbound when it leaves."
type EquipFactory func(card model.Card, ownerSeat int) *Skill

type EquipmentSkillRegistry struct {
	mgr       *Manager
	factories map[model.CardSubType]EquipFactory
}

// NewEquipmentSkillRegistry wires itself to bus's CardMoveEvent stream.
func NewEquipmentSkillRegistry(mgr *Manager, bus *event.Bus) *EquipmentSkillRegistry {
	r := &EquipmentSkillRegistry{mgr: mgr, factories: map[model.CardSubType]EquipFactory{}}
	event.Subscribe(bus, func(e event.CardMoveEvent) {
		if e.Timing != event.After {
			return
		}
		switch e.Reason {
		case event.ReasonEquip:
			if seat, ok := model.ParseSeatFromZone(e.Target); ok {
				for _, c := range e.Cards {
					r.bindIfKnown(seat, c)
				}
			}
		case event.ReasonUnequip:
			if seat, ok := model.ParseSeatFromZone(e.Source); ok {
				for _, c := range e.Cards {
					r.unbindIfKnown(seat, c)
				}
			}
		}
	})
	return r
}

// Register associates subType with a factory producing its Locked skill
// instance for a given physical card and owning seat (the built-in skills
// use the card only to pick by DefinitionId and keep the owner's seat —
// Renwang Shield's veto and OffensiveHorse/DefensiveHorse's asymmetric
// distance math are keyed on it).
func (r *EquipmentSkillRegistry) Register(subType model.CardSubType, factory EquipFactory) {
	r.factories[subType] = factory
}

func (r *EquipmentSkillRegistry) bindIfKnown(seat int, c model.Card) {
	factory, ok := r.factories[c.CardSubType]
	if !ok {
		return
	}
	s := factory(c, seat)
	r.mgr.bindEquipment(seat, s)
}

func (r *EquipmentSkillRegistry) unbindIfKnown(seat int, c model.Card) {
	factory, ok := r.factories[c.CardSubType]
	if !ok {
		return
	}
	s := factory(c, seat)
	r.mgr.Unbind(seat, s.Id)
}
