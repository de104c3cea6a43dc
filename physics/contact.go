package physics

import (
	"github.com/ByteArena/box2d"

	"github.com/lixenwraith/survival-arena/core"
)

// ContactPhase tells whether two bodies started or stopped touching
type ContactPhase uint8

const (
	ContactBegin ContactPhase = iota
	ContactEnd
)

// Participant is one side of a contact
type Participant struct {
	Body  BodyHandle
	Owner core.Entity
	Kind  BodyKind
}

// Owned reports whether the body carries an entity back-reference
func (p Participant) Owned() bool {
	return p.Owner.Valid()
}

// Contact is a value copy of a box2d contact, valid beyond the callback
// The underlying box2d contact is never retained
type Contact struct {
	Phase    ContactPhase
	Touching bool
	A, B     Participant
}

// ContactFunc observes contacts synchronously during Step
type ContactFunc func(Contact)

// contactBridge adapts box2d.B2ContactListenerInterface to ContactFunc
type contactBridge struct {
	fn ContactFunc
}

func (b *contactBridge) BeginContact(contact box2d.B2ContactInterface) {
	b.emit(ContactBegin, contact)
}

func (b *contactBridge) EndContact(contact box2d.B2ContactInterface) {
	b.emit(ContactEnd, contact)
}

func (b *contactBridge) PreSolve(contact box2d.B2ContactInterface, oldManifold box2d.B2Manifold) {}

func (b *contactBridge) PostSolve(contact box2d.B2ContactInterface, impulse *box2d.B2ContactImpulse) {}

func (b *contactBridge) emit(phase ContactPhase, contact box2d.B2ContactInterface) {
	if b.fn == nil {
		return
	}
	b.fn(Contact{
		Phase:    phase,
		Touching: contact.IsTouching(),
		A:        participant(contact.GetFixtureA().GetBody()),
		B:        participant(contact.GetFixtureB().GetBody()),
	})
}

func participant(body *box2d.B2Body) Participant {
	tag := tagOf(body)
	return Participant{
		Body:  tag.handle,
		Owner: tag.owner,
		Kind:  kindFromB2(body.GetType()),
	}
}
