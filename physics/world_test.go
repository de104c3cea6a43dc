package physics

import (
	"testing"

	"github.com/lixenwraith/survival-arena/core"
)

const (
	testDt      = 1.0 / 60.0
	testVelIter = 8
	testPosIter = 3
)

func dynamicCircle(x, y, r float64, owner core.Entity) BodySpec {
	return BodySpec{
		Kind:     BodyDynamic,
		Position: V(x, y),
		Shape:    Circle(r),
		Material: Material{Density: 20, Friction: 0.1},
		Owner:    owner,
	}
}

func TestDynamicBodyFallsUnderGravity(t *testing.T) {
	w := NewWorld(V(0, -10))
	h := w.CreateBody(dynamicCircle(0, 10, 0.5, core.NoEntity))

	start := w.Position(h)
	for i := 0; i < 30; i++ {
		w.Step(testDt, testVelIter, testPosIter)
	}
	end := w.Position(h)

	if end.Y >= start.Y {
		t.Errorf("Expected body to fall, start y=%f end y=%f", start.Y, end.Y)
	}
	if w.Steps() != 30 {
		t.Errorf("Expected 30 steps, got %d", w.Steps())
	}
}

func TestStaticBodyDoesNotMove(t *testing.T) {
	w := NewWorld(V(0, -10))
	h := w.CreateBody(BodySpec{Kind: BodyStatic, Position: V(3, 4), Shape: Box(1, 1)})

	for i := 0; i < 10; i++ {
		w.Step(testDt, testVelIter, testPosIter)
	}

	if p := w.Position(h); p != V(3, 4) {
		t.Errorf("Expected static body at (3,4), got %+v", p)
	}
	if w.Kind(h) != BodyStatic {
		t.Errorf("Expected static kind, got %v", w.Kind(h))
	}
}

func TestOverlappingBodiesReportBeginContactWithOwners(t *testing.T) {
	w := NewWorld(V(0, -10))
	ownerA := core.MakeEntity(0, 1)
	ownerB := core.MakeEntity(1, 1)
	w.CreateBody(dynamicCircle(0, 10, 0.5, ownerA))
	w.CreateBody(dynamicCircle(0.1, 10, 0.5, ownerB))

	var begins []Contact
	w.SetContactListener(func(c Contact) {
		if c.Phase == ContactBegin {
			begins = append(begins, c)
		}
	})

	w.Step(testDt, testVelIter, testPosIter)

	if len(begins) != 1 {
		t.Fatalf("Expected 1 begin contact, got %d", len(begins))
	}
	c := begins[0]
	if !c.Touching {
		t.Error("Expected begin contact to be touching")
	}
	got := map[core.Entity]bool{c.A.Owner: true, c.B.Owner: true}
	if !got[ownerA] || !got[ownerB] {
		t.Errorf("Expected owners %v and %v, got %v and %v", ownerA, ownerB, c.A.Owner, c.B.Owner)
	}
	if c.A.Kind != BodyDynamic || c.B.Kind != BodyDynamic {
		t.Errorf("Expected dynamic participants, got %v and %v", c.A.Kind, c.B.Kind)
	}
}

func TestGroundContactHasNoOwner(t *testing.T) {
	w := NewWorld(V(0, -10))
	w.CreateBody(BodySpec{Kind: BodyStatic, Shape: Edge(V(-40, 0), V(40, 0)), Material: Ground})
	owner := core.MakeEntity(0, 1)
	w.CreateBody(dynamicCircle(0, 0.4, 0.5, owner))

	var contacts []Contact
	w.SetContactListener(func(c Contact) { contacts = append(contacts, c) })
	w.Step(testDt, testVelIter, testPosIter)

	if len(contacts) == 0 {
		t.Fatal("Expected a contact between ground and circle")
	}
	c := contacts[0]
	if c.A.Owned() && c.B.Owned() {
		t.Error("Expected one side of the ground contact to be unowned")
	}
	if !c.A.Owned() && !c.B.Owned() {
		t.Error("Expected the circle side to carry its owner")
	}
}

func TestDestroyBodyInvalidatesHandle(t *testing.T) {
	w := NewWorld(V(0, 0))
	h := w.CreateBody(dynamicCircle(0, 0, 1, core.NoEntity))

	if !w.Alive(h) || w.BodyCount() != 1 {
		t.Fatal("Expected body to be alive after creation")
	}

	w.DestroyBody(h)

	if w.Alive(h) {
		t.Error("Expected handle to be invalid after DestroyBody")
	}
	if w.BodyCount() != 0 {
		t.Errorf("Expected 0 bodies, got %d", w.BodyCount())
	}
}

func TestDestroyBodyTwicePanics(t *testing.T) {
	w := NewWorld(V(0, 0))
	h := w.CreateBody(dynamicCircle(0, 0, 1, core.NoEntity))
	w.DestroyBody(h)

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on second DestroyBody")
		}
	}()
	w.DestroyBody(h)
}

func TestDestroyDuringStepPanics(t *testing.T) {
	w := NewWorld(V(0, -10))
	a := w.CreateBody(dynamicCircle(0, 10, 0.5, core.MakeEntity(0, 1)))
	w.CreateBody(dynamicCircle(0, 10, 0.5, core.MakeEntity(1, 1)))

	var recovered any
	w.SetContactListener(func(c Contact) {
		defer func() { recovered = recover() }()
		w.DestroyBody(a)
	})
	w.Step(testDt, testVelIter, testPosIter)

	if recovered == nil {
		t.Error("Expected DestroyBody inside a contact callback to panic")
	}
	if !w.Alive(a) {
		t.Error("Expected body to survive the rejected destroy")
	}
}

func TestForEachOutlineReportsAllShapes(t *testing.T) {
	w := NewWorld(V(0, 0))
	w.CreateBody(BodySpec{Kind: BodyStatic, Shape: Edge(V(-1, 0), V(1, 0))})
	w.CreateBody(BodySpec{Kind: BodyDynamic, Position: V(5, 5), Shape: Box(1, 2), Material: Material{Density: 1}})
	w.CreateBody(dynamicCircle(-5, 5, 0.25, core.NoEntity))

	counts := map[ShapeType]int{}
	w.ForEachOutline(func(o Outline) {
		counts[o.Shape]++
		switch o.Shape {
		case ShapeCircle:
			if o.Radius != 0.25 || o.Center != V(-5, 5) {
				t.Errorf("Unexpected circle outline %+v", o)
			}
		case ShapeBox:
			if len(o.Vertices) != 4 {
				t.Errorf("Expected 4 box vertices, got %d", len(o.Vertices))
			}
			for _, v := range o.Vertices {
				if v.X < 3.99 || v.X > 6.01 || v.Y < 2.99 || v.Y > 7.01 {
					t.Errorf("Box vertex %+v outside expected extent", v)
				}
			}
		case ShapeEdge:
			if len(o.Vertices) != 2 {
				t.Errorf("Expected 2 edge vertices, got %d", len(o.Vertices))
			}
		}
	})

	for _, st := range []ShapeType{ShapeCircle, ShapeBox, ShapeEdge} {
		if counts[st] != 1 {
			t.Errorf("Expected 1 %v outline, got %d", st, counts[st])
		}
	}
}

func TestBoundsClamp(t *testing.T) {
	b := Bounds{Min: V(-10, 0), Max: V(10, 20)}

	tests := []struct {
		name    string
		in      Vec2
		want    Vec2
		clamped bool
	}{
		{"inside", V(1, 1), V(1, 1), false},
		{"left", V(-50, 5), V(-10, 5), true},
		{"above", V(0, 99), V(0, 20), true},
		{"corner", V(11, -1), V(10, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, clamped := b.Clamp(tt.in)
			if got != tt.want || clamped != tt.clamped {
				t.Errorf("Clamp(%+v) = %+v,%v want %+v,%v", tt.in, got, clamped, tt.want, tt.clamped)
			}
			if !b.Contains(got) {
				t.Errorf("Clamped point %+v not contained", got)
			}
		})
	}
}
