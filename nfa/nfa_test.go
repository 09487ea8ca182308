package nfa

import "testing"

func TestFixedStringStructure(t *testing.T) {
	n := FixedString("ab")
	if n.Size() != 3 {
		t.Fatalf("FixedString(\"ab\").Size() = %d, want 3", n.Size())
	}
	if n.Initial == n.Final {
		t.Fatal("a two-byte literal should have distinct initial/final states")
	}

	first := n.States[n.Initial]
	if !first.Label.Get('a') {
		t.Error("first transition should be labeled 'a'")
	}
	mid := first.Target
	if mid == None {
		t.Fatal("initial state should have an outgoing labeled transition")
	}
	second := n.States[mid]
	if !second.Label.Get('b') {
		t.Error("second transition should be labeled 'b'")
	}
	if second.Target != n.Final {
		t.Error("second transition should lead to the final state")
	}
}

func TestDualEdgeInvariant(t *testing.T) {
	n := FixedString("xyz")
	for id, s := range n.States {
		if s.Target != None && n.States[s.Target].Source != StateID(id) {
			t.Errorf("state %d: target->source duality broken", id)
		}
		if s.Epsilon0 != None && n.States[s.Epsilon0].Delta0 != StateID(id) {
			t.Errorf("state %d: epsilon0->delta0 duality broken", id)
		}
		if s.Epsilon1 != None && n.States[s.Epsilon1].Delta1 != StateID(id) {
			t.Errorf("state %d: epsilon1->delta1 duality broken", id)
		}
	}
}

func TestConcat(t *testing.T) {
	a := FixedString("ab")
	b := FixedString("cd")
	a.Concat(b)

	// Walk the labeled-transition chain from Initial and collect the bytes.
	var got []byte
	cur := a.Initial
	for cur != a.Final {
		s := a.States[cur]
		if s.Target == None {
			t.Fatalf("chain broken before reaching Final, at state %d", cur)
		}
		var lbl byte
		for chr := 0; chr < 256; chr++ {
			if s.Label.Get(byte(chr)) {
				lbl = byte(chr)
				break
			}
		}
		got = append(got, lbl)
		cur = s.Target
	}

	want := "abcd"
	if string(got) != want {
		t.Errorf("Concat chain = %q, want %q", got, want)
	}
}

func TestPadInitialFinal(t *testing.T) {
	n := FixedString("a")
	origInitial, origFinal := n.Initial, n.Final
	n.PadInitial()
	n.PadFinal()

	if n.Initial == origInitial {
		t.Error("PadInitial should introduce a new initial state")
	}
	if n.Final == origFinal {
		t.Error("PadFinal should introduce a new final state")
	}
	if n.States[n.Initial].Epsilon0 != origInitial {
		t.Error("new initial state should epsilon-transition to the old one")
	}
	if n.States[origFinal].Epsilon0 != n.Final {
		t.Error("old final state should epsilon-transition to the new one")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	n := FixedString("a")
	clone := n.Clone()
	clone.States[clone.Initial].Label.Add('z')

	if n.States[n.Initial].Label.Get('z') {
		t.Error("mutating a clone should not affect the original")
	}
}

func TestComplementReverseToggle(t *testing.T) {
	n := New()
	if n.Complemented || n.Reversed {
		t.Fatal("fresh NFA should have both flags clear")
	}
	n.Complement()
	n.Reverse()
	if !n.Complemented || !n.Reversed {
		t.Error("Complement/Reverse should set their respective flags")
	}
	n.Complement()
	if n.Complemented {
		t.Error("Complement should be its own inverse")
	}
}
