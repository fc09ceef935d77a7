package player

import (
	"errors"
	"testing"
)

func TestSequenceAssignsIDsInOrder(t *testing.T) {
	seq := NewSequence()

	alice, err := seq.New("Alice", Human)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	cyborg, err := seq.New("Cyborg", RandomAI)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	if alice.ID() != 0 {
		t.Errorf("first id = %d, expected 0", alice.ID())
	}
	if cyborg.ID() != 1 {
		t.Errorf("second id = %d, expected 1", cyborg.ID())
	}
	if seq.Peek() != 2 {
		t.Errorf("Peek() = %d, expected 2", seq.Peek())
	}
}

func TestSequenceReset(t *testing.T) {
	seq := NewSequence()
	seq.Anonymous(Human)
	seq.Anonymous(Human)

	seq.Reset()

	p := seq.Anonymous(Human)
	if p.ID() != 0 {
		t.Errorf("id after Reset() = %d, expected 0", p.ID())
	}
	if p.Name() != "Player 0" {
		t.Errorf("Name() = %q, expected %q", p.Name(), "Player 0")
	}
}

func TestSequencesAreIndependent(t *testing.T) {
	a := NewSequence()
	b := NewSequence()

	a.Anonymous(Human)
	a.Anonymous(Human)

	if p := b.Anonymous(Human); p.ID() != 0 {
		t.Errorf("second sequence started at %d, expected 0", p.ID())
	}
}

func TestEmptyName(t *testing.T) {
	seq := NewSequence()

	for _, name := range []string{"", "   ", "\t"} {
		if _, err := seq.New(name, Human); !errors.Is(err, ErrEmptyName) {
			t.Errorf("New(%q) error = %v, expected ErrEmptyName", name, err)
		}
	}

	// Failed creations must not consume ids
	if seq.Peek() != 0 {
		t.Errorf("Peek() = %d after failed creations, expected 0", seq.Peek())
	}
}

func TestEquality(t *testing.T) {
	seq := NewSequence()
	alice, _ := seq.New("Alice", Human)
	cyborg, _ := seq.New("Cyborg", RandomAI)

	if !alice.Equal(alice) {
		t.Error("player should equal itself")
	}
	if alice.Equal(cyborg) {
		t.Error("different players should not be equal")
	}

	// Same id, different name: still equal
	seq.Reset()
	impostor, _ := seq.New("Impostor", LookaheadAI)
	if !impostor.Equal(alice) {
		t.Error("equality should depend on id only")
	}
}

func TestNoneIsUnequalToRealPlayers(t *testing.T) {
	seq := NewSequence()
	for i := 0; i < 5; i++ {
		p := seq.Anonymous(Human)
		if None.Equal(p) || p.Equal(None) {
			t.Errorf("None compared equal to %s", p.Name())
		}
	}
	if !None.IsNone() {
		t.Error("None.IsNone() should be true")
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		input    string
		expected Kind
		wantErr  bool
	}{
		{"human", Human, false},
		{"HUMAN", Human, false},
		{" random ", RandomAI, false},
		{"adjacency", AdjacencyAI, false},
		{"simple", AdjacencyAI, false},
		{"lookahead", LookaheadAI, false},
		{"l", LookaheadAI, false},
		{"minimax", Human, true},
		{"", Human, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			kind, err := ParseKind(tc.input)
			if tc.wantErr {
				if !errors.Is(err, ErrUnknownKind) {
					t.Errorf("ParseKind(%q) error = %v, expected ErrUnknownKind", tc.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKind(%q) failed: %v", tc.input, err)
			}
			if kind != tc.expected {
				t.Errorf("ParseKind(%q) = %v, expected %v", tc.input, kind, tc.expected)
			}
		})
	}
}

func TestKindStringRoundTrip(t *testing.T) {
	for _, k := range Kinds {
		parsed, err := ParseKind(k.String())
		if err != nil || parsed != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), parsed, err)
		}
	}
	if Human.IsAutomated() {
		t.Error("Human should not be automated")
	}
	if !LookaheadAI.IsAutomated() {
		t.Error("LookaheadAI should be automated")
	}
}
