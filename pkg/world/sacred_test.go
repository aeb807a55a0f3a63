package world

import "testing"

func TestSacredPlace_Bless(t *testing.T) {
	t.Run("correct item blesses", func(t *testing.T) {
		sp := NewSacredPlace(Incense)
		if !sp.Bless(Incense) {
			t.Fatal("Expected bless to succeed with the required item")
		}
		if !sp.Blessed {
			t.Error("Expected place to be blessed")
		}
	})

	t.Run("wrong item fails", func(t *testing.T) {
		sp := NewSacredPlace(Incense)
		if sp.Bless(Scroll) {
			t.Fatal("Expected bless to fail with the wrong item")
		}
		if sp.Blessed {
			t.Error("Expected place to remain unblessed")
		}
	})

	t.Run("blessing is terminal", func(t *testing.T) {
		sp := NewSacredPlace(Binyeo)
		if !sp.Bless(Binyeo) {
			t.Fatal("Expected first bless to succeed")
		}
		if sp.Bless(Binyeo) {
			t.Error("Expected repeated bless to be a no-op")
		}
		if !sp.Blessed {
			t.Error("Expected place to stay blessed")
		}
	})

	t.Run("no required item never blesses", func(t *testing.T) {
		sp := &SacredPlace{}
		for _, item := range []Item{Binyeo, Scroll, Incense} {
			if sp.Bless(item) {
				t.Errorf("Expected bless with %s to fail without a required item", item)
			}
		}
		if sp.Blessed {
			t.Error("Expected place to remain unblessed")
		}
	})
}
