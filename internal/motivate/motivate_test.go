package motivate

import "testing"

// contains reports whether s is an element of list.
func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func TestWorkEmoji_DrawsFromWorkSet(t *testing.T) {
	for i := 0; i < 50; i++ {
		e := WorkEmoji()
		if !contains(workEmojis, e) {
			t.Fatalf("WorkEmoji() = %q, not in work set", e)
		}
	}
}

func TestBreakEmoji_DrawsFromMatchingSet(t *testing.T) {
	for i := 0; i < 50; i++ {
		if e := BreakEmoji(false); !contains(shortBreakEmojis, e) {
			t.Fatalf("BreakEmoji(false) = %q, not in short break set", e)
		}
		if e := BreakEmoji(true); !contains(longBreakEmojis, e) {
			t.Fatalf("BreakEmoji(true) = %q, not in long break set", e)
		}
	}
}

func TestEncouragementLines_NeverEmpty(t *testing.T) {
	draws := []struct {
		name string
		fn   func() string
	}{
		{"SuccessEmoji", SuccessEmoji},
		{"StartWork", StartWork},
		{"EndWork", EndWork},
		{"StartBreak", StartBreak},
		{"EndBreak", EndBreak},
		{"Tip", Tip},
	}

	for _, d := range draws {
		for i := 0; i < 20; i++ {
			if d.fn() == "" {
				t.Fatalf("%s() returned empty string", d.name)
			}
		}
	}
}

func TestTip_DrawsFromTipTable(t *testing.T) {
	for i := 0; i < 50; i++ {
		tip := Tip()
		if !contains(tips, tip) {
			t.Fatalf("Tip() = %q, not in tip table", tip)
		}
	}
}
