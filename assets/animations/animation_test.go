package animations

import "testing"

const (
	frameA = 10
	frameB = 11
	frameC = 12
)

func TestLoopAdvancesAfterDelay(t *testing.T) {
	set := NewFrameSet("abc", frameA, frameB, frameC)
	a := NewAnimation(set, 2, ModeLoop)

	a.Update()
	if a.Frame() != frameA {
		t.Fatalf("after 1 tick frame = %d, expected %d", a.Frame(), frameA)
	}
	a.Update()
	if a.Frame() != frameB {
		t.Fatalf("after 2 ticks frame = %d, expected %d", a.Frame(), frameB)
	}

	wrapped := false
	for i := 2; i < 6; i++ {
		a.Update()
		if a.Frame() == frameA {
			wrapped = true
		}
	}
	if !wrapped {
		t.Errorf("frame never wrapped back to %d within 6 ticks (now %d)", frameA, a.Frame())
	}
	if a.Index() < 0 || a.Index() >= len(set.Frames) {
		t.Errorf("index %d out of range", a.Index())
	}
}

func TestLoopWithDelayOneAdvancesEveryTick(t *testing.T) {
	set := NewFrameSet("abc", frameA, frameB, frameC)
	a := NewAnimation(set, 1, ModeLoop)

	for i := 1; i <= 4; i++ {
		a.Update()
		expected := set.Frames[i%3]
		if a.Frame() != expected {
			t.Errorf("tick %d: frame = %d, expected %d", i, a.Frame(), expected)
		}
	}
}

func TestPauseDoesNotAdvance(t *testing.T) {
	set := NewFrameSet("abc", frameA, frameB, frameC)
	a := NewAnimation(set, 1, ModePause)

	for i := 0; i < 10; i++ {
		Animate(a)
	}
	if a.Frame() != frameA || a.Count() != 0 {
		t.Errorf("paused animation moved: frame = %d, count = %d", a.Frame(), a.Count())
	}
}

func TestChangeFrameSet(t *testing.T) {
	walk := NewFrameSet("walk", 2, 3, 4, 5)
	idle := NewFrameSet("idle", 0)

	t.Run("same set is a no-op", func(t *testing.T) {
		a := NewAnimation(walk, 3, ModeLoop)
		for i := 0; i < 4; i++ {
			a.Update()
		}
		count, index := a.Count(), a.Index()

		a.ChangeFrameSet(walk, ModePause, 9, 0)

		if a.Count() != count || a.Index() != index {
			t.Errorf("state reset: count %d->%d, index %d->%d", count, a.Count(), index, a.Index())
		}
		if a.Mode() != ModeLoop || a.Delay() != 3 {
			t.Errorf("mode/delay changed to %v/%d", a.Mode(), a.Delay())
		}
	})

	t.Run("equal contents but different set resets", func(t *testing.T) {
		a := NewAnimation(walk, 3, ModeLoop)
		for i := 0; i < 4; i++ {
			a.Update()
		}
		other := NewFrameSet("walk", 2, 3, 4, 5)

		a.ChangeFrameSet(other, ModeLoop, 5, 0)

		if a.Count() != 0 || a.Index() != 0 || a.Delay() != 5 || a.FrameSet() != other {
			t.Errorf("not reset: count %d, index %d, delay %d", a.Count(), a.Index(), a.Delay())
		}
	})

	t.Run("different set resets with start index", func(t *testing.T) {
		a := NewAnimation(idle, 10, ModePause)

		a.ChangeFrameSet(walk, ModeLoop, 5, 2)

		if a.Frame() != 4 || a.Index() != 2 || a.Mode() != ModeLoop {
			t.Errorf("frame = %d, index = %d, mode = %v", a.Frame(), a.Index(), a.Mode())
		}
	})
}

func TestNewAnimationClampsDelay(t *testing.T) {
	a := NewAnimation(NewFrameSet("x", 1, 2), 0, ModeLoop)
	if a.Delay() != 1 {
		t.Errorf("Delay() = %d, expected 1", a.Delay())
	}
}
