package animations

// Mode selects how an Animation advances on each tick.
type Mode int

const (
	ModeLoop Mode = iota
	ModePause
)

func (m Mode) String() string {
	switch m {
	case ModeLoop:
		return "loop"
	case ModePause:
		return "pause"
	}
	return "unknown"
}

// FrameSet is a named, ordered list of frame ids into a tile set. Frame sets
// are compared by pointer: switching to the set that is already active keeps
// the animation where it is.
type FrameSet struct {
	Name   string
	Frames []int
}

// NewFrameSet panics on an empty frame list since an animation always needs a
// current frame.
func NewFrameSet(name string, frames ...int) *FrameSet {
	if len(frames) == 0 {
		panic("animations: frame set " + name + " has no frames")
	}
	return &FrameSet{Name: name, Frames: frames}
}

type Animation struct {
	set   *FrameSet
	delay int // ticks per frame advance
	count int
	index int
	value int
	mode  Mode
}

func NewAnimation(set *FrameSet, delay int, mode Mode) *Animation {
	if delay < 1 {
		delay = 1
	}
	return &Animation{
		set:   set,
		delay: delay,
		value: set.Frames[0],
		mode:  mode,
	}
}

// Animate advances a by one tick. Systems call this rather than a method on
// each entity kind so every entity shares one implementation.
func Animate(a *Animation) {
	if a == nil {
		return
	}
	a.Update()
}

// Update advances the animation by one tick according to its mode.
func (a *Animation) Update() {
	switch a.mode {
	case ModeLoop:
		a.loop()
	case ModePause:
	}
}

// loop advances one frame each time the counter reaches the delay.
func (a *Animation) loop() {
	a.count++
	for a.count >= a.delay {
		a.count -= a.delay
		a.index++
		if a.index >= len(a.set.Frames) {
			a.index = 0
		}
		a.value = a.set.Frames[a.index]
	}
}

// ChangeFrameSet switches to set, restarting at start. Passing the frame set
// that is already active is a no-op.
func (a *Animation) ChangeFrameSet(set *FrameSet, mode Mode, delay, start int) {
	if a.set == set {
		return
	}
	if delay < 1 {
		delay = 1
	}
	if start < 0 || start >= len(set.Frames) {
		start = 0
	}
	a.count = 0
	a.delay = delay
	a.set = set
	a.index = start
	a.value = set.Frames[start]
	a.mode = mode
}

// SetIndex jumps to a frame within the current set without touching the
// tick counter.
func (a *Animation) SetIndex(i int) {
	if i < 0 || i >= len(a.set.Frames) {
		return
	}
	a.index = i
	a.value = a.set.Frames[i]
}

func (a *Animation) Frame() int          { return a.value }
func (a *Animation) Index() int          { return a.index }
func (a *Animation) Count() int          { return a.count }
func (a *Animation) Delay() int          { return a.delay }
func (a *Animation) Mode() Mode          { return a.mode }
func (a *Animation) FrameSet() *FrameSet { return a.set }
