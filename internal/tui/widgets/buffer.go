package widgets

// editBuffer is a rune buffer with a cursor, shared by the numeric
// widgets. Insertion is gated by the owning widget so the buffer itself
// accepts anything.
type editBuffer struct {
	runes  []rune
	cursor int
}

func newEditBuffer(initial string) *editBuffer {
	r := []rune(initial)
	return &editBuffer{runes: r, cursor: len(r)}
}

func (b *editBuffer) String() string { return string(b.runes) }

func (b *editBuffer) Set(s string) {
	b.runes = []rune(s)
	b.cursor = len(b.runes)
}

func (b *editBuffer) Insert(r rune) {
	b.runes = append(b.runes, 0)
	copy(b.runes[b.cursor+1:], b.runes[b.cursor:])
	b.runes[b.cursor] = r
	b.cursor++
}

func (b *editBuffer) Backspace() bool {
	if b.cursor == 0 {
		return false
	}
	b.runes = append(b.runes[:b.cursor-1], b.runes[b.cursor:]...)
	b.cursor--
	return true
}

func (b *editBuffer) Delete() bool {
	if b.cursor >= len(b.runes) {
		return false
	}
	b.runes = append(b.runes[:b.cursor], b.runes[b.cursor+1:]...)
	return true
}

func (b *editBuffer) Left() {
	if b.cursor > 0 {
		b.cursor--
	}
}

func (b *editBuffer) Right() {
	if b.cursor < len(b.runes) {
		b.cursor++
	}
}

func (b *editBuffer) Home() { b.cursor = 0 }
func (b *editBuffer) End()  { b.cursor = len(b.runes) }

// Display returns the buffer with a block cursor glyph inserted at the
// cursor position.
func (b *editBuffer) Display() string {
	out := make([]rune, 0, len(b.runes)+1)
	out = append(out, b.runes[:b.cursor]...)
	out = append(out, '█')
	out = append(out, b.runes[b.cursor:]...)
	return string(out)
}
