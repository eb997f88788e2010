//go:build !unix

package alloc

// Mapped falls back to runtime allocation on platforms without mmap support.
type Mapped struct {
	std Std
}

// NewMapped creates the fallback allocator.
func NewMapped() *Mapped {
	return &Mapped{}
}

func (m *Mapped) Allocate(n int) ([]byte, error) {
	return m.std.Allocate(n)
}

func (m *Mapped) Reallocate(buf []byte, n int) ([]byte, error) {
	return m.std.Reallocate(buf, n)
}

func (m *Mapped) Free(buf []byte) {
	m.std.Free(buf)
}

var _ Allocator = (*Mapped)(nil)
