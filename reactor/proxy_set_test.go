package reactor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReactiveSet(t *testing.T) {
	t.Run("Has/Len reflect the wrapped set", func(t *testing.T) {
		s := NewReactiveSet([]string{"a", "b"})
		assert.True(t, s.Has("a"))
		assert.False(t, s.Has("c"))
		assert.Equal(t, 2, s.Len())
	})

	t.Run("Add on a new member re-runs a Has reader and a Len reader", func(t *testing.T) {
		s := NewReactiveSet([]string{})
		hasRuns, lenRuns := 0, 0

		NewEffect(func() {
			hasRuns++
			s.Has("a")
		})
		NewEffect(func() {
			lenRuns++
			s.Len()
		})

		s.Add("a")
		assert.Equal(t, 2, hasRuns)
		assert.Equal(t, 2, lenRuns)

		s.Add("a") // already present, no-op
		assert.Equal(t, 2, hasRuns)
		assert.Equal(t, 2, lenRuns)
	})

	t.Run("Delete re-runs readers only when the member was present", func(t *testing.T) {
		s := NewReactiveSet([]string{"a"})
		lenRuns := 0
		NewEffect(func() {
			lenRuns++
			s.Len()
		})

		s.Delete("b")
		assert.Equal(t, 1, lenRuns)

		s.Delete("a")
		assert.Equal(t, 2, lenRuns)
		assert.False(t, s.Has("a"))
	})

	t.Run("Clear fans out to every registered dep", func(t *testing.T) {
		s := NewReactiveSet([]string{"a", "b"})
		aRuns := 0
		NewEffect(func() {
			aRuns++
			s.Has("a")
		})

		s.Clear()
		assert.Equal(t, 2, aRuns)
		assert.Equal(t, 0, s.Len())
	})

	t.Run("a readonly set rejects writes and stays unchanged", func(t *testing.T) {
		s := NewReactiveSet([]string{"a"}, AsReadonly())

		s.Add("b")
		s.Delete("a")
		s.Clear()

		assert.True(t, s.Has("a"))
		assert.False(t, s.Has("b"))
		assert.True(t, s.IsReadonly())
	})
}
