package reactor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReactiveSlice(t *testing.T) {
	t.Run("Get/Len reflect the wrapped slice", func(t *testing.T) {
		s := NewReactiveSlice([]int{1, 2, 3})
		assert.Equal(t, 3, s.Len())
		assert.Equal(t, 2, s.Get(1))
		assert.Equal(t, 0, s.Get(99)) // out of range reads the zero value
	})

	t.Run("Set on an index re-runs a reader of that index only", func(t *testing.T) {
		s := NewReactiveSlice([]int{1, 2})
		idx0Runs, idx1Runs := 0, 0

		NewEffect(func() {
			idx0Runs++
			s.Get(0)
		})
		NewEffect(func() {
			idx1Runs++
			s.Get(1)
		})

		s.Set(1, 20)
		assert.Equal(t, 1, idx0Runs)
		assert.Equal(t, 2, idx1Runs)

		s.Set(1, 20) // unchanged value, no-op
		assert.Equal(t, 2, idx1Runs)
	})

	t.Run("Push re-runs a Len reader and a Range reader", func(t *testing.T) {
		s := NewReactiveSlice([]int{1})
		lenRuns, rangeRuns := 0, 0

		NewEffect(func() {
			lenRuns++
			s.Len()
		})
		NewEffect(func() {
			rangeRuns++
			for range s.Range() {
			}
		})

		s.Push(2, 3)
		assert.Equal(t, 2, lenRuns)
		assert.Equal(t, 2, rangeRuns)
		assert.Equal(t, 3, s.Len())
	})

	t.Run("Pop shrinks the slice and reports the removed element", func(t *testing.T) {
		s := NewReactiveSlice([]int{1, 2, 3})
		v, ok := s.Pop()
		assert.True(t, ok)
		assert.Equal(t, 3, v)
		assert.Equal(t, 2, s.Len())

		s2 := NewReactiveSlice([]int{})
		_, ok2 := s2.Pop()
		assert.False(t, ok2)
	})

	t.Run("Shift/Unshift operate on the front", func(t *testing.T) {
		s := NewReactiveSlice([]int{2, 3})
		s.Unshift(1)
		assert.Equal(t, []int{1, 2, 3}, ToRaw(s).([]int))

		v, ok := s.Shift()
		assert.True(t, ok)
		assert.Equal(t, 1, v)
		assert.Equal(t, []int{2, 3}, ToRaw(s).([]int))
	})

	t.Run("Splice removes and inserts in one pass", func(t *testing.T) {
		s := NewReactiveSlice([]int{1, 2, 3, 4, 5})
		removed := s.Splice(1, 2, 20, 30, 40)
		assert.Equal(t, []int{2, 3}, removed)
		assert.Equal(t, []int{1, 20, 30, 40, 4, 5}, ToRaw(s).([]int))
	})

	t.Run("SetLength grows with zero values and shrinks", func(t *testing.T) {
		s := NewReactiveSlice([]int{1, 2, 3})
		s.SetLength(5)
		assert.Equal(t, []int{1, 2, 3, 0, 0}, ToRaw(s).([]int))

		s.SetLength(1)
		assert.Equal(t, []int{1}, ToRaw(s).([]int))
	})

	t.Run("batched length-changing mutations coalesce into a single effect run", func(t *testing.T) {
		s := NewReactiveSlice([]int{1})
		runs := 0
		NewEffect(func() {
			runs++
			s.Len()
		})

		Batch(func() {
			s.Push(2)
			s.Push(3)
		})
		assert.Equal(t, 2, runs)
		assert.Equal(t, 3, s.Len())
	})

	t.Run("IndexOf/LastIndexOf/Includes scan by predicate", func(t *testing.T) {
		s := NewReactiveSlice([]int{10, 20, 30, 20})
		assert.Equal(t, 1, s.IndexOf(func(v int) bool { return v == 20 }))
		assert.Equal(t, 3, s.LastIndexOf(func(v int) bool { return v == 20 }))
		assert.True(t, s.Includes(func(v int) bool { return v == 30 }))
		assert.False(t, s.Includes(func(v int) bool { return v == 99 }))
	})

	t.Run("a readonly slice rejects mutation and stays unchanged", func(t *testing.T) {
		s := NewReactiveSlice([]int{1, 2}, AsReadonly())

		s.Set(0, 99)
		s.Push(3)
		_, ok := s.Pop()

		assert.False(t, ok)
		assert.Equal(t, []int{1, 2}, ToRaw(s).([]int))
		assert.True(t, s.IsReadonly())
	})
}
