package reactor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkRaw(t *testing.T) {
	t.Run("a marked-raw value reports as no kind of proxy", func(t *testing.T) {
		raw := MarkRaw(map[string]int{"a": 1})

		assert.False(t, IsProxy(raw))
		assert.False(t, IsReactive(raw))
		assert.False(t, IsReadonly(raw))
		assert.False(t, IsShallow(raw))
		assert.True(t, IsMarkedRaw(raw))
	})

	t.Run("ToRaw unwraps a marked-raw value back to the original", func(t *testing.T) {
		original := map[string]int{"a": 1}
		raw := MarkRaw(original)

		assert.Equal(t, original, ToRaw(raw))
	})

	t.Run("a plain reactive wrapper still reports as a proxy", func(t *testing.T) {
		m := NewReactiveMap(map[string]int{"a": 1})

		assert.True(t, IsProxy(m))
		assert.True(t, IsReactive(m))
	})
}

func TestWrapperIdentity(t *testing.T) {
	t.Run("wrapping the same map under the same mode returns the same wrapper", func(t *testing.T) {
		data := map[string]int{"a": 1}

		first := NewReactiveMap(data)
		second := NewReactiveMap(data)

		assert.Same(t, first, second)
	})

	t.Run("wrapping the same map under a different mode returns a different wrapper", func(t *testing.T) {
		data := map[string]int{"a": 1}

		reactive := NewReactiveMap(data)
		readonly := NewReactiveMap(data, AsReadonly())

		assert.NotSame(t, reactive, readonly)
	})

	t.Run("wrapping distinct maps never aliases their wrappers", func(t *testing.T) {
		first := NewReactiveMap(map[string]int{"a": 1})
		second := NewReactiveMap(map[string]int{"a": 1})

		assert.NotSame(t, first, second)
	})

	t.Run("wrapping the same backing slice under the same mode returns the same wrapper", func(t *testing.T) {
		data := []int{1, 2, 3}

		first := NewReactiveSlice(data)
		second := NewReactiveSlice(data)

		assert.Same(t, first, second)
	})
}
