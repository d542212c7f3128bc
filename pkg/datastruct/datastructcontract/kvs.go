package datastructcontract

import (
	"testing"

	"go.llib.dev/containershowcase/pkg/datastruct"
	"go.llib.dev/frameless/pkg/iterkit"
	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"
	"go.llib.dev/testcase/random"
)

type KVSConfig[K comparable, V any] struct {
	MakeK func(testing.TB) K
	MakeV func(testing.TB) V
}

func (c KVSConfig[K, V]) makeK(t *testcase.T) K {
	if c.MakeK == nil {
		t.Fatal("datastructcontract: KVSConfig.MakeK is required")
	}
	return c.MakeK(t)
}

func (c KVSConfig[K, V]) makeV(t *testcase.T) V {
	if c.MakeV == nil {
		t.Fatal("datastructcontract: KVSConfig.MakeV is required")
	}
	return c.MakeV(t)
}

func (c KVSConfig[K, V]) makeEntries(t *testcase.T) map[K]V {
	expected := map[K]V{}
	t.Random.Repeat(3, 7, func() {
		var keys []K
		for k := range expected {
			keys = append(keys, k)
		}
		key := random.Unique(func() K { return c.makeK(t) }, keys...)
		expected[key] = c.makeV(t)
	})
	return expected
}

func KVS[K comparable, V any](make func(tb testing.TB) datastruct.KVS[K, V], c KVSConfig[K, V]) func(s *testcase.Spec) {
	return func(s *testcase.Spec) {
		s.Test("smoke", func(t *testcase.T) {
			var (
				kvs      = make(t)
				expected = c.makeEntries(t)
			)

			var expLen int
			for k, v := range expected {
				assert.Equal(t, kvs.Len(), expLen)
				assert.Empty(t, kvs.Get(k), "zero value was expected for getting a non stored value")
				_, ok := kvs.Lookup(k)
				assert.False(t, ok, assert.MessageF("%#v key was not expected to be found", k))

				kvs.Set(k, v)
				expLen++
				assert.Equal(t, kvs.Len(), expLen)
				got, ok := kvs.Lookup(k)
				assert.True(t, ok)
				assert.Equal(t, v, got)
				assert.Equal(t, v, kvs.Get(k))
			}

			var keys []K
			for k := range expected {
				keys = append(keys, k)
			}
			kNoise := random.Unique(func() K { return c.makeK(t) }, keys...)
			kvs.Set(kNoise, c.makeV(t))
			assert.Equal(t, expLen+1, kvs.Len())
			kvs.Delete(kNoise)
			assert.Equal(t, expLen, kvs.Len())
			_, ok := kvs.Lookup(kNoise)
			assert.False(t, ok)
			assert.Empty(t, kvs.Get(kNoise))

			assert.ContainsExactly(t, keys, kvs.Keys())
			assert.Equal(t, expected, kvs.ToMap())
			assert.Equal(t, expected, iterkit.Collect2Map(kvs.Iter()))
		})

		s.Test("keys are unique in the store", func(t *testcase.T) {
			var kvs = make(t)
			k := c.makeK(t)
			t.Random.Repeat(3, 7, func() {
				kvs.Set(k, c.makeV(t))
			})
			assert.Equal(t, 1, kvs.Len())
			exp := c.makeV(t)
			kvs.Set(k, exp)
			assert.Equal(t, 1, kvs.Len())
			assert.Equal(t, exp, kvs.Get(k))
			kvs.Delete(k)
			assert.Equal(t, 0, kvs.Len())
		})

		s.Test("empty store yields nothing", func(t *testcase.T) {
			var kvs = make(t)
			assert.Equal(t, 0, kvs.Len())
			assert.Empty(t, kvs.Keys())
			assert.Empty(t, iterkit.Collect2Map(kvs.Iter()))
		})
	}
}

func MultiKVS[K comparable, V any](make func(tb testing.TB) datastruct.MultiKVS[K, V], c KVSConfig[K, V]) func(s *testcase.Spec) {
	return func(s *testcase.Spec) {
		s.Test("values of a key are kept in insertion order", func(t *testcase.T) {
			var (
				kvs = make(t)
				key = c.makeK(t)
				vs  = random.Slice(t.Random.IntBetween(2, 5), func() V { return c.makeV(t) })
			)
			for _, v := range vs {
				kvs.Add(key, v)
			}
			got, ok := kvs.Lookup(key)
			assert.True(t, ok)
			assert.Equal(t, vs, got)
			assert.Equal(t, len(vs), kvs.Len())
		})

		s.Test("every entry is yielded during iteration", func(t *testcase.T) {
			var (
				kvs      = make(t)
				expected = c.makeEntries(t)
			)
			var count int
			for k, v := range expected {
				kvs.Add(k, v, v)
				count += 2
			}
			assert.Equal(t, count, kvs.Len())

			var got int
			for k, v := range kvs.Iter() {
				exp, ok := expected[k]
				assert.True(t, ok, assert.MessageF("unexpected key: %#v", k))
				assert.Equal(t, exp, v)
				got++
			}
			assert.Equal(t, count, got)
		})

		s.Test("Delete removes every value of the key", func(t *testcase.T) {
			var (
				kvs = make(t)
				key = c.makeK(t)
			)
			kvs.Add(key, c.makeV(t), c.makeV(t))
			kvs.Delete(key)
			_, ok := kvs.Lookup(key)
			assert.False(t, ok)
			assert.Equal(t, 0, kvs.Len())
		})

		s.Test("missing key", func(t *testcase.T) {
			var kvs = make(t)
			_, ok := kvs.Lookup(c.makeK(t))
			assert.False(t, ok)
		})
	}
}
