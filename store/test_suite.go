package store

import (
	"bytes"
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSuite provides store checks that can be called in package-specific
// test code. Only the store being tested is customized (pass in
// constructor). The rest of the logic is generic to the CacheableKVStore
// interface, so the btree cache and the iavl store share it.
type TestSuite struct {
	makeBase TestStoreConstructor
}

// TestStoreConstructor returns a fresh store and a cleanup function.
type TestStoreConstructor func() (base CacheableKVStore, cleanup func())

func NewTestSuite(constructor TestStoreConstructor) *TestSuite {
	return &TestSuite{
		makeBase: constructor,
	}
}

// GetSet does basic sanity checks on the store and its cache wraps.
func (s *TestSuite) GetSet(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	k, v := []byte("french"), []byte("fry")
	s.AssertGetHas(t, base, k, nil, false)
	require.NoError(t, base.Set(k, v))
	s.AssertGetHas(t, base, k, v, true)

	// now layer a cache on top and make sure that we get base data
	cache := base.CacheWrap()
	s.AssertGetHas(t, cache, k, v, true)

	// writing more data is only visible in the cache
	k2, v2 := []byte("LA"), []byte("Dodgers")
	require.NoError(t, cache.Set(k2, v2))
	s.AssertGetHas(t, cache, k2, v2, true)
	s.AssertGetHas(t, base, k2, nil, false)

	// we can write the cache to the base layer...
	require.NoError(t, cache.Write())
	s.AssertGetHas(t, base, k2, v2, true)

	// we can discard one
	k3, v3 := []byte("Bayern"), []byte("Munich")
	c2 := base.CacheWrap()
	require.NoError(t, c2.Set(k3, v3))
	require.NoError(t, c2.Delete(k))
	s.AssertGetHas(t, c2, k, nil, false)
	c2.Discard()
	s.AssertGetHas(t, base, k3, nil, false)
	s.AssertGetHas(t, base, k, v, true)

	// deletes go through when written
	c3 := base.CacheWrap()
	require.NoError(t, c3.Delete(k))
	require.NoError(t, c3.Write())
	s.AssertGetHas(t, base, k, nil, false)
}

// IteratorWithConflicts checks that iterating over a cache wrap combines
// the cached writes and deletes with the data underneath.
func (s *TestSuite) IteratorWithConflicts(t *testing.T) {
	cases := map[string]struct {
		parentSet []Model
		childSet  []Model
		childDel  [][]byte
		start     []byte
		end       []byte
		want      []Model
	}{
		"only parent": {
			parentSet: []Model{m("a", "1"), m("b", "2")},
			want:      []Model{m("a", "1"), m("b", "2")},
		},
		"only child": {
			childSet: []Model{m("c", "3"), m("a", "1")},
			want:     []Model{m("a", "1"), m("c", "3")},
		},
		"child overwrites parent": {
			parentSet: []Model{m("a", "1"), m("b", "2")},
			childSet:  []Model{m("b", "new")},
			want:      []Model{m("a", "1"), m("b", "new")},
		},
		"child deletes parent": {
			parentSet: []Model{m("a", "1"), m("b", "2"), m("c", "3")},
			childDel:  [][]byte{[]byte("b")},
			want:      []Model{m("a", "1"), m("c", "3")},
		},
		"delete then set": {
			parentSet: []Model{m("a", "1")},
			childDel:  [][]byte{[]byte("a")},
			childSet:  []Model{m("a", "again")},
			want:      []Model{m("a", "again")},
		},
		"bounded range": {
			parentSet: []Model{m("a", "1"), m("b", "2"), m("d", "4")},
			childSet:  []Model{m("c", "3"), m("e", "5")},
			start:     []byte("b"),
			end:       []byte("e"),
			want:      []Model{m("b", "2"), m("c", "3"), m("d", "4")},
		},
		"open end": {
			parentSet: []Model{m("a", "1"), m("b", "2")},
			childSet:  []Model{m("c", "3")},
			start:     []byte("b"),
			want:      []Model{m("b", "2"), m("c", "3")},
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			base, cleanup := s.makeBase()
			defer cleanup()

			for _, m := range tc.parentSet {
				require.NoError(t, base.Set(m.Key, m.Value))
			}
			child := base.CacheWrap()
			for _, k := range tc.childDel {
				require.NoError(t, child.Delete(k))
			}
			for _, m := range tc.childSet {
				require.NoError(t, child.Set(m.Key, m.Value))
			}

			it, err := child.Iterator(tc.start, tc.end)
			require.NoError(t, err)
			assert.Equal(t, tc.want, readAll(it))

			it, err = child.ReverseIterator(tc.start, tc.end)
			require.NoError(t, err)
			assert.Equal(t, reversed(tc.want), readAll(it))
		})
	}
}

// FuzzIterator writes random data through a cache wrap and checks that
// the iterator returns it sorted, before and after the write.
func (s *TestSuite) FuzzIterator(t *testing.T) {
	base, cleanup := s.makeBase()
	defer cleanup()

	r := rand.New(rand.NewSource(42))
	want := make(map[string][]byte)
	for i := 0; i < 50; i++ {
		k, v := []byte(fmt.Sprintf("key-%04d", r.Intn(1000))), randBytes(r, 8)
		require.NoError(t, base.Set(k, v))
		want[string(k)] = v
	}
	cache := base.CacheWrap()
	for i := 0; i < 50; i++ {
		k := []byte(fmt.Sprintf("key-%04d", r.Intn(1000)))
		if r.Intn(3) == 0 {
			require.NoError(t, cache.Delete(k))
			delete(want, string(k))
			continue
		}
		v := randBytes(r, 8)
		require.NoError(t, cache.Set(k, v))
		want[string(k)] = v
	}

	expected := make([]Model, 0, len(want))
	for k, v := range want {
		expected = append(expected, Model{Key: []byte(k), Value: v})
	}
	sort.Slice(expected, func(i, j int) bool {
		return bytes.Compare(expected[i].Key, expected[j].Key) < 0
	})

	it, err := cache.Iterator(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, expected, readAll(it))

	require.NoError(t, cache.Write())
	it, err = base.Iterator(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, expected, readAll(it))
}

// AssertGetHas makes sure that Get and Has agree on the key state.
func (s *TestSuite) AssertGetHas(t testing.TB, kv ReadOnlyKVStore, key, val []byte, has bool) {
	t.Helper()
	got, err := kv.Get(key)
	require.NoError(t, err)
	assert.Equal(t, val, got)
	exists, err := kv.Has(key)
	require.NoError(t, err)
	assert.Equal(t, has, exists)
}

func m(key, value string) Model {
	return Model{Key: []byte(key), Value: []byte(value)}
}

func readAll(it Iterator) []Model {
	defer it.Close()
	return drain(it)
}

func reversed(models []Model) []Model {
	cpy := make([]Model, len(models))
	copy(cpy, models)
	return reverse(cpy)
}

func randBytes(r *rand.Rand, length int) []byte {
	res := make([]byte, length)
	r.Read(res)
	return res
}
