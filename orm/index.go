package orm

import (
	"bytes"
	"encoding/binary"

	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/errors"
)

const indexPrefix = "_i."

// Indexer calculates the secondary index key for a given model. Returning
// a nil key excludes the model from the index.
type Indexer func(Model) ([]byte, error)

// index stores one entry per indexed model, with no value:
//
//   _i.<bucket>_<name>:<len(value)><value><primary key>
//
// Prefixing the value with its length keeps values of different lengths
// from sharing a key prefix, so all references of one value can be read
// with a single range scan.
type index struct {
	name    string
	prefix  []byte
	indexer Indexer
	unique  bool
}

func newIndex(bucket, name string, indexer Indexer, unique bool) *index {
	return &index{
		name:    name,
		prefix:  []byte(indexPrefix + bucket + "_" + name + ":"),
		indexer: indexer,
		unique:  unique,
	}
}

func (i *index) valuePrefix(value []byte) []byte {
	res := make([]byte, 0, len(i.prefix)+4+len(value))
	res = append(res, i.prefix...)
	var l [4]byte
	binary.BigEndian.PutUint32(l[:], uint32(len(value)))
	res = append(res, l[:]...)
	return append(res, value...)
}

// update replaces the index entry of prev with the one of next. A nil prev
// means insert, a nil next means delete.
func (i *index) update(db swapchain.KVStore, pk []byte, prev, next Model) error {
	var prevVal, nextVal []byte
	var err error
	if prev != nil {
		if prevVal, err = i.indexer(prev); err != nil {
			return err
		}
	}
	if next != nil {
		if nextVal, err = i.indexer(next); err != nil {
			return err
		}
	}

	if prev != nil && next != nil && bytes.Equal(prevVal, nextVal) {
		return nil
	}
	if prevVal != nil {
		if err := db.Delete(append(i.valuePrefix(prevVal), pk...)); err != nil {
			return err
		}
	}
	if nextVal == nil {
		return nil
	}
	if i.unique {
		keys, err := i.keys(db, nextVal)
		if err != nil {
			return err
		}
		for _, k := range keys {
			if !bytes.Equal(k, pk) {
				return errors.Wrapf(errors.ErrDuplicate, "unique index %q", i.name)
			}
		}
	}
	return db.Set(append(i.valuePrefix(nextVal), pk...), []byte{})
}

// keys returns the primary keys of all models indexed under given value.
func (i *index) keys(db swapchain.ReadOnlyKVStore, value []byte) ([][]byte, error) {
	start := i.valuePrefix(value)
	it, err := db.Iterator(start, prefixEnd(start))
	if err != nil {
		return nil, err
	}
	defer it.Close()

	var res [][]byte
	for ; it.Valid(); it.Next() {
		pk := it.Key()[len(start):]
		res = append(res, append([]byte{}, pk...))
	}
	return res, nil
}

// prefixEnd returns the first key that does not start with given prefix,
// or nil if there is no such key.
func prefixEnd(prefix []byte) []byte {
	end := append([]byte{}, prefix...)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xff {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
