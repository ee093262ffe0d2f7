package orm

import (
	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/errors"
)

func (mb *modelBucket) Register(name string, r swapchain.QueryRouter) {
	root := "/" + name
	r.Register(root, bucketQuery{mb})
	for _, idx := range mb.indexes {
		r.Register(root+"/"+idx.name, indexQuery{mb: mb, idx: idx})
	}
}

// bucketQuery serves the models stored in a bucket. Returned keys do not
// carry the bucket prefix.
type bucketQuery struct {
	mb *modelBucket
}

func (q bucketQuery) Query(db swapchain.ReadOnlyKVStore, mod string, data []byte) ([]swapchain.Model, error) {
	switch mod {
	case swapchain.KeyQueryMod:
		raw, ok, err := q.mb.get(db, data)
		if err != nil || !ok {
			return nil, err
		}
		return []swapchain.Model{swapchain.Pair(data, raw)}, nil
	case swapchain.PrefixQueryMod:
		start := q.mb.dbKey(data)
		it, err := db.Iterator(start, prefixEnd(start))
		if err != nil {
			return nil, err
		}
		defer it.Close()

		var res []swapchain.Model
		for ; it.Valid(); it.Next() {
			key := append([]byte{}, it.Key()[len(q.mb.prefix):]...)
			res = append(res, swapchain.Pair(key, it.Value()))
		}
		return res, nil
	default:
		return nil, errors.Wrapf(errors.ErrInvalidInput, "unknown query mod %q", mod)
	}
}

// indexQuery serves all models referenced by an index value.
type indexQuery struct {
	mb  *modelBucket
	idx *index
}

func (q indexQuery) Query(db swapchain.ReadOnlyKVStore, mod string, data []byte) ([]swapchain.Model, error) {
	if mod != swapchain.KeyQueryMod {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "unknown query mod %q", mod)
	}
	keys, err := q.idx.keys(db, data)
	if err != nil {
		return nil, err
	}
	res := make([]swapchain.Model, 0, len(keys))
	for _, pk := range keys {
		raw, _, err := q.mb.get(db, pk)
		if err != nil {
			return nil, err
		}
		res = append(res, swapchain.Pair(pk, raw))
	}
	return res, nil
}
