package orm

import (
	"reflect"
	"regexp"

	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/errors"
)

// Model is implemented by any entity that can be stored using ModelBucket.
type Model interface {
	Validate() error
}

// ModelSlicePtr represents a pointer to a slice of models. Think of it as
// *[]Model Because of Go type system, using []Model type would not work for us.
// Instead we use a placeholder type and the validation is done during the
// runtime.
type ModelSlicePtr interface{}

// ModelBucket is implemented by buckets that operates on Models.
type ModelBucket interface {
	// One query the database for a single model instance. Lookup is done
	// by the primary index key. Result is loaded into given destination
	// model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	One(db swapchain.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns nil if an entity with given primary key exists.
	// It returns ErrNotFound if an entity with given key does not exist.
	Has(db swapchain.ReadOnlyKVStore, key []byte) error

	// ByIndex returns all models that a given index points to. Data is
	// loaded into a destination that must be a pointer to a slice of
	// models. Primary keys of the loaded models are returned in the same
	// order.
	ByIndex(db swapchain.ReadOnlyKVStore, indexName string, key []byte, dest ModelSlicePtr) ([][]byte, error)

	// Put saves given model in the database. Indexes are updated.
	Put(db swapchain.KVStore, key []byte, m Model) error

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db swapchain.KVStore, key []byte) error

	// Register the bucket and all its indexes in the query router. The
	// bucket is served under /<name> and each index under
	// /<name>/<index name>.
	Register(name string, r swapchain.QueryRouter)
}

var isBucketName = regexp.MustCompile(`^[a-z_]{3,20}$`).MatchString

// NewModelBucket returns a ModelBucket instance that stores models of the
// same type as the given example under the given name.
func NewModelBucket(name string, example Model, opts ...ModelBucketOption) ModelBucket {
	if !isBucketName(name) {
		panic("invalid bucket name: " + name)
	}
	tp := reflect.TypeOf(example)
	if tp.Kind() != reflect.Ptr {
		panic("model must be a pointer")
	}
	b := &modelBucket{
		name:    name,
		prefix:  []byte(name + ":"),
		model:   tp.Elem(),
		indexes: make(map[string]*index),
	}
	for _, fn := range opts {
		fn(b)
	}
	return b
}

// ModelBucketOption is implemented by any function that can configure
// ModelBucket during creation.
type ModelBucketOption func(mb *modelBucket)

// WithIndex configures the bucket to build an index with given name. All
// entities stored in the bucket are indexed using value returned by the
// indexer function. A nil value is not indexed. If an index is unique,
// there can be only one entity referenced per index value.
func WithIndex(name string, indexer Indexer, unique bool) ModelBucketOption {
	return func(mb *modelBucket) {
		if _, ok := mb.indexes[name]; ok {
			panic("duplicated index name: " + name)
		}
		mb.indexes[name] = newIndex(mb.name, name, indexer, unique)
	}
}

type modelBucket struct {
	name    string
	prefix  []byte
	model   reflect.Type
	indexes map[string]*index
}

func (mb *modelBucket) dbKey(key []byte) []byte {
	return append(append([]byte{}, mb.prefix...), key...)
}

func (mb *modelBucket) One(db swapchain.ReadOnlyKVStore, key []byte, dest Model) error {
	raw, ok, err := mb.get(db, key)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "%s not in the store", mb.model.Name())
	}
	if reflect.TypeOf(dest) != reflect.PtrTo(mb.model) {
		return errors.Wrapf(errors.ErrInvalidType, "%T cannot be represented as %s", dest, mb.model.Name())
	}
	return Unmarshal(raw, dest)
}

func (mb *modelBucket) Has(db swapchain.ReadOnlyKVStore, key []byte) error {
	ok, err := db.Has(mb.dbKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot query the database")
	}
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "%s not in the store", mb.model.Name())
	}
	return nil
}

func (mb *modelBucket) ByIndex(db swapchain.ReadOnlyKVStore, indexName string, key []byte, dest ModelSlicePtr) ([][]byte, error) {
	idx, ok := mb.indexes[indexName]
	if !ok {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "unknown index %q", indexName)
	}

	dp := reflect.ValueOf(dest)
	if dp.Kind() != reflect.Ptr || dp.Elem().Kind() != reflect.Slice {
		return nil, errors.Wrap(errors.ErrInvalidType, "destination must be a pointer to a slice of models")
	}
	if dp.IsNil() {
		return nil, errors.Wrap(errors.ErrHuman, "got nil pointer")
	}

	slice := dp.Elem()
	elemType := slice.Type().Elem()
	// Accept both []*Model and []Model destinations.
	asPtr := elemType.Kind() == reflect.Ptr
	if asPtr && elemType.Elem() != mb.model || !asPtr && elemType != mb.model {
		return nil, errors.Wrapf(errors.ErrInvalidType, "this bucket operates on %s model", mb.model.Name())
	}

	keys, err := idx.keys(db, key)
	if err != nil {
		return nil, err
	}
	for _, pk := range keys {
		raw, ok, err := mb.get(db, pk)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.Wrapf(errors.ErrDatabase, "index %q points to a missing entity", indexName)
		}
		m := reflect.New(mb.model)
		if err := Unmarshal(raw, m.Interface()); err != nil {
			return nil, err
		}
		if asPtr {
			slice = reflect.Append(slice, m)
		} else {
			slice = reflect.Append(slice, m.Elem())
		}
	}
	dp.Elem().Set(slice)
	return keys, nil
}

func (mb *modelBucket) Put(db swapchain.KVStore, key []byte, m Model) error {
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "key")
	}
	if reflect.TypeOf(m) != reflect.PtrTo(mb.model) {
		return errors.Wrapf(errors.ErrInvalidType, "cannot store %T in %s bucket", m, mb.name)
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}

	prev, err := mb.load(db, key)
	if err != nil {
		return err
	}
	for _, idx := range mb.indexes {
		if err := idx.update(db, key, prev, m); err != nil {
			return errors.Wrapf(err, "cannot update %q index", idx.name)
		}
	}

	raw, err := Marshal(m)
	if err != nil {
		return err
	}
	if err := db.Set(mb.dbKey(key), raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

func (mb *modelBucket) Delete(db swapchain.KVStore, key []byte) error {
	prev, err := mb.load(db, key)
	if err != nil {
		return err
	}
	if prev == nil {
		return errors.Wrapf(errors.ErrNotFound, "%s not in the store", mb.model.Name())
	}
	for _, idx := range mb.indexes {
		if err := idx.update(db, key, prev, nil); err != nil {
			return errors.Wrapf(err, "cannot update %q index", idx.name)
		}
	}
	if err := db.Delete(mb.dbKey(key)); err != nil {
		return errors.Wrap(err, "cannot delete from the database")
	}
	return nil
}

// load returns the stored model or nil if it does not exist.
func (mb *modelBucket) load(db swapchain.ReadOnlyKVStore, key []byte) (Model, error) {
	raw, ok, err := mb.get(db, key)
	if err != nil || !ok {
		return nil, err
	}
	m := reflect.New(mb.model).Interface().(Model)
	if err := Unmarshal(raw, m); err != nil {
		return nil, err
	}
	return m, nil
}

// get returns the raw value stored under given key. A zero value model is
// stored as an empty value, which some stores return as nil, so absence is
// confirmed with Has.
func (mb *modelBucket) get(db swapchain.ReadOnlyKVStore, key []byte) ([]byte, bool, error) {
	raw, err := db.Get(mb.dbKey(key))
	if err != nil {
		return nil, false, errors.Wrap(err, "cannot load from the database")
	}
	if raw != nil {
		return raw, true, nil
	}
	ok, err := db.Has(mb.dbKey(key))
	if err != nil {
		return nil, false, errors.Wrap(err, "cannot query the database")
	}
	return raw, ok, nil
}

var _ ModelBucket = (*modelBucket)(nil)
