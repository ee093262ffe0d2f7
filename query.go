package swapchain

import (
	"fmt"
	"strings"
)

// Query modifiers are appended to the path after a question mark.
const (
	KeyQueryMod    = ""
	PrefixQueryMod = "prefix"
)

// Model is a single key value pair returned by a query.
type Model struct {
	Key   []byte
	Value []byte
}

func Pair(key, value []byte) Model {
	return Model{Key: key, Value: value}
}

// QueryHandler serves reads of a single path against the committed state.
type QueryHandler interface {
	Query(db ReadOnlyKVStore, mod string, data []byte) ([]Model, error)
}

// QueryRegister is provided by each extension to add its paths.
type QueryRegister func(QueryRouter)

// QueryRouter dispatches a query path to its handler.
type QueryRouter struct {
	routes map[string]QueryHandler
}

func NewQueryRouter() QueryRouter {
	return QueryRouter{routes: make(map[string]QueryHandler)}
}

// RegisterAll calls every register function with this router.
func (r QueryRouter) RegisterAll(regs ...QueryRegister) {
	for _, reg := range regs {
		reg(r)
	}
}

// Register binds the handler to the path. A path can be bound once, a
// second registration panics.
func (r QueryRouter) Register(path string, h QueryHandler) {
	if _, dup := r.routes[path]; dup {
		panic(fmt.Sprintf("query path %q already registered", path))
	}
	r.routes[path] = h
}

// Handler splits the modifier from the path, as in "/offers?prefix", and
// returns the handler bound to the rest. The handler is nil for an unknown
// path.
func (r QueryRouter) Handler(path string) (QueryHandler, string) {
	i := strings.LastIndexByte(path, '?')
	if i < 0 {
		return r.routes[path], KeyQueryMod
	}
	return r.routes[path[:i]], path[i+1:]
}
