package app

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/iov-one/swapchain"
	"github.com/iov-one/swapchain/errors"
	abci "github.com/tendermint/tendermint/abci/types"
	"github.com/tendermint/tendermint/libs/log"
)

// StoreApp implements the parts of abci.Application that do not process
// transactions: handshake, genesis, queries and the block lifecycle.
//
// A failure in a call that carries no user input means the node state is
// broken. Such failures panic.
//
// A single mutex serializes every abci call.
type StoreApp struct {
	mtx    sync.Mutex
	logger log.Logger
	name   string
	debug  bool

	store       *CommitStore
	initializer swapchain.Initializer
	queryRouter swapchain.QueryRouter

	// chainID is empty until genesis.
	chainID string

	// baseContext lives as long as the application, blockContext is
	// rebuilt by every BeginBlock.
	baseContext  swapchain.Context
	blockContext swapchain.Context
}

// NewStoreApp opens the latest version of the store and restores the chain
// id and height it was left with. It panics if the store cannot be read.
func NewStoreApp(name string, kv swapchain.CommitKVStore, queryRouter swapchain.QueryRouter, baseContext swapchain.Context) *StoreApp {
	s := &StoreApp{
		name:        name,
		store:       NewCommitStore(kv),
		queryRouter: queryRouter,
		baseContext: baseContext,
	}
	s = s.WithLogger(log.NewNopLogger())

	if s.chainID = mustLoadChainID(s.DeliverStore()); s.chainID != "" {
		s.baseContext = swapchain.WithChainID(s.baseContext, s.chainID)
	}
	info, err := s.store.CommitInfo()
	if err != nil {
		panic(err)
	}
	s.blockContext = swapchain.WithHeight(s.baseContext, info.Version)
	return s
}

func (s *StoreApp) GetChainID() string {
	return s.chainID
}

// WithInit sets the initializer run by InitChain.
func (s *StoreApp) WithInit(init swapchain.Initializer) *StoreApp {
	s.initializer = init
	return s
}

// WithDebug makes the application return full error information.
func (s *StoreApp) WithDebug(debug bool) *StoreApp {
	s.debug = debug
	return s
}

// WithLogger sets the logger of the application and of its contexts.
func (s *StoreApp) WithLogger(logger log.Logger) *StoreApp {
	s.logger = logger
	s.baseContext = swapchain.WithLogger(s.baseContext, logger)
	if s.blockContext != nil {
		s.blockContext = swapchain.WithLogger(s.blockContext, logger)
	}
	return s
}

func (s *StoreApp) Logger() log.Logger {
	return s.logger
}

// BlockContext returns the context of the block being processed.
func (s *StoreApp) BlockContext() swapchain.Context {
	return s.blockContext
}

func (s *StoreApp) DeliverStore() swapchain.CacheableKVStore {
	return s.store.DeliverStore()
}

func (s *StoreApp) CheckStore() swapchain.CacheableKVStore {
	return s.store.CheckStore()
}

// LoadGenesis initializes the state from the genesis file at given path,
// the same way InitChain does with the app state sent by tendermint.
func (s *StoreApp) LoadGenesis(filePath string, init swapchain.Initializer) error {
	gen, err := LoadGenesis(filePath)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(gen.AppState)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidInput, err.Error())
	}
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.genesis(raw, gen.ChainID, init)
}

// genesis stores the chain id and runs the initializer. It is allowed
// only once in the lifetime of a chain.
func (s *StoreApp) genesis(appState []byte, chainID string, init swapchain.Initializer) error {
	if s.chainID != "" {
		return errors.Wrapf(errors.ErrInvalidState, "genesis already loaded for chain %q", s.chainID)
	}
	if len(appState) == 0 {
		return errors.Wrap(errors.ErrInvalidState, "app_state missing from genesis")
	}
	var opts swapchain.Options
	if err := json.Unmarshal(appState, &opts); err != nil {
		return errors.Wrap(errors.ErrInvalidInput, err.Error())
	}

	if err := saveChainID(s.DeliverStore(), chainID); err != nil {
		return err
	}
	s.chainID = chainID
	s.baseContext = swapchain.WithChainID(s.baseContext, chainID)
	s.blockContext = swapchain.WithChainID(s.blockContext, chainID)

	if init == nil {
		return nil
	}
	return init.FromGenesis(opts, s.DeliverStore())
}

// Info returns the name, version and last committed block of the
// application.
func (s *StoreApp) Info(req abci.RequestInfo) abci.ResponseInfo {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	info, err := s.store.CommitInfo()
	if err != nil {
		panic(err)
	}
	s.logger.Info("info", "height", info.Version, "hash", fmt.Sprintf("%X", info.Hash))
	return abci.ResponseInfo{
		Data:             s.name,
		Version:          swapchain.Version(),
		LastBlockHeight:  info.Version,
		LastBlockAppHash: info.Hash,
	}
}

func (s *StoreApp) SetOption(abci.RequestSetOption) abci.ResponseSetOption {
	return abci.ResponseSetOption{Log: "not supported"}
}

// Query reads from the last committed state. The path selects the query
// handler, for example "/offers" or "/wallets?prefix". Height and proof
// requests are ignored.
//
// Key and Value of the response are both serialized ResultSets holding
// the same number of entries.
func (s *StoreApp) Query(req abci.RequestQuery) abci.ResponseQuery {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	qh, mod := s.queryRouter.Handler(req.Path)
	if qh == nil {
		return swapchain.QueryError(errors.Wrapf(errors.ErrNotFound, "query path %q", req.Path), s.debug)
	}
	info, err := s.store.CommitInfo()
	if err != nil {
		return swapchain.QueryError(err, s.debug)
	}

	db := s.store.QueryStore()
	defer db.Discard()
	models, err := qh.Query(db, mod, req.Data)
	if err != nil {
		return swapchain.QueryError(err, s.debug)
	}

	res := abci.ResponseQuery{Height: info.Version}
	if res.Key, err = ResultsFromKeys(models).Marshal(); err != nil {
		return swapchain.QueryError(err, s.debug)
	}
	if res.Value, err = ResultsFromValues(models).Marshal(); err != nil {
		return swapchain.QueryError(err, s.debug)
	}
	return res
}

func (s *StoreApp) Commit() abci.ResponseCommit {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	id, err := s.store.Commit()
	if err != nil {
		panic(err)
	}
	s.logger.Debug("commit", "height", id.Version, "hash", fmt.Sprintf("%X", id.Hash))
	return abci.ResponseCommit{Data: id.Hash}
}

// InitChain loads the genesis app state. It panics on an invalid state,
// the chain cannot start without it.
func (s *StoreApp) InitChain(req abci.RequestInitChain) abci.ResponseInitChain {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := s.genesis(req.AppStateBytes, req.ChainId, s.initializer); err != nil {
		panic(err)
	}
	return abci.ResponseInitChain{}
}

// BeginBlock sets the height and time seen by the transactions of the
// block.
func (s *StoreApp) BeginBlock(req abci.RequestBeginBlock) abci.ResponseBeginBlock {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	ctx := swapchain.WithHeight(s.baseContext, req.Header.Height)
	s.blockContext = swapchain.WithBlockTime(ctx, req.Header.Time)
	return abci.ResponseBeginBlock{}
}

// EndBlock never changes the validator set.
func (s *StoreApp) EndBlock(abci.RequestEndBlock) abci.ResponseEndBlock {
	return abci.ResponseEndBlock{}
}
