package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/iov-one/swapchain/app"
	"github.com/iov-one/swapchain/store/iavl"
	"github.com/tendermint/tendermint/abci/server"
	"github.com/tendermint/tendermint/libs/log"
)

const dbName = "swapchain"

// StartCmd opens the state database in the home directory and serves the
// application over the ABCI socket until the process is interrupted.
func StartCmd(logger log.Logger, home string, args []string) error {
	cfg, err := LoadConfig(home)
	if err != nil {
		return err
	}

	fl := flag.NewFlagSet("start", flag.ExitOnError)
	fl.StringVar(&cfg.ABCI.Address, "bind", cfg.ABCI.Address, "address server listens on")
	fl.BoolVar(&cfg.Debug, "debug", cfg.Debug, "call stack returned on error")
	if err := fl.Parse(args); err != nil {
		return err
	}

	logger, err = filterLogger(logger, cfg.Log.Level)
	if err != nil {
		return err
	}

	db, err := iavl.OpenDB(cfg.DB.Backend, dbName, cfg.DB.Dir)
	if err != nil {
		return err
	}
	defer db.Close()

	application := app.NewApplication(iavl.NewCommitStore(db), logger, cfg.Debug)
	if chainID := application.GetChainID(); chainID != "" && cfg.ChainID != "" && chainID != cfg.ChainID {
		return fmt.Errorf("database belongs to chain %q, configured %q", chainID, cfg.ChainID)
	}

	logger.Info("Starting ABCI app", "bind", cfg.ABCI.Address, "db", cfg.DB.Backend)

	svr, err := server.NewServer(cfg.ABCI.Address, "socket", application)
	if err != nil {
		return fmt.Errorf("cannot create listener: %s", err)
	}
	svr.SetLogger(logger.With("module", "abci-server"))
	if err := svr.Start(); err != nil {
		return fmt.Errorf("cannot start server: %s", err)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	s := <-sig
	logger.Info("Shutting down", "signal", s.String())
	return svr.Stop()
}

func filterLogger(logger log.Logger, level string) (log.Logger, error) {
	opt, err := log.AllowLevel(level)
	if err != nil {
		return nil, err
	}
	return log.NewFilter(logger, opt), nil
}
