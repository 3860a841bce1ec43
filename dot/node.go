// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package dot

import (
	"encoding/binary"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"

	"github.com/ChainSafe/nativex/config"
	"github.com/ChainSafe/nativex/dot/rpc"
	"github.com/ChainSafe/nativex/dot/state"
	"github.com/ChainSafe/nativex/dot/system"
	"github.com/ChainSafe/nativex/internal/log"
	"github.com/ChainSafe/nativex/internal/metrics"
	"github.com/ChainSafe/nativex/lib/runtime/wasm"
	"github.com/ChainSafe/nativex/lib/services"
	"github.com/ChainSafe/nativex/lib/utils"
	"github.com/cosmos/go-bip39"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var logger log.LeveledLogger = log.NewFromGlobal(log.AddContext("pkg", "dot"))

// SystemName is the name of the node implementation
const SystemName = "nativex"

// Version is the version of the node implementation
var Version = "0.1.0"

// Node is a container for all the components of a node.
type Node struct {
	Name     string
	Services *services.ServiceRegistry // registry of all node services
	stopOnce sync.Once
	started  chan struct{}
	stopped  chan struct{}
}

// InitNode builds the chain specification of the configured chain and
// stores it in a new node database at the configured base path.
func InitNode(cfg *config.Config, loader wasm.Loader) error {
	levels, err := setupLogger(cfg)
	if err != nil {
		return err
	}

	logger.Infof("🕸️ initialising node with name %s, chain %s and base path %s...",
		cfg.BaseConfig.Name, cfg.BaseConfig.Chain, cfg.BaseConfig.BasePath)

	gen, err := LoadSpec(cfg.BaseConfig.Chain, loader)
	if err != nil {
		return fmt.Errorf("failed to load chain specification: %w", err)
	}

	stateSrvc := state.NewService(state.Config{
		Path:     cfg.BaseConfig.BasePath,
		LogLevel: levels.of("state"),
		NodeName: cfg.BaseConfig.Name,
	})

	err = stateSrvc.Initialise(gen)
	if err != nil {
		return fmt.Errorf("failed to initialise state service: %w", err)
	}

	logger.Infof("node initialised with chain %s (%s, %s)", gen.ID, gen.ChainType, gen.Class())
	return nil
}

// IsNodeInitialised returns true if, within the configured data directory for the
// node, the state database has been created and the chain specification stored
func IsNodeInitialised(basePath string) bool {
	if !utils.DatabaseExists(basePath) {
		logger.Debugf("node has not been initialised from base path %s: no database", basePath)
		return false
	}

	db, err := utils.SetupDatabase(basePath, false)
	if err != nil {
		logger.Errorf("failed to open database at %s: %s", basePath, err)
		return false
	}

	defer func() {
		err = db.Close()
		if err != nil {
			logger.Errorf("failed to close database: %s", err)
		}
	}()

	has, err := state.NewBaseState(db).HasGenesis()
	if err != nil {
		logger.Errorf("failed to check chain specification: %s", err)
		return false
	}
	return has
}

// LoadNodeName returns the node name stored in the database
func LoadNodeName(basePath string) (nodeName string, err error) {
	db, err := utils.SetupDatabase(basePath, false)
	if err != nil {
		return "", err
	}

	defer func() {
		closeErr := db.Close()
		if err == nil && closeErr != nil {
			err = fmt.Errorf("closing database: %w", closeErr)
		}
	}()

	return state.NewBaseState(db).LoadNodeName()
}

// RandomNodeName generates a new random name if there is no name configured for the node
func RandomNodeName() string {
	entropy, _ := bip39.NewEntropy(128)
	randomNamesString, _ := bip39.NewMnemonic(entropy)
	randomNames := strings.Split(randomNamesString, " ")
	number := binary.BigEndian.Uint16(entropy)
	return randomNames[0] + "-" + randomNames[1] + "-" + fmt.Sprint(number)
}

// NewNode creates a node serving the chain specification stored at
// the configured base path.
func NewNode(cfg *config.Config) (*Node, error) {
	levels, err := setupLogger(cfg)
	if err != nil {
		return nil, err
	}

	logger.Infof("🕸️ initialising node services with chain %s and base path %s...",
		cfg.BaseConfig.Chain, cfg.BaseConfig.BasePath)

	stateSrvc, err := createStateService(cfg, levels)
	if err != nil {
		return nil, fmt.Errorf("failed to create state service: %w", err)
	}

	gen, err := stateSrvc.Base.LoadGenesis()
	if err != nil {
		_ = stateSrvc.Stop()
		return nil, fmt.Errorf("failed to load chain specification: %w", err)
	}

	nodeName := cfg.BaseConfig.Name
	if nodeName == "" {
		nodeName, err = stateSrvc.Base.LoadNodeName()
		if err != nil {
			_ = stateSrvc.Stop()
			return nil, fmt.Errorf("failed to load node name: %w", err)
		}
	}

	sysSrvc := system.NewService(&system.Info{
		SystemName:    SystemName,
		SystemVersion: Version,
	}, gen)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// state service is registered first so it is stopped last
	nodeSrvcs := []services.Service{stateSrvc, sysSrvc}

	if cfg.RPC.Enabled {
		rpcSrvc, err := createRPCService(cfg, levels, sysSrvc, registry)
		if err != nil {
			_ = stateSrvc.Stop()
			return nil, fmt.Errorf("failed to create rpc service: %w", err)
		}
		nodeSrvcs = append(nodeSrvcs, rpcSrvc)
	} else {
		logger.Debug("rpc service disabled")
	}

	if cfg.Metrics.Enabled {
		nodeSrvcs = append(nodeSrvcs, metrics.NewServer(cfg.Metrics.Address, registry))
	} else {
		logger.Debug("metrics service disabled")
	}

	node := &Node{
		Name:     nodeName,
		Services: services.NewServiceRegistry(logger),
		started:  make(chan struct{}),
		stopped:  make(chan struct{}),
	}

	for _, srvc := range nodeSrvcs {
		node.Services.RegisterService(srvc)
	}

	return node, nil
}

// Start starts all node services and blocks until the node is stopped
// or an interrupt signal is received.
func (n *Node) Start() error {
	logger.Infof("🕸️ starting node %s...", n.Name)

	err := n.Services.StartAll()
	if err != nil {
		return err
	}

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		defer signal.Stop(sigc)
		select {
		case <-sigc:
			logger.Info("signal interrupt, shutting down...")
			n.Stop()
		case <-n.stopped:
		}
	}()

	close(n.started)
	<-n.stopped
	return nil
}

// Started returns a channel closed once all node services are started.
func (n *Node) Started() <-chan struct{} {
	return n.started
}

// Stop stops all node services
func (n *Node) Stop() {
	n.stopOnce.Do(func() {
		n.Services.StopAll()
		close(n.stopped)
	})
}

func createStateService(cfg *config.Config, levels logLevels) (*state.Service, error) {
	logger.Debug("creating state service...")

	stateSrvc := state.NewService(state.Config{
		Path:     cfg.BaseConfig.BasePath,
		LogLevel: levels.of("state"),
	})

	// start state service to open the database and load the chain specification
	err := stateSrvc.Start()
	if err != nil {
		_ = stateSrvc.Stop()
		return nil, fmt.Errorf("failed to start state service: %w", err)
	}

	return stateSrvc, nil
}

func createRPCService(cfg *config.Config, levels logLevels, sysSrvc *system.Service,
	registerer prometheus.Registerer) (*rpc.HTTPServer, error) {
	logger.Infof("creating rpc service with address %s and modules %v", cfg.RPC.Address, cfg.RPC.Modules)

	return rpc.NewHTTPServer(&rpc.HTTPServerConfig{
		LogLvl:       levels.of("rpc"),
		SystemAPI:    sysSrvc,
		SyncStateAPI: sysSrvc,
		Address:      cfg.RPC.Address,
		Modules:      cfg.RPC.Modules,
		Registerer:   registerer,
	})
}
