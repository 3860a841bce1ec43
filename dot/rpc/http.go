// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/ChainSafe/nativex/dot/rpc/modules"
	"github.com/ChainSafe/nativex/internal/httpserver"
	"github.com/ChainSafe/nativex/internal/log"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/gorilla/rpc/v2"
	"github.com/prometheus/client_golang/prometheus"
)

var logger = log.NewFromGlobal(log.AddContext("pkg", "rpc"))

// DefaultModules are the modules enabled when none are configured
var DefaultModules = []string{"system", "syncstate", "rpc"}

// HTTPServer gateway for RPC server
type HTTPServer struct {
	rpcServer    *rpc.Server // Actual RPC call handler
	serverConfig *HTTPServerConfig
	server       *httpserver.Server
	requests     *prometheus.CounterVec
	cancel       context.CancelFunc
	done         chan error
}

// HTTPServerConfig configures the HTTPServer
type HTTPServerConfig struct {
	LogLvl       log.Level
	SystemAPI    modules.SystemAPI
	SyncStateAPI modules.SyncStateAPI
	Address      string
	Modules      []string
	// Registerer registers the request metrics, if set.
	Registerer prometheus.Registerer
}

// NewHTTPServer creates a new http server and registers an associated rpc server
func NewHTTPServer(cfg *HTTPServerConfig) (*HTTPServer, error) {
	logger.Patch(log.SetLevel(cfg.LogLvl))

	server := &HTTPServer{
		rpcServer:    rpc.NewServer(),
		serverConfig: cfg,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nativex",
			Subsystem: "rpc",
			Name:      "requests_total",
			Help:      "Number of RPC requests served, by method and status code.",
		}, []string{"method", "code"}),
	}

	if cfg.Registerer != nil {
		err := cfg.Registerer.Register(server.requests)
		if err != nil {
			return nil, fmt.Errorf("registering rpc metrics: %w", err)
		}
	}

	mods := cfg.Modules
	if len(mods) == 0 {
		mods = DefaultModules
	}
	err := server.RegisterModules(mods)
	if err != nil {
		return nil, err
	}

	return server, nil
}

// RegisterModules registers the RPC services associated with the given API modules
func (h *HTTPServer) RegisterModules(mods []string) error {
	rpcModule := modules.NewRPCModule()

	for _, mod := range mods {
		logger.Debug("Enabling rpc module " + mod)
		var srvc interface{}
		switch mod {
		case "system":
			srvc = modules.NewSystemModule(h.serverConfig.SystemAPI)
		case "syncstate":
			srvc = modules.NewSyncStateModule(h.serverConfig.SyncStateAPI)
		case "rpc":
			srvc = rpcModule
		default:
			logger.Warn("Unrecognised module: " + mod)
			continue
		}

		err := h.rpcServer.RegisterService(srvc, mod)
		if err != nil {
			return fmt.Errorf("failed to register module %s: %w", mod, err)
		}

		rpcModule.BuildMethodNames(srvc, mod)
	}

	return nil
}

// Start registers the rpc handler function and starts the rpc http server
func (h *HTTPServer) Start() error {
	// use our DotUpCodec which will capture methods passed in json as _x that is
	//  underscore followed by lower case letter, instead of default RPC calls which
	//  use . followed by Upper case letter
	h.rpcServer.RegisterCodec(NewDotUpCodec(), "application/json")
	h.rpcServer.RegisterCodec(NewDotUpCodec(), "application/json;charset=UTF-8")

	h.rpcServer.RegisterValidateRequestFunc(rpcValidator(validator.New()))
	h.rpcServer.RegisterAfterFunc(func(info *rpc.RequestInfo) {
		h.requests.WithLabelValues(info.Method, strconv.Itoa(info.StatusCode)).Inc()
		if info.Error != nil {
			logger.Debugf("rpc method %s failed: %s", info.Method, info.Error)
		}
	})

	r := mux.NewRouter()
	r.Handle("/", h.rpcServer)

	h.server = httpserver.New("rpc", h.serverConfig.Address, r, logger)

	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	ready := make(chan struct{})
	h.done = make(chan error)

	go h.server.Run(ctx, ready, h.done)

	select {
	case <-ready:
		return nil
	case err := <-h.done:
		close(h.done)
		cancel()
		return fmt.Errorf("starting rpc server: %w", err)
	}
}

// Address returns the address the server listens on, once started.
func (h *HTTPServer) Address() string {
	return h.server.GetAddress()
}

// Stop stops the server
func (h *HTTPServer) Stop() error {
	if h.cancel == nil {
		return nil
	}

	h.cancel()
	select {
	case err := <-h.done:
		close(h.done)
		return err
	case <-time.NewTimer(30 * time.Second).C:
		return fmt.Errorf("rpc server exit timeout")
	}
}

// rpcValidator validates structured request arguments
// against their validate tags.
func rpcValidator(validate *validator.Validate) func(r *rpc.RequestInfo, i interface{}) error {
	return func(r *rpc.RequestInfo, v interface{}) error {
		value := reflect.ValueOf(v)
		if value.Kind() != reflect.Ptr || value.Elem().Kind() != reflect.Struct {
			return nil
		}

		err := validate.Struct(v)
		if err != nil {
			return fmt.Errorf("invalid arguments for %s: %w", r.Method, err)
		}
		return nil
	}
}
