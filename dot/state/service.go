// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package state

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ChainSafe/chaindb"
	"github.com/ChainSafe/nativex/internal/log"
	"github.com/ChainSafe/nativex/lib/genesis"
	"github.com/ChainSafe/nativex/lib/utils"
)

var logger = log.NewFromGlobal(
	log.AddContext("pkg", "state"),
)

// ErrNotInitialised is returned when starting a service over a
// database holding no chain specification.
var ErrNotInitialised = errors.New("node database is not initialised")

// Service is the struct that holds the node database and its base state
type Service struct {
	dbPath   string
	db       chaindb.Database
	isMemDB  bool // set to true if using an in-memory database; only used for testing.
	nodeName string
	Base     *BaseState
}

// Config is the default configuration used by state service.
type Config struct {
	Path     string
	LogLevel log.Level
	// NodeName is stored at initialisation, defaulting to the chain name.
	NodeName string
}

// NewService create a new instance of Service
func NewService(config Config) *Service {
	logger.Patch(log.SetLevel(config.LogLevel))

	return &Service{
		dbPath:   config.Path,
		nodeName: config.NodeName,
	}
}

// UseMemDB tells the service to use an in-memory key-value store instead of a persistent database.
// This should be called after NewService, and before Initialise.
// This should only be used for testing.
func (s *Service) UseMemDB() {
	s.isMemDB = true
}

// DB returns the Service's database
func (s *Service) DB() chaindb.Database {
	return s.db
}

// Initialise stores the chain specification in a new database at the
// service path, replacing any existing database.
func (s *Service) Initialise(gen *genesis.Genesis) (err error) {
	basepath, err := filepath.Abs(s.dbPath)
	if err != nil {
		return err
	}

	if !s.isMemDB {
		err = os.RemoveAll(filepath.Join(basepath, utils.DefaultDatabaseDir))
		if err != nil {
			return fmt.Errorf("removing existing database: %w", err)
		}
	}

	db, err := utils.SetupDatabase(basepath, s.isMemDB)
	if err != nil {
		return fmt.Errorf("failed to create database: %w", err)
	}

	base := NewBaseState(db)
	err = base.StoreGenesis(gen)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to store genesis: %w", err)
	}

	nodeName := s.nodeName
	if nodeName == "" {
		nodeName = gen.Name
	}
	err = base.StoreNodeName(nodeName)
	if err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to store node name: %w", err)
	}

	logger.Infof("database initialised at %s with chain %s (%s)", basepath, gen.ID, gen.Class())

	if s.isMemDB {
		// the in-memory database only lives as long as it is open
		s.db = db
		s.Base = base
		return nil
	}

	return db.Close()
}

// Start opens the database and checks it holds a chain specification.
func (s *Service) Start() error {
	if s.db == nil {
		basepath, err := filepath.Abs(s.dbPath)
		if err != nil {
			return err
		}

		db, err := utils.SetupDatabase(basepath, false)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}

		s.db = db
		s.Base = NewBaseState(db)
	}

	has, err := s.Base.HasGenesis()
	if err != nil {
		return err
	}
	if !has {
		return ErrNotInitialised
	}

	logger.Debugf("started state service at %s", s.dbPath)
	return nil
}

// Stop closes the database.
func (s *Service) Stop() error {
	if s.db == nil {
		return nil
	}

	err := s.db.Close()
	s.db = nil
	s.Base = nil
	return err
}
