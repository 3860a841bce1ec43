// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package system

import (
	"fmt"

	"github.com/ChainSafe/nativex/lib/genesis"
)

// Info holds the name and version of the node implementation
type Info struct {
	SystemName    string
	SystemVersion string
}

// Service struct to hold rpc service data
type Service struct {
	systemInfo *Info
	genesis    *genesis.Genesis
}

// NewService create a new instance of Service
func NewService(si *Info, gen *genesis.Genesis) *Service {
	return &Service{
		systemInfo: si,
		genesis:    gen,
	}
}

// ChainName returns the name of the chain
func (s *Service) ChainName() string {
	return s.genesis.Name
}

// ChainType returns the chain type
func (s *Service) ChainType() string {
	return string(s.genesis.ChainType)
}

// SystemName returns the app name
func (s *Service) SystemName() string {
	return s.systemInfo.SystemName
}

// SystemVersion returns the app version
func (s *Service) SystemVersion() string {
	return s.systemInfo.SystemVersion
}

// Properties returns the chain properties
func (s *Service) Properties() map[string]interface{} {
	return s.genesis.Properties
}

// GenSyncSpec returns the JSON serialised chain specification,
// with the runtime genesis converted to raw storage if raw is set.
func (s *Service) GenSyncSpec(raw bool) ([]byte, error) {
	if !raw {
		return s.genesis.ToJSON()
	}

	data, err := s.genesis.ToJSONRaw()
	if err != nil {
		return nil, fmt.Errorf("converting chain specification to raw: %w", err)
	}
	return data, nil
}

// Start implements Service interface
func (*Service) Start() error {
	return nil
}

// Stop implements Service interface
func (*Service) Stop() error {
	return nil
}
