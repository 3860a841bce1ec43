// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package modules

import (
	"net/http"
)

// SystemModule is an RPC module providing access to the node and chain identity
type SystemModule struct {
	systemAPI SystemAPI
}

// EmptyRequest represents an RPC request with no fields
type EmptyRequest struct{}

// NewSystemModule creates a new API instance
func NewSystemModule(sys SystemAPI) *SystemModule {
	return &SystemModule{
		systemAPI: sys,
	}
}

// Chain returns the chain name
func (sm *SystemModule) Chain(_ *http.Request, _ *EmptyRequest, res *string) error {
	*res = sm.systemAPI.ChainName()
	return nil
}

// Name returns the node implementation name
func (sm *SystemModule) Name(_ *http.Request, _ *EmptyRequest, res *string) error {
	*res = sm.systemAPI.SystemName()
	return nil
}

// ChainType returns the chain type
func (sm *SystemModule) ChainType(_ *http.Request, _ *EmptyRequest, res *string) error {
	*res = sm.systemAPI.ChainType()
	return nil
}

// Properties returns the chain properties
func (sm *SystemModule) Properties(_ *http.Request, _ *EmptyRequest, res *interface{}) error {
	*res = sm.systemAPI.Properties()
	return nil
}

// Version returns the node implementation version
func (sm *SystemModule) Version(_ *http.Request, _ *EmptyRequest, res *string) error {
	*res = sm.systemAPI.SystemVersion()
	return nil
}
