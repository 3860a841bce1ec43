// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package modules

// SystemAPI is the interface for the system state
type SystemAPI interface {
	SystemName() string
	SystemVersion() string
	ChainName() string
	ChainType() string
	Properties() map[string]interface{}
}

// SyncStateAPI is the interface to interact with the chain specification
// the node runs
type SyncStateAPI interface {
	GenSyncSpec(raw bool) ([]byte, error)
}
