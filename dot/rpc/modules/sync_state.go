// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package modules

import (
	"encoding/json"
	"net/http"
)

// SyncStateModule is an RPC module serving the chain specification
type SyncStateModule struct {
	syncStateAPI SyncStateAPI
}

// NewSyncStateModule creates an instance of SyncStateModule given SyncStateAPI.
func NewSyncStateModule(s SyncStateAPI) *SyncStateModule {
	return &SyncStateModule{syncStateAPI: s}
}

// GenSyncSpec returns the JSON serialised chain specification the node runs.
// The request flag selects the raw form.
func (ss *SyncStateModule) GenSyncSpec(_ *http.Request, req *bool, res *json.RawMessage) error {
	spec, err := ss.syncStateAPI.GenSyncSpec(*req)
	if err != nil {
		return err
	}

	*res = spec
	return nil
}
