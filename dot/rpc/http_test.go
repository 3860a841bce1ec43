// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/ChainSafe/nativex/dot/rpc/modules/mocks"
	"github.com/ChainSafe/nativex/internal/log"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type response struct {
	Result json.RawMessage `json:"result"`
	Error  *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func postRPC(t *testing.T, address, method, params string) response {
	t.Helper()

	body := `{"jsonrpc":"2.0","method":"` + method + `","params":` + params + `,"id":1}`
	httpResponse, err := http.Post("http://"+address, //nolint:noctx
		"application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	defer httpResponse.Body.Close()

	data, err := io.ReadAll(httpResponse.Body)
	require.NoError(t, err)

	var decoded response
	err = json.Unmarshal(data, &decoded)
	require.NoError(t, err, string(data))
	return decoded
}

func newTestServer(t *testing.T, cfg *HTTPServerConfig) *HTTPServer {
	t.Helper()

	cfg.Address = "127.0.0.1:0"
	cfg.LogLvl = log.Warn

	server, err := NewHTTPServer(cfg)
	require.NoError(t, err)

	err = server.Start()
	require.NoError(t, err)
	t.Cleanup(func() {
		err := server.Stop()
		assert.NoError(t, err)
	})

	return server
}

func TestHTTPServer(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	systemAPI := mocks.NewMockSystemAPI(ctrl)
	systemAPI.EXPECT().ChainName().Return("Development")
	systemAPI.EXPECT().Properties().Return(map[string]interface{}{"tokenDecimals": 18, "tokenSymbol": "NTX"})

	spec := []byte(`{"name":"Development","id":"dev"}`)
	syncStateAPI := mocks.NewMockSyncStateAPI(ctrl)
	syncStateAPI.EXPECT().GenSyncSpec(true).Return(spec, nil)

	registry := prometheus.NewRegistry()
	server := newTestServer(t, &HTTPServerConfig{
		SystemAPI:    systemAPI,
		SyncStateAPI: syncStateAPI,
		Registerer:   registry,
	})

	res := postRPC(t, server.Address(), "system_chain", "[]")
	require.Nil(t, res.Error)
	assert.JSONEq(t, `"Development"`, string(res.Result))

	res = postRPC(t, server.Address(), "system_properties", "[]")
	require.Nil(t, res.Error)
	assert.JSONEq(t, `{"tokenDecimals":18,"tokenSymbol":"NTX"}`, string(res.Result))

	res = postRPC(t, server.Address(), "sync_state_genSyncSpec", "[true]")
	require.Nil(t, res.Error)
	assert.JSONEq(t, string(spec), string(res.Result))

	res = postRPC(t, server.Address(), "rpc_methods", "[]")
	require.Nil(t, res.Error)
	var methods struct {
		Methods []string `json:"methods"`
	}
	err := json.Unmarshal(res.Result, &methods)
	require.NoError(t, err)
	assert.Contains(t, methods.Methods, "syncstate_genSyncSpec")
	assert.Contains(t, methods.Methods, "system_chain")

	res = postRPC(t, server.Address(), "author_submitExtrinsic", `["0x00"]`)
	require.NotNil(t, res.Error)
	assert.True(t, strings.Contains(res.Error.Message, "can't find service"), res.Error.Message)

	assert.Equal(t, float64(1),
		testutil.ToFloat64(server.requests.WithLabelValues("system.Chain", "200")))
}

func TestHTTPServer_modules(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	server := newTestServer(t, &HTTPServerConfig{
		SystemAPI: mocks.NewMockSystemAPI(ctrl),
		Modules:   []string{"system", "unknown"},
	})

	res := postRPC(t, server.Address(), "sync_state_genSyncSpec", "[false]")
	require.NotNil(t, res.Error)
}
