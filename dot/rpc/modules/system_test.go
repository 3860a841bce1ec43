// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package modules

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/ChainSafe/nativex/dot/rpc/modules/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSystemModule(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)

	systemAPI := mocks.NewMockSystemAPI(ctrl)
	systemAPI.EXPECT().ChainName().Return("Development")
	systemAPI.EXPECT().SystemName().Return("nativex")
	systemAPI.EXPECT().ChainType().Return("Development")
	systemAPI.EXPECT().SystemVersion().Return("0.1.0")
	systemAPI.EXPECT().Properties().Return(map[string]interface{}{"tokenSymbol": "NTX"})

	module := NewSystemModule(systemAPI)

	var res string
	err := module.Chain(nil, &EmptyRequest{}, &res)
	require.NoError(t, err)
	assert.Equal(t, "Development", res)

	err = module.Name(nil, &EmptyRequest{}, &res)
	require.NoError(t, err)
	assert.Equal(t, "nativex", res)

	err = module.ChainType(nil, &EmptyRequest{}, &res)
	require.NoError(t, err)
	assert.Equal(t, "Development", res)

	err = module.Version(nil, &EmptyRequest{}, &res)
	require.NoError(t, err)
	assert.Equal(t, "0.1.0", res)

	var properties interface{}
	err = module.Properties(nil, &EmptyRequest{}, &properties)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"tokenSymbol": "NTX"}, properties)
}

func TestSyncStateModule_GenSyncSpec(t *testing.T) {
	t.Parallel()

	errTest := errors.New("test error")

	testCases := map[string]struct {
		raw      bool
		spec     []byte
		specErr  error
		expected json.RawMessage
		errIs    error
	}{
		"raw": {
			raw:      true,
			spec:     []byte(`{"id":"dev"}`),
			expected: json.RawMessage(`{"id":"dev"}`),
		},
		"error": {
			specErr: errTest,
			errIs:   errTest,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			syncStateAPI := mocks.NewMockSyncStateAPI(ctrl)
			syncStateAPI.EXPECT().GenSyncSpec(testCase.raw).Return(testCase.spec, testCase.specErr)

			module := NewSyncStateModule(syncStateAPI)

			raw := testCase.raw
			var res json.RawMessage
			err := module.GenSyncSpec(nil, &raw, &res)

			assert.ErrorIs(t, err, testCase.errIs)
			assert.Equal(t, testCase.expected, res)
		})
	}
}

func TestRPCModule_Methods(t *testing.T) {
	t.Parallel()

	module := NewRPCModule()
	module.BuildMethodNames(NewSystemModule(nil), "system")
	module.BuildMethodNames(module, "rpc")

	var res MethodsResponse
	err := module.Methods(nil, &EmptyRequest{}, &res)
	require.NoError(t, err)

	expected := []string{"system_chain", "system_chainType", "system_name", "system_properties",
		"system_version", "rpc_methods"}
	assert.Equal(t, expected, res.Methods)
}
