// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package modules

import (
	"net/http"
	"reflect"
	"unicode"
	"unicode/utf8"
)

// MethodsResponse lists the available RPC methods
type MethodsResponse struct {
	Methods []string `json:"methods"`
}

// RPCModule is an RPC module listing the available methods
type RPCModule struct {
	methods []string
}

// NewRPCModule creates a new RPC module.
func NewRPCModule() *RPCModule {
	return &RPCModule{}
}

// BuildMethodNames records the names of the RPC methods of the receiver
// registered under the service name, in the module_methodName form.
func (rm *RPCModule) BuildMethodNames(rcvr interface{}, service string) {
	rcvrType := reflect.TypeOf(rcvr)
	for i := 0; i < rcvrType.NumMethod(); i++ {
		method := rcvrType.Method(i)
		// receiver, request, arguments and reply
		if method.Type.NumIn() != 4 {
			continue
		}
		name := method.Name
		r, n := utf8.DecodeRuneInString(name)
		rm.methods = append(rm.methods, service+"_"+string(unicode.ToLower(r))+name[n:])
	}
}

// Methods returns the available RPC methods.
func (rm *RPCModule) Methods(_ *http.Request, _ *EmptyRequest, res *MethodsResponse) error {
	res.Methods = rm.methods
	return nil
}
