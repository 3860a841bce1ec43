// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package rpc

import (
	"net/http"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gorilla/rpc/v2"
	"github.com/gorilla/rpc/v2/json2"
)

// aliases maps method names used by substrate clients to the
// name of the method serving them.
var aliases = map[string]string{
	"sync_state_genSyncSpec": "syncstate_genSyncSpec",
	"system_nodeName":        "system_name",
}

// DotUpCodec for overriding default jsonCodec
type DotUpCodec struct{}

// NewDotUpCodec for creating instance of DocUpCodec
func NewDotUpCodec() *DotUpCodec {
	return &DotUpCodec{}
}

// NewRequest is overridden to inject our custom codec
func (c *DotUpCodec) NewRequest(r *http.Request) rpc.CodecRequest {
	outerCR := &DotUpCodecRequest{}
	jsonCodec := json2.NewCodec()
	newCodecRequest := jsonCodec.NewRequest(r)
	outerCR.CodecRequest = newCodecRequest.(*json2.CodecRequest)
	return outerCR
}

// DotUpCodecRequest decodes and encodes a single request. UpCodecRequest
// implements gorilla/rpc.CodecRequest interface primarily by embedding
// the CodecRequest from gorilla/rpc/json. By selectively adding
// CodecRequest methods to UpCodecRequest, we can modify that behaviour
// while maintaining all the other remaining CodecRequest methods.
type DotUpCodecRequest struct {
	*json2.CodecRequest
}

// Method returns the decoded method as a string of the form "Service.Method"
// from the module_methodName form sent by clients.
func (c *DotUpCodecRequest) Method() (string, error) {
	m, err := c.CodecRequest.Method()
	if err != nil {
		return "", err
	}

	if alias, ok := aliases[m]; ok {
		m = alias
	}

	service, method, found := strings.Cut(m, "_")
	if !found || method == "" {
		return m, nil
	}

	r, n := utf8.DecodeRuneInString(method)
	if !unicode.IsLower(r) {
		return m, nil
	}

	return service + "." + string(unicode.ToUpper(r)) + method[n:], nil
}
