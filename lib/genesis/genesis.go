// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package genesis

import (
	"encoding/json"
	"fmt"
)

// Genesis stores the data of a chain specification.
type Genesis struct {
	Name               string                 `json:"name"`
	ID                 string                 `json:"id"`
	ChainType          ChainType              `json:"chainType"`
	Bootnodes          []string               `json:"bootNodes"`
	TelemetryEndpoints []TelemetryEndpoint    `json:"telemetryEndpoints"`
	ProtocolID         string                 `json:"protocolId"`
	Properties         map[string]interface{} `json:"properties"`
	ForkBlocks         []string               `json:"forkBlocks"`
	BadBlocks          []string               `json:"badBlocks"`
	CodeSubstitutes    map[string]string      `json:"codeSubstitutes"`
	Genesis            Fields                 `json:"genesis"`

	class ChainClass
}

// Fields stores genesis raw data, and the human readable runtime genesis.
type Fields struct {
	Raw            map[string]map[string]string `json:"raw,omitempty"`
	RuntimeGenesis *RuntimeGenesis              `json:"runtimeGenesis,omitempty"`
}

// RuntimeGenesis is the runtime code with either a patch over the
// runtime default genesis or a full runtime genesis configuration.
type RuntimeGenesis struct {
	Code   string   `json:"code"`
	Patch  *Runtime `json:"patch,omitempty"`
	Config *Runtime `json:"config,omitempty"`
}

// Runtime returns the runtime genesis configuration of the
// specification, or nil if it only holds raw storage.
func (g *Genesis) Runtime() *Runtime {
	rg := g.Genesis.RuntimeGenesis
	switch {
	case rg == nil:
		return nil
	case rg.Config != nil:
		return rg.Config
	default:
		return rg.Patch
	}
}

// Class returns the class of the chain.
func (g *Genesis) Class() ChainClass {
	return g.class
}

// SetClass sets the class of the chain.
func (g *Genesis) SetClass(class ChainClass) {
	g.class = class
}

// IsRaw returns whether the genesis holds raw storage.
func (g *Genesis) IsRaw() bool {
	return g.Genesis.Raw != nil
}

// ChainType is the type of a chain as declared in its specification.
type ChainType string

const (
	// ChainTypeDevelopment is a development chain run by a single node.
	ChainTypeDevelopment ChainType = "Development"
	// ChainTypeLocal is a local testnet run by several local nodes.
	ChainTypeLocal ChainType = "Local"
	// ChainTypeLive is a live network.
	ChainTypeLive ChainType = "Live"
	// ChainTypeCustom is any other chain type.
	ChainTypeCustom ChainType = "Custom"
)

// ChainClass is the class of a chain, deciding for example
// whether development defaults apply to the node.
type ChainClass uint8

const (
	// ChainClassDevelopment is the class of development and test chains.
	ChainClassDevelopment ChainClass = iota
	// ChainClassProduction is the class of production chains.
	ChainClassProduction
)

func (c ChainClass) String() string {
	switch c {
	case ChainClassDevelopment:
		return "development"
	case ChainClassProduction:
		return "production"
	default:
		return fmt.Sprintf("ChainClass(%d)", uint8(c))
	}
}

// ParseChainClass parses the string form of a chain class.
func ParseChainClass(s string) (ChainClass, error) {
	switch s {
	case "development":
		return ChainClassDevelopment, nil
	case "production":
		return ChainClassProduction, nil
	default:
		return 0, fmt.Errorf("chain class not recognised: %q", s)
	}
}

// ClassFromChainType returns the class of a chain loaded from a
// specification file: live chains are production chains, all
// other chains are development chains.
func ClassFromChainType(chainType ChainType) ChainClass {
	if chainType == ChainTypeLive {
		return ChainClassProduction
	}
	return ChainClassDevelopment
}

// TelemetryEndpoint is a telemetry endpoint and its verbosity level.
type TelemetryEndpoint struct {
	Endpoint  string
	Verbosity uint8
}

// MarshalJSON encodes the endpoint as the tuple [endpoint, verbosity].
func (t TelemetryEndpoint) MarshalJSON() ([]byte, error) {
	return marshalTuple("TelemetryEndpoint", t.Endpoint, t.Verbosity)
}

// UnmarshalJSON decodes the endpoint from its tuple encoding.
func (t *TelemetryEndpoint) UnmarshalJSON(data []byte) error {
	return unmarshalTuple(data, "TelemetryEndpoint", &t.Endpoint, &t.Verbosity)
}

// ToJSON returns the chain specification JSON with 4 spaces indentation.
func (g *Genesis) ToJSON() ([]byte, error) {
	return json.MarshalIndent(g, "", "    ")
}

// ToJSONRaw returns the chain specification JSON in its raw form,
// dropping the runtime genesis once converted to raw storage.
func (g *Genesis) ToJSONRaw() ([]byte, error) {
	raw := *g
	err := raw.ToRaw()
	if err != nil {
		return nil, fmt.Errorf("converting to raw: %w", err)
	}
	raw.Genesis.RuntimeGenesis = nil
	return raw.ToJSON()
}
