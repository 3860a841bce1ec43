// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package genesis

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/nativex/lib/common"
	"github.com/libp2p/go-libp2p-core/peer"
	"github.com/multiformats/go-multiaddr"
)

var (
	ErrMissingCode     = errors.New("runtime code is missing")
	ErrNameRequired    = errors.New("chain name is required")
	ErrIDRequired      = errors.New("chain id is required")
	ErrBootnodeInvalid = errors.New("bootnode address is invalid")
	ErrRuntimeConflict = errors.New("runtime genesis has both a patch and a config")
)

// Builder builds a chain specification.
type Builder struct {
	code               []byte
	name               string
	id                 string
	chainType          ChainType
	class              ChainClass
	protocolID         string
	properties         map[string]interface{}
	bootnodes          []string
	telemetryEndpoints []TelemetryEndpoint
	patch              *Runtime
	config             *Runtime
}

// NewBuilder returns a chain specification builder for the runtime code given.
// The chain type defaults to ChainTypeDevelopment.
func NewBuilder(code []byte) *Builder {
	return &Builder{
		code:      code,
		chainType: ChainTypeDevelopment,
	}
}

// WithName sets the human readable name of the chain.
func (b *Builder) WithName(name string) *Builder {
	b.name = name
	return b
}

// WithID sets the identifier of the chain.
func (b *Builder) WithID(id string) *Builder {
	b.id = id
	return b
}

// WithChainType sets the type of the chain.
func (b *Builder) WithChainType(chainType ChainType) *Builder {
	b.chainType = chainType
	return b
}

// WithClass sets the class of the chain.
func (b *Builder) WithClass(class ChainClass) *Builder {
	b.class = class
	return b
}

// WithProtocolID sets the network protocol identifier.
func (b *Builder) WithProtocolID(protocolID string) *Builder {
	b.protocolID = protocolID
	return b
}

// WithProperties sets the chain properties.
func (b *Builder) WithProperties(properties map[string]interface{}) *Builder {
	b.properties = properties
	return b
}

// WithBootnodes sets the bootnode multiaddresses.
func (b *Builder) WithBootnodes(bootnodes []string) *Builder {
	b.bootnodes = bootnodes
	return b
}

// WithTelemetryEndpoints sets the telemetry endpoints.
func (b *Builder) WithTelemetryEndpoints(endpoints []TelemetryEndpoint) *Builder {
	b.telemetryEndpoints = endpoints
	return b
}

// WithPatch sets the runtime genesis as a patch over the runtime defaults.
func (b *Builder) WithPatch(patch *Runtime) *Builder {
	b.patch = patch
	return b
}

// WithConfig sets the full runtime genesis configuration.
func (b *Builder) WithConfig(config *Runtime) *Builder {
	b.config = config
	return b
}

// Build validates the settings and returns the chain specification.
func (b *Builder) Build() (*Genesis, error) {
	switch {
	case b.name == "":
		return nil, ErrNameRequired
	case b.id == "":
		return nil, ErrIDRequired
	case len(b.code) == 0:
		return nil, ErrMissingCode
	case b.patch != nil && b.config != nil:
		return nil, ErrRuntimeConflict
	}

	for _, bootnode := range b.bootnodes {
		err := validateBootnode(bootnode)
		if err != nil {
			return nil, err
		}
	}

	properties := b.properties
	if properties == nil {
		properties = map[string]interface{}{}
	}

	g := &Genesis{
		Name:               b.name,
		ID:                 b.id,
		ChainType:          b.chainType,
		Bootnodes:          append([]string{}, b.bootnodes...),
		TelemetryEndpoints: b.telemetryEndpoints,
		ProtocolID:         b.protocolID,
		Properties:         properties,
		CodeSubstitutes:    map[string]string{},
		Genesis: Fields{
			RuntimeGenesis: &RuntimeGenesis{
				Code:   common.BytesToHex(b.code),
				Patch:  b.patch,
				Config: b.config,
			},
		},
		class: b.class,
	}

	return g, nil
}

// validateBootnode checks the bootnode is a multiaddress
// ending with the /p2p/<peer id> component.
func validateBootnode(bootnode string) error {
	addr, err := multiaddr.NewMultiaddr(bootnode)
	if err != nil {
		return fmt.Errorf("%w: %s: %s", ErrBootnodeInvalid, bootnode, err)
	}

	_, err = peer.AddrInfoFromP2pAddr(addr)
	if err != nil {
		return fmt.Errorf("%w: %s: %s", ErrBootnodeInvalid, bootnode, err)
	}
	return nil
}
