// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package genesis

import (
	"fmt"

	"github.com/ChainSafe/nativex/internal/log"
	"github.com/ChainSafe/nativex/internal/primitives/core/crypto"
	"github.com/ChainSafe/nativex/internal/primitives/core/sr25519"
	"github.com/go-playground/validator/v10"
)

var logger log.LeveledLogger = log.NewFromGlobal(log.AddContext("pkg", "genesis"))

// DocumentForm is the form of the assembled runtime genesis.
type DocumentForm uint8

const (
	// Patch only carries the pallets configured by the assembler,
	// leaving every other pallet to the runtime defaults.
	Patch DocumentForm = iota
	// Full carries every pallet of the runtime.
	Full
)

func (f DocumentForm) String() string {
	switch f {
	case Patch:
		return "patch"
	case Full:
		return "full"
	default:
		return fmt.Sprintf("DocumentForm(%d)", uint8(f))
	}
}

// AssemblerConfig is the configuration of the genesis assembler.
type AssemblerConfig struct {
	// ValidatorCountMultiplier multiplies the number of authorities
	// to obtain the staking validator count.
	ValidatorCountMultiplier uint32 `validate:"oneof=1 2"`
	// Endowment is the balance given to each endowed account.
	Endowment Balance
	// Stash is the balance bonded by each staker and elections member.
	Stash          Balance
	MaxNominations uint32 `validate:"gt=0"`
	// DefaultEndowed is used when the input endowed list is nil.
	DefaultEndowed []crypto.AccountID
	Form           DocumentForm `validate:"oneof=0 1"`
	Rand           Rand         `validate:"required"`
}

// AssemblerInput is the chain specific input of the assembler.
type AssemblerInput struct {
	Authorities []AuthorityKeys
	Nominators  []crypto.AccountID
	RootKey     crypto.AccountID
	// Endowed is the explicit list of endowed accounts.
	// A nil list selects the default endowed accounts.
	Endowed []crypto.AccountID
}

// Assembler builds the runtime genesis configuration.
type Assembler struct {
	config   AssemblerConfig
	validate *validator.Validate
}

// NewAssembler returns a genesis assembler for the configuration given.
func NewAssembler(config AssemblerConfig) *Assembler {
	return &Assembler{
		config:   config,
		validate: validator.New(),
	}
}

// Assemble returns the runtime genesis configuration of the input.
// Calling it twice draws new nominator targets from the random source.
func (a *Assembler) Assemble(input AssemblerInput) (*Runtime, error) {
	err := a.validate.Struct(a.config)
	if err != nil {
		return nil, fmt.Errorf("validating assembler configuration: %w", err)
	}

	endowed := ResolveEndowed(input.Authorities, input.Nominators, input.Endowed, a.config.DefaultEndowed)
	stakers := AssignStakers(a.config.Rand, input.Authorities, input.Nominators,
		a.config.Stash, a.config.MaxNominations)

	logger.Debugf("assembling %s genesis with %d authorities, %d nominators and %d endowed accounts",
		a.config.Form, len(input.Authorities), len(input.Nominators), len(endowed))

	balances := make([]BalancesFields, len(endowed))
	for i, account := range endowed {
		balances[i] = BalancesFields{AccountID: account, Balance: a.config.Endowment}
	}

	keys := make([]NextKeys, len(input.Authorities))
	invulnerables := make([]crypto.AccountID, len(input.Authorities))
	for i, authority := range input.Authorities {
		keys[i] = NextKeys{
			AccountID:   authority.Stash,
			ValidatorID: authority.Stash,
			KeyOwner:    authority.SessionKeys(),
		}
		invulnerables[i] = authority.Stash
	}

	// the first half of the endowed accounts, rounded up, are members
	members := endowed[:(len(endowed)+1)/2]
	electionMembers := make([]MembersFields, len(members))
	for i, member := range members {
		electionMembers[i] = MembersFields{AccountID: member, Balance: a.config.Stash}
	}

	rootKey := input.RootKey
	authorityCount := uint32(len(input.Authorities))
	epochConfig := BabeGenesisEpochConfig

	runtime := &Runtime{
		Balances: &Balances{Balances: balances},
		Session:  &Session{Keys: keys},
		Staking: &Staking{
			ValidatorCount:        authorityCount * a.config.ValidatorCountMultiplier,
			MinimumValidatorCount: authorityCount,
			Invulnerables:         invulnerables,
			SlashRewardFraction:   SlashRewardFraction,
			Stakers:               stakers,
		},
		Council:            &Collective{Members: copyAccounts(members)},
		TechnicalCommittee: &Collective{Members: copyAccounts(members)},
		Elections:          &Elections{Members: electionMembers},
		Sudo:               &Sudo{Key: &rootKey},
		Babe:               &Babe{EpochConfig: &epochConfig},
		Society:            &Society{Pot: NewBalance(0)},
		Assets: &Assets{Assets: []Asset{{
			ID:           9,
			Owner:        rootKey,
			IsSufficient: true,
			MinBalance:   NewBalance(1),
		}}},
		NominationPools: &NominationPools{
			MinCreateBond: NATIVEX.Mul(10),
			MinJoinBond:   NATIVEX,
		},
	}

	if a.config.Form == Full {
		fillDefaults(runtime)
	}

	return runtime, nil
}

// fillDefaults sets the default configuration of every pallet
// not configured by the assembler.
func fillDefaults(runtime *Runtime) {
	runtime.System = &System{}
	runtime.Indices = &Indices{Indices: []IndexEntry{}}
	runtime.TransactionPayment = &TransactionPayment{Multiplier: NewBalance(1_000_000_000_000_000_000)}
	runtime.Democracy = &Democracy{}
	runtime.TechnicalMembership = &Membership{Members: []crypto.AccountID{}}
	runtime.Grandpa = &Grandpa{Authorities: []GrandpaAuthority{}}
	runtime.Treasury = &Treasury{}
	runtime.ImOnline = &ImOnline{Keys: []sr25519.Public{}}
	runtime.AuthorityDiscovery = &AuthorityDiscovery{Keys: []sr25519.Public{}}
	runtime.Vesting = &Vesting{Vesting: []VestingSchedule{}}
	runtime.NodeAuthorization = &NodeAuthorization{Nodes: []NodeOwner{}}
}

func copyAccounts(accounts []crypto.AccountID) []crypto.AccountID {
	return append(make([]crypto.AccountID, 0, len(accounts)), accounts...)
}
