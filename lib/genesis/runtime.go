// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package genesis

import (
	"encoding/json"
	"fmt"

	"github.com/ChainSafe/nativex/internal/primitives/core/crypto"
	"github.com/ChainSafe/nativex/internal/primitives/core/ed25519"
	"github.com/ChainSafe/nativex/internal/primitives/core/sr25519"
)

// Runtime is the runtime genesis configuration, one record per pallet.
// A nil pallet is left to the runtime defaults.
type Runtime struct {
	System              *System             `json:"system,omitempty"`
	Babe                *Babe               `json:"babe,omitempty"`
	Indices             *Indices            `json:"indices,omitempty"`
	Balances            *Balances           `json:"balances,omitempty"`
	TransactionPayment  *TransactionPayment `json:"transactionPayment,omitempty"`
	Staking             *Staking            `json:"staking,omitempty"`
	Session             *Session            `json:"session,omitempty"`
	Democracy           *Democracy          `json:"democracy,omitempty"`
	Council             *Collective         `json:"council,omitempty"`
	TechnicalCommittee  *Collective         `json:"technicalCommittee,omitempty"`
	Elections           *Elections          `json:"elections,omitempty"`
	TechnicalMembership *Membership         `json:"technicalMembership,omitempty"`
	Grandpa             *Grandpa            `json:"grandpa,omitempty"`
	Treasury            *Treasury           `json:"treasury,omitempty"`
	Sudo                *Sudo               `json:"sudo,omitempty"`
	ImOnline            *ImOnline           `json:"imOnline,omitempty"`
	AuthorityDiscovery  *AuthorityDiscovery `json:"authorityDiscovery,omitempty"`
	Society             *Society            `json:"society,omitempty"`
	Vesting             *Vesting            `json:"vesting,omitempty"`
	Assets              *Assets             `json:"assets,omitempty"`
	NominationPools     *NominationPools    `json:"nominationPools,omitempty"`
	NodeAuthorization   *NodeAuthorization  `json:"nodeAuthorization,omitempty"`
}

// System is the system pallet configuration.
type System struct{}

// Babe is the block authoring pallet configuration.
// Authorities are set through the session pallet.
type Babe struct {
	EpochConfig *EpochConfig `json:"epochConfig"`
}

// EpochConfig is the BABE epoch configuration.
type EpochConfig struct {
	C            [2]uint64 `json:"c"`
	AllowedSlots string    `json:"allowed_slots"`
}

// BabeGenesisEpochConfig is the epoch configuration of the chain:
// a primary slot probability of 1/4 with secondary plain slots.
var BabeGenesisEpochConfig = EpochConfig{
	C:            [2]uint64{1, 4},
	AllowedSlots: "PrimaryAndSecondaryPlainSlots",
}

// Indices is the account indices pallet configuration.
type Indices struct {
	Indices []IndexEntry `json:"indices"`
}

// IndexEntry assigns an account index to an account.
type IndexEntry struct {
	Index     uint32
	AccountID crypto.AccountID
}

// MarshalJSON encodes the entry as the tuple [index, account].
func (e IndexEntry) MarshalJSON() ([]byte, error) {
	return marshalTuple("IndexEntry", e.Index, e.AccountID)
}

// UnmarshalJSON decodes the entry from its tuple encoding.
func (e *IndexEntry) UnmarshalJSON(data []byte) error {
	return unmarshalTuple(data, "IndexEntry", &e.Index, &e.AccountID)
}

// Balances is the balances pallet configuration.
type Balances struct {
	Balances []BalancesFields `json:"balances"`
}

// BalancesFields is the free balance of an account at genesis.
type BalancesFields struct {
	AccountID crypto.AccountID
	Balance   Balance
}

// MarshalJSON encodes the fields as the tuple [account, balance].
func (b BalancesFields) MarshalJSON() ([]byte, error) {
	return marshalTuple("BalancesFields", b.AccountID, b.Balance)
}

// UnmarshalJSON decodes the fields from their tuple encoding.
func (b *BalancesFields) UnmarshalJSON(data []byte) error {
	return unmarshalTuple(data, "BalancesFields", &b.AccountID, &b.Balance)
}

// TransactionPayment is the transaction payment pallet configuration.
type TransactionPayment struct {
	// Multiplier is the initial fee multiplier as a fixed point
	// number with 18 decimals.
	Multiplier Balance `json:"multiplier"`
}

// Staking is the staking pallet configuration.
type Staking struct {
	ValidatorCount        uint32             `json:"validatorCount"`
	MinimumValidatorCount uint32             `json:"minimumValidatorCount"`
	Invulnerables         []crypto.AccountID `json:"invulnerables"`
	SlashRewardFraction   Perbill            `json:"slashRewardFraction"`
	Stakers               []Staker           `json:"stakers"`
}

// Session is the session pallet configuration.
type Session struct {
	Keys []NextKeys `json:"keys"`
}

// NextKeys registers the session keys of a validator.
type NextKeys struct {
	AccountID   crypto.AccountID
	ValidatorID crypto.AccountID
	KeyOwner    SessionKeys
}

// MarshalJSON encodes the keys as the tuple [account, validator, keys].
func (n NextKeys) MarshalJSON() ([]byte, error) {
	return marshalTuple("NextKeys", n.AccountID, n.ValidatorID, n.KeyOwner)
}

// UnmarshalJSON decodes the keys from their tuple encoding.
func (n *NextKeys) UnmarshalJSON(data []byte) error {
	return unmarshalTuple(data, "NextKeys", &n.AccountID, &n.ValidatorID, &n.KeyOwner)
}

// Democracy is the democracy pallet configuration.
type Democracy struct{}

// Collective is the configuration of a collective instance,
// such as the council or the technical committee.
type Collective struct {
	Members []crypto.AccountID `json:"members"`
}

// Elections is the elections pallet configuration.
type Elections struct {
	Members []MembersFields `json:"members"`
}

// MembersFields is an elected member and its bond.
type MembersFields struct {
	AccountID crypto.AccountID
	Balance   Balance
}

// MarshalJSON encodes the fields as the tuple [account, bond].
func (m MembersFields) MarshalJSON() ([]byte, error) {
	return marshalTuple("MembersFields", m.AccountID, m.Balance)
}

// UnmarshalJSON decodes the fields from their tuple encoding.
func (m *MembersFields) UnmarshalJSON(data []byte) error {
	return unmarshalTuple(data, "MembersFields", &m.AccountID, &m.Balance)
}

// Membership is the configuration of a membership instance.
type Membership struct {
	Members []crypto.AccountID `json:"members"`
}

// Grandpa is the finality pallet configuration.
type Grandpa struct {
	Authorities []GrandpaAuthority `json:"authorities"`
}

// GrandpaAuthority is a finality voter and its weight.
type GrandpaAuthority struct {
	Key    ed25519.Public
	Weight uint64
}

// MarshalJSON encodes the authority as the tuple [key, weight].
func (g GrandpaAuthority) MarshalJSON() ([]byte, error) {
	return marshalTuple("GrandpaAuthority", g.Key, g.Weight)
}

// UnmarshalJSON decodes the authority from its tuple encoding.
func (g *GrandpaAuthority) UnmarshalJSON(data []byte) error {
	return unmarshalTuple(data, "GrandpaAuthority", &g.Key, &g.Weight)
}

// Treasury is the treasury pallet configuration.
type Treasury struct{}

// Sudo is the sudo pallet configuration.
type Sudo struct {
	Key *crypto.AccountID `json:"key"`
}

// ImOnline is the heartbeat pallet configuration.
type ImOnline struct {
	Keys []sr25519.Public `json:"keys"`
}

// AuthorityDiscovery is the authority discovery pallet configuration.
type AuthorityDiscovery struct {
	Keys []sr25519.Public `json:"keys"`
}

// Society is the society pallet configuration.
type Society struct {
	Pot Balance `json:"pot"`
}

// Vesting is the vesting pallet configuration.
type Vesting struct {
	Vesting []VestingSchedule `json:"vesting"`
}

// VestingSchedule locks the balance of an account
// from the begin block for length blocks.
type VestingSchedule struct {
	AccountID crypto.AccountID
	Begin     uint32
	Length    uint32
	Liquid    Balance
}

// MarshalJSON encodes the schedule as the tuple [account, begin, length, liquid].
func (v VestingSchedule) MarshalJSON() ([]byte, error) {
	return marshalTuple("VestingSchedule", v.AccountID, v.Begin, v.Length, v.Liquid)
}

// UnmarshalJSON decodes the schedule from its tuple encoding.
func (v *VestingSchedule) UnmarshalJSON(data []byte) error {
	return unmarshalTuple(data, "VestingSchedule", &v.AccountID, &v.Begin, &v.Length, &v.Liquid)
}

// Assets is the assets pallet configuration.
type Assets struct {
	Assets []Asset `json:"assets"`
}

// Asset is an asset class created at genesis.
type Asset struct {
	ID           uint32
	Owner        crypto.AccountID
	IsSufficient bool
	MinBalance   Balance
}

// MarshalJSON encodes the asset as the tuple [id, owner, is sufficient, min balance].
func (a Asset) MarshalJSON() ([]byte, error) {
	return marshalTuple("Asset", a.ID, a.Owner, a.IsSufficient, a.MinBalance)
}

// UnmarshalJSON decodes the asset from its tuple encoding.
func (a *Asset) UnmarshalJSON(data []byte) error {
	return unmarshalTuple(data, "Asset", &a.ID, &a.Owner, &a.IsSufficient, &a.MinBalance)
}

// NominationPools is the nomination pools pallet configuration.
type NominationPools struct {
	MinCreateBond Balance `json:"minCreateBond"`
	MinJoinBond   Balance `json:"minJoinBond"`
}

// NodeAuthorization is the node authorization pallet configuration.
type NodeAuthorization struct {
	Nodes []NodeOwner `json:"nodes"`
}

// NodeOwner is a well known node and its owner.
type NodeOwner struct {
	PeerID string
	Owner  crypto.AccountID
}

// MarshalJSON encodes the node as the tuple [peer id, owner].
func (n NodeOwner) MarshalJSON() ([]byte, error) {
	return marshalTuple("NodeOwner", n.PeerID, n.Owner)
}

// UnmarshalJSON decodes the node from its tuple encoding.
func (n *NodeOwner) UnmarshalJSON(data []byte) error {
	return unmarshalTuple(data, "NodeOwner", &n.PeerID, &n.Owner)
}

func marshalTuple(name string, fields ...interface{}) ([]byte, error) {
	buf, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("error in %s marshal: %w", name, err)
	}
	return buf, nil
}

func unmarshalTuple(data []byte, name string, fields ...interface{}) error {
	var elements []json.RawMessage
	err := json.Unmarshal(data, &elements)
	if err != nil {
		return fmt.Errorf("error in %s unmarshal: %w", name, err)
	}

	if len(elements) != len(fields) {
		return fmt.Errorf("wrong number of fields in %s: %d != %d",
			name, len(elements), len(fields))
	}

	for i, field := range fields {
		err = json.Unmarshal(elements[i], field)
		if err != nil {
			return fmt.Errorf("error in %s unmarshal of field %d: %w", name, i, err)
		}
	}
	return nil
}
