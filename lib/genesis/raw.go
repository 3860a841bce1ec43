// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package genesis

import (
	"errors"
	"fmt"

	"github.com/ChainSafe/nativex/internal/primitives/core/crypto"
	"github.com/ChainSafe/nativex/lib/common"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types"
	"github.com/centrifuge/go-substrate-rpc-client/v4/types/codec"
)

// ErrNoRuntimeGenesis is returned when converting a specification
// without runtime genesis to raw storage.
var ErrNoRuntimeGenesis = errors.New("no runtime genesis to convert")

// newAccountFlags marks account data as using the current
// balances reserve and freeze logic.
var newAccountFlags = func() types.U128 {
	var flags Balance
	flags.value.Lsh(flags.value.SetOne(), 127)
	return flags.u128()
}()

// AccountData is the balances of an account.
type AccountData struct {
	Free     types.U128
	Reserved types.U128
	Frozen   types.U128
	Flags    types.U128
}

// AccountInfo is the information stored in the system
// pallet for an account.
type AccountInfo struct {
	Nonce       uint32
	Consumers   uint32
	Providers   uint32
	Sufficients uint32
	Data        AccountData
}

func (b Balance) u128() types.U128 {
	return types.NewU128(*b.value.ToBig())
}

func newAccountInfo(free Balance) AccountInfo {
	zero := NewBalance(0).u128()
	return AccountInfo{
		Providers: 1,
		Data: AccountData{
			Free:     free.u128(),
			Reserved: zero,
			Frozen:   zero,
			Flags:    newAccountFlags,
		},
	}
}

// ToRaw converts the runtime genesis to raw storage entries.
// It is a no-op if the specification is already raw.
// Only storage items the runtime genesis sets explicitly are converted.
func (g *Genesis) ToRaw() error {
	if g.IsRaw() {
		return nil
	}

	rg := g.Genesis.RuntimeGenesis
	if rg == nil {
		return ErrNoRuntimeGenesis
	}

	top, err := buildRawMap(rg.Code, g.Runtime())
	if err != nil {
		return err
	}

	g.Genesis.Raw = map[string]map[string]string{
		"top":             top,
		"childrenDefault": {},
	}
	return nil
}

type rawMap map[string]string

func (r rawMap) set(key []byte, value interface{}) error {
	encoded, err := codec.Encode(value)
	if err != nil {
		return fmt.Errorf("encoding value of key %s: %w", common.BytesToHex(key), err)
	}
	r[common.BytesToHex(key)] = common.BytesToHex(encoded)
	return nil
}

func buildRawMap(code string, runtime *Runtime) (map[string]string, error) {
	res := rawMap{
		common.BytesToHex(common.CodeKey): code,
	}

	if runtime == nil {
		return res, nil
	}

	builders := []func(rawMap, *Runtime) error{
		buildSudo,
		buildBalances,
		buildStaking,
		buildCollectives,
	}
	for _, build := range builders {
		err := build(res, runtime)
		if err != nil {
			return nil, err
		}
	}

	return res, nil
}

func buildSudo(res rawMap, runtime *Runtime) error {
	if runtime.Sudo == nil || runtime.Sudo.Key == nil {
		return nil
	}
	return res.set(common.StorageKey("Sudo", "Key"), *runtime.Sudo.Key)
}

func buildBalances(res rawMap, runtime *Runtime) error {
	if runtime.Balances == nil {
		return nil
	}

	total := NewBalance(0)
	for _, fields := range runtime.Balances.Balances {
		key, err := common.StorageMapKey("System", "Account", fields.AccountID[:])
		if err != nil {
			return fmt.Errorf("hashing account %s: %w", fields.AccountID, err)
		}

		err = res.set(key, newAccountInfo(fields.Balance))
		if err != nil {
			return err
		}

		total, err = total.Add(fields.Balance)
		if err != nil {
			return fmt.Errorf("computing total issuance: %w", err)
		}
	}

	return res.set(common.StorageKey("Balances", "TotalIssuance"), total.u128())
}

func buildStaking(res rawMap, runtime *Runtime) error {
	staking := runtime.Staking
	if staking == nil {
		return nil
	}

	entries := []struct {
		item  string
		value interface{}
	}{
		{item: "ValidatorCount", value: staking.ValidatorCount},
		{item: "MinimumValidatorCount", value: staking.MinimumValidatorCount},
		{item: "Invulnerables", value: nonNilAccounts(staking.Invulnerables)},
		{item: "SlashRewardFraction", value: uint32(staking.SlashRewardFraction)},
	}
	for _, entry := range entries {
		err := res.set(common.StorageKey("Staking", entry.item), entry.value)
		if err != nil {
			return err
		}
	}
	return nil
}

func buildCollectives(res rawMap, runtime *Runtime) error {
	collectives := []struct {
		pallet     string
		collective *Collective
	}{
		{pallet: "Council", collective: runtime.Council},
		{pallet: "TechnicalCommittee", collective: runtime.TechnicalCommittee},
	}

	for _, c := range collectives {
		if c.collective == nil {
			continue
		}
		err := res.set(common.StorageKey(c.pallet, "Members"), nonNilAccounts(c.collective.Members))
		if err != nil {
			return err
		}
	}
	return nil
}

func nonNilAccounts(accounts []crypto.AccountID) []crypto.AccountID {
	if accounts == nil {
		return []crypto.AccountID{}
	}
	return accounts
}
