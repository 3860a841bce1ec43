// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package genesis

import (
	crand "crypto/rand"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"

	"github.com/ChainSafe/nativex/internal/primitives/core/crypto"
)

// Rand is the source of randomness used to pick nominator targets.
// It is implemented by *math/rand.Rand.
type Rand interface {
	// Intn returns a number in [0, n). It panics if n <= 0.
	Intn(n int) int
}

// NewRand returns a pseudo random generator seeded from the
// operating system entropy source.
func NewRand() *rand.Rand {
	var seed [8]byte
	_, err := crand.Read(seed[:])
	if err != nil {
		panic(fmt.Sprintf("reading entropy: %s", err))
	}
	return rand.New(rand.NewSource(int64(binary.LittleEndian.Uint64(seed[:])))) //nolint:gosec
}

// StakerStatus is the status a staker is bonded with,
// either validating or nominating the targets.
type StakerStatus struct {
	Validator bool
	Targets   []crypto.AccountID
}

// Validator is the status of a validating staker.
var Validator = StakerStatus{Validator: true}

// Nominator returns the status of a staker nominating the targets given.
func Nominator(targets []crypto.AccountID) StakerStatus {
	return StakerStatus{Targets: targets}
}

var errStakerStatusMalformed = errors.New("staker status malformed")

// MarshalJSON encodes the status as "Validator" or {"Nominator": [targets]}.
func (s StakerStatus) MarshalJSON() ([]byte, error) {
	if s.Validator {
		return json.Marshal("Validator")
	}

	targets := s.Targets
	if targets == nil {
		targets = []crypto.AccountID{}
	}
	return json.Marshal(map[string][]crypto.AccountID{"Nominator": targets})
}

// UnmarshalJSON decodes the status from its JSON encoding.
func (s *StakerStatus) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err == nil {
		if name != "Validator" {
			return fmt.Errorf("%w: unknown status %q", errStakerStatusMalformed, name)
		}
		*s = Validator
		return nil
	}

	var nominator map[string][]crypto.AccountID
	err := json.Unmarshal(data, &nominator)
	if err != nil {
		return fmt.Errorf("%w: %s", errStakerStatusMalformed, err)
	}

	targets, ok := nominator["Nominator"]
	if !ok || len(nominator) != 1 {
		return fmt.Errorf("%w: expected a single Nominator key", errStakerStatusMalformed)
	}
	if targets == nil {
		targets = []crypto.AccountID{}
	}
	*s = Nominator(targets)
	return nil
}

// Staker is a bonded account at genesis.
type Staker struct {
	Stash      crypto.AccountID
	Controller crypto.AccountID
	Value      Balance
	Status     StakerStatus
}

// MarshalJSON encodes the staker as the tuple [stash, controller, value, status].
func (s Staker) MarshalJSON() ([]byte, error) {
	return marshalTuple("Staker", s.Stash, s.Controller, s.Value, s.Status)
}

// UnmarshalJSON decodes the staker from its tuple encoding.
func (s *Staker) UnmarshalJSON(data []byte) error {
	return unmarshalTuple(data, "Staker", &s.Stash, &s.Controller, &s.Value, &s.Status)
}

// AssignStakers returns one validator staker per authority, bonded
// from its stash, followed by one nominator staker per nominator.
// Each nominator nominates a random number of distinct authority
// stashes, strictly lower than min(maxNominations, len(authorities)).
func AssignStakers(rng Rand, authorities []AuthorityKeys, nominators []crypto.AccountID,
	stake Balance, maxNominations uint32) []Staker {
	stakers := make([]Staker, 0, len(authorities)+len(nominators))
	for _, authority := range authorities {
		stakers = append(stakers, Staker{
			Stash:      authority.Stash,
			Controller: authority.Stash,
			Value:      stake,
			Status:     Validator,
		})
	}

	limit := len(authorities)
	if int(maxNominations) < limit {
		limit = int(maxNominations)
	}

	for _, nominator := range nominators {
		count := 0
		if limit > 0 {
			count = rng.Intn(limit)
		}

		stakers = append(stakers, Staker{
			Stash:      nominator,
			Controller: nominator,
			Value:      stake,
			Status:     Nominator(pickTargets(rng, authorities, count)),
		})
	}

	return stakers
}

// pickTargets samples count distinct authority stashes
// with a partial Fisher-Yates shuffle.
func pickTargets(rng Rand, authorities []AuthorityKeys, count int) []crypto.AccountID {
	indexes := make([]int, len(authorities))
	for i := range indexes {
		indexes[i] = i
	}

	targets := make([]crypto.AccountID, count)
	for i := 0; i < count; i++ {
		j := i + rng.Intn(len(indexes)-i)
		indexes[i], indexes[j] = indexes[j], indexes[i]
		targets[i] = authorities[indexes[i]].Stash
	}
	return targets
}
