// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package genesis

import "github.com/ChainSafe/nativex/internal/primitives/core/crypto"

// ResolveEndowed returns the accounts to endow at genesis.
// A nil endowed list is replaced by the defaults given, whereas an
// empty non-nil list endows no account beyond stashes and nominators.
// Authority stashes and then nominators are appended if not already
// present. The result keeps first-seen order and has no duplicates.
func ResolveEndowed(authorities []AuthorityKeys, nominators,
	endowed, defaults []crypto.AccountID) []crypto.AccountID {
	if endowed == nil {
		endowed = defaults
	}

	capacity := len(endowed) + len(authorities) + len(nominators)
	resolved := make([]crypto.AccountID, 0, capacity)
	seen := make(map[crypto.AccountID]struct{}, capacity)

	add := func(account crypto.AccountID) {
		if _, ok := seen[account]; ok {
			return
		}
		seen[account] = struct{}{}
		resolved = append(resolved, account)
	}

	for _, account := range endowed {
		add(account)
	}
	for _, authority := range authorities {
		add(authority.Stash)
	}
	for _, nominator := range nominators {
		add(nominator)
	}

	return resolved
}
