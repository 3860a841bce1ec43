// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package crypto

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/cosmos/go-bip39"
)

var (
	secretPhraseRegex = regexp.MustCompile(`^(?P<phrase>[\d\w ]+)?(?P<path>(//?[^/]+)*)(///(?P<password>.*))?$`)
	junctionRegex     = regexp.MustCompile(`/(/?[^/]+)`)
)

var (
	ErrInvalidFormat = errors.New("invalid secret uri format")
	ErrInvalidPhrase = errors.New("invalid mnemonic phrase")
	ErrInvalidSeed   = errors.New("invalid seed")
)

// SecretURI is a parsed secret key URI of the form
// `phrase/soft//hard///password`.
//
// The phrase is either a BIP-39 mnemonic or a 0x prefixed hex seed.
// An empty phrase stands for DevPhrase, so `//Alice` is the
// development key of Alice.
type SecretURI struct {
	// Phrase is the mnemonic or hex seed.
	Phrase string
	// Password is the optional password, nil if absent.
	Password *string
	// Junctions is the derivation path.
	Junctions []DeriveJunction
}

// NewSecretURI parses a secret URI.
func NewSecretURI(s string) (SecretURI, error) {
	matches := secretPhraseRegex.FindStringSubmatch(s)
	if matches == nil {
		return SecretURI{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	var (
		phrase   string
		path     string
		password *string
	)
	for i, name := range secretPhraseRegex.SubexpNames() {
		switch name {
		case "phrase":
			phrase = matches[i]
		case "path":
			path = matches[i]
		case "password":
			// an empty group cannot be told apart from an absent one,
			// so look for the separator itself.
			if strings.Contains(s, "///") {
				value := matches[i]
				password = &value
			}
		}
	}

	if phrase == "" {
		phrase = DevPhrase
	}

	if !strings.HasPrefix(phrase, "0x") && !bip39.IsMnemonicValid(phrase) {
		return SecretURI{}, fmt.Errorf("%w: %d words", ErrInvalidPhrase, len(strings.Fields(phrase)))
	}

	var junctions []DeriveJunction
	for _, match := range junctionRegex.FindAllStringSubmatch(path, -1) {
		junction, err := NewDeriveJunctionFromString(match[1])
		if err != nil {
			return SecretURI{}, err
		}
		junctions = append(junctions, junction)
	}

	return SecretURI{
		Phrase:    phrase,
		Password:  password,
		Junctions: junctions,
	}, nil
}
