// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package genesis

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON []byte

var schema = func() *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(schemaJSON))
	if err != nil {
		panic(fmt.Sprintf("embedded chain specification schema: %s", err))
	}
	return s
}()

// ErrSchemaViolation is returned when a chain specification
// does not match the chain specification JSON schema.
var ErrSchemaViolation = errors.New("chain specification does not match schema")

// ValidateJSON validates the chain specification JSON data against
// the chain specification schema.
func ValidateJSON(data []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("validating chain specification: %w", err)
	}

	if result.Valid() {
		return nil
	}

	messages := make([]string, len(result.Errors()))
	for i, resultErr := range result.Errors() {
		messages[i] = resultErr.String()
	}
	return fmt.Errorf("%w: %s", ErrSchemaViolation, strings.Join(messages, "; "))
}

// NewGenesisFromJSONBytes validates and decodes chain specification JSON data.
// The chain class is derived from the chain type.
func NewGenesisFromJSONBytes(data []byte) (*Genesis, error) {
	err := ValidateJSON(data)
	if err != nil {
		return nil, err
	}

	g := new(Genesis)
	err = json.Unmarshal(data, g)
	if err != nil {
		return nil, fmt.Errorf("decoding chain specification: %w", err)
	}

	g.class = ClassFromChainType(g.ChainType)
	return g, nil
}

// NewGenesisFromJSON parses a JSON formatted chain specification file.
func NewGenesisFromJSON(file string) (*Genesis, error) {
	fp, err := filepath.Abs(file)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Clean(fp))
	if err != nil {
		return nil, fmt.Errorf("reading chain specification: %w", err)
	}

	g, err := NewGenesisFromJSONBytes(data)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", file, err)
	}

	logger.Debugf("loaded chain specification %s from %s", g.ID, file)
	return g, nil
}
