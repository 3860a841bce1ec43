// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package wasm

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ChainSafe/nativex/internal/log"
	"github.com/klauspost/compress/zstd"
)

var logger log.LeveledLogger = log.NewFromGlobal(log.AddContext("pkg", "wasm"))

var (
	ErrCodeNotFound = errors.New("runtime code not found")
	ErrInvalidCode  = errors.New("runtime code is invalid")
)

// CodeBombLimit is the maximum size of a decompressed runtime blob.
const CodeBombLimit = 50 * 1024 * 1024

var (
	compressionPrefix = []byte{82, 188, 83, 118, 70, 219, 142, 5}
	wasmMagic         = []byte{0x00, 'a', 's', 'm'}
)

// Loader provides the runtime code placed in the genesis.
type Loader interface {
	Code() ([]byte, error)
}

// FileLoader loads the runtime code from a file.
type FileLoader struct {
	path string
}

// NewFileLoader returns a loader reading the runtime code at path.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// Code reads and checks the runtime code. The code is returned as
// stored, compressed or not.
func (l *FileLoader) Code() ([]byte, error) {
	code, err := os.ReadFile(filepath.Clean(l.path))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCodeNotFound, l.path)
		}
		return nil, fmt.Errorf("reading runtime code: %w", err)
	}

	err = Check(code)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l.path, err)
	}

	logger.Debugf("loaded runtime code of %d bytes from %s", len(code), l.path)
	return code, nil
}

// BytesLoader provides runtime code held in memory.
type BytesLoader []byte

// Code checks and returns the runtime code.
func (b BytesLoader) Code() ([]byte, error) {
	err := Check(b)
	if err != nil {
		return nil, err
	}
	return []byte(b), nil
}

// Check verifies the code, once decompressed, is a WASM module.
func Check(code []byte) error {
	decompressed, err := Decompress(code)
	if err != nil {
		return err
	}

	if !bytes.HasPrefix(decompressed, wasmMagic) {
		return fmt.Errorf("%w: missing wasm magic number", ErrInvalidCode)
	}
	return nil
}

// Decompress decompresses a WASM blob that may or may not be compressed
// with zstd. The decompressed size is bounded by CodeBombLimit.
func Decompress(code []byte) ([]byte, error) {
	if !bytes.HasPrefix(code, compressionPrefix) {
		return code, nil
	}

	decoder, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(CodeBombLimit))
	if err != nil {
		return nil, fmt.Errorf("creating zstd decoder: %w", err)
	}
	defer decoder.Close()

	decompressed, err := decoder.DecodeAll(code[len(compressionPrefix):], nil)
	if err != nil {
		return nil, fmt.Errorf("%w: decompressing: %s", ErrInvalidCode, err)
	}
	return decompressed, nil
}
