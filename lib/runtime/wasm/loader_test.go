// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package wasm

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testModule = []byte{0x00, 0x61, 0x73, 0x6d, 0x01, 0x00, 0x00, 0x00}

func compress(t *testing.T, code []byte) []byte {
	t.Helper()

	encoder, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	defer encoder.Close()

	compressed := append([]byte{}, compressionPrefix...)
	return encoder.EncodeAll(code, compressed)
}

func Test_FileLoader_Code(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	write := func(name string, data []byte) string {
		path := filepath.Join(dir, name)
		err := os.WriteFile(path, data, 0o600)
		require.NoError(t, err)
		return path
	}

	testCases := map[string]struct {
		path       string
		code       []byte
		errWrapped error
	}{
		"plain module": {
			path: write("plain.wasm", testModule),
			code: testModule,
		},
		"compressed module": {
			path: write("compressed.wasm", compress(t, testModule)),
			code: compress(t, testModule),
		},
		"missing file": {
			path:       filepath.Join(dir, "missing.wasm"),
			errWrapped: ErrCodeNotFound,
		},
		"not a module": {
			path:       write("text.wasm", []byte("hello")),
			errWrapped: ErrInvalidCode,
		},
		"compressed garbage": {
			path:       write("garbage.wasm", append(append([]byte{}, compressionPrefix...), 1, 2, 3)),
			errWrapped: ErrInvalidCode,
		},
		"compressed text": {
			path:       write("compressed_text.wasm", compress(t, []byte("hello"))),
			errWrapped: ErrInvalidCode,
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			code, err := NewFileLoader(testCase.path).Code()

			assert.ErrorIs(t, err, testCase.errWrapped)
			assert.Equal(t, testCase.code, code)
		})
	}
}

func Test_Decompress(t *testing.T) {
	t.Parallel()

	decompressed, err := Decompress(compress(t, testModule))
	require.NoError(t, err)
	assert.Equal(t, testModule, decompressed)

	decompressed, err = Decompress(testModule)
	require.NoError(t, err)
	assert.Equal(t, testModule, decompressed)
}

func Test_BytesLoader_Code(t *testing.T) {
	t.Parallel()

	code, err := BytesLoader(testModule).Code()
	require.NoError(t, err)
	assert.Equal(t, testModule, code)

	_, err = BytesLoader(nil).Code()
	assert.ErrorIs(t, err, ErrInvalidCode)
}
