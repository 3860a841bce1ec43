// Copyright 2024 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package wasm

//go:generate mockgen -destination=mocks/loader.go -package mocks . Loader
