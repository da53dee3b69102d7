// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package kv is the key-value capability: get, set, delete, exists and
// list_keys, each a single request/response round trip to the shell.
// Store (in store.go) is the SQLite-backed implementation a shell binding
// wires these operations to.
package kv

import (
	"code.hybscloud.com/kernel/capability"
	"code.hybscloud.com/kernel/task"
)

// Error enumerates the ways a key-value operation can fail at the store.
// It is a plain string rather than the error interface: per the runtime's
// error-handling discipline, values crossing the shell boundary are data,
// not Go errors — the app pattern-matches on it like any other response.
type Error string

const (
	ErrNone     Error = ""
	ErrIO       Error = "io"
	ErrNotFound Error = "not_found"
)

// Get reads a single key.
type Get struct{ Key string }

func (Get) OpResult() GetResponse { panic("kv: Get is phantom") }

// GetResponse carries the value (nil if absent) or a store error.
type GetResponse struct {
	Value []byte
	Err   Error
}

// Set upserts a key/value pair, returning the previous value if any.
type Set struct {
	Key   string
	Value []byte
}

func (Set) OpResult() SetResponse { panic("kv: Set is phantom") }

type SetResponse struct {
	Previous []byte
	Err      Error
}

// Delete removes a key, returning the value it held if any.
type Delete struct{ Key string }

func (Delete) OpResult() SetResponse { panic("kv: Delete is phantom") }

// Exists reports whether a key is present.
type Exists struct{ Key string }

func (Exists) OpResult() ExistsResponse { panic("kv: Exists is phantom") }

type ExistsResponse struct {
	Present bool
	Err     Error
}

// ListKeys paginates the keys under prefix starting at cursor.
type ListKeys struct {
	Prefix string
	Cursor uint64
}

func (ListKeys) OpResult() ListKeysResponse { panic("kv: ListKeys is phantom") }

type ListKeysResponse struct {
	Keys   []string
	Cursor uint64
	Err    Error
}

// Of returns the five operations scoped to a single app-chosen namespace
// prefix, matching the shape app code reaches for from update: a handful
// of Expr-returning methods rather than free functions taking a key on
// every call.
type Of struct{ prefix string }

// Namespace scopes subsequent calls to keys under prefix+":".
func Namespace(prefix string) Of { return Of{prefix: prefix} }

func (n Of) key(key string) string {
	if n.prefix == "" {
		return key
	}
	return n.prefix + ":" + key
}

func (n Of) Get(key string) task.Expr[GetResponse] {
	return capability.RequestFromShell[Get, GetResponse](Get{Key: n.key(key)})
}

func (n Of) Set(key string, value []byte) task.Expr[SetResponse] {
	return capability.RequestFromShell[Set, SetResponse](Set{Key: n.key(key), Value: value})
}

func (n Of) Delete(key string) task.Expr[SetResponse] {
	return capability.RequestFromShell[Delete, SetResponse](Delete{Key: n.key(key)})
}

func (n Of) Exists(key string) task.Expr[ExistsResponse] {
	return capability.RequestFromShell[Exists, ExistsResponse](Exists{Key: n.key(key)})
}

func (n Of) ListKeys(cursor uint64) task.Expr[ListKeysResponse] {
	return capability.RequestFromShell[ListKeys, ListKeysResponse](ListKeys{Prefix: n.key(""), Cursor: cursor})
}
