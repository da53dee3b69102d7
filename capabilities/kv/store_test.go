// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package kv_test

import (
	"testing"

	"code.hybscloud.com/kernel/capabilities/kv"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *kv.Store {
	t.Helper()
	s, err := kv.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestGetOnMissingKeyReturnsEmptyResponse(t *testing.T) {
	s := openTestStore(t)

	resp := s.Execute(kv.Get{Key: "absent"}).(kv.GetResponse)
	assert.Equal(t, kv.ErrNone, resp.Err)
	assert.Nil(t, resp.Value)
}

func TestSetThenGetRoundTrips(t *testing.T) {
	s := openTestStore(t)

	setResp := s.Execute(kv.Set{Key: "a", Value: []byte("1")}).(kv.SetResponse)
	assert.Nil(t, setResp.Previous)

	getResp := s.Execute(kv.Get{Key: "a"}).(kv.GetResponse)
	assert.Equal(t, []byte("1"), getResp.Value)
}

func TestSetReturnsPreviousValue(t *testing.T) {
	s := openTestStore(t)

	s.Execute(kv.Set{Key: "a", Value: []byte("1")})
	resp := s.Execute(kv.Set{Key: "a", Value: []byte("2")}).(kv.SetResponse)
	assert.Equal(t, []byte("1"), resp.Previous)

	getResp := s.Execute(kv.Get{Key: "a"}).(kv.GetResponse)
	assert.Equal(t, []byte("2"), getResp.Value)
}

func TestDeleteRemovesKeyAndReturnsPrevious(t *testing.T) {
	s := openTestStore(t)

	s.Execute(kv.Set{Key: "a", Value: []byte("1")})
	delResp := s.Execute(kv.Delete{Key: "a"}).(kv.SetResponse)
	assert.Equal(t, []byte("1"), delResp.Previous)

	existsResp := s.Execute(kv.Exists{Key: "a"}).(kv.ExistsResponse)
	assert.False(t, existsResp.Present)
}

func TestExistsReflectsStoreState(t *testing.T) {
	s := openTestStore(t)

	before := s.Execute(kv.Exists{Key: "a"}).(kv.ExistsResponse)
	assert.False(t, before.Present)

	s.Execute(kv.Set{Key: "a", Value: []byte("1")})

	after := s.Execute(kv.Exists{Key: "a"}).(kv.ExistsResponse)
	assert.True(t, after.Present)
}

func TestListKeysFiltersByPrefixAndAdvancesCursor(t *testing.T) {
	s := openTestStore(t)

	s.Execute(kv.Set{Key: "ns:a", Value: []byte("1")})
	s.Execute(kv.Set{Key: "ns:b", Value: []byte("2")})
	s.Execute(kv.Set{Key: "other:c", Value: []byte("3")})

	resp := s.Execute(kv.ListKeys{Prefix: "ns:", Cursor: 0}).(kv.ListKeysResponse)
	assert.ElementsMatch(t, []string{"ns:a", "ns:b"}, resp.Keys)
	assert.Greater(t, resp.Cursor, uint64(0))

	next := s.Execute(kv.ListKeys{Prefix: "ns:", Cursor: resp.Cursor}).(kv.ListKeysResponse)
	assert.Empty(t, next.Keys)
}

func TestNamespaceBuildsPrefixedKeys(t *testing.T) {
	assert.NotPanics(t, func() {
		kv.Namespace("orders").Get("42")
	})
}
