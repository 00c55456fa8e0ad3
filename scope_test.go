// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package offheap

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeRelease(t *testing.T) {
	var s Scope

	a, err := AllocIn[int32](&s, 10)
	require.NoError(t, err)
	require.NotNil(t, a)

	b, err := AllocZeroedIn[int64](&s, 3)
	require.NoError(t, err)
	for i, v := range unsafe.Slice(b, 3) {
		assert.Zero(t, v, "element %d", i)
	}

	c, err := NewIn[float64](&s)
	require.NoError(t, err)
	assert.Zero(t, *c)

	assert.Equal(t, 3, s.Len())
	s.Release()
	assert.Equal(t, 0, s.Len())
}

func TestScopeReuseAfterRelease(t *testing.T) {
	var s Scope
	s.Release() // empty release is a no-op

	for i := 0; i < 2; i++ {
		_, err := AllocIn[byte](&s, 16)
		require.NoError(t, err)
		assert.Equal(t, 1, s.Len())
		s.Release()
		assert.Equal(t, 0, s.Len())
	}
}

func TestScopeAdopt(t *testing.T) {
	var s Scope

	p, err := Alloc[int16](4)
	require.NoError(t, err)
	s.Adopt(unsafe.Pointer(p))
	assert.Equal(t, 1, s.Len())

	s.Adopt(nil)
	assert.Equal(t, 1, s.Len())

	s.Release()
}

func TestScopeFailedAllocNotRegistered(t *testing.T) {
	var s Scope

	_, err := AllocIn[int32](&s, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	assert.Equal(t, 0, s.Len())
}
