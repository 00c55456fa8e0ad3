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

package cmem

import (
	"fmt"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllocFree(t *testing.T) {
	sizes := []uintptr{1, 16, 4096, 100_000}
	for _, size := range sizes {
		t.Run(fmt.Sprint(size), func(t *testing.T) {
			p := Alloc(size)
			require.NotNil(t, p)
			defer Free(p)

			b := unsafe.Slice((*byte)(p), size)
			b[0], b[size-1] = 0xAB, 0xCD
			assert.Equal(t, byte(0xAB), b[0])
			assert.Equal(t, byte(0xCD), b[size-1])
		})
	}
}

func TestAllocZeroed(t *testing.T) {
	p := AllocZeroed(100, 8)
	require.NotNil(t, p)
	defer Free(p)

	for i, c := range unsafe.Slice((*byte)(p), 800) {
		assert.Equal(t, byte(0), c, "byte not zero at %d", i)
	}
}

func TestMemset(t *testing.T) {
	p := AllocZeroed(1, 64)
	require.NotNil(t, p)
	defer Free(p)

	Memset(p, 0x5A, 32)
	b := unsafe.Slice((*byte)(p), 64)
	assert.Equal(t, byte(0x5A), b[0])
	assert.Equal(t, byte(0x5A), b[31])
	assert.Equal(t, byte(0), b[32])
}

func TestCopy(t *testing.T) {
	src := AllocZeroed(1, 32)
	require.NotNil(t, src)
	defer Free(src)
	dst := AllocZeroed(1, 32)
	require.NotNil(t, dst)
	defer Free(dst)

	Memset(src, 0x11, 32)
	Copy(dst, src, 16)

	b := unsafe.Slice((*byte)(dst), 32)
	assert.Equal(t, byte(0x11), b[15])
	assert.Equal(t, byte(0), b[16])
}

func TestFreeNil(t *testing.T) {
	assert.NotPanics(t, func() { Free(nil) })
}
