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

//go:build !cgo && !unix

package cmem

import (
	"sync"
	"unsafe"
)

// Without cgo or mmap the blocks come from the Go heap. Each block is pinned
// in a registry keyed by its address so the collector keeps it alive until
// Free; Go's collector does not move heap objects, so the address stays valid
// for the block's lifetime.
var (
	mu     sync.Mutex
	blocks = make(map[unsafe.Pointer][]byte)
)

// Alloc returns size bytes of memory pinned on the Go heap.
func Alloc(size uintptr) unsafe.Pointer {
	if int(size) <= 0 {
		return nil
	}
	b := make([]byte, size)
	p := unsafe.Pointer(&b[0])
	mu.Lock()
	blocks[p] = b
	mu.Unlock()
	return p
}

// AllocZeroed returns count*elemSize bytes of zero-filled memory. Go heap
// memory is always zero-filled.
func AllocZeroed(count, elemSize uintptr) unsafe.Pointer {
	return Alloc(count * elemSize)
}

// Free unpins memory previously returned by Alloc or AllocZeroed.
func Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	mu.Lock()
	delete(blocks, p)
	mu.Unlock()
}
