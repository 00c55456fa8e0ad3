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

//go:build !cgo && unix

package cmem

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// headerSize bytes in front of every block record the total mapping length so
// Free can rebuild the mapping from the user address alone. 16 keeps the user
// address aligned for every Go type.
const headerSize = 16

// Alloc returns size bytes backed by an anonymous mapping, or nil if the
// mapping fails.
func Alloc(size uintptr) unsafe.Pointer {
	total := size + headerSize
	if total < size || int(total) < 0 {
		return nil
	}
	b, err := unix.Mmap(-1, 0, int(total),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil
	}
	*(*uintptr)(unsafe.Pointer(&b[0])) = total
	return unsafe.Pointer(&b[headerSize])
}

// AllocZeroed returns count*elemSize bytes of zero-filled memory. Fresh
// anonymous pages are already zero-filled, so this is Alloc with the size
// spelled as a product.
func AllocZeroed(count, elemSize uintptr) unsafe.Pointer {
	return Alloc(count * elemSize)
}

// Free unmaps memory previously returned by Alloc or AllocZeroed.
func Free(p unsafe.Pointer) {
	if p == nil {
		return
	}
	base := unsafe.Add(p, -headerSize)
	total := *(*uintptr)(base)
	_ = unix.Munmap(unsafe.Slice((*byte)(base), total))
}
