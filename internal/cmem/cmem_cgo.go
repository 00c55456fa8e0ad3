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

//go:build cgo

package cmem

// #include <stdlib.h>
// #include <string.h>
import "C"
import "unsafe"

// Alloc returns size bytes of uninitialized native memory, or nil if the
// allocator declined the request.
func Alloc(size uintptr) unsafe.Pointer {
	return C.malloc(C.size_t(size))
}

// AllocZeroed returns count*elemSize bytes of zero-filled native memory, or
// nil if the allocator declined the request.
func AllocZeroed(count, elemSize uintptr) unsafe.Pointer {
	return C.calloc(C.size_t(count), C.size_t(elemSize))
}

// Free releases memory previously returned by Alloc or AllocZeroed.
func Free(p unsafe.Pointer) {
	C.free(p)
}

// Memset fills n bytes at p with c.
func Memset(p unsafe.Pointer, c byte, n uintptr) {
	if n == 0 {
		return
	}
	C.memset(p, C.int(c), C.size_t(n))
}

// Copy copies n bytes from src to dst. The ranges must not overlap.
func Copy(dst, src unsafe.Pointer, n uintptr) {
	if n == 0 {
		return
	}
	C.memcpy(dst, src, C.size_t(n))
}
