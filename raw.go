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
	"fmt"
	"os"
	"strconv"
	"unsafe"

	"github.com/JohnCGriffin/overflow"

	"github.com/offheap/offheap/internal/cmem"
)

// Use the environment variable OFFHEAP_DEBUG_FILL to fill non-zeroed
// allocations with a known byte (e.g. OFFHEAP_DEBUG_FILL=0xA5). Useful for
// flushing out code that relies on uninitialized memory happening to be zero.
var (
	debugFill     bool
	debugFillByte byte
)

func init() {
	if val, ok := os.LookupEnv("OFFHEAP_DEBUG_FILL"); ok {
		if c, err := strconv.ParseUint(val, 0, 8); err == nil {
			debugFill, debugFillByte = true, byte(c)
		}
	}
}

func sizeOf[T any]() uintptr {
	var v T
	return unsafe.Sizeof(v)
}

func alloc[T any](count int, zeroed bool) (*T, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: count must be greater than zero", ErrInvalidArgument)
	}
	elem := sizeOf[T]()
	if elem == 0 {
		return nil, fmt.Errorf("%w: zero-sized element type", ErrInvalidArgument)
	}
	size, ok := overflow.Mul(count, int(elem))
	if !ok {
		return nil, fmt.Errorf("%w: allocation size would exceed system limits", ErrInvalidArgument)
	}

	var p unsafe.Pointer
	if zeroed {
		p = cmem.AllocZeroed(uintptr(count), elem)
	} else {
		p = cmem.Alloc(uintptr(size))
	}
	if p == nil {
		return nil, fmt.Errorf("%w: allocating %d bytes", ErrOutOfMemory, size)
	}
	if !zeroed && debugFill {
		cmem.Memset(p, debugFillByte, uintptr(size))
	}
	return (*T)(p), nil
}

// New allocates native memory for a single T. The content is unspecified.
func New[T any]() (*T, error) { return alloc[T](1, false) }

// NewZeroed allocates native memory for a single T, zero-filled.
func NewZeroed[T any]() (*T, error) { return alloc[T](1, true) }

// Alloc allocates native memory for count contiguous elements of T and
// returns the address of the first. The content is unspecified.
//
// It fails with ErrInvalidArgument if count is not positive or if
// count*unsafe.Sizeof(T) overflows, and with ErrOutOfMemory if the native
// allocator declines the request. Both checks happen before any native call.
// On success the caller owns the memory and must release it with Free
// exactly once.
func Alloc[T any](count int) (*T, error) { return alloc[T](count, false) }

// AllocZeroed is Alloc with every byte of the allocation set to zero.
func AllocZeroed[T any](count int) (*T, error) { return alloc[T](count, true) }

// Clear zero-fills exactly unsafe.Sizeof(T) bytes at p: one element, not the
// whole allocation. Fails with ErrNullPointer if p is nil.
//
// The fill is byte-level, so padding bytes are cleared as well.
func Clear[T any](p *T) error {
	if p == nil {
		return fmt.Errorf("%w: clear", ErrNullPointer)
	}
	cmem.Memset(unsafe.Pointer(p), 0, sizeOf[T]())
	return nil
}

// Copy copies exactly unsafe.Sizeof(T) bytes from src to dst: one element,
// not the whole allocation. Fails with ErrNullPointer if either address is
// nil. Behavior is undefined when the two elements overlap.
//
// The copy is byte-level, so padding bytes travel with the element.
func Copy[T any](dst, src *T) error {
	if dst == nil {
		return fmt.Errorf("%w: copy destination", ErrNullPointer)
	}
	if src == nil {
		return fmt.Errorf("%w: copy source", ErrNullPointer)
	}
	cmem.Copy(unsafe.Pointer(dst), unsafe.Pointer(src), sizeOf[T]())
	return nil
}

// Free releases memory previously returned by Alloc, AllocZeroed, New or
// NewZeroed. Freeing nil is a no-op, so unconditional cleanup paths need not
// special-case it; no native call is made. After Free the address is
// dangling and any further use is undefined.
func Free[T any](p *T) {
	if p == nil {
		return
	}
	cmem.Free(unsafe.Pointer(p))
}

// rawFree is Free for untyped addresses held by a Scope.
func rawFree(p unsafe.Pointer) {
	if p == nil {
		return
	}
	cmem.Free(p)
}
