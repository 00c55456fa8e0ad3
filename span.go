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
	"unsafe"

	"github.com/offheap/offheap/internal/debug"
)

// Span is a bounds-carrying view of a native allocation: the address of the
// first element plus the element count. A Span does not own the memory it
// describes; ownership stays with the underlying allocation, and freeing
// through the Span frees that same allocation.
//
// The zero Span is empty.
type Span[T any] struct {
	ptr   *T
	count int
}

// AllocSpan allocates count contiguous elements of T, as Alloc does, and
// returns them as a Span whose Count is exactly count.
func AllocSpan[T any](count int) (Span[T], error) {
	p, err := Alloc[T](count)
	if err != nil {
		return Span[T]{}, err
	}
	return Span[T]{ptr: p, count: count}, nil
}

// AllocSpanZeroed is AllocSpan with every byte of the allocation set to zero.
func AllocSpanZeroed[T any](count int) (Span[T], error) {
	p, err := AllocZeroed[T](count)
	if err != nil {
		return Span[T]{}, err
	}
	return Span[T]{ptr: p, count: count}, nil
}

// SpanOf views count elements starting at p. p must be an address previously
// returned by this package's allocate calls (or nil with count 0); SpanOf
// attaches the bound, it does not validate it.
func SpanOf[T any](p *T, count int) Span[T] {
	if p == nil || count <= 0 {
		return Span[T]{}
	}
	return Span[T]{ptr: p, count: count}
}

// Ptr returns the address of the first element, or nil for an empty span.
func (s Span[T]) Ptr() *T { return s.ptr }

// Count returns the number of elements the span declares.
func (s Span[T]) Count() int { return s.count }

// IsEmpty reports whether the span describes no elements.
func (s Span[T]) IsEmpty() bool { return s.ptr == nil || s.count <= 0 }

// Slice returns the span's elements as a regular Go slice over the native
// memory. The slice is valid until the underlying allocation is freed.
func (s Span[T]) Slice() []T {
	if s.IsEmpty() {
		return nil
	}
	return unsafe.Slice(s.ptr, s.count)
}

// At returns the address of element i. It panics if i is out of range,
// mirroring slice indexing.
func (s Span[T]) At(i int) *T {
	if i < 0 || i >= s.count {
		panic(fmt.Sprintf("offheap: span index %d out of range [0:%d]", i, s.count))
	}
	debug.Assert(s.ptr != nil, "offheap: non-empty span with nil address")
	return (*T)(unsafe.Add(unsafe.Pointer(s.ptr), uintptr(i)*sizeOf[T]()))
}

// Clear zero-fills the first element only, delegating to Clear. Fails with
// an error wrapping ErrNullPointer if the span is empty.
func (s Span[T]) Clear() error {
	if s.IsEmpty() {
		return fmt.Errorf("%w: clear of empty span", ErrNullPointer)
	}
	return Clear(s.ptr)
}

// CopySpan copies the first element of src over the first element of dst,
// delegating to Copy. Elements past the first are untouched. Fails with an
// error wrapping ErrNullPointer if either span is empty.
func CopySpan[T any](dst, src Span[T]) error {
	if dst.IsEmpty() {
		return fmt.Errorf("%w: copy to empty span", ErrNullPointer)
	}
	if src.IsEmpty() {
		return fmt.Errorf("%w: copy from empty span", ErrNullPointer)
	}
	return Copy(dst.ptr, src.ptr)
}

// Free releases the allocation the span was derived from, delegating to
// Free. Freeing an empty span is a no-op.
func (s Span[T]) Free() {
	Free(s.ptr)
}
