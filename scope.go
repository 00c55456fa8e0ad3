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
	"unsafe"

	"golang.org/x/exp/slices"
)

// Scope collects native allocations and releases them together, so a
// function can guarantee cleanup on every exit path with a single
// `defer s.Release()`. It is a convenience over the raw Alloc/Free pair,
// not a replacement: allocations whose lifetime must outlive the scope
// should keep using Alloc and Free directly.
//
// The zero value is ready to use. A Scope is not safe for concurrent use.
type Scope struct {
	ptrs []unsafe.Pointer
}

// AllocIn allocates count elements of T, as Alloc does, and registers the
// result for release by s. Failed allocations register nothing.
func AllocIn[T any](s *Scope, count int) (*T, error) {
	p, err := Alloc[T](count)
	if err != nil {
		return nil, err
	}
	s.Adopt(unsafe.Pointer(p))
	return p, nil
}

// AllocZeroedIn is AllocIn with every byte of the allocation set to zero.
func AllocZeroedIn[T any](s *Scope, count int) (*T, error) {
	p, err := AllocZeroed[T](count)
	if err != nil {
		return nil, err
	}
	s.Adopt(unsafe.Pointer(p))
	return p, nil
}

// NewIn allocates a single zero-filled T and registers it for release by s.
func NewIn[T any](s *Scope) (*T, error) {
	return AllocZeroedIn[T](s, 1)
}

// Adopt registers an existing allocation for release by s. Adopting nil is a
// no-op. The pointer must not also be freed directly.
func (s *Scope) Adopt(p unsafe.Pointer) {
	if p == nil {
		return
	}
	s.ptrs = append(s.ptrs, p)
}

// Len returns the number of allocations pending release.
func (s *Scope) Len() int { return len(s.ptrs) }

// Release frees every registered allocation, most recent first, and empties
// the scope. Releasing an empty scope is a no-op and the scope may be reused
// after Release.
func (s *Scope) Release() {
	slices.Reverse(s.ptrs)
	for _, p := range s.ptrs {
		rawFree(p)
	}
	s.ptrs = s.ptrs[:0]
}
