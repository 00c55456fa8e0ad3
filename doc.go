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

// Package offheap is a typed facade over the process's native memory
// allocator. It provides two access levels: raw typed pointers
// ([Alloc], [Clear], [Copy], [Free]) and a bounds-carrying view
// ([Span]) layered on top of them.
//
// Every allocation is a direct pass-through to the native allocator; there is
// no pooling, no free list and no tracking. Ownership of an allocation rests
// entirely with the caller: every successful Alloc must be paired with exactly
// one Free. [Scope] offers a convenience layer that guarantees the release
// half of that pairing on every exit path.
//
// # The element type
//
// The type parameter T must be a fixed-size type that contains no Go pointers
// (no pointers, maps, slices, strings, channels, funcs or interfaces, directly
// or in any field). The memory handed out by this package is invisible to the
// garbage collector, so a Go pointer stored in it keeps nothing alive. This
// contract cannot be expressed as a type constraint and is not checked.
//
// # Single-element Clear and Copy
//
// Clear and Copy operate on exactly one element, unsafe.Sizeof(T) bytes,
// regardless of how many elements the allocation holds. Callers working with
// multi-element allocations must apply them per element, or go through the
// slice view of a [Span].
//
// All operations are synchronous and stateless; concurrent use is as safe as
// the underlying native allocator makes it. Racing a Free against any other
// use of the same address is a caller-level race this package does not detect.
package offheap
