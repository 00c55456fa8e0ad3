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

// Package cmem exposes the raw allocation primitives the offheap package is
// built on: allocate, allocate-zeroed, free, memset and memcpy.
//
// The backing implementation depends on the build configuration. With cgo
// enabled the primitives map directly onto the C runtime (malloc, calloc,
// free, memset, memcpy). Without cgo, anonymous memory mappings are used on
// unix platforms, and a pinned Go-heap fallback everywhere else.
//
// cmem performs no argument validation: a nil return from Alloc or
// AllocZeroed means the native allocator declined the request, and every
// other primitive trusts its caller. Validation is the caller's job.
package cmem
