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

import "errors"

// The three error kinds this package reports. Returned errors wrap one of
// these sentinels; match with errors.Is.
var (
	// ErrInvalidArgument reports a structurally invalid request: a count
	// that is not positive, a zero-sized element type, or a total size
	// that overflows the platform's address arithmetic. Detected before
	// any native allocator call.
	ErrInvalidArgument = errors.New("offheap: invalid argument")

	// ErrOutOfMemory reports that the native allocator declined the
	// request. The request is not retried.
	ErrOutOfMemory = errors.New("offheap: out of memory")

	// ErrNullPointer reports a nil address or empty span passed to Clear
	// or Copy. Detected before touching memory.
	ErrNullPointer = errors.New("offheap: null pointer")
)
