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

package offheap_test

import (
	"fmt"

	"github.com/offheap/offheap"
)

func ExampleAllocSpanZeroed() {
	s, err := offheap.AllocSpanZeroed[int32](4)
	if err != nil {
		panic(err)
	}
	defer s.Free()

	elems := s.Slice()
	elems[0] = 42
	fmt.Println(s.Count(), elems[0], elems[1])
	// Output: 4 42 0
}

func ExampleScope() {
	var s offheap.Scope
	defer s.Release()

	p, err := offheap.NewIn[uint64](&s)
	if err != nil {
		panic(err)
	}
	*p = 7
	fmt.Println(*p)
	// Output: 7
}
