// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package hwy

// ProcessWithTail is a helper for processing a run of size elements with
// vectors of tag d, handling both full vectors and the remainder.
//
// It calls:
//   - fullFn(offset) for each full vector (offset is the starting index)
//   - tailFn(offset, count) once for the tail if size is not a multiple of the lane count
//
// Example:
//
//	hwy.ProcessWithTail[float32](d, len(data),
//	    func(offset int) {
//	        v := hwy.Load(d, data[offset:])
//	        hwy.Store(hwy.Add(v, v), output[offset:])
//	    },
//	    func(offset, count int) {
//	        v := hwy.Load(d, data[offset:offset+count])
//	        for k := range count {
//	            output[offset+k] = hwy.GetLane(hwy.Add(v, v), k)
//	        }
//	    },
//	)
func ProcessWithTail[T Lanes](d Tag, size int, fullFn func(offset int), tailFn func(offset, count int)) {
	lanes := LanesOf[T](d)
	if lanes == 0 {
		return
	}

	alignedEnd := size - size%lanes
	for offset := 0; offset < alignedEnd; offset += lanes {
		fullFn(offset)
	}

	if remaining := size - alignedEnd; remaining > 0 {
		tailFn(alignedEnd, remaining)
	}
}
