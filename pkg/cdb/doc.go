/*
Copyright 2026 The CDB Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

     http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package cdb defines the wire constants and shared data model of the
// cyanide database chunk format: chunk kinds, data types, the
// table/column records the decoder assembles and the encoder
// consumes, the packed round-trip metadata integer, and the fixed
// table-flags lookup.
package cdb
