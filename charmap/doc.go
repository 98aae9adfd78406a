/*
Copyright 2014 Google Inc. All rights reserved.

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

// Package charmap resolves character filters expressed in Unicode general
// categories, codepoint bounds and explicit characters into interval sets.
//
// Category data comes from the tables in the standard unicode package. The
// unassigned category Cn has no table there and is derived as the complement
// of every assigned category.
//
// A Catalog memoizes every resolution for the lifetime of the process.
// Identical queries return the identical *intervals.Set.
package charmap
