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

package charmap

import "errors"

var (
	// ErrUnknownCategory indicates a category name that is not a Unicode
	// general category or major class.
	ErrUnknownCategory = errors.New("charmap: unknown unicode category")
	// ErrInvalidRange indicates codepoint bounds outside [0, MaxCodepoint]
	// or a minimum above the maximum.
	ErrInvalidRange = errors.New("charmap: invalid codepoint range")
)
