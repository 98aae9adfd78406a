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

package fuzz

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument indicates a strategy was configured with a filter
	// or bound that cannot be satisfied. It is only returned at
	// construction time, never from a draw.
	ErrInvalidArgument = errors.New("fuzz: invalid argument")
	// ErrNoCharacters indicates a character filter that admits nothing.
	ErrNoCharacters = fmt.Errorf("%w: no admissible characters", ErrInvalidArgument)
)
