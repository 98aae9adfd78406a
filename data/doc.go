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

// Package data supplies the entropy that strategies draw from.
//
// A Data hands out bytes from an underlying stream, either a recorded
// buffer being replayed or a pseudo-random generator, and records every
// byte it hands out. Feeding the recording back through NewReplay
// reproduces the same draws, which is what lets an outer engine replay and
// minimize a failing example.
//
// A Data belongs to exactly one trial. It must not be used from more than
// one goroutine at a time.
package data

import "errors"

// ErrExhausted is returned by every draw once a Data has run out of bytes,
// either because its budget is spent or because a replayed buffer ended.
var ErrExhausted = errors.New("data: exhausted")
