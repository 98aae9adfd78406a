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
	"reflect"
	"regexp"
	"unsafe"

	"github.com/infosecual/textfuzz/data"
)

// Fuzzer fills the string and []byte fields of Go values with draws from
// text and binary strategies. Structs, pointers, arrays and slices are
// walked recursively; every other kind is left untouched.
//
// Configure a Fuzzer before use. Fill only reads the configuration, so one
// Fuzzer may be used from several goroutines as long as each call gets its
// own Source.
type Fuzzer struct {
	text                  Strategy[string]
	binary                Strategy[[]byte]
	minElements           int
	maxElements           int
	maxDepth              int
	allowUnexportedFields bool
	skipFieldPatterns     []*regexp.Regexp
}

// New returns a Fuzzer producing strings of up to 20 non-surrogate
// characters and byte slices of up to 20 bytes. Customize it further by
// calling Text, Binary, NumElements or MaxDepth in any order.
func New() *Fuzzer {
	return &Fuzzer{
		text:        Text(MustCharacters(CharacterOptions{}), 0, 20),
		binary:      Binary(0, 20),
		minElements: 1,
		maxElements: 10,
		maxDepth:    100,
	}
}

// Text sets the strategy used for string values.
func (f *Fuzzer) Text(s Strategy[string]) *Fuzzer {
	f.text = s
	return f
}

// Binary sets the strategy used for []byte values.
func (f *Fuzzer) Binary(s Strategy[[]byte]) *Fuzzer {
	f.binary = s
	return f
}

// NumElements sets the minimum and maximum number of elements that will be
// added to a slice that is not a []byte.
func (f *Fuzzer) NumElements(atLeast, atMost int) *Fuzzer {
	if atLeast > atMost {
		panic("atLeast must be <= atMost")
	}
	if atLeast < 0 {
		panic("atLeast must be >= 0")
	}
	f.minElements = atLeast
	f.maxElements = atMost
	return f
}

// MaxDepth sets the maximum number of nested values Fill descends into.
func (f *Fuzzer) MaxDepth(d int) *Fuzzer {
	f.maxDepth = d
	return f
}

// AllowUnexportedFields decides whether unexported struct fields are
// filled too.
func (f *Fuzzer) AllowUnexportedFields(flag bool) *Fuzzer {
	f.allowUnexportedFields = flag
	return f
}

// SkipFieldsWithPattern skips struct fields whose name matches pattern.
// Call it multiple times if needed.
func (f *Fuzzer) SkipFieldsWithPattern(pattern *regexp.Regexp) *Fuzzer {
	f.skipFieldPatterns = append(f.skipFieldPatterns, pattern)
	return f
}

// Fill recursively sets every reachable string and []byte in obj from src.
// obj must be a pointer. The first error from src is returned as is; obj
// may be partially filled by then.
func (f *Fuzzer) Fill(obj interface{}, src data.Source) error {
	v := reflect.ValueOf(obj)
	if v.Kind() != reflect.Ptr {
		panic("needed ptr!")
	}
	fc := &fillContext{fuzzer: f, src: src}
	return fc.fill(v.Elem())
}

// FillFromGoFuzz fills obj from a go-fuzz input. The same input always
// produces the same value.
//
//	func Fuzz(input []byte) int {
//		var req Request
//		if err := fuzz.New().FillFromGoFuzz(input, &req); err != nil {
//			return -1
//		}
//		Handle(req)
//		return 0
//	}
func (f *Fuzzer) FillFromGoFuzz(input []byte, obj interface{}) error {
	return f.Fill(obj, data.NewFromBytes(input, 0))
}

// fillContext carries the per-call state of a single Fill.
type fillContext struct {
	fuzzer   *Fuzzer
	src      data.Source
	curDepth int
}

func (fc *fillContext) fill(v reflect.Value) error {
	if fc.curDepth >= fc.fuzzer.maxDepth {
		return nil
	}
	fc.curDepth++
	defer func() { fc.curDepth-- }()

	if !v.CanSet() {
		if !fc.fuzzer.allowUnexportedFields || !v.CanAddr() {
			return nil
		}
		v = reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
	}

	switch v.Kind() {
	case reflect.String:
		s, err := fc.fuzzer.text.Draw(fc.src)
		if err != nil {
			return err
		}
		v.SetString(s)
	case reflect.Slice:
		if v.Type().Elem().Kind() == reflect.Uint8 {
			b, err := fc.fuzzer.binary.Draw(fc.src)
			if err != nil {
				return err
			}
			v.SetBytes(b)
			return nil
		}
		n, err := fc.src.DrawBiasedInt(fc.fuzzer.minElements, fc.fuzzer.maxElements, fc.fuzzer.minElements)
		if err != nil {
			return err
		}
		v.Set(reflect.MakeSlice(v.Type(), n, n))
		for i := 0; i < n; i++ {
			if err := fc.fill(v.Index(i)); err != nil {
				return err
			}
		}
	case reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := fc.fill(v.Index(i)); err != nil {
				return err
			}
		}
	case reflect.Ptr:
		if v.IsNil() {
			v.Set(reflect.New(v.Type().Elem()))
		}
		return fc.fill(v.Elem())
	case reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			if fc.skipField(v.Type().Field(i).Name) {
				continue
			}
			if err := fc.fill(v.Field(i)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (fc *fillContext) skipField(name string) bool {
	for _, pattern := range fc.fuzzer.skipFieldPatterns {
		if pattern.MatchString(name) {
			return true
		}
	}
	return false
}
