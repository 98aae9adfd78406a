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
	"github.com/infosecual/textfuzz/data"
)

// Strategy produces values of type T from a data.Source. Strategies are
// immutable once constructed and may be shared between goroutines; all
// per-draw state lives in the Source.
//
// Errors returned by the Source, data.ErrExhausted in particular, are
// returned unchanged.
type Strategy[T any] interface {
	Draw(src data.Source) (T, error)
}

// StrategyFunc adapts a function to the Strategy interface.
type StrategyFunc[T any] func(src data.Source) (T, error)

// Draw calls f(src).
func (f StrategyFunc[T]) Draw(src data.Source) (T, error) { return f(src) }

type mappedStrategy[S, T any] struct {
	base Strategy[S]
	pack func(S) T
}

// Map returns a strategy that draws from base and transforms the result
// with pack.
func Map[S, T any](base Strategy[S], pack func(S) T) Strategy[T] {
	return mappedStrategy[S, T]{base: base, pack: pack}
}

func (m mappedStrategy[S, T]) Draw(src data.Source) (T, error) {
	v, err := m.base.Draw(src)
	if err != nil {
		var zero T
		return zero, err
	}
	return m.pack(v), nil
}

type listStrategy[T any] struct {
	elem             Strategy[T]
	minSize, maxSize int
}

// Lists returns a strategy for slices of between minSize and maxSize
// elements drawn from elem. Lengths are biased toward minSize. It panics
// if minSize is negative or greater than maxSize.
func Lists[T any](elem Strategy[T], minSize, maxSize int) Strategy[[]T] {
	if minSize > maxSize {
		panic("minSize must be <= maxSize")
	}
	if minSize < 0 {
		panic("minSize must be >= 0")
	}
	return listStrategy[T]{elem: elem, minSize: minSize, maxSize: maxSize}
}

func (l listStrategy[T]) Draw(src data.Source) ([]T, error) {
	n, err := src.DrawBiasedInt(l.minSize, l.maxSize, l.minSize)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, n)
	for i := 0; i < n; i++ {
		v, err := l.elem.Draw(src)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Integers returns a strategy for integers in [lower, upper], biased
// toward lower. It panics if lower > upper.
func Integers(lower, upper int) Strategy[int] {
	if lower > upper {
		panic("lower must be <= upper")
	}
	return StrategyFunc[int](func(src data.Source) (int, error) {
		return src.DrawBiasedInt(lower, upper, lower)
	})
}
