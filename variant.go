// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package variant implements self-describing, strongly typed values in the style
// of GVariant.
//
// Types are described by signatures such as `a{sv}` or `(ias)` and are parsed
// into trees by the types package. A *Value pairs a definite type with its
// contents and is immutable once constructed. Values may be created with the
// New* constructors, packed from host values with New or Pack, or assembled
// incrementally with a Builder. Vardicts (`a{sv}`) may be edited with a Dict.
//
// Values are converted back into host values at three levels:
//
//	Unpack           converts only the outermost container
//	DeepUnpack       also converts each child of the outermost container
//	RecursiveUnpack  converts everything, removing boxing at every level
//
// For a vardict holding a name and a flag:
//
//	v.Unpack()          // map[string]*Value: "name" is <'Mario'>, "active" is <true>
//	v.DeepUnpack()      // map[string]interface{}: "name" is the *Value 'Mario', "active" the *Value true
//	v.RecursiveUnpack() // map[string]interface{}{"name": "Mario", "active": true}
//
// Containers may be nested at most types.MaxDepth levels deep.
package variant
