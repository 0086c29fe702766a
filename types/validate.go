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

package types

import "strings"

// Characters permitted in a D-Bus style signature string.
const signatureChars = "ybnqiuxthdvasog(){}"

// IsSignature reports whether s is a concatenation of zero or more definite
// types without maybes, as carried by values of the signature kind (`g`).
func IsSignature(s string) bool {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(signatureChars, s[i]) < 0 {
			return false
		}
	}
	for len(s) > 0 {
		end, ok := Scan(s, -1)
		if !ok {
			return false
		}
		s = s[end:]
	}
	return true
}

// IsObjectPath reports whether s is a valid object path: `/`, or one or more
// `/`-prefixed non-empty elements of `[A-Za-z0-9_]`, without a trailing slash.
func IsObjectPath(s string) bool {
	if len(s) == 0 || s[0] != '/' {
		return false
	}
	if len(s) == 1 {
		return true
	}
	prevSlash := true
	for i := 1; i < len(s); i++ {
		c := s[i]
		if c == '/' {
			if prevSlash {
				return false
			}
			prevSlash = true
			continue
		}
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_') {
			return false
		}
		prevSlash = false
	}
	return !prevSlash
}
