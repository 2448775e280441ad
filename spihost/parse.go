// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package spihost

import "github.com/pkg/errors"

// ParseBits parses an 8-bit pattern written MSB first, like "10110010" or
// "1,0,1,1,0,0,1,0". Commas and spaces are ignored; anything else but '0'
// and '1' is an error, as is any bit count other than 8.
func ParseBits(s string) (byte, error) {
	var b byte
	n := 0
	for i, r := range s {
		switch r {
		case ',', ' ':
			continue
		case '0', '1':
			if n == wordBits {
				return 0, errors.Errorf("in %q at pos %d: more than %d bits", s, i+1, wordBits)
			}
			b <<= 1
			if r == '1' {
				b |= 1
			}
			n++
		default:
			return 0, errors.Errorf("in %q at pos %d: expected '0' or '1', got %q", s, i+1, r)
		}
	}
	if n != wordBits {
		return 0, errors.Errorf("in %q: got %d bits, expected %d", s, n, wordBits)
	}
	return b, nil
}
