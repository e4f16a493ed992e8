// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package envconfig

import (
	"errors"
	"fmt"
	"strconv"
)

// Port is a TCP/UDP port number.
//
// It is a distinct type so a port cannot be mixed up with other integer
// settings. Decoding accepts decimal digits only and rejects values that do
// not fit into 16 bits.
type Port uint16

// ParsePort converts s into a Port.
func ParsePort(s string) (Port, error) {
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: %q", ErrPortOutOfRange, s)
		}
		return 0, fmt.Errorf("%w: %q", ErrInvalidPort, s)
	}

	return Port(n), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The env decoder calls
// it for every Port field.
func (p *Port) UnmarshalText(text []byte) error {
	port, err := ParsePort(string(text))
	if err != nil {
		return err
	}

	*p = port
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Port) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p Port) String() string {
	return strconv.FormatUint(uint64(p), 10)
}
