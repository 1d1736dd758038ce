// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Marimo Team

package chartform

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// ContainerSize is the serialized form of a "fill container" width.
const ContainerSize = "container"

// Size is a chart dimension: either a pixel count or the "container" fill
// sentinel. The zero value means unset.
type Size struct {
	Container bool
	Pixels    int
}

// Pixels returns a fixed-pixel size.
func Pixels(n int) Size {
	return Size{Pixels: n}
}

// Container returns the fill-container size.
func Container() Size {
	return Size{Container: true}
}

// IsZero reports whether the size is unset.
func (s Size) IsZero() bool {
	return !s.Container && s.Pixels == 0
}

func (s Size) String() string {
	if s.Container {
		return ContainerSize
	}
	return strconv.Itoa(s.Pixels)
}

// ParseSize parses a pixel count or the "container" keyword.
func ParseSize(v string) (Size, error) {
	if v == ContainerSize {
		return Container(), nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return Size{}, fmt.Errorf("invalid size %q: expected a pixel count or %q", v, ContainerSize)
	}
	return Pixels(n), nil
}

// MarshalJSON writes the size as a number or the "container" string.
func (s Size) MarshalJSON() ([]byte, error) {
	if s.Container {
		return json.Marshal(ContainerSize)
	}
	return json.Marshal(s.Pixels)
}

// UnmarshalJSON accepts a number or the "container" string.
func (s *Size) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		parsed, err := ParseSize(str)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid size: %w", err)
	}
	*s = Pixels(n)
	return nil
}

// MarshalYAML writes the size as a number or the "container" string.
func (s Size) MarshalYAML() (any, error) {
	if s.Container {
		return ContainerSize, nil
	}
	return s.Pixels, nil
}

// UnmarshalYAML accepts a number or the "container" string.
func (s *Size) UnmarshalYAML(node *yaml.Node) error {
	var str string
	if err := node.Decode(&str); err == nil {
		parsed, err := ParseSize(str)
		if err != nil {
			return err
		}
		*s = parsed
		return nil
	}
	var n int
	if err := node.Decode(&n); err != nil {
		return fmt.Errorf("invalid size: %w", err)
	}
	*s = Pixels(n)
	return nil
}
