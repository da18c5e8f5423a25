package transform

import (
	"fmt"

	"github.com/oliverbestmann/xform/arith"
	"github.com/oliverbestmann/xform/gm"
)

// Descriptor is a transform given by name, as it is written in a transform list.
type Descriptor[T any] struct {
	Name  string
	Value T
}

// FromDescriptor converts a named descriptor into a Transform.
func FromDescriptor[T any](d Descriptor[T]) (Transform[T], error) {
	kind, err := ParseKind(d.Name)
	if err != nil {
		return nil, err
	}

	return New(kind, d.Value), nil
}

// FromDescriptors converts all descriptors. It fails on the first unknown
// transform name and does not return a partial list.
func FromDescriptors[T any](descriptors []Descriptor[T]) ([]Transform[T], error) {
	transforms := make([]Transform[T], 0, len(descriptors))

	for idx, d := range descriptors {
		t, err := FromDescriptor(d)
		if err != nil {
			return nil, fmt.Errorf("transform %d: %w", idx, err)
		}

		transforms = append(transforms, t)
	}

	return transforms, nil
}

// ComposeDescriptors composes a list of named transforms. An unknown name
// rejects the complete list.
func ComposeDescriptors[T any](ar arith.Arith[T], descriptors []Descriptor[T]) (gm.Mat3[T], error) {
	transforms, err := FromDescriptors(descriptors)
	if err != nil {
		return gm.Mat3[T]{}, err
	}

	return Compose(ar, transforms), nil
}

// MustCompose is like ComposeDescriptors but panics on an unknown transform name.
func MustCompose[T any](ar arith.Arith[T], descriptors []Descriptor[T]) gm.Mat3[T] {
	m, err := ComposeDescriptors(ar, descriptors)
	if err != nil {
		panic(err)
	}

	return m
}
