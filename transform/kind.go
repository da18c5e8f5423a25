package transform

import (
	"errors"
	"fmt"
)

// ErrUnknownTransform is returned for transform names outside of the supported set.
var ErrUnknownTransform = errors.New("unknown transform")

// Kind identifies one of the supported transforms.
type Kind uint8

const (
	KindTranslateX Kind = iota + 1
	KindTranslateY
	KindScale
	KindScaleX
	KindScaleY
	KindSkewX
	KindSkewY
	KindRotateZ
	KindRotate
)

var kindNames = map[Kind]string{
	KindTranslateX: "translateX",
	KindTranslateY: "translateY",
	KindScale:      "scale",
	KindScaleX:     "scaleX",
	KindScaleY:     "scaleY",
	KindSkewX:      "skewX",
	KindSkewY:      "skewY",
	KindRotateZ:    "rotateZ",
	KindRotate:     "rotate",
}

var kindsByName = func() map[string]Kind {
	kinds := make(map[string]Kind, len(kindNames))
	for kind, name := range kindNames {
		kinds[name] = kind
	}

	return kinds
}()

// Kinds returns all supported kinds in declaration order.
func Kinds() []Kind {
	return []Kind{
		KindTranslateX, KindTranslateY,
		KindScale, KindScaleX, KindScaleY,
		KindSkewX, KindSkewY,
		KindRotateZ, KindRotate,
	}
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind looks up a kind by its name. Names are case sensitive.
func ParseKind(name string) (Kind, error) {
	kind, ok := kindsByName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTransform, name)
	}

	return kind, nil
}
