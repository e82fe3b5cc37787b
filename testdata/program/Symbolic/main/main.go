package main

import (
	"errors"
	"fmt"

	"github.com/sublee/enumconv/pkg/enumconverrors"
)

func main() {
	fmt.Println(LevelHigh.Uint8(), LevelHigher.Uint8(), LevelHighest.Uint8())
	fmt.Println(LevelFromUint8(0), describe(LevelHighest.Uint8()))

	_, err := LevelTryFromUint8(1)
	fmt.Println(err)
	fmt.Println(errors.Is(err, enumconverrors.ErrUnknownVariant))

	_, err = Level(1).TryUint8()
	fmt.Println(err)
}
