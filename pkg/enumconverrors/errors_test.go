package enumconverrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sublee/enumconv/pkg/enumconverrors"
)

func TestMessage(t *testing.T) {
	err := &enumconverrors.UnknownVariantError{Enum: "Number", Value: uint8(42)}
	assert.Equal(t, "unknown variant of Number: 42", err.Error())
}

func TestMessageNoEnum(t *testing.T) {
	err := &enumconverrors.UnknownVariantError{Value: -1}
	assert.Equal(t, "unknown variant: -1", err.Error())
}

func TestErrorIs(t *testing.T) {
	var err error = &enumconverrors.UnknownVariantError{Enum: "Number", Value: 7}
	assert.ErrorIs(t, err, enumconverrors.ErrUnknownVariant)

	err = fmt.Errorf("decoding header: %w", err)
	assert.ErrorIs(t, err, enumconverrors.ErrUnknownVariant)
	assert.NotErrorIs(t, err, errors.New("unknown variant"))
}

func TestErrorAs(t *testing.T) {
	err := fmt.Errorf("decoding header: %w", &enumconverrors.UnknownVariantError{Enum: "Number", Value: 7})

	var uve *enumconverrors.UnknownVariantError
	assert.ErrorAs(t, err, &uve)
	assert.Equal(t, "Number", uve.Enum)
	assert.Equal(t, 7, uve.Value)
}
