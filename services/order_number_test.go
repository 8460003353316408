package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRandomOrderNumberRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		number := RandomOrderNumber()
		assert.GreaterOrEqual(t, number, 100000)
		assert.LessOrEqual(t, number, 999999)
	}
}

func TestRandomOrderNumberIsOverridable(t *testing.T) {
	original := RandomOrderNumber
	defer func() { RandomOrderNumber = original }()

	RandomOrderNumber = func() int { return 123456 }
	assert.Equal(t, 123456, RandomOrderNumber())
}
