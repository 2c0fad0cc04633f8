//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"ordering-service/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestIs(t *testing.T) {
	sentinel := errs.New("sentinel")

	t.Run("sees marks the standard matcher misses", func(t *testing.T) {
		err := errs.Mark(errs.New("cause"), sentinel)

		assert.True(t, errs.Is(err, sentinel))
		assert.False(t, errors.Is(err, sentinel))
	})

	t.Run("marks survive further wrapping", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(errs.New("cause"), sentinel), "outer")

		assert.True(t, errs.Is(err, sentinel))
	})

	t.Run("unmarked errors do not match", func(t *testing.T) {
		assert.False(t, errs.Is(errs.New("unrelated"), sentinel))
	})

	t.Run("mark on nil yields the sentinel itself", func(t *testing.T) {
		assert.True(t, errs.Is(errs.Mark(nil, sentinel), sentinel))
	})
}
