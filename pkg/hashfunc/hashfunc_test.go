package hashfunc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModulo_Hash(t *testing.T) {
	t.Run("buckets integers by their remainder", func(t *testing.T) {
		// Prepare
		h := Modulo{}

		// Execute
		bucket, err := h.Hash(5, 10)

		// Check
		assert.NoError(t, err)
		assert.Equal(t, 5, bucket, "correct bucket for a small integer")
	})

	t.Run("keeps negative integers inside the table", func(t *testing.T) {
		h := Modulo{}

		bucket, err := h.Hash(-3, 10)

		assert.NoError(t, err)
		assert.Equal(t, 7, bucket, "non-negative remainder for a negative value")
	})

	t.Run("handles int64 values", func(t *testing.T) {
		h := Modulo{}

		bucket, err := h.Hash(int64(-13), 10)

		assert.NoError(t, err)
		assert.Equal(t, 7, bucket)
	})

	t.Run("falls back to a text hash for strings", func(t *testing.T) {
		h := Modulo{}

		first, err := h.Hash("not an integer", 97)
		assert.NoError(t, err)
		second, err := h.Hash("not an integer", 97)
		assert.NoError(t, err)

		assert.Equal(t, first, second, "fallback is deterministic")
		assert.GreaterOrEqual(t, first, 0)
		assert.Less(t, first, 97)
	})

	t.Run("rejects a non-positive table size", func(t *testing.T) {
		h := Modulo{}

		_, err := h.Hash(5, 0)

		assert.Error(t, err)
		assert.True(t, IsConfigurationError(err), "table size error is a configuration error")
	})
}

func TestPolynomialRolling_Hash(t *testing.T) {
	t.Run("folds code points with modular reduction at every step", func(t *testing.T) {
		// Prepare
		h, err := NewPolynomialRolling(31)
		assert.NoError(t, err)

		// Execute
		bucket, err := h.Hash("abc", 1000)

		// Check: ((97*31+98)*31+99) mod 1000
		assert.NoError(t, err)
		assert.Equal(t, 354, bucket)
	})

	t.Run("maps the empty string to bucket 0", func(t *testing.T) {
		h, err := NewPolynomialRolling(31)
		assert.NoError(t, err)

		bucket, err := h.Hash("", 128)

		assert.NoError(t, err)
		assert.Equal(t, 0, bucket)
	})

	t.Run("is deterministic across repeated calls", func(t *testing.T) {
		h, err := NewPolynomialRolling(31)
		assert.NoError(t, err)

		first, err := h.Hash("repeatable", 4096)
		assert.NoError(t, err)
		for i := 0; i < 10; i++ {
			again, err := h.Hash("repeatable", 4096)
			assert.NoError(t, err)
			assert.Equal(t, first, again)
		}
	})

	t.Run("hashes integers through their text representation", func(t *testing.T) {
		h, err := NewPolynomialRolling(31)
		assert.NoError(t, err)

		fromInt, err := h.Hash(42, 100)
		assert.NoError(t, err)
		fromString, err := h.Hash("42", 100)
		assert.NoError(t, err)

		assert.Equal(t, fromString, fromInt)
	})

	t.Run("rejects a non-positive base", func(t *testing.T) {
		_, err := NewPolynomialRolling(0)

		assert.Error(t, err)
		assert.True(t, IsConfigurationError(err))
	})

	t.Run("rejects a non-positive table size", func(t *testing.T) {
		h, err := NewPolynomialRolling(31)
		assert.NoError(t, err)

		_, err = h.Hash("abc", -1)

		assert.True(t, IsConfigurationError(err))
	})
}

func TestFNV_Hash(t *testing.T) {
	t.Run("is deterministic across repeated calls", func(t *testing.T) {
		h := FNV{}

		first, err := h.Hash("stable input", 512)
		assert.NoError(t, err)
		again, err := h.Hash("stable input", 512)
		assert.NoError(t, err)

		assert.Equal(t, first, again)
	})

	t.Run("hashes integers and their text to the same bucket", func(t *testing.T) {
		h := FNV{}

		fromInt, err := h.Hash(123456, 1024)
		assert.NoError(t, err)
		fromString, err := h.Hash("123456", 1024)
		assert.NoError(t, err)

		assert.Equal(t, fromString, fromInt)
	})

	t.Run("rejects a non-positive table size", func(t *testing.T) {
		h := FNV{}

		_, err := h.Hash("abc", 0)

		assert.True(t, IsConfigurationError(err))
	})
}

func TestHashFunctions_BucketRange(t *testing.T) {
	functions := []HashFunction{Modulo{}, PolynomialRolling{Base: 31}, FNV{}}
	values := []interface{}{0, 1, -1, 42, -99999, int64(1) << 40, "", "a", "hello world", "zzzzzzzzzz"}
	tableSizes := []int{1, 2, 3, 10, 97, 1024}

	for _, function := range functions {
		for _, tableSize := range tableSizes {
			for _, value := range values {
				bucket, err := function.Hash(value, tableSize)

				assert.NoError(t, err)
				assert.GreaterOrEqual(t, bucket, 0, "function %s, table size %d, value %v", function.Name(), tableSize, value)
				assert.Less(t, bucket, tableSize, "function %s, table size %d, value %v", function.Name(), tableSize, value)
			}
		}
	}
}

func TestNew(t *testing.T) {
	t.Run("returns the function registered under each selector", func(t *testing.T) {
		for _, name := range Names() {
			function, err := New(name)

			assert.NoError(t, err)
			assert.Equal(t, name, function.Name())
		}
	})

	t.Run("rejects an unknown selector", func(t *testing.T) {
		_, err := New("sha256")

		assert.Error(t, err)
		assert.True(t, IsConfigurationError(err))
	})
}
