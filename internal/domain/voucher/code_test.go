//go:build unit

package voucher_test

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"voucher-ledger/internal/domain/voucher"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomCodeGenerator(t *testing.T) {
	t.Run("codes are well formed and distinct", func(t *testing.T) {
		gen := voucher.NewRandomCodeGenerator()
		seen := make(map[voucher.Code]struct{})
		for i := 0; i < 2000; i++ {
			c, err := gen.Next()
			require.NoError(t, err)
			require.True(t, c.IsWellFormed(), "malformed code %q", c)
			_, dup := seen[c]
			require.False(t, dup, "duplicate code %q", c)
			seen[c] = struct{}{}
		}
	})

	t.Run("bytes past the rejection threshold are skipped", func(t *testing.T) {
		// 252..255 would bias the alphabet and must be discarded
		src := append(bytes.Repeat([]byte{255}, 4), 0, 1, 2, 3, 25, 26, 35, 36)
		src = append(src, bytes.Repeat([]byte{0}, 16)...)
		gen := voucher.NewCodeGeneratorFrom(bytes.NewReader(src))

		c, err := gen.Next()
		require.NoError(t, err)
		assert.Equal(t, voucher.Code("VF-ABCDZ09A"), c)
	})

	t.Run("randomness failure is returned", func(t *testing.T) {
		gen := voucher.NewCodeGeneratorFrom(iotest.ErrReader(errors.New("entropy gone")))
		_, err := gen.Next()
		require.Error(t, err)
	})
}

func TestNormalizeCode(t *testing.T) {
	assert.Equal(t, voucher.Code("VF-AB12CD34"), voucher.NormalizeCode("  vf-ab12cd34 "))
	assert.True(t, voucher.NormalizeCode("vf-ab12cd34").IsWellFormed())
	assert.False(t, voucher.Code("VF-AB12").IsWellFormed())
	assert.False(t, voucher.Code("XX-AB12CD34").IsWellFormed())
}
