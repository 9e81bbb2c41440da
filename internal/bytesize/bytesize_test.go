package bytesize

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0.0 B"},
		{1, "1.0 B"},
		{500, "500.0 B"},
		{1023, "1023.0 B"},
		{1024, "1.0 KB"},
		{1536, "1.5 KB"},
		{1024*1024 - 1, "1024.0 KB"},
		{1024 * 1024, "1.0 MB"},
		{12_184_000, "11.62 MB"},
		{1152, "1.12 KB"},
		{1664, "1.62 KB"},
		{1179648, "1.12 MB"},
		{1280, "1.25 KB"},
		{1126, "1.1 KB"},
		{3 * 1024 * 1024 * 1024, "3.0 GB"},
		{1 << 40, "1.0 TB"},
		{1 << 50, "1.0 PB"},
		{1 << 60, "1.0 EB"},
		{math.MaxUint64, "16.0 EB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.in), "Format(%d)", tt.in)
	}
}

func TestFormat_UnitRanges(t *testing.T) {
	for i := 1; i <= 6; i++ {
		lo := uint64(1) << (10 * i)
		hi := lo*1024 - 1
		if i == 6 {
			hi = math.MaxUint64
		}
		assert.Equal(t, i, Exponent(lo), "lower bound of %s", units[i])
		assert.Equal(t, i, Exponent(hi), "upper bound of %s", units[i])
		assert.Equal(t, i-1, Exponent(lo-1), "just below %s", units[i])
	}
}

func TestFormat_TiesRoundToEven(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{1152, "1.12 KB"}, // 1.125
		{1664, "1.62 KB"}, // 1.625
		{1408, "1.38 KB"}, // 1.375
		{1920, "1.88 KB"}, // 1.875
		{2176, "2.12 KB"}, // 2.125
		{1025, "1.0 KB"},     // 1.0009...
		{1100, "1.07 KB"}, // 1.0742...
		{2047, "2.0 KB"},     // 1.9990...
		{5000, "4.88 KB"}, // 4.8828...
		{1_000_000, "976.56 KB"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.in), "Format(%d)", tt.in)
	}
}
