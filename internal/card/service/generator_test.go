package service

import (
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/binbot/internal/card/domain"
)

var (
	fullLine     = regexp.MustCompile(`^\d{15,16}\|\d{2}\|\d{2}\|\d{3,4}$`)
	dateOnlyLine = regexp.MustCompile(`^\d{2}\|\d{2}\|\d{3,4}$`)
	fixedNow     = time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)
)

func newTestGenerator(seed uint64) *Generator {
	return NewGenerator(NewDefaultClassifier(), NewSeededSource(seed), func() time.Time { return fixedNow })
}

func TestGenerator_Synthesize(t *testing.T) {
	gen := newTestGenerator(1)

	t.Run("Success_KeepsExplicitDigits", func(t *testing.T) {
		assert.Equal(t, "4242424242424242", gen.Synthesize("4242424242424240"))
	})

	t.Run("Success_AmexCheckDigit", func(t *testing.T) {
		assert.Equal(t, "371449635398431", gen.Synthesize("37144963539843x"))
	})

	t.Run("Success_PadsShortPattern", func(t *testing.T) {
		number := gen.Synthesize("424242")
		assert.Len(t, number, 16)
		assert.True(t, strings.HasPrefix(number, "424242"))
		assert.True(t, LuhnValid(number))
	})

	t.Run("Success_TruncatesToBrandLength", func(t *testing.T) {
		number := gen.Synthesize("3714496353984319999")
		assert.Len(t, number, 15)
		assert.Equal(t, "371449635398431", number)
	})

	t.Run("Success_UnknownBrandUsesDefaultLength", func(t *testing.T) {
		number := gen.Synthesize("999999xx")
		assert.Len(t, number, 16)
		assert.True(t, LuhnValid(number))
	})

	t.Run("Success_FillsInnerPlaceholders", func(t *testing.T) {
		for range 50 {
			number := gen.Synthesize("5555xx44xx")
			require.Len(t, number, 16)
			assert.Equal(t, "5555", number[:4])
			assert.Equal(t, "44", number[6:8])
			assert.True(t, LuhnValid(number))
		}
	})
}

func TestGenerator_FutureDate(t *testing.T) {
	gen := newTestGenerator(2)
	earliest := fixedNow.AddDate(0, 0, minExpiryDays)
	latest := fixedNow.AddDate(0, 0, maxExpiryDays)

	for range 500 {
		month, year := gen.FutureDate()
		require.Len(t, month, 2)
		require.Len(t, year, 2)

		m, err := strconv.Atoi(month)
		require.NoError(t, err)
		y, err := strconv.Atoi(year)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, m, 1)
		assert.LessOrEqual(t, m, 12)

		ym := (2000+y)*12 + m
		assert.GreaterOrEqual(t, ym, earliest.Year()*12+int(earliest.Month()))
		assert.LessOrEqual(t, ym, latest.Year()*12+int(latest.Month()))
	}
}

func TestGenerator_CVV(t *testing.T) {
	gen := newTestGenerator(3)

	for _, rule := range append(domain.Brands, domain.OtherBrand) {
		cvv := gen.CVV(rule)
		assert.Len(t, cvv, rule.CVVLength, rule.Name)
		assert.True(t, isDigits(cvv))
	}
}

func TestGenerator_GenerateBatch(t *testing.T) {
	t.Run("Success_BareBin", func(t *testing.T) {
		gen := newTestGenerator(4)

		lines, err := gen.GenerateBatch("424242", domain.DefaultBatchSize, domain.ModeFull)
		require.NoError(t, err)
		require.Len(t, lines, 10)
		for _, line := range lines {
			assert.Regexp(t, fullLine, line)
			fields := strings.Split(line, "|")
			assert.True(t, strings.HasPrefix(fields[0], "4"))
			assert.Len(t, fields[0], 16)
			assert.True(t, LuhnValid(fields[0]))
			assert.Len(t, fields[3], 3)
		}
	})

	t.Run("Success_ExplicitFieldsReused", func(t *testing.T) {
		gen := newTestGenerator(5)

		lines, err := gen.GenerateBatch("650842507513|12|33", 5, domain.ModeFull)
		require.NoError(t, err)
		require.Len(t, lines, 5)
		for _, line := range lines {
			fields := strings.Split(line, "|")
			assert.True(t, strings.HasPrefix(fields[0], "650842507513"))
			assert.True(t, LuhnValid(fields[0]))
			assert.Equal(t, "12", fields[1])
			assert.Equal(t, "33", fields[2])
			assert.Len(t, fields[3], 3)
		}
	})

	t.Run("Success_ExplicitCVVReused", func(t *testing.T) {
		gen := newTestGenerator(6)

		lines, err := gen.GenerateBatch("371449|01|30|1234", 3, domain.ModeFull)
		require.NoError(t, err)
		for _, line := range lines {
			fields := strings.Split(line, "|")
			assert.Len(t, fields[0], 15)
			assert.Equal(t, "1234", fields[3])
		}
	})

	t.Run("Success_PlaceholderDatesVary", func(t *testing.T) {
		gen := newTestGenerator(7)

		lines, err := gen.GenerateBatch("424242|xx|xx|xxx", 20, domain.ModeFull)
		require.NoError(t, err)
		dates := map[string]struct{}{}
		for _, line := range lines {
			fields := strings.Split(line, "|")
			dates[fields[1]+fields[2]] = struct{}{}
		}
		assert.Greater(t, len(dates), 1)
	})

	t.Run("Success_SinglePlaceholderCoordinate", func(t *testing.T) {
		gen := newTestGenerator(8)

		lines, err := gen.GenerateBatch("424242|07|xx", 10, domain.ModeFull)
		require.NoError(t, err)
		for _, line := range lines {
			fields := strings.Split(line, "|")
			assert.Equal(t, "07", fields[1])
			y, _ := strconv.Atoi(fields[2])
			assert.GreaterOrEqual(t, 2000+y, fixedNow.Year()+1)
			assert.LessOrEqual(t, 2000+y, fixedNow.Year()+5)
		}
	})

	t.Run("Success_DateOnly", func(t *testing.T) {
		gen := newTestGenerator(9)

		lines, err := gen.GenerateBatch("371449|01|30|1234", 4, domain.ModeDateOnly)
		require.NoError(t, err)
		require.Len(t, lines, 4)
		for _, line := range lines {
			assert.Regexp(t, dateOnlyLine, line)
			assert.Len(t, strings.Split(line, "|")[2], 4)
		}
	})

	t.Run("Success_DateOnlyIgnoresExplicitFields", func(t *testing.T) {
		gen := newTestGenerator(11)

		for _, raw := range []string{"424242|13", "424242|12|ab", "424242|xx|xx|99999"} {
			lines, err := gen.GenerateBatch(raw, 3, domain.ModeDateOnly)
			require.NoError(t, err)
			require.Len(t, lines, 3, raw)
			for _, line := range lines {
				assert.Regexp(t, dateOnlyLine, line)
			}
		}

		lines, err := gen.GenerateBatch("42ab42|01|30", 3, domain.ModeDateOnly)
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("Success_Deterministic", func(t *testing.T) {
		first, err := newTestGenerator(42).GenerateBatch("424242", 10, domain.ModeFull)
		require.NoError(t, err)
		second, err := newTestGenerator(42).GenerateBatch("424242", 10, domain.ModeFull)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Success_InvalidPatternEmpty", func(t *testing.T) {
		gen := newTestGenerator(10)

		for _, raw := range []string{"bad!", "abc123", "", "424242|13|30"} {
			lines, err := gen.GenerateBatch(raw, 10, domain.ModeFull)
			assert.NoError(t, err)
			assert.Empty(t, lines, raw)
			assert.NotNil(t, lines)
		}
	})

	t.Run("Success_ZeroCount", func(t *testing.T) {
		lines, err := newTestGenerator(11).GenerateBatch("424242", 0, domain.ModeFull)
		assert.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("Success_PastYearEmpty", func(t *testing.T) {
		lines, err := newTestGenerator(12).GenerateBatch("424242|01|20", 5, domain.ModeFull)
		assert.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("Success_CVVLengthMismatchEmpty", func(t *testing.T) {
		lines, err := newTestGenerator(13).GenerateBatch("424242|01|30|1234", 5, domain.ModeFull)
		assert.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("Error_NegativeCount", func(t *testing.T) {
		lines, err := newTestGenerator(14).GenerateBatch("424242", -1, domain.ModeFull)
		assert.ErrorIs(t, err, domain.ErrInvalidCount)
		assert.Nil(t, lines)
	})

	t.Run("Error_UnknownMode", func(t *testing.T) {
		lines, err := newTestGenerator(15).GenerateBatch("424242", 1, domain.Mode("bulk"))
		assert.ErrorIs(t, err, domain.ErrInvalidMode)
		assert.Nil(t, lines)
	})
}

func TestGenerator_UnseededVaries(t *testing.T) {
	gen := NewGenerator(NewDefaultClassifier(), NewRandomSource(), nil)

	first, err := gen.GenerateBatch("424242", 10, domain.ModeFull)
	require.NoError(t, err)
	second, err := gen.GenerateBatch("424242", 10, domain.ModeFull)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
