package phoneme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicConsonantToMLCTS(t *testing.T) {
	assert.Equal(t, "k", K.ToMLCTS())
	assert.Equal(t, "hk", Hk.ToMLCTS())
	assert.Equal(t, "ng", Ng.ToMLCTS())
	assert.Equal(t, "a", A.ToMLCTS())
}

func TestFromMyanmarCollapses(t *testing.T) {
	cases := map[rune]BasicConsonant{
		'တ': T, 'ဋ': T,
		'ထ': Ht, 'ဌ': Ht,
		'ဒ': D, 'ဍ': D,
		'ဓ': Dh, 'ဎ': Dh,
		'န': N, 'ဏ': N,
		'ည': Ny, 'ဉ': Ny,
		'လ': L, 'ဠ': L,
	}
	for r, want := range cases {
		got, err := FromMyanmar(r)
		require.NoError(t, err)
		assert.Equal(t, want, got, "rune %q", r)
	}
}

func TestFromMyanmarRejectsNonConsonant(t *testing.T) {
	_, err := FromMyanmar('ာ')
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotAConsonant))
}

func TestMedialCombine(t *testing.T) {
	got, err := MedialHy.Combine(MedialW)
	require.NoError(t, err)
	assert.Equal(t, MedialHyw, got)

	got, err = MedialHr.Combine(MedialW)
	require.NoError(t, err)
	assert.Equal(t, MedialHrw, got)

	_, err = MedialR.Combine(MedialY)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIllegalMedialCombination))
}

func TestMedialCombineOptionalIdentity(t *testing.T) {
	m, err := CombineOptional(nil, nil)
	require.NoError(t, err)
	assert.Nil(t, m)

	y := MedialY
	m, err = CombineOptional(&y, nil)
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, MedialY, *m)
}

func TestAllSevenLegalMedialPairs(t *testing.T) {
	legal := []struct {
		a, b, want MedialDiacritic
	}{
		{MedialH, MedialY, MedialHy},
		{MedialH, MedialR, MedialHr},
		{MedialH, MedialW, MedialHw},
		{MedialY, MedialW, MedialYw},
		{MedialR, MedialW, MedialRw},
		{MedialHy, MedialW, MedialHyw},
		{MedialHr, MedialW, MedialHrw},
	}
	all := []MedialDiacritic{MedialY, MedialR, MedialW, MedialH, MedialYw, MedialRw, MedialHy, MedialHr, MedialHw, MedialHyw, MedialHrw}
	legalSet := make(map[[2]MedialDiacritic]bool)
	for _, l := range legal {
		legalSet[[2]MedialDiacritic{l.a, l.b}] = true
		got, err := l.a.Combine(l.b)
		require.NoError(t, err)
		assert.Equal(t, l.want, got)
	}
	for _, a := range all {
		for _, b := range all {
			_, err := a.Combine(b)
			if legalSet[[2]MedialDiacritic{a, b}] {
				assert.NoError(t, err, "%v+%v should combine", a, b)
			} else {
				assert.Error(t, err, "%v+%v should not combine", a, b)
			}
		}
	}
}

func TestConsonantToMLCTSWrapsHPrefix(t *testing.T) {
	c := NewConsonantWithMedial(M, MedialHyw)
	assert.Equal(t, "hmyw", c.ToMLCTS())

	c = NewConsonantWithMedial(K, MedialY)
	assert.Equal(t, "ky", c.ToMLCTS())

	c = NewConsonant(K)
	assert.Equal(t, "k", c.ToMLCTS())
}

func TestVowelToMLCTS(t *testing.T) {
	v := NewVowel(VA)
	assert.Equal(t, "a", v.ToMLCTS())

	tone := High
	v = NewVowelWithTone(VAu, tone)
	assert.Equal(t, "au:", v.ToMLCTS())

	virama := ViramaT
	v = NewVowelWithVirama(VA, virama)
	assert.Equal(t, "at", v.ToMLCTS())
}

func TestSyllableToMLCTSWithBottom(t *testing.T) {
	top := NewConsonant(T)
	virama := ViramaT
	vow := NewVowelWithVirama(VA, virama)
	bottom := &BaseSyllable{Consonant: NewConsonant(K), Vowel: NewVowel(VA)}
	s := NewSyllable(top, vow, bottom)
	assert.Equal(t, "tatka", s.ToMLCTS())
}

func TestViramaCreakyOnly(t *testing.T) {
	assert.True(t, ViramaK.CreakyOnly())
	assert.True(t, ViramaC.CreakyOnly())
	assert.True(t, ViramaT.CreakyOnly())
	assert.True(t, ViramaP.CreakyOnly())
	assert.False(t, ViramaN.CreakyOnly())
	assert.False(t, ViramaM.CreakyOnly())
}
