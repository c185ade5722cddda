package corpus

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSyllablesFixture(t *testing.T) {
	f, err := os.Open("../testdata/syllables.csv")
	require.NoError(t, err)
	defer f.Close()

	rows, err := Load(f)
	require.NoError(t, err)
	assert.NotEmpty(t, rows)

	for _, row := range rows {
		assert.NotEmpty(t, row.InputClass, "row for %q missing input_class", row.MyanmarSyllable)
		assert.NotEmpty(t, row.MyanmarSyllable)
		assert.NotEmpty(t, row.MLCTSSyllable)
		assert.NotEmpty(t, row.Consonant)
	}
}

func TestWriteRoundTripsLoad(t *testing.T) {
	f, err := os.Open("../testdata/syllables.csv")
	require.NoError(t, err)
	defer f.Close()

	rows, err := Load(f)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, Write(&buf, rows))

	reloaded, err := Load(strings.NewReader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, rows, reloaded)
}
