package workforce

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDataset(t *testing.T) {
	for _, d := range Datasets {
		got, err := ParseDataset(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
		assert.Len(t, got.Columns(), 6)
	}
}

func TestParseDataset_Unknown(t *testing.T) {
	for _, s := range []string{"", "payroll", "Attendance", "export.xlsx"} {
		_, err := ParseDataset(s)
		assert.ErrorIs(t, err, ErrUnknownDataset, "ParseDataset(%q)", s)
	}
}
