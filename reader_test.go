package xvg

import (
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func linesSeq(lines []string) iter.Seq[string] {
	return slices.Values(lines)
}

func TestFromReader(t *testing.T) {
	require := require.New(t)

	input := strings.Join([]string{
		"# comment",
		`@ title "Potential Energy"`,
		`@ s0 legend "Potential"`,
		"0.0 -5881.52",
		"1.0 -5890.21",
		"//",
		"this is never read",
	}, "\n")

	table, err := FromReader(strings.NewReader(input))
	require.NoError(err)

	require.Equal("Potential Energy", table.Title())
	r, c := table.Dims()
	require.Equal(2, r)
	require.Equal(2, c)
}

func TestFromReaderParseError(t *testing.T) {
	require := require.New(t)

	_, err := FromReader(strings.NewReader("1 2\n3\n"))
	require.ErrorIs(err, ErrRaggedRow)
}

func TestFromSeq(t *testing.T) {
	require := require.New(t)

	table, err := FromSeq(linesSeq([]string{"1 2", "3 4"}))
	require.NoError(err)

	r, c := table.Dims()
	require.Equal(2, r)
	require.Equal(2, c)
}

func TestFromFile(t *testing.T) {
	require := require.New(t)

	table, err := FromFile(filepath.Join("testdata", "energy.xvg"))
	require.NoError(err)

	require.Equal("Potential Energy", table.Title())
	require.Equal("Time (ps)", table.XLabel())
	require.Equal("E (kJ/mol)", table.YLabel())
	require.Equal([]string{"", "Potential", "Kinetic En."}, table.Columns())

	r, c := table.Dims()
	require.Equal(3, r)
	require.Equal(3, c)

	col, err := table.Column("Kinetic En.")
	require.NoError(err)
	require.Equal(1290.10, col.AtVec(1))
}

func TestFromFileMissing(t *testing.T) {
	require := require.New(t)

	_, err := FromFile(filepath.Join("testdata", "does-not-exist.xvg"))
	require.Error(err)
	require.True(os.IsNotExist(err))
}

func TestFromFileParseError(t *testing.T) {
	require := require.New(t)

	path := filepath.Join(t.TempDir(), "ragged.xvg")
	require.NoError(os.WriteFile(path, []byte("1 2 3\n4 5\n"), 0o644))

	_, err := FromFile(path)
	require.ErrorIs(err, ErrRaggedRow)
}
