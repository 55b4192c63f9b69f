package cooling_load_calc

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCatalogCSV = `series,kw_class,model,art_nr,cool_kw,heat_kw,seer,scop,eer,price,btus
split,5.0,Split 18,SP18,5.0,,6.1,4.0,3.4,1199,18.000
split,2.5,Split 09,SP09,2.5,3.2,6.2,4.6,3.56,799,9.000
split,3.5,Split 12,SP12,3.5,,6.2,4.6,3.56,899,12.000
cassette,7.1,Cassette 24,CS24,7.1,8.0,6.0,4.1,3.2,2499,24.000
`

func TestLoadCatalogSortsSeries(t *testing.T) {
	c, err := LoadCatalog(strings.NewReader(testCatalogCSV))
	require.NoError(t, err)

	assert.Equal(t, []string{"cassette", "split"}, c.SeriesNames())

	es, err := c.Series("split")
	require.NoError(t, err)
	require.Len(t, es, 3)
	assert.Equal(t, 2.5, es[0].KWClass)
	assert.Equal(t, 3.5, es[1].KWClass)
	assert.Equal(t, 5.0, es[2].KWClass)
	assert.Equal(t, "SP12", es[1].ArtNr)
	assert.Equal(t, 899.0, es[1].Price)
}

func TestCatalogHeatingCapacity(t *testing.T) {
	c, err := LoadCatalog(strings.NewReader(testCatalogCSV))
	require.NoError(t, err)

	e, ok := c.Entry("split", 3.5)
	require.True(t, ok)
	assert.InDelta(t, 4.2, e.HeatingKW(), 1e-12)

	e, ok = c.Entry("split", 2.5)
	require.True(t, ok)
	assert.Equal(t, 3.2, e.HeatingKW())

	_, ok = c.Entry("split", 4.0)
	assert.False(t, ok)
}

func TestCatalogRejectsBadEntries(t *testing.T) {
	_, err := NewDeviceCatalog([]CatalogEntry{
		{Series: "a", KWClass: 2.0, ArtNr: "x"},
		{Series: "a", KWClass: 2.0, ArtNr: "y"},
	})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewDeviceCatalog([]CatalogEntry{{Series: "a", KWClass: 0}})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewDeviceCatalog([]CatalogEntry{{KWClass: 2.0}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCatalogSeriesIsACopy(t *testing.T) {
	c := DefaultCatalog()
	es, err := c.Series(SeriesWindFree)
	require.NoError(t, err)
	es[0].Price = 0

	again, err := c.Series(SeriesWindFree)
	require.NoError(t, err)
	assert.Equal(t, 749.0, again[0].Price)
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	assert.Equal(t, []string{SeriesWindFree, SeriesWindFreeExt}, c.SeriesNames())

	es, err := c.Series(SeriesWindFree)
	require.NoError(t, err)
	var classes []float64
	for _, e := range es {
		classes = append(classes, e.KWClass)
		assert.Equal(t, SeriesWindFree, e.Series)
	}
	assert.Equal(t, []float64{2.0, 2.5, 3.5, 5.0}, classes)

	ext, err := c.Series(SeriesWindFreeExt)
	require.NoError(t, err)
	assert.Len(t, ext, 6)
	assert.InDelta(t, 9.6, ext[5].HeatingKW(), 1e-12)
}

func TestCatalogFileRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DefaultCatalog().WriteCatalog(&buf))

	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	c, err := LoadCatalogFile(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultCatalog().SeriesNames(), c.SeriesNames())

	rec, err := c.Match(3000, 1.10, SeriesWindFreeExt)
	require.NoError(t, err)
	assert.Equal(t, "AR12TXFCAWKNEU", rec.Primary.ArtNr)

	_, err = LoadCatalogFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}
