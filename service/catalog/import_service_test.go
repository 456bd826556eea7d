package catalog

import (
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"storefront.GO/catalog"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	return db
}

const sampleCSV = `id,name,brand,category,price,discount_price,discount_percent,rating_value,rating_count,is_hot,colors,image_url,warehouse
100,Chuck 70,Converse,sneakers,85,,,4.6,900,false,black|white,/c.jpg,A
101,Run Star,Converse,sneakers,110,77,30,4.1,120,true,white,/r.jpg,B
102,Broken,Converse,sneakers,free,,,,,,black,/b.jpg,C
103,No Colors,Converse,sneakers,50,,,,,,,/n.jpg,D
100,Chuck 70 dup,Converse,sneakers,85,,,,,,black,/c.jpg,E
`

func TestImportProducts(t *testing.T) {
	db := testDB(t)

	res, err := ImportProducts(db, strings.NewReader(sampleCSV), ImportOptions{BatchSize: 1})
	require.NoError(t, err)
	assert.Equal(t, 5, res.TotalRows)
	assert.Equal(t, 2, res.Created)
	assert.Equal(t, 0, res.Updated)
	assert.Equal(t, 3, res.Skipped)
	assert.Len(t, res.Warnings, 4)
	assert.Contains(t, res.Warnings[0], "warehouse")

	c, err := catalog.Load("db", db)
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())

	p, err := c.ByID("101")
	require.NoError(t, err)
	assert.Equal(t, 77.0, p.EffectivePrice())
	assert.Equal(t, 30, p.Percent())
	assert.True(t, p.IsHot)
	assert.Equal(t, []string{"white"}, p.Colors)

	p, err = c.ByID("100")
	require.NoError(t, err)
	assert.Equal(t, []string{"black", "white"}, p.Colors)
	assert.False(t, p.Discounted())
}

func TestImportProductsUpdatesExisting(t *testing.T) {
	db := testDB(t)
	_, err := ImportProducts(db, strings.NewReader(sampleCSV), ImportOptions{})
	require.NoError(t, err)

	update := "id,name,price,colors\n100,Chuck 70 Hi,90,red\n"
	res, err := ImportProducts(db, strings.NewReader(update), ImportOptions{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Updated)
	assert.Equal(t, 0, res.Created)

	c, err := catalog.Load("db", db)
	require.NoError(t, err)
	p, err := c.ByID("100")
	require.NoError(t, err)
	assert.Equal(t, "Chuck 70 Hi", p.Name)
	assert.Equal(t, 90.0, p.Price)
	assert.Equal(t, []string{"red"}, p.Colors)
}

func TestImportProductsRequiresID(t *testing.T) {
	_, err := ImportProducts(testDB(t), strings.NewReader("name,price\nx,1\n"), ImportOptions{})
	assert.Error(t, err)

	_, err = ImportProducts(testDB(t), strings.NewReader(""), ImportOptions{})
	assert.Error(t, err)
}

func TestSeedFixture(t *testing.T) {
	db := testDB(t)
	n, err := SeedFixture(db)
	require.NoError(t, err)
	assert.Equal(t, catalog.MustFixture().Len(), n)

	n, err = SeedFixture(db)
	require.NoError(t, err)

	c, err := catalog.Load("db", db)
	require.NoError(t, err)
	assert.Equal(t, n, c.Len())
}
