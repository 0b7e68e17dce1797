package content_test

import (
	"testing"

	"aimlaw-web/internal/domain"
	"aimlaw-web/internal/repository/content"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoadCatalog(t *testing.T) {
	c, err := content.LoadCatalog()
	require.NoError(t, err)

	assert.Equal(t, "AIM Law", c.Site().Name)
	assert.Equal(t, "aim-law.ca", c.Site().Domain)
	assert.Equal(t, "ON", c.Site().Address.Province)

	services := c.List()
	require.Len(t, services, 5)
	assert.Equal(t, "immigration", services[0].ID)

	s, ok := c.FindByID("immigration")
	require.True(t, ok)
	assert.Equal(t, "Immigration Law", s.Title)
	assert.Equal(t, "immigration", s.Key)
	assert.NotEmpty(t, s.Areas)

	_, ok = c.FindByID("tax-law")
	assert.False(t, ok)
}

func TestCatalogIsReadOnly(t *testing.T) {
	c, err := content.LoadCatalog()
	require.NoError(t, err)

	list := c.List()
	list[0].Title = "changed"
	s, _ := c.FindByID(list[0].ID)
	s.Title = "changed again"

	again, _ := c.FindByID("immigration")
	assert.Equal(t, "Immigration Law", again.Title)
}

func TestParseCatalog(t *testing.T) {
	t.Run("Should reject duplicate ids", func(t *testing.T) {
		_, err := content.ParseCatalog([]byte(`
site: {name: X, domain: x.test}
services:
  - id: a
  - id: a
`))
		assert.ErrorContains(t, err, "duplicate service id")
	})

	t.Run("Should require site identity", func(t *testing.T) {
		_, err := content.ParseCatalog([]byte(`services: []`))
		assert.Error(t, err)
	})
}

func TestParseMessages(t *testing.T) {
	messages, err := content.ParseMessages([]byte(`
nav:
  home: Home
count: 3
list:
  - first
  - second
empty:
`))
	require.NoError(t, err)
	assert.Equal(t, "Home", messages["nav.home"])
	assert.Equal(t, "3", messages["count"])
	assert.Equal(t, "second", messages["list.1"])
	assert.Equal(t, "", messages["empty"])
}

func TestLoadBundles(t *testing.T) {
	bundles, err := content.LoadBundles()
	require.NoError(t, err)
	require.Len(t, bundles, 2)

	en, zh := bundles[0], bundles[1]
	assert.Equal(t, domain.LocaleEN, en.Locale)
	assert.Equal(t, domain.LocaleZH, zh.Locale)
	assert.Equal(t, language.MustParse("en-CA"), en.Tag)
	assert.Equal(t, "zh_CN", zh.OGLocale)

	assert.Equal(t, en.Len(), zh.Len())
	assert.Empty(t, content.MissingKeys(zh, en))
	assert.Equal(t, "Immigration Law", en.T("services.immigration.title"))
	assert.Equal(t, "移民法", zh.T("services.immigration.title"))
}

func TestMissingKeys(t *testing.T) {
	ref := domain.NewBundle(domain.LocaleEN, language.English, "en_CA", map[string]string{"a": "1", "b": "2"})
	other := domain.NewBundle(domain.LocaleZH, language.Chinese, "zh_CN", map[string]string{"a": "一"})
	assert.Equal(t, []string{"zh:b"}, content.MissingKeys(ref, other))
}
