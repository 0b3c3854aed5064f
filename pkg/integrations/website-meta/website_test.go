package websitemeta_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.openly.dev/pointy"
	"go.uber.org/zap/zaptest"

	. "droscher.com/AuthenticEats/pkg/integrations/website-meta"
	"droscher.com/AuthenticEats/pkg/model"
)

const restaurantPage = `<!DOCTYPE html>
<html>
<head>
	<meta property="og:image" content="https://cdn.example.com/og-hero.jpg"/>
	<script type="application/ld+json">
	{
		"@context": "https://schema.org",
		"@type": "Restaurant",
		"name": "House of Pancakes",
		"telephone": "+1 415-555-0134",
		"image": "https://cdn.example.com/storefront.jpg"
	}
	</script>
</head>
<body><h1>House of Pancakes</h1></body>
</html>`

const bareBonesPage = `<!DOCTYPE html>
<html>
<head>
	<meta property="og:image" content="https://cdn.example.com/og-only.jpg"/>
</head>
<body></body>
</html>`

func serve(t *testing.T, page string) string {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.Header().Set("Content-Type", "text/html")
		_, _ = writer.Write([]byte(page))
	}))
	t.Cleanup(server.Close)

	return server.URL
}

func TestEnrich_FillsPhoneAndPhotoFromStructuredData(t *testing.T) {
	url := serve(t, restaurantPage)
	restaurant := &model.Restaurant{Name: "House of Pancakes", Website: &url}

	integration := NewWebsiteMetaIntegration(zaptest.NewLogger(t))
	err := integration.Enrich(restaurant)
	require.NoError(t, err)

	assert.Equal(t, []string{"https://cdn.example.com/storefront.jpg"}, restaurant.Photos)
	require.NotNil(t, restaurant.PhoneNumber)
	assert.Equal(t, "+1 415-555-0134", *restaurant.PhoneNumber)
}

func TestEnrich_FallsBackToOpenGraphImage(t *testing.T) {
	url := serve(t, bareBonesPage)
	restaurant := &model.Restaurant{Name: "Og Only", Website: &url}

	integration := NewWebsiteMetaIntegration(zaptest.NewLogger(t))
	err := integration.Enrich(restaurant)
	require.NoError(t, err)

	assert.Equal(t, []string{"https://cdn.example.com/og-only.jpg"}, restaurant.Photos)
	assert.Nil(t, restaurant.PhoneNumber)
}

func TestEnrich_NeverOverwritesLookupData(t *testing.T) {
	url := serve(t, restaurantPage)
	restaurant := &model.Restaurant{
		Name:        "House of Pancakes",
		Website:     &url,
		Photos:      []string{"lookup-reference"},
		PhoneNumber: pointy.String("(415) 555-0000"),
	}

	integration := NewWebsiteMetaIntegration(zaptest.NewLogger(t))
	err := integration.Enrich(restaurant)
	require.NoError(t, err)

	assert.Equal(t, []string{"lookup-reference"}, restaurant.Photos)
	assert.Equal(t, "(415) 555-0000", *restaurant.PhoneNumber)
}

func TestEnrich_SkipsRestaurantsWithoutWebsite(t *testing.T) {
	restaurant := &model.Restaurant{Name: "No Site"}

	integration := NewWebsiteMetaIntegration(zaptest.NewLogger(t))
	err := integration.Enrich(restaurant)
	require.NoError(t, err)

	assert.Empty(t, restaurant.Photos)
}
