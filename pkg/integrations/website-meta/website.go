package websitemeta

import (
	"encoding/json"

	"github.com/gocolly/colly/v2"
	"go.openly.dev/pointy"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"droscher.com/AuthenticEats/pkg/model"
)

const IntegrationName = "website_meta"

type WebsiteMetaIntegration struct {
	logger *zap.Logger
}

func NewWebsiteMetaIntegration(logger *zap.Logger) *WebsiteMetaIntegration {
	return &WebsiteMetaIntegration{logger: logger}
}

// RestaurantJSON is the schema.org Restaurant blob many restaurant sites
// embed in a ld+json script tag.
type RestaurantJSON struct {
	Name      string `json:"name"`
	Telephone string `json:"telephone"`
	Image     string `json:"image"`
}

// Enrich backfills photos and a phone number from the restaurant's own
// website when the place source returned neither. Only gaps are filled;
// nothing sourced from the place lookup is overwritten.
func (w *WebsiteMetaIntegration) Enrich(restaurant *model.Restaurant) error {
	if restaurant.Website == nil {
		return nil
	}

	var (
		errs     error
		ogImage  string
		metadata RestaurantJSON
	)

	collector := colly.NewCollector(
		colly.UserAgent("Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:15.0) Gecko/20100101 Firefox/15.0.1"),
	)

	collector.OnHTML("head meta[property='og:image']", func(element *colly.HTMLElement) {
		ogImage = element.Attr("content")
	})

	collector.OnHTML("head script[type='application/ld+json']", func(element *colly.HTMLElement) {
		_ = json.Unmarshal([]byte(element.Text), &metadata)
	})

	collector.OnError(func(response *colly.Response, err error) {
		w.logger.Warn("error scraping restaurant website", zap.String("url", response.Request.URL.String()), zap.Error(err))
	})

	w.logger.Info("scraping restaurant website", zap.String("restaurant", restaurant.Name), zap.String("url", *restaurant.Website))
	multierr.AppendInto(&errs, collector.Visit(*restaurant.Website))

	if len(restaurant.Photos) == 0 {
		if len(metadata.Image) > 0 {
			restaurant.Photos = []string{metadata.Image}
		} else if len(ogImage) > 0 {
			restaurant.Photos = []string{ogImage}
		}
	}

	if restaurant.PhoneNumber == nil && len(metadata.Telephone) > 0 {
		restaurant.PhoneNumber = pointy.String(metadata.Telephone)
	}

	return errs
}
