package repository_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"gorm.io/gorm"

	"droscher.com/AuthenticEats/pkg/model"
	"droscher.com/AuthenticEats/pkg/repository"
)

type RestaurantTestSuite struct {
	RepositorySuite
}

func TestRestaurantTestSuite(t *testing.T) {
	suite.Run(t, new(RestaurantTestSuite))
}

func (suite *RestaurantTestSuite) TestAddRestaurant_InsertsRestaurant() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "restaurants" (.+) ON CONFLICT \("place_id"\) DO NOTHING RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uint(1)))
	suite.mock.ExpectCommit()

	restaurant := model.Restaurant{
		UUID:      uuid.New(),
		PlaceID:   "ChIJtest123",
		Name:      "Lanzhou Noodle House",
		Address:   "12 Spice Alley",
		Latitude:  37.776,
		Longitude: -122.416,
	}

	result, err := suite.repository.AddRestaurant(context.Background(), restaurant)
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Equal(uint(1), result.ID)
}

func (suite *RestaurantTestSuite) TestAddRestaurant_ReturnsStoredRowWhenPlaceAlreadyCached() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectQuery(`^INSERT INTO "restaurants" (.+) ON CONFLICT \("place_id"\) DO NOTHING RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	suite.mock.ExpectCommit()
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "restaurants" WHERE place_id \= \$1 (.+)`).
		WithArgs("ChIJtest123", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "place_id", "name"}).AddRow(uint(7), "ChIJtest123", "Lanzhou Noodle House"))
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "restaurant_cuisines" (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"restaurant_id", "cuisine_id"}))

	restaurant := model.Restaurant{UUID: uuid.New(), PlaceID: "ChIJtest123", Name: "Lanzhou Noodle House"}

	result, err := suite.repository.AddRestaurant(context.Background(), restaurant)
	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Equal(uint(7), result.ID)
}

func (suite *RestaurantTestSuite) TestFindRestaurantByUUID_FindsRestaurant() {
	id := uuid.New()

	suite.mock.ExpectQuery(`^SELECT (.+) FROM "restaurants" WHERE uuid \= \$1 (.+)`).
		WithArgs(id, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "uuid", "name", "authenticity_rating", "authenticity_votes"}).
			AddRow(uint(3), id, "Taqueria El Farolito", 4.5, int64(12)))
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "restaurant_cuisines" (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"restaurant_id", "cuisine_id"}))

	restaurant, err := suite.repository.FindRestaurantByUUID(context.Background(), id)
	suite.Require().NoError(err)
	suite.NotNil(restaurant)
	suite.Equal("Taqueria El Farolito", restaurant.Name)
	suite.InDelta(4.5, restaurant.AuthenticityRating, 0.001)
	suite.Equal(int64(12), restaurant.AuthenticityVotes)
}

func (suite *RestaurantTestSuite) TestFindRestaurantByUUID_ReturnsErrorWhenNoRecords() {
	suite.mock.ExpectQuery("^SELECT (.+)").WillReturnError(gorm.ErrRecordNotFound)

	restaurant, err := suite.repository.FindRestaurantByUUID(context.Background(), uuid.New())
	suite.Require().ErrorIs(err, repository.ErrRestaurantNotFound)
	suite.Nil(restaurant)
}

func (suite *RestaurantTestSuite) TestFindRestaurantByPlaceID_ReturnsErrorWhenNoRecords() {
	suite.mock.ExpectQuery("^SELECT (.+)").WillReturnError(gorm.ErrRecordNotFound)

	restaurant, err := suite.repository.FindRestaurantByPlaceID(context.Background(), "ChIJunknown")
	suite.Require().ErrorIs(err, repository.ErrRestaurantNotFound)
	suite.Nil(restaurant)
}

func (suite *RestaurantTestSuite) TestGetCuisinesByNames_MapsByName() {
	suite.mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "cuisines" WHERE name in ($1,$2) AND "cuisines"."deleted_at" IS NULL`)).
		WithArgs("Sichuan", "Oaxacan").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(uint(1), "Sichuan").AddRow(uint(2), "Oaxacan"))

	cuisines, err := suite.repository.GetCuisinesByNames(context.Background(), []string{"Sichuan", "Oaxacan"})
	suite.Require().NoError(err)
	suite.Len(cuisines, 2)
	suite.Equal(uint(1), cuisines["Sichuan"].ID)
	suite.Equal(uint(2), cuisines["Oaxacan"].ID)
}

func (suite *RestaurantTestSuite) TestSearchRestaurants_FiltersByProximity() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "restaurants" WHERE earth_distance(.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow(uint(1), "Shan Dong").AddRow(uint(2), "House of Pancakes"))
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "restaurant_cuisines" (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"restaurant_id", "cuisine_id"}))

	restaurants, err := suite.repository.SearchRestaurants(context.Background(), repository.RestaurantFilter{
		Latitude:     pointy.Float64(37.8),
		Longitude:    pointy.Float64(-122.27),
		RadiusMeters: 2000,
		Limit:        20,
	})
	suite.Require().NoError(err)
	suite.Len(restaurants, 2)
	suite.Equal("Shan Dong", restaurants[0].Name)
	suite.Equal("House of Pancakes", restaurants[1].Name)
}

func (suite *RestaurantTestSuite) TestSearchRestaurants_FiltersByCuisine() {
	suite.mock.ExpectQuery(`^SELECT (.+) JOIN restaurant_cuisines rc (.+) JOIN cuisines (.+) WHERE cuisines\.name \= \$1 (.+)`).
		WithArgs("Burmese", 20).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(uint(5), "Mandalay"))
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "restaurant_cuisines" (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"restaurant_id", "cuisine_id"}))

	restaurants, err := suite.repository.SearchRestaurants(context.Background(), repository.RestaurantFilter{
		Cuisine: "Burmese",
		Limit:   20,
	})
	suite.Require().NoError(err)
	suite.Len(restaurants, 1)
	suite.Equal("Mandalay", restaurants[0].Name)
}

func (suite *RestaurantTestSuite) TestListRestaurantsByAuthenticity_OrdersByRating() {
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "restaurants" (.+) ORDER BY authenticity_rating desc(.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "authenticity_rating"}).
			AddRow(uint(1), "Z & Y", 4.8).AddRow(uint(2), "Good Luck Dim Sum", 4.2))
	suite.mock.ExpectQuery(`^SELECT (.+) FROM "restaurant_cuisines" (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"restaurant_id", "cuisine_id"}))

	restaurants, err := suite.repository.ListRestaurantsByAuthenticity(context.Background(), 10)
	suite.Require().NoError(err)
	suite.Len(restaurants, 2)
	suite.Equal("Z & Y", restaurants[0].Name)
}

func (suite *RestaurantTestSuite) TestUpdateExternalFields_ReturnsErrorWhenNoRows() {
	suite.mock.ExpectBegin()
	suite.mock.ExpectExec(`^UPDATE "restaurants" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	suite.mock.ExpectCommit()

	err := suite.repository.UpdateExternalFields(context.Background(), 99, model.PlaceSummary{Rating: pointy.Float64(4.1)})
	suite.Require().ErrorIs(err, repository.ErrRestaurantNotFound)
}

func (suite *RestaurantTestSuite) TestUpdateRestaurantDetails_ReturnsErrorWhenNoRecords() {
	suite.mock.ExpectQuery("^SELECT (.+)").WillReturnError(gorm.ErrRecordNotFound)

	restaurant, err := suite.repository.UpdateRestaurantDetails(context.Background(), uuid.New(), pointy.String("New Name"), nil)
	suite.Require().ErrorIs(err, repository.ErrRestaurantNotFound)
	suite.Nil(restaurant)
}
