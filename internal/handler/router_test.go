package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/restexample/shop-service/internal/command"
	"github.com/restexample/shop-service/internal/events"
	"github.com/restexample/shop-service/internal/models"
	"github.com/restexample/shop-service/internal/query"
	"github.com/restexample/shop-service/internal/repository"
	"github.com/restexample/shop-service/internal/validation"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeededRouter(t *testing.T, opts ...command.Option) (*gin.Engine, *repository.ShopRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger, _ := test.NewNullLogger()
	repo := repository.NewShopRepository(models.SeedShops()...)
	h := NewShopHandler(
		command.NewShopCommandService(repo, events.NoopPublisher{}, logger, opts...),
		query.NewShopQueryService(repo),
	)
	return NewRouter(h, logger), repo
}

func decodeShop(t *testing.T, body []byte) models.Shop {
	t.Helper()
	var shop models.Shop
	require.NoError(t, json.Unmarshal(body, &shop))
	return shop
}

func TestRouter_CreateThenList(t *testing.T) {
	router, _ := newSeededRouter(t)
	payload := models.Shop{ID: "5", ShopName: "Yeni Kirtasiye", ShopAddress: "Ankara/Cankaya", NumberOfEmployees: 249}

	w := shopDoRequest(router, http.MethodPost, "/api/shops", payload)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, payload, decodeShop(t, w.Body.Bytes()))

	w = shopDoRequest(router, http.MethodGet, "/api/shops", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var shops []models.Shop
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &shops))
	require.Len(t, shops, 5)
	assert.Contains(t, shops, payload)
}

func TestRouter_CreateRejectedLeavesCollection(t *testing.T) {
	router, repo := newSeededRouter(t)
	w := shopDoRequest(router, http.MethodPost, "/api/shops", models.Shop{ID: "5", ShopName: "Big Factory Outlet", NumberOfEmployees: 250})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 4, repo.Count())
}

func TestRouter_JSONFieldNames(t *testing.T) {
	router, _ := newSeededRouter(t)
	w := shopDoRequest(router, http.MethodGet, "/api/shops/Tuylu%20Petshop", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"4","shopName":"Tuylu Petshop","shopAddress":"Afyonkarahisar/Bolvadin","numberOfEmployees":3}`, w.Body.String())
}

func TestRouter_GetByNameSeed(t *testing.T) {
	router, _ := newSeededRouter(t)
	w := shopDoRequest(router, http.MethodGet, "/api/shops/Kardesler%20Bakkal", nil)
	require.Equal(t, http.StatusOK, w.Code)

	shop := decodeShop(t, w.Body.Bytes())
	assert.Equal(t, "1", shop.ID)
	assert.Equal(t, "Izmir/Buca", shop.ShopAddress)
	assert.Equal(t, 3, shop.NumberOfEmployees)
}

func TestRouter_UpdateShopThenLookup(t *testing.T) {
	router, repo := newSeededRouter(t)

	w := shopDoRequest(router, http.MethodPut, "/api/shops/2?name=New%20Name&numberOfEmployees=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Id = 2 Name = New Name")
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain"))

	w = shopDoRequest(router, http.MethodGet, "/api/shops/New%20Name", nil)
	require.Equal(t, http.StatusOK, w.Code)
	shop := decodeShop(t, w.Body.Bytes())
	assert.Equal(t, "2", shop.ID)
	assert.Equal(t, 10, shop.NumberOfEmployees)
	assert.Equal(t, 4, repo.Count())
}

func TestRouter_UpdateNameSkipsRulesByDefault(t *testing.T) {
	router, _ := newSeededRouter(t)
	w := shopDoRequest(router, http.MethodPatch, "/api/shops/3?name=abc", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Shop updated: Id = 3 Name = abc", w.Body.String())
}

func TestRouter_UnknownIDsAreNotFound(t *testing.T) {
	router, repo := newSeededRouter(t)
	requests := []struct{ method, path string }{
		{http.MethodPatch, "/api/shops/99?name=Whatever%20Name"},
		{http.MethodPut, "/api/shops/99?name=Whatever%20Name&numberOfEmployees=1"},
		{http.MethodDelete, "/api/shops/99"},
	}
	for _, r := range requests {
		w := shopDoRequest(router, r.method, r.path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, r.method)
		assert.Equal(t, "No shop found with this id!", w.Body.String(), r.method)
	}
	assert.Equal(t, 4, repo.Count())
}

func TestRouter_DeleteTwice(t *testing.T) {
	router, repo := newSeededRouter(t)

	w := shopDoRequest(router, http.MethodDelete, "/api/shops/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Market with this ID '1' has been deleted!", w.Body.String())

	w = shopDoRequest(router, http.MethodDelete, "/api/shops/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, 3, repo.Count())
}

func TestRouter_RouteAndQuery(t *testing.T) {
	router, _ := newSeededRouter(t)

	w := shopDoRequest(router, http.MethodGet, "/api/shops/get-route-query/Izmir%2FBuca?numberOfEmployees=2", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "2", decodeShop(t, w.Body.Bytes()).ID)

	w = shopDoRequest(router, http.MethodGet, "/api/shops/get-route-query/Izmir%2FBuca", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No shop found with these criteria!", w.Body.String())
}

func TestRouter_EmployeeCountRoutes(t *testing.T) {
	router, _ := newSeededRouter(t)

	w := shopDoRequest(router, http.MethodGet, "/api/shops/get-query?numberOfEmployees=4", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "3", decodeShop(t, w.Body.Bytes()).ID)

	w = shopDoRequest(router, http.MethodGet, "/api/shops/get-route/3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", decodeShop(t, w.Body.Bytes()).ID)

	w = shopDoRequest(router, http.MethodGet, "/api/shops/get-query", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRouter_UpdateValidationEnabled(t *testing.T) {
	router, repo := newSeededRouter(t, command.WithUpdateValidation(validation.ValidateShop))

	w := shopDoRequest(router, http.MethodPatch, "/api/shops/1?name=abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Shop Name Invalid")

	w = shopDoRequest(router, http.MethodPut, "/api/shops/1?name=Kardesler%20Market&numberOfEmployees=250", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "This business not a SME")

	shop, err := repo.FindByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, "Kardesler Bakkal", shop.ShopName)
	assert.Equal(t, 3, shop.NumberOfEmployees)

	w = shopDoRequest(router, http.MethodPatch, "/api/shops/1?name=Kardesler%20Market", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
