package cqrs

import "github.com/restexample/shop-service/internal/models"

type CreateShopCommand struct {
	Shop models.Shop
}

// UpdateShopNameCommand renames the first shop carrying ShopID.
type UpdateShopNameCommand struct {
	ShopID string
	Name   string
}

// UpdateShopCommand overwrites name and head count of the first shop carrying ShopID.
type UpdateShopCommand struct {
	ShopID            string
	Name              string
	NumberOfEmployees int
}

type DeleteShopCommand struct {
	ShopID string
}
