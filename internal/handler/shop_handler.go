package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/restexample/shop-service/internal/cqrs"
	"github.com/restexample/shop-service/internal/middleware"
	"github.com/restexample/shop-service/internal/models"
	"github.com/restexample/shop-service/internal/repository"
	"github.com/restexample/shop-service/internal/validation"
)

const (
	msgNoShopWithName     = "No shop found with this name!"
	msgNoShopWithID       = "No shop found with this id!"
	msgNoShopWithCriteria = "No shop found with these criteria!"
)

// ShopCommander defines the write-side operations used by ShopHandler.
type ShopCommander interface {
	CreateShop(context.Context, cqrs.CreateShopCommand) (*models.Shop, error)
	UpdateShopName(context.Context, cqrs.UpdateShopNameCommand) (*models.Shop, error)
	UpdateShop(context.Context, cqrs.UpdateShopCommand) (*models.Shop, error)
	DeleteShop(context.Context, cqrs.DeleteShopCommand) (*models.Shop, error)
}

// ShopQuerier defines the read-side operations used by ShopHandler.
type ShopQuerier interface {
	ListShops(context.Context, cqrs.ListShopsQuery) ([]models.Shop, error)
	GetShopByName(context.Context, cqrs.GetShopByNameQuery) (*models.Shop, error)
	GetShopByEmployees(context.Context, cqrs.GetShopByEmployeesQuery) (*models.Shop, error)
	GetShopByAddressAndEmployees(context.Context, cqrs.GetShopByAddressAndEmployeesQuery) (*models.Shop, error)
}

// ShopHandler routes requests to the command or query service as appropriate.
type ShopHandler struct {
	commands ShopCommander
	queries  ShopQuerier
}

func NewShopHandler(commands ShopCommander, queries ShopQuerier) *ShopHandler {
	return &ShopHandler{commands: commands, queries: queries}
}

// CreateShop validates the body and appends it. Ids are caller supplied and
// not checked for uniqueness.
func (h *ShopHandler) CreateShop(c *gin.Context) {
	var req models.Shop
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.RespondWithError(c, http.StatusBadRequest, "Invalid request body")
		return
	}
	var verr *validation.Error
	if err := validation.ValidateShop(req); errors.As(err, &verr) {
		middleware.RespondWithValidationError(c, verr.Details)
		return
	}

	shop, err := h.commands.CreateShop(c.Request.Context(), cqrs.CreateShopCommand{Shop: req})
	if err != nil {
		middleware.RespondWithInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, shop)
}

func (h *ShopHandler) ListShops(c *gin.Context) {
	shops, err := h.queries.ListShops(c.Request.Context(), cqrs.ListShopsQuery{})
	if err != nil {
		middleware.RespondWithInternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, shops)
}

func (h *ShopHandler) GetShopByName(c *gin.Context) {
	shop, err := h.queries.GetShopByName(c.Request.Context(), cqrs.GetShopByNameQuery{Name: c.Param("name")})
	if err != nil {
		respondWithFailure(c, err, msgNoShopWithName)
		return
	}
	c.JSON(http.StatusOK, shop)
}

// GetShopByEmployeesQuery reads numberOfEmployees from the query string.
func (h *ShopHandler) GetShopByEmployeesQuery(c *gin.Context) {
	raw, _ := c.GetQuery("numberOfEmployees")
	h.getShopByEmployees(c, raw)
}

// GetShopByEmployeesRoute reads numberOfEmployees from the path.
func (h *ShopHandler) GetShopByEmployeesRoute(c *gin.Context) {
	h.getShopByEmployees(c, c.Param("numberOfEmployees"))
}

func (h *ShopHandler) getShopByEmployees(c *gin.Context, raw string) {
	count, ok := optionalInt(c, "numberOfEmployees", raw)
	if !ok {
		return
	}

	shop, err := h.queries.GetShopByEmployees(c.Request.Context(), cqrs.GetShopByEmployeesQuery{NumberOfEmployees: count})
	if err != nil {
		respondWithFailure(c, err, msgNoShopWithCriteria)
		return
	}
	c.JSON(http.StatusOK, shop)
}

func (h *ShopHandler) GetShopByAddressAndEmployees(c *gin.Context) {
	raw, _ := c.GetQuery("numberOfEmployees")
	count, ok := optionalInt(c, "numberOfEmployees", raw)
	if !ok {
		return
	}

	shop, err := h.queries.GetShopByAddressAndEmployees(c.Request.Context(), cqrs.GetShopByAddressAndEmployeesQuery{
		ShopAddress:       c.Param("shopAddress"),
		NumberOfEmployees: count,
	})
	if err != nil {
		respondWithFailure(c, err, msgNoShopWithCriteria)
		return
	}
	c.JSON(http.StatusOK, shop)
}

func (h *ShopHandler) UpdateShopName(c *gin.Context) {
	shop, err := h.commands.UpdateShopName(c.Request.Context(), cqrs.UpdateShopNameCommand{
		ShopID: c.Param("id"),
		Name:   c.Query("name"),
	})
	if err != nil {
		respondWithFailure(c, err, msgNoShopWithID)
		return
	}
	middleware.RespondWithText(c, http.StatusOK, updatedMessage(shop))
}

// UpdateShop overwrites name and head count. A missing numberOfEmployees
// binds as 0.
func (h *ShopHandler) UpdateShop(c *gin.Context) {
	count, ok := optionalInt(c, "numberOfEmployees", c.Query("numberOfEmployees"))
	if !ok {
		return
	}
	cmd := cqrs.UpdateShopCommand{
		ShopID: c.Param("id"),
		Name:   c.Query("name"),
	}
	if count != nil {
		cmd.NumberOfEmployees = *count
	}

	shop, err := h.commands.UpdateShop(c.Request.Context(), cmd)
	if err != nil {
		respondWithFailure(c, err, msgNoShopWithID)
		return
	}
	middleware.RespondWithText(c, http.StatusOK, updatedMessage(shop))
}

func (h *ShopHandler) DeleteShop(c *gin.Context) {
	shop, err := h.commands.DeleteShop(c.Request.Context(), cqrs.DeleteShopCommand{ShopID: c.Param("id")})
	if err != nil {
		respondWithFailure(c, err, msgNoShopWithID)
		return
	}
	middleware.RespondWithText(c, http.StatusOK, fmt.Sprintf("Market with this ID '%s' has been deleted!", shop.ID))
}

func (h *ShopHandler) Health(c *gin.Context) {
	shops, err := h.queries.ListShops(c.Request.Context(), cqrs.ListShopsQuery{})
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "service": "shop-service"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "shop-service", "shops": len(shops)})
}

func updatedMessage(shop *models.Shop) string {
	return fmt.Sprintf("Shop updated: Id = %s Name = %s", shop.ID, shop.ShopName)
}

// respondWithFailure maps a service error onto the 400/404/500 responses.
func respondWithFailure(c *gin.Context, err error, notFoundMessage string) {
	var verr *validation.Error
	switch {
	case errors.As(err, &verr):
		middleware.RespondWithValidationError(c, verr.Details)
	case errors.Is(err, repository.ErrShopNotFound):
		middleware.RespondWithText(c, http.StatusNotFound, notFoundMessage)
	default:
		middleware.RespondWithInternalError(c, err)
	}
}

// optionalInt parses an optional integer parameter. An empty raw value is
// absent. On a malformed value it writes the 400 response and reports false.
func optionalInt(c *gin.Context, field, raw string) (*int, bool) {
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		middleware.RespondWithValidationError(c, []validation.ValidationError{{
			Field:   field,
			Message: fmt.Sprintf("The value '%s' is not valid.", raw),
			Type:    "int",
		}})
		return nil, false
	}
	return &n, true
}
