package events

import "time"

// Event types
const (
	ShopCreated = "shop.created"
	ShopRenamed = "shop.renamed"
	ShopUpdated = "shop.updated"
	ShopDeleted = "shop.deleted"
)

// DefaultStream is the stream shop events go to unless configured otherwise.
const DefaultStream = "shop.events"

// Base event structure
type Event struct {
	Type      string    `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Data      any       `json:"data"`
}

type ShopCreatedEvent struct {
	ShopID            string `json:"shopId"`
	ShopName          string `json:"shopName"`
	ShopAddress       string `json:"shopAddress"`
	NumberOfEmployees int    `json:"numberOfEmployees"`
}

type ShopRenamedEvent struct {
	ShopID   string `json:"shopId"`
	ShopName string `json:"shopName"`
}

type ShopUpdatedEvent struct {
	ShopID            string `json:"shopId"`
	ShopName          string `json:"shopName"`
	NumberOfEmployees int    `json:"numberOfEmployees"`
}

type ShopDeletedEvent struct {
	ShopID string `json:"shopId"`
}
