package cqrs

// ListShopsQuery fetches every shop in insertion order.
type ListShopsQuery struct{}

// GetShopByNameQuery fetches the first shop whose name equals Name exactly.
type GetShopByNameQuery struct {
	Name string
}

// GetShopByEmployeesQuery fetches the first shop with the given head count.
// A nil NumberOfEmployees never matches.
type GetShopByEmployeesQuery struct {
	NumberOfEmployees *int
}

// GetShopByAddressAndEmployeesQuery fetches the first shop matching both the
// address and the head count.
type GetShopByAddressAndEmployeesQuery struct {
	ShopAddress       string
	NumberOfEmployees *int
}
