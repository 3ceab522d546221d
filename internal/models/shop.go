package models

// SMEEmployeeLimit is the head count a business must stay below to count as a
// small/medium enterprise.
const SMEEmployeeLimit = 250

type Shop struct {
	ID                string `json:"id"`
	ShopName          string `json:"shopName"`
	ShopAddress       string `json:"shopAddress"`
	NumberOfEmployees int    `json:"numberOfEmployees"`
}

// SeedShops returns the fixed set of shops every fresh process starts with.
func SeedShops() []Shop {
	return []Shop{
		{ID: "1", ShopName: "Kardesler Bakkal", ShopAddress: "Izmir/Buca", NumberOfEmployees: 3},
		{ID: "2", ShopName: "Meydan Tekel", ShopAddress: "Izmir/Buca", NumberOfEmployees: 2},
		{ID: "3", ShopName: "Ucarlar Market", ShopAddress: "Izmir/Karsiyaka", NumberOfEmployees: 4},
		{ID: "4", ShopName: "Tuylu Petshop", ShopAddress: "Afyonkarahisar/Bolvadin", NumberOfEmployees: 3},
	}
}
