package models

// SeedRestaurantInfo returns the default profile written on first access,
// before the owner completes registration.
func SeedRestaurantInfo() RestaurantInfo {
	return RestaurantInfo{
		Name:         "Sabor de Angola",
		Phone:        "+244 923 456 789",
		Address:      "Talatona, Luanda",
		WifiName:     "Sabor_Cliente",
		WifiPassword: "bomapetite2024",
	}
}

// SeedMenu returns the demo catalog written on first access. It doubles as
// the example menu shown to owners before they add their own dishes.
func SeedMenu() []MenuItem {
	return []MenuItem{
		{
			ID:          "1",
			Name:        "Mufete Tradicional",
			Description: "Peixe carapau grelhado na brasa, acompanhado de feijão de óleo de palma, mandioca, batata doce e banana pão.",
			Price:       8500,
			Category:    CategoryMains,
			Available:   true,
			PrepTime:    25,
			ImageURL:    "https://picsum.photos/id/431/600/400",
		},
		{
			ID:          "2",
			Name:        "Calulu de Peixe",
			Description: "Tradicional calulu com peixe seco e fresco, quiabos e folhas de batata doce. Acompanha funge.",
			Price:       9000,
			Category:    CategoryMains,
			Available:   true,
			PrepTime:    30,
			ImageURL:    "https://picsum.photos/id/292/600/400",
		},
		{
			ID:          "3",
			Name:        "Kizaca",
			Description: "Folhas de mandioca pisadas, cozinhadas com amendoim e óleo de palma.",
			Price:       4500,
			Category:    CategoryStarters,
			Available:   true,
			Vegetarian:  true,
			ImageURL:    "https://picsum.photos/id/1080/600/400",
		},
		{
			ID:          "4",
			Name:        "Sumo de Múcua",
			Description: "Sumo natural feito da fruta do imbondeiro. Rico em vitamina C.",
			Price:       1500,
			Category:    CategoryDrinks,
			Available:   true,
			ImageURL:    "https://picsum.photos/id/430/600/400",
		},
		{
			ID:          "5",
			Name:        "Mousse de Maracujá",
			Description: "Sobremesa cremosa e refrescante feita com polpa de maracujá fresco.",
			Price:       2500,
			Category:    CategoryDesserts,
			Available:   true,
			ImageURL:    "https://picsum.photos/id/1060/600/400",
		},
		{
			ID:          "6",
			Name:        "Cuca Preta",
			Description: "Cerveja nacional bem gelada.",
			Price:       1000,
			Category:    CategoryDrinks,
			Available:   true,
			ImageURL:    "https://picsum.photos/id/766/600/400",
		},
	}
}
