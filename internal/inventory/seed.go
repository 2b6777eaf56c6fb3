package inventory

import "github.com/shopspring/decimal"

// ProductSampleImage is the asset reference used by the first seed product.
const ProductSampleImage = "assets/product-sample.jpg"

func seedProducts() []Product {
	return []Product{
		{
			ID:           "1",
			Name:         "Premium Oats Cereal",
			Weight:       decimal.RequireFromString("2.45"),
			Quantity:     24,
			MinStock:     10,
			Category:     "Food",
			LastDetected: "2 min ago",
			Image:        ProductSampleImage,
		},
		{
			ID:           "2",
			Name:         "Organic Granola Mix",
			Weight:       decimal.RequireFromString("1.82"),
			Quantity:     8,
			MinStock:     15,
			Category:     "Food",
			LastDetected: "5 min ago",
		},
		{
			ID:           "3",
			Name:         "Protein Powder",
			Weight:       decimal.RequireFromString("3.21"),
			Quantity:     18,
			MinStock:     5,
			Category:     "Supplements",
			LastDetected: "12 min ago",
		},
		{
			ID:           "4",
			Name:         "Coffee Beans",
			Weight:       decimal.RequireFromString("1.95"),
			Quantity:     3,
			MinStock:     8,
			Category:     "Beverages",
			LastDetected: "18 min ago",
		},
		{
			ID:           "5",
			Name:         "Energy Bars Box",
			Weight:       decimal.RequireFromString("2.10"),
			Quantity:     15,
			MinStock:     10,
			Category:     "Snacks",
			LastDetected: "25 min ago",
		},
		{
			ID:           "6",
			Name:         "Pasta Package",
			Weight:       decimal.RequireFromString("1.68"),
			Quantity:     22,
			MinStock:     12,
			Category:     "Food",
			LastDetected: "32 min ago",
		},
	}
}

func seedStats() []StatEntry {
	return []StatEntry{
		{
			Title:       "Total Products",
			Value:       "247",
			Change:      "+12%",
			Direction:   ChangePositive,
			Icon:        IconPackage,
			Description: "Tracked items",
		},
		{
			Title:       "Total Weight",
			Value:       "1,847 kg",
			Change:      "+5.2%",
			Direction:   ChangePositive,
			Icon:        IconScale,
			Description: "Current inventory",
		},
		{
			Title:       "Low Stock Items",
			Value:       "8",
			Change:      "-2",
			Direction:   ChangeNegative,
			Icon:        IconAlert,
			Description: "Require restocking",
		},
		{
			Title:       "Recognition Accuracy",
			Value:       "98.7%",
			Change:      "+0.3%",
			Direction:   ChangePositive,
			Icon:        IconTrend,
			Description: "AI identification",
		},
	}
}
