package catalog

import "github.com/samirrijal/flyworld/internal/core/domain"

const (
	iconStandard = "airplane-normal.png"
	iconPremium  = "airplane.png"
)

var airlines = []domain.Airline{
	{
		Key: "low-cost",
		Labels: map[string]string{
			"en": "Low-cost", "es": "Bajo costo", "fr": "Faible coût", "it": "Basso costo",
			"de": "Niedrige Kosten", "ja": "低コスト", "ch": "低成本", "ar": "تكلفة منخفضة",
		},
		PriceMultiplier: 0.8,
		SpeedKmh:        850,
		MarkerIcon:      iconStandard,
	},
	{
		Key: "standard",
		Labels: map[string]string{
			"en": "Standard", "es": "Estándar", "fr": "Standard", "it": "Standard",
			"de": "Standard", "ja": "標準", "ch": "标准", "ar": "معيار",
		},
		PriceMultiplier: 1,
		SpeedKmh:        900,
		MarkerIcon:      iconStandard,
	},
	{
		Key: "premium",
		Labels: map[string]string{
			"en": "Premium", "es": "Premium", "fr": "Premium", "it": "Premium",
			"de": "Prämie", "ja": "プレミアム", "ch": "优质的", "ar": "غالي",
		},
		PriceMultiplier: 1.3,
		SpeedKmh:        950,
		MarkerIcon:      iconPremium,
	},
}
