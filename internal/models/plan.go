package models

// SubscriptionPlan описывает тарифный план. Справочные данные, создаются при старте.
type SubscriptionPlan struct {
	ID        int      `json:"id"`
	Name      string   `json:"name"`
	Price     int      `json:"price"`
	Interval  string   `json:"interval"`
	Features  []string `json:"features"`
	IsPopular bool     `json:"isPopular"`
	IsBest    bool     `json:"isBest"`
}
