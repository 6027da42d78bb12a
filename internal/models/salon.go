package models

const (
	// AllCities — значение фильтра города, означающее отсутствие фильтра.
	AllCities = "Всі міста"
	// AllStyles — значение фильтра стиля, означающее отсутствие фильтра.
	AllStyles = "Всі стилі"
)

// TattooSalon описывает тату-салон.
type TattooSalon struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	Rating      string   `json:"rating"` // одна цифра после точки, 0.0–5.0
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Styles      []string `json:"styles"`
}

// SalonFilter задаёт критерии поиска салонов. Пустые поля не фильтруют.
type SalonFilter struct {
	City   string
	Style  string
	Search string
}
