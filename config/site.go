package config

// Site - презентационная конфигурация витрины: имя сайта, пункты меню,
// контакты и привязка верхних категорий меню к slug'ам категорий в БД.
// Загружается один раз и передаётся контроллеру главной страницы,
// глобальных переменных модуля нет.
type Site struct {
	Name          string        `json:"site_name"`
	Menu          []MenuEntry   `json:"menu"`
	Contacts      []ContactLink `json:"contacts"`
	TopCategories []TopCategory `json:"-"`
}

type MenuEntry struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type ContactLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// TopCategory - подпись в меню и slug категории, по которому она
// резолвится в БД; отсутствующие категории в меню не попадают
type TopCategory struct {
	Label string
	Slug  string
}

func LoadSite() *Site {
	return &Site{
		Name: "BrandStack",
		Menu: []MenuEntry{
			{Title: "Главная", URL: "/"},
			{Title: "Каталог товаров", URL: "/catalog"},
			{Title: "Акции и скидки", URL: "/promotions"},
			{Title: "Контакты", URL: "/contacts"},
			{Title: "О сайте", URL: "/about"},
		},
		Contacts: []ContactLink{
			{Name: "Telegram", URL: "https://t.me/brandstack"},
			{Name: "VK", URL: "https://vk.com/brandstack"},
			{Name: "Email", URL: "mailto:support@brandstack.example"},
		},
		TopCategories: []TopCategory{
			{Label: "Женщинам", Slug: "zhenskaya-odezhda"},
			{Label: "Мужчинам", Slug: "muzhskaya-odezhda"},
			{Label: "Детям", Slug: "detskaya-odezhda"},
		},
	}
}
