package search

import "bookscout/models"

// demoCatalog is served when every live source comes back empty, whether the
// sites were all down or genuinely had nothing. The entries link nowhere.
var demoCatalog = []models.Book{
	{
		Title:       "Война и мир",
		Author:      "Лев Толстой",
		Description: "Роман-эпопея, описывающий русское общество в эпоху наполеоновских войн.",
		Sources:     []models.BookSource{{Name: "demo", Link: "#"}},
	},
	{
		Title:       "Преступление и наказание",
		Author:      "Фёдор Достоевский",
		Description: "Психологический роман о преступлении и его последствиях.",
		Sources:     []models.BookSource{{Name: "demo", Link: "#"}},
	},
	{
		Title:       "Мастер и Маргарита",
		Author:      "Михаил Булгаков",
		Description: "Философский роман о добре и зле, любви и предательстве.",
		Sources:     []models.BookSource{{Name: "demo", Link: "#"}},
	},
	{
		Title:       "Отцы и дети",
		Author:      "Иван Тургенев",
		Description: "Роман о конфликте поколений и идейных разногласиях в русском обществе XIX века.",
		Sources:     []models.BookSource{{Name: "demo", Link: "#"}},
	},
	{
		Title:       "Мёртвые души",
		Author:      "Николай Гоголь",
		Description: "Поэма в прозе, сатирически изображающая помещичью Россию.",
		Sources:     []models.BookSource{{Name: "demo", Link: "#"}},
	},
	{
		Title:       "Герой нашего времени",
		Author:      "Михаил Лермонтов",
		Description: "Первый психологический роман в русской литературе.",
		Sources:     []models.BookSource{{Name: "demo", Link: "#"}},
	},
	{
		Title:       "Анна Каренина",
		Author:      "Лев Толстой",
		Description: "Трагическая история любви замужней женщины.",
		Sources:     []models.BookSource{{Name: "demo", Link: "#"}},
	},
	{
		Title:       "Евгений Онегин",
		Author:      "Александр Пушкин",
		Description: "Роман в стихах, энциклопедия русской жизни.",
		Sources:     []models.BookSource{{Name: "demo", Link: "#"}},
	},
	{
		Title:       "Тихий Дон",
		Author:      "Михаил Шолохов",
		Description: "Роман-эпопея о донском казачестве во время Первой мировой и Гражданской войн.",
		Sources:     []models.BookSource{{Name: "demo", Link: "#"}},
	},
	{
		Title:       "Собачье сердце",
		Author:      "Михаил Булгаков",
		Description: "Сатирическая повесть об опасных социальных экспериментах.",
		Sources:     []models.BookSource{{Name: "demo", Link: "#"}},
	},
	{
		Title:       "Горе от ума",
		Author:      "Александр Грибоедов",
		Description: "Классическая комедия в стихах, высмеивающая нравы московского дворянства.",
		Sources:     []models.BookSource{{Name: "demo", Link: "#"}},
	},
	{
		Title:       "Доктор Живаго",
		Author:      "Борис Пастернак",
		Description: "Роман о жизни русской интеллигенции на фоне драматических событий начала XX века.",
		Sources:     []models.BookSource{{Name: "demo", Link: "#"}},
	},
}

// fallbackBooks returns a copy of the demo catalog so callers cannot mutate
// the shared entries.
func fallbackBooks() []models.Book {
	cloned := make([]models.Book, len(demoCatalog))
	copy(cloned, demoCatalog)
	return cloned
}
