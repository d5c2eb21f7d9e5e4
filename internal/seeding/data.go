package seeding

import (
	"time"

	"github.com/AFCVentura/Bookstore/internal/entities"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

var demoGenres = []string{"Romance", "Poesia", "Ficção Científica", "Biografia", "Fantasia"}

type demoBook struct {
	title string
	price float64
	genre string
}

var demoBooks = []demoBook{
	{"Dom Casmurro", 29.90, "Romance"},
	{"Memórias Póstumas de Brás Cubas", 34.50, "Romance"},
	{"Senhora", 24.00, "Romance"},
	{"Sentimento do Mundo", 39.90, "Poesia"},
	{"Estrela da Vida Inteira", 54.00, "Poesia"},
	{"Fundação", 62.90, "Ficção Científica"},
	{"Eu, Robô", 44.90, "Ficção Científica"},
	{"Santos Dumont", 79.00, "Biografia"},
	{"O Hobbit", 49.90, "Fantasia"},
	{"A Sociedade do Anel", 69.90, "Fantasia"},
}

var demoSellers = []entities.Seller{
	{Name: "Ana Souza", Email: "ana.souza@livraria.example", BirthDate: date(1990, time.March, 14), BaseSalary: 2800},
	{Name: "Bruno Lima", Email: "bruno.lima@livraria.example", BirthDate: date(1985, time.July, 2), BaseSalary: 3200},
	{Name: "Carla Mendes", Email: "carla.mendes@livraria.example", BirthDate: date(1998, time.November, 23), BaseSalary: 2500},
	{Name: "Diego Rocha", Email: "diego.rocha@livraria.example", BirthDate: date(1979, time.January, 30), BaseSalary: 4100},
}

type demoSale struct {
	date   time.Time
	amount float64
	seller string
	titles []string
}

var demoSales = []demoSale{
	{date(2024, time.January, 8), 64.40, "Ana Souza", []string{"Dom Casmurro", "Memórias Póstumas de Brás Cubas"}},
	{date(2024, time.January, 19), 49.90, "Ana Souza", []string{"O Hobbit"}},
	{date(2024, time.February, 3), 119.80, "Ana Souza", []string{"O Hobbit", "A Sociedade do Anel"}},
	{date(2024, time.March, 11), 24.00, "Ana Souza", []string{"Senhora"}},
	{date(2024, time.April, 22), 93.90, "Ana Souza", []string{"Sentimento do Mundo", "Estrela da Vida Inteira"}},
	{date(2024, time.May, 5), 29.90, "Ana Souza", []string{"Dom Casmurro"}},
	{date(2024, time.January, 12), 107.80, "Bruno Lima", []string{"Fundação", "Eu, Robô"}},
	{date(2024, time.March, 2), 79.00, "Bruno Lima", []string{"Santos Dumont"}},
	{date(2024, time.June, 17), 150.00, "Bruno Lima", []string{"Fundação", "Santos Dumont", "Senhora"}},
	{date(2024, time.February, 14), 39.90, "Carla Mendes", []string{"Sentimento do Mundo"}},
	{date(2024, time.May, 29), 60.00, "Carla Mendes", []string{"O Hobbit", "Senhora"}},
}
