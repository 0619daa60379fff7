// ABOUTME: Static district/municipality/parish tables for Portugal
// ABOUTME: Option sets are pure functions of the upstream selection
package geo

import "sort"

// municipalitiesByDistrict is a trimmed table covering the districts
// the product currently operates in. Unknown districts simply yield no
// options.
var municipalitiesByDistrict = map[string][]string{
	"Lisboa": {
		"Amadora", "Cascais", "Lisboa", "Loures", "Mafra",
		"Odivelas", "Oeiras", "Sintra", "Torres Vedras",
	},
	"Porto": {
		"Gondomar", "Maia", "Matosinhos", "Porto",
		"Póvoa de Varzim", "Vila do Conde", "Vila Nova de Gaia",
	},
	"Braga": {
		"Barcelos", "Braga", "Guimarães", "Vila Nova de Famalicão",
	},
	"Faro": {
		"Albufeira", "Faro", "Lagos", "Loulé", "Portimão", "Tavira",
	},
	"Setúbal": {
		"Almada", "Barreiro", "Seixal", "Sesimbra", "Setúbal",
	},
	"Aveiro": {
		"Aveiro", "Espinho", "Ílhavo", "Ovar",
	},
	"Coimbra": {
		"Cantanhede", "Coimbra", "Figueira da Foz",
	},
}

var parishesByMunicipality = map[string][]string{
	"Lisboa": {
		"Alvalade", "Areeiro", "Arroios", "Avenidas Novas", "Belém",
		"Benfica", "Campo de Ourique", "Estrela", "Lumiar",
		"Marvila", "Parque das Nações", "Santo António",
	},
	"Cascais": {
		"Alcabideche", "Carcavelos e Parede", "Cascais e Estoril",
		"São Domingos de Rana",
	},
	"Sintra": {
		"Agualva e Mira-Sintra", "Algueirão-Mem Martins",
		"Colares", "Queluz e Belas", "Rio de Mouro", "Sintra",
	},
	"Oeiras": {
		"Algés, Linda-a-Velha e Cruz Quebrada-Dafundo",
		"Barcarena", "Carnaxide e Queijas", "Oeiras e São Julião da Barra",
	},
	"Porto": {
		"Aldoar, Foz do Douro e Nevogilde", "Bonfim", "Campanhã",
		"Cedofeita, Santo Ildefonso, Sé, Miragaia, São Nicolau e Vitória",
		"Lordelo do Ouro e Massarelos", "Paranhos", "Ramalde",
	},
	"Matosinhos": {
		"Custóias, Leça do Balio e Guifões",
		"Matosinhos e Leça da Palmeira",
		"São Mamede de Infesta e Senhora da Hora",
	},
	"Vila Nova de Gaia": {
		"Canidelo", "Mafamude e Vilar do Paraíso", "Oliveira do Douro",
		"Santa Marinha e São Pedro da Afurada",
	},
	"Braga": {
		"Braga (Maximinos, Sé e Cividade)",
		"Braga (São José de São Lázaro e São João do Souto)",
		"Real, Dume e Semelhe",
	},
	"Faro": {
		"Faro (Sé e São Pedro)", "Montenegro", "Santa Bárbara de Nexe",
	},
	"Loulé": {
		"Almancil", "Loulé (São Clemente)", "Loulé (São Sebastião)",
		"Quarteira",
	},
	"Almada": {
		"Almada, Cova da Piedade, Pragal e Cacilhas",
		"Caparica e Trafaria", "Charneca de Caparica e Sobreda",
	},
	"Setúbal": {
		"Azeitão", "Setúbal (São Julião, Nossa Senhora da Anunciada e Santa Maria da Graça)",
		"Setúbal (São Sebastião)",
	},
}

// Districts returns every known district, sorted.
func Districts() []string {
	names := make([]string, 0, len(municipalitiesByDistrict))
	for name := range municipalitiesByDistrict {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MunicipalitiesFor returns the valid municipality options for a
// district. An empty or unknown district yields no options.
func MunicipalitiesFor(district string) []string {
	return append([]string(nil), municipalitiesByDistrict[district]...)
}

// ParishesFor returns the valid parish options for a municipality. An
// empty or unknown municipality yields no options.
func ParishesFor(municipality string) []string {
	return append([]string(nil), parishesByMunicipality[municipality]...)
}
