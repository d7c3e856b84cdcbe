package models

// Genre is one of the fixed game genres.
type Genre string

const (
	GenreAction     Genre = "Acción"
	GenreRPG        Genre = "RPG"
	GenreStrategy   Genre = "Estrategia"
	GenreAdventure  Genre = "Aventura"
	GenreSports     Genre = "Deportes"
	GenreSimulation Genre = "Simulación"
	GenrePuzzle     Genre = "Puzzle"
	GenrePlatformer Genre = "Plataformas"
	GenreSurvival   Genre = "Supervivencia"
	GenreHorror     Genre = "Terror"
	GenreRacing     Genre = "Carreras"
	GenreFighting   Genre = "Lucha"
)

// Genres lists every accepted genre.
var Genres = []Genre{
	GenreAction, GenreRPG, GenreStrategy, GenreAdventure, GenreSports, GenreSimulation,
	GenrePuzzle, GenrePlatformer, GenreSurvival, GenreHorror, GenreRacing, GenreFighting,
}

// Valid reports whether g is one of Genres.
func (g Genre) Valid() bool {
	for _, v := range Genres {
		if g == v {
			return true
		}
	}
	return false
}

// Platform is one of the fixed platforms a game can be tracked on.
type Platform string

const (
	PlatformPC             Platform = "PC"
	PlatformPlayStation    Platform = "PlayStation"
	PlatformXbox           Platform = "Xbox"
	PlatformNintendoSwitch Platform = "Nintendo Switch"
	PlatformMobile         Platform = "Mobile"
	PlatformPS5            Platform = "PlayStation 5"
	PlatformXboxSeries     Platform = "Xbox Series X/S"
	PlatformPS4            Platform = "PlayStation 4"
	PlatformXboxOne        Platform = "Xbox One"
)

// Platforms lists every accepted platform.
var Platforms = []Platform{
	PlatformPC, PlatformPlayStation, PlatformXbox, PlatformNintendoSwitch, PlatformMobile,
	PlatformPS5, PlatformXboxSeries, PlatformPS4, PlatformXboxOne,
}

// Valid reports whether p is one of Platforms.
func (p Platform) Valid() bool {
	for _, v := range Platforms {
		if p == v {
			return true
		}
	}
	return false
}

// Difficulty is the perceived difficulty recorded in a review.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "Fácil"
	DifficultyNormal   Difficulty = "Normal"
	DifficultyHard     Difficulty = "Difícil"
	DifficultyVeryHard Difficulty = "Muy Difícil"
)

// Difficulties lists every accepted difficulty.
var Difficulties = []Difficulty{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyVeryHard}

// Valid reports whether d is one of Difficulties.
func (d Difficulty) Valid() bool {
	for _, v := range Difficulties {
		if d == v {
			return true
		}
	}
	return false
}
