package validation

import (
	"reflect"
	"strings"
	"testing"

	"gametracker/backend/internal/models"
)

type gameFixture struct {
	Title       *string  `json:"titulo" validate:"required,notblank,max=100"`
	Genre       *string  `json:"genero" validate:"required,genre"`
	ReleaseYear *int     `json:"añoLanzamiento" validate:"required,min=1970,releaseyear"`
	Cover       *string  `json:"imagenPortada" validate:"omitnil,coverurl"`
	Score       *float64 `json:"puntuacion" validate:"omitnil,integer,min=1,max=5"`
}

func strPtr(s string) *string    { return &s }
func intPtr(i int) *int          { return &i }
func floatPtr(f float64) *float64 { return &f }

func validFixture() gameFixture {
	return gameFixture{
		Title:       strPtr("Hollow Knight"),
		Genre:       strPtr(string(models.GenrePlatformer)),
		ReleaseYear: intPtr(2017),
	}
}

func TestGet_Singleton(t *testing.T) {
	if Get() != Get() {
		t.Error("Get() should return the same instance")
	}
}

func TestStruct_Valid(t *testing.T) {
	in := validFixture()
	in.Cover = strPtr("https://example.com/cover.PNG?size=large")
	in.Score = floatPtr(4)
	if err := Struct(&in); err != nil {
		t.Fatalf("Struct() = %v, want nil", err)
	}
}

func TestStruct_Messages(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*gameFixture)
		want   []string
	}{
		{
			name:   "missing title",
			mutate: func(f *gameFixture) { f.Title = nil },
			want:   []string{"El título del juego es obligatorio"},
		},
		{
			name:   "blank title",
			mutate: func(f *gameFixture) { f.Title = strPtr("   ") },
			want:   []string{"El título del juego es obligatorio"},
		},
		{
			name:   "title too long",
			mutate: func(f *gameFixture) { f.Title = strPtr(strings.Repeat("a", 101)) },
			want:   []string{"El título no puede exceder 100 caracteres"},
		},
		{
			name:   "title of 100 multibyte runes is accepted",
			mutate: func(f *gameFixture) { f.Title = strPtr(strings.Repeat("ñ", 100)) },
			want:   nil,
		},
		{
			name:   "unknown genre",
			mutate: func(f *gameFixture) { f.Genre = strPtr("MMO") },
			want:   []string{"Género no válido"},
		},
		{
			name:   "year too old",
			mutate: func(f *gameFixture) { f.ReleaseYear = intPtr(1969) },
			want:   []string{"El año debe ser mayor a 1970"},
		},
		{
			name:   "year too far ahead",
			mutate: func(f *gameFixture) { f.ReleaseYear = intPtr(models.MaxReleaseYear() + 1) },
			want:   []string{"El año no puede ser mayor al año actual + 2"},
		},
		{
			name:   "cover without image extension",
			mutate: func(f *gameFixture) { f.Cover = strPtr("https://example.com/cover") },
			want:   []string{"La URL de la imagen debe ser válida y terminar en jpg, jpeg, png, webp o gif"},
		},
		{
			name:   "placeholder cover is accepted",
			mutate: func(f *gameFixture) { f.Cover = strPtr(models.PlaceholderCoverURL) },
			want:   nil,
		},
		{
			name:   "fractional score",
			mutate: func(f *gameFixture) { f.Score = floatPtr(3.5) },
			want:   []string{"La puntuación debe ser un número entero"},
		},
		{
			name:   "score above range",
			mutate: func(f *gameFixture) { f.Score = floatPtr(6) },
			want:   []string{"La puntuación máxima es 5"},
		},
		{
			name:   "score below range",
			mutate: func(f *gameFixture) { f.Score = floatPtr(0) },
			want:   []string{"La puntuación mínima es 1"},
		},
		{
			name: "one message per failing field in field order",
			mutate: func(f *gameFixture) {
				f.Title = nil
				f.Genre = strPtr("MMO")
				f.ReleaseYear = intPtr(1900)
			},
			want: []string{
				"El título del juego es obligatorio",
				"Género no válido",
				"El año debe ser mayor a 1970",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validFixture()
			tt.mutate(&in)

			err := Struct(&in)
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Struct() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Struct() = nil, want %v", tt.want)
			}
			if got := err.Messages(); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Messages() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStruct_FieldNamesUseJSONTags(t *testing.T) {
	in := validFixture()
	in.ReleaseYear = nil

	err := Struct(&in)
	if err == nil {
		t.Fatal("expected an error")
	}
	if got := err.Fields[0].Field; got != "añoLanzamiento" {
		t.Errorf("Field = %q, want añoLanzamiento", got)
	}
}

func TestIsCoverURL(t *testing.T) {
	tests := map[string]bool{
		models.PlaceholderCoverURL:           true,
		"http://img.example.com/a.jpg":       true,
		"https://img.example.com/a.webp?x=1": true,
		"https://picsum.photos/400/600.jpeg": true,
		"ftp://img.example.com/a.jpg":        false,
		"https://img.example.com/a.bmp":      false,
		"not a url":                          false,
		"":                                   false,
	}
	for url, want := range tests {
		if got := IsCoverURL(url); got != want {
			t.Errorf("IsCoverURL(%q) = %v, want %v", url, got, want)
		}
	}
}

func TestNewError(t *testing.T) {
	err := NewError("juegoId", "ID de juego no válido")
	if err.Error() != "ID de juego no válido" {
		t.Errorf("Error() = %q", err.Error())
	}
}
