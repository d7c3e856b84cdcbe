package validation

// messages maps JSON field name and failing tag to the message shown to clients.
var messages = map[string]map[string]string{
	// Games
	"titulo": {
		"required": "El título del juego es obligatorio",
		"max":      "El título no puede exceder 100 caracteres",
	},
	"genero": {
		"required": "El género es obligatorio",
		"genre":    "Género no válido",
	},
	"plataforma": {
		"required": "La plataforma es obligatoria",
		"platform": "Plataforma no válida",
	},
	"añoLanzamiento": {
		"required":    "El año de lanzamiento es obligatorio",
		"min":         "El año debe ser mayor a 1970",
		"releaseyear": "El año no puede ser mayor al año actual + 2",
	},
	"desarrollador": {
		"required": "El desarrollador es obligatorio",
		"max":      "El nombre del desarrollador no puede exceder 50 caracteres",
	},
	"imagenPortada": {
		"coverurl": "La URL de la imagen debe ser válida y terminar en jpg, jpeg, png, webp o gif",
	},
	"descripcion": {
		"required": "La descripción es obligatoria",
		"max":      "La descripción no puede exceder 500 caracteres",
	},

	// Reviews
	"juegoId": {
		"required": "La referencia al juego es obligatoria",
	},
	"puntuacion": {
		"required": "La puntuación es obligatoria",
		"min":      "La puntuación mínima es 1",
		"max":      "La puntuación máxima es 5",
		"integer":  "La puntuación debe ser un número entero",
	},
	"textoReseña": {
		"required": "El texto de la reseña es obligatorio",
		"min":      "La reseña debe tener al menos 10 caracteres",
		"max":      "La reseña no puede exceder 1000 caracteres",
	},
	"horasJugadas": {
		"required": "Las horas jugadas son obligatorias",
		"min":      "Las horas jugadas no pueden ser negativas",
		"max":      "Las horas jugadas parecen excesivas",
	},
	"dificultad": {
		"required":   "La dificultad es obligatoria",
		"difficulty": "Dificultad no válida",
	},
	"recomendaria": {
		"required": "La recomendación es obligatoria",
	},
}
