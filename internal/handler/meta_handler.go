package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Version is reported by the banner and discovery endpoints.
const Version = "1.0.0"

// EndpointGroup describes one resource in the discovery listing.
type EndpointGroup struct {
	Base        string   `json:"base"`
	Description string   `json:"descripcion"`
	Endpoints   []string `json:"endpoints"`
}

var endpointGroups = map[string]EndpointGroup{
	"juegos": {
		Base:        "/api/juegos",
		Description: "CRUD completo para gestionar tu biblioteca de videojuegos",
		Endpoints: []string{
			"GET /api/juegos - Obtener todos los juegos",
			"GET /api/juegos/stats - Estadísticas de la biblioteca",
			"GET /api/juegos/:id - Obtener juego específico",
			"POST /api/juegos - Agregar nuevo juego",
			"PUT /api/juegos/:id - Actualizar juego",
			"PATCH /api/juegos/:id/completado - Marcar como completado",
			"DELETE /api/juegos/:id - Eliminar juego",
		},
	},
	"resenas": {
		Base:        "/api/resenas",
		Description: "CRUD completo para gestionar reseñas de videojuegos",
		Endpoints: []string{
			"GET /api/resenas - Obtener todas las reseñas",
			"GET /api/resenas/stats - Estadísticas de reseñas",
			"GET /api/resenas/juego/:juegoId - Reseñas de un juego específico",
			"GET /api/resenas/:id - Obtener reseña específica",
			"POST /api/resenas - Crear nueva reseña",
			"PUT /api/resenas/:id - Actualizar reseña",
			"DELETE /api/resenas/:id - Eliminar reseña",
		},
	},
}

var features = []string{
	"📚 Gestión completa de biblioteca de videojuegos",
	"⭐ Sistema de reseñas con puntuaciones",
	"🔍 Filtros avanzados por género, plataforma, etc.",
	"📊 Estadísticas detalladas",
	"✅ Control de juegos completados",
	"⏱️ Registro de horas jugadas",
}

// Banner godoc
// @Summary      Service banner
// @Tags         meta
// @Produce      json
// @Success      200 {object} map[string]any
// @Router       / [get]
func Banner(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "🎮 GameTracker API está funcionando correctamente",
		"version":   Version,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"documentation": gin.H{
			"api":     "/api",
			"games":   "/api/juegos",
			"reviews": "/api/resenas",
			"swagger": "/swagger/index.html",
		},
		"description": "API REST para gestionar biblioteca de videojuegos con reseñas",
	})
}

// Discovery godoc
// @Summary      List the API endpoints
// @Tags         meta
// @Produce      json
// @Success      200 {object} map[string]any
// @Router       /api [get]
func Discovery(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "🎮 Bienvenido a GameTracker API",
		"version":   Version,
		"endpoints": endpointGroups,
		"features":  features,
	})
}

// NotFound answers unmatched routes. Paths under /api get the endpoint hint,
// anything else echoes the requested path.
func NotFound(c *gin.Context) {
	path := c.Request.URL.Path
	if path == "/api" || strings.HasPrefix(path, "/api/") {
		c.JSON(http.StatusNotFound, gin.H{
			"success":            false,
			"message":            "Endpoint no encontrado",
			"availableEndpoints": "/api para ver todos los endpoints disponibles",
		})
		return
	}

	c.JSON(http.StatusNotFound, gin.H{
		"success":    false,
		"message":    "Ruta no encontrada",
		"path":       c.Request.URL.RequestURI(),
		"suggestion": "/api para ver los endpoints disponibles",
	})
}

// Ping godoc
// @Summary      Health check
// @Tags         meta
// @Produce      json
// @Success      200 {object} map[string]string "{"message": "pong"}"
// @Router       /ping [get]
func Ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "pong"})
}
