package handler

import (
	"net/http"
	"strconv"
	"time"

	"gametracker/backend/internal/models"
	"gametracker/backend/internal/repository"
	"gametracker/backend/internal/stats"
	"gametracker/backend/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// region --- DTOs ---

// GameInput is the body of POST /juegos. Every field is checked.
type GameInput struct {
	Title         *string `json:"titulo" form:"titulo" validate:"required,notblank,max=100"`
	Genre         *string `json:"genero" form:"genero" validate:"required,notblank,genre"`
	Platform      *string `json:"plataforma" form:"plataforma" validate:"required,notblank,platform"`
	ReleaseYear   *int    `json:"añoLanzamiento" form:"añoLanzamiento" validate:"required,min=1970,releaseyear"`
	Developer     *string `json:"desarrollador" form:"desarrollador" validate:"required,notblank,max=50"`
	CoverImageURL *string `json:"imagenPortada" form:"imagenPortada" validate:"omitnil,coverurl"`
	Description   *string `json:"descripcion" form:"descripcion" validate:"required,notblank,max=500"`
	Completed     *bool   `json:"completado" form:"completado"`
}

// GameUpdateInput is the body of PUT /juegos/:id. Only supplied fields are checked.
type GameUpdateInput struct {
	Title         *string `json:"titulo" form:"titulo" validate:"omitnil,notblank,max=100"`
	Genre         *string `json:"genero" form:"genero" validate:"omitnil,notblank,genre"`
	Platform      *string `json:"plataforma" form:"plataforma" validate:"omitnil,notblank,platform"`
	ReleaseYear   *int    `json:"añoLanzamiento" form:"añoLanzamiento" validate:"omitnil,min=1970,releaseyear"`
	Developer     *string `json:"desarrollador" form:"desarrollador" validate:"omitnil,notblank,max=50"`
	CoverImageURL *string `json:"imagenPortada" form:"imagenPortada" validate:"omitnil,coverurl"`
	Description   *string `json:"descripcion" form:"descripcion" validate:"omitnil,notblank,max=500"`
	Completed     *bool   `json:"completado" form:"completado"`
}

func (in *GameUpdateInput) patch() models.GamePatch {
	p := models.GamePatch{
		Title:         in.Title,
		ReleaseYear:   in.ReleaseYear,
		Developer:     in.Developer,
		CoverImageURL: in.CoverImageURL,
		Description:   in.Description,
		Completed:     in.Completed,
	}
	if in.Genre != nil {
		g := models.Genre(*in.Genre)
		p.Genre = &g
	}
	if in.Platform != nil {
		pl := models.Platform(*in.Platform)
		p.Platform = &pl
	}
	return p
}

// GameResponse is a game as returned by the API.
type GameResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"titulo"`
	Genre         string    `json:"genero"`
	Platform      string    `json:"plataforma"`
	ReleaseYear   int       `json:"añoLanzamiento"`
	Developer     string    `json:"desarrollador"`
	CoverImageURL string    `json:"imagenPortada"`
	Description   string    `json:"descripcion"`
	Completed     bool      `json:"completado"`
	CreatedAt     time.Time `json:"fechaCreacion"`
	UpdatedAt     time.Time `json:"fechaActualizacion"`
}

func newGameResponse(g models.Game) GameResponse {
	return GameResponse{
		ID:            g.ID,
		Title:         g.Title,
		Genre:         string(g.Genre),
		Platform:      string(g.Platform),
		ReleaseYear:   g.ReleaseYear,
		Developer:     g.Developer,
		CoverImageURL: g.CoverImageURL,
		Description:   g.Description,
		Completed:     g.Completed,
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

// GameDetailResponse is a single game with the summary of its reviews.
// Stats is null when the game has no reviews.
type GameDetailResponse struct {
	GameResponse
	Stats *stats.GameReviewStats `json:"stats"`
}

// endregion

// region --- Handlers ---

// ListGames godoc
// @Summary      List games
// @Description  Returns every game of the library matching the filters. No pagination.
// @Tags         juegos
// @Produce      json
// @Param        genero         query     string  false  "Genre"
// @Param        plataforma     query     string  false  "Platform"
// @Param        completado     query     string  false  "true for completed games, anything else for pending ones"
// @Param        año            query     int     false  "Release year"
// @Param        desarrollador  query     string  false  "Developer, case-insensitive substring"
// @Param        sortBy         query     string  false  "Field to sort by" default(fechaCreacion)
// @Param        sortOrder      query     string  false  "asc or desc" default(desc)
// @Success      200  {object}  Response{data=[]GameResponse}
// @Failure      400  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /juegos [get]
func (h *Handler) ListGames(c *gin.Context) {
	filter := repository.GameFilter{
		Genre:     models.Genre(c.Query("genero")),
		Platform:  models.Platform(c.Query("plataforma")),
		Developer: c.Query("desarrollador"),
		Sort:      repository.ParseSort(repository.GameSortColumns, c.DefaultQuery("sortBy", "fechaCreacion"), c.DefaultQuery("sortOrder", "desc")),
	}
	if v, present := c.GetQuery("completado"); present {
		completed := v == "true"
		filter.Completed = &completed
	}
	if v := c.Query("año"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, Response{Message: msgInvalidQuery, Error: "El parámetro año debe ser un número entero"})
			return
		}
		filter.ReleaseYear = &year
	}

	games, err := h.games.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "")
		return
	}

	response := make([]GameResponse, 0, len(games))
	for _, g := range games {
		response = append(response, newGameResponse(g))
	}
	ok(c, http.StatusOK, "", response)
}

// GetGame godoc
// @Summary      Get a game
// @Description  Returns one game with the statistics of its reviews.
// @Tags         juegos
// @Produce      json
// @Param        id   path      string  true  "Game ID (UUID)"
// @Success      200  {object}  Response{data=GameDetailResponse}
// @Failure      400  {object}  ErrorResponse "Malformed ID"
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /juegos/{id} [get]
func (h *Handler) GetGame(c *gin.Context) {
	id, valid := parseID(c, "id", msgInvalidGameID)
	if !valid {
		return
	}

	ctx := c.Request.Context()
	game, err := h.games.FindByID(ctx, id)
	if err != nil {
		respondError(c, err, msgGameNotFound)
		return
	}
	reviewStats, err := h.reviews.GameStats(ctx, id)
	if err != nil {
		respondError(c, err, "")
		return
	}

	ok(c, http.StatusOK, "", GameDetailResponse{GameResponse: newGameResponse(*game), Stats: reviewStats})
}

// CreateGame godoc
// @Summary      Add a game
// @Description  Adds a game to the library. The cover defaults to a placeholder image.
// @Tags         juegos
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        input body GameInput true "Game"
// @Success      201  {object}  Response{data=GameResponse}
// @Failure      400  {object}  ErrorResponse
// @Failure      413  {object}  ErrorResponse "Body too large"
// @Router       /juegos [post]
func (h *Handler) CreateGame(c *gin.Context) {
	var input GameInput
	if err := bindBody(c, &input); err != nil {
		respondError(c, err, "")
		return
	}
	trimAll(input.Title, input.Genre, input.Platform, input.Developer, input.CoverImageURL, input.Description)
	if verr := validation.Struct(&input); verr != nil {
		respondError(c, verr, "")
		return
	}

	game := models.Game{
		Title:       *input.Title,
		Genre:       models.Genre(*input.Genre),
		Platform:    models.Platform(*input.Platform),
		ReleaseYear: *input.ReleaseYear,
		Developer:   *input.Developer,
		Description: *input.Description,
	}
	if input.CoverImageURL != nil {
		game.CoverImageURL = *input.CoverImageURL
	}
	if input.Completed != nil {
		game.Completed = *input.Completed
	}

	if err := h.games.Create(c.Request.Context(), &game); err != nil {
		respondError(c, err, "")
		return
	}

	ok(c, http.StatusCreated, "Juego agregado exitosamente a tu biblioteca", newGameResponse(game))
}

// UpdateGame godoc
// @Summary      Update a game
// @Description  Updates the supplied fields of a game. If any of them is invalid nothing is changed.
// @Tags         juegos
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        id    path      string           true  "Game ID (UUID)"
// @Param        input body      GameUpdateInput  true  "Fields to change"
// @Success      200   {object}  Response{data=GameResponse}
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse "Game not found"
// @Router       /juegos/{id} [put]
func (h *Handler) UpdateGame(c *gin.Context) {
	id, valid := parseID(c, "id", msgInvalidGameID)
	if !valid {
		return
	}

	var input GameUpdateInput
	if err := bindBody(c, &input); err != nil {
		respondError(c, err, "")
		return
	}
	trimAll(input.Title, input.Genre, input.Platform, input.Developer, input.CoverImageURL, input.Description)
	if verr := validation.Struct(&input); verr != nil {
		respondError(c, verr, "")
		return
	}

	game, err := h.games.Update(c.Request.Context(), id, input.patch())
	if err != nil {
		respondError(c, err, msgGameNotFound)
		return
	}

	ok(c, http.StatusOK, "Juego actualizado exitosamente", newGameResponse(*game))
}

// DeleteGame godoc
// @Summary      Delete a game
// @Description  Deletes a game together with all of its reviews.
// @Tags         juegos
// @Produce      json
// @Param        id  path  string  true  "Game ID (UUID)"
// @Success      200 {object} Response
// @Failure      400 {object} ErrorResponse "Malformed ID"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /juegos/{id} [delete]
func (h *Handler) DeleteGame(c *gin.Context) {
	id, valid := parseID(c, "id", msgInvalidGameID)
	if !valid {
		return
	}

	if err := h.games.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, msgGameNotFound)
		return
	}

	ok(c, http.StatusOK, "Juego eliminado exitosamente de tu biblioteca", nil)
}

// ToggleGameCompleted godoc
// @Summary      Toggle completed
// @Description  Flips the completed flag of a game.
// @Tags         juegos
// @Produce      json
// @Param        id  path  string  true  "Game ID (UUID)"
// @Success      200 {object} Response{data=GameResponse}
// @Failure      400 {object} ErrorResponse "Malformed ID"
// @Failure      404 {object} ErrorResponse "Game not found"
// @Router       /juegos/{id}/completado [patch]
func (h *Handler) ToggleGameCompleted(c *gin.Context) {
	id, valid := parseID(c, "id", msgInvalidGameID)
	if !valid {
		return
	}

	game, err := h.games.ToggleCompleted(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, msgGameNotFound)
		return
	}

	state := "no completado"
	if game.Completed {
		state = "completado"
	}
	ok(c, http.StatusOK, "Juego marcado como "+state, newGameResponse(*game))
}

// GetLibraryStats godoc
// @Summary      Library statistics
// @Description  Totals, completion percentage and genre and platform distributions.
// @Tags         juegos
// @Produce      json
// @Success      200 {object} Response{data=stats.LibrarySummary}
// @Failure      500 {object} ErrorResponse
// @Router       /juegos/stats [get]
func (h *Handler) GetLibraryStats(c *gin.Context) {
	counts, err := h.games.LibraryCounts(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "", stats.Library(counts))
}

// endregion
