package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gametracker/backend/internal/models"
	"gametracker/backend/internal/repository"
	"gametracker/backend/internal/stats"
	"gametracker/backend/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// region --- DTOs ---

// ReviewInput is the body of POST /resenas.
// Score is a float so that non-integer values are reported instead of failing to decode.
type ReviewInput struct {
	GameID         *string  `json:"juegoId" form:"juegoId"`
	Score          *float64 `json:"puntuacion" form:"puntuacion" validate:"required,integer,min=1,max=5"`
	Text           *string  `json:"textoReseña" form:"textoReseña" validate:"required,notblank,min=10,max=1000"`
	HoursPlayed    *float64 `json:"horasJugadas" form:"horasJugadas" validate:"required,min=0,max=10000"`
	Difficulty     *string  `json:"dificultad" form:"dificultad" validate:"required,notblank,difficulty"`
	WouldRecommend *bool    `json:"recomendaria" form:"recomendaria" validate:"required"`
}

// ReviewUpdateInput is the body of PUT /resenas/:id. Only supplied fields are checked.
type ReviewUpdateInput struct {
	GameID         *string  `json:"juegoId" form:"juegoId"`
	Score          *float64 `json:"puntuacion" form:"puntuacion" validate:"omitnil,integer,min=1,max=5"`
	Text           *string  `json:"textoReseña" form:"textoReseña" validate:"omitnil,notblank,min=10,max=1000"`
	HoursPlayed    *float64 `json:"horasJugadas" form:"horasJugadas" validate:"omitnil,min=0,max=10000"`
	Difficulty     *string  `json:"dificultad" form:"dificultad" validate:"omitnil,notblank,difficulty"`
	WouldRecommend *bool    `json:"recomendaria" form:"recomendaria"`
}

// GameSummary is the part of a game embedded in reviews.
type GameSummary struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"titulo"`
	Genre         string    `json:"genero"`
	Platform      string    `json:"plataforma"`
	CoverImageURL string    `json:"imagenPortada"`
	Developer     string    `json:"desarrollador,omitempty"`
}

// ReviewResponse is a review as returned by the API. Game is null when the
// reviewed game no longer exists.
type ReviewResponse struct {
	ID             uuid.UUID    `json:"id"`
	Game           *GameSummary `json:"juegoId"`
	Score          int          `json:"puntuacion"`
	Text           string       `json:"textoReseña"`
	HoursPlayed    float64      `json:"horasJugadas"`
	Difficulty     string       `json:"dificultad"`
	WouldRecommend bool         `json:"recomendaria"`
	CreatedAt      time.Time    `json:"fechaCreacion"`
	UpdatedAt      time.Time    `json:"fechaActualizacion"`
}

func newReviewResponse(r models.Review, withDeveloper bool) ReviewResponse {
	resp := ReviewResponse{
		ID:             r.ID,
		Score:          r.Score,
		Text:           r.Text,
		HoursPlayed:    r.HoursPlayed,
		Difficulty:     string(r.Difficulty),
		WouldRecommend: r.WouldRecommend,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	if r.Game != nil {
		resp.Game = &GameSummary{
			ID:            r.Game.ID,
			Title:         r.Game.Title,
			Genre:         string(r.Game.Genre),
			Platform:      string(r.Game.Platform),
			CoverImageURL: r.Game.CoverImageURL,
		}
		if withDeveloper {
			resp.Game.Developer = r.Game.Developer
		}
	}
	return resp
}

func newReviewResponses(reviews []models.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, newReviewResponse(r, false))
	}
	return out
}

// GameInfo identifies the game of a per-game review listing.
type GameInfo struct {
	Title    string `json:"titulo"`
	Genre    string `json:"genero"`
	Platform string `json:"plataforma"`
}

// GameReviewsResponse is the body of GET /resenas/juego/:juegoId.
type GameReviewsResponse struct {
	Success  bool                   `json:"success"`
	Data     []ReviewResponse       `json:"data"`
	GameInfo GameInfo               `json:"gameInfo"`
	Stats    *stats.GameReviewStats `json:"stats"`
}

// endregion

// region --- Handlers ---

// ListReviews godoc
// @Summary      List reviews
// @Description  Returns every review matching the filters, each with a summary of its game.
// @Tags         resenas
// @Produce      json
// @Param        puntuacion    query     int     false  "Score"
// @Param        dificultad    query     string  false  "Difficulty"
// @Param        recomendaria  query     string  false  "true for recommended, anything else for not recommended"
// @Param        sortBy        query     string  false  "Field to sort by" default(fechaCreacion)
// @Param        sortOrder     query     string  false  "asc or desc" default(desc)
// @Success      200  {object}  Response{data=[]ReviewResponse}
// @Failure      400  {object}  ErrorResponse
// @Router       /resenas [get]
func (h *Handler) ListReviews(c *gin.Context) {
	filter := repository.ReviewFilter{
		Difficulty: models.Difficulty(c.Query("dificultad")),
		Sort:       parseReviewSort(c),
	}
	if v, present := c.GetQuery("recomendaria"); present {
		recommend := v == "true"
		filter.WouldRecommend = &recommend
	}
	if v := c.Query("puntuacion"); v != "" {
		score, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, Response{Message: msgInvalidQuery, Error: "El parámetro puntuacion debe ser un número entero"})
			return
		}
		filter.Score = &score
	}

	reviews, err := h.reviews.List(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "", newReviewResponses(reviews))
}

// ListGameReviews godoc
// @Summary      Reviews of a game
// @Description  Returns the reviews of one game together with the game info and review statistics.
// @Tags         resenas
// @Produce      json
// @Param        juegoId    path      string  true   "Game ID (UUID)"
// @Param        sortBy     query     string  false  "Field to sort by" default(fechaCreacion)
// @Param        sortOrder  query     string  false  "asc or desc" default(desc)
// @Success      200  {object}  GameReviewsResponse
// @Failure      400  {object}  ErrorResponse "Malformed ID"
// @Failure      404  {object}  ErrorResponse "Game not found"
// @Router       /resenas/juego/{juegoId} [get]
func (h *Handler) ListGameReviews(c *gin.Context) {
	gameID, valid := parseID(c, "juegoId", msgInvalidGameID)
	if !valid {
		return
	}

	ctx := c.Request.Context()
	game, err := h.games.FindByID(ctx, gameID)
	if err != nil {
		respondError(c, err, msgGameNotFound)
		return
	}

	reviews, err := h.reviews.List(ctx, repository.ReviewFilter{GameID: &gameID, Sort: parseReviewSort(c)})
	if err != nil {
		respondError(c, err, "")
		return
	}
	reviewStats, err := h.reviews.GameStats(ctx, gameID)
	if err != nil {
		respondError(c, err, "")
		return
	}

	c.JSON(http.StatusOK, GameReviewsResponse{
		Success: true,
		Data:    newReviewResponses(reviews),
		GameInfo: GameInfo{
			Title:    game.Title,
			Genre:    string(game.Genre),
			Platform: string(game.Platform),
		},
		Stats: reviewStats,
	})
}

// GetReview godoc
// @Summary      Get a review
// @Tags         resenas
// @Produce      json
// @Param        id   path      string  true  "Review ID (UUID)"
// @Success      200  {object}  Response{data=ReviewResponse}
// @Failure      400  {object}  ErrorResponse "Malformed ID"
// @Failure      404  {object}  ErrorResponse "Review not found"
// @Router       /resenas/{id} [get]
func (h *Handler) GetReview(c *gin.Context) {
	id, valid := parseID(c, "id", msgInvalidReviewID)
	if !valid {
		return
	}

	review, err := h.reviews.FindByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, msgReviewNotFound)
		return
	}
	ok(c, http.StatusOK, "", newReviewResponse(*review, true))
}

// CreateReview godoc
// @Summary      Create a review
// @Description  Creates a review of an existing game.
// @Tags         resenas
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        input body ReviewInput true "Review"
// @Success      201  {object}  Response{data=ReviewResponse}
// @Failure      400  {object}  ErrorResponse
// @Failure      404  {object}  ErrorResponse "Game does not exist"
// @Router       /resenas [post]
func (h *Handler) CreateReview(c *gin.Context) {
	var input ReviewInput
	if err := bindBody(c, &input); err != nil {
		respondError(c, err, "")
		return
	}

	gameID, valid := h.checkGameRef(c, input.GameID, "No se puede crear reseña: el juego no existe")
	if !valid {
		return
	}

	trimAll(input.Text, input.Difficulty)
	if verr := validation.Struct(&input); verr != nil {
		respondError(c, verr, "")
		return
	}

	review := models.Review{
		GameID:         gameID,
		Score:          int(*input.Score),
		Text:           *input.Text,
		HoursPlayed:    *input.HoursPlayed,
		Difficulty:     models.Difficulty(*input.Difficulty),
		WouldRecommend: *input.WouldRecommend,
	}
	if err := h.reviews.Create(c.Request.Context(), &review); err != nil {
		respondError(c, err, "")
		return
	}

	ok(c, http.StatusCreated, "Reseña creada exitosamente", newReviewResponse(review, false))
}

// UpdateReview godoc
// @Summary      Update a review
// @Description  Updates the supplied fields of a review. A new juegoId must reference an existing game.
// @Tags         resenas
// @Accept       json
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        id    path      string             true  "Review ID (UUID)"
// @Param        input body      ReviewUpdateInput  true  "Fields to change"
// @Success      200   {object}  Response{data=ReviewResponse}
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse "Review or game not found"
// @Router       /resenas/{id} [put]
func (h *Handler) UpdateReview(c *gin.Context) {
	id, valid := parseID(c, "id", msgInvalidReviewID)
	if !valid {
		return
	}

	var input ReviewUpdateInput
	if err := bindBody(c, &input); err != nil {
		respondError(c, err, "")
		return
	}

	var patch models.ReviewPatch
	if input.GameID != nil && strings.TrimSpace(*input.GameID) != "" {
		gameID, valid := h.checkGameRef(c, input.GameID, "No se puede actualizar: el juego no existe")
		if !valid {
			return
		}
		patch.GameID = &gameID
	}

	trimAll(input.Text, input.Difficulty)
	if verr := validation.Struct(&input); verr != nil {
		respondError(c, verr, "")
		return
	}

	if input.Score != nil {
		score := int(*input.Score)
		patch.Score = &score
	}
	if input.Difficulty != nil {
		d := models.Difficulty(*input.Difficulty)
		patch.Difficulty = &d
	}
	patch.Text = input.Text
	patch.HoursPlayed = input.HoursPlayed
	patch.WouldRecommend = input.WouldRecommend

	review, err := h.reviews.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondError(c, err, msgReviewNotFound)
		return
	}
	ok(c, http.StatusOK, "Reseña actualizada exitosamente", newReviewResponse(*review, false))
}

// DeleteReview godoc
// @Summary      Delete a review
// @Tags         resenas
// @Produce      json
// @Param        id  path  string  true  "Review ID (UUID)"
// @Success      200 {object} Response
// @Failure      400 {object} ErrorResponse "Malformed ID"
// @Failure      404 {object} ErrorResponse "Review not found"
// @Router       /resenas/{id} [delete]
func (h *Handler) DeleteReview(c *gin.Context) {
	id, valid := parseID(c, "id", msgInvalidReviewID)
	if !valid {
		return
	}

	if err := h.reviews.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err, msgReviewNotFound)
		return
	}
	ok(c, http.StatusOK, "Reseña eliminada exitosamente", nil)
}

// GetReviewStats godoc
// @Summary      Review statistics
// @Description  Global totals, score and difficulty distributions and the five best rated games.
// @Tags         resenas
// @Produce      json
// @Success      200 {object} Response{data=stats.ReviewSummary}
// @Failure      500 {object} ErrorResponse
// @Router       /resenas/stats [get]
func (h *Handler) GetReviewStats(c *gin.Context) {
	counts, err := h.reviews.Counts(c.Request.Context())
	if err != nil {
		respondError(c, err, "")
		return
	}
	ok(c, http.StatusOK, "", stats.Reviews(counts))
}

// endregion

// checkGameRef parses a juegoId from a body and checks that the game exists.
// It writes the 400 or 404 response itself and reports false on failure.
func (h *Handler) checkGameRef(c *gin.Context, raw *string, missingMsg string) (uuid.UUID, bool) {
	if raw == nil {
		fail(c, http.StatusBadRequest, msgInvalidGameID)
		return uuid.Nil, false
	}
	gameID, err := uuid.Parse(strings.TrimSpace(*raw))
	if err != nil {
		fail(c, http.StatusBadRequest, msgInvalidGameID)
		return uuid.Nil, false
	}

	if _, err := h.games.FindByID(c.Request.Context(), gameID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			fail(c, http.StatusNotFound, missingMsg)
		} else {
			respondError(c, err, "")
		}
		return uuid.Nil, false
	}
	return gameID, true
}

func parseReviewSort(c *gin.Context) repository.Sort {
	return repository.ParseSort(repository.ReviewSortColumns,
		c.DefaultQuery("sortBy", "fechaCreacion"),
		c.DefaultQuery("sortOrder", "desc"))
}
