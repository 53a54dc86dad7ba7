package favorites

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"dog-breeds/internal/platform/apperror"
	"dog-breeds/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta favoritos sobre un sub-router (/favorites o /api/favorites).
func RegisterRoutes(r chi.Router, svc *Service, m *metrics.Metrics) {
	r.Post("/", createFavoriteHandler(svc, m))
	r.Get("/", listFavoritesHandler(svc))
	r.Get("/{id}", getFavoriteHandler(svc))
	r.Delete("/{id}", deleteFavoriteHandler(svc, m))
}

// FavoriteRequest es el payload de alta. Un "id" en el body se ignora.
type FavoriteRequest struct {
	BreedName string `json:"breedName" example:"Beagle"`
	BreedID   *int64 `json:"breedId,omitempty" example:"62"`
	ImageURL  string `json:"imageUrl,omitempty"`
}

type FavoriteResponse struct {
	ID        int64  `json:"id" example:"1"`
	BreedName string `json:"breedName" example:"Beagle"`
	BreedID   *int64 `json:"breedId,omitempty" example:"62"`
	ImageURL  string `json:"imageUrl,omitempty"`
}

// createFavoriteHandler godoc
// @Summary      Guardar favorito
// @Tags         favorites
// @Accept       json
// @Produce      json
// @Param        request  body      favorites.FavoriteRequest  true  "Favorito"
// @Success      201      {object}  favorites.FavoriteResponse
// @Header       201      {string}  Location  "/favorites/{id}"
// @Failure      400      {object}  apperror.ErrorBody
// @Failure      500      {object}  apperror.ErrorBody
// @Router       /favorites [post]
func createFavoriteHandler(svc *Service, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req FavoriteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apperror.Write(w, r, apperror.InvalidInput("favorites.Create", "body", err))
			return
		}

		f, err := svc.Create(r.Context(), CreateInput{
			BreedName: req.BreedName,
			BreedID:   req.BreedID,
			ImageURL:  req.ImageURL,
		})
		if err != nil {
			apperror.Write(w, r, err)
			return
		}
		m.FavoriteCreated()

		// Location relativo al prefijo montado (/favorites o /api/favorites).
		w.Header().Set("Location", strings.TrimRight(r.URL.Path, "/")+"/"+strconv.FormatInt(f.ID, 10))
		writeJSON(w, http.StatusCreated, toFavoriteResponse(f))
	}
}

// listFavoritesHandler godoc
// @Summary      Listar favoritos
// @Tags         favorites
// @Produce      json
// @Success      200  {array}   favorites.FavoriteResponse
// @Failure      500  {object}  apperror.ErrorBody
// @Router       /favorites [get]
func listFavoritesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			apperror.Write(w, r, err)
			return
		}

		out := make([]FavoriteResponse, 0, len(items))
		for _, f := range items {
			out = append(out, toFavoriteResponse(f))
		}

		writeJSON(w, http.StatusOK, out)
	}
}

// getFavoriteHandler godoc
// @Summary      Obtener favorito
// @Tags         favorites
// @Produce      json
// @Param        id   path      int  true  "ID del favorito"
// @Success      200  {object}  favorites.FavoriteResponse
// @Failure      400  {object}  apperror.ErrorBody
// @Failure      404
// @Failure      500  {object}  apperror.ErrorBody
// @Router       /favorites/{id} [get]
func getFavoriteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			apperror.Write(w, r, apperror.InvalidInput("favorites.GetByID", "id", err))
			return
		}

		f, err := svc.GetByID(r.Context(), id)
		if err != nil {
			apperror.Write(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, toFavoriteResponse(f))
	}
}

// deleteFavoriteHandler godoc
// @Summary      Borrar favorito
// @Tags         favorites
// @Param        id   path      int  true  "ID del favorito"
// @Success      200
// @Failure      400  {object}  apperror.ErrorBody
// @Failure      404
// @Failure      500  {object}  apperror.ErrorBody
// @Router       /favorites/{id} [delete]
func deleteFavoriteHandler(svc *Service, m *metrics.Metrics) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := idParam(r)
		if err != nil {
			apperror.Write(w, r, apperror.InvalidInput("favorites.Delete", "id", err))
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			apperror.Write(w, r, err)
			return
		}
		m.FavoriteDeleted()

		w.WriteHeader(http.StatusOK)
	}
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(chi.URLParam(r, "id")), 10, 64)
}

func toFavoriteResponse(f Favorite) FavoriteResponse {
	return FavoriteResponse{
		ID:        f.ID,
		BreedName: f.BreedName,
		BreedID:   f.BreedID,
		ImageURL:  f.ImageURL,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
