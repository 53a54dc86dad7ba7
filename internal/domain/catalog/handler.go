package catalog

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"dog-breeds/internal/platform/apperror"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta el catálogo sobre un sub-router (/catalog o /api/dogs).
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/", listBreedsHandler(svc))
	r.Get("/search/{name}", searchBreedsHandler(svc))
	r.Get("/{id}", getBreedHandler(svc))
	r.Get("/{id}/images", breedImagesHandler(svc))
}

// listBreedsHandler godoc
// @Summary      Listar razas
// @Description  Reenvía GET breeds del catálogo externo. Un status no-2xx del upstream se devuelve tal cual, sin body.
// @Tags         catalog
// @Produce      json
// @Success      200  {array}   object
// @Failure      500  {object}  apperror.ErrorBody
// @Router       /catalog [get]
func listBreedsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.List(r.Context())
		if err != nil {
			apperror.Write(w, r, err)
			return
		}
		writeRaw(w, b)
	}
}

// getBreedHandler godoc
// @Summary      Obtener raza
// @Description  Reenvía GET breeds/{id}. Cualquier no-2xx del upstream se responde 404.
// @Tags         catalog
// @Produce      json
// @Param        id   path      int  true  "ID de la raza"
// @Success      200  {object}  object
// @Failure      400  {object}  apperror.ErrorBody
// @Failure      404
// @Failure      500  {object}  apperror.ErrorBody
// @Router       /catalog/{id} [get]
func getBreedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := intParam(r, "id")
		if err != nil {
			apperror.Write(w, r, apperror.InvalidInput("catalog.Get", "id", err))
			return
		}

		b, err := svc.Get(r.Context(), id)
		if err != nil {
			apperror.Write(w, r, err)
			return
		}
		writeRaw(w, b)
	}
}

// searchBreedsHandler godoc
// @Summary      Buscar razas por nombre
// @Tags         catalog
// @Produce      json
// @Param        name  path      string  true  "Nombre (o parte) de la raza"
// @Success      200   {array}   object
// @Failure      404
// @Failure      500   {object}  apperror.ErrorBody
// @Router       /catalog/search/{name} [get]
func searchBreedsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		// chi enruta sobre RawPath cuando existe; ahí el param llega escapado.
		if r.URL.RawPath != "" {
			if v, err := url.PathUnescape(name); err == nil {
				name = v
			}
		}

		b, err := svc.Search(r.Context(), name)
		if err != nil {
			apperror.Write(w, r, err)
			return
		}
		writeRaw(w, b)
	}
}

// breedImagesHandler godoc
// @Summary      Imágenes de una raza
// @Description  Reenvía GET images/search?breed_ids={id}.
// @Tags         catalog
// @Produce      json
// @Param        id   path      int  true  "ID de la raza"
// @Success      200  {array}   object
// @Failure      400  {object}  apperror.ErrorBody
// @Failure      404
// @Failure      500  {object}  apperror.ErrorBody
// @Router       /catalog/{id}/images [get]
func breedImagesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := intParam(r, "id")
		if err != nil {
			apperror.Write(w, r, apperror.InvalidInput("catalog.Images", "id", err))
			return
		}

		b, err := svc.Images(r.Context(), id)
		if err != nil {
			apperror.Write(w, r, err)
			return
		}
		writeRaw(w, b)
	}
}

func intParam(r *http.Request, name string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(chi.URLParam(r, name)))
}

// writeRaw reenvía el body del upstream sin tocarlo.
func writeRaw(w http.ResponseWriter, b Breed) {
	w.Header().Set("Content-Type", b.ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b.Body)
}
