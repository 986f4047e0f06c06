package suggest

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/nhatlepham/inkwell/internal/platform/constants"
	requestutil "github.com/nhatlepham/inkwell/internal/platform/request"
	"github.com/nhatlepham/inkwell/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the suggestion route group.
//
// # Endpoints
//   - GET /{path...}?limit=N : Up to N related posts for the post at path.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/*", handler.forPost)
	return router
}

func (handler *Handler) forPost(writer http.ResponseWriter, request *http.Request) {
	segments := requestutil.PathSegments(request)
	limit := parseLimit(request.URL.Query().Get("limit"))

	suggestions, err := handler.service.ForPost(request.Context(), segments, limit)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, suggestions)
}

// parseLimit clamps the requested count into the allowed window; anything
// unparsable falls back to the default.
func parseLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return constants.DefaultSuggestionCount
	}
	if limit < 1 {
		return 1
	}
	if limit > constants.MaxSuggestionCount {
		return constants.MaxSuggestionCount
	}
	return limit
}
