package engagement

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/nhatlepham/inkwell/internal/platform/request"
	"github.com/nhatlepham/inkwell/internal/platform/respond"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// ViewRoutes returns the view counter route group.
//
// # Endpoints
//   - GET  /{path...} : Current view count.
//   - POST /{path...} : Record a view for the submitting visitor.
func (handler *Handler) ViewRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/*", handler.getViews)
	router.Post("/*", handler.recordView)
	return router
}

// LikeRoutes returns the like counter route group.
func (handler *Handler) LikeRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/*", handler.getLikes)
	router.Post("/*", handler.addLike)
	return router
}

// ReactionRoutes returns the reaction route group.
func (handler *Handler) ReactionRoutes() chi.Router {
	router := chi.NewRouter()
	router.Get("/*", handler.getReactions)
	router.Post("/*", handler.setReaction)
	return router
}

// viewRequest is the POST body for recording a view.
type viewRequest struct {
	VisitorID string `json:"visitor_id"`
}

// reactionRequest is the POST body for choosing a reaction. PreviousReaction
// is accepted for wire compatibility but ignored: the store is authoritative
// about what the visitor had chosen before.
type reactionRequest struct {
	Reaction         string `json:"reaction"`
	PreviousReaction string `json:"previous_reaction,omitempty"`
	VisitorID        string `json:"visitor_id"`
}

// okResponse acknowledges a counter write.
type okResponse struct {
	OK bool `json:"ok"`
}

func (handler *Handler) getViews(writer http.ResponseWriter, request *http.Request) {
	path := contentPath(request)

	count, err := handler.service.Views(request.Context(), path)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, count)
}

func (handler *Handler) recordView(writer http.ResponseWriter, request *http.Request) {
	path := contentPath(request)

	var body viewRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.RecordView(request.Context(), path, visitorID(request, body.VisitorID))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

func (handler *Handler) getLikes(writer http.ResponseWriter, request *http.Request) {
	path := contentPath(request)

	count, err := handler.service.Likes(request.Context(), path)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, count)
}

func (handler *Handler) addLike(writer http.ResponseWriter, request *http.Request) {
	path := contentPath(request)

	if err := handler.service.AddLike(request.Context(), path); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, okResponse{OK: true})
}

func (handler *Handler) getReactions(writer http.ResponseWriter, request *http.Request) {
	path := contentPath(request)

	summary, err := handler.service.Reactions(request.Context(), path, visitorID(request, request.URL.Query().Get("visitor_id")))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, summary)
}

func (handler *Handler) setReaction(writer http.ResponseWriter, request *http.Request) {
	path := contentPath(request)

	var body reactionRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	err := handler.service.SetReaction(request.Context(), path, visitorID(request, body.VisitorID), Kind(body.Reaction))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, okResponse{OK: true})
}

// contentPath rebuilds the post path key from the wildcard segments.
func contentPath(request *http.Request) string {
	return strings.Join(requestutil.PathSegments(request), "/")
}

// visitorID prefers the explicitly supplied identifier, falling back to the
// verified visitor token when the request carried one.
func visitorID(request *http.Request, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if claims := requestutil.Visitor(request); claims != nil {
		return claims.VisitorID
	}
	return ""
}
