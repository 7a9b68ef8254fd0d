package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"socialcosmos/internal/domain"
	"socialcosmos/internal/logging"
)

// Handler carries the services the HTTP surface dispatches into.
type Handler struct {
	credentials domain.CredentialService
	feed        domain.PostService
	chat        domain.MessageService
	sessions    domain.SessionService
	log         logging.Logger
}

// NewHandler returns a Handler over the given services.
func NewHandler(
	credentials domain.CredentialService,
	feed domain.PostService,
	chat domain.MessageService,
	sessions domain.SessionService,
	log logging.Logger,
) *Handler {
	return &Handler{
		credentials: credentials,
		feed:        feed,
		chat:        chat,
		sessions:    sessions,
		log:         log,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Confirm  string `json:"confirm"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

type loginResponse struct {
	Username     string `json:"username"`
	AccessToken  string `json:"access_token"`
	SessionToken string `json:"session_token,omitempty"`
}

type profileResponse struct {
	Username string `json:"username"`
	Bio      string `json:"bio"`
}

type updateBioRequest struct {
	Bio string `json:"bio"`
}

type createPostRequest struct {
	Content string `json:"content"`
	Image   []byte `json:"image,omitempty"`
}

type sendMessageRequest struct {
	Content string `json:"content"`
}

type callResponse struct {
	Room   string `json:"room"`
	Caller string `json:"caller"`
	Peer   string `json:"peer"`
}

// Health is a liveness probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Register creates a new profile.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.credentials.Register(domain.Username(req.Username), req.Password, req.Confirm); err != nil {
		respondError(w, registrationStatus(err), err)
		return
	}
	respond(w, http.StatusCreated, map[string]string{"username": req.Username})
}

func registrationStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrDuplicateUsername):
		return http.StatusConflict
	case errors.Is(err, domain.ErrPasswordMismatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Login authenticates and hands back the client's tokens.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	result, err := h.sessions.Login(domain.Username(req.Username), req.Password, req.Remember)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			respondError(w, http.StatusUnauthorized, err)
		} else {
			respondError(w, http.StatusInternalServerError, err)
		}
		return
	}
	respond(w, http.StatusOK, loginResponse{
		Username:     result.Username.String(),
		AccessToken:  result.AccessToken,
		SessionToken: result.SessionToken,
	})
}

// ListUsers returns all usernames for the chat and call user pickers.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	names, err := h.credentials.ListUsernames()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	usernames := make([]string, 0, len(names))
	for _, name := range names {
		usernames = append(usernames, name.String())
	}
	respond(w, http.StatusOK, map[string][]string{"usernames": usernames})
}

// GetProfile returns the public view of a profile. The credential hash never
// leaves the service.
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	username := domain.Username(mux.Vars(r)["username"])
	p, err := h.credentials.Profile(username)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownUser) {
			respondError(w, http.StatusNotFound, err)
		} else {
			respondError(w, http.StatusInternalServerError, err)
		}
		return
	}
	respond(w, http.StatusOK, profileResponse{Username: p.Username.String(), Bio: p.Bio})
}

// UpdateBio overwrites the caller's bio. Only the owning user can edit a
// bio, so anonymous callers are rejected.
func (h *Handler) UpdateBio(w http.ResponseWriter, r *http.Request) {
	who := identityFrom(r)
	if who.IsAnonymous() {
		respondError(w, http.StatusUnauthorized, domain.ErrInvalidCredentials)
		return
	}
	var req updateBioRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.credentials.UpdateBio(who, req.Bio); err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respond(w, http.StatusOK, profileResponse{Username: who.String(), Bio: req.Bio})
}

// ListPosts returns the feed, shuffled when ?shuffle=1 is set.
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request) {
	shuffle := r.URL.Query().Get("shuffle") == "1"
	posts, err := h.feed.Feed(shuffle)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	respond(w, http.StatusOK, map[string][]domain.Post{"posts": posts})
}

// CreatePost appends a post authored by the caller's identity; anonymous
// posting is allowed.
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.feed.Create(identityFrom(r), req.Content, req.Image); err != nil {
		if errors.Is(err, domain.ErrEmptyContent) {
			respondError(w, http.StatusBadRequest, err)
		} else {
			respondError(w, http.StatusInternalServerError, err)
		}
		return
	}
	respond(w, http.StatusCreated, map[string]string{"author": identityFrom(r).String()})
}

// GetHistory returns the thread between the caller and {peer}.
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	peer := domain.Username(mux.Vars(r)["peer"])
	history, err := h.chat.History(identityFrom(r), peer)
	if err != nil {
		respondError(w, http.StatusInternalServerError, err)
		return
	}
	if history == nil {
		history = []domain.Message{}
	}
	respond(w, http.StatusOK, map[string][]domain.Message{"messages": history})
}

// SendMessage appends a message from the caller to {peer}.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	peer := domain.Username(mux.Vars(r)["peer"])
	var req sendMessageRequest
	if err := decode(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	if err := h.chat.Send(identityFrom(r), peer, req.Content); err != nil {
		if errors.Is(err, domain.ErrEmptyContent) {
			respondError(w, http.StatusBadRequest, err)
		} else {
			respondError(w, http.StatusInternalServerError, err)
		}
		return
	}
	respond(w, http.StatusCreated, map[string]string{"sender": identityFrom(r).String()})
}

// StartCall allocates a placeholder room for a video call with {peer}. The
// room identifier is handed to the front end's external WebRTC component;
// no media or signaling happens here.
func (h *Handler) StartCall(w http.ResponseWriter, r *http.Request) {
	peer := domain.Username(mux.Vars(r)["peer"])
	if _, err := h.credentials.Profile(peer); err != nil {
		if errors.Is(err, domain.ErrUnknownUser) {
			respondError(w, http.StatusNotFound, err)
		} else {
			respondError(w, http.StatusInternalServerError, err)
		}
		return
	}
	respond(w, http.StatusCreated, callResponse{
		Room:   "room-" + uuid.NewString(),
		Caller: identityFrom(r).String(),
		Peer:   peer.String(),
	})
}

func decode(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, status int, err error) {
	respond(w, status, errorResponse{Error: err.Error()})
}
