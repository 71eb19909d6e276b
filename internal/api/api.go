// Package api serves the order tagging endpoints over HTTP.
package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"demo/ordertags/internal/httpx"
	"demo/ordertags/internal/model"
	"demo/ordertags/internal/store"
	"demo/ordertags/internal/validate"
)

// Service is what the handlers need from the service layer.
type Service interface {
	Overview(ctx context.Context) (model.Overview, error)
	Tags(ctx context.Context) ([]model.Tag, error)
	CreateTag(ctx context.Context, value string) (model.Tag, error)
	AssociateTag(ctx context.Context, orderID, tagID int64) error
}

type API struct {
	svc Service
}

func New(svc Service) *API { return &API{svc: svc} }

// Routes returns the router with every endpoint mounted. Cross origin requests
// are allowed from anywhere, with credentials. Unknown paths and methods get a
// JSON detail body, and a path missing only its trailing slash is redirected.
func (a *API) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc:  func(r *http.Request, origin string) bool { return true },
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Method(http.MethodGet, "/", httpx.HandlerFunc(a.Index))
	r.Method(http.MethodPost, "/create_tag/", httpx.HandlerFunc(a.CreateTag))
	r.Method(http.MethodGet, "/tags/", httpx.HandlerFunc(a.Tags))
	r.Method(http.MethodPost, "/associate_tag/", httpx.HandlerFunc(a.AssociateTag))

	// Health
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.NotFound(httpx.HandlerFunc(func(w http.ResponseWriter, req *http.Request) error {
		p := req.URL.Path
		if !strings.HasSuffix(p, "/") && r.Match(chi.NewRouteContext(), req.Method, p+"/") {
			u := *req.URL
			u.Path = p + "/"
			http.Redirect(w, req, u.RequestURI(), http.StatusTemporaryRedirect)
			return nil
		}
		return httpx.Error(http.StatusNotFound, errors.New("Not Found"))
	}).ServeHTTP)
	r.MethodNotAllowed(httpx.HandlerFunc(func(w http.ResponseWriter, req *http.Request) error {
		return httpx.Error(http.StatusMethodNotAllowed, errors.New("Method Not Allowed"))
	}).ServeHTTP)
	return r
}

// Index serves the legacy tag listing and the aggregated orders.
func (a *API) Index(w http.ResponseWriter, r *http.Request) error {
	ov, err := a.svc.Overview(r.Context())
	if err != nil {
		return err
	}
	tags := make([][]string, 0, len(ov.TagValues))
	for _, v := range ov.TagValues {
		tags = append(tags, []string{v})
	}
	orders := make([][]any, 0, len(ov.Orders))
	for _, o := range ov.Orders {
		orders = append(orders, o.Row())
	}
	return httpx.JSON(w, http.StatusOK, map[string]any{
		"tags":   tags,
		"orders": orders,
	})
}

func (a *API) CreateTag(w http.ResponseWriter, r *http.Request) error {
	var in model.TagInput
	if err := httpx.Params(r, &in); err != nil {
		return err
	}
	if err := validate.TagInput(in); err != nil {
		return httpx.Error(http.StatusUnprocessableEntity, err)
	}
	if _, err := a.svc.CreateTag(r.Context(), *in.TagValue); err != nil {
		return httpx.Error(http.StatusBadRequest, err)
	}
	return httpx.JSON(w, http.StatusOK, map[string]any{"message": "Tag created successfully."})
}

func (a *API) Tags(w http.ResponseWriter, r *http.Request) error {
	tags, err := a.svc.Tags(r.Context())
	if err != nil {
		return err
	}
	return httpx.JSON(w, http.StatusOK, map[string]any{"tags": tags})
}

func (a *API) AssociateTag(w http.ResponseWriter, r *http.Request) error {
	var in model.OrderTagInput
	if err := httpx.Params(r, &in); err != nil {
		return err
	}
	if err := validate.OrderTagInput(in); err != nil {
		return httpx.Error(http.StatusUnprocessableEntity, err)
	}
	err := a.svc.AssociateTag(r.Context(), int64(*in.OrderID), int64(*in.TagID))
	switch {
	case errors.Is(err, store.ErrOrderNotFound):
		return httpx.Error(http.StatusNotFound, errors.New("Order not found"))
	case errors.Is(err, store.ErrTagNotFound):
		return httpx.Error(http.StatusNotFound, errors.New("Tag not found"))
	case err != nil:
		return err
	}
	return httpx.JSON(w, http.StatusOK, map[string]any{"message": "Tag associated with the order successfully."})
}
