// nostalgic/routes/content.go
package routes

import (
	"net/http"
	"nostalgic/nostalgic/controllers"
	"nostalgic/nostalgic/middlewares"
	"nostalgic/nostalgic/types"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func ContentRoutes(ctrl *controllers.ContentController, auth middlewares.Authenticator) chi.Router {
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(auth))

		gr.Post("/create", handleJSON(func(r *http.Request) (any, int, error) {
			ident, err := identity(r)
			if err != nil {
				return nil, 0, err
			}
			var req types.CreateContentRequest
			if err := render.DecodeJSON(r.Body, &req); err != nil {
				return nil, 0, invalidInput("malformed JSON body")
			}
			id, err := ctrl.Create(r.Context(), ident, req)
			if err != nil {
				return nil, 0, err
			}
			return success("saved successfully", types.CreateContentResponse{ContentsID: id}), http.StatusOK, nil
		}))

		gr.Get("/mycontent", handleJSON(func(r *http.Request) (any, int, error) {
			ident, err := identity(r)
			if err != nil {
				return nil, 0, err
			}
			ids, err := ctrl.ListByUser(r.Context(), ident.Username)
			if err != nil {
				return nil, 0, err
			}
			return success("loaded successfully", types.ContentIDsResponse{ContentIDs: ids}), http.StatusOK, nil
		}))
	})
	return r
}
