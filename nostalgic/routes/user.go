// nostalgic/routes/user.go
package routes

import (
	"net/http"
	"nostalgic/nostalgic/controllers"
	"nostalgic/nostalgic/middlewares"
	"nostalgic/nostalgic/types"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

func UserRoutes(ctrl *controllers.AuthController) chi.Router {
	r := chi.NewRouter()

	r.Post("/create", handleJSON(func(r *http.Request) (any, int, error) {
		var req types.CreateUserRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			return nil, 0, invalidInput("malformed JSON body")
		}
		if err := ctrl.Register(r.Context(), req); err != nil {
			return nil, 0, err
		}
		return success("created successfully", nil), http.StatusOK, nil
	}))

	r.Post("/login", handleJSON(func(r *http.Request) (any, int, error) {
		resp, err := login(ctrl, r)
		if err != nil {
			return nil, 0, err
		}
		return success("logged in successfully", resp), http.StatusOK, nil
	}))

	// OAuth2 password flow endpoint; replies without the envelope.
	r.Post("/token", handleJSON(func(r *http.Request) (any, int, error) {
		resp, err := login(ctrl, r)
		if err != nil {
			return nil, 0, err
		}
		return types.TokenResponse{AccessToken: resp.AccessToken, TokenType: resp.TokenType}, http.StatusOK, nil
	}))

	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(ctrl))
		gr.Get("/me", handleJSON(func(r *http.Request) (any, int, error) {
			ident, err := identity(r)
			if err != nil {
				return nil, 0, err
			}
			return ident, http.StatusOK, nil
		}))
	})
	return r
}

func login(ctrl *controllers.AuthController, r *http.Request) (*types.LoginResponse, error) {
	if err := r.ParseForm(); err != nil {
		return nil, invalidInput("malformed form body")
	}
	return ctrl.Login(r.Context(), r.PostFormValue("username"), r.PostFormValue("password"))
}
