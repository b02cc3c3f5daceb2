// nostalgic/routes/image.go
package routes

import (
	"errors"
	"mime/multipart"
	"net/http"
	"nostalgic/nostalgic/controllers"
	"nostalgic/nostalgic/middlewares"
	"nostalgic/nostalgic/types"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// maxMemory bounds the multipart parts kept in memory; larger parts spill to
// temporary files.
const maxMemory = 32 << 20

func parseMultipart(r *http.Request) error {
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return invalidInput("expected multipart/form-data")
		}
		return invalidInput("malformed multipart body")
	}
	return nil
}

func attach(fh *multipart.FileHeader, save func(name string, f multipart.File) (int, error)) (int, error) {
	f, err := fh.Open()
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return save(fh.Filename, f)
}

// UserImageRoutes serves the caller's profile image.
func UserImageRoutes(ctrl *controllers.ImageController, auth middlewares.Authenticator) chi.Router {
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(auth))

		gr.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
			ident, err := identity(r)
			if err != nil {
				return nil, 0, err
			}
			if err := parseMultipart(r); err != nil {
				return nil, 0, err
			}
			files := r.MultipartForm.File["file"]
			if len(files) == 0 {
				return nil, 0, controllers.ErrNoFiles
			}
			id, err := attach(files[0], func(name string, f multipart.File) (int, error) {
				return ctrl.AttachToUser(r.Context(), ident, name, f)
			})
			if err != nil {
				return nil, 0, err
			}
			return success("saved successfully", types.ImageIDsResponse{ImageIDs: []int{id}}), http.StatusOK, nil
		}))

		gr.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
			ident, err := identity(r)
			if err != nil {
				return nil, 0, err
			}
			address, err := ctrl.GetUserImage(r.Context(), ident.Username)
			if err != nil {
				return nil, 0, err
			}
			return success("image loaded", types.UserImageResponse{ImageAddress: address}), http.StatusOK, nil
		}))
	})
	return r
}

// ContentImageRoutes serves images attached to content.
func ContentImageRoutes(ctrl *controllers.ImageController, auth middlewares.Authenticator) chi.Router {
	r := chi.NewRouter()
	r.Group(func(gr chi.Router) {
		gr.Use(middlewares.AuthMiddleware(auth))

		gr.Post("/", handleJSON(func(r *http.Request) (any, int, error) {
			if err := parseMultipart(r); err != nil {
				return nil, 0, err
			}
			contentID, err := strconv.Atoi(r.FormValue("content_id"))
			if err != nil {
				return nil, 0, invalidInput("content_id must be an integer")
			}
			files := r.MultipartForm.File["files"]
			if len(files) == 0 {
				return nil, 0, controllers.ErrNoFiles
			}

			ids := make([]int, 0, len(files))
			for _, fh := range files {
				id, err := attach(fh, func(name string, f multipart.File) (int, error) {
					return ctrl.AttachToContent(r.Context(), contentID, name, f)
				})
				if err != nil {
					return nil, 0, err
				}
				ids = append(ids, id)
			}
			return success("saved successfully", types.ImageIDsResponse{ImageIDs: ids}), http.StatusOK, nil
		}))

		gr.Get("/", handleJSON(func(r *http.Request) (any, int, error) {
			raw := r.URL.Query()["content_ids"]
			if len(raw) == 0 {
				return nil, 0, invalidInput("content_ids is required")
			}
			ids := make([]int, 0, len(raw))
			for _, s := range raw {
				id, err := strconv.Atoi(s)
				if err != nil {
					return nil, 0, invalidInput("content_ids must be integers")
				}
				ids = append(ids, id)
			}
			images, err := ctrl.GetContentImages(r.Context(), ids)
			if err != nil {
				return nil, 0, err
			}
			return success("images loaded", types.ContentImagesResponse{ContentImages: images}), http.StatusOK, nil
		}))
	})
	return r
}
