package api

import (
	"context"
	"net/http"
	"strconv"
)

// Resource is the CRUD surface shared by every admin entity. Ids are
// addressed as BasePath/{id}.
type Resource[T any] struct {
	client   *Client
	BasePath string
	Auth     bool
}

func NewResource[T any](client *Client, basePath string, auth bool) *Resource[T] {
	return &Resource[T]{client: client, BasePath: basePath, Auth: auth}
}

func (r *Resource[T]) itemPath(id int) string {
	return r.BasePath + "/" + strconv.Itoa(id)
}

func (r *Resource[T]) List(ctx context.Context) ([]T, error) {
	var out []T
	if err := r.client.doJSON(ctx, http.MethodGet, r.BasePath, nil, &out, r.Auth); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Resource[T]) Get(ctx context.Context, id int) (*T, error) {
	var out T
	if err := r.client.doJSON(ctx, http.MethodGet, r.itemPath(id), nil, &out, r.Auth); err != nil {
		return nil, err
	}
	return &out, nil
}

// Create posts body, which may be a T or a request type such as CreateAdminRequest.
func (r *Resource[T]) Create(ctx context.Context, body interface{}) (*T, error) {
	var out T
	if err := r.client.doJSON(ctx, http.MethodPost, r.BasePath, body, &out, r.Auth); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Resource[T]) Update(ctx context.Context, id int, body interface{}) (*T, error) {
	var out T
	if err := r.client.doJSON(ctx, http.MethodPut, r.itemPath(id), body, &out, r.Auth); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *Resource[T]) Delete(ctx context.Context, id int) error {
	return r.client.doJSON(ctx, http.MethodDelete, r.itemPath(id), nil, nil, r.Auth)
}
