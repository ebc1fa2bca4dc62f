package crm

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gatherly/events-api/internal/core/domain"
)

const usersPath = "/users"

// UserRepository implements ports.UserRepository against the org's custom
// users resource, normalizing CRM field names to the domain model.
type UserRepository struct {
	client *Client
}

func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{client: client}
}

// sfUser mirrors the Custom_Users__c schema.
type sfUser struct {
	ID       string `json:"Id,omitempty"`
	Name     string `json:"Name"`
	Email    string `json:"Email__c"`
	Password string `json:"Password__c,omitempty"`
	Role     string `json:"Role__c"`
}

func (u sfUser) toDomain() *domain.User {
	return &domain.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.Password,
		Role:         u.Role,
	}
}

func toSFUser(u *domain.User) sfUser {
	return sfUser{
		ID:       u.ID,
		Name:     u.Name,
		Email:    u.Email,
		Password: u.PasswordHash,
		Role:     u.Role,
	}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	data, err := r.client.do(ctx, http.MethodPost, usersPath, "", toSFUser(user), http.StatusCreated)
	if err != nil {
		return nil, err
	}

	var created sfUser
	if err := decodeData(data, &created); err != nil {
		return nil, fmt.Errorf("decode created user: %w", err)
	}
	return created.toDomain(), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	path := usersPath + "?email=" + url.QueryEscape(email)
	data, err := r.client.do(ctx, http.MethodGet, path, "", nil, http.StatusOK)
	if err != nil {
		return nil, translateNotFound(err, "User", email)
	}

	var found sfUser
	if err := decodeData(data, &found); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return found.toDomain(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, actorID, id string) (*domain.User, error) {
	data, err := r.client.do(ctx, http.MethodGet, usersPath+"/"+id, actorID, nil, http.StatusOK)
	if err != nil {
		return nil, translateNotFound(err, "User", id)
	}

	var found sfUser
	if err := decodeData(data, &found); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return found.toDomain(), nil
}

func (r *UserRepository) Update(ctx context.Context, actorID string, user *domain.User) (*domain.User, error) {
	data, err := r.client.do(ctx, http.MethodPut, usersPath+"/"+user.ID, actorID, toSFUser(user), http.StatusOK)
	if err != nil {
		return nil, translateNotFound(err, "User", user.ID)
	}

	var updated sfUser
	if err := decodeData(data, &updated); err != nil {
		return nil, fmt.Errorf("decode updated user: %w", err)
	}
	return updated.toDomain(), nil
}

func (r *UserRepository) Delete(ctx context.Context, actorID, id string, force bool) error {
	path := usersPath + "/" + id
	if force {
		path += "?force=true"
	}
	_, err := r.client.do(ctx, http.MethodDelete, path, actorID, nil, http.StatusOK)
	return translateNotFound(err, "User", id)
}
