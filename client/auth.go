package client

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// User is the account document the auth endpoints return.
type User struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	Name          *string    `json:"name"`
	Image         *string    `json:"image"`
	ActiveHotelID *string    `json:"activeHotelId"`
	LastLoginAt   *time.Time `json:"lastLoginAt"`
	IsSuperAdmin  bool       `json:"isSuperAdmin"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// SignUp registers an account. The caller still needs to sign in afterwards.
func (c *Client) SignUp(ctx context.Context, email, password, name string) (*User, error) {
	env, err := c.do(ctx, http.MethodPost, c.cfg.AuthURL+"/sign-up", signUpRequest{
		Email:    email,
		Password: password,
		Name:     name,
	}, "sign up failed")
	if err != nil {
		return nil, err
	}

	var u User
	if err := json.Unmarshal(env.Data, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// SignIn authenticates and primes the cookie jar with the session cookie,
// so every later call on this client is credentialed.
func (c *Client) SignIn(ctx context.Context, email, password string) (*User, error) {
	env, err := c.do(ctx, http.MethodPost, c.cfg.AuthURL+"/sign-in", signInRequest{
		Email:    email,
		Password: password,
	}, "sign in failed")
	if err != nil {
		return nil, err
	}

	var resp signInResponse
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		return nil, err
	}
	return &resp.User, nil
}

// SignOut invalidates the server-side cookie and clears the local session
// snapshot and cache.
func (c *Client) SignOut(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, c.cfg.AuthURL+"/sign-out", nil, "sign out failed")
	if err != nil {
		return err
	}

	c.sessionMu.Lock()
	c.session = nil
	c.sessionMu.Unlock()
	c.cache.Clear()
	return nil
}
