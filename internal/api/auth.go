package api

import (
	"context"
	"net/http"
)

const loginPath = "/api/auth/login"

type loginBody struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginData struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a bearer token at the auth service.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var data loginData
	_, err := c.do(ctx, request{
		op:     "login",
		method: http.MethodPost,
		url:    c.authURL + loginPath,
		body:   loginBody{Username: username, Password: password},
		out:    &data,
		validate: func() error {
			if data.Token == "" {
				return shapeError("login", "missing token")
			}
			return nil
		},
	})
	if err != nil {
		return "", err
	}
	return data.Token, nil
}
