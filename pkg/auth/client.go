// Package auth is the front-end for the native authentication service. It
// serializes credential operations onto the bridge and maps the native error
// codes callers branch on to sentinel errors; all protocol and token logic
// lives on the native side.
package auth

import (
	"context"
	"fmt"

	"github.com/menta2k/vision-bridge/pkg/bridge"
)

// User is the account snapshot returned by sign-in operations.
type User struct {
	UID         string
	Email       string
	DisplayName string
	IsAnonymous bool
}

// Client is the authentication front-end. Obtain one from the visionbridge
// façade.
type Client struct {
	ch bridge.Channel
}

// New binds an auth client to a channel.
func New(ch bridge.Channel) *Client {
	return &Client{ch: ch}
}

// SignInWithEmailAndPassword authenticates an existing account.
func (c *Client) SignInWithEmailAndPassword(ctx context.Context, email, password string) (*User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password must not be empty")
	}
	return c.userCall(ctx, "signInWithEmailAndPassword", map[string]any{
		"email":    email,
		"password": password,
	})
}

// CreateUserWithEmailAndPassword registers a new account and signs it in.
func (c *Client) CreateUserWithEmailAndPassword(ctx context.Context, email, password string) (*User, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password must not be empty")
	}
	return c.userCall(ctx, "createUserWithEmailAndPassword", map[string]any{
		"email":    email,
		"password": password,
	})
}

// SendPasswordResetEmail asks the service to mail a reset code.
func (c *Client) SendPasswordResetEmail(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("email must not be empty")
	}
	_, err := c.ch.Invoke(ctx, bridge.AuthChannel, "sendPasswordResetEmail", map[string]any{
		"email": email,
	})
	return wrapError(err)
}

// ConfirmPasswordReset completes a reset started by SendPasswordResetEmail.
func (c *Client) ConfirmPasswordReset(ctx context.Context, oobCode, newPassword string) error {
	if oobCode == "" || newPassword == "" {
		return fmt.Errorf("action code and new password must not be empty")
	}
	_, err := c.ch.Invoke(ctx, bridge.AuthChannel, "confirmPasswordReset", map[string]any{
		"oobCode":     oobCode,
		"newPassword": newPassword,
	})
	return wrapError(err)
}

// SignOut drops the native session.
func (c *Client) SignOut(ctx context.Context) error {
	_, err := c.ch.Invoke(ctx, bridge.AuthChannel, "signOut", nil)
	return wrapError(err)
}

func (c *Client) userCall(ctx context.Context, method string, args map[string]any) (*User, error) {
	reply, err := c.ch.Invoke(ctx, bridge.AuthChannel, method, args)
	if err != nil {
		return nil, wrapError(err)
	}
	m, ok := bridge.Map(reply)
	if !ok {
		return nil, fmt.Errorf("malformed user reply: expected mapping, got %T", reply)
	}
	return &User{
		UID:         bridge.String(m, "uid"),
		Email:       bridge.String(m, "email"),
		DisplayName: bridge.String(m, "displayName"),
		IsAnonymous: bridge.Bool(m, "isAnonymous"),
	}, nil
}
