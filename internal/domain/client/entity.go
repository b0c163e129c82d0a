package client

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Client struct {
	id        uuid.UUID
	fullName  string
	email     Email
	createdAt time.Time
	updatedAt time.Time
}

func NewClient(id uuid.UUID, fullName string, email Email) (*Client, error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return nil, ErrInvalidFullName
	}
	if email.Value() == "" {
		return nil, ErrInvalidEmail
	}
	return &Client{
		id:       id,
		fullName: fullName,
		email:    email,
	}, nil
}

func ReconstructClient(id uuid.UUID, fullName string, email Email, createdAt, updatedAt time.Time) *Client {
	return &Client{
		id:        id,
		fullName:  fullName,
		email:     email,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (c *Client) DisplayName() string {
	return c.fullName
}

func (c *Client) ID() uuid.UUID        { return c.id }
func (c *Client) FullName() string     { return c.fullName }
func (c *Client) Email() Email         { return c.email }
func (c *Client) CreatedAt() time.Time { return c.createdAt }
func (c *Client) UpdatedAt() time.Time { return c.updatedAt }
