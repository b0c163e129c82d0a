//go:build unit || e2e

package builder

import (
	"fleetdesk/internal/domain/client"

	"github.com/google/uuid"
)

type ClientBuilder struct {
	ID       uuid.UUID
	FullName string
	Email    string
}

func NewClientBuilder() *ClientBuilder {
	return &ClientBuilder{
		ID:       uuid.New(),
		FullName: "Jane Doe",
		Email:    "jane@example.com",
	}
}

func (b *ClientBuilder) With(mutate func(*ClientBuilder)) *ClientBuilder {
	mutate(b)
	return b
}

func (b *ClientBuilder) BuildDomain() *client.Client {
	email, err := client.NewEmail(b.Email)
	if err != nil {
		panic(err)
	}
	c, err := client.NewClient(b.ID, b.FullName, email)
	if err != nil {
		panic(err)
	}
	return c
}
