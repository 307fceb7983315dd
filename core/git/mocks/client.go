package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of git.Client
type Client struct {
	mock.Mock
}

func (m *Client) Clone(ctx context.Context, url, branch, dir string) error {
	args := m.Called(ctx, url, branch, dir)
	return args.Error(0)
}
