package client

import (
	"context"

	"github.com/dmitrijs2005/gophdemo/internal/client/models"
)

type Client interface {
	Status(ctx context.Context) (*models.ServerStatus, error)
	Login(ctx context.Context, username, password string) (*models.LoginResult, error)
	Users(ctx context.Context) (*models.UserList, error)
	ProcessData(ctx context.Context, action, data string) (*models.ProcessResult, error)
	BaseURL() string
}
