package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/yongxin12/Macrohard/internal/domain"
	"github.com/yongxin12/Macrohard/internal/service"
	"github.com/yongxin12/Macrohard/internal/store/sample"
	"github.com/yongxin12/Macrohard/mocks"
)

func TestClientService_ListSampleRoster(t *testing.T) {
	svc := service.NewClientService(sample.NewDirectory(), domain.SourceMock)

	clients, source, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SourceMock, source)
	require.Len(t, clients, 3)
	assert.Equal(t, "client1", clients[0].ID)
	assert.Equal(t, "John Doe", clients[0].Name)
}

func TestClientService_GetUnknownClientIs404InAnyMode(t *testing.T) {
	demoSvc := service.NewClientService(sample.NewDirectory(), domain.SourceMock)
	_, err := demoSvc.Get(context.Background(), "client999")
	assert.ErrorIs(t, err, domain.ErrClientNotFound)

	directory := new(mocks.MockClientDirectory)
	directory.On("GetClient", mock.Anything, "client999").Return(nil, domain.ErrClientNotFound)
	liveSvc := service.NewClientService(directory, domain.SourceLive)
	_, err = liveSvc.Get(context.Background(), "client999")
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestClientService_ListFallsBackOnDirectoryError(t *testing.T) {
	directory := new(mocks.MockClientDirectory)
	directory.On("ListClients", mock.Anything).Return(nil, errors.New("firestore down"))

	svc := service.NewClientService(directory, domain.SourceLive)
	clients, source, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SourceFallback, source)
	assert.Len(t, clients, 3)
}

func TestClientService_GetFallsBackToSampleOnDirectoryError(t *testing.T) {
	directory := new(mocks.MockClientDirectory)
	directory.On("GetClient", mock.Anything, "client2").Return(nil, errors.New("firestore down"))

	svc := service.NewClientService(directory, domain.SourceLive)
	client, err := svc.Get(context.Background(), "client2")
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", client.Name)
	assert.Equal(t, domain.SourceFallback, client.Source)
}
