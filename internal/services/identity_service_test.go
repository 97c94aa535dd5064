package services_test

import (
	"context"
	"testing"

	"github.com/amberpay/go-weavr-sync/internal/common"
	"github.com/amberpay/go-weavr-sync/internal/common/metrics"
	"github.com/amberpay/go-weavr-sync/internal/config"
	"github.com/amberpay/go-weavr-sync/internal/models"
	"github.com/amberpay/go-weavr-sync/internal/repositories/mock"
	"github.com/amberpay/go-weavr-sync/internal/services"
	"github.com/amberpay/go-weavr-sync/internal/weavr"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func pendingIdentity(id uint64, kind models.IdentityKind) models.Identity {
	return models.Identity{
		ID:         id,
		Kind:       kind,
		Name:       "Jane Smith",
		Email:      "jane@example.com",
		SyncStatus: models.SyncStatusPending,
	}
}

func TestIdentitySyncCreation(t *testing.T) {
	type args struct {
		identityID uint64
	}

	tests := []struct {
		name         string
		args         args
		doMock       func(h testServiceHelper, args args)
		wantSuccess  bool
		wantRemoteID string
	}{
		{
			name: "consumer goes through the consumer endpoint",
			args: args{identityID: 1},
			doMock: func(h testServiceHelper, args args) {
				h.mockIdentityRepository.EXPECT().
					GetOneByID(gomock.Any(), args.identityID).
					Return(pendingIdentity(args.identityID, models.IdentityKindConsumer), nil)
				h.mockWeavrClient.EXPECT().
					CreateConsumer(gomock.Any(), gomock.Any(), weavr.CreateIdentityRequest{
						ProfileID: "consumer-profile-1",
						Name:      "Jane Smith",
						Email:     "jane@example.com",
						Tag:       "identity-1",
					}).
					Return(&weavr.IdentityResponse{ID: "cons-1"}, nil)
				h.mockIdentityRepository.EXPECT().
					MarkSynced(gomock.Any(), args.identityID, "cons-1", gomock.Any()).
					Return(nil)
			},
			wantSuccess:  true,
			wantRemoteID: "cons-1",
		},
		{
			name: "corporate goes through the corporate endpoint",
			args: args{identityID: 2},
			doMock: func(h testServiceHelper, args args) {
				h.mockIdentityRepository.EXPECT().
					GetOneByID(gomock.Any(), args.identityID).
					Return(pendingIdentity(args.identityID, models.IdentityKindCorporate), nil)
				h.mockWeavrClient.EXPECT().
					CreateCorporate(gomock.Any(), gomock.Any(), weavr.CreateIdentityRequest{
						ProfileID: "corporate-profile-1",
						Name:      "Jane Smith",
						Email:     "jane@example.com",
						Tag:       "identity-2",
					}).
					Return(&weavr.IdentityResponse{ID: "corp-1"}, nil)
				h.mockIdentityRepository.EXPECT().
					MarkSynced(gomock.Any(), args.identityID, "corp-1", gomock.Any()).
					Return(nil)
			},
			wantSuccess:  true,
			wantRemoteID: "corp-1",
		},
		{
			name: "already synced identity makes no remote call",
			args: args{identityID: 3},
			doMock: func(h testServiceHelper, args args) {
				ident := pendingIdentity(args.identityID, models.IdentityKindConsumer)
				ident.RemoteID = strPtr("cons-3")
				ident.SyncStatus = models.SyncStatusSynced
				h.mockIdentityRepository.EXPECT().
					GetOneByID(gomock.Any(), args.identityID).
					Return(ident, nil)
			},
			wantSuccess:  true,
			wantRemoteID: "cons-3",
		},
		{
			name: "permanent failure flags review",
			args: args{identityID: 4},
			doMock: func(h testServiceHelper, args args) {
				h.mockIdentityRepository.EXPECT().
					GetOneByID(gomock.Any(), args.identityID).
					Return(pendingIdentity(args.identityID, models.IdentityKindConsumer), nil)
				h.mockWeavrClient.EXPECT().
					CreateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &weavr.APIError{StatusCode: 409, Code: "EMAIL_TAKEN"})
				h.mockIdentityRepository.EXPECT().
					MarkSyncFailed(gomock.Any(), args.identityID, gomock.Any(), true).
					Return(nil)
			},
		},
		{
			name: "transient failure stays retryable",
			args: args{identityID: 5},
			doMock: func(h testServiceHelper, args args) {
				h.mockIdentityRepository.EXPECT().
					GetOneByID(gomock.Any(), args.identityID).
					Return(pendingIdentity(args.identityID, models.IdentityKindConsumer), nil)
				h.mockWeavrClient.EXPECT().
					CreateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, &weavr.APIError{StatusCode: 502})
				h.mockIdentityRepository.EXPECT().
					MarkSyncFailed(gomock.Any(), args.identityID, gomock.Any(), false).
					Return(nil)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			h := serviceTestHelper(t)
			tt.doMock(h, tt.args)

			res := h.services.Identity.SyncCreation(context.Background(), weavr.Credentials{}, tt.args.identityID)

			assert.Equal(t, tt.wantSuccess, res.Success)
			if tt.wantSuccess {
				assert.Equal(t, tt.wantRemoteID, res.RemoteID)
			} else {
				assert.Error(t, res.Err)
			}
		})
	}
}

func TestIdentityCreate(t *testing.T) {
	t.Run("rejects an invalid email", func(t *testing.T) {
		h := serviceTestHelper(t)

		_, err := h.services.Identity.Create(context.Background(), models.CreateIdentity{
			Kind:  models.IdentityKindConsumer,
			Name:  "Jane Smith",
			Email: "not-an-email",
		})

		assert.Error(t, err)
	})

	t.Run("persists a valid identity", func(t *testing.T) {
		h := serviceTestHelper(t)

		in := models.CreateIdentity{
			Kind:  models.IdentityKindConsumer,
			Name:  "Jane Smith",
			Email: "jane@example.com",
		}
		h.mockIdentityRepository.EXPECT().
			Create(gomock.Any(), in).
			Return(models.Identity{ID: 1, Kind: in.Kind, Name: in.Name, Email: in.Email}, nil)

		out, err := h.services.Identity.Create(context.Background(), in)

		assert.NoError(t, err)
		assert.Equal(t, uint64(1), out.ID)
	})
}

func TestIdentitySyncCreationMetricLabelWhenLookupFails(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockSQLRepository := mock.NewMockSQLRepository(mockCtrl)
	mockIdentityRepository := mock.NewMockIdentityRepository(mockCtrl)
	mockSQLRepository.EXPECT().GetIdentityRepository().Return(mockIdentityRepository).AnyTimes()
	mockIdentityRepository.EXPECT().
		GetOneByID(gomock.Any(), uint64(7)).
		Return(models.Identity{}, common.ErrIdentityNotFound)

	reg := prometheus.NewRegistry()
	serv := services.New(config.Config{}, mockSQLRepository, nil, nil, nil, metrics.NewWithRegisterer(reg))

	res := serv.Identity.SyncCreation(context.Background(), weavr.Credentials{}, 7)
	assert.False(t, res.Success)

	// the kind is unknown before the row loads, so the counter must not be
	// attributed to either concrete identity kind
	families, err := reg.Gather()
	require.NoError(t, err)

	var entityLabel string
	for _, family := range families {
		if family.GetName() != "weavr_sync_operations_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "entity" {
					entityLabel = label.GetValue()
				}
			}
		}
	}
	assert.Equal(t, "identity", entityLabel)
}
