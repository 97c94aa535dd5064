package services

import (
	"context"
	"fmt"
	"time"

	"github.com/amberpay/go-weavr-sync/internal/common/validation"
	"github.com/amberpay/go-weavr-sync/internal/common/xlog"
	"github.com/amberpay/go-weavr-sync/internal/models"
	"github.com/amberpay/go-weavr-sync/internal/monitoring"
	"github.com/amberpay/go-weavr-sync/internal/weavr"
)

type IdentityService interface {
	Create(ctx context.Context, in models.CreateIdentity) (out models.Identity, err error)
	GetOneByID(ctx context.Context, id uint64) (result models.Identity, err error)
	ClearReview(ctx context.Context, id uint64) (err error)

	SyncCreation(ctx context.Context, creds weavr.Credentials, identityID uint64) models.SyncResult
}

type identity service

var _ IdentityService = (*identity)(nil)

func (is *identity) Create(ctx context.Context, in models.CreateIdentity) (out models.Identity, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if err = validation.ValidateStruct(in); err != nil {
		return
	}

	out, err = is.srv.sqlRepo.GetIdentityRepository().Create(ctx, in)
	if err != nil {
		err = checkDatabaseError(err)
		return
	}

	return
}

func (is *identity) GetOneByID(ctx context.Context, id uint64) (result models.Identity, err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	result, err = is.srv.sqlRepo.GetIdentityRepository().GetOneByID(ctx, id)
	if err != nil {
		err = checkDatabaseError(err, models.ErrKeyIdentityNotFound)
		return
	}

	return
}

func (is *identity) ClearReview(ctx context.Context, id uint64) (err error) {
	monitor := monitoring.New(ctx)
	defer monitor.Finish(monitoring.WithFinishCheckError(err))

	if _, err = is.srv.sqlRepo.GetIdentityRepository().GetOneByID(ctx, id); err != nil {
		err = checkDatabaseError(err, models.ErrKeyIdentityNotFound)
		return
	}

	if err = is.srv.sqlRepo.GetIdentityRepository().ClearReview(ctx, id); err != nil {
		err = checkDatabaseError(err)
		return
	}

	return
}

// SyncCreation pushes a consumer or corporate identity to the remote
// system. The two kinds share everything but the remote endpoint and the
// profile id.
func (is *identity) SyncCreation(ctx context.Context, creds weavr.Credentials, identityID uint64) (res models.SyncResult) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(res.Err)) }()

	creds = is.srv.credentials(creds)

	ident, err := is.srv.sqlRepo.GetIdentityRepository().GetOneByID(ctx, identityID)
	if err != nil {
		res = models.SyncResultErr(checkDatabaseError(err, models.ErrKeyIdentityNotFound), false)
		is.recordSyncMetric(ident.Kind, res)
		return
	}
	defer func() { is.recordSyncMetric(ident.Kind, res) }()

	if ident.HasRemoteID() {
		return models.SyncResultOK(*ident.RemoteID)
	}

	req := weavr.CreateIdentityRequest{
		Name:  ident.Name,
		Email: ident.Email,
		Tag:   fmt.Sprintf("identity-%d", ident.ID),
	}

	var resp *weavr.IdentityResponse
	switch ident.Kind {
	case models.IdentityKindCorporate:
		req.ProfileID = is.srv.conf.Weavr.CorporateProfileID
		resp, err = is.srv.weavr.CreateCorporate(ctx, creds, req)
	default:
		req.ProfileID = is.srv.conf.Weavr.ConsumerProfileID
		resp, err = is.srv.weavr.CreateConsumer(ctx, creds, req)
	}
	if err != nil {
		retryable := weavr.IsTransient(err)
		review := !retryable || ident.SyncAttempts+1 >= is.srv.conf.Recon.MaxSyncAttemptsOrDefault()

		if markErr := is.srv.sqlRepo.GetIdentityRepository().
			MarkSyncFailed(ctx, ident.ID, err.Error(), review); markErr != nil {
			xlog.Error(ctx, "[SERVICE] failed to record identity sync failure",
				xlog.Uint64("identityId", ident.ID), xlog.Err(markErr))
		}

		xlog.Warn(ctx, "[SERVICE] identity sync failed",
			xlog.Uint64("identityId", ident.ID),
			xlog.String("kind", string(ident.Kind)),
			xlog.Bool("retryable", retryable),
			xlog.Err(err))

		return models.SyncResultErr(checkRemoteError(err), retryable)
	}

	if err = is.srv.sqlRepo.GetIdentityRepository().
		MarkSynced(ctx, ident.ID, resp.ID, time.Now()); err != nil {
		xlog.Error(ctx, "[SERVICE] remote identity created but local writeback failed",
			xlog.Uint64("identityId", ident.ID), xlog.String("remoteId", resp.ID), xlog.Err(err))
		return models.SyncResultErr(checkDatabaseError(err), true)
	}

	return models.SyncResultOK(resp.ID)
}

// recordSyncMetric labels the counter by identity kind; a failed lookup has
// no kind yet and falls back to the generic label.
func (is *identity) recordSyncMetric(kind models.IdentityKind, res models.SyncResult) {
	entity := "identity"
	switch kind {
	case models.IdentityKindConsumer:
		entity = "consumer"
	case models.IdentityKindCorporate:
		entity = "corporate"
	}
	is.srv.metrics.GetSyncPrometheus().Record(entity, "create", syncOutcome(res))
}
