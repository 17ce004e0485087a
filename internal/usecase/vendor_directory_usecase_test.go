package usecase

import (
	"context"
	"io"
	"testing"

	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/delivery/dto"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *workflowFixture) directory() VendorDirectoryUsecase {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return NewVendorDirectoryUsecase(f.db, log, repository.NewVendorRepository())
}

func TestApproveVendor(t *testing.T) {
	f := newWorkflowFixture(t)
	directory := f.directory()
	ctx := context.Background()
	vendor := f.createVendor(t, "Grace Beauty", entity.VendorStatusPendingApproval)

	resp, err := directory.ApproveVendor(ctx, vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.VendorStatusApproved), resp.Status)

	// Approving again is a no-op, not an error
	resp, err = directory.ApproveVendor(ctx, vendor.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.VendorStatusApproved), resp.Status)

	_, err = directory.ApproveVendor(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrVendorNotFound)
}

func TestRejectVendorKeepsRecord(t *testing.T) {
	f := newWorkflowFixture(t)
	directory := f.directory()
	ctx := context.Background()
	vendor := f.createVendor(t, "Grace Beauty", entity.VendorStatusPendingApproval)

	resp, err := directory.RejectVendor(ctx, vendor.ID, &dto.RejectVendorRequest{Reason: "incomplete documents"})
	require.NoError(t, err)
	assert.Equal(t, string(entity.VendorStatusRejected), resp.Status)
	assert.Equal(t, "incomplete documents", resp.RejectionReason)

	var stored entity.Vendor
	require.NoError(t, f.db.First(&stored, "id = ?", vendor.ID).Error)
	assert.Equal(t, entity.VendorStatusRejected, stored.Status)
}

func TestListVendorsByStatus(t *testing.T) {
	f := newWorkflowFixture(t)
	directory := f.directory()
	ctx := context.Background()
	f.createVendor(t, "Pending One", entity.VendorStatusPendingApproval)
	f.createVendor(t, "Pending Two", entity.VendorStatusPendingApproval)
	f.createVendor(t, "Approved One", entity.VendorStatusApproved)

	pending, err := directory.ListVendors(ctx, entity.VendorStatusPendingApproval)
	require.NoError(t, err)
	assert.Equal(t, 2, pending.Total)

	approved, err := directory.ListVendors(ctx, entity.VendorStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, 1, approved.Total)
}
