package domain_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.larenv.dev/larenv/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestReconcile_Agreement(t *testing.T) {
	records := []domain.ProductDeps{
		{Package: "larcore", ParentVersion: "v09_10_00"},
		{Package: "larsim", ParentVersion: "v09_10_00"},
	}

	d, err := domain.Reconcile(records, domain.ReconcileOptions{})
	require.NoError(t, err)
	assert.Equal(t, "v09_10_00", d.Version)
	assert.Empty(t, d.Diagnostics)
}

func TestReconcile_OptionalDisagreementWarns(t *testing.T) {
	// mypkg is not a core-framework package; its conflicting version is
	// reported but cannot override the mandatory consensus.
	records := []domain.ProductDeps{
		{Package: "larcore", ParentVersion: "v1"},
		{Package: "larsim", ParentVersion: "v1"},
		{Package: "mypkg", ParentVersion: "v2"},
	}

	d, err := domain.Reconcile(records, domain.ReconcileOptions{})
	require.NoError(t, err)
	assert.Equal(t, "v1", d.Version)
	assert.Len(t, d.Diagnostics, 1)
}

func TestReconcile_MandatoryDisagreementFails(t *testing.T) {
	records := []domain.ProductDeps{
		{Package: "larcore", ParentVersion: "v1"},
		{Package: "larsim", ParentVersion: "v2"},
	}

	_, err := domain.Reconcile(records, domain.ReconcileOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInconsistentVersions))

	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr))
	assert.Equal(t, "larsim", zErr.Metadata()["package"])
}

func TestReconcile_MandatoryDisagreementOverride(t *testing.T) {
	records := []domain.ProductDeps{
		{Package: "larcore", ParentVersion: "v1"},
		{Package: "larsim", ParentVersion: "v2"},
	}

	d, err := domain.Reconcile(records, domain.ReconcileOptions{IgnoreInconsistency: true})
	require.NoError(t, err)

	// Last seen wins under the override.
	assert.Equal(t, "v2", d.Version)
	assert.Len(t, d.Diagnostics, 1)
}

func TestReconcile_NoRecords(t *testing.T) {
	_, err := domain.Reconcile(nil, domain.ReconcileOptions{})
	assert.True(t, errors.Is(err, domain.ErrNoVersion))
}

func TestReconcile_EmptyParentSkipped(t *testing.T) {
	records := []domain.ProductDeps{
		{Package: "larcore", ParentVersion: ""},
		{Package: "larsim", ParentVersion: "v3"},
	}

	d, err := domain.Reconcile(records, domain.ReconcileOptions{})
	require.NoError(t, err)
	assert.Equal(t, "v3", d.Version)
	assert.Len(t, d.Diagnostics, 1)
}

func TestReconcile_OrderIndependent(t *testing.T) {
	// Records are walked sorted by package name, so input order must not
	// change the outcome.
	a := []domain.ProductDeps{
		{Package: "larsim", ParentVersion: "v1"},
		{Package: "mypkg", ParentVersion: "v2"},
		{Package: "larcore", ParentVersion: "v1"},
	}
	b := []domain.ProductDeps{
		{Package: "mypkg", ParentVersion: "v2"},
		{Package: "larcore", ParentVersion: "v1"},
		{Package: "larsim", ParentVersion: "v1"},
	}

	da, errA := domain.Reconcile(a, domain.ReconcileOptions{})
	db, errB := domain.Reconcile(b, domain.ReconcileOptions{})
	require.NoError(t, errA)
	require.NoError(t, errB)
	assert.Equal(t, da.Version, db.Version)
}

func TestProductDeps_Mandatory(t *testing.T) {
	assert.True(t, domain.ProductDeps{Package: "larcore"}.Mandatory())
	assert.True(t, domain.ProductDeps{Package: "nutools"}.Mandatory())
	assert.False(t, domain.ProductDeps{Package: "uboonecode"}.Mandatory())
}
