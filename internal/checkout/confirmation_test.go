package checkout_test

import (
	"testing"

	"github.com/nikolayk812/storefront/internal/checkout"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmation_EscapesItems(t *testing.T) {
	ctx := t.Context()
	repo := repository.NewMemorySnapshot()
	require.NoError(t, repo.SaveSnapshot(ctx, checkout.DefaultSnapshotKey, []domain.CartItem{
		{Name: `<img src=x onerror=alert(1)>`, Price: dec("3.5"), Img: "imgs/X.png"},
	}))

	c := checkout.New(ctx, repo, checkout.Options{}, nil)
	require.NoError(t, c.JumpTo(domain.StepConfirm))

	confirmation, ok := c.Confirmation()
	require.True(t, ok)

	html := string(confirmation.ItemsHTML)
	assert.NotContains(t, html, "<img src=x")
	assert.Contains(t, html, "&lt;img src=x onerror=alert(1)&gt;")
	assert.Contains(t, html, "Quantity: 1")
	assert.Contains(t, html, "$3.50")
}

func TestConfirmation_NotBuiltBeforeLastStep(t *testing.T) {
	c := checkout.New(t.Context(), repository.NewMemorySnapshot(), checkout.Options{}, nil)

	_, ok := c.Confirmation()
	assert.False(t, ok)
}
