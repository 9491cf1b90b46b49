package repository_test

import (
	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// snapshotRepositorySuite holds the behaviour every backend must share.
// Backend suites embed it and assign repo in SetupSuite.
type snapshotRepositorySuite struct {
	suite.Suite

	repo port.CartSnapshotRepository
}

func (suite *snapshotRepositorySuite) TestSaveSnapshot() {
	tests := []struct {
		name      string
		key       string
		items     []domain.CartItem
		wantError string
	}{
		{
			name:  "save two items: ok",
			key:   gofakeit.UUID(),
			items: randomCartItems(2),
		},
		{
			name: "save duplicates keeps both: ok",
			key:  gofakeit.UUID(),
			items: func() []domain.CartItem {
				item := randomCartItem()
				return []domain.CartItem{item, item}
			}(),
		},
		{
			name:  "save empty cart: ok",
			key:   gofakeit.UUID(),
			items: []domain.CartItem{},
		},
		{
			name:      "save with empty key: error",
			key:       "",
			items:     randomCartItems(1),
			wantError: "key is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			err := suite.repo.SaveSnapshot(ctx, tt.key, tt.items)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			// a fresh read returns the same ordered list
			items, err := suite.repo.GetSnapshot(ctx, tt.key)
			require.NoError(t, err)
			assertCartItems(t, tt.items, items)
		})
	}
}

func (suite *snapshotRepositorySuite) TestSaveSnapshot_LastWriteWins() {
	t := suite.T()
	ctx := t.Context()
	key := gofakeit.UUID()

	require.NoError(t, suite.repo.SaveSnapshot(ctx, key, randomCartItems(3)))

	second := randomCartItems(1)
	require.NoError(t, suite.repo.SaveSnapshot(ctx, key, second))

	items, err := suite.repo.GetSnapshot(ctx, key)
	require.NoError(t, err)
	assertCartItems(t, second, items)
}

func (suite *snapshotRepositorySuite) TestGetSnapshot() {
	tests := []struct {
		name      string
		key       string
		wantErrIs error
		wantError string
	}{
		{
			name:      "get absent key: not found",
			key:       gofakeit.UUID(),
			wantErrIs: domain.ErrSnapshotNotFound,
		},
		{
			name:      "get with empty key: error",
			key:       "",
			wantError: "key is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()

			items, err := suite.repo.GetSnapshot(t.Context(), tt.key)
			if tt.wantErrIs != nil {
				require.ErrorIs(t, err, tt.wantErrIs)
			}
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
			}
			assert.Empty(t, items)
		})
	}
}

func (suite *snapshotRepositorySuite) TestDeleteSnapshot() {
	tests := []struct {
		name        string
		key         string
		setupItems  []domain.CartItem
		wantDeleted bool
		wantError   string
	}{
		{
			name:        "delete existing snapshot: ok",
			key:         gofakeit.UUID(),
			setupItems:  randomCartItems(2),
			wantDeleted: true,
		},
		{
			name:        "delete absent snapshot: not found",
			key:         gofakeit.UUID(),
			wantDeleted: false,
		},
		{
			name:      "delete with empty key: error",
			key:       "",
			wantError: "key is empty",
		},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			t := suite.T()
			ctx := t.Context()

			if tt.setupItems != nil {
				require.NoError(t, suite.repo.SaveSnapshot(ctx, tt.key, tt.setupItems))
			}

			deleted, err := suite.repo.DeleteSnapshot(ctx, tt.key)
			if tt.wantError != "" {
				require.EqualError(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDeleted, deleted)

			_, err = suite.repo.GetSnapshot(ctx, tt.key)
			require.ErrorIs(t, err, domain.ErrSnapshotNotFound)
		})
	}
}
