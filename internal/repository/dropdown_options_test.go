package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/btspl-dev/asset-tracker/backend/internal/domain"
)

func TestCreateDropdownOption(t *testing.T) {
	t.Parallel()

	t.Run("rejects an unknown category", func(t *testing.T) {
		repo := newTestRepository()

		option := &domain.DropdownOption{Category: "colour", Value: "red"}
		require.ErrorIs(t, repo.CreateDropdownOption(option), ErrInvalidCategory)
	})

	t.Run("value is unique per category, case-insensitively", func(t *testing.T) {
		repo := newTestRepository()

		require.NoError(t, repo.CreateDropdownOption(&domain.DropdownOption{Category: domain.CategoryBrand, Value: "Dell"}))
		require.ErrorIs(t, repo.CreateDropdownOption(&domain.DropdownOption{Category: domain.CategoryBrand, Value: "dell"}), ErrDuplicateValue)

		// the same value in another category is fine
		require.NoError(t, repo.CreateDropdownOption(&domain.DropdownOption{Category: domain.CategoryModel, Value: "Dell"}))
	})
}

func TestUpdateDropdownOption(t *testing.T) {
	t.Parallel()

	repo := newTestRepository()

	first := &domain.DropdownOption{Category: domain.CategoryBrand, Value: "Dell"}
	require.NoError(t, repo.CreateDropdownOption(first))
	second := &domain.DropdownOption{Category: domain.CategoryBrand, Value: "HP"}
	require.NoError(t, repo.CreateDropdownOption(second))

	second.Value = "DELL"
	require.ErrorIs(t, repo.UpdateDropdownOption(second), ErrDuplicateValue)

	second.Value = "Lenovo"
	require.NoError(t, repo.UpdateDropdownOption(second))

	stored, err := repo.GetDropdownOptionByID(second.ID)
	require.NoError(t, err)
	require.Equal(t, "Lenovo", stored.Value)
}

func TestDeleteDropdownOptionIsPermissive(t *testing.T) {
	t.Parallel()

	repo := newTestRepository()

	option := &domain.DropdownOption{Category: domain.CategoryBrand, Value: "Dell"}
	require.NoError(t, repo.CreateDropdownOption(option))

	// an asset already carrying the value does not block the deletion
	asset := validAsset("LPT-200")
	asset.Brand = "Dell"
	require.NoError(t, repo.CreateAsset(asset))

	require.NoError(t, repo.DeleteDropdownOption(option.ID))

	stored, err := repo.GetAssetByID(asset.ID)
	require.NoError(t, err)
	require.Equal(t, "Dell", stored.Brand)
}

func TestGetDropdownOptionsFiltersByCategory(t *testing.T) {
	t.Parallel()

	repo := newTestRepository()

	require.NoError(t, repo.CreateDropdownOption(&domain.DropdownOption{Category: domain.CategoryBrand, Value: "HP"}))
	require.NoError(t, repo.CreateDropdownOption(&domain.DropdownOption{Category: domain.CategoryBrand, Value: "Dell"}))
	require.NoError(t, repo.CreateDropdownOption(&domain.DropdownOption{Category: domain.CategoryLocation, Value: "Bangalore"}))

	brands := repo.GetDropdownOptions(domain.CategoryBrand)
	require.Len(t, brands, 2)
	require.Equal(t, "Dell", brands[0].Value)
	require.Equal(t, "HP", brands[1].Value)

	all := repo.GetDropdownOptions("")
	require.Len(t, all, 3)

	require.True(t, repo.HasDropdownValue(domain.CategoryBrand, "dell"))
	require.False(t, repo.HasDropdownValue(domain.CategoryBrand, "Bangalore"))
}
