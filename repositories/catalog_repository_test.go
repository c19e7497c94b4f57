package repositories

import (
	"testing"

	"figure-store/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListFiltersByCategory(t *testing.T) {
	repo := NewCatalogRepository()

	all := repo.List(models.ProductFilter{})
	require.Len(t, all, 6)

	for _, p := range all {
		matched := repo.List(models.ProductFilter{Category: p.Category})
		assert.Contains(t, matched, p)

		excluded := repo.List(models.ProductFilter{Category: "posters"})
		assert.NotContains(t, excluded, p)
	}

	// "all" and case variants disable the filter
	assert.Len(t, repo.List(models.ProductFilter{Category: "all"}), 6)
	assert.Len(t, repo.List(models.ProductFilter{Category: "FIGURES"}), 6)
}

func TestListFiltersByAnimeSubstring(t *testing.T) {
	repo := NewCatalogRepository()

	matched := repo.List(models.ProductFilter{Anime: "slayer"})
	require.Len(t, matched, 1)
	assert.Equal(t, "Nezuko Kamado Figure", matched[0].Name)

	assert.Empty(t, repo.List(models.ProductFilter{Anime: "pokemon"}))
}

func TestListSearchMatchesNameOrAnime(t *testing.T) {
	repo := NewCatalogRepository()

	byName := repo.List(models.ProductFilter{Search: "goku"})
	require.Len(t, byName, 1)
	assert.Equal(t, 3, byName[0].ID)

	byAnime := repo.List(models.ProductFilter{Search: "jujutsu"})
	require.Len(t, byAnime, 1)
	assert.Equal(t, 6, byAnime[0].ID)
}

func TestListFiltersCompose(t *testing.T) {
	repo := NewCatalogRepository()

	matched := repo.List(models.ProductFilter{Category: "figures", Search: "naruto"})
	require.Len(t, matched, 1)
	assert.Equal(t, 4, matched[0].ID)

	assert.Empty(t, repo.List(models.ProductFilter{Category: "posters", Search: "naruto"}))
}

func TestListPreservesInsertionOrder(t *testing.T) {
	repo := NewCatalogRepository()

	all := repo.List(models.ProductFilter{})
	for i, p := range all {
		assert.Equal(t, i+1, p.ID)
	}
}

func TestFindByID(t *testing.T) {
	repo := NewCatalogRepository()

	product, err := repo.FindByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Luffy Gear 4 Figure", product.Name)

	_, err = repo.FindByID(999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestFindByIDReturnsCopy(t *testing.T) {
	repo := NewCatalogRepository()

	product, err := repo.FindByID(1)
	require.NoError(t, err)
	product.Stock = 0

	again, err := repo.FindByID(1)
	require.NoError(t, err)
	assert.Equal(t, 15, again.Stock)
}

func TestCategoriesAndAnimeTitles(t *testing.T) {
	repo := NewCatalogRepository()

	assert.Equal(t, []string{"figures"}, repo.Categories())
	assert.Equal(t, []string{
		"Demon Slayer",
		"One Piece",
		"Dragon Ball Super",
		"Naruto",
		"Attack on Titan",
		"Jujutsu Kaisen",
	}, repo.AnimeTitles())
}

func TestDecrementStockClampsAtZero(t *testing.T) {
	repo := NewCatalogRepository()

	remaining, err := repo.DecrementStock(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, remaining)

	remaining, err = repo.DecrementStock(3, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)

	product, err := repo.FindByID(3)
	require.NoError(t, err)
	assert.Equal(t, 0, product.Stock)
}

func TestDecrementStockUnknownProduct(t *testing.T) {
	repo := NewCatalogRepository()

	_, err := repo.DecrementStock(999, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
