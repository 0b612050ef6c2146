package catalog

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticIndex(t *testing.T) *Index {
	t.Helper()
	index, err := LoadIndex(context.Background(), StaticFeed{})
	require.NoError(t, err)
	require.Equal(t, 26, index.Len())
	return index
}

func titles(products []Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Title
	}
	return out
}

func TestNewProduct(t *testing.T) {
	t.Parallel()

	p := NewProduct(3, Record{Title: " Churu Creamy Purée 3-Flavor ", Category: "Cat Treats", Price: "₱1,150.50"})
	assert.Equal(t, "churu-creamy-puree-3-flavor", p.Slug)
	assert.Equal(t, "Churu Creamy Purée 3-Flavor", p.Alt)
	assert.Equal(t, "1150.5", p.Price.String())
	assert.Equal(t, "₱1,150.50", p.PriceText)
	assert.Equal(t, 3, p.Index)
	assert.True(t, p.Facets.Cat)
	assert.True(t, p.Facets.Treats)
	assert.Equal(t, "Churu Creamy Purée 3-Flavor - premium quality cat treats for your pet.", p.DisplayDescription())

	unpriced := NewProduct(0, Record{Title: "Mystery", Price: "call us"})
	assert.True(t, unpriced.Price.IsZero())
}

func TestNewIndex_RejectsDuplicates(t *testing.T) {
	t.Parallel()

	_, err := NewIndex([]Record{{Title: "Plush Toys Set"}, {Title: "plush toys  set!"}})
	assert.Error(t, err)

	_, err = NewIndex([]Record{{Title: "¡!"}})
	assert.Error(t, err)

	empty, err := NewIndex(nil)
	require.NoError(t, err)
	assert.Zero(t, empty.Len())
}

func TestMatchesCategory_StaticCatalog(t *testing.T) {
	t.Parallel()
	index := staticIndex(t)

	tests := []struct {
		id   string
		want int
	}{
		{FilterTreats, 8},
		{FilterSnacks, 8},
		{FilterDentalTreats, 2},
		{FilterTrainingTreats, 0},
		{FilterDryCatFood, 2},
		{FilterDryDogFood, 2},
		{FilterWetCatFood, 2},
		{FilterWetDogFood, 2},
		{FilterDryCatTreats, 4},
		{FilterDryDogTreats, 1},
		{FilterAllCatItems, 9},
		{FilterAllDogItems, 6},
		{FilterSupplements, 4},
		{FilterSupplies, 1},
		{FilterAccessories, 1},
		{FilterToys, 4},
		{"wet dog food", 2},
		{"nothing-like-this", 0},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			got := Filter(index.Products(), FilterState{Categories: []string{tt.id}})
			assert.Len(t, got, tt.want, "matched %v", titles(got))
		})
	}
}

func TestMatches_CategoriesAreOred(t *testing.T) {
	t.Parallel()
	index := staticIndex(t)

	got := Filter(index.Products(), FilterState{Categories: []string{FilterToys, FilterAccessories}})
	assert.Equal(t, []string{
		"Cocopup Dog Harness",
		"Donut-Shaped Pet Chew Toy",
		"Plush Toys Set",
		"Whisker Feather Cat Toy",
		"Mouse Toys (Set of 10)",
	}, titles(got))
}

func TestMatches_PriceBounds(t *testing.T) {
	t.Parallel()
	index := staticIndex(t)

	inRange := Filter(index.Products(), FilterState{MinText: "100", MaxText: "200"})
	assert.Len(t, inRange, 10)

	swapped := Filter(index.Products(), FilterState{MinText: "200", MaxText: "100"})
	assert.Equal(t, titles(inRange), titles(swapped))

	floorOnly := Filter(index.Products(), FilterState{MinText: "990"})
	assert.Equal(t, []string{"Gud Dog Food 2.5kg", "Orijen Adult Dog Food"}, titles(floorOnly))

	garbage := Filter(index.Products(), FilterState{MinText: "abc", MaxText: "  "})
	assert.Len(t, garbage, 26)
}

func TestMatches_Query(t *testing.T) {
	t.Parallel()
	index := staticIndex(t)

	got := Filter(index.Products(), FilterState{Query: "  PROBIOTIC "})
	assert.Equal(t, []string{"Petlab Co. Probiotic for Dogs", "Digestive Probiotics for Cats"}, titles(got))

	byDescription := Filter(index.Products(), FilterState{Query: "squeakers"})
	assert.Equal(t, []string{"Plush Toys Set"}, titles(byDescription))

	combined := Filter(index.Products(), FilterState{Query: "purina", Categories: []string{FilterDentalTreats}})
	assert.Equal(t, []string{"Purina Dentalife Large"}, titles(combined))
}

func TestSort(t *testing.T) {
	t.Parallel()
	index := staticIndex(t)
	products := index.Products()

	asc := Sort(products, SortPriceAsc)
	assert.Equal(t, "Halo Meal Bites", asc[0].Title)
	assert.Equal(t, "Donut-Shaped Pet Chew Toy", asc[1].Title)
	assert.Equal(t, "Gud Dog Food 2.5kg", asc[len(asc)-1].Title)
	for i := 1; i < len(asc); i++ {
		assert.False(t, asc[i].Price.LessThan(asc[i-1].Price))
		if asc[i].Price.Equal(asc[i-1].Price) {
			assert.Greater(t, asc[i].Index, asc[i-1].Index)
		}
	}

	desc := Sort(products, SortPriceDesc)
	assert.Equal(t, "Gud Dog Food 2.5kg", desc[0].Title)
	assert.Equal(t, "Halo Meal Bites", desc[len(desc)-2].Title)

	featured := Sort(desc, SortFeatured)
	assert.Equal(t, titles(products), titles(featured))

	assert.Equal(t, "Dogcat Pet Bed", products[0].Title, "input must not be reordered")
}

func TestParseCriterion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want Criterion
		ok   bool
	}{
		{"featured", SortFeatured, true},
		{"price-asc", SortPriceAsc, true},
		{"low-to-high", SortPriceAsc, true},
		{"high-to-low", SortPriceDesc, true},
		{" PRICE-DESC ", SortPriceDesc, true},
		{"newest", SortFeatured, false},
	}
	for _, tt := range tests {
		got, ok := ParseCriterion(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}

	assert.Equal(t, SortPriceDesc, ParseSortLabel("Price:  High to Low"))
	assert.Equal(t, SortPriceAsc, ParseSortLabel("Price: Low to High"))
	assert.Equal(t, SortFeatured, ParseSortLabel("Featured"))
	assert.Equal(t, SortPriceDesc, ParseSortLabel(SortPriceDesc.Label()))
}

func TestPaginate_Bounds(t *testing.T) {
	t.Parallel()
	index := staticIndex(t)
	products := index.Products()

	for n := 0; n <= len(products); n += 5 {
		for size := 1; size <= 13; size += 3 {
			for page := -2; page <= 30; page += 4 {
				p := Paginate(products[:n], size, page)
				assert.GreaterOrEqual(t, p.Page, 1)
				assert.LessOrEqual(t, p.Page, p.TotalPages)
				assert.LessOrEqual(t, len(p.Items), size)
				assert.Equal(t, n, p.TotalFiltered)
				assert.Equal(t, p.EndIndex-p.StartIndex, len(p.Items))
			}
		}
	}

	empty := Paginate(nil, 12, 5)
	assert.Equal(t, 1, empty.Page)
	assert.Equal(t, 1, empty.TotalPages)
	assert.Empty(t, empty.Items)
	assert.Equal(t, "Showing 0 - 0 of 0 products", ShowingLabel(empty))
}

func TestView_ScenarioPaging(t *testing.T) {
	t.Parallel()
	view := NewView(staticIndex(t), 12, SortFeatured)

	first := view.Result()
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, 1, first.Page.Page)
	assert.Len(t, first.Items, 12)
	assert.Equal(t, "Dogcat Pet Bed", first.Items[0].Title)
	assert.Equal(t, "Showing 1 - 12 of 26 products", first.Label)
	assert.False(t, first.Empty)

	view.GoToPage(3)
	third := view.Result()
	assert.Equal(t, 3, third.Page.Page)
	assert.Equal(t, []string{"Whisker Feather Cat Toy", "Mouse Toys (Set of 10)"}, titles(third.Items))
	assert.Equal(t, "Showing 25 - 26 of 26 products", third.Label)

	view.GoToPage(99)
	assert.Equal(t, 3, view.CurrentPage())
}

func TestView_FilterChangesResetPage(t *testing.T) {
	t.Parallel()

	changes := map[string]func(v *View){
		"query":        func(v *View) { v.SetQuery("food") },
		"category":     func(v *View) { v.ToggleCategory(FilterToys) },
		"price":        func(v *View) { v.SetPriceBounds("10", "") },
		"clear":        func(v *View) { v.ClearAll() },
		"sort":         func(v *View) { v.SetSort(SortPriceDesc) },
		"page size":    func(v *View) { require.NoError(t, v.SetPageSize(5)) },
		"select only":  func(v *View) { v.SelectOnly(FilterAllCatItems) },
		"uncheck none": func(v *View) { v.SetCategory(FilterToys, false) },
	}

	for name, change := range changes {
		t.Run(name, func(t *testing.T) {
			view := NewView(staticIndex(t), 12, SortFeatured)
			view.GoToPage(2)
			require.Equal(t, 2, view.CurrentPage())

			change(view)
			assert.Equal(t, 1, view.CurrentPage())
		})
	}
}

func TestView_ScenarioToys(t *testing.T) {
	t.Parallel()
	view := NewView(staticIndex(t), 12, SortFeatured)
	view.GoToPage(2)

	view.ToggleCategory("toys")
	r := view.Result()
	assert.Equal(t, 4, r.TotalFiltered)
	assert.Equal(t, 1, r.Page.Page)
	assert.Equal(t, 1, r.TotalPages)
	assert.True(t, r.HasAnyFilters)

	view.ToggleCategory("toys")
	assert.Equal(t, 26, view.Result().TotalFiltered)
}

func TestView_PageSizeKeepsFilters(t *testing.T) {
	t.Parallel()
	view := NewView(staticIndex(t), 12, SortFeatured)
	view.SetCategory(FilterTreats, true)

	require.NoError(t, view.SetPageSize(3))
	r := view.Result()
	assert.Equal(t, 8, r.TotalFiltered)
	assert.Equal(t, 3, r.TotalPages)
	assert.Equal(t, []string{FilterTreats}, r.Filters.Categories)

	assert.Error(t, view.SetPageSize(0))
	assert.Equal(t, 3, view.PageSize())
}

func TestView_EmptyState(t *testing.T) {
	t.Parallel()

	view := NewView(staticIndex(t), 12, SortFeatured)
	view.SetQuery("  Unicorn Food ")
	r := view.Result()
	assert.True(t, r.Empty)
	assert.Equal(t, "No products match “Unicorn Food”.", r.EmptyMessage)
	assert.Equal(t, "Showing 0 - 0 of 0 products", r.Label)

	view.ClearAll()
	view.SetPriceBounds("5000", "")
	r = view.Result()
	assert.True(t, r.Empty)
	assert.Equal(t, "No products match your filters.", r.EmptyMessage)

	empty, err := NewIndex(nil)
	require.NoError(t, err)
	r = NewView(empty, 12, SortFeatured).Result()
	assert.True(t, r.Empty)
	assert.Equal(t, 1, r.Page.Page)
	assert.False(t, r.HasAnyFilters)
}

func TestFindBySlug(t *testing.T) {
	t.Parallel()
	index := staticIndex(t)

	tests := []struct {
		in   string
		want string
	}{
		{"dogcat-pet-bed", "Dogcat Pet Bed"},
		{"  Plush-Toys-Set ", "Plush Toys Set"},
		{"petlab", "Petlab Co. Probiotic for Dogs"},
		{"churu-creamy-puree-3-flvr", "Churu Creamy Purée 3-Flavor"},
		{"yukon-beef-wet-food", "Yukon Beef Sachet Wet Food"},
		{"royal-canin-adult-dry-food-2kg", "Royal Canin Adult Dry Food"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			p, err := index.FindBySlug(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Title)
		})
	}

	for _, miss := range []string{"", "   ", "hamster-wheel", "zz-qq"} {
		_, err := index.FindBySlug(miss)
		assert.ErrorIs(t, err, ErrProductNotFound, miss)
	}
}

func TestApplyDeepLink(t *testing.T) {
	t.Parallel()

	t.Run("species shorthand replaces checkboxes", func(t *testing.T) {
		view := NewView(staticIndex(t), 12, SortFeatured)
		view.SetCategory(FilterToys, true)

		out := view.ApplyDeepLink(DeepLink{Category: "Puppies"})
		assert.True(t, out.ScrollToResults)
		assert.Equal(t, []string{FilterAllDogItems}, view.Filters().Categories)
		assert.Equal(t, 6, view.Result().TotalFiltered)
	})

	t.Run("explicit filter", func(t *testing.T) {
		view := NewView(staticIndex(t), 12, SortFeatured)
		out := view.ApplyDeepLink(DeepLink{Filter: "DryCatFood", Category: "kitten"})
		assert.True(t, out.ScrollToResults)
		assert.Equal(t, []string{FilterDryCatFood}, view.Filters().Categories)
	})

	t.Run("query and product", func(t *testing.T) {
		view := NewView(staticIndex(t), 12, SortFeatured)
		out := view.ApplyDeepLink(DeepLink{Query: "treats", Product: "purina-felix-crispies"})
		require.NotNil(t, out.Product)
		assert.Equal(t, "Purina Felix Crispies", out.Product.Title)
		assert.Equal(t, "treats", view.Filters().Query)
		assert.True(t, out.ScrollToResults)
	})

	t.Run("unknown values are ignored", func(t *testing.T) {
		view := NewView(staticIndex(t), 12, SortFeatured)
		out := view.ApplyDeepLink(DeepLink{Category: "hamster", Filter: "snacks", Product: "hamster-wheel"})
		assert.Nil(t, out.Product)
		assert.True(t, out.ScrollToResults)
		assert.Empty(t, view.Filters().Categories)
	})

	t.Run("nothing set", func(t *testing.T) {
		view := NewView(staticIndex(t), 12, SortFeatured)
		out := view.ApplyDeepLink(DeepLink{})
		assert.False(t, out.ScrollToResults)
	})
}

func TestOpenProduct_ClearsFilters(t *testing.T) {
	t.Parallel()
	view := NewView(staticIndex(t), 12, SortFeatured)
	view.SetQuery("dog")
	view.SetPriceBounds("1", "2")

	p, err := view.OpenProduct("whisker-feather-cat-toy")
	require.NoError(t, err)
	assert.Equal(t, "Whisker Feather Cat Toy", p.Title)
	assert.False(t, view.Filters().HasAny())

	_, err = view.OpenProduct("nope")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestSuggest(t *testing.T) {
	t.Parallel()
	products := staticIndex(t).Products()

	got := Suggest(products, "Cat", 0)
	require.Len(t, got, DefaultSuggestionLimit)
	names := make([]string, len(got))
	for i, s := range got {
		names[i] = s.Product.Title
	}
	assert.Equal(t, []string{
		"Dogcat Pet Bed",
		"Lysine Supplement for Cats",
		"Digestive Probiotics for Cats",
		"Whisker Feather Cat Toy",
		"Monello Kitten DryFood 200g",
		"Royal Canin Adult Dry Food",
		"Whiskas Chicken Adult",
		"RC Feline Weight Care",
	}, names)
	assert.Equal(t, 60, got[0].Score)
	assert.Equal(t, 30, got[7].Score)

	pu := Suggest(products, "pu", 8)
	require.Len(t, pu, 6)
	assert.Equal(t, 100, pu[0].Score)
	assert.Equal(t, "Purina Dentalife Large", pu[0].Product.Title)
	assert.Equal(t, "Cocopup Dog Harness", pu[4].Product.Title)
	assert.Equal(t, "Churu Creamy Purée 3-Flavor", pu[5].Product.Title)

	assert.Empty(t, Suggest(products, "   ", 8))
	assert.Empty(t, Suggest(products, "zebra", 8))
	assert.Equal(t, 30, Score(products[0], "sup"))
	assert.Equal(t, -1, Score(products[0], "zebra"))
}

func TestRecommend(t *testing.T) {
	t.Parallel()
	products := staticIndex(t).Products()

	picked := Recommend(products, 6, rand.New(rand.NewPCG(1, 2)))
	require.Len(t, picked, 6)
	seen := map[string]bool{}
	for _, p := range picked {
		assert.False(t, seen[p.Slug], "duplicate %s", p.Slug)
		seen[p.Slug] = true
	}

	again := Recommend(products, 6, rand.New(rand.NewPCG(1, 2)))
	assert.Equal(t, titles(picked), titles(again))

	assert.Len(t, Recommend(products[:3], 6, rand.New(rand.NewPCG(3, 4))), 3)
	assert.Equal(t, "Dogcat Pet Bed", products[0].Title)
}
