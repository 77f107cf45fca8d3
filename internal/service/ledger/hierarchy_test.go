package ledger

import (
	"errors"
	"math/rand"
	"testing"

	"bookkeeper/internal/domain"
	models "bookkeeper/internal/domain/models/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func ptr[T any](v T) *T { return &v }

// chart builds accounts from id -> parent pairs; parent 0 means root.
func chart(pairs map[int64]int64, names map[int64]string) []models.Account {
	accounts := make([]models.Account, 0, len(pairs))
	for id, parent := range pairs {
		a := models.Account{ID: id, Name: names[id]}
		if parent != 0 {
			a.ParentAccountID = ptr(parent)
		}
		accounts = append(accounts, a)
	}
	return accounts
}

func sampleChart() []models.Account {
	return chart(
		map[int64]int64{1: 0, 2: 1, 3: 1, 4: 2},
		map[int64]string{1: "Assets", 2: "Bank", 3: "Cash", 4: "Checking"},
	)
}

func childIDs(n *models.AccountTreeNode) []int64 {
	ids := make([]int64, 0, len(n.Children))
	for _, c := range n.Children {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestWouldCreateCycle_Scenario(t *testing.T) {
	accounts := sampleChart()

	cyclic, err := WouldCreateCycle(accounts, 1, 4)
	require.NoError(t, err)
	assert.True(t, cyclic, "1 -> 4 -> 2 -> 1 revisits 1")

	cyclic, err = WouldCreateCycle(accounts, 4, 3)
	require.NoError(t, err)
	assert.False(t, cyclic, "4 -> 3 -> 1 ends at a root")
}

func TestWouldCreateCycle_SelfParent(t *testing.T) {
	cyclic, err := WouldCreateCycle(sampleChart(), 1, 1)
	require.NoError(t, err)
	assert.True(t, cyclic)
}

func TestWouldCreateCycle_DescendantsAndNonDescendants(t *testing.T) {
	// 1
	// ├── 2
	// │   ├── 4
	// │   │   └── 6
	// │   └── 5
	// └── 3
	// 7
	accounts := chart(
		map[int64]int64{1: 0, 2: 1, 3: 1, 4: 2, 5: 2, 6: 4, 7: 0},
		map[int64]string{},
	)
	descendants := map[int64][]int64{
		1: {2, 3, 4, 5, 6},
		2: {4, 5, 6},
		3: {},
		4: {6},
		5: {},
		6: {},
		7: {},
	}

	for account, desc := range descendants {
		isDesc := map[int64]bool{account: true}
		for _, d := range desc {
			isDesc[d] = true
		}
		for _, candidate := range accounts {
			cyclic, err := WouldCreateCycle(accounts, account, candidate.ID)
			require.NoError(t, err)
			assert.Equal(t, isDesc[candidate.ID], cyclic, "reparent %d under %d", account, candidate.ID)
		}
	}
}

func TestWouldCreateCycle_InvalidAccount(t *testing.T) {
	_, err := WouldCreateCycle(sampleChart(), 99, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAccount)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWouldCreateCycle_InvalidParentReference(t *testing.T) {
	t.Run("proposed parent missing", func(t *testing.T) {
		_, err := WouldCreateCycle(sampleChart(), 4, 42)
		assert.ErrorIs(t, err, ErrInvalidParentReference)
	})

	t.Run("broken reference mid-walk", func(t *testing.T) {
		accounts := append(sampleChart(), models.Account{ID: 8, ParentAccountID: ptr(int64(77))})
		_, err := WouldCreateCycle(accounts, 4, 8)
		assert.ErrorIs(t, err, ErrInvalidParentReference)
		assert.ErrorIs(t, err, domain.ErrDataIntegrity)
		assert.False(t, errors.Is(err, domain.ErrNotFound))
	})
}

func TestWouldCreateCycle_ExistingCycleElsewhere(t *testing.T) {
	// 2 and 3 already point at each other; the walk must still stop.
	accounts := chart(map[int64]int64{1: 0, 2: 3, 3: 2}, map[int64]string{})
	cyclic, err := WouldCreateCycle(accounts, 1, 2)
	require.NoError(t, err)
	assert.True(t, cyclic)
}

func TestWouldCreateCycle_DoesNotMutateInput(t *testing.T) {
	accounts := sampleChart()
	_, err := WouldCreateCycle(accounts, 1, 4)
	require.NoError(t, err)
	for _, a := range accounts {
		if a.ID == 1 {
			assert.Nil(t, a.ParentAccountID)
		}
	}
}

func TestBuildForest_Scenario(t *testing.T) {
	forest, err := BuildForest(sampleChart())
	require.NoError(t, err)

	require.Len(t, forest, 1)
	root, ok := forest[1]
	require.True(t, ok)
	assert.Equal(t, []int64{2, 3}, childIDs(root))
	assert.Equal(t, []int64{4}, childIDs(root.Children[0]))
	assert.Equal(t, 2, MaxDepth(forest))
}

func TestBuildForest_RootsAreForestRoots(t *testing.T) {
	accounts := chart(map[int64]int64{1: 0, 2: 0, 3: 1, 4: 0}, map[int64]string{})
	forest, err := BuildForest(accounts)
	require.NoError(t, err)

	for _, a := range accounts {
		_, isRoot := forest[a.ID]
		assert.Equal(t, a.ParentAccountID == nil, isRoot, "account %d", a.ID)
	}
}

func TestBuildForest_IndependentOfInputOrder(t *testing.T) {
	accounts := chart(
		map[int64]int64{1: 0, 2: 1, 3: 1, 4: 2, 5: 2, 6: 0, 7: 6, 8: 3},
		map[int64]string{},
	)
	want, err := BuildForest(accounts)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([]models.Account(nil), accounts...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		got, err := BuildForest(shuffled)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestBuildForest_ParentNotFound(t *testing.T) {
	accounts := append(sampleChart(), models.Account{ID: 9, ParentAccountID: ptr(int64(123))})
	forest, err := BuildForest(accounts)
	assert.Nil(t, forest)
	assert.ErrorIs(t, err, ErrParentNotFound)
	assert.ErrorIs(t, err, domain.ErrDataIntegrity)
}

func TestBuildForest_CycleIsUnreachable(t *testing.T) {
	accounts := chart(map[int64]int64{1: 0, 2: 3, 3: 2}, map[int64]string{})
	forest, err := BuildForest(accounts)
	require.NoError(t, err)

	assert.Len(t, forest, 1)
	assert.Empty(t, forest[1].Children)
	assert.Len(t, Flatten(forest, ExpandAll(forest), language.English), 1)
}

func TestMaxDepth(t *testing.T) {
	tests := []struct {
		name  string
		pairs map[int64]int64
		want  int
	}{
		{name: "empty", pairs: map[int64]int64{}, want: 0},
		{name: "roots only", pairs: map[int64]int64{1: 0, 2: 0, 3: 0}, want: 0},
		{name: "chain", pairs: map[int64]int64{1: 0, 2: 1, 3: 2}, want: 2},
		{name: "deepest branch wins", pairs: map[int64]int64{1: 0, 2: 1, 3: 0, 4: 3, 5: 4, 6: 5}, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forest, err := BuildForest(chart(tt.pairs, map[int64]string{}))
			require.NoError(t, err)
			assert.Equal(t, tt.want, MaxDepth(forest))
		})
	}
}

func names(items []models.TraversalItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Node.Name)
	}
	return out
}

func TestOrderedTraversal_SortsSiblingsAndHonorsExpansion(t *testing.T) {
	accounts := chart(
		map[int64]int64{1: 0, 2: 1, 3: 1, 4: 2, 5: 0, 6: 5},
		map[int64]string{1: "Tillgångar", 2: "Kassa", 3: "Bank", 4: "Växelkassa", 5: "Eget kapital", 6: "Insättningar"},
	)
	forest, err := BuildForest(accounts)
	require.NoError(t, err)

	t.Run("all collapsed", func(t *testing.T) {
		items := Flatten(forest, nil, language.Swedish)
		assert.Equal(t, []string{"Eget kapital", "Tillgångar"}, names(items))
	})

	t.Run("one branch expanded", func(t *testing.T) {
		items := Flatten(forest, models.ExpandState{1: true}, language.Swedish)
		assert.Equal(t, []string{"Eget kapital", "Tillgångar", "Bank", "Kassa"}, names(items))
		assert.Equal(t, []int{0, 0, 1, 1}, depths(items))
	})

	t.Run("collapsed parent hides expanded child", func(t *testing.T) {
		items := Flatten(forest, models.ExpandState{2: true}, language.Swedish)
		assert.Equal(t, []string{"Eget kapital", "Tillgångar"}, names(items))
	})

	t.Run("everything expanded", func(t *testing.T) {
		items := Flatten(forest, ExpandAll(forest), language.Swedish)
		assert.Equal(t,
			[]string{"Eget kapital", "Insättningar", "Tillgångar", "Bank", "Kassa", "Växelkassa"},
			names(items))
		assert.Equal(t, []int{0, 1, 0, 1, 1, 2}, depths(items))
	})
}

func depths(items []models.TraversalItem) []int {
	out := make([]int, 0, len(items))
	for _, it := range items {
		out = append(out, it.Depth)
	}
	return out
}

func TestOrderedTraversal_LocaleAwareCollation(t *testing.T) {
	accounts := chart(
		map[int64]int64{1: 0, 2: 0, 3: 0},
		map[int64]string{1: "Öresavrundning", 2: "Äldre skulder", 3: "Zakat"},
	)
	forest, err := BuildForest(accounts)
	require.NoError(t, err)

	// Swedish sorts Å, Ä, Ö after Z.
	assert.Equal(t, []string{"Zakat", "Äldre skulder", "Öresavrundning"}, names(Flatten(forest, nil, language.Swedish)))
	// German treats Ä and Ö like A and O.
	assert.Equal(t, []string{"Äldre skulder", "Öresavrundning", "Zakat"}, names(Flatten(forest, nil, language.German)))
}

func TestOrderedTraversal_RestartableAndStoppable(t *testing.T) {
	forest, err := BuildForest(sampleChart())
	require.NoError(t, err)
	seq := OrderedTraversal(forest, ExpandAll(forest), language.English)

	var first, second []string
	for item := range seq {
		first = append(first, item.Node.Name)
	}
	for item := range seq {
		second = append(second, item.Node.Name)
	}
	assert.Equal(t, []string{"Assets", "Bank", "Checking", "Cash"}, first)
	assert.Equal(t, first, second)

	count := 0
	for range seq {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestOrderedTraversal_DoesNotReorderForest(t *testing.T) {
	accounts := chart(map[int64]int64{1: 0, 2: 1, 3: 1}, map[int64]string{1: "Root", 2: "Zeta", 3: "Alpha"})
	forest, err := BuildForest(accounts)
	require.NoError(t, err)

	_ = Flatten(forest, ExpandAll(forest), language.English)
	assert.Equal(t, []int64{2, 3}, childIDs(forest[1]))
}
