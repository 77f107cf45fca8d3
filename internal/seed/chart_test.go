package seed

import (
	"context"
	"errors"
	"strings"
	"testing"

	models "bookkeeper/internal/domain/models/ledger"
	ledgerSvc "bookkeeper/internal/domain/services/ledger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingService embeds the interface; only CreateAccount is called
type recordingService struct {
	ledgerSvc.AccountService
	nextID  int64
	created []ledgerSvc.CreateAccountRequest
	failOn  string
}

func (s *recordingService) CreateAccount(ctx context.Context, userID uuid.UUID, req *ledgerSvc.CreateAccountRequest) (*models.Account, error) {
	if req.Name == s.failOn {
		return nil, errors.New("boom")
	}
	s.nextID++
	s.created = append(s.created, *req)
	return &models.Account{ID: s.nextID, UserID: userID, Name: req.Name, ParentAccountID: req.ParentAccountID}, nil
}

func TestDefaultChart(t *testing.T) {
	nodes, err := DefaultChart()
	require.NoError(t, err)
	require.NotEmpty(t, nodes)
	assert.Equal(t, "Assets", nodes[0].Name)
	assert.NotEmpty(t, nodes[0].Children)
}

func TestParseChart(t *testing.T) {
	nodes, err := ParseChart(strings.NewReader(`
- name: Assets
  children:
    - name: Cash
      description: Petty cash
`))
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	require.Len(t, nodes[0].Children, 1)
	assert.Equal(t, "Petty cash", nodes[0].Children[0].Description)

	_, err = ParseChart(strings.NewReader("- children:\n    - name: Cash\n"))
	assert.ErrorContains(t, err, "has no name")

	_, err = ParseChart(strings.NewReader("name: [unclosed"))
	assert.Error(t, err)

	nodes, err = ParseChart(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, nodes)
}

func TestCreateChart_ParentsBeforeChildren(t *testing.T) {
	svc := &recordingService{}
	nodes := []ChartNode{
		{Name: "Assets", Children: []ChartNode{{Name: "Cash"}, {Name: "Bank", Description: "Main"}}},
		{Name: "Income"},
	}

	created, err := CreateChart(context.Background(), svc, uuid.New(), nodes)
	require.NoError(t, err)
	require.Len(t, created, 4)

	assert.Nil(t, created[0].ParentAccountID)
	assert.Equal(t, created[0].ID, *created[1].ParentAccountID)
	assert.Equal(t, created[0].ID, *created[2].ParentAccountID)
	assert.Nil(t, created[3].ParentAccountID)
	require.NotNil(t, svc.created[2].Description)
	assert.Equal(t, "Main", *svc.created[2].Description)
}

func TestCreateChart_StopsOnError(t *testing.T) {
	svc := &recordingService{failOn: "Bank"}
	nodes := []ChartNode{{Name: "Assets", Children: []ChartNode{{Name: "Cash"}, {Name: "Bank"}, {Name: "Receivables"}}}}

	created, err := CreateChart(context.Background(), svc, uuid.New(), nodes)
	assert.ErrorContains(t, err, `"Bank"`)
	assert.Len(t, created, 2)
}
