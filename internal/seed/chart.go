// Package seed loads a hierarchical chart of accounts from YAML and creates
// it for a user.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"strings"

	models "bookkeeper/internal/domain/models/ledger"
	ledgerSvc "bookkeeper/internal/domain/services/ledger"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

//go:embed default_chart.yaml
var defaultChart []byte

// ChartNode is one account in a chart file
type ChartNode struct {
	Name        string      `yaml:"name"`
	Description string      `yaml:"description,omitempty"`
	Children    []ChartNode `yaml:"children,omitempty"`
}

// DefaultChart returns the embedded default chart
func DefaultChart() ([]ChartNode, error) {
	return ParseChart(bytes.NewReader(defaultChart))
}

// ParseChart decodes a YAML list of chart nodes. Every node needs a name.
func ParseChart(r io.Reader) ([]ChartNode, error) {
	var nodes []ChartNode
	if err := yaml.NewDecoder(r).Decode(&nodes); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("decode chart: %w", err)
	}
	if err := checkNames(nodes, ""); err != nil {
		return nil, err
	}
	return nodes, nil
}

func checkNames(nodes []ChartNode, path string) error {
	for i, n := range nodes {
		if strings.TrimSpace(n.Name) == "" {
			return fmt.Errorf("chart entry %s[%d] has no name", path, i)
		}
		if err := checkNames(n.Children, path+"/"+n.Name); err != nil {
			return err
		}
	}
	return nil
}

// CreateChart creates every node for userID, parents before children, and
// returns the created accounts in that order.
func CreateChart(ctx context.Context, svc ledgerSvc.AccountService, userID uuid.UUID, nodes []ChartNode) ([]models.Account, error) {
	var created []models.Account
	var walk func(nodes []ChartNode, parent *int64) error
	walk = func(nodes []ChartNode, parent *int64) error {
		for _, n := range nodes {
			req := &ledgerSvc.CreateAccountRequest{Name: n.Name, ParentAccountID: parent}
			if n.Description != "" {
				desc := n.Description
				req.Description = &desc
			}
			account, err := svc.CreateAccount(ctx, userID, req)
			if err != nil {
				return fmt.Errorf("create account %q: %w", n.Name, err)
			}
			created = append(created, *account)

			id := account.ID
			if err := walk(n.Children, &id); err != nil {
				return err
			}
		}
		return nil
	}

	if err := walk(nodes, nil); err != nil {
		return created, err
	}
	return created, nil
}
