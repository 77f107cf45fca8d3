package postgres

import (
	"regexp"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaSQL_PrefixesEveryTable(t *testing.T) {
	sql := SchemaSQL("test_")

	assert.NotContains(t, sql, "{{prefix}}")

	created := regexp.MustCompile(`CREATE TABLE IF NOT EXISTS (\w+)`).FindAllStringSubmatch(sql, -1)
	var names []string
	for _, m := range created {
		names = append(names, m[1])
	}
	assert.ElementsMatch(t, NewTableNames("test_").All(), names)
}

func TestTableNames_AllDependencyOrder(t *testing.T) {
	all := NewTableNames("dev_").All()

	assert.Equal(t, "dev_users", all[0])
	assert.Less(t, slices.Index(all, "dev_accounts"), slices.Index(all, "dev_operational_year_account_initials"))
	assert.Less(t, slices.Index(all, "dev_verifications"), slices.Index(all, "dev_verification_rows"))
	assert.Less(t, slices.Index(all, "dev_transactions"), slices.Index(all, "dev_verification_rows"))
}
