package pgtest

import (
	"strings"
	"testing"

	"forum/internal/infra/persistence/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithSearchPath(t *testing.T) {
	got, err := WithSearchPath("postgres://u:p@localhost:5432/forum?sslmode=disable", "test_abc")
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@localhost:5432/forum?search_path=test_abc&sslmode=disable", got)

	got, err = WithSearchPath("postgres://u:p@localhost:5432/forum?search_path=public", "test_abc")
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@localhost:5432/forum?search_path=test_abc", got)

	_, err = WithSearchPath("host=localhost dbname=forum", "test_abc")
	assert.Error(t, err)
}

func TestNewSchemaName(t *testing.T) {
	first, second := NewSchemaName(), NewSchemaName()

	assert.True(t, strings.HasPrefix(first, migrations.TestSchemaPrefix))
	assert.NotContains(t, first, "-")
	assert.NotEqual(t, first, second)
}
