package all

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/sqlecto/pkg/dialect"
)

func TestAllDialectsRegistered(t *testing.T) {
	want := []string{
		"ansi", "bigquery", "databricks", "duckdb", "hive", "mysql",
		"oracle", "postgres", "snowflake", "spark", "sqlite", "trino",
	}
	assert.Equal(t, want, dialect.List())
}

func TestAliases(t *testing.T) {
	tests := []struct {
		alias string
		want  string
	}{
		{"SparkSQL", "spark"},
		{"postgresql", "postgres"},
		{"presto", "trino"},
		{"mariadb", "mysql"},
		{"sqlite3", "sqlite"},
	}

	for _, tt := range tests {
		t.Run(tt.alias, func(t *testing.T) {
			d, ok := dialect.Get(tt.alias)
			require.True(t, ok)
			assert.Equal(t, tt.want, d.Name)
		})
	}
}

func TestIdentifierQuoting(t *testing.T) {
	tests := []struct {
		dialect string
		want    string
	}{
		{"spark", "`order`"},
		{"databricks", "`order`"},
		{"mysql", "`order`"},
		{"bigquery", "`order`"},
		{"postgres", `"order"`},
		{"snowflake", `"order"`},
		{"duckdb", `"order"`},
	}

	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			d := dialect.MustGet(tt.dialect)
			assert.Equal(t, tt.want, d.QuoteIdentifierIfNeeded("order"))
		})
	}
}

func TestFunctionSpellings(t *testing.T) {
	tests := []struct {
		dialect   string
		canonical string
		want      dialect.FunctionSpec
	}{
		{"spark", dialect.FuncCurrentTimestamp, dialect.FunctionSpec{Name: "CURRENT_TIMESTAMP"}},
		{"postgres", dialect.FuncCurrentTimestamp, dialect.FunctionSpec{Name: "CURRENT_TIMESTAMP", Niladic: true}},
		{"snowflake", dialect.FuncIf, dialect.FunctionSpec{Name: "IFF"}},
		{"sqlite", dialect.FuncIf, dialect.FunctionSpec{Name: "IIF"}},
		{"postgres", dialect.FuncIf, dialect.FunctionSpec{Name: "IF", Unsupported: true}},
		{"oracle", dialect.FuncIfNull, dialect.FunctionSpec{Name: "NVL"}},
		{"duckdb", dialect.FuncIfNull, dialect.FunctionSpec{Name: "COALESCE"}},
		{"spark", dialect.FuncArraySize, dialect.FunctionSpec{Name: "SIZE"}},
		{"trino", dialect.FuncApproxCountDistinct, dialect.FunctionSpec{Name: "APPROX_DISTINCT"}},
		{"oracle", dialect.FuncRandom, dialect.FunctionSpec{Name: "DBMS_RANDOM.VALUE", Niladic: true}},
		{"databricks", dialect.FuncArrayAgg, dialect.FunctionSpec{Name: "ARRAY_AGG"}},
		{"hive", dialect.FuncArrayAgg, dialect.FunctionSpec{Name: "COLLECT_LIST"}},
	}

	for _, tt := range tests {
		t.Run(tt.dialect+"/"+tt.canonical, func(t *testing.T) {
			assert.Equal(t, tt.want, dialect.MustGet(tt.dialect).FunctionFor(tt.canonical))
		})
	}
}

func TestTypeRoundTrip(t *testing.T) {
	spark := dialect.MustGet("spark")
	postgres := dialect.MustGet("postgres")
	bigquery := dialect.MustGet("bigquery")

	canonical, ok := spark.CanonicalType("string", false)
	require.True(t, ok)
	spelling, ok := postgres.TypeFor(canonical)
	require.True(t, ok)
	assert.Equal(t, "TEXT", spelling)

	canonical, ok = postgres.CanonicalType("int8", false)
	require.True(t, ok)
	spelling, ok = bigquery.TypeFor(canonical)
	require.True(t, ok)
	assert.Equal(t, "INT64", spelling)

	canonical, ok = bigquery.CanonicalType("STRING", false)
	require.True(t, ok)
	assert.Equal(t, dialect.TypeString, canonical)

	_, ok = dialect.MustGet("mysql").TypeFor(dialect.TypeBoolean)
	assert.False(t, ok)
}

func TestOperatorSupport(t *testing.T) {
	spelling, ok := dialect.MustGet("postgres").Operator(dialect.TokenRlike)
	require.True(t, ok)
	assert.Equal(t, "~", spelling)

	spelling, ok = dialect.MustGet("mysql").Operator(dialect.TokenIlike)
	require.True(t, ok)
	assert.Equal(t, "LIKE", spelling)

	_, ok = dialect.MustGet("hive").Operator(dialect.TokenIlike)
	assert.False(t, ok)
	_, ok = dialect.MustGet("spark").Operator(dialect.TokenQualify)
	assert.False(t, ok)
	_, ok = dialect.MustGet("databricks").Operator(dialect.TokenQualify)
	assert.True(t, ok)
}
