// Package all registers every bundled dialect.
//
//	import _ "github.com/leapstack-labs/sqlecto/pkg/dialects/all"
package all

import (
	_ "github.com/leapstack-labs/sqlecto/pkg/dialects/ansi"       // register ansi
	_ "github.com/leapstack-labs/sqlecto/pkg/dialects/bigquery"   // register bigquery
	_ "github.com/leapstack-labs/sqlecto/pkg/dialects/databricks" // register databricks
	_ "github.com/leapstack-labs/sqlecto/pkg/dialects/duckdb"     // register duckdb
	_ "github.com/leapstack-labs/sqlecto/pkg/dialects/hive"       // register hive
	_ "github.com/leapstack-labs/sqlecto/pkg/dialects/mysql"      // register mysql
	_ "github.com/leapstack-labs/sqlecto/pkg/dialects/oracle"     // register oracle
	_ "github.com/leapstack-labs/sqlecto/pkg/dialects/postgres"   // register postgres
	_ "github.com/leapstack-labs/sqlecto/pkg/dialects/snowflake"  // register snowflake
	_ "github.com/leapstack-labs/sqlecto/pkg/dialects/spark"      // register spark
	_ "github.com/leapstack-labs/sqlecto/pkg/dialects/sqlite"     // register sqlite
	_ "github.com/leapstack-labs/sqlecto/pkg/dialects/trino"      // register trino
)
