package config

import (
	"github.com/spf13/pflag"
)

// RegisterFlags adds the configuration flags to fs. Defaults live in the
// koanf defaults layer; only flags that were set override other sources.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringSlice("source-files", nil, "Source files to process (repeatable or comma separated)")
	fs.String("source-dir", "", "Directory scanned for .sql and .py files (default: current directory)")
	fs.String("source-dialect", "", "Dialect the input is written in")
	fs.String("target-dialect", "", "Dialect to transpile to")
	fs.StringSlice(flagTableMappings, nil, "Table mapping source_table:target_table (repeatable)")
	fs.String("table-mappings-file", "", "YAML or JSON file with table mappings")
	fs.String(flagConfigFile, "", "Config file, .json, .yml or .yaml (default: ./sqlecto.yaml)")
	fs.String("output-dir", "", "Directory for converted files (default: "+DefaultOutputDir+")")
	fs.String("mapping-mode", "", "How mappings match: literal or identifier (default: literal)")
	fs.Bool("keep-create-table", false, "Keep CREATE TABLE statements")
	fs.Bool("pretty", true, "Pretty-print transpiled SQL")
	fs.String("unsupported", "", "Unsupported constructs: ignore, warn or raise (default: warn)")
	fs.Bool("dry-run", false, "Process files without writing output")
	fs.Bool("validate", false, "Parse MySQL output to check it")
	fs.Bool("summary", false, "Write a JSON run summary to the output directory")
	fs.BoolP("verbose", "v", false, "Verbose output")
	fs.StringP("output", "o", "", "Output format (auto|text|markdown|json)")
}
