package dialect

// Canonical data type names used in CAST targets.
const (
	TypeString    = "STRING"
	TypeVarchar   = "VARCHAR"
	TypeInt       = "INT"
	TypeBigint    = "BIGINT"
	TypeSmallint  = "SMALLINT"
	TypeDouble    = "DOUBLE"
	TypeFloat     = "FLOAT"
	TypeDecimal   = "DECIMAL"
	TypeBoolean   = "BOOLEAN"
	TypeDate      = "DATE"
	TypeTimestamp = "TIMESTAMP"
	TypeBinary    = "BINARY"
)

var canonicalTypes = map[string]struct{}{
	TypeString: {}, TypeVarchar: {}, TypeInt: {}, TypeBigint: {},
	TypeSmallint: {}, TypeDouble: {}, TypeFloat: {}, TypeDecimal: {},
	TypeBoolean: {}, TypeDate: {}, TypeTimestamp: {}, TypeBinary: {},
}

// typeAlias maps a dialect type spelling back to a canonical type.
type typeAlias struct {
	canonical string
	bareOnly  bool // only when written without parameters, e.g. VARCHAR vs VARCHAR(10)
}

// IsCanonicalType reports whether name (uppercase) is a canonical type.
func IsCanonicalType(name string) bool {
	_, ok := canonicalTypes[name]
	return ok
}
