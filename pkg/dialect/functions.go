package dialect

// FunctionSpec describes how a dialect spells a canonical function.
type FunctionSpec struct {
	Name        string // spelling in the dialect
	Niladic     bool   // written without parentheses when called without arguments
	Unsupported bool   // the dialect has no equivalent
}

// Canonical function names. Dialects map their own spellings onto these.
const (
	FuncCurrentTimestamp    = "CURRENT_TIMESTAMP"
	FuncCurrentDate         = "CURRENT_DATE"
	FuncCurrentTime         = "CURRENT_TIME"
	FuncIfNull              = "IFNULL"
	FuncSubstring           = "SUBSTRING"
	FuncLength              = "LENGTH"
	FuncLower               = "LOWER"
	FuncUpper               = "UPPER"
	FuncPower               = "POWER"
	FuncCeil                = "CEIL"
	FuncRandom              = "RANDOM"
	FuncIf                  = "IF"
	FuncStringAgg           = "STRING_AGG"
	FuncArrayAgg            = "ARRAY_AGG"
	FuncArraySize           = "ARRAY_SIZE"
	FuncApproxCountDistinct = "APPROX_COUNT_DISTINCT"
)

// canonicalFunctions holds the default spelling of every canonical function.
var canonicalFunctions = map[string]FunctionSpec{
	FuncCurrentTimestamp:    {Name: FuncCurrentTimestamp, Niladic: true},
	FuncCurrentDate:         {Name: FuncCurrentDate, Niladic: true},
	FuncCurrentTime:         {Name: FuncCurrentTime, Niladic: true},
	FuncIfNull:              {Name: "COALESCE"},
	FuncSubstring:           {Name: FuncSubstring},
	FuncLength:              {Name: FuncLength},
	FuncLower:               {Name: FuncLower},
	FuncUpper:               {Name: FuncUpper},
	FuncPower:               {Name: FuncPower},
	FuncCeil:                {Name: FuncCeil},
	FuncRandom:              {Name: FuncRandom},
	FuncIf:                  {Name: FuncIf},
	FuncStringAgg:           {Name: FuncStringAgg},
	FuncArrayAgg:            {Name: FuncArrayAgg},
	FuncArraySize:           {Name: FuncArraySize},
	FuncApproxCountDistinct: {Name: FuncApproxCountDistinct},
}

// standardFunctions are spelled the same in every dialect.
// They are recognized so that output spelling is uppercase and consistent.
var standardFunctions = []string{
	"ABS", "AVG", "COALESCE", "CONCAT", "COUNT", "CUME_DIST", "DENSE_RANK",
	"EXP", "EXTRACT", "FIRST_VALUE", "FLOOR", "GREATEST", "LAG", "LAST_VALUE",
	"LEAD", "LEAST", "LN", "LTRIM", "MAX", "MIN", "MOD", "NTILE", "NULLIF",
	"PERCENT_RANK", "RANK", "ROUND", "ROW_NUMBER", "RTRIM", "SIGN", "SQRT",
	"STDDEV", "SUM", "TRIM", "VARIANCE",
}

func init() {
	for _, name := range standardFunctions {
		canonicalFunctions[name] = FunctionSpec{Name: name}
	}
}

// IsCanonicalFunction reports whether name (uppercase) is a canonical function.
func IsCanonicalFunction(name string) bool {
	_, ok := canonicalFunctions[name]
	return ok
}

// canBeBare reports whether a canonical function may be referenced without
// parentheses in SQL that allows it (CURRENT_DATE, CURRENT_TIMESTAMP).
func canBeBare(canonical string) bool {
	return canonicalFunctions[canonical].Niladic
}
