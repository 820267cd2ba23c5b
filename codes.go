package treeval

// Problem message codes (exported consts for IDE completion and so the i18n
// catalog can be keyed by convention).
const (
	CodeInvalidType     = "invalid_type"
	CodeOverflow        = "overflow"
	CodeNoExtractor     = "no_extractor"
	CodeMissingKey      = "missing_key"
	CodeIndexOutOfRange = "index_out_of_range"
	CodeWrongKind       = "wrong_kind"
	CodeDuplicateKey    = "duplicate_key"
	CodeParseError      = "parse_error"
	CodeMaxDepth        = "max_depth"
	CodeTruncated       = "truncated"
	CodeInvalidFormat   = "invalid_format"
)
