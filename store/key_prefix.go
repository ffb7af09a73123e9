package store

// Declare database key prefix for ledger objects
const (
	PrefixBalance   = "balance:"
	PrefixAllowance = "allowance:"
	PrefixEvent     = "evt:"

	MetaKeyToken    = "meta:token"
	MetaKeyEventSeq = "meta:event_seq"
)
