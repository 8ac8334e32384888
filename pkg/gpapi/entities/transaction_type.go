package entities

// TransactionType identifies the operation a builder performs.
type TransactionType int

const (
	TransactionTypeUnknown TransactionType = iota
	Sale
	Auth
	Capture
	Refund
	Reversal
	Void
	Edit
	Hold
	Release
	TokenDelete
	TokenUpdate
	VerifySignature
	Verify
	Create
	Delete
	Fetch
	Search
)

var transactionTypeNames = map[TransactionType]string{
	TransactionTypeUnknown: "unknown",
	Sale:                   "sale",
	Auth:                   "auth",
	Capture:                "capture",
	Refund:                 "refund",
	Reversal:               "reversal",
	Void:                   "void",
	Edit:                   "edit",
	Hold:                   "hold",
	Release:                "release",
	TokenDelete:            "tokenDelete",
	TokenUpdate:            "tokenUpdate",
	VerifySignature:        "verifySignature",
	Verify:                 "verify",
	Create:                 "create",
	Delete:                 "delete",
	Fetch:                  "fetch",
	Search:                 "search",
}

func (t TransactionType) String() string {
	if name, ok := transactionTypeNames[t]; ok {
		return name
	}
	return "unknown"
}
