package contract

// CodeRepository stores pending login verification codes, keyed by email.
// Entries expire on their own; a missing entry means expired or never issued.
type CodeRepository interface {
	Save(email, code string)
	Get(email string) (string, bool)
	Delete(email string)
}
