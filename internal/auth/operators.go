package auth

import "golang.org/x/crypto/bcrypt"

// Operator is an operator-tier account. Operators authenticate against an
// in-memory credential table, separate from the per-user token scheme.
type Operator struct {
	Username string
	Role     string

	passwordHash []byte
}

// OperatorTable holds the operator credentials loaded at startup. Read-only
// after construction.
type OperatorTable struct {
	operators map[string]Operator
}

// NewOperatorTable hashes the given username -> (password, role) pairs into
// a lookup table.
func NewOperatorTable(creds map[string][2]string) (*OperatorTable, error) {
	t := &OperatorTable{operators: make(map[string]Operator, len(creds))}
	for username, cred := range creds {
		hash, err := bcrypt.GenerateFromPassword([]byte(cred[0]), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		t.operators[username] = Operator{
			Username:     username,
			Role:         cred[1],
			passwordHash: hash,
		}
	}
	return t, nil
}

// Authenticate checks a username/password pair and returns the operator on
// success.
func (t *OperatorTable) Authenticate(username, password string) (Operator, bool) {
	op, ok := t.operators[username]
	if !ok {
		return Operator{}, false
	}
	if bcrypt.CompareHashAndPassword(op.passwordHash, []byte(password)) != nil {
		return Operator{}, false
	}
	return op, true
}
