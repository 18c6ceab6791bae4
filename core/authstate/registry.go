package authstate

import (
	"encoding/json"
	"errors"
)

// The account registry is an ordered collection mirrored to a single JSON
// record in the durable store. Uniqueness of usernames is deliberately NOT
// enforced: lookups match the first entry in insertion order, preserving the
// permissive contract of the registry.

// decodeAccounts deserializes a registry record.
func decodeAccounts(data []byte) ([]Account, error) {
	var accounts []Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, errors.Join(ErrCorruptRegistry, err)
	}
	return accounts, nil
}

// encodeAccounts serializes the registry for persistence.
func encodeAccounts(accounts []Account) ([]byte, error) {
	if accounts == nil {
		accounts = []Account{}
	}
	return json.Marshal(accounts)
}

// decodeSession deserializes a current-session record.
func decodeSession(data []byte) (SessionRecord, error) {
	var rec SessionRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return SessionRecord{}, errors.Join(ErrCorruptSession, err)
	}
	return rec, nil
}

// findByUsername returns the first account with the given username in
// insertion order.
func findByUsername(accounts []Account, username string) (Account, bool) {
	for _, acc := range accounts {
		if acc.Username == username {
			return acc, true
		}
	}
	return Account{}, false
}
