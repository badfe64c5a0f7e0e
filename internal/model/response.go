package model

// TransactionResponse reports the outcome of a submitted transaction after
// final confirmation.
type TransactionResponse struct {
	Digest string `json:"digest"`
	Status bool   `json:"status"`
	Error  string `json:"error,omitempty"`
}
