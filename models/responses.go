package models

// SetResult is returned by the config mutator after a `config set`.
type SetResult struct {
	// Message is the user-facing confirmation, e.g.
	// "Successfully set api.testnet to true.".
	Message string `json:"message"`

	// Persisted reports whether the change reached the config file. When
	// false the change lives only in memory for the current invocation.
	Persisted bool `json:"persisted"`

	// Warning explains why the change was not persisted. Empty otherwise.
	Warning string `json:"warning,omitempty"`
}

// BroadcastResult wraps the node reply to a broadcast request.
type BroadcastResult struct {
	Testnet  bool        `json:"testnet"`
	Response APIResponse `json:"response"`
}
