package dto

// QuoteResponse is the JSON body returned by /quote.
type QuoteResponse struct {
	Variant   string `json:"variant"`
	Dependent string `json:"dependent"`
	Minimum   string `json:"minimum"`
	Maximum   string `json:"maximum"`

	BridgeIn  string `json:"bridge_in,omitempty"`
	BridgeOut string `json:"bridge_out,omitempty"`
}

// CallResponse extends the quote with assembled router call arguments.
// Args keeps the router's positional order; amounts are decimal strings and
// addresses are hex.
type CallResponse struct {
	QuoteResponse

	Method   string `json:"method"`
	Args     []any  `json:"args"`
	Value    string `json:"value,omitempty"`
	Deadline string `json:"deadline"`
}

// ErrorResponse carries a machine-readable error message.
type ErrorResponse struct {
	Error string `json:"error"`
}
