package httpapi

// Envelope is the uniform wire shape for every response, success or failure.
// Data carries the payload on success and is null on failure; Error carries
// the internal diagnostic for internal faults and is empty otherwise.
type Envelope struct {
	CorrelationID string `json:"correlation_id"`
	Message       string `json:"message"`
	Error         string `json:"error"`
	Data          any    `json:"data"`
}
