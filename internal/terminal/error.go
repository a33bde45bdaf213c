package terminal

const logFieldErr = "err"

// errorMessage exposes an error as printable log data
type errorMessage struct {
	error
}

func (e errorMessage) Message() (string, error) {
	return e.Error(), nil
}

func (e errorMessage) Payload() ([]string, map[string]interface{}, error) {
	payload := map[string]interface{}{logFieldErr: e.Error()}
	return []string{logFieldErr}, payload, nil
}
