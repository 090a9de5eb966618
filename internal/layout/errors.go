package layout

import "fmt"

// StyleError reports an unusable design token.
type StyleError struct {
	Token   string
	Message string
}

func (e *StyleError) Error() string {
	return fmt.Sprintf("style error: %s: %s", e.Token, e.Message)
}
