package models

import "strings"

// Identity is the user record behind the presented credential. Every field
// is optional in the API response; absent fields stay null in JSON output
// and render as empty strings in text output.
type Identity struct {
	ID    *string `json:"id" yaml:"id"`
	Login *string `json:"login" yaml:"login"`
	Name  *string `json:"name" yaml:"name"`
}

// TextOutput implements output.Formatter
func (i Identity) TextOutput() string {
	var b strings.Builder
	writeFact(&b, "user_id", deref(i.ID))
	writeFact(&b, "login", deref(i.Login))
	writeFact(&b, "name", deref(i.Name))
	return strings.TrimSuffix(b.String(), "\n")
}
