package credential

// Secret is a scoped handle over a loaded credential value. The value is
// only reachable through Value(); every formatting and encoding path
// renders a redaction marker so the credential cannot leak through logs,
// error messages or serialized output.
type Secret struct {
	value []byte
}

const redacted = "[redacted]"

func newSecret(value []byte) *Secret {
	return &Secret{value: value}
}

// Value returns the credential value. Callers must not log or persist it.
func (s *Secret) Value() string {
	return string(s.value)
}

// Clear zeroes the backing bytes. The handle is unusable afterwards.
// Clearing is best-effort: copies already handed out via Value() are the
// caller's responsibility.
func (s *Secret) Clear() {
	for i := range s.value {
		s.value[i] = 0
	}
	s.value = s.value[:0]
}

// String implements fmt.Stringer
func (s *Secret) String() string {
	return redacted
}

// GoString keeps %#v from dumping the struct fields
func (s *Secret) GoString() string {
	return redacted
}

// MarshalJSON implements json.Marshaler
func (s *Secret) MarshalJSON() ([]byte, error) {
	return []byte(`"` + redacted + `"`), nil
}

// MarshalYAML implements yaml.Marshaler
func (s *Secret) MarshalYAML() (interface{}, error) {
	return redacted, nil
}
