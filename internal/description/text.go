package description

// Text is a description that may be absent.
// The zero value is absent, which is distinct from an empty string.
type Text struct {
	String string
	Valid  bool // Valid is true if String is present
}

// Some returns a present Text holding s.
func Some(s string) Text {
	return Text{String: s, Valid: true}
}

// None returns an absent Text.
func None() Text {
	return Text{}
}

// FromPtr converts a nullable string into a Text.
func FromPtr(s *string) Text {
	if s == nil {
		return None()
	}
	return Some(*s)
}
