package verifier

// Field is one visual slot.
type Field struct {
	Index     int
	Character string // empty when nothing has been typed at this position
}

// Empty reports whether the slot has no character.
func (f Field) Empty() bool {
	return f.Character == ""
}

// Rebuild projects raw onto exactly code.Len() fields and reports whether raw
// equals the code.
//
// Characters past the last slot are dropped from the projection but still take
// part in the comparison, so input longer than the code is never correct.
// Rebuild has no side effects and the zero Code yields no fields.
func Rebuild(raw string, code Code) ([]Field, bool) {
	n := code.Len()
	fields := make([]Field, n)

	chars := splitCharacters(raw)
	for i := 0; i < n; i++ {
		fields[i].Index = i
		if i < len(chars) {
			fields[i].Character = chars[i]
		}
	}

	correct := n > 0 && raw == code.value
	return fields, correct
}

// Filled returns the number of non-empty fields.
func Filled(fields []Field) int {
	count := 0
	for _, f := range fields {
		if !f.Empty() {
			count++
		}
	}
	return count
}

// NextEmpty returns the index of the first empty field, or -1 when all are filled.
func NextEmpty(fields []Field) int {
	for _, f := range fields {
		if f.Empty() {
			return f.Index
		}
	}
	return -1
}
