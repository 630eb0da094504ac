package rop

// Tag names the variant a container currently holds.
type Tag uint8

const (
	TagSuccess Tag = iota + 1
	TagFailure
	TagPresent
	TagAbsent
)

func (t Tag) String() string {
	switch t {
	case TagSuccess:
		return "Success"
	case TagFailure:
		return "Failure"
	case TagPresent:
		return "Present"
	case TagAbsent:
		return "Absent"
	default:
		return "Unknown"
	}
}

// Tagged is implemented by Outcome and Option.
type Tagged interface {
	// Tag returns the variant held
	Tag() Tag
}

// WithFailure describes a two-variant container with a typed failure channel.
type WithFailure[T, E any] interface {
	Tagged
	// Result returns the success value
	Result() T
	// Err returns the failure value
	Err() E
	// IsSuccess returns true if the success variant is held
	IsSuccess() bool
}

// WithValue describes a container that may or may not hold a value.
type WithValue[T any] interface {
	Tagged
	// HasValue returns true if a value is present
	HasValue() bool
	// Value returns the value or the zero value of T
	Value() T
}

// SameVariant reports whether a and b hold the same variant.
func SameVariant(a, b Tagged) bool {
	return a.Tag() == b.Tag()
}
