package match

// Big marks the side that receives Littles (e.g. a mentor).
type Big struct{}

// Little marks the side that gets assigned to a Big (e.g. a mentee).
type Little struct{}

// Kind constrains type parameters to exactly the two population sides.
// The type set is closed; downstream code cannot introduce a third side.
type Kind interface {
	Big | Little
}

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is the runtime counterpart of the Kind marker types. It only
// appears in diagnostics and error messages; all collection selection is
// done statically through the marker types.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindBig
	KindLittle

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// KindOf returns the runtime enum for the marker type K.
func KindOf[K Kind]() KindEnum {
	var k K
	if _, ok := any(k).(Big); ok {
		return KindBig
	}

	return KindLittle
}

// Opposite returns the other side.
func (k KindEnum) Opposite() KindEnum {
	switch k {
	case KindBig:
		return KindLittle
	case KindLittle:
		return KindBig
	default:
		return 0
	}
}

// Label returns the lower-case side name used in human-readable messages.
func (k KindEnum) Label() string {
	switch k {
	case KindBig:
		return "big"
	case KindLittle:
		return "little"
	default:
		return "unknown"
	}
}
