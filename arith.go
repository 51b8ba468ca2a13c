package livedom

// Integer is satisfied by every built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Number is satisfied by every built-in integer and float type.
type Number interface {
	Integer | ~float32 | ~float64
}

// Add adds x to s in one broadcast.
func Add[T Number](s State[T], x T) { s.Modify(func(v T) T { return v + x }) }

// Sub subtracts x from s in one broadcast.
func Sub[T Number](s State[T], x T) { s.Modify(func(v T) T { return v - x }) }

// Mul multiplies s by x in one broadcast.
func Mul[T Number](s State[T], x T) { s.Modify(func(v T) T { return v * x }) }

// Quo divides s by x in one broadcast. Integer division by zero panics.
func Quo[T Number](s State[T], x T) { s.Modify(func(v T) T { return v / x }) }

// Rem replaces s with s % x in one broadcast.
func Rem[T Integer](s State[T], x T) { s.Modify(func(v T) T { return v % x }) }
