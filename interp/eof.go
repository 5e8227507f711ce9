package interp

// EofPolicy selects what INPUT does to the current cell at end of input.
type EofPolicy int

const (
	EOF_KEEP = EofPolicy(0) // keep
	EOF_ZERO = EofPolicy(1) // zero
)

var eofNames = map[EofPolicy]string{
	EOF_KEEP: "keep",
	EOF_ZERO: "zero",
}

func (ep EofPolicy) String() string {
	name, ok := eofNames[ep]
	if !ok {
		return f("EofPolicy(%d)", int(ep))
	}
	return name
}

// ParseEofPolicy returns the policy named "keep" or "zero".
func ParseEofPolicy(name string) (ep EofPolicy, err error) {
	for policy, policy_name := range eofNames {
		if policy_name == name {
			ep = policy
			return
		}
	}

	err = ErrEofPolicy
	return
}
