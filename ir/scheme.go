package ir

// SchemeType names the FHE scheme a circuit targets. BFV suits exact integer
// arithmetic, CKKS approximate arithmetic, and TFHE boolean circuits with
// fast bootstrapping. The IR itself is parameter-agnostic; the tag is carried
// through for the parameter search and runtime downstream.
type SchemeType int

const (
	Bfv SchemeType = iota
	Ckks
	Tfhe
)

func (s SchemeType) String() string {
	switch s {
	case Bfv:
		return "bfv"
	case Ckks:
		return "ckks"
	case Tfhe:
		return "tfhe"
	}
	return "unknown"
}
