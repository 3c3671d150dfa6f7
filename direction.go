package cbc

import "fmt"

// Direction selects whether a configured mode encrypts or decrypts.
// It is fixed at Init and immutable until the next Init.
type Direction int

// Supported directions.
const (
	DirectionEncrypt Direction = iota + 1
	DirectionDecrypt
)

func (d Direction) String() string {
	switch d {
	case DirectionEncrypt:
		return "encrypt"
	case DirectionDecrypt:
		return "decrypt"
	default:
		return fmt.Sprintf("unknown direction %d", int(d))
	}
}

func (d Direction) valid() bool {
	return d == DirectionEncrypt || d == DirectionDecrypt
}
