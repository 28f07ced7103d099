package sim

import "fmt"

// Kind is one of the three entity categories in the cyclic dominance
// relation: paper beats rock, scissors beats paper, rock beats scissors.
// Every kind has exactly one dominator and one dominated kind.
type Kind uint8

const (
	Rock Kind = iota
	Paper
	Scissors
)

// KindCount is the number of kinds in the cycle.
const KindCount = 3

// Beats returns the kind k converts on contact.
func (k Kind) Beats() Kind {
	switch k {
	case Rock:
		return Scissors
	case Paper:
		return Rock
	case Scissors:
		return Paper
	}
	panic(fmt.Sprintf("sim: unknown kind %d", uint8(k)))
}

// BeatenBy returns the kind that converts k on contact.
func (k Kind) BeatenBy() Kind {
	switch k {
	case Rock:
		return Paper
	case Paper:
		return Scissors
	case Scissors:
		return Rock
	}
	panic(fmt.Sprintf("sim: unknown kind %d", uint8(k)))
}

func (k Kind) String() string {
	switch k {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind maps a kind name to its value.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "rock":
		return Rock, nil
	case "paper":
		return Paper, nil
	case "scissors":
		return Scissors, nil
	}
	return 0, fmt.Errorf("sim: unknown kind %q", name)
}
