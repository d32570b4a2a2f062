package engine

import "fmt"

// ActionKind names a betting action offered during hand review.
type ActionKind string

const (
	Fold  ActionKind = "fold"
	Check ActionKind = "check"
	Call  ActionKind = "call"
	AllIn ActionKind = "all-in"

	Bet      ActionKind = "bet"
	Raise    ActionKind = "raise"
	ThreeBet ActionKind = "3-bet"
	FourBet  ActionKind = "4-bet"
	FiveBet  ActionKind = "5-bet"
)

// MaxLevel is the cap on raise escalation. At level 5 no further named
// raise is offered; only call, fold and all-in remain.
const MaxLevel = 5

// State is the wager state at one decision point. All values are
// non-negative stake units. The engine is pure: a State goes in, a new
// State comes out, and nothing is retained between calls.
type State struct {
	Level       int `json:"level"`
	CurrentBet  int `json:"current_bet"`
	Pot         int `json:"pot"`
	PlayerStack int `json:"player_stack"`
	MinRaise    int `json:"min_raise"`
}

// raiseKinds maps a betting level to the single raise-type action offered
// at that level.
var raiseKinds = [MaxLevel]ActionKind{Bet, Raise, ThreeBet, FourBet, FiveBet}

// RaiseKindForLevel returns the named raise offered at a level, or false
// when the level is at the cap.
func RaiseKindForLevel(level int) (ActionKind, bool) {
	if level < 0 || level >= MaxLevel {
		return "", false
	}
	return raiseKinds[level], true
}

// AvailableActions returns the ordered action list for a betting level:
// fold and call always, the level's raise kind when one exists, all-in
// last. Levels outside [0, MaxLevel] are clamped.
func AvailableActions(level int) []ActionKind {
	if level < 0 {
		level = 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	out := []ActionKind{Fold, Call}
	if kind, ok := RaiseKindForLevel(level); ok {
		out = append(out, kind)
	}
	return append(out, AllIn)
}

// Resolve applies one action to a betting state and returns the resulting
// state. amount is only consulted for named raises; pass 0 to let the
// engine derive the minimum legal raise (currentBet + minRaise).
//
// Beyond the level-based eligibility list the engine enforces two stake
// preconditions: check requires currentBet == 0, and no action may commit
// more chips than the player holds. It never inspects range notation or
// hand strength.
func Resolve(kind ActionKind, amount int, s State) (State, error) {
	if err := s.validate(); err != nil {
		return State{}, err
	}

	switch kind {
	case Fold:
		// Terminal for this player; the caller ends or resets the round.
		return s, nil

	case Check:
		if s.CurrentBet != 0 {
			return State{}, fmt.Errorf("cannot check facing a bet of %d", s.CurrentBet)
		}
		return s, nil

	case Call:
		if s.CurrentBet > s.PlayerStack {
			return State{}, fmt.Errorf("call of %d exceeds stack %d", s.CurrentBet, s.PlayerStack)
		}
		s.Pot += s.CurrentBet
		s.PlayerStack -= s.CurrentBet
		return s, nil

	case AllIn:
		s.Pot += s.PlayerStack
		s.PlayerStack = 0
		return s, nil

	case Bet, Raise, ThreeBet, FourBet, FiveBet:
		offered, ok := RaiseKindForLevel(s.Level)
		if !ok {
			return State{}, fmt.Errorf("no raise available at level %d", s.Level)
		}
		if kind != offered {
			return State{}, fmt.Errorf("%s not available at level %d (expected %s)", kind, s.Level, offered)
		}
		minTo := s.CurrentBet + s.MinRaise
		if amount == 0 {
			amount = minTo
		}
		if amount < minTo {
			return State{}, fmt.Errorf("min raise to %d", minTo)
		}
		if amount > s.PlayerStack {
			return State{}, fmt.Errorf("raise of %d exceeds stack %d", amount, s.PlayerStack)
		}
		s.Pot += amount
		s.PlayerStack -= amount
		s.CurrentBet = amount
		if s.Level < MaxLevel {
			s.Level++
		}
		return s, nil
	}

	return State{}, fmt.Errorf("unknown action %q", kind)
}

func (s State) validate() error {
	switch {
	case s.Level < 0 || s.Level > MaxLevel:
		return fmt.Errorf("level %d out of range", s.Level)
	case s.CurrentBet < 0:
		return fmt.Errorf("negative current bet %d", s.CurrentBet)
	case s.Pot < 0:
		return fmt.Errorf("negative pot %d", s.Pot)
	case s.PlayerStack < 0:
		return fmt.Errorf("negative player stack %d", s.PlayerStack)
	case s.MinRaise < 0:
		return fmt.Errorf("negative min raise %d", s.MinRaise)
	}
	return nil
}
