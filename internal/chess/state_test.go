package chess

import "testing"

func TestPositionState_Flags(t *testing.T) {
	var s PositionState

	for _, c := range []Colour{White, Black} {
		if s.KingMoved(c) {
			t.Errorf("KingMoved(%v) = true on a fresh state", c)
		}
		for _, side := range []CastleSide{Kingside, Queenside} {
			if !s.CanCastle(c, side) {
				t.Errorf("CanCastle(%v, %v) = false on a fresh state", c, side)
			}
		}
	}

	s.MarkRookMoved(White, Queenside)
	if !s.WhiteRookQueensideMoved || s.WhiteRookKingsideMoved {
		t.Errorf("MarkRookMoved(White, Queenside) set the wrong flag: %+v", s)
	}
	if s.CanCastle(White, Queenside) || !s.CanCastle(White, Kingside) {
		t.Error("CanCastle does not reflect the queenside rook flag")
	}

	s.MarkKingMoved(Black)
	if !s.KingMoved(Black) || s.KingMoved(White) {
		t.Errorf("MarkKingMoved(Black) set the wrong flag: %+v", s)
	}
	if s.CanCastle(Black, Kingside) || s.CanCastle(Black, Queenside) {
		t.Error("CanCastle should be false on both sides once the king moved")
	}
}

func TestPositionState_EnPassant(t *testing.T) {
	var s PositionState
	target := Sq(5, 4)

	if s.IsEnPassantTarget(target) {
		t.Error("IsEnPassantTarget() = true with no target set")
	}
	s.SetEnPassant(target)
	if !s.IsEnPassantTarget(target) || s.IsEnPassantTarget(Sq(5, 3)) {
		t.Error("IsEnPassantTarget() does not match the target set")
	}
	s.ClearEnPassant()
	if s.EnPassant || s.IsEnPassantTarget(target) {
		t.Error("ClearEnPassant() left a target behind")
	}
}

func TestCastleSide_RookCol(t *testing.T) {
	if Kingside.RookCol() != 7 || Queenside.RookCol() != 0 {
		t.Errorf("RookCol() = %d/%d, want 7/0", Kingside.RookCol(), Queenside.RookCol())
	}
}
